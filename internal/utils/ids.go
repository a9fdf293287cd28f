package utils

import "github.com/google/uuid"

// UUIDGenerator produces record identifiers.
//
// UUIDv7 is used deliberately: IDs are collision-resistant across devices
// (unlike timestamp+random concatenation) and roughly time-ordered, which
// keeps the records index friendly to the created_at drain order.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
