package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrNoExpiryClaim = errors.New("token has no expiry claim")

// TokenExpiry extracts the "exp" claim from a JWT session token without
// verifying the signature. Verification belongs to the ERP backend; knowing
// the expiry locally lets the drain loop pause instead of replaying the
// whole queue into guaranteed 401 responses.
func TokenExpiry(tokenString string) (time.Time, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, fmt.Errorf("parse session token: %w", err)
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, fmt.Errorf("read expiry claim: %w", err)
	}
	if exp == nil {
		return time.Time{}, ErrNoExpiryClaim
	}

	return exp.Time, nil
}

// TokenExpired reports whether the session token's expiry claim has passed.
// Tokens without an expiry claim are treated as non-expiring.
func TokenExpired(tokenString string, now time.Time) bool {
	expiry, err := TokenExpiry(tokenString)
	if err != nil {
		return false
	}
	return expiry.Before(now)
}
