package models

import (
	"encoding/json"
	"time"
)

// SyncStatus is the synchronization state of a locally captured Record.
// A Record moves through these states monotonically:
//
//	pending -> in_flight -> synced
//	in_flight -> failed -> pending (after backoff)
//	in_flight -> dead_letter (retry budget exhausted or permanent error)
type SyncStatus string

const (
	// StatusPending marks a Record waiting for its first (or next) sync attempt.
	StatusPending SyncStatus = "pending"

	// StatusInFlight marks a Record whose remote call is currently executing.
	StatusInFlight SyncStatus = "in_flight"

	// StatusSynced marks a Record successfully applied on the remote side.
	// Synced records are eligible for purging after the retention window.
	StatusSynced SyncStatus = "synced"

	// StatusFailed marks a Record whose last sync attempt failed with a
	// transient error. It returns to pending once its backoff delay elapses.
	StatusFailed SyncStatus = "failed"

	// StatusDeadLetter is terminal: the Record exhausted its retry budget or
	// hit a permanent error. It is never retried automatically and stays in
	// the store until an operator requeues or deletes it.
	StatusDeadLetter SyncStatus = "dead_letter"
)

// Valid reports whether s is one of the defined sync statuses.
func (s SyncStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInFlight, StatusSynced, StatusFailed, StatusDeadLetter:
		return true
	}
	return false
}

// Terminal reports whether s is a state that the queue processor never
// advances automatically.
func (s SyncStatus) Terminal() bool {
	return s == StatusSynced || s == StatusDeadLetter
}

// Payload is the replayable remote operation captured with a Record:
// the RPC method name plus its arguments, kept opaque to the sync core.
type Payload struct {
	Method    string          `json:"method"`
	Arguments json.RawMessage `json:"arguments,omitempty"`
}

// Record is a domain event captured while potentially offline, together with
// its synchronization bookkeeping. Records are created by the record manager,
// advanced by the queue processor, and never mutated by display code.
type Record struct {
	// ID is assigned at creation time. UUIDv7 keeps IDs collision-resistant
	// across devices and roughly time-ordered.
	ID string `json:"id"`

	// DeviceID identifies the workshop device that captured the event.
	DeviceID string `json:"device_id"`

	Payload Payload `json:"payload"`

	SyncStatus SyncStatus `json:"sync_status"`

	// RetryCount is incremented on every failed transient sync attempt.
	// Permanent failures do not consume retry budget.
	RetryCount int `json:"retry_count"`

	// LastError holds the message of the most recent sync failure.
	LastError string `json:"last_error,omitempty"`

	// NextAttemptAt gates retries: a failed Record is not eligible for
	// draining until this instant has passed.
	NextAttemptAt *time.Time `json:"next_attempt_at,omitempty"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	SyncedAt  *time.Time `json:"synced_at,omitempty"`
}
