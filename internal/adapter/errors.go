package adapter

import "errors"

// Error classes of remote calls. The queue processor routes a failed record
// by matching against these with [errors.Is].
var (
	// ErrTransient marks a retryable failure: network error, timeout,
	// 408/429, or any 5xx. The record keeps its place in the queue and is
	// retried with backoff.
	ErrTransient = errors.New("transient remote call failure")

	// ErrPermanent marks a non-retryable failure: the endpoint rejected the
	// payload itself (validation, 4xx). Retrying an invalid payload wastes
	// cycles, so the record is dead-lettered immediately.
	ErrPermanent = errors.New("permanent remote call failure")

	// ErrUnauthorized marks an authentication failure (401/403). This is a
	// session problem, not a payload problem: the drain pass halts instead
	// of dead-lettering every queued record.
	ErrUnauthorized = errors.New("remote session unauthorized")

	// ErrSessionExpired is returned before any network call when the local
	// session token's expiry claim has already passed.
	ErrSessionExpired = errors.New("session token expired")
)
