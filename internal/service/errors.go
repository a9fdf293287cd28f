package service

import "errors"

var (
	// ErrDrainInProgress is returned when a drain is requested while another
	// drain pass holds the queue. Drains never interleave.
	ErrDrainInProgress = errors.New("drain already in progress")

	// ErrOffline is returned when a drain is requested while the endpoint is
	// considered unreachable. The queue is left untouched.
	ErrOffline = errors.New("remote endpoint is offline")

	// ErrRetryExhausted marks a record that hit its retry bound and was moved
	// to the dead-letter state.
	ErrRetryExhausted = errors.New("retry budget exhausted")

	ErrValidationNoMethodProvided = errors.New("no method name provided")
	ErrValidationNoDeviceID       = errors.New("no device id configured")
)
