package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/universal-workshop/syncagent/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

// ConnectivityGate answers "may the processor talk to the endpoint right
// now". Satisfied by the connectivity monitor.
type ConnectivityGate interface {
	Online() bool
}

// QueueProcessor drains the sync queue against the remote endpoint. A single
// processor instance owns all state transitions past pending.
type QueueProcessor interface {
	// Drain replays every eligible record in FIFO order. Only one drain pass
	// runs at a time: a concurrent call returns ErrDrainInProgress without
	// touching the queue, and a drain while offline returns ErrOffline.
	// Cancelling ctx mid-pass stops after the current record and returns
	// every in_flight record to pending.
	Drain(ctx context.Context) (models.DrainResult, error)

	// Recover returns records stranded in_flight by a previous crash to
	// pending. Called once on startup, before the first drain.
	Recover(ctx context.Context) (int64, error)
}

// RecordManager is the façade UI clients interact with. It captures domain
// events into the local store and exposes queue state for display.
type RecordManager interface {
	// RecordEvent persists a new record locally and returns it in pending
	// state. When the endpoint is reachable a background drain is kicked off;
	// the call itself never waits on the network.
	RecordEvent(ctx context.Context, method string, arguments json.RawMessage) (models.Record, error)

	// GetStatus returns the record by id or store.ErrRecordNotFound.
	GetStatus(ctx context.Context, id string) (models.Record, error)

	// ForceSync runs a drain pass immediately, bypassing the periodic
	// schedule. Connectivity gating and the single-drain rule still apply.
	ForceSync(ctx context.Context) (models.DrainResult, error)

	// Stats returns per-status record counts.
	Stats(ctx context.Context) (models.QueueStats, error)

	// DeadLetters lists dead-lettered records, oldest first, for operator
	// review.
	DeadLetters(ctx context.Context) ([]models.Record, error)

	// RequeueDeadLetter resets a dead-lettered record to pending with a
	// fresh retry budget.
	RequeueDeadLetter(ctx context.Context, id string) error
}

// DrainJob periodically drains the queue while the agent runs.
type DrainJob interface {
	// Start launches the background drain goroutine, draining every
	// interval. A previously running job is stopped first.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the goroutine to exit and blocks until it has.
	Stop()
}

// PurgeJob deletes synced records older than the retention window on a cron
// schedule.
type PurgeJob interface {
	// Start registers the cron entry and starts the scheduler.
	Start() error

	// Stop halts the scheduler and waits for a running purge to finish.
	Stop()
}
