package store

import (
	"context"
	"time"

	"github.com/universal-workshop/syncagent/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/record_repository_mock.go -package=mock

// RecordRepository is the persistence contract of the local durable store.
//
// All mutating operations are flushed to disk before returning: the SQLite
// connection commits per statement, so an acknowledged write survives a crash
// and restart of the agent.
type RecordRepository interface {
	// SaveRecord inserts the record, or leaves the stored row untouched when
	// a record with the same id already exists (idempotent put).
	SaveRecord(ctx context.Context, record models.Record) error

	// GetRecord returns the record by id or ErrRecordNotFound.
	GetRecord(ctx context.Context, id string) (models.Record, error)

	// ListByStatus returns all records in any of the given statuses, ordered
	// by created_at ascending (oldest first).
	ListByStatus(ctx context.Context, statuses ...models.SyncStatus) ([]models.Record, error)

	// ListEligible returns pending and failed records whose backoff delay has
	// elapsed by now, ordered by created_at ascending. This is the drain
	// queue: a derived view, never a duplicated copy.
	ListEligible(ctx context.Context, now time.Time) ([]models.Record, error)

	// MarkInFlight moves a pending or failed record to in_flight.
	MarkInFlight(ctx context.Context, id string) error

	// MarkSynced moves an in_flight record to synced and stamps synced_at.
	MarkSynced(ctx context.Context, id string, at time.Time) error

	// MarkFailed moves an in_flight record to failed, storing the retry
	// count, the failure message, and the next attempt time.
	MarkFailed(ctx context.Context, id string, retryCount int, lastError string, nextAttemptAt time.Time) error

	// MarkDeadLetter moves a record to the terminal dead_letter state.
	MarkDeadLetter(ctx context.Context, id string, lastError string) error

	// Requeue resets a dead_letter record to pending with a fresh retry
	// budget. Operator action, never called by the processor.
	Requeue(ctx context.Context, id string) error

	// ResetInFlight returns every in_flight record to pending. Called on
	// startup and after a cancelled drain so no record is left stuck.
	ResetInFlight(ctx context.Context) (int64, error)

	// DeleteRecord removes a record; only permitted when sync_status is
	// synced. Returns ErrRecordNotSynced otherwise.
	DeleteRecord(ctx context.Context, id string) error

	// PurgeSynced deletes synced records older than the cutoff and reports
	// how many rows were removed.
	PurgeSynced(ctx context.Context, olderThan time.Time) (int64, error)

	// CountByStatus returns per-status record counts for queue diagnostics.
	CountByStatus(ctx context.Context) (models.QueueStats, error)
}
