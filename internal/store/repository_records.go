package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/universal-workshop/syncagent/internal/logger"
	"github.com/universal-workshop/syncagent/models"
)

type recordRepository struct {
	*DB
	logger *logger.Logger
}

// NewRecordRepository constructs the SQLite-backed implementation of
// [RecordRepository].
func NewRecordRepository(db *DB, logger *logger.Logger) RecordRepository {
	return &recordRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *recordRepository) SaveRecord(ctx context.Context, record models.Record) error {
	log := logger.FromContext(ctx)

	res, err := r.DB.ExecContext(ctx, insertRecord,
		record.ID,
		record.DeviceID,
		record.Payload.Method,
		nullString(string(record.Payload.Arguments)),
		record.SyncStatus,
		record.RetryCount,
		record.LastError,
		nullTimePtr(record.NextAttemptAt),
		record.CreatedAt,
		record.UpdatedAt,
		nullTimePtr(record.SyncedAt),
	)
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.SaveRecord").
			Str("id", record.ID).
			Msg("failed to execute insert for record")
		return fmt.Errorf("%w: failed to save record (id=%s): %w", ErrRecordNotSaved, record.ID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		// id already present: idempotent put, second call is a no-op
		log.Debug().
			Str("func", "recordRepository.SaveRecord").
			Str("id", record.ID).
			Msg("record already stored, insert skipped")
	}

	return nil
}

func (r *recordRepository) GetRecord(ctx context.Context, id string) (models.Record, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetRecord(id)
	if err != nil {
		return models.Record{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.DB.QueryRowContext(ctx, query, args...)

	record, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Record{}, ErrRecordNotFound
		}
		log.Err(err).
			Str("func", "recordRepository.GetRecord").
			Str("id", id).
			Msg("failed to scan record row")
		return models.Record{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return record, nil
}

func (r *recordRepository) ListByStatus(ctx context.Context, statuses ...models.SyncStatus) ([]models.Record, error) {
	query, args, err := buildListByStatus(statuses)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryRecords(ctx, "recordRepository.ListByStatus", query, args)
}

func (r *recordRepository) ListEligible(ctx context.Context, now time.Time) ([]models.Record, error) {
	query, args, err := buildListEligible(now)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryRecords(ctx, "recordRepository.ListEligible", query, args)
}

func (r *recordRepository) queryRecords(ctx context.Context, caller, query string, args []any) ([]models.Record, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", caller).
			Msg("failed to execute records query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var records []models.Record
	for rows.Next() {
		record, scanErr := scanRecord(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", caller).
				Msg("failed to scan record rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		records = append(records, record)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

func (r *recordRepository) MarkInFlight(ctx context.Context, id string) error {
	return r.transition(ctx, "recordRepository.MarkInFlight", id, markInFlight, time.Now(), id)
}

func (r *recordRepository) MarkSynced(ctx context.Context, id string, at time.Time) error {
	return r.transition(ctx, "recordRepository.MarkSynced", id, markSynced, at, at, id)
}

func (r *recordRepository) MarkFailed(ctx context.Context, id string, retryCount int, lastError string, nextAttemptAt time.Time) error {
	return r.transition(ctx, "recordRepository.MarkFailed", id, markFailed, retryCount, lastError, nextAttemptAt, time.Now(), id)
}

func (r *recordRepository) MarkDeadLetter(ctx context.Context, id string, lastError string) error {
	return r.transition(ctx, "recordRepository.MarkDeadLetter", id, markDeadLetter, lastError, time.Now(), id)
}

func (r *recordRepository) Requeue(ctx context.Context, id string) error {
	return r.transition(ctx, "recordRepository.Requeue", id, requeueDeadLetter, time.Now(), id)
}

// transition executes a guarded status update. Zero affected rows means the
// guard rejected the transition: the record is either missing or not in a
// state the statement allows.
func (r *recordRepository) transition(ctx context.Context, caller, id, query string, args ...any) error {
	log := logger.FromContext(ctx)

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", caller).
			Str("id", id).
			Msg("failed to execute status transition")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		if _, getErr := r.GetRecord(ctx, id); errors.Is(getErr, ErrRecordNotFound) {
			return ErrRecordNotFound
		}
		log.Warn().
			Str("func", caller).
			Str("id", id).
			Msg("status transition rejected by state machine guard")
		return ErrIllegalTransition
	}

	return nil
}

func (r *recordRepository) ResetInFlight(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	res, err := r.DB.ExecContext(ctx, resetInFlight, time.Now())
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.ResetInFlight").
			Msg("failed to reset in-flight records")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return res.RowsAffected()
}

func (r *recordRepository) DeleteRecord(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	res, err := r.DB.ExecContext(ctx, deleteSyncedRecord, id)
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.DeleteRecord").
			Str("id", id).
			Msg("failed to delete record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		if _, getErr := r.GetRecord(ctx, id); errors.Is(getErr, ErrRecordNotFound) {
			return ErrRecordNotFound
		}
		return ErrRecordNotSynced
	}

	return nil
}

func (r *recordRepository) PurgeSynced(ctx context.Context, olderThan time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	res, err := r.DB.ExecContext(ctx, purgeSyncedRecords, olderThan)
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.PurgeSynced").
			Msg("failed to purge synced records")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return res.RowsAffected()
}

func (r *recordRepository) CountByStatus(ctx context.Context) (models.QueueStats, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, countRecordsByStatus)
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.CountByStatus").
			Msg("failed to count records by status")
		return models.QueueStats{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var stats models.QueueStats
	for rows.Next() {
		var status models.SyncStatus
		var count int
		if err = rows.Scan(&status, &count); err != nil {
			return models.QueueStats{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		switch status {
		case models.StatusPending:
			stats.Pending = count
		case models.StatusInFlight:
			stats.InFlight = count
		case models.StatusFailed:
			stats.Failed = count
		case models.StatusSynced:
			stats.Synced = count
		case models.StatusDeadLetter:
			stats.DeadLetter = count
		}
	}
	if err = rows.Err(); err != nil {
		return models.QueueStats{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return stats, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (models.Record, error) {
	var record models.Record
	var arguments sql.NullString
	var nextAttemptAt, syncedAt sql.NullTime

	err := row.Scan(
		&record.ID,
		&record.DeviceID,
		&record.Payload.Method,
		&arguments,
		&record.SyncStatus,
		&record.RetryCount,
		&record.LastError,
		&nextAttemptAt,
		&record.CreatedAt,
		&record.UpdatedAt,
		&syncedAt,
	)
	if err != nil {
		return models.Record{}, err
	}

	if arguments.Valid {
		record.Payload.Arguments = []byte(arguments.String)
	}
	if nextAttemptAt.Valid {
		t := nextAttemptAt.Time
		record.NextAttemptAt = &t
	}
	if syncedAt.Valid {
		t := syncedAt.Time
		record.SyncedAt = &t
	}

	return record, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullTimePtr(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
