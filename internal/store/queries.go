package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/universal-workshop/syncagent/models"
)

// Fixed DML statements. Guard clauses on sync_status enforce the record state
// machine at the storage layer, so a lost race shows up as zero affected rows
// instead of a corrupted status.
const (
	insertRecord = `
		INSERT INTO records (
			id,
			device_id,
			method,
			arguments,
			sync_status,
			retry_count,
			last_error,
			next_attempt_at,
			created_at,
			updated_at,
			synced_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO NOTHING;`

	markInFlight = `
		UPDATE records SET
			sync_status = 'in_flight',
			updated_at  = ?
		WHERE id = ? AND sync_status IN ('pending', 'failed');`

	markSynced = `
		UPDATE records SET
			sync_status = 'synced',
			last_error  = '',
			synced_at   = ?,
			updated_at  = ?
		WHERE id = ? AND sync_status = 'in_flight';`

	markFailed = `
		UPDATE records SET
			sync_status     = 'failed',
			retry_count     = ?,
			last_error      = ?,
			next_attempt_at = ?,
			updated_at      = ?
		WHERE id = ? AND sync_status = 'in_flight';`

	markDeadLetter = `
		UPDATE records SET
			sync_status     = 'dead_letter',
			last_error      = ?,
			next_attempt_at = NULL,
			updated_at      = ?
		WHERE id = ? AND sync_status NOT IN ('synced', 'dead_letter');`

	requeueDeadLetter = `
		UPDATE records SET
			sync_status     = 'pending',
			retry_count     = 0,
			last_error      = '',
			next_attempt_at = NULL,
			updated_at      = ?
		WHERE id = ? AND sync_status = 'dead_letter';`

	resetInFlight = `
		UPDATE records SET
			sync_status = 'pending',
			updated_at  = ?
		WHERE sync_status = 'in_flight';`

	deleteSyncedRecord = `
		DELETE FROM records
		WHERE id = ? AND sync_status = 'synced';`

	purgeSyncedRecords = `
		DELETE FROM records
		WHERE sync_status = 'synced' AND synced_at IS NOT NULL AND synced_at < ?;`

	countRecordsByStatus = `
		SELECT sync_status, COUNT(*)
		FROM records
		GROUP BY sync_status;`
)

var recordColumns = []string{
	"id",
	"device_id",
	"method",
	"arguments",
	"sync_status",
	"retry_count",
	"last_error",
	"next_attempt_at",
	"created_at",
	"updated_at",
	"synced_at",
}

func selectRecords() sq.SelectBuilder {
	return sq.StatementBuilder.
		PlaceholderFormat(sq.Question).
		Select(recordColumns...).
		From("records").
		OrderBy("created_at ASC")
}

// buildGetRecord selects a single record by id.
func buildGetRecord(id string) (string, []any, error) {
	return selectRecords().Where(sq.Eq{"id": id}).ToSql()
}

// buildListByStatus selects all records in any of the given statuses,
// oldest first.
func buildListByStatus(statuses []models.SyncStatus) (string, []any, error) {
	return selectRecords().Where(sq.Eq{"sync_status": statuses}).ToSql()
}

// buildListEligible selects the drain queue: pending and failed records whose
// backoff delay has elapsed by now, oldest first.
func buildListEligible(now time.Time) (string, []any, error) {
	return selectRecords().
		Where(sq.Eq{"sync_status": []models.SyncStatus{models.StatusPending, models.StatusFailed}}).
		Where(sq.Or{
			sq.Eq{"next_attempt_at": nil},
			sq.LtOrEq{"next_attempt_at": now},
		}).
		ToSql()
}
