package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/universal-workshop/syncagent/internal/logger"
	"github.com/universal-workshop/syncagent/models"
)

func newTestRecordRepo(t *testing.T) (*recordRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &recordRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func testRecord(id string, created time.Time) models.Record {
	return models.Record{
		ID:         id,
		DeviceID:   "bay-3-tablet",
		Payload:    models.Payload{Method: "stock.receive", Arguments: []byte(`{"qty":5}`)},
		SyncStatus: models.StatusPending,
		CreatedAt:  created,
		UpdatedAt:  created,
	}
}

func recordRows(records ...models.Record) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "device_id", "method", "arguments", "sync_status", "retry_count",
		"last_error", "next_attempt_at", "created_at", "updated_at", "synced_at",
	})
	for _, r := range records {
		rows.AddRow(
			r.ID, r.DeviceID, r.Payload.Method, string(r.Payload.Arguments),
			string(r.SyncStatus), r.RetryCount, r.LastError, r.NextAttemptAt,
			r.CreatedAt, r.UpdatedAt, r.SyncedAt,
		)
	}
	return rows
}

// ── SaveRecord ───────────────────────────────────────────────────────────────

func TestSaveRecord_Inserts(t *testing.T) {
	repo, mock, db := newTestRecordRepo(t)
	defer db.Close()

	record := testRecord("rec-1", time.Now())

	mock.ExpectExec("INSERT INTO records").
		WithArgs(
			record.ID, record.DeviceID, record.Payload.Method,
			string(record.Payload.Arguments), string(record.SyncStatus), 0, "",
			sqlmock.AnyArg(), record.CreatedAt, record.UpdatedAt, sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.SaveRecord(context.Background(), record))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A second put of an already stored id must be a silent no-op: ON CONFLICT
// DO NOTHING reports zero affected rows and SaveRecord still returns nil.
func TestSaveRecord_IdempotentOnDuplicate(t *testing.T) {
	repo, mock, db := newTestRecordRepo(t)
	defer db.Close()

	record := testRecord("rec-1", time.Now())

	mock.ExpectExec("INSERT INTO records").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.SaveRecord(context.Background(), record))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A failed insert means the capture was never made durable; callers match on
// ErrRecordNotSaved to tell the UI the write has to be retried.
func TestSaveRecord_StorageErrorSurfaced(t *testing.T) {
	repo, mock, db := newTestRecordRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO records").
		WillReturnError(errors.New("database is locked"))

	err := repo.SaveRecord(context.Background(), testRecord("rec-1", time.Now()))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRecordNotSaved)
	assert.Contains(t, err.Error(), "database is locked")
}

// ── GetRecord ────────────────────────────────────────────────────────────────

func TestGetRecord_Found(t *testing.T) {
	repo, mock, db := newTestRecordRepo(t)
	defer db.Close()

	created := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM records").
		WithArgs("rec-1").
		WillReturnRows(recordRows(testRecord("rec-1", created)))

	record, err := repo.GetRecord(context.Background(), "rec-1")
	require.NoError(t, err)
	assert.Equal(t, "rec-1", record.ID)
	assert.Equal(t, models.StatusPending, record.SyncStatus)
	assert.Equal(t, "stock.receive", record.Payload.Method)
}

func TestGetRecord_NotFound(t *testing.T) {
	repo, mock, db := newTestRecordRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM records").
		WithArgs("missing").
		WillReturnRows(recordRows())

	_, err := repo.GetRecord(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

// ── ListEligible ─────────────────────────────────────────────────────────────

func TestListEligible_OrderedOldestFirst(t *testing.T) {
	repo, mock, db := newTestRecordRepo(t)
	defer db.Close()

	t1 := time.Now().Add(-3 * time.Minute)
	t2 := time.Now().Add(-2 * time.Minute)
	t3 := time.Now().Add(-time.Minute)

	mock.ExpectQuery("SELECT (.+) FROM records").
		WillReturnRows(recordRows(
			testRecord("a", t1),
			testRecord("b", t2),
			testRecord("c", t3),
		))

	records, err := repo.ListEligible(context.Background(), time.Now())
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"a", "b", "c"},
		[]string{records[0].ID, records[1].ID, records[2].ID})
}

// ── Status transitions ───────────────────────────────────────────────────────

func TestMarkInFlight_Success(t *testing.T) {
	repo, mock, db := newTestRecordRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE records").
		WithArgs(sqlmock.AnyArg(), "rec-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.MarkInFlight(context.Background(), "rec-1"))
}

func TestMarkInFlight_GuardRejected(t *testing.T) {
	repo, mock, db := newTestRecordRepo(t)
	defer db.Close()

	// guard rejects: zero rows affected, record exists in synced state
	mock.ExpectExec("UPDATE records").
		WillReturnResult(sqlmock.NewResult(0, 0))
	synced := testRecord("rec-1", time.Now())
	synced.SyncStatus = models.StatusSynced
	mock.ExpectQuery("SELECT (.+) FROM records").
		WithArgs("rec-1").
		WillReturnRows(recordRows(synced))

	err := repo.MarkInFlight(context.Background(), "rec-1")
	assert.ErrorIs(t, err, ErrIllegalTransition)
}

func TestMarkInFlight_RecordMissing(t *testing.T) {
	repo, mock, db := newTestRecordRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE records").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT (.+) FROM records").
		WithArgs("ghost").
		WillReturnRows(recordRows())

	err := repo.MarkInFlight(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestMarkFailed_StoresRetryStateAndBackoff(t *testing.T) {
	repo, mock, db := newTestRecordRepo(t)
	defer db.Close()

	nextAttempt := time.Now().Add(4 * time.Second)
	mock.ExpectExec("UPDATE records").
		WithArgs(2, "remote timeout", nextAttempt, sqlmock.AnyArg(), "rec-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.MarkFailed(context.Background(), "rec-1", 2, "remote timeout", nextAttempt))
}

func TestRequeue_FromDeadLetterOnly(t *testing.T) {
	repo, mock, db := newTestRecordRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE records").
		WithArgs(sqlmock.AnyArg(), "rec-1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	pending := testRecord("rec-1", time.Now())
	mock.ExpectQuery("SELECT (.+) FROM records").
		WithArgs("rec-1").
		WillReturnRows(recordRows(pending))

	err := repo.Requeue(context.Background(), "rec-1")
	assert.ErrorIs(t, err, ErrIllegalTransition)
}

func TestResetInFlight_ReportsCount(t *testing.T) {
	repo, mock, db := newTestRecordRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE records").
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := repo.ResetInFlight(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

// ── DeleteRecord / PurgeSynced ───────────────────────────────────────────────

func TestDeleteRecord_OnlySynced(t *testing.T) {
	repo, mock, db := newTestRecordRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM records").
		WithArgs("rec-1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	pending := testRecord("rec-1", time.Now())
	mock.ExpectQuery("SELECT (.+) FROM records").
		WithArgs("rec-1").
		WillReturnRows(recordRows(pending))

	err := repo.DeleteRecord(context.Background(), "rec-1")
	assert.ErrorIs(t, err, ErrRecordNotSynced)
}

func TestPurgeSynced_ReportsDeleted(t *testing.T) {
	repo, mock, db := newTestRecordRepo(t)
	defer db.Close()

	cutoff := time.Now().Add(-7 * 24 * time.Hour)
	mock.ExpectExec("DELETE FROM records").
		WithArgs(cutoff).
		WillReturnResult(sqlmock.NewResult(0, 12))

	n, err := repo.PurgeSynced(context.Background(), cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(12), n)
}

// ── CountByStatus ────────────────────────────────────────────────────────────

func TestCountByStatus_MapsAllStatuses(t *testing.T) {
	repo, mock, db := newTestRecordRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"sync_status", "count"}).
		AddRow("pending", 4).
		AddRow("failed", 2).
		AddRow("synced", 10).
		AddRow("dead_letter", 1)

	mock.ExpectQuery("SELECT sync_status, COUNT").
		WillReturnRows(rows)

	stats, err := repo.CountByStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, stats.Pending)
	assert.Equal(t, 2, stats.Failed)
	assert.Equal(t, 10, stats.Synced)
	assert.Equal(t, 1, stats.DeadLetter)
	assert.Equal(t, 17, stats.Total())
}
