package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrRecordNotFound is returned when a query or update targets a record
	// (identified by id) that does not exist in the local database.
	ErrRecordNotFound = errors.New("record was not found")

	// ErrRecordNotSaved is returned when persisting a captured record fails,
	// meaning the write never reached the local database. A conflicting id is
	// not a failure: re-inserting an existing record is an idempotent no-op.
	ErrRecordNotSaved = errors.New("record was not saved")

	// ErrRecordNotSynced is returned when a delete targets a record that is
	// not in the synced state. Pending and in-flight records must never be
	// deleted.
	ErrRecordNotSynced = errors.New("record is not synced and cannot be deleted")

	// ErrIllegalTransition is returned when a status update would violate the
	// record state machine (e.g. advancing a dead-letter record).
	ErrIllegalTransition = errors.New("illegal sync status transition")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan record row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan record rows")
)
