package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrVersionConflict is returned when an INSERT of a snapshot version
	// fails the (sync_key, version) primary-key check, meaning another
	// client already uploaded a snapshot with the same version tag.
	ErrVersionConflict = errors.New("snapshot version conflict occurred")

	// ErrEntryNotFound is returned when a query targets a local entry
	// (identified by id) that does not exist in the agent database.
	ErrEntryNotFound = errors.New("entry was not found")

	// ErrSettingNotFound is returned when a requested key is absent from
	// the local settings table.
	ErrSettingNotFound = errors.New("setting was not found")

	// ErrSnapshotNotSaved is returned when an INSERT of a snapshot completes
	// without error but the number of affected rows is zero, indicating that
	// no data was actually persisted.
	ErrSnapshotNotSaved = errors.New("snapshot was not saved")
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

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan snapshot row")
)
