package store

import "errors"

// Sentinel errors returned by repository methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrNotFound is returned when a lookup or an update targets a row that
	// does not exist.
	ErrNotFound = errors.New("entity was not found")

	// ErrNothingInserted is returned when an INSERT completes without error
	// but reports no inserted row id.
	ErrNothingInserted = errors.New("entity was not inserted")
)

// Low-level database operation errors. They are wrapped together with the
// driver error so both stay matchable.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT, UPDATE or DELETE fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when column values cannot be scanned.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iteration over a result set fails.
	ErrScanningRows = errors.New("failed to iterate rows")
)
