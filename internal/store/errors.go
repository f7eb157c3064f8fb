package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrCountryNotFound is returned when a lookup by alpha2 code matches no
	// row of the countries table.
	ErrCountryNotFound = errors.New("country not found")

	// ErrUnsupportedDriver is returned by [NewStorages] when the configured
	// database/sql driver is neither "pgx" nor "sqlite3".
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan country row")

	// ErrScanningRows is returned when the result set iteration fails,
	// typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan country rows")
)
