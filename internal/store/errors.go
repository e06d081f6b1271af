package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNotFound is returned when the referenced user does not exist.
	// Malformed identifiers (e.g. a non-hex Mongo ObjectID) are reported the
	// same way: they cannot reference any user.
	ErrUserNotFound = errors.New("user not found")

	// ErrStoreUnavailable wraps transient failures: lost connections,
	// timeouts, failed server selection, deadlocks. The request may succeed
	// if retried.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrUnsupportedBackend is returned by [NewStorages] for a DSN whose
	// scheme has no implementation.
	ErrUnsupportedBackend = errors.New("unsupported storage backend")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a store operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan user row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan user rows")

	// ErrEncodingLog is returned when an exercise log cannot be converted
	// to or from its stored JSON form.
	ErrEncodingLog = errors.New("failed to encode exercise log")
)
