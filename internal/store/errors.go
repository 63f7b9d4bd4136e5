package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNoDataReturned is returned when the creation transaction finished
	// without producing a contract row.
	ErrNoDataReturned = errors.New("no data returned")

	// ErrRetryableConflict wraps driver errors classified as [Retryable]:
	// a concurrent find-or-create lost the race, a serialization failure or a
	// dropped connection. Resubmitting the same request is safe.
	ErrRetryableConflict = errors.New("concurrent modification, retry the request")

	ErrContractNotFound = errors.New("contract was not found")
	ErrDocumentNotFound = errors.New("document was not found")
	ErrOwnerNotFound    = errors.New("owner was not found")
	ErrTenantNotFound   = errors.New("tenant was not found")

	// ErrUnsupportedBackend is returned by [NewStorages] for an unknown
	// storage backend name.
	ErrUnsupportedBackend = errors.New("unsupported storage backend")

	// ErrInvalidDocumentPath is returned when a document path would escape
	// the documents directory.
	ErrInvalidDocumentPath = errors.New("invalid document path")
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

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")
)
