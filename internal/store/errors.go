package store

import "errors"

// Low-level database operation errors. Repository methods wrap them so callers
// can match with [errors.Is].
var (
	// ErrExecutingQuery is returned when a SELECT against the credentials
	// table fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRows is returned when reading a credential row fails.
	ErrScanningRows = errors.New("failed to scan credential rows")

	// ErrBeginningTransaction is returned when the driver cannot start a
	// transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing fails. The
	// transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when an INSERT or DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")
)
