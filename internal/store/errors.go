package store

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same login already exists in the database.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoUserWasFound is returned when a query expected to match exactly one
	// user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrProductNotFound is returned when an update or delete addressed by
	// (id, user_id) affects no rows.
	ErrProductNotFound = errors.New("product was not found")

	// ErrStorage is matched by every [*StorageError].
	ErrStorage = errors.New("storage error")
)

// Low-level database operation errors. These are wrapped inside a
// [*StorageError] when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRows is returned when scanning column values fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrUnsupportedDriver is returned by [NewConnect] for a driver name it
	// does not know.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// StorageError reports a failed storage operation. It keeps the engine's own
// error so the message reaches the user unchanged.
type StorageError struct {
	// Op names the repository operation, e.g. "add product".
	Op string
	// Err is the underlying driver or wrapping error.
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap lets [errors.Is] match both [ErrStorage] and the wrapped error.
func (e *StorageError) Unwrap() []error {
	return []error{ErrStorage, e.Err}
}

func storageError(op string, kind, err error) error {
	if kind == nil {
		return &StorageError{Op: op, Err: err}
	}
	return &StorageError{Op: op, Err: fmt.Errorf("%w: %w", kind, err)}
}
