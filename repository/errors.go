package repository

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
	pkgerrors "github.com/pkg/errors"
)

var (
	// ErrNotFound is returned when no row matches the given id.
	ErrNotFound = errors.New("user not found")

	// ErrDuplicateEmail is returned when the unique index on email is
	// violated, either by the pre-insert check or by the database itself.
	ErrDuplicateEmail = errors.New("email already exists")
)

// uniqueViolation is the PostgreSQL SQLSTATE for unique_violation.
const uniqueViolation = "23505"

// mapError translates driver errors into the package sentinels so callers
// match with errors.Is instead of inspecting SQLSTATE codes. Unexpected
// errors are returned with a captured stack.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return ErrDuplicateEmail
	}
	return pkgerrors.WithStack(err)
}
