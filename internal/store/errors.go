package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
)

// Sentinel errors. Callers check them with errors.Is; the original driver
// error stays reachable through Unwrap.
var (
	// ErrNotFound is returned when a query matches no rows.
	ErrNotFound = errors.New("store: record not found")

	// ErrDuplicateKey is returned on unique constraint violations.
	ErrDuplicateKey = errors.New("store: duplicate key")

	// ErrForeignKeyViolation is returned when a foreign key constraint fails.
	ErrForeignKeyViolation = errors.New("store: foreign key violation")

	// ErrTimeout is returned when a statement exceeds its deadline.
	ErrTimeout = errors.New("store: query timeout")

	// ErrConnFailed is returned when the driver cannot reach the server.
	ErrConnFailed = errors.New("store: connection failed")
)

// IsNotFound reports whether err indicates a missing record.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsDuplicateKey reports whether err indicates a unique constraint violation.
func IsDuplicateKey(err error) bool { return errors.Is(err, ErrDuplicateKey) }

// Error wraps a sentinel with the original driver error so callers can use
// errors.Is for simple checks or inspect the raw cause.
type Error struct {
	Sentinel error
	Cause    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (cause: %v)", e.Sentinel, e.Cause)
}

func (e *Error) Is(target error) bool { return errors.Is(e.Sentinel, target) }
func (e *Error) Unwrap() error        { return e.Cause }

// mapError translates raw driver errors into the package sentinels.
// Unrecognized errors pass through unchanged.
func mapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return &Error{Sentinel: ErrNotFound, Cause: err}
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return &Error{Sentinel: ErrTimeout, Cause: err}
	}

	// Already mapped, do not double-wrap.
	var se *Error
	if errors.As(err, &se) {
		return err
	}

	if mapped := mapMySQLError(err); mapped != nil {
		return mapped
	}
	if mapped := mapSQLiteError(err); mapped != nil {
		return mapped
	}

	return err
}

// MySQL error numbers: https://dev.mysql.com/doc/mysql-errors/8.0/en/
func mapMySQLError(err error) error {
	var me *mysql.MySQLError
	if !errors.As(err, &me) {
		return nil
	}
	switch me.Number {
	case 1062: // ER_DUP_ENTRY
		return &Error{Sentinel: ErrDuplicateKey, Cause: err}
	case 1216, 1217, 1451, 1452: // referential integrity
		return &Error{Sentinel: ErrForeignKeyViolation, Cause: err}
	case 3024: // ER_QUERY_TIMEOUT
		return &Error{Sentinel: ErrTimeout, Cause: err}
	case 1045, 2002, 2003, 2006, 2013:
		return &Error{Sentinel: ErrConnFailed, Cause: err}
	}
	return nil
}

// SQLite is only used by tests; its driver does not export typed errors,
// so matching is string-based.
func mapSQLiteError(err error) error {
	s := err.Error()
	switch {
	case strings.Contains(s, "UNIQUE constraint failed"):
		return &Error{Sentinel: ErrDuplicateKey, Cause: err}
	case strings.Contains(s, "FOREIGN KEY constraint failed"):
		return &Error{Sentinel: ErrForeignKeyViolation, Cause: err}
	}
	return nil
}
