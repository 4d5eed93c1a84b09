package apperrors

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

type Kind string

const (
	KindConfiguration Kind = "configuration"
	KindInvalidTable  Kind = "invalid_table"
	KindInvalidLimit  Kind = "invalid_limit"
	KindInvalidColumn Kind = "invalid_column"
	KindInvalidInput  Kind = "invalid_input"
	KindNotFound      Kind = "not_found"
	KindUnauthorized  Kind = "unauthorized"
	KindDataAccess    Kind = "data_access"
)

// Error is a failure with a kind the presentation layer can render without
// inspecting the message.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, err error, message string) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func Configuration(missing []string) *Error {
	return &Error{Kind: KindConfiguration, Message: fmt.Sprintf("missing required settings: %v", missing)}
}

func InvalidTable(name string) *Error {
	return &Error{Kind: KindInvalidTable, Message: fmt.Sprintf("invalid table %q", name)}
}

func InvalidLimit(raw string) *Error {
	return &Error{Kind: KindInvalidLimit, Message: fmt.Sprintf("invalid limit %q: must be a non-negative integer", raw)}
}

func InvalidColumn(table, column string) *Error {
	return &Error{Kind: KindInvalidColumn, Message: fmt.Sprintf("table %s has no column %q", table, column)}
}

func InvalidInput(message string) *Error {
	return &Error{Kind: KindInvalidInput, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func DataAccess(err error, message string) *Error {
	return &Error{Kind: KindDataAccess, Message: message, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain, or "" if none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// IsConstraintViolation reports whether err carries a Postgres integrity
// constraint violation (SQLSTATE class 23).
func IsConstraintViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return len(pgErr.Code) == 5 && pgErr.Code[:2] == "23"
	}
	return false
}

// IsUniqueViolation reports whether err carries SQLSTATE 23505.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
