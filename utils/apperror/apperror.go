// Package apperror is the error taxonomy shared by services and handlers.
// Every failure that reaches a client is one of these kinds.
package apperror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

type Kind int

const (
	KindValidation Kind = iota + 1
	KindConflict
	KindAuth
	KindNotFound
	KindServer
)

// MySQL server error numbers.
const (
	mysqlDuplicateEntry  = 1062
	mysqlRowIsReferenced = 1451
	mysqlNoReferencedRow = 1452
)

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

// Status maps the kind to its HTTP status. Conflicts answer 400, the API
// contract the client already depends on.
func (e *Error) Status() int {
	switch e.Kind {
	case KindValidation, KindConflict:
		return http.StatusBadRequest
	case KindAuth:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}

func Unauthorized(msg string) *Error {
	return &Error{Kind: KindAuth, Message: msg}
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func Internal(err error) *Error {
	return &Error{Kind: KindServer, Message: "Internal server error", Err: err}
}

// Is reports whether err carries an *Error of the given kind.
func Is(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}

// FromDB translates a database error. Unique violations become conflicts with
// conflictMsg, broken foreign keys become validation errors and anything the
// driver reports that we do not recognise is a server error.
func FromDB(err error, conflictMsg string) error {
	if err == nil {
		return nil
	}

	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFound("Record not found")
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return &Error{Kind: KindConflict, Message: conflictMsg, Err: err}
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return &Error{Kind: KindValidation, Message: "Referenced record does not exist", Err: err}
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case mysqlDuplicateEntry:
			return &Error{Kind: KindConflict, Message: conflictMsg, Err: err}
		case mysqlRowIsReferenced, mysqlNoReferencedRow:
			return &Error{Kind: KindValidation, Message: "Referenced record does not exist", Err: err}
		}
	}

	return Internal(err)
}
