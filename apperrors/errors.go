// Package apperrors carries the error taxonomy of the API and the
// translation of store errors into it.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const duplicateKeyErrorCode = "23505"

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("conflict")
)

// APIException is a business error carrying the HTTP status it should be
// answered with. It serializes as {"message": ..., "status_code": ...}.
type APIException struct {
	Message    string `json:"message"`
	StatusCode int    `json:"status_code"`
	cause      error
}

func (e *APIException) Error() string {
	return e.Message
}

func (e *APIException) Unwrap() error {
	return e.cause
}

// Is matches the sentinel that corresponds to the carried status.
func (e *APIException) Is(target error) bool {
	switch e.StatusCode {
	case http.StatusNotFound:
		return target == ErrNotFound
	case http.StatusBadRequest:
		return target == ErrInvalidInput
	case http.StatusConflict:
		return target == ErrConflict
	}
	return false
}

// New returns an APIException with an explicit status.
func New(message string, statusCode int) *APIException {
	return &APIException{Message: message, StatusCode: statusCode}
}

func NotFound(format string, args ...any) *APIException {
	return New(fmt.Sprintf(format, args...), http.StatusNotFound)
}

func BadRequest(format string, args ...any) *APIException {
	return New(fmt.Sprintf(format, args...), http.StatusBadRequest)
}

func Conflict(format string, args ...any) *APIException {
	return New(fmt.Sprintf(format, args...), http.StatusConflict)
}

// Wrap attaches an underlying cause that is kept out of the response body.
func (e *APIException) Wrap(err error) *APIException {
	e.cause = err
	return e
}

// FromError turns any error into the APIException that should be written
// to the client. Unknown errors become an opaque 500.
func FromError(err error) *APIException {
	var apiErr *APIException
	switch {
	case err == nil:
		return nil
	case errors.As(err, &apiErr):
		return apiErr
	case errors.Is(err, ErrNotFound):
		return NotFound("%s", err.Error()).Wrap(err)
	case errors.Is(err, ErrInvalidInput):
		return BadRequest("%s", err.Error()).Wrap(err)
	case errors.Is(err, ErrConflict):
		return Conflict("%s", err.Error()).Wrap(err)
	}
	return New("internal server error", http.StatusInternalServerError).Wrap(err)
}

// WrapDBError maps gorm and postgres errors onto the sentinels.
func WrapDBError(err error) error {
	var pgErr *pgconn.PgError

	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %w", ErrConflict, err)
	case errors.As(err, &pgErr) && pgErr.Code == duplicateKeyErrorCode:
		return fmt.Errorf("%w: %w", ErrConflict, err)
	}
	return err
}
