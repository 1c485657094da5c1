package errors

import (
	"errors"
	"net/http"
)

// Domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrAlreadyExists      = errors.New("resource already exists")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrNoRowsUpdated      = errors.New("update matched no rows")
	ErrInvalidReason      = errors.New("rejection reason not in the allowed set")
	ErrNotApproved        = errors.New("business is not approved")
)

// Error codes returned in the JSON envelope
const (
	CodeNotFound           = "ERR_NOT_FOUND"
	CodeBadRequest         = "ERR_BAD_REQUEST"
	CodeUnauthorized       = "ERR_UNAUTHORIZED"
	CodeForbidden          = "ERR_FORBIDDEN"
	CodeConflict           = "ERR_CONFLICT"
	CodeInvalidCredentials = "ERR_INVALID_CREDENTIALS"
	CodeNoRowsUpdated      = "ERR_NO_ROWS_UPDATED"
	CodeInternal           = "ERR_INTERNAL"
)

// AppError carries an HTTP status, a machine-readable code and a
// user-facing message alongside the wrapped cause.
type AppError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new app error
func NewAppError(status int, code, message string, err error) *AppError {
	return &AppError{
		Status:  status,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common error constructors
func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, CodeNotFound, message, ErrNotFound)
}

func BadRequest(message string) *AppError {
	return NewAppError(http.StatusBadRequest, CodeBadRequest, message, ErrInvalidInput)
}

func Unauthorized(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, CodeUnauthorized, message, ErrUnauthorized)
}

func Forbidden(message string) *AppError {
	return NewAppError(http.StatusForbidden, CodeForbidden, message, ErrForbidden)
}

func Conflict(message string) *AppError {
	return NewAppError(http.StatusConflict, CodeConflict, message, ErrAlreadyExists)
}

func InternalError(err error) *AppError {
	return NewAppError(http.StatusInternalServerError, CodeInternal, "internal server error", err)
}
