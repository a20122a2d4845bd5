package apperrors

import "errors"

// Sentinel errors. Services wrap these in a CustomError carrying the
// user-facing message; the error middleware maps each sentinel to an HTTP
// status code.
var (
	ErrValidationFailed   = errors.New("validation failed")
	ErrResourceNotFound   = errors.New("resource not found")
	ErrConflict           = errors.New("conflict")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// CustomError pairs a sentinel error with the message shown to the client.
type CustomError struct {
	Err     error
	Message string
}

// Error implements the error interface.
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap lets errors.Is match the underlying sentinel.
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a 400-class error with a message.
func NewValidationError(message string) error {
	return &CustomError{Err: ErrValidationFailed, Message: message}
}

// NewNotFoundError creates a 404-class error with a message.
func NewNotFoundError(message string) error {
	return &CustomError{Err: ErrResourceNotFound, Message: message}
}

// NewConflictError creates a conflict error with a humanized message.
// Conflicts surface as 400 to the client, matching the original surface.
func NewConflictError(message string) error {
	return &CustomError{Err: ErrConflict, Message: message}
}
