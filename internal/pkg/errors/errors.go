package errors

import (
	"errors"
	"fmt"
)

// AppError - application error carrying a stable code and the HTTP status it maps to
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Err        error  `json:"-"`

	opaque bool
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the underlying cause to errors.Is / errors.As
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches any AppError with the same code, so wrapped copies still match their sentinel
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// PublicMessage - text sent to clients: the wrapped cause verbatim, otherwise the sentinel message
func (e *AppError) PublicMessage() string {
	if e.Err != nil && !e.opaque {
		return e.Err.Error()
	}
	return e.Message
}

func New(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

// Wrap returns a copy of the sentinel carrying err as its cause
func (e *AppError) Wrap(err error) *AppError {
	return &AppError{
		Code:       e.Code,
		Message:    e.Message,
		StatusCode: e.StatusCode,
		Err:        err,
		opaque:     e.opaque,
	}
}

// Opaque marks the error so its cause is logged but never shown to clients
func (e *AppError) Opaque() *AppError {
	e.opaque = true
	return e
}

// Wrapf is Wrap with a formatted cause
func (e *AppError) Wrapf(format string, args ...interface{}) *AppError {
	return e.Wrap(fmt.Errorf(format, args...))
}

// As reports whether err is (or wraps) an AppError and returns it
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// Is is a shortcut for the standard library errors.Is
func Is(err, target error) bool {
	return errors.Is(err, target)
}
