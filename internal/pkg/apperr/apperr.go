// Package apperr defines the error kinds shared by every domain package.
//
// Domain packages declare their own sentinel errors on top of these kinds so
// the HTTP layer can map any of them to a status code with errors.Is.
package apperr

import "errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrValidation   = errors.New("validation error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)

// Error carries a machine readable code next to one of the kinds above.
type Error struct {
	Kind    error
	Code    string
	Message string
	Details any
}

func (e *Error) Error() string { return e.Message }
func (e *Error) Unwrap() error { return e.Kind }

func New(kind error, code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

func NotFound(code, message string) *Error   { return New(ErrNotFound, code, message) }
func Conflict(code, message string) *Error   { return New(ErrConflict, code, message) }
func Validation(code, message string) *Error { return New(ErrValidation, code, message) }

// WithDetails returns a copy of e carrying per-field details.
func (e *Error) WithDetails(details any) *Error {
	cp := *e
	cp.Details = details
	return &cp
}

// Code returns the code of the first *Error in err's chain, or "".
func Code(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
