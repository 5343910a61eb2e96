package util

import (
	"errors"
	"fmt"
	"net/http"
)

// DomainError standardizes application errors. EnvelopeCode is the "code"
// value rendered in the response body ("0" for every failure), Message the
// localized text shown to the caller. Err carries the underlying cause for
// server-side logging only and is never rendered.
type DomainError struct {
	EnvelopeCode string
	Message      string
	HTTPStatus   int
	Err          error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(message string, status int) *DomainError {
	return &DomainError{EnvelopeCode: "0", Message: message, HTTPStatus: status}
}

// NewUnauthorized signals a failed credential or bearer check.
func NewUnauthorized(message string) error {
	return NewDomainError(message, http.StatusUnauthorized)
}

// NewNotFound signals a by-id lookup that matched zero rows.
func NewNotFound(message string) error {
	return NewDomainError(message, http.StatusNotFound)
}

// NewValidation signals malformed or out-of-range request parameters.
func NewValidation(message string) error {
	return NewDomainError(message, http.StatusUnprocessableEntity)
}

// NewTooManyRequests signals a throttled login.
func NewTooManyRequests(message string) error {
	return NewDomainError(message, http.StatusTooManyRequests)
}

// NewDataAccess wraps a query-collaborator failure. The caller-facing
// message is fixed; the cause is kept only for logs.
func NewDataAccess(err error) error {
	return &DomainError{
		EnvelopeCode: "0",
		Message:      "Lỗi lấy dữ liệu",
		HTTPStatus:   http.StatusInternalServerError,
		Err:          err,
	}
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return &DomainError{
		EnvelopeCode: "0",
		Message:      "Lỗi lấy dữ liệu",
		HTTPStatus:   http.StatusInternalServerError,
		Err:          err,
	}
}
