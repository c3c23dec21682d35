// Package apierror classifies every failure the API can report. Business
// rule violations are tagged where they are detected; anything else is
// wrapped as an InternalError.
package apierror

import (
	"errors"
	"net/http"
)

// ValidationError reports malformed, missing or conflicting input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NotFoundError reports a referenced document that does not exist.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// InternalError wraps an unexpected store or connectivity failure.
type InternalError struct {
	Err error
}

func (e *InternalError) Error() string {
	if e.Err == nil {
		return "internal error"
	}
	return e.Err.Error()
}

func (e *InternalError) Unwrap() error { return e.Err }

func Validation(msg string) error { return &ValidationError{Message: msg} }

func NotFound(msg string) error { return &NotFoundError{Message: msg} }

// Internal wraps err unless it is already classified.
func Internal(err error) error {
	if err == nil {
		return nil
	}
	if Classified(err) {
		return err
	}
	return &InternalError{Err: err}
}

// Classified reports whether err already carries an API error kind.
func Classified(err error) bool {
	var v *ValidationError
	var n *NotFoundError
	var i *InternalError
	return errors.As(err, &v) || errors.As(err, &n) || errors.As(err, &i)
}

// Status maps err to the HTTP status it is reported with.
func Status(err error) int {
	var v *ValidationError
	if errors.As(err, &v) {
		return http.StatusBadRequest
	}
	var n *NotFoundError
	if errors.As(err, &n) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// Body is the error envelope written for every 4xx/5xx response.
type Body struct {
	Error string `json:"error"`
}

func NewBody(err error) Body {
	return Body{Error: err.Error()}
}
