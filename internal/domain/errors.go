// Copyright The Eventwire Authors.
// SPDX-License-Identifier: MIT

package domain

import (
	"errors"
	"fmt"
)

// ErrorType represents the semantic category of an error.
type ErrorType int

const (
	ErrorTypeValidation  ErrorType = iota // bad settings or form input; blocks remote sync but not persistence
	ErrorTypeApplication                  // remote call completed but reported an error payload
	ErrorTypeTransport                    // remote call failed at the HTTP/auth layer
	ErrorTypePartial                      // some of a batch of registrant operations failed
	ErrorTypeNotFound                     // resource not found
	ErrorTypeInternal                     // everything else
	ErrorTypeUnavailable                  // a dependency is not ready
)

// DomainError represents an error with semantic type information.
type DomainError struct {
	Type    ErrorType
	Message string
	Err     error // underlying error for wrapping
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// GetErrorType returns the semantic type of an error.
func GetErrorType(err error) ErrorType {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Type
	}
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return ErrorTypeValidation
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return ErrorTypeTransport
	}
	var partialErr *PartialFailureError
	if errors.As(err, &partialErr) {
		return ErrorTypePartial
	}
	return ErrorTypeInternal
}

func NewApplicationError(message string, err ...error) *DomainError {
	return &DomainError{Type: ErrorTypeApplication, Message: message, Err: errors.Join(err...)}
}

func NewNotFoundError(message string, err ...error) *DomainError {
	return &DomainError{Type: ErrorTypeNotFound, Message: message, Err: errors.Join(err...)}
}

func NewInternalError(message string, err ...error) *DomainError {
	return &DomainError{Type: ErrorTypeInternal, Message: message, Err: errors.Join(err...)}
}

func NewUnavailableError(message string, err ...error) *DomainError {
	return &DomainError{Type: ErrorTypeUnavailable, Message: message, Err: errors.Join(err...)}
}

// ValidationError is a settings validation failure scoped to a single field.
// It blocks remote synchronization but never blocks persisting the submitted
// settings, so the user does not lose their input.
type ValidationError struct {
	Field   string // settings field key
	Label   string // human-readable field label, used in the attached message
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a field-scoped validation error.
func NewValidationError(field, label, format string, args ...any) *ValidationError {
	return &ValidationError{
		Field:   field,
		Label:   label,
		Message: fmt.Sprintf(format, args...),
	}
}

// APIError is the typed error raised by the Zoom client on transport or
// authentication failure, or when the API reports a structured error body.
type APIError struct {
	StatusCode int    // HTTP status, 0 when the request never completed
	Code       int    // Zoom application error code, 0 when absent
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	switch {
	case e.Code != 0:
		return fmt.Sprintf("zoom API error (code %d): %s", e.Code, e.Message)
	case e.StatusCode != 0:
		return fmt.Sprintf("zoom API error (status %d): %s", e.StatusCode, e.Message)
	case e.Err != nil:
		return "zoom API request failed: " + e.Err.Error()
	default:
		return "zoom API request failed: " + e.Message
	}
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// PartialFailureError aggregates individual registrant operation failures
// into a single error raised after the whole batch has been attempted.
type PartialFailureError struct {
	Op        string // operation being attempted, e.g. "register" or "modify"
	Failed    int
	Attempted int
}

func (e *PartialFailureError) Error() string {
	return fmt.Sprintf("%s failed for %d of %d registrants", e.Op, e.Failed, e.Attempted)
}

// NewPartialFailureError creates an aggregated error for a batch where
// failed out of attempted registrant operations did not succeed.
func NewPartialFailureError(op string, failed, attempted int) *PartialFailureError {
	return &PartialFailureError{Op: op, Failed: failed, Attempted: attempted}
}
