package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrValidation        = errors.New("validation error")
	ErrNetworkFailure    = errors.New("network failure")
	ErrMalformedResponse = errors.New("malformed response")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// FailureKind classifies why a lookup did not produce a value.
type FailureKind int

const (
	// FailureNetwork covers transport errors and non-2xx upstream statuses.
	FailureNetwork FailureKind = iota + 1
	// FailureMalformedResponse means the upstream answered 2xx but the body
	// lacked the fields the result type requires.
	FailureMalformedResponse
)

func (k FailureKind) String() string {
	switch k {
	case FailureNetwork:
		return "network_failure"
	case FailureMalformedResponse:
		return "malformed_response"
	default:
		return "unknown"
	}
}

// Failure is the reason carried by a failed Outcome. Err keeps the
// underlying detail for diagnostics and may be nil.
type Failure struct {
	Kind FailureKind
	Err  error
}

// NewNetworkFailure wraps err as a network failure.
func NewNetworkFailure(err error) *Failure {
	return &Failure{Kind: FailureNetwork, Err: err}
}

// NewMalformedResponse wraps err as a malformed-response failure.
func NewMalformedResponse(err error) *Failure {
	return &Failure{Kind: FailureMalformedResponse, Err: err}
}

func (f *Failure) Error() string {
	if f.Err == nil {
		return f.sentinel().Error()
	}
	return fmt.Sprintf("%s: %v", f.sentinel(), f.Err)
}

// Unwrap exposes both the kind sentinel and the detail, so errors.Is works
// against ErrNetworkFailure as well as e.g. context.DeadlineExceeded.
func (f *Failure) Unwrap() []error {
	if f.Err == nil {
		return []error{f.sentinel()}
	}
	return []error{f.sentinel(), f.Err}
}

func (f *Failure) sentinel() error {
	if f.Kind == FailureMalformedResponse {
		return ErrMalformedResponse
	}
	return ErrNetworkFailure
}

// AsFailure returns the *Failure in err's chain, or wraps err as a network
// failure when there is none.
func AsFailure(err error) *Failure {
	var f *Failure
	if errors.As(err, &f) {
		return f
	}
	return NewNetworkFailure(err)
}
