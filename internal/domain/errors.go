package domain

import "fmt"

// Error types for consistent error handling across the API.

// ErrInvalidAmount indicates a monetary field that is not positive
// (or negative where zero is allowed).
type ErrInvalidAmount struct {
	Field   string
	Message string
}

func (e *ErrInvalidAmount) Error() string {
	return fmt.Sprintf("invalid amount on '%s': %s", e.Field, e.Message)
}

// ErrInvalidYield indicates a yield percentage that is not a finite number.
type ErrInvalidYield struct {
	Field string
}

func (e *ErrInvalidYield) Error() string {
	return fmt.Sprintf("invalid yield on '%s': must be a number", e.Field)
}

// ErrInvalidEnumValue indicates a value outside the recognized set.
type ErrInvalidEnumValue struct {
	Field string
	Value string
}

func (e *ErrInvalidEnumValue) Error() string {
	return fmt.Sprintf("invalid value for '%s': %q", e.Field, e.Value)
}

// ErrMissingField indicates a required text field that is empty after trimming.
type ErrMissingField struct {
	Field string
}

func (e *ErrMissingField) Error() string {
	return fmt.Sprintf("missing required field '%s'", e.Field)
}

// ErrNotFound indicates a resource was not found.
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ErrUnauthorized indicates invalid credentials or token.
type ErrUnauthorized struct {
	Message string
}

func (e *ErrUnauthorized) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "unauthorized"
}

// ErrForbidden indicates the user lacks permission for the operation.
type ErrForbidden struct {
	Action string
}

func (e *ErrForbidden) Error() string {
	return fmt.Sprintf("forbidden: %s", e.Action)
}

// ErrConflict indicates a resource already exists (e.g. duplicate email).
type ErrConflict struct {
	Message string
}

func (e *ErrConflict) Error() string {
	return e.Message
}

// ErrExternalService indicates a failure in an external service call.
type ErrExternalService struct {
	Service string
	Err     error
}

func (e *ErrExternalService) Error() string {
	return fmt.Sprintf("external service error [%s]: %v", e.Service, e.Err)
}

func (e *ErrExternalService) Unwrap() error {
	return e.Err
}

// ErrTimeout indicates an operation exceeded its deadline.
type ErrTimeout struct {
	Operation string
}

func (e *ErrTimeout) Error() string {
	return fmt.Sprintf("operation timed out: %s", e.Operation)
}

// ErrCircuitOpen indicates the circuit breaker is open.
type ErrCircuitOpen struct {
	Service string
}

func (e *ErrCircuitOpen) Error() string {
	return fmt.Sprintf("circuit breaker open for service: %s", e.Service)
}
