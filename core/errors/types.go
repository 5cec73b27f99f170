// ABOUTME: Custom error types for the core business logic
// ABOUTME: Provides structured errors for better error handling and API responses

package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for authentication and authorization failures.
var (
	ErrUnauthorized = errors.New("invalid credentials")
	ErrForbidden    = errors.New("operation not permitted")
)

// NotFoundError represents a resource not found error
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// InvalidQueryError represents an unsupported filter predicate
type InvalidQueryError struct {
	Field string
}

// Error implements the error interface
func (e *InvalidQueryError) Error() string {
	return fmt.Sprintf("unsupported filter field '%s'", e.Field)
}

// StoreUnavailableError represents a failure in the underlying record store
type StoreUnavailableError struct {
	Op  string
	Err error
}

// Error implements the error interface
func (e *StoreUnavailableError) Error() string {
	return fmt.Sprintf("store unavailable during %s: %v", e.Op, e.Err)
}

// Unwrap exposes the underlying store error
func (e *StoreUnavailableError) Unwrap() error {
	return e.Err
}

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsInvalidQuery checks if an error is an InvalidQueryError
func IsInvalidQuery(err error) bool {
	var queryErr *InvalidQueryError
	return errors.As(err, &queryErr)
}

// IsStoreUnavailable checks if an error is a StoreUnavailableError
func IsStoreUnavailable(err error) bool {
	var storeErr *StoreUnavailableError
	return errors.As(err, &storeErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
