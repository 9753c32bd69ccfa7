package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// FetchError is returned when the member API cannot be reached or answers
// with a non-success status other than 404.
type FetchError struct {
	Resource   string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("failed to fetch %s: status=%d: %v", e.Resource, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("failed to fetch %s: %v", e.Resource, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Entity Not Found Errors
var (
	ErrMemberNotFound       = &NotFoundError{Entity: "member"}
	ErrMemberHistoryMissing = &NotFoundError{Entity: "member history"}
	ErrSessionNotFound      = &NotFoundError{Entity: "session"}
)

// Business Logic Errors
var (
	ErrDateBeforeEpoch     = errors.New("date is before the cycle calendar epoch")
	ErrInvalidCycleCount   = errors.New("cycle count must be at least 1")
	ErrSelectionSuperseded = errors.New("member selection superseded by a newer request")
)

// Configuration Errors
var (
	ErrMemberAPINotConfigured = &ConfigurationError{Message: "MEMBER_API_URL is not configured"}
	ErrInvalidWeeksPerCycle   = &ConfigurationError{Message: "weeks_per_cycle must be between 1 and 26"}
	ErrMissingWeekADate       = &ConfigurationError{Message: "week_a_date is required"}
)

// Helper Functions

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

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// IsFetch checks if an error is a FetchError
func IsFetch(err error) bool {
	var fetchErr *FetchError
	return errors.As(err, &fetchErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}

// NewFetchError creates a new FetchError for the given upstream resource
func NewFetchError(resource string, statusCode int, err error) error {
	return &FetchError{Resource: resource, StatusCode: statusCode, Err: err}
}
