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

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "for another organization"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
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

// ExternalServiceError represents a failure of an external collaborator
// (vector index, answer generator, SMS gateway). It is always classified at
// the coordinator boundary and never propagated raw to an SMS sender.
type ExternalServiceError struct {
	Service string
	Message string
	Err     error
}

func (e *ExternalServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Service, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Service, e.Message)
}

// Unwrap exposes the underlying cause for errors.Is/As chains
func (e *ExternalServiceError) Unwrap() error {
	return e.Err
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrOrganizationNotFound = &NotFoundError{Entity: "organization"}
	ErrDocumentNotFound     = &NotFoundError{Entity: "document"}
	ErrShortCodeNotFound    = &NotFoundError{Entity: "shortcode"}
	ErrAreaNotFound         = &NotFoundError{Entity: "area"}
	ErrLinkNotFound         = &NotFoundError{Entity: "shortcode-document link"}
)

// Already Exists Errors
var (
	ErrOrganizationExists = &AlreadyExistsError{Entity: "organization", Context: "with this name or email"}
	ErrDocumentExists     = &AlreadyExistsError{Entity: "document", Context: "with this name in the organization"}
	ErrShortCodeExists    = &AlreadyExistsError{Entity: "shortcode", Context: "with this code"}
	ErrLinkExists         = &AlreadyExistsError{Entity: "shortcode-document link", Context: ""}
)

// Business Logic Errors
var (
	ErrEmptyQuestion           = errors.New("question text is empty")
	ErrNoRecipients            = errors.New("no recipients resolved for broadcast")
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
)

// Configuration Errors
var (
	ErrGatewayConfigMissing = &ConfigurationError{Message: "sms gateway configuration missing: AT_USERNAME or AT_API_KEY"}
	ErrIndexConfigMissing   = &ConfigurationError{Message: "vector index configuration missing: QDRANT_HOST"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsExternalService checks if an error is an ExternalServiceError
func IsExternalService(err error) bool {
	var extErr *ExternalServiceError
	return errors.As(err, &extErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewExternalServiceError creates a new ExternalServiceError wrapping a cause
func NewExternalServiceError(service, message string, err error) error {
	return &ExternalServiceError{Service: service, Message: message, Err: err}
}
