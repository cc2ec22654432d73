// Package errors provides domain-specific error types.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// Error codes for domain errors.
const (
	ErrCodeConfiguration  = "CONFIGURATION_ERROR"
	ErrCodeAlreadyExists  = "ALREADY_EXISTS"
	ErrCodeNotFound       = "NOT_FOUND"
	ErrCodeStore          = "STORE_ERROR"
	ErrCodePartialFailure = "PARTIAL_FAILURE"
	ErrCodeValidation     = "VALIDATION_ERROR"
	ErrCodeInternal       = "INTERNAL_ERROR"
)

// DomainError represents a domain-specific error.
type DomainError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Details    string `json:"details,omitempty"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"`
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewConfigurationError reports a required configuration key that is missing or empty.
func NewConfigurationError(key string) *DomainError {
	return &DomainError{
		Code:       ErrCodeConfiguration,
		Message:    fmt.Sprintf("configuration error: %s is required", key),
		Details:    key,
		HTTPStatus: http.StatusInternalServerError,
	}
}

// NewAlreadyExistsError creates a new already exists error.
func NewAlreadyExistsError(resource, identifier string) *DomainError {
	return &DomainError{
		Code:       ErrCodeAlreadyExists,
		Message:    fmt.Sprintf("%s already exists", resource),
		Details:    identifier,
		HTTPStatus: http.StatusConflict,
	}
}

// NewNotFoundError creates a new not found error.
func NewNotFoundError(resource, identifier string) *DomainError {
	return &DomainError{
		Code:       ErrCodeNotFound,
		Message:    fmt.Sprintf("%s not found", resource),
		Details:    identifier,
		HTTPStatus: http.StatusNotFound,
	}
}

// NewStoreError wraps a failure surfaced by the document store.
// The underlying message is kept verbatim in Details.
func NewStoreError(operation string, err error) *DomainError {
	details := ""
	if err != nil {
		details = err.Error()
	}
	return &DomainError{
		Code:       ErrCodeStore,
		Message:    fmt.Sprintf("%s failed", operation),
		Details:    details,
		HTTPStatus: http.StatusBadGateway,
		Err:        err,
	}
}

// NewValidationError creates a new validation error.
func NewValidationError(message string, details string) *DomainError {
	return &DomainError{
		Code:       ErrCodeValidation,
		Message:    message,
		Details:    details,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewInternalError creates a new internal error.
func NewInternalError(message string, err error) *DomainError {
	details := ""
	if err != nil {
		details = err.Error()
	}
	return &DomainError{
		Code:       ErrCodeInternal,
		Message:    message,
		Details:    details,
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// PartialFailureError reports a multi-document operation where some
// documents could not be processed. Failures maps document ID to its error.
type PartialFailureError struct {
	*DomainError
	Failures map[string]error
}

// NewPartialFailureError creates a partial failure error for an operation
// that succeeded for `succeeded` documents and failed for the rest.
func NewPartialFailureError(operation string, succeeded int, failures map[string]error) *PartialFailureError {
	ids := FailedIDs(failures)
	return &PartialFailureError{
		DomainError: &DomainError{
			Code:       ErrCodePartialFailure,
			Message:    fmt.Sprintf("%s failed for %d of %d documents", operation, len(failures), succeeded+len(failures)),
			Details:    strings.Join(ids, ", "),
			HTTPStatus: http.StatusMultiStatus,
			Err:        joinFailures(ids, failures),
		},
		Failures: failures,
	}
}

// FailedIDs returns the failed document IDs in sorted order.
func FailedIDs(failures map[string]error) []string {
	ids := make([]string, 0, len(failures))
	for id := range failures {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func joinFailures(ids []string, failures map[string]error) error {
	errs := make([]error, 0, len(ids))
	for _, id := range ids {
		errs = append(errs, fmt.Errorf("document %s: %w", id, failures[id]))
	}
	return errors.Join(errs...)
}

// IsDomainError checks if the error is a domain error.
func IsDomainError(err error) bool {
	_, ok := GetDomainError(err)
	return ok
}

// GetDomainError extracts the domain error from an error.
func GetDomainError(err error) (*DomainError, bool) {
	var partial *PartialFailureError
	if errors.As(err, &partial) {
		return partial.DomainError, true
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr, true
	}
	return nil, false
}

func hasCode(err error, code string) bool {
	domainErr, ok := GetDomainError(err)
	return ok && domainErr.Code == code
}

// IsConfigurationError checks if the error is a configuration error.
func IsConfigurationError(err error) bool {
	return hasCode(err, ErrCodeConfiguration)
}

// IsAlreadyExists checks if the error is an already exists error.
func IsAlreadyExists(err error) bool {
	return hasCode(err, ErrCodeAlreadyExists)
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	return hasCode(err, ErrCodeNotFound)
}

// IsStoreError checks if the error is a store error.
func IsStoreError(err error) bool {
	return hasCode(err, ErrCodeStore)
}

// IsPartialFailure checks if the error is a partial failure error.
func IsPartialFailure(err error) bool {
	return hasCode(err, ErrCodePartialFailure)
}

// IsValidationError checks if the error is a validation error.
func IsValidationError(err error) bool {
	return hasCode(err, ErrCodeValidation)
}
