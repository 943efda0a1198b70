// Package common defines shared constants, sentinel errors and small helpers
// used across the RideShareX client layers. Callers should use errors.Is to
// match the sentinel values.
package common

import "errors"

var (
	// Storage errors.
	ErrorNotFound = errors.New("not found")

	// Input errors. Every *ValidationError matches ErrValidation.
	ErrValidation = errors.New("validation error")

	// Auth errors.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotAuthenticated   = errors.New("user not authenticated")
	ErrSessionExpired     = errors.New("your session has expired, please login again")

	// Transport errors.
	ErrNetworkUnavailable = errors.New("network unavailable")

	// Profile errors.
	ErrFileTooLarge = errors.New("file too large")
)

// Validation rule identifiers carried by ValidationError.Rule.
const (
	RuleRequired         = "required"
	RuleMinLength        = "min_length"
	RuleEmailFormat      = "email_format"
	RuleDuplicateEmail   = "duplicate_email"
	RulePasswordMismatch = "password_mismatch"
	RuleOneOf            = "one_of"
	RuleRange            = "range"
	RuleImageType        = "image_type"
)

// ValidationError reports a local input rule violation. It never reaches the
// network: callers validate before issuing requests.
type ValidationError struct {
	// Field is the input field that failed, e.g. "email".
	Field string
	// Rule is one of the Rule* constants.
	Rule string
	// Message is a human-readable text suitable for showing next to the field.
	Message string
}

// NewValidationError builds a ValidationError for the given field and rule.
func NewValidationError(field, rule, message string) *ValidationError {
	return &ValidationError{Field: field, Rule: rule, Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is makes errors.Is(err, ErrValidation) true for every ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// AsValidationError extracts the *ValidationError from err's chain, or nil.
func AsValidationError(err error) *ValidationError {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}
