package service

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for service layer
var (
	ErrValidation    = errors.New("validation error")
	ErrRateLimited   = errors.New("rate limit exceeded")
	ErrNotConfigured = errors.New("mail delivery not configured")
)

// ValidationError carries every field problem found in a submission
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Problems, ", ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// ConfigurationError means the operator has to fix settings before mail can be sent.
// It is not retryable.
type ConfigurationError struct {
	Missing []string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("missing mail configuration: %s", strings.Join(e.Missing, ", "))
}

func (e *ConfigurationError) Unwrap() error {
	return ErrNotConfigured
}

// DispatchError reports which of the two emails could not be handed to the relay.
// At least one of the fields is non-nil.
type DispatchError struct {
	Admin        error
	Confirmation error
}

func (e *DispatchError) Error() string {
	var parts []string
	if e.Admin != nil {
		parts = append(parts, fmt.Sprintf("admin notification: %v", e.Admin))
	}
	if e.Confirmation != nil {
		parts = append(parts, fmt.Sprintf("confirmation: %v", e.Confirmation))
	}
	return "failed to dispatch " + strings.Join(parts, "; ")
}

func (e *DispatchError) Unwrap() []error {
	var errs []error
	if e.Admin != nil {
		errs = append(errs, e.Admin)
	}
	if e.Confirmation != nil {
		errs = append(errs, e.Confirmation)
	}
	return errs
}
