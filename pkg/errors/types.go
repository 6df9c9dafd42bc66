// Package errors provides typed errors for the flow project.
//
// This package defines domain-specific error types that provide structured
// error information for the config and workflow-management subsystems. All
// error types implement the standard error interface and support
// errors.Is() and errors.As() from the standard library and
// cockroachdb/errors. Discovery and matching deliberately have no error
// types: an unreadable subtree or a non-matching query is a normal
// outcome there, not a fault.
package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Re-exported helpers so callers need a single errors import.
var (
	New    = errors.New
	Newf   = errors.Newf
	Wrap   = errors.Wrap
	Wrapf  = errors.Wrapf
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
)

// ConfigError represents configuration-related errors.
type ConfigError struct {
	Field   string // Which config field has the issue
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("config error in %s: %s", e.Field, e.Message)
	}
	return "config error: " + e.Message
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// NewConfigError creates a new ConfigError.
func NewConfigError(field, message string) *ConfigError {
	return &ConfigError{Field: field, Message: message}
}

// NewConfigErrorWithCause creates a new ConfigError with an underlying cause.
func NewConfigErrorWithCause(field, message string, cause error) *ConfigError {
	return &ConfigError{Field: field, Message: message, Cause: cause}
}

// WorkflowError represents Alfred workflow-management errors.
type WorkflowError struct {
	Operation string // e.g., "link", "pack", "install"
	Message   string
	Cause     error
}

// Error implements the error interface.
func (e *WorkflowError) Error() string {
	if e.Operation != "" {
		return fmt.Sprintf("workflow %s failed: %s", e.Operation, e.Message)
	}
	return "workflow error: " + e.Message
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *WorkflowError) Unwrap() error {
	return e.Cause
}

// NewWorkflowError creates a new WorkflowError.
func NewWorkflowError(operation, message string) *WorkflowError {
	return &WorkflowError{Operation: operation, Message: message}
}

// NewWorkflowErrorWithCause creates a new WorkflowError with an underlying cause.
func NewWorkflowErrorWithCause(operation, message string, cause error) *WorkflowError {
	return &WorkflowError{Operation: operation, Message: message, Cause: cause}
}

// IsConfigError checks if an error or any error in its chain is a ConfigError.
func IsConfigError(err error) bool {
	var configErr *ConfigError
	return errors.As(err, &configErr)
}

// IsWorkflowError checks if an error or any error in its chain is a WorkflowError.
func IsWorkflowError(err error) bool {
	var wfErr *WorkflowError
	return errors.As(err, &wfErr)
}
