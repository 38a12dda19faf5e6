package errors

import (
	"errors"
	"fmt"
)

// Exit codes for teamforge-ctl
const (
	ExitSuccess         = 0
	ExitGeneralError    = 1
	ExitProjectNotFound = 2
	ExitAgentNotFound   = 3
	ExitConfigError     = 4
	ExitGitError        = 5
)

// TeamForgeError is the base error type for teamforge-ctl
type TeamForgeError struct {
	Code    int
	Message string
	Cause   error
}

func (e *TeamForgeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *TeamForgeError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the exit code for this error
func (e *TeamForgeError) ExitCode() int {
	return e.Code
}

// New creates a new TeamForgeError
func New(code int, message string) *TeamForgeError {
	return &TeamForgeError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a TeamForgeError
func Wrap(code int, message string, cause error) *TeamForgeError {
	return &TeamForgeError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Common error constructors

// ProjectNotFound returns an error for a project path that does not exist
func ProjectNotFound(path string) *TeamForgeError {
	return New(ExitProjectNotFound, fmt.Sprintf("project path not found: %s", path))
}

// NotADirectory returns an error for a project path that is not a directory
func NotADirectory(path string) *TeamForgeError {
	return New(ExitProjectNotFound, fmt.Sprintf("project path is not a directory: %s", path))
}

// AgentNotFound returns an error for a missing agent template
func AgentNotFound(id string) *TeamForgeError {
	return New(ExitAgentNotFound, fmt.Sprintf("agent not found: %s", id))
}

// ConfigError returns an error for configuration issues
func ConfigError(message string, cause error) *TeamForgeError {
	return Wrap(ExitConfigError, message, cause)
}

// GitError returns an error for git operations
func GitError(message string, cause error) *TeamForgeError {
	return Wrap(ExitGitError, message, cause)
}

// ValidationError returns an error for input validation failures
func ValidationError(message string) *TeamForgeError {
	return New(ExitGeneralError, message)
}

// GetExitCode extracts the exit code from an error
func GetExitCode(err error) int {
	var tfErr *TeamForgeError
	if errors.As(err, &tfErr) {
		return tfErr.ExitCode()
	}
	return ExitGeneralError
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target any) bool {
	return errors.As(err, target)
}
