// Package errors provides structured error types and exit codes for gtest-md.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Exit codes returned by the CLI.
const (
	ExitSuccess      = 0 // Success
	ExitNotFound     = 1 // Input report does not exist
	ExitParseError   = 2 // Input report is not well-formed XML
	ExitConfigError  = 3 // Invalid flags or configuration file
	ExitRuntimeError = 4 // Runtime error (writing an output artifact, etc.)
)

// ErrorKind represents the type of error.
type ErrorKind int

const (
	KindRuntime ErrorKind = iota
	KindNotFound
	KindParse
	KindConfig
	KindIO
)

// ReportError is the base error type for gtest-md.
type ReportError struct {
	Kind    ErrorKind
	Message string
	Path    string // File the error refers to, if any
	Cause   error  // Underlying error
}

func (e *ReportError) Error() string {
	if e.Path != "" && e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Message, e.Path, e.Cause)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Path)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ReportError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the appropriate exit code for this error.
func (e *ReportError) ExitCode() int {
	switch e.Kind {
	case KindNotFound:
		return ExitNotFound
	case KindParse:
		return ExitParseError
	case KindConfig:
		return ExitConfigError
	default:
		return ExitRuntimeError
	}
}

// Newf creates a runtime error for conditions that indicate a bug rather than
// bad input.
func Newf(format string, args ...interface{}) *ReportError {
	return &ReportError{
		Kind:    KindRuntime,
		Message: fmt.Sprintf(format, args...),
	}
}

// NotFound creates an error for a missing input file.
func NotFound(what, path string) *ReportError {
	return &ReportError{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("%s not found", what),
		Path:    path,
	}
}

// Parse creates an error for an input that could not be parsed.
func Parse(path string, cause error) *ReportError {
	return &ReportError{
		Kind:    KindParse,
		Message: "failed to parse XML",
		Path:    path,
		Cause:   cause,
	}
}

// Config creates a new configuration error.
func Config(message string) *ReportError {
	return &ReportError{
		Kind:    KindConfig,
		Message: message,
	}
}

// Configf creates a new configuration error with formatting.
func Configf(format string, args ...interface{}) *ReportError {
	return Config(fmt.Sprintf(format, args...))
}

// IO wraps a failure to write an output artifact.
func IO(message, path string, cause error) *ReportError {
	return &ReportError{
		Kind:    KindIO,
		Message: message,
		Path:    path,
		Cause:   cause,
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) *ReportError {
	return &ReportError{
		Kind:    KindRuntime,
		Message: message,
		Cause:   err,
	}
}

// IsKind reports whether any error in err's chain is a ReportError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var re *ReportError
	if stderrors.As(err, &re) {
		return re.Kind == kind
	}
	return false
}

// GetExitCode returns the exit code for an error.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var re *ReportError
	if stderrors.As(err, &re) {
		return re.ExitCode()
	}
	return ExitRuntimeError
}
