package cli

import (
	"github.com/fatih/color"
)

// CommandError carries the message, hint, and exit status reported for a
// failed command.
type CommandError struct {
	Message    string
	Cause      error
	Suggestion string
	ExitCode   int
}

// Error implements the error interface.
func (e CommandError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return "command failed"
}

// Unwrap exposes the wrapped error.
func (e CommandError) Unwrap() error {
	return e.Cause
}

// ExitStatus returns the process exit code associated with the error.
func (e CommandError) ExitStatus() int {
	if e.ExitCode != 0 {
		return e.ExitCode
	}
	return 1
}

func wrapError(message string, cause error, suggestion string, exitCode int) error {
	if message == "" && cause != nil {
		message = cause.Error()
	}
	return CommandError{Message: message, Cause: cause, Suggestion: suggestion, ExitCode: exitCode}
}

var hintColor = color.New(color.FgYellow)

func formatSuggestion(hint string) string {
	if hint == "" {
		return ""
	}
	return hintColor.Sprintf("hint: %s", hint)
}
