package cli

import (
	"errors"

	"github.com/Bauke/pushover"
)

// Exit codes for the pushover CLI. These support scripting around the tool,
// so a rejected API call can be told apart from a local usage error.
const (
	// ExitSuccess indicates successful command execution
	ExitSuccess = 0

	// ExitFailure indicates a generic failure
	ExitFailure = 1

	// ExitInvalidArguments indicates invalid or missing command arguments
	ExitInvalidArguments = 2

	// ExitAPIRejected indicates the Pushover API rejected the request
	ExitAPIRejected = 3
)

// exitError wraps an error with a specific exit code.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

// withExitCode attaches an exit code to an error.
func withExitCode(code int, err error) error {
	return &exitError{code: code, err: err}
}

// ExitCode returns the exit code for an error returned by Execute.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}
	var apiErr *pushover.APIError
	if errors.As(err, &apiErr) {
		return ExitAPIRejected
	}
	return ExitFailure
}
