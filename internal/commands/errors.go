package commands

import (
	"context"
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

// Text codes attached to wrapped command errors so callers can branch on the
// failure mode without matching message strings.
const (
	codeValidationFailed = "COMMAND_VALIDATION_FAILED"
	codeContextCanceled  = "COMMAND_CONTEXT_CANCELED"
	codeContextTimeout   = "COMMAND_CONTEXT_TIMEOUT"
	codeContextError     = "COMMAND_CONTEXT_ERROR"
	codeExecutionFailed  = "COMMAND_EXECUTION_FAILED"
)

func wrapValidationError(err error) error {
	return tag(err, goerrors.CategoryValidation, "command validation failed", codeValidationFailed)
}

func wrapContextError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.Canceled):
		return tag(err, goerrors.CategoryCommand, "command execution cancelled", codeContextCanceled)
	case errors.Is(err, context.DeadlineExceeded):
		return tag(err, goerrors.CategoryCommand, "command execution deadline exceeded", codeContextTimeout)
	default:
		return tag(err, goerrors.CategoryCommand, "command context error", codeContextError)
	}
}

func wrapExecuteError(err error) error {
	return tag(err, goerrors.CategoryCommand, "command execution failed", codeExecutionFailed)
}

// tag leaves already-wrapped errors untouched so the innermost failure keeps
// its original category and code.
func tag(err error, category goerrors.Category, message, code string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, category, message).WithTextCode(code)
}
