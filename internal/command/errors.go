// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Loreline Contributors

package command

import (
	"github.com/samber/oops"

	"github.com/loreline/loreline/internal/session"
)

// Error codes for parse and dispatch failures.
const (
	CodeEmptyInput      = "EMPTY_INPUT"
	CodeUnknownCommand  = "UNKNOWN_COMMAND"
	CodeModeRestricted  = "MODE_RESTRICTED"
	CodeInvalidArgs     = "INVALID_ARGS"
	CodeExecutionFailed = "EXECUTION_FAILED"
	CodeInvalidName     = "INVALID_NAME"
	CodeConfirmPending  = "CONFIRM_PENDING"
)

// Registry construction errors.
var (
	ErrEmptyCommandName = oops.Code(CodeInvalidName).Errorf("command name cannot be empty")
	ErrNilHandler       = oops.Code(CodeInvalidName).Errorf("command handler cannot be nil")
	ErrNilRegistry      = oops.Errorf("registry cannot be nil")
	ErrNilSession       = oops.Errorf("session cannot be nil")
	ErrNilServices      = oops.Errorf("services cannot be nil")
)

// ErrEmptyInput creates an error for blank input.
func ErrEmptyInput() error {
	return oops.Code(CodeEmptyInput).Errorf("no command provided")
}

// ErrUnknownCommand creates an error for an unresolved command name.
// The typed leading token is preserved for suggestion lookup.
func ErrUnknownCommand(typed string) error {
	return oops.Code(CodeUnknownCommand).
		With("command", typed).
		Errorf("unknown command: %s", typed)
}

// ErrModeRestricted creates an error for a command invoked outside its
// eligible mode.
func ErrModeRestricted(cmd string, required Eligibility, current session.Mode) error {
	return oops.Code(CodeModeRestricted).
		With("command", cmd).
		With("required_mode", string(required)).
		With("current_mode", current.String()).
		Errorf("command %s requires %s mode", cmd, required)
}

// ErrInvalidArgs creates an error for invalid arguments, raised by
// individual handlers rather than the engine.
func ErrInvalidArgs(cmd, usage string) error {
	return oops.Code(CodeInvalidArgs).
		With("command", cmd).
		With("usage", usage).
		Errorf("invalid arguments")
}

// ErrExecutionFailed wraps an arbitrary handler failure, preserving the
// underlying message.
func ErrExecutionFailed(cmd string, cause error) error {
	return oops.Code(CodeExecutionFailed).
		With("command", cmd).
		Wrap(cause)
}

// TypedCommand extracts the originally typed command token from an
// unknown-command error, or "" if absent.
func TypedCommand(err error) string {
	oopsErr, ok := oops.AsOops(err)
	if !ok {
		return ""
	}
	typed, _ := oopsErr.Context()["command"].(string)
	return typed
}

// PlayerMessage extracts a one-line player-facing message from an error.
func PlayerMessage(err error) string {
	if err == nil {
		return "Something went wrong. Try again."
	}
	oopsErr, ok := oops.AsOops(err)
	if !ok {
		return err.Error()
	}

	switch oopsErr.Code() {
	case CodeEmptyInput:
		return "Type a command, or 'help' to list them."
	case CodeUnknownCommand:
		return "Unknown command. Try 'help'."
	case CodeModeRestricted:
		if required, ok := oopsErr.Context()["required_mode"].(string); ok {
			return "That command needs " + required + " mode. Switch with 'mode " + required + "'."
		}
		return "That command is not available in this mode."
	case CodeInvalidArgs:
		if usage, ok := oopsErr.Context()["usage"].(string); ok && usage != "" {
			return "Usage: " + usage
		}
		return "Invalid arguments."
	case CodeConfirmPending:
		return "Another action is awaiting confirmation. Run 'confirm' or start over."
	case CodeExecutionFailed:
		return err.Error()
	default:
		return err.Error()
	}
}
