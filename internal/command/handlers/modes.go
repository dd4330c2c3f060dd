// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Loreline Contributors

package handlers

import (
	"context"
	"fmt"

	"github.com/samber/oops"

	"github.com/loreline/loreline/internal/auth"
	"github.com/loreline/loreline/internal/command"
	"github.com/loreline/loreline/internal/session"
)

// ModeHandler switches the session between play and build mode. Entering
// build mode requires prior elevation.
func ModeHandler(_ context.Context, exec *command.Execution) error {
	if len(exec.Args) != 1 {
		return command.ErrInvalidArgs("mode", "mode <play|build>")
	}

	switch session.Mode(exec.Args[0]) {
	case session.ModePlay:
		exec.Session.Mode = session.ModePlay
		fmt.Fprintln(exec.Output, "You are now playing.")
	case session.ModeBuild:
		if !exec.Session.Elevated {
			return oops.Code(command.CodeModeRestricted).
				With("command", "mode").
				Errorf("build mode requires elevation; run 'elevate <password>' first")
		}
		exec.Session.Mode = session.ModeBuild
		fmt.Fprintln(exec.Output, "You are now building.")
	default:
		return command.ErrInvalidArgs("mode", "mode <play|build>")
	}
	return nil
}

// ElevateHandler verifies the builder password and marks the session
// elevated.
func ElevateHandler(_ context.Context, exec *command.Execution) error {
	if len(exec.Args) != 1 {
		return command.ErrInvalidArgs("elevate", "elevate <password>")
	}
	if exec.Services.BuilderHash == "" {
		return oops.Code(command.CodeExecutionFailed).
			Errorf("no builder password is configured")
	}

	ok, err := auth.Verify(exec.Args[0], exec.Services.BuilderHash)
	if err != nil {
		return oops.Code(command.CodeExecutionFailed).Wrap(err)
	}
	if !ok {
		return oops.Code(command.CodeExecutionFailed).
			Errorf("incorrect password")
	}

	exec.Session.Elevated = true
	fmt.Fprintln(exec.Output, "You feel a surge of authority.")
	return nil
}
