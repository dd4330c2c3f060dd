// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Loreline Contributors

package handlers

import (
	"context"

	"github.com/loreline/loreline/internal/command"
)

// GoHandler moves the session through an exit of the current location.
func GoHandler(ctx context.Context, exec *command.Execution) error {
	if len(exec.Args) != 1 {
		return command.ErrInvalidArgs("go", "go <direction>")
	}
	loc := exec.Session.Location
	if loc == nil {
		return command.ErrInvalidArgs("go", "go <direction>")
	}

	dest, err := exec.Services.World.Move(loc, exec.Args[0])
	if err != nil {
		return err
	}
	exec.Session.Location = dest
	return LookHandler(ctx, exec)
}
