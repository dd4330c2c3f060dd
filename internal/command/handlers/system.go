// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Loreline Contributors

package handlers

import (
	"context"
	"fmt"

	"github.com/loreline/loreline/internal/command"
)

// QuitHandler marks the session as finished; the console loop exits after
// the current line.
func QuitHandler(_ context.Context, exec *command.Execution) error {
	exec.Session.Quitting = true
	fmt.Fprintln(exec.Output, "Goodbye!")
	return nil
}

// WhereHandler names the current location without the full description.
func WhereHandler(_ context.Context, exec *command.Execution) error {
	loc := exec.Session.Location
	if loc == nil {
		fmt.Fprintln(exec.Output, "You are nowhere.")
		return nil
	}
	fmt.Fprintf(exec.Output, "You are at %s (%s).\n", loc.Title, loc.Ref)
	return nil
}
