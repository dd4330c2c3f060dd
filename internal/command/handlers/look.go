// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Loreline Contributors

// Package handlers provides the built-in command handlers.
package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/oops"

	"github.com/loreline/loreline/internal/command"
)

// LookHandler displays the current location's title, description, and
// exits.
func LookHandler(_ context.Context, exec *command.Execution) error {
	loc := exec.Session.Location
	if loc == nil {
		return oops.Code(command.CodeExecutionFailed).
			Errorf("you are nowhere")
	}

	fmt.Fprintln(exec.Output, loc.Title)
	if loc.Description != "" {
		fmt.Fprintln(exec.Output, loc.Description)
	}
	if dirs := loc.ExitDirections(); len(dirs) > 0 {
		fmt.Fprintln(exec.Output, "Exits: "+strings.Join(dirs, ", "))
	} else {
		fmt.Fprintln(exec.Output, "There are no obvious exits.")
	}
	return nil
}
