// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Loreline Contributors

package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/loreline/loreline/internal/command"
)

// SayHandler echoes speech back to the player.
func SayHandler(_ context.Context, exec *command.Execution) error {
	if len(exec.Args) == 0 {
		return command.ErrInvalidArgs("say", "say <message>")
	}
	fmt.Fprintf(exec.Output, "You say, %q\n", strings.Join(exec.Args, " "))
	return nil
}
