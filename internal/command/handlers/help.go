// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Loreline Contributors

package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/gobwas/glob"

	"github.com/loreline/loreline/internal/command"
)

// HelpHandler lists commands eligible for the current mode. With an
// argument it shows detailed help for one command, or filters the list
// when the argument contains glob metacharacters.
func HelpHandler(_ context.Context, exec *command.Execution) error {
	entries := exec.Services.Registry.Eligible(exec.Session.Mode)

	if len(exec.Args) == 0 {
		for _, e := range entries {
			fmt.Fprintf(exec.Output, "%-20s %s\n", e.Name, e.Help)
		}
		return nil
	}

	topic := strings.Join(exec.Args, " ")

	// A glob pattern filters the listing; a plain name shows full help.
	if strings.ContainsAny(topic, "*?[") {
		g, err := glob.Compile(topic)
		if err != nil {
			return command.ErrInvalidArgs("help", "help [command|pattern]")
		}
		matched := false
		for _, e := range entries {
			if g.Match(e.Name) {
				fmt.Fprintf(exec.Output, "%-20s %s\n", e.Name, e.Help)
				matched = true
			}
		}
		if !matched {
			fmt.Fprintf(exec.Output, "No commands match %q.\n", topic)
		}
		return nil
	}

	entry, ok := exec.Services.Registry.Lookup(topic)
	if !ok {
		fmt.Fprintf(exec.Output, "No help for %q.\n", topic)
		return nil
	}

	fmt.Fprintln(exec.Output, entry.Name+" - "+entry.Help)
	if entry.Usage != "" {
		fmt.Fprintln(exec.Output, "Usage: "+entry.Usage)
	}
	if len(entry.Aliases) > 0 {
		fmt.Fprintln(exec.Output, "Aliases: "+strings.Join(entry.Aliases, ", "))
	}
	if entry.Examples != "" {
		fmt.Fprintln(exec.Output, entry.Examples)
	}
	return nil
}

// HistoryHandler prints the session's submitted lines, oldest first.
func HistoryHandler(_ context.Context, exec *command.Execution) error {
	entries := exec.Services.History.Entries()
	if len(entries) == 0 {
		fmt.Fprintln(exec.Output, "No history yet.")
		return nil
	}
	for i, line := range entries {
		fmt.Fprintf(exec.Output, "%3d  %s\n", i+1, line)
	}
	return nil
}
