// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Loreline Contributors

package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/oops"

	"github.com/loreline/loreline/internal/command"
	"github.com/loreline/loreline/internal/session"
	"github.com/loreline/loreline/internal/world"
)

// EditTitleHandler sets the current location's title.
func EditTitleHandler(_ context.Context, exec *command.Execution) error {
	if len(exec.Args) == 0 {
		return command.ErrInvalidArgs("edit title", "edit title <text>")
	}
	loc := exec.Session.Location
	title := strings.Join(exec.Args, " ")
	if err := exec.Services.World.SetTitle(loc.Ref, title); err != nil {
		return err
	}
	fmt.Fprintf(exec.Output, "Title of %s set.\n", loc.Ref)
	return nil
}

// EditDescriptionHandler sets the current location's description.
func EditDescriptionHandler(_ context.Context, exec *command.Execution) error {
	if len(exec.Args) == 0 {
		return command.ErrInvalidArgs("edit description", "edit description <text>")
	}
	loc := exec.Session.Location
	if err := exec.Services.World.SetDescription(loc.Ref, strings.Join(exec.Args, " ")); err != nil {
		return err
	}
	fmt.Fprintf(exec.Output, "Description of %s set.\n", loc.Ref)
	return nil
}

// EditLocationHandler moves the editing focus to another location.
func EditLocationHandler(_ context.Context, exec *command.Execution) error {
	if len(exec.Args) != 1 {
		return command.ErrInvalidArgs("edit location", "edit location <ref>")
	}
	loc, err := exec.Services.World.Get(exec.Args[0])
	if err != nil {
		return err
	}
	exec.Session.Location = loc
	fmt.Fprintf(exec.Output, "Now editing %s (%s).\n", loc.Ref, loc.Title)
	return nil
}

// TeleportHandler jumps the session to any location by identifier.
func TeleportHandler(ctx context.Context, exec *command.Execution) error {
	if len(exec.Args) != 1 {
		return command.ErrInvalidArgs("teleport", "teleport <ref>")
	}
	loc, err := exec.Services.World.Get(exec.Args[0])
	if err != nil {
		return err
	}
	exec.Session.Location = loc
	return LookHandler(ctx, exec)
}

// DigHandler creates a new location and links it from the current one.
func DigHandler(_ context.Context, exec *command.Execution) error {
	if len(exec.Args) < 2 {
		return command.ErrInvalidArgs("dig", "dig <direction> <ref> [title]")
	}
	direction, ref := exec.Args[0], exec.Args[1]
	title := ref
	if len(exec.Args) > 2 {
		title = strings.Join(exec.Args[2:], " ")
	}

	loc := &world.Location{Ref: ref, Title: title}
	if err := exec.Services.World.Add(loc); err != nil {
		return err
	}
	if err := exec.Services.World.Link(exec.Session.Location.Ref, direction, ref); err != nil {
		return err
	}
	fmt.Fprintf(exec.Output, "Dug %s to the %s.\n", ref, direction)
	return nil
}

// LinkHandler adds an exit from the current location.
func LinkHandler(_ context.Context, exec *command.Execution) error {
	if len(exec.Args) != 2 {
		return command.ErrInvalidArgs("link", "link <direction> <ref>")
	}
	direction, ref := exec.Args[0], exec.Args[1]
	if err := exec.Services.World.Link(exec.Session.Location.Ref, direction, ref); err != nil {
		return err
	}
	fmt.Fprintf(exec.Output, "Linked %s to %s.\n", direction, ref)
	return nil
}

// DemolishHandler stages the removal of a location. Nothing is removed
// until "confirm" runs; the staged action stays pending across other
// commands.
func DemolishHandler(_ context.Context, exec *command.Execution) error {
	if len(exec.Args) != 1 {
		return command.ErrInvalidArgs("demolish", "demolish <ref>")
	}
	ref := exec.Args[0]

	if exec.Session.Pending != nil {
		return oops.Code(command.CodeConfirmPending).
			With("pending", exec.Session.Pending.Command).
			Errorf("another action is already awaiting confirmation")
	}
	if exec.Session.Location != nil && exec.Session.Location.Ref == ref {
		return oops.Code(command.CodeExecutionFailed).
			With("ref", ref).
			Errorf("you can't demolish the location you're standing in")
	}
	if _, err := exec.Services.World.Get(ref); err != nil {
		return err
	}

	exec.Session.Pending = &session.PendingAction{Command: "demolish", Target: ref}
	fmt.Fprintf(exec.Output, "This will remove %s and every exit leading to it. Run 'confirm' to proceed.\n", ref)
	return nil
}

// ConfirmHandler executes the pending destructive action.
func ConfirmHandler(_ context.Context, exec *command.Execution) error {
	pending := exec.Session.Pending
	if pending == nil {
		fmt.Fprintln(exec.Output, "Nothing to confirm.")
		return nil
	}
	exec.Session.Pending = nil

	switch pending.Command {
	case "demolish":
		if err := exec.Services.World.Remove(pending.Target); err != nil {
			return err
		}
		fmt.Fprintf(exec.Output, "%s crumbles to dust.\n", pending.Target)
		return nil
	default:
		return oops.Code(command.CodeExecutionFailed).
			With("pending", pending.Command).
			Errorf("don't know how to confirm %q", pending.Command)
	}
}
