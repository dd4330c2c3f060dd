// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Loreline Contributors

// Package command implements the command resolution and interaction engine:
// tokenization, registry and alias lookup, longest-prefix resolution, fuzzy
// suggestions, autocomplete, history recall, and dispatch.
package command

import (
	"context"
	"io"

	"github.com/loreline/loreline/internal/session"
	"github.com/loreline/loreline/internal/world"
)

// Handler is the function signature for command handlers.
type Handler func(ctx context.Context, exec *Execution) error

// Eligibility restricts which session modes may run a command.
type Eligibility string

// Eligibility values.
const (
	EligibilityAny   Eligibility = "any"
	EligibilityPlay  Eligibility = "play"
	EligibilityBuild Eligibility = "build"
)

// Entry represents a registered command. Entries are immutable once
// registered; the registry owns all instances.
type Entry struct {
	Name     string      // canonical name, may contain spaces ("edit title")
	Aliases  []string    // alternate single-word names
	Mode     Eligibility // which session modes may run it
	Handler  Handler
	Help     string // short description (one line)
	Usage    string // usage pattern (e.g. "go <direction>")
	Examples string // worked examples for help output
}

// EligibleFor reports whether the entry may run in the given mode.
// Build-restricted commands additionally require elevation, checked by
// the dispatcher.
func (e Entry) EligibleFor(mode session.Mode) bool {
	switch e.Mode {
	case EligibilityPlay:
		return mode == session.ModePlay
	case EligibilityBuild:
		return mode == session.ModeBuild
	default:
		return true
	}
}

// Execution provides context for one command invocation.
type Execution struct {
	Session   *session.Context
	Args      []string // tokens remaining after the matched command name
	InvokedAs string   // the name or alias the player actually typed
	Output    io.Writer
	Services  *Services
}

// Services gives handlers access to collaborators. Handlers MUST NOT keep
// references to services beyond a single execution.
type Services struct {
	World       *world.Store
	History     *History
	Registry    *Registry
	BuilderHash string // argon2id PHC hash checked by "elevate"
}

// IdentifierSource supplies valid location identifiers for argument
// completion. The world store implements it.
type IdentifierSource interface {
	ListIdentifiers() []string
}
