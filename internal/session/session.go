// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Loreline Contributors

// Package session holds the per-player interaction state the engine
// threads through command execution.
package session

import (
	"github.com/oklog/ulid/v2"

	"github.com/loreline/loreline/internal/world"
)

// Mode is the session's interaction mode.
type Mode string

// Session modes.
const (
	ModePlay  Mode = "play"
	ModeBuild Mode = "build"
)

// String returns the mode name.
func (m Mode) String() string {
	return string(m)
}

// PendingAction is a staged destructive action awaiting confirmation.
type PendingAction struct {
	Command string // the command that staged the action
	Target  string // the identifier it will act on
}

// Context is the state of one interactive session. A session is owned by
// a single console loop; fields are not synchronized.
type Context struct {
	ID       ulid.ULID
	Player   string
	Mode     Mode
	Elevated bool
	Pending  *PendingAction
	Location *world.Location
	Quitting bool
}

// New creates a session for a player at a starting location, in play
// mode and without elevation.
func New(player string, start *world.Location) *Context {
	return &Context{
		ID:       ulid.Make(),
		Player:   player,
		Mode:     ModePlay,
		Location: start,
	}
}

// Editing reports whether the session is in an elevated build context at
// a known location. Identifier completion and world mutation both
// require it.
func (c *Context) Editing() bool {
	return c.Mode == ModeBuild && c.Elevated && c.Location != nil
}
