// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Loreline Contributors

// Package world contains the location model the engine plays in. It is the
// narrow collaborator surface consumed by command handlers and by argument
// completion; durable persistence of this data lives elsewhere.
package world

import (
	"sort"

	"github.com/oklog/ulid/v2"
)

// Location represents one place in the adventure.
type Location struct {
	ID          ulid.ULID
	Ref         string // unique, human-typeable identifier (e.g. "gatehouse")
	Title       string
	Description string
	Exits       map[string]string // direction → destination Ref
}

// ExitDirections returns the location's exit directions in sorted order.
func (l *Location) ExitDirections() []string {
	dirs := make([]string, 0, len(l.Exits))
	for d := range l.Exits {
		dirs = append(dirs, d)
	}
	sort.Strings(dirs)
	return dirs
}
