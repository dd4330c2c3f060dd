// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Loreline Contributors

package command

import (
	"strings"
)

// HistoryCapacity is the maximum number of lines retained. The oldest
// entry is evicted on overflow.
const HistoryCapacity = 50

// cursorAtRest is the sentinel cursor value meaning no navigation is in
// progress.
const cursorAtRest = -1

// Direction selects which way Recall walks the history.
type Direction int

// Recall directions.
const (
	Backward Direction = iota // toward older entries
	Forward                   // toward newer entries
)

// History is a bounded, ordered log of submitted input lines with cursor
// semantics for backward/forward recall. Entries run oldest to newest.
// It is not persisted across restarts.
type History struct {
	entries  []string
	cursor   int
	capacity int
}

// NewHistory creates an empty history with the default capacity.
func NewHistory() *History {
	return NewHistoryWithCapacity(HistoryCapacity)
}

// NewHistoryWithCapacity creates an empty history holding at most the
// given number of entries.
func NewHistoryWithCapacity(capacity int) *History {
	if capacity < 1 {
		capacity = HistoryCapacity
	}
	return &History{
		cursor:   cursorAtRest,
		capacity: capacity,
	}
}

// Append records a submitted line and resets the cursor to at-rest.
// Blank lines and lines identical to the most recent entry are ignored.
func (h *History) Append(line string) {
	if strings.TrimSpace(line) == "" {
		return
	}
	if n := len(h.entries); n > 0 && h.entries[n-1] == line {
		return
	}

	h.entries = append(h.entries, line)
	if len(h.entries) > h.capacity {
		h.entries = h.entries[1:]
	}
	h.cursor = cursorAtRest
}

// Recall moves the cursor and returns the entry it lands on.
//
// Backward: from at-rest jump to the newest entry; otherwise step one
// older, staying put at the oldest.
//
// Forward: from at-rest there is nothing to do; otherwise step one newer,
// and stepping past the newest resets the cursor to at-rest — the false
// return signals "clear the input line".
func (h *History) Recall(d Direction) (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}

	switch d {
	case Backward:
		switch {
		case h.cursor == cursorAtRest:
			h.cursor = len(h.entries) - 1
		case h.cursor > 0:
			h.cursor--
		}
		return h.entries[h.cursor], true

	case Forward:
		if h.cursor == cursorAtRest {
			return "", false
		}
		if h.cursor < len(h.entries)-1 {
			h.cursor++
			return h.entries[h.cursor], true
		}
		h.cursor = cursorAtRest
		return "", false
	}
	return "", false
}

// Entries returns a copy of the stored lines, oldest first.
func (h *History) Entries() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}

// Len returns the number of stored lines.
func (h *History) Len() int {
	return len(h.entries)
}
