// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Loreline Contributors

package command

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistory_AppendAndEntries(t *testing.T) {
	h := NewHistory()
	h.Append("look")
	h.Append("go north")

	assert.Equal(t, []string{"look", "go north"}, h.Entries())
	assert.Equal(t, 2, h.Len())
}

func TestHistory_IgnoresBlankLines(t *testing.T) {
	h := NewHistory()
	h.Append("")
	h.Append("   ")
	h.Append("\t")

	assert.Zero(t, h.Len())
}

func TestHistory_CoalescesConsecutiveDuplicates(t *testing.T) {
	h := NewHistory()
	h.Append("look")
	h.Append("look")
	h.Append("go north")
	h.Append("look")

	assert.Equal(t, []string{"look", "go north", "look"}, h.Entries())
}

func TestHistory_EvictsOldestAtCapacity(t *testing.T) {
	h := NewHistory()
	for i := range 60 {
		h.Append(fmt.Sprintf("cmd %d", i))
	}

	entries := h.Entries()
	require.Len(t, entries, HistoryCapacity)
	assert.Equal(t, "cmd 10", entries[0])
	assert.Equal(t, "cmd 59", entries[len(entries)-1])
}

func TestHistory_RecallBackward(t *testing.T) {
	h := NewHistory()
	h.Append("first")
	h.Append("second")
	h.Append("third")

	line, ok := h.Recall(Backward)
	require.True(t, ok)
	assert.Equal(t, "third", line)

	line, ok = h.Recall(Backward)
	require.True(t, ok)
	assert.Equal(t, "second", line)

	line, ok = h.Recall(Backward)
	require.True(t, ok)
	assert.Equal(t, "first", line)

	// At the oldest entry, further backward recall stays put.
	line, ok = h.Recall(Backward)
	require.True(t, ok)
	assert.Equal(t, "first", line)
}

func TestHistory_RecallForward(t *testing.T) {
	h := NewHistory()
	h.Append("first")
	h.Append("second")

	// Forward from rest clears nothing.
	_, ok := h.Recall(Forward)
	assert.False(t, ok)

	_, _ = h.Recall(Backward) // second
	_, _ = h.Recall(Backward) // first

	line, ok := h.Recall(Forward)
	require.True(t, ok)
	assert.Equal(t, "second", line)

	// Forward past the newest resets to rest and signals a clear.
	_, ok = h.Recall(Forward)
	assert.False(t, ok)

	// Backward after the reset starts at the newest again.
	line, ok = h.Recall(Backward)
	require.True(t, ok)
	assert.Equal(t, "second", line)
}

func TestHistory_RecallEmpty(t *testing.T) {
	h := NewHistory()

	_, ok := h.Recall(Backward)
	assert.False(t, ok)
	_, ok = h.Recall(Forward)
	assert.False(t, ok)
}

func TestHistory_AppendResetsCursor(t *testing.T) {
	h := NewHistory()
	h.Append("first")
	h.Append("second")

	_, _ = h.Recall(Backward) // second
	_, _ = h.Recall(Backward) // first

	h.Append("third")

	line, ok := h.Recall(Backward)
	require.True(t, ok)
	assert.Equal(t, "third", line)
}

func TestHistory_IgnoredAppendKeepsCursor(t *testing.T) {
	h := NewHistory()
	h.Append("first")
	h.Append("second")

	_, _ = h.Recall(Backward) // second

	// A duplicate of the newest entry is ignored and must not disturb
	// navigation.
	h.Append("second")

	line, ok := h.Recall(Backward)
	require.True(t, ok)
	assert.Equal(t, "first", line)
}

func TestHistory_CustomCapacity(t *testing.T) {
	h := NewHistoryWithCapacity(2)
	h.Append("a")
	h.Append("b")
	h.Append("c")

	assert.Equal(t, []string{"b", "c"}, h.Entries())
}
