// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Loreline Contributors

package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "simple words",
			input: "go north",
			want:  []string{"go", "north"},
		},
		{
			name:  "collapses runs of whitespace",
			input: "  say   hello   world  ",
			want:  []string{"say", "hello", "world"},
		},
		{
			name:  "tabs delimit like spaces",
			input: "go\tnorth",
			want:  []string{"go", "north"},
		},
		{
			name:  "double quotes preserve spaces",
			input: `say "hello there friend"`,
			want:  []string{"say", "hello there friend"},
		},
		{
			name:  "single quotes preserve spaces",
			input: "edit title 'The Old Cellar'",
			want:  []string{"edit", "title", "The Old Cellar"},
		},
		{
			name:  "single quote inside double quotes is literal",
			input: `say "it's fine"`,
			want:  []string{"say", "it's fine"},
		},
		{
			name:  "unterminated quote runs to end of line",
			input: `say "hello there`,
			want:  []string{"say", "hello there"},
		},
		{
			name:  "quotes adjacent to text join one token",
			input: `say he"llo wor"ld`,
			want:  []string{"say", "hello world"},
		},
		{
			name:  "empty quoted span yields an empty token",
			input: `say ""`,
			want:  []string{"say", ""},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "whitespace only",
			input: "   \t  ",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.input))
		})
	}
}
