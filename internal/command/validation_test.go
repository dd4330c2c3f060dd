// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Loreline Contributors

package command

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCommandName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "simple name", input: "look"},
		{name: "two words", input: "edit title"},
		{name: "three words", input: "edit exit north"},
		{name: "question mark alias form", input: "?"},
		{name: "digits after leading letter", input: "go2"},
		{name: "allowed punctuation", input: "wave!"},
		{name: "empty", input: "", wantErr: true},
		{name: "four words", input: "edit exit north fast", wantErr: true},
		{name: "leading digit", input: "2go", wantErr: true},
		{name: "word too long", input: strings.Repeat("a", MaxWordLength+1), wantErr: true},
		{name: "embedded quote", input: "say'", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCommandName(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateAliasName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "single letter", input: "l"},
		{name: "multi word alias", input: "edit desc"},
		{name: "question mark", input: "?"},
		{name: "empty", input: "", wantErr: true},
		{name: "too many words", input: "a b c d", wantErr: true},
		{name: "space run makes empty word", input: "edit  desc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAliasName(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
