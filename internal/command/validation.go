// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Loreline Contributors

package command

import (
	"regexp"
	"strings"

	"github.com/samber/oops"
)

const (
	// MaxNameWords is the maximum number of words in a command name. The
	// resolver matches at most this many leading tokens.
	MaxNameWords = 3

	// MaxWordLength is the maximum length of one word of a name.
	MaxWordLength = 20
)

// wordPattern validates one word of a command or alias name: a letter or
// '?' followed by letters, digits, or _!?@#$%^+-
var wordPattern = regexp.MustCompile(`^[a-zA-Z?][a-zA-Z0-9_!?@#$%^+\-]{0,19}$`)

// ValidateCommandName validates a command name. Names may contain up to
// MaxNameWords single-space-separated words.
func ValidateCommandName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return oops.Code(CodeInvalidName).Errorf("command name cannot be empty")
	}

	words := strings.Split(trimmed, " ")
	if len(words) > MaxNameWords {
		return oops.Code(CodeInvalidName).
			With("name", trimmed).
			With("words", len(words)).
			With("max", MaxNameWords).
			Errorf("command name exceeds %d words", MaxNameWords)
	}
	for _, w := range words {
		if err := validateWord(w, "command"); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAliasName validates an alias. Like command names, aliases may
// contain up to MaxNameWords words so the resolver can match them at any
// prefix length.
func ValidateAliasName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return oops.Code(CodeInvalidName).Errorf("alias name cannot be empty")
	}

	words := strings.Split(trimmed, " ")
	if len(words) > MaxNameWords {
		return oops.Code(CodeInvalidName).
			With("name", trimmed).
			With("words", len(words)).
			With("max", MaxNameWords).
			Errorf("alias name exceeds %d words", MaxNameWords)
	}
	for _, w := range words {
		if err := validateWord(w, "alias"); err != nil {
			return err
		}
	}
	return nil
}

func validateWord(word, kind string) error {
	if word == "" {
		return oops.Code(CodeInvalidName).
			With("kind", kind).
			Errorf("%s name contains an empty word", kind)
	}
	if len(word) > MaxWordLength {
		return oops.Code(CodeInvalidName).
			With("kind", kind).
			With("length", len(word)).
			With("max", MaxWordLength).
			Errorf("%s name word exceeds maximum length of %d", kind, MaxWordLength)
	}
	if !wordPattern.MatchString(word) {
		return oops.Code(CodeInvalidName).
			With("kind", kind).
			With("name", word).
			Errorf("%s name must start with a letter and contain only letters, digits, or _!?@#$%%^+-", kind)
	}
	return nil
}
