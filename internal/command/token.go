// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Loreline Contributors

package command

import (
	"strings"
	"unicode"
)

// Tokenize splits a raw input line into whitespace-delimited tokens. A
// single or double quote opens a span closed only by the matching quote;
// whitespace inside the span is preserved and the quotes themselves are
// dropped. There is no escaping; an unterminated quote consumes the rest
// of the line. Empty input yields no tokens.
func Tokenize(line string) []string {
	var (
		tokens  []string
		current strings.Builder
		quote   rune // active quote character, 0 when outside a span
		open    bool // a token is being accumulated
	)

	for _, r := range line {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '\'' || r == '"':
			quote = r
			open = true
		case unicode.IsSpace(r):
			if open {
				tokens = append(tokens, current.String())
				current.Reset()
				open = false
			}
		default:
			current.WriteRune(r)
			open = true
		}
	}
	if open {
		tokens = append(tokens, current.String())
	}
	return tokens
}
