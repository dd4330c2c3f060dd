// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Loreline Contributors

package command

import (
	"strings"
)

// ParsedCommand is the result of resolving one input line. It is produced
// per line and never persisted.
type ParsedCommand struct {
	Name  string   // resolved primary command name, empty if none
	Args  []string // tokens remaining after the matched name
	Valid bool
	Err   error // set when Valid is false
	Raw   string
}

// Parse tokenizes a line and resolves the longest matching command name.
// Up to MaxNameWords leading tokens are tried, longest first; at each
// length the primary-name table takes precedence over the alias table.
// When nothing matches, the first token alone is treated as the attempted
// command for error reporting.
func (r *Registry) Parse(line string) ParsedCommand {
	tokens := Tokenize(line)
	if len(tokens) == 0 {
		return ParsedCommand{Raw: line, Err: ErrEmptyInput()}
	}

	limit := MaxNameWords
	if len(tokens) < limit {
		limit = len(tokens)
	}

	for n := limit; n >= 1; n-- {
		candidate := strings.Join(tokens[:n], " ")
		if _, ok := r.Get(candidate); ok {
			return ParsedCommand{
				Name:  candidate,
				Args:  tokens[n:],
				Valid: true,
				Raw:   line,
			}
		}
		if primary := r.ResolveAlias(candidate); primary != candidate {
			if _, ok := r.Get(primary); ok {
				return ParsedCommand{
					Name:  primary,
					Args:  tokens[n:],
					Valid: true,
					Raw:   line,
				}
			}
		}
	}

	// No length matched. Report the first token as the attempted command.
	typed := tokens[0]
	return ParsedCommand{
		Args: tokens[1:],
		Raw:  line,
		Err:  ErrUnknownCommand(typed),
	}
}
