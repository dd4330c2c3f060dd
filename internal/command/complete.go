// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Loreline Contributors

package command

import (
	"strings"
	"unicode"

	"github.com/loreline/loreline/internal/session"
)

// Completion is the result of one autocomplete query. Completed is only
// populated when the candidates collapse to exactly one. Partial is the
// fragment the suggestions would replace, which terminal frontends need
// to splice completions into the line.
type Completion struct {
	Suggestions []string
	Completed   string
	Partial     string
}

// Completer produces context-sensitive completions for a partially typed
// line. Command-name fragments complete against the registry; the
// identifier argument of whitelisted commands completes against an
// external identifier source.
type Completer struct {
	registry    *Registry
	identifiers IdentifierSource
	identArgs   map[string]bool // commands whose first argument is a location identifier
}

// DefaultIdentifierCommands is the fixed set of commands whose first
// argument completes to a location identifier.
var DefaultIdentifierCommands = []string{"teleport", "demolish", "edit location"}

// NewCompleter creates a completer over the registry and identifier
// source. If commands is nil, DefaultIdentifierCommands is used.
func NewCompleter(registry *Registry, identifiers IdentifierSource, commands []string) *Completer {
	if commands == nil {
		commands = DefaultIdentifierCommands
	}
	identArgs := make(map[string]bool, len(commands))
	for _, c := range commands {
		identArgs[c] = true
	}
	return &Completer{
		registry:    registry,
		identifiers: identifiers,
		identArgs:   identArgs,
	}
}

// Complete examines the line up to the cursor and returns candidates for
// the token under the cursor, plus a completion string when the
// candidates collapse to one.
func (c *Completer) Complete(line string, cursor int, sess *session.Context) Completion {
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(line) {
		cursor = len(line)
	}
	prefix := line[:cursor]

	tokens := Tokenize(prefix)
	if len(tokens) == 0 {
		return Completion{}
	}

	partial := !endsInSpace(prefix)

	name, matched := c.resolveLeading(tokens, partial)
	if matched > 0 {
		RecordCompletionQuery("argument")
		return c.completeArgument(name, tokens[matched:], partial, sess)
	}

	RecordCompletionQuery("command")
	return c.completeName(strings.Join(tokens, " "), sess)
}

// resolveLeading finds the longest registered command (primary or alias)
// among the leading tokens. A match consuming every token while the last
// token is still being typed does not count: the player may be extending
// it into a longer multi-word name.
func (c *Completer) resolveLeading(tokens []string, partial bool) (string, int) {
	limit := MaxNameWords
	if len(tokens) < limit {
		limit = len(tokens)
	}

	for n := limit; n >= 1; n-- {
		if n == len(tokens) && partial {
			continue
		}
		candidate := strings.Join(tokens[:n], " ")
		if _, ok := c.registry.Get(candidate); ok {
			return candidate, n
		}
		if primary := c.registry.ResolveAlias(candidate); primary != candidate {
			if _, ok := c.registry.Get(primary); ok {
				return primary, n
			}
		}
	}
	return "", 0
}

// completeName treats the whole typed prefix as a partial command name
// and matches it case-insensitively against names and aliases eligible
// for the session's mode. Exactly one matching primary name collapses
// into a completion; matching aliases appear in the candidate list but
// never drive the collapse.
func (c *Completer) completeName(typed string, sess *session.Context) Completion {
	lower := strings.ToLower(typed)

	var primaries []string
	for _, entry := range c.registry.Eligible(sess.Mode) {
		if strings.HasPrefix(strings.ToLower(entry.Name), lower) {
			primaries = append(primaries, entry.Name)
		}
	}

	var aliases []string
	for _, alias := range c.registry.AliasNames() {
		if !strings.HasPrefix(strings.ToLower(alias), lower) {
			continue
		}
		entry, ok := c.registry.Lookup(alias)
		if !ok || !entry.EligibleFor(sess.Mode) {
			continue
		}
		aliases = append(aliases, alias)
	}

	result := Completion{Suggestions: append(primaries, aliases...), Partial: typed}
	if len(primaries) == 1 {
		result.Completed = primaries[0]
	}
	return result
}

// completeArgument completes the argument tokens following a resolved
// command. Only the first argument of whitelisted identifier commands is
// completed, and only while the session is in an elevated build context.
func (c *Completer) completeArgument(name string, args []string, partial bool, sess *session.Context) Completion {
	if !c.identArgs[name] || c.identifiers == nil {
		return Completion{}
	}
	if !sess.Editing() {
		return Completion{}
	}

	// Position of the token under the cursor within the argument list.
	position := len(args)
	typed := ""
	if partial && len(args) > 0 {
		position = len(args) - 1
		typed = args[position]
	}
	if position != 0 {
		return Completion{}
	}

	lower := strings.ToLower(typed)
	var matches []string
	for _, ident := range c.identifiers.ListIdentifiers() {
		if strings.HasPrefix(strings.ToLower(ident), lower) {
			matches = append(matches, ident)
		}
	}

	result := Completion{Suggestions: matches, Partial: typed}
	if len(matches) == 1 {
		result.Completed = matches[0]
	}
	return result
}

func endsInSpace(s string) bool {
	if s == "" {
		return false
	}
	runes := []rune(s)
	return unicode.IsSpace(runes[len(runes)-1])
}
