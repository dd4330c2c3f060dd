// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Loreline Contributors

package command

import (
	"log/slog"
	"sort"
	"sync"

	"github.com/loreline/loreline/internal/session"
)

// Registry manages command registration and lookup. It indexes entries by
// primary name and by each alias. It is thread-safe for concurrent access,
// though one engine instance has a single active caller.
type Registry struct {
	mu       sync.RWMutex
	commands map[string]Entry
	aliases  map[string]string // alias → primary name
}

// NewRegistry creates an empty command registry.
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]Entry),
		aliases:  make(map[string]string),
	}
}

// Register adds a command and indexes its aliases. Registering a name or
// alias that already exists overwrites the previous mapping and logs a
// warning; last registration wins.
func (r *Registry) Register(entry Entry) error {
	if entry.Name == "" {
		return ErrEmptyCommandName
	}
	if entry.Handler == nil {
		return ErrNilHandler
	}
	if err := ValidateCommandName(entry.Name); err != nil {
		return err
	}
	for _, alias := range entry.Aliases {
		if err := ValidateAliasName(alias); err != nil {
			return err
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.commands[entry.Name]; ok {
		slog.Warn("command conflict: overwriting existing command",
			"command", entry.Name)
	}
	r.commands[entry.Name] = entry

	for _, alias := range entry.Aliases {
		if previous, ok := r.aliases[alias]; ok && previous != entry.Name {
			slog.Warn("alias conflict: overwriting existing alias",
				"alias", alias,
				"previous_command", previous,
				"new_command", entry.Name)
		}
		r.aliases[alias] = entry.Name
	}
	return nil
}

// Get retrieves a command by its primary name.
func (r *Registry) Get(name string) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.commands[name]
	return entry, ok
}

// ResolveAlias maps an alias to its primary command name. Returns the
// input unchanged when it is not an alias.
func (r *Registry) ResolveAlias(name string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if primary, ok := r.aliases[name]; ok {
		return primary
	}
	return name
}

// Lookup retrieves a command by primary name or alias.
func (r *Registry) Lookup(name string) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if primary, ok := r.aliases[name]; ok {
		name = primary
	}
	entry, ok := r.commands[name]
	return entry, ok
}

// Names returns all primary command names, sorted. Sorting keeps
// suggestion and completion ordering deterministic.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AliasNames returns all registered aliases, sorted.
func (r *Registry) AliasNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.aliases))
	for name := range r.aliases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns all registered entries sorted by name. The slice is a copy
// and safe to modify.
func (r *Registry) All() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]Entry, 0, len(r.commands))
	for _, e := range r.commands {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries
}

// Eligible returns the entries runnable in the given mode, sorted by name.
func (r *Registry) Eligible(mode session.Mode) []Entry {
	all := r.All()
	eligible := make([]Entry, 0, len(all))
	for _, e := range all {
		if e.EligibleFor(mode) {
			eligible = append(eligible, e)
		}
	}
	return eligible
}
