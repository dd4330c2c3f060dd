// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Loreline Contributors

package world

import (
	"sync"

	"github.com/oklog/ulid/v2"
	"github.com/samber/oops"
)

// Error codes for world store failures.
const (
	CodeUnknownLocation   = "UNKNOWN_LOCATION"
	CodeDuplicateLocation = "DUPLICATE_LOCATION"
	CodeUnknownExit       = "UNKNOWN_EXIT"
)

// Store is an in-memory location store. Identifiers keep insertion order,
// which is the order reported to argument completion.
type Store struct {
	mu        sync.RWMutex
	locations map[string]*Location
	order     []string
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		locations: make(map[string]*Location),
	}
}

// Add inserts a location under its Ref. The Ref must be unique.
func (s *Store) Add(loc *Location) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.locations[loc.Ref]; exists {
		return oops.Code(CodeDuplicateLocation).
			With("ref", loc.Ref).
			Errorf("location %q already exists", loc.Ref)
	}
	if loc.Exits == nil {
		loc.Exits = make(map[string]string)
	}
	if loc.ID.Compare(ulid.ULID{}) == 0 {
		loc.ID = ulid.Make()
	}
	s.locations[loc.Ref] = loc
	s.order = append(s.order, loc.Ref)
	return nil
}

// Get returns the location with the given Ref.
func (s *Store) Get(ref string) (*Location, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	loc, ok := s.locations[ref]
	if !ok {
		return nil, oops.Code(CodeUnknownLocation).
			With("ref", ref).
			Errorf("no location %q", ref)
	}
	return loc, nil
}

// Remove deletes a location and every exit leading to it.
func (s *Store) Remove(ref string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.locations[ref]; !ok {
		return oops.Code(CodeUnknownLocation).
			With("ref", ref).
			Errorf("no location %q", ref)
	}
	delete(s.locations, ref)
	for i, r := range s.order {
		if r == ref {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	for _, loc := range s.locations {
		for dir, dest := range loc.Exits {
			if dest == ref {
				delete(loc.Exits, dir)
			}
		}
	}
	return nil
}

// Link adds an exit from one location to another.
func (s *Store) Link(fromRef, direction, toRef string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	from, ok := s.locations[fromRef]
	if !ok {
		return oops.Code(CodeUnknownLocation).
			With("ref", fromRef).
			Errorf("no location %q", fromRef)
	}
	if _, ok := s.locations[toRef]; !ok {
		return oops.Code(CodeUnknownLocation).
			With("ref", toRef).
			Errorf("no location %q", toRef)
	}
	from.Exits[direction] = toRef
	return nil
}

// Move follows an exit from a location and returns the destination.
func (s *Store) Move(from *Location, direction string) (*Location, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	dest, ok := from.Exits[direction]
	if !ok {
		return nil, oops.Code(CodeUnknownExit).
			With("ref", from.Ref).
			With("direction", direction).
			Errorf("you can't go %s from here", direction)
	}
	loc, ok := s.locations[dest]
	if !ok {
		return nil, oops.Code(CodeUnknownLocation).
			With("ref", dest).
			Errorf("exit %s leads nowhere", direction)
	}
	return loc, nil
}

// SetTitle updates a location's title.
func (s *Store) SetTitle(ref, title string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	loc, ok := s.locations[ref]
	if !ok {
		return oops.Code(CodeUnknownLocation).
			With("ref", ref).
			Errorf("no location %q", ref)
	}
	loc.Title = title
	return nil
}

// SetDescription updates a location's description.
func (s *Store) SetDescription(ref, description string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	loc, ok := s.locations[ref]
	if !ok {
		return oops.Code(CodeUnknownLocation).
			With("ref", ref).
			Errorf("no location %q", ref)
	}
	loc.Description = description
	return nil
}

// Len returns the number of locations.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.locations)
}

// ListIdentifiers returns every location Ref in insertion order. The slice
// is a copy and safe to modify.
func (s *Store) ListIdentifiers() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	refs := make([]string, len(s.order))
	copy(refs, s.order)
	return refs
}
