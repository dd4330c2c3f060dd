// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Loreline Contributors

package world

import (
	"os"

	"github.com/samber/oops"
	"gopkg.in/yaml.v3"
)

// Seed error codes.
const (
	CodeSeedInvalid = "SEED_INVALID"
)

// seedFile is the YAML shape of a world seed.
type seedFile struct {
	Start     string         `yaml:"start"`
	Locations []seedLocation `yaml:"locations"`
}

type seedLocation struct {
	Ref         string            `yaml:"ref"`
	Title       string            `yaml:"title"`
	Description string            `yaml:"description"`
	Exits       map[string]string `yaml:"exits"`
}

// LoadSeed reads a YAML seed file and returns a populated store plus the
// Ref of the starting location. Exits must point at refs defined in the
// same file.
func LoadSeed(path string) (*Store, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", oops.Code(CodeSeedInvalid).With("path", path).Wrap(err)
	}
	return ParseSeed(data)
}

// ParseSeed builds a store from raw YAML seed data.
func ParseSeed(data []byte) (*Store, string, error) {
	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, "", oops.Code(CodeSeedInvalid).Wrap(err)
	}

	if len(seed.Locations) == 0 {
		return nil, "", oops.Code(CodeSeedInvalid).Errorf("seed contains no locations")
	}

	store := NewStore()
	for _, sl := range seed.Locations {
		if sl.Ref == "" {
			return nil, "", oops.Code(CodeSeedInvalid).Errorf("location with empty ref")
		}
		loc := &Location{
			Ref:         sl.Ref,
			Title:       sl.Title,
			Description: sl.Description,
			Exits:       sl.Exits,
		}
		if err := store.Add(loc); err != nil {
			return nil, "", oops.Code(CodeSeedInvalid).With("ref", sl.Ref).Wrap(err)
		}
	}

	// Validate exits after all locations exist.
	for _, ref := range store.ListIdentifiers() {
		loc, err := store.Get(ref)
		if err != nil {
			return nil, "", err
		}
		for dir, dest := range loc.Exits {
			if _, err := store.Get(dest); err != nil {
				return nil, "", oops.Code(CodeSeedInvalid).
					With("ref", ref).
					With("direction", dir).
					With("dest", dest).
					Errorf("exit %s of %q points at unknown location %q", dir, ref, dest)
			}
		}
	}

	start := seed.Start
	if start == "" {
		start = store.ListIdentifiers()[0]
	}
	if _, err := store.Get(start); err != nil {
		return nil, "", oops.Code(CodeSeedInvalid).
			With("start", start).
			Errorf("start location %q is not defined", start)
	}

	return store, start, nil
}
