// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Loreline Contributors

package command

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

const (
	// MaxSuggestions caps the "did you mean" candidate list.
	MaxSuggestions = 3

	// suggestionThreshold is the minimum similarity score a candidate must
	// exceed to be offered.
	suggestionThreshold = 0.5

	// prefixScore is the fixed score for candidates the input is a prefix
	// of, regardless of length difference.
	prefixScore = 0.9
)

// Suggester scores registered names and aliases against mistyped input
// and offers close matches.
type Suggester struct {
	registry *Registry
}

// NewSuggester creates a suggester over the given registry.
func NewSuggester(registry *Registry) *Suggester {
	return &Suggester{registry: registry}
}

// Suggest returns up to MaxSuggestions primary command names similar to
// the input, best first. Aliases are scored too; an alias match resolves
// to its primary name, and a command scored through several forms keeps
// its best score. Candidates scoring at or below the threshold are
// dropped. Ties keep the sorted-name table order.
func (s *Suggester) Suggest(input string) []string {
	if input == "" {
		return nil
	}

	// Score primaries first, then aliases, over sorted tables so equal
	// scores order deterministically.
	scores := make(map[string]float64)
	var order []string

	for _, name := range s.registry.Names() {
		score := Similarity(input, name)
		if score <= suggestionThreshold {
			continue
		}
		if _, seen := scores[name]; !seen {
			order = append(order, name)
		}
		if score > scores[name] {
			scores[name] = score
		}
	}
	for _, alias := range s.registry.AliasNames() {
		score := Similarity(input, alias)
		if score <= suggestionThreshold {
			continue
		}
		primary := s.registry.ResolveAlias(alias)
		if _, ok := s.registry.Get(primary); !ok {
			continue
		}
		if _, seen := scores[primary]; !seen {
			order = append(order, primary)
		}
		if score > scores[primary] {
			scores[primary] = score
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return scores[order[i]] > scores[order[j]]
	})

	if len(order) > MaxSuggestions {
		order = order[:MaxSuggestions]
	}
	return order
}

// Similarity scores how closely a candidate matches the input. A candidate
// the input is a prefix of scores prefixScore; otherwise the score is the
// normalized Levenshtein similarity 1 - d/max(len(input), len(candidate)).
func Similarity(input, candidate string) float64 {
	if strings.HasPrefix(candidate, input) {
		return prefixScore
	}

	longest := len([]rune(input))
	if l := len([]rune(candidate)); l > longest {
		longest = l
	}
	if longest == 0 {
		return 0
	}

	distance := levenshtein.ComputeDistance(input, candidate)
	return 1 - float64(distance)/float64(longest)
}
