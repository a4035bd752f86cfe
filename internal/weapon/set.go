package weapon

import (
	"fmt"
	"sort"

	"github.com/vovakirdan/tui-duel/internal/core"
)

// Set is an immutable collection of validated weapon profiles keyed by id.
// It is built once at start-up and may be shared freely between duels.
type Set struct {
	byID  map[string]*Profile
	order []string // configuration order, first entry is the default
}

// NewSet validates every profile and returns a set containing them.
// Any invalid profile or duplicate id fails the whole set; a bad weapon
// configuration is a start-up error, never a per-duel one.
func NewSet(profiles ...Profile) (*Set, error) {
	if len(profiles) == 0 {
		return nil, fmt.Errorf("%w: no weapons configured", ErrInvalidProfile)
	}

	s := &Set{byID: make(map[string]*Profile, len(profiles))}
	for i := range profiles {
		p := profiles[i].clone()
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, exists := s.byID[p.ID]; exists {
			return nil, fmt.Errorf("%w: weapon %q defined twice", ErrInvalidProfile, p.ID)
		}
		s.byID[p.ID] = p
		s.order = append(s.order, p.ID)
	}
	return s, nil
}

// Get returns the profile with the given id.
func (s *Set) Get(id string) (*Profile, bool) {
	p, ok := s.byID[id]
	return p, ok
}

// Lookup returns the profile with the given id or an error naming it.
func (s *Set) Lookup(id string) (*Profile, error) {
	p, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("weapon: unknown weapon %q", id)
	}
	return p, nil
}

// Default returns the first configured weapon.
func (s *Set) Default() *Profile {
	return s.byID[s.order[0]]
}

// List returns all profiles sorted by id.
func (s *Set) List() []*Profile {
	result := make([]*Profile, 0, len(s.byID))
	for _, p := range s.byID {
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Len returns the number of weapons in the set.
func (s *Set) Len() int {
	return len(s.byID)
}

// KeyUnion returns the set of symbols recognized by any of the given profiles.
func KeyUnion(profiles ...*Profile) map[core.Symbol]bool {
	union := make(map[core.Symbol]bool)
	for _, p := range profiles {
		if p == nil {
			continue
		}
		for _, k := range p.AvailableKeys {
			union[k] = true
		}
	}
	return union
}
