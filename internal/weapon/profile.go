// Package weapon defines the static weapon profiles duelists bring to a duel.
// A profile fixes how long a player's secret pattern is, which keys it may
// contain, and how long the player has to type it once listening starts.
package weapon

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-duel/internal/core"
)

// ErrInvalidProfile is returned for any profile that cannot produce a legal pattern.
var ErrInvalidProfile = errors.New("weapon: invalid profile")

// Profile is the static configuration of a weapon.
// Profiles are validated once when a Set is built and never mutated after.
type Profile struct {
	ID            string
	DisplayName   string
	Length        int           // Pattern length
	AvailableKeys []core.Symbol // Ordered alphabet patterns are drawn from
	InputWindowMs core.Millis   // Time from listening start to finish the pattern
}

// Validate checks the profile's configuration rules.
func (p *Profile) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidProfile)
	}
	if p.Length < 1 {
		return fmt.Errorf("%w: %s: pattern length %d must be at least 1", ErrInvalidProfile, p.ID, p.Length)
	}
	if len(p.AvailableKeys) == 0 {
		return fmt.Errorf("%w: %s: no available keys", ErrInvalidProfile, p.ID)
	}
	seen := make(map[core.Symbol]bool, len(p.AvailableKeys))
	for _, k := range p.AvailableKeys {
		if k == "" {
			return fmt.Errorf("%w: %s: empty key", ErrInvalidProfile, p.ID)
		}
		if seen[k] {
			return fmt.Errorf("%w: %s: duplicate key %q", ErrInvalidProfile, p.ID, k)
		}
		seen[k] = true
	}
	if p.Length > len(p.AvailableKeys) {
		return fmt.Errorf("%w: %s: pattern length %d exceeds %d available keys",
			ErrInvalidProfile, p.ID, p.Length, len(p.AvailableKeys))
	}
	if p.InputWindowMs <= 0 {
		return fmt.Errorf("%w: %s: input window must be positive", ErrInvalidProfile, p.ID)
	}
	return nil
}

// HasKey reports whether sym belongs to the weapon's alphabet.
func (p *Profile) HasKey(sym core.Symbol) bool {
	for _, k := range p.AvailableKeys {
		if k == sym {
			return true
		}
	}
	return false
}

// Name returns the display name, falling back to the id.
func (p *Profile) Name() string {
	if p.DisplayName != "" {
		return p.DisplayName
	}
	return p.ID
}

// clone returns a deep copy so callers never share the key slice.
func (p *Profile) clone() *Profile {
	c := *p
	c.AvailableKeys = append([]core.Symbol(nil), p.AvailableKeys...)
	return &c
}

// Symbols converts plain strings into normalized symbols.
func Symbols(keys ...string) []core.Symbol {
	out := make([]core.Symbol, 0, len(keys))
	for _, k := range keys {
		out = append(out, core.NormalizeKey(k))
	}
	return out
}
