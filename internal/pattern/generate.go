package pattern

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-duel/internal/core"
	"github.com/vovakirdan/tui-duel/internal/weapon"
)

// ErrPatternTooLong signals a weapon whose pattern is longer than its alphabet.
var ErrPatternTooLong = errors.New("pattern: pattern length exceeds available keys")

// GeneratePattern draws p.Length distinct symbols uniformly at random from
// the weapon's alphabet.
func GeneratePattern(p *weapon.Profile, rng *rand.Rand) ([]core.Symbol, error) {
	if p == nil {
		return nil, fmt.Errorf("pattern: nil weapon profile")
	}
	n := len(p.AvailableKeys)
	if p.Length > n {
		return nil, fmt.Errorf("%w: %s wants %d of %d", ErrPatternTooLong, p.ID, p.Length, n)
	}
	if p.Length < 1 {
		return nil, fmt.Errorf("pattern: %s has non-positive length %d", p.ID, p.Length)
	}

	// Partial Fisher-Yates over a copy of the alphabet.
	pool := append([]core.Symbol(nil), p.AvailableKeys...)
	for i := 0; i < p.Length; i++ {
		j := i + rng.Intn(n-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:p.Length:p.Length], nil
}

// GenerateDuelPatterns generates one pattern per side. When both sides carry
// the same weapon, side B is re-rolled up to attempts times until the two
// differ; if they still match, the duplicate is accepted.
func GenerateDuelPatterns(a, b *weapon.Profile, rng *rand.Rand, attempts int) ([]core.Symbol, []core.Symbol, error) {
	seqA, err := GeneratePattern(a, rng)
	if err != nil {
		return nil, nil, err
	}
	seqB, err := GeneratePattern(b, rng)
	if err != nil {
		return nil, nil, err
	}

	if a.ID != b.ID {
		return seqA, seqB, nil
	}
	for i := 0; i < attempts && equalSymbols(seqA, seqB); i++ {
		seqB, err = GeneratePattern(b, rng)
		if err != nil {
			return nil, nil, err
		}
	}
	return seqA, seqB, nil
}

func equalSymbols(a, b []core.Symbol) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
