package duel

import (
	"fmt"

	"github.com/vovakirdan/tui-duel/internal/core"
	"github.com/vovakirdan/tui-duel/internal/pattern"
)

// Default timings
const (
	DefaultCountdownSteps               = 3
	DefaultCountdownInterval core.Millis = 1000
	DefaultRevealDuration    core.Millis = 2000
	DefaultGameTimeout       core.Millis = 2000
)

// Config holds the duel's timing rules.
type Config struct {
	CountdownSteps      int         // Numbers shown before the reveal
	CountdownInterval   core.Millis // Time between countdown numbers
	RevealDuration      core.Millis // How long patterns are shown before listening
	GameTimeout         core.Millis // Listening time before "too slow"
	WrongInputPenaltyMs core.Millis // Suppression after a wrong key
}

// DefaultConfig returns the standard duel timings.
func DefaultConfig() Config {
	return Config{
		CountdownSteps:      DefaultCountdownSteps,
		CountdownInterval:   DefaultCountdownInterval,
		RevealDuration:      DefaultRevealDuration,
		GameTimeout:         DefaultGameTimeout,
		WrongInputPenaltyMs: pattern.DefaultWrongInputPenaltyMs,
	}
}

// Validate checks the timings are usable.
func (c Config) Validate() error {
	if c.CountdownSteps < 0 {
		return fmt.Errorf("duel: countdown steps must not be negative, got %d", c.CountdownSteps)
	}
	if c.CountdownSteps > 0 && c.CountdownInterval <= 0 {
		return fmt.Errorf("duel: countdown interval must be positive")
	}
	if c.RevealDuration < 0 {
		return fmt.Errorf("duel: reveal duration must not be negative")
	}
	if c.GameTimeout <= 0 {
		return fmt.Errorf("duel: game timeout must be positive")
	}
	if c.WrongInputPenaltyMs < 0 {
		return fmt.Errorf("duel: wrong input penalty must not be negative")
	}
	return nil
}
