// Package config provides YAML (or TOML) configuration loading for duels:
// timings, the weapon table, per-player loadouts and coin rewards.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-duel/internal/core"
	"github.com/vovakirdan/tui-duel/internal/duel"
	"github.com/vovakirdan/tui-duel/internal/weapon"
)

// ErrUnknownWeapon is returned when a loadout names a weapon that is not configured.
var ErrUnknownWeapon = errors.New("config: unknown weapon")

// DuelConfig contains all configuration for the duel.
type DuelConfig struct {
	Timing  TimingConfig   `yaml:"timing" toml:"timing"`
	Weapons []WeaponConfig `yaml:"weapons" toml:"weapons"`
	Players []PlayerConfig `yaml:"players" toml:"players"`
	Rewards RewardsConfig  `yaml:"rewards" toml:"rewards"`

	// Source is where the configuration was read from.
	Source string `yaml:"-" toml:"-"`
}

// TimingConfig defines the phase timings in milliseconds.
type TimingConfig struct {
	CountdownSteps      int   `yaml:"countdown_steps" toml:"countdown_steps"`
	CountdownIntervalMs int64 `yaml:"countdown_interval_ms" toml:"countdown_interval_ms"`
	RevealMs            int64 `yaml:"reveal_ms" toml:"reveal_ms"`
	GameTimeoutMs       int64 `yaml:"game_timeout_ms" toml:"game_timeout_ms"`
	WrongInputPenaltyMs int64 `yaml:"wrong_input_penalty_ms" toml:"wrong_input_penalty_ms"`
}

// WeaponConfig defines one weapon profile.
type WeaponConfig struct {
	ID            string   `yaml:"id" toml:"id"`
	Name          string   `yaml:"name" toml:"name"`
	Length        int      `yaml:"length" toml:"length"`
	Keys          []string `yaml:"keys" toml:"keys"`
	InputWindowMs int64    `yaml:"input_window_ms" toml:"input_window_ms"`
}

// PlayerConfig defines a duelist's name and equipped weapon.
type PlayerConfig struct {
	Name   string `yaml:"name" toml:"name"`
	Weapon string `yaml:"weapon" toml:"weapon"` // Empty = default weapon
}

// RewardsConfig defines the coins credited after a duel.
type RewardsConfig struct {
	Win  int64 `yaml:"win" toml:"win"`
	Draw int64 `yaml:"draw" toml:"draw"`
}

// DuelTiming converts the timing section for the state machine.
func (c DuelConfig) DuelTiming() duel.Config {
	return duel.Config{
		CountdownSteps:      c.Timing.CountdownSteps,
		CountdownInterval:   core.Millis(c.Timing.CountdownIntervalMs),
		RevealDuration:      core.Millis(c.Timing.RevealMs),
		GameTimeout:         core.Millis(c.Timing.GameTimeoutMs),
		WrongInputPenaltyMs: core.Millis(c.Timing.WrongInputPenaltyMs),
	}
}

// WeaponSet builds and validates the configured weapon table.
// An empty table falls back to the built-in weapons.
func (c DuelConfig) WeaponSet() (*weapon.Set, error) {
	if len(c.Weapons) == 0 {
		return weapon.NewSet(weapon.Builtin()...)
	}
	profiles := make([]weapon.Profile, 0, len(c.Weapons))
	for _, w := range c.Weapons {
		profiles = append(profiles, weapon.Profile{
			ID:            w.ID,
			DisplayName:   w.Name,
			Length:        w.Length,
			AvailableKeys: weapon.Symbols(w.Keys...),
			InputWindowMs: core.Millis(w.InputWindowMs),
		})
	}
	set, err := weapon.NewSet(profiles...)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return set, nil
}

// PlayerNames returns the configured duelist names; blanks become "Player N".
func (c DuelConfig) PlayerNames() [2]string {
	names := [2]string{core.Player1.String(), core.Player2.String()}
	for i := 0; i < len(c.Players) && i < 2; i++ {
		if c.Players[i].Name != "" {
			names[i] = c.Players[i].Name
		}
	}
	return names
}

// Loadout resolves both players' weapons from the set. Non-empty overrides
// replace the configured choice for that player.
func (c DuelConfig) Loadout(set *weapon.Set, overrides ...string) ([2]*weapon.Profile, error) {
	var out [2]*weapon.Profile
	for i := range out {
		id := ""
		if i < len(c.Players) {
			id = c.Players[i].Weapon
		}
		if i < len(overrides) && overrides[i] != "" {
			id = overrides[i]
		}
		if id == "" {
			out[i] = set.Default()
			continue
		}
		p, ok := set.Get(id)
		if !ok {
			return out, fmt.Errorf("%w %q for %s", ErrUnknownWeapon, id, core.Players[i])
		}
		out[i] = p
	}
	return out, nil
}

// Validate checks the whole configuration: timings, the weapon table, the
// loadouts and the rewards.
func (c DuelConfig) Validate() error {
	if len(c.Players) > 2 {
		return fmt.Errorf("config: %d players configured, a duel has 2", len(c.Players))
	}
	if err := c.DuelTiming().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	set, err := c.WeaponSet()
	if err != nil {
		return err
	}
	if _, err := c.Loadout(set); err != nil {
		return err
	}
	if c.Rewards.Win < 0 || c.Rewards.Draw < 0 {
		return fmt.Errorf("config: rewards must not be negative")
	}
	return nil
}
