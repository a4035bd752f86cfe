package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-duel/internal/duel"
	"github.com/vovakirdan/tui-duel/internal/weapon"
)

//go:embed defaults/duel.yaml
var defaultDuelYAML []byte

// DefaultDuelConfig returns the hardcoded duel configuration.
func DefaultDuelConfig() DuelConfig {
	timing := duel.DefaultConfig()

	builtin := weapon.Builtin()
	weapons := make([]WeaponConfig, 0, len(builtin))
	for _, p := range builtin {
		keys := make([]string, 0, len(p.AvailableKeys))
		for _, k := range p.AvailableKeys {
			keys = append(keys, string(k))
		}
		weapons = append(weapons, WeaponConfig{
			ID:            p.ID,
			Name:          p.DisplayName,
			Length:        p.Length,
			Keys:          keys,
			InputWindowMs: int64(p.InputWindowMs),
		})
	}

	return DuelConfig{
		Timing: TimingConfig{
			CountdownSteps:      timing.CountdownSteps,
			CountdownIntervalMs: int64(timing.CountdownInterval),
			RevealMs:            int64(timing.RevealDuration),
			GameTimeoutMs:       int64(timing.GameTimeout),
			WrongInputPenaltyMs: int64(timing.WrongInputPenaltyMs),
		},
		Weapons: weapons,
		Players: []PlayerConfig{
			{Name: "Player 1", Weapon: "revolver"},
			{Name: "Player 2", Weapon: "rifle"},
		},
		Rewards: RewardsConfig{
			Win:  10,
			Draw: 3,
		},
		Source: "builtin",
	}
}
