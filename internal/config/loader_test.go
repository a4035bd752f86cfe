package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-duel/internal/core"
	"github.com/vovakirdan/tui-duel/internal/weapon"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestEmbeddedMatchesHardcoded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Source != "embedded" {
		t.Errorf("Source = %q, expected embedded", cfg.Source)
	}

	want := DefaultDuelConfig()
	cfg.Source, want.Source = "", ""
	if !reflect.DeepEqual(cfg, want) {
		t.Errorf("embedded config differs from hardcoded:\n got %+v\nwant %+v", cfg, want)
	}
}

func TestUserConfigDirectory(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".duel", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "duel.yaml")
	if err := os.WriteFile(path, []byte("rewards:\n  win: 99\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Source != path {
		t.Errorf("Source = %q, expected %q", cfg.Source, path)
	}
	if cfg.Rewards.Win != 99 || cfg.Rewards.Draw != 3 {
		t.Errorf("rewards = %+v", cfg.Rewards)
	}
}

func TestPartialYAMLKeepsDefaults(t *testing.T) {
	path := writeFile(t, "duel.yaml", `
timing:
  reveal_ms: 500
players:
  - name: Alice
    weapon: shotgun
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	timing := cfg.DuelTiming()
	if timing.RevealDuration != 500 {
		t.Errorf("RevealDuration = %d, expected 500", timing.RevealDuration)
	}
	if timing.GameTimeout != 2000 || timing.CountdownSteps != 3 {
		t.Errorf("defaults lost: %+v", timing)
	}
	if len(cfg.Weapons) != 3 {
		t.Errorf("weapons = %d, expected the 3 defaults", len(cfg.Weapons))
	}

	names := cfg.PlayerNames()
	if names[0] != "Alice" || names[1] != "Player 2" {
		t.Errorf("names = %v", names)
	}

	set, err := cfg.WeaponSet()
	if err != nil {
		t.Fatal(err)
	}
	loadout, err := cfg.Loadout(set)
	if err != nil {
		t.Fatal(err)
	}
	if loadout[0].ID != "shotgun" || loadout[1].ID != "revolver" {
		t.Errorf("loadout = %s, %s", loadout[0].ID, loadout[1].ID)
	}
}

func TestTOMLConfig(t *testing.T) {
	path := writeFile(t, "duel.toml", `
[timing]
countdown_steps = 2
countdown_interval_ms = 500
reveal_ms = 1000
game_timeout_ms = 3000
wrong_input_penalty_ms = 800

[[weapons]]
id = "dagger"
name = "Dagger"
length = 2
keys = ["g", "h", "t"]
input_window_ms = 1500

[[players]]
name = "Ann"
weapon = "dagger"

[rewards]
win = 5
draw = 1
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := cfg.DuelTiming().WrongInputPenaltyMs; got != 800 {
		t.Errorf("WrongInputPenaltyMs = %d, expected 800", got)
	}
	set, err := cfg.WeaponSet()
	if err != nil {
		t.Fatal(err)
	}
	if set.Len() != 1 {
		t.Fatalf("weapons = %d, expected 1", set.Len())
	}
	dagger, _ := set.Get("dagger")
	if dagger.InputWindowMs != 1500 || !dagger.HasKey(core.Symbol("t")) {
		t.Errorf("dagger = %+v", dagger)
	}
	if cfg.Rewards.Win != 5 {
		t.Errorf("Rewards.Win = %d, expected 5", cfg.Rewards.Win)
	}
}

func TestUnknownWeaponInLoadout(t *testing.T) {
	path := writeFile(t, "duel.yaml", `
players:
  - weapon: bazooka
`)
	_, err := Load(path)
	if !errors.Is(err, ErrUnknownWeapon) {
		t.Errorf("err = %v, expected ErrUnknownWeapon", err)
	}
}

func TestInvalidWeaponRejected(t *testing.T) {
	path := writeFile(t, "duel.yaml", `
weapons:
  - id: broken
    length: 4
    keys: [a, b]
    input_window_ms: 1000
`)
	_, err := Load(path)
	if !errors.Is(err, weapon.ErrInvalidProfile) {
		t.Errorf("err = %v, expected ErrInvalidProfile", err)
	}
}

func TestBadTimingRejected(t *testing.T) {
	path := writeFile(t, "duel.yaml", "timing:\n  game_timeout_ms: 0\n")
	if _, err := Load(path); err == nil {
		t.Error("zero game timeout accepted")
	}
}

func TestMissingCustomFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("missing custom config accepted")
	}
}

func TestMalformedCustomFile(t *testing.T) {
	path := writeFile(t, "duel.yaml", "timing: [not, a, map\n")
	if _, err := Load(path); err == nil {
		t.Error("malformed config accepted")
	}
}

func TestLoadoutOverrides(t *testing.T) {
	cfg := DefaultDuelConfig()
	set, err := cfg.WeaponSet()
	if err != nil {
		t.Fatal(err)
	}

	loadout, err := cfg.Loadout(set, "", "shotgun")
	if err != nil {
		t.Fatal(err)
	}
	if loadout[0].ID != "revolver" || loadout[1].ID != "shotgun" {
		t.Errorf("loadout = %s, %s", loadout[0].ID, loadout[1].ID)
	}

	if _, err := cfg.Loadout(set, "laser"); !errors.Is(err, ErrUnknownWeapon) {
		t.Errorf("err = %v, expected ErrUnknownWeapon", err)
	}
}
