package core

import "testing"

func TestRuntimeConfigNormalized(t *testing.T) {
	cfg := RuntimeConfig{}.Normalized()
	if cfg.ScreenW != 80 || cfg.ScreenH != 24 {
		t.Errorf("Expected 80x24, got %dx%d", cfg.ScreenW, cfg.ScreenH)
	}
	if cfg.TickRate != DefaultTickRate {
		t.Errorf("Expected tick rate %d, got %d", DefaultTickRate, cfg.TickRate)
	}

	cfg = RuntimeConfig{ScreenW: 120, ScreenH: 40, TickRate: 1000, Seed: 7}.Normalized()
	if cfg.ScreenW != 120 || cfg.ScreenH != 40 || cfg.Seed != 7 {
		t.Errorf("Expected set fields kept, got %+v", cfg)
	}
	if cfg.TickRate != MaxTickRate {
		t.Errorf("Expected tick rate capped at %d, got %d", MaxTickRate, cfg.TickRate)
	}
}
