package tui

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewSSHServerNeedsFactory(t *testing.T) {
	if _, err := NewSSHServer(DefaultSSHServerConfig(), nil, nil); err == nil {
		t.Error("Expected error without a machine factory")
	}
}

func TestResolveHostKeyPath(t *testing.T) {
	want := filepath.Join(t.TempDir(), "keys", "nested", "host_key")

	got, err := resolveHostKeyPath(want)
	if err != nil {
		t.Fatalf("resolveHostKeyPath() failed: %v", err)
	}
	if got != want {
		t.Errorf("Expected %s, got %s", want, got)
	}
	info, err := os.Stat(filepath.Dir(want))
	if err != nil || !info.IsDir() {
		t.Errorf("Expected key directory to be created, got %v", err)
	}
}
