package main

import "testing"

func TestSessionNames(t *testing.T) {
	configured := [2]string{"Player 1", "Player 2"}

	got := sessionNames("alice", configured)
	if got[0] != "alice:Player 1" || got[1] != "alice:Player 2" {
		t.Errorf("Expected user-prefixed names, got %v", got)
	}

	if got := sessionNames("", configured); got != configured {
		t.Errorf("Expected configured names without a user, got %v", got)
	}
}
