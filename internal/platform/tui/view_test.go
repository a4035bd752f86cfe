package tui

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-duel/internal/core"
	"github.com/vovakirdan/tui-duel/internal/duel"
	"github.com/vovakirdan/tui-duel/internal/pattern"
	"github.com/vovakirdan/tui-duel/internal/weapon"
)

func testMachine(t *testing.T) *duel.Machine {
	t.Helper()
	weapons := [2]*weapon.Profile{
		{ID: "left", DisplayName: "Left Hand", Length: 3, AvailableKeys: weapon.Symbols("a", "s", "d"), InputWindowMs: 3000},
		{ID: "right", DisplayName: "Right Hand", Length: 3, AvailableKeys: weapon.Symbols("j", "k", "l"), InputWindowMs: 3000},
	}
	m, err := duel.New(duel.DefaultConfig(), weapons,
		duel.WithRand(rand.New(rand.NewSource(3))),
		duel.WithPlayers("alice", "bob"))
	if err != nil {
		t.Fatalf("duel.New: %v", err)
	}
	return m
}

func render(m *duel.Machine, now core.Millis, notes [2]Note) string {
	s := core.NewScreen(80, 23)
	DrawDuel(s, m.Snapshot(now), notes)
	return s.String()
}

func spaced(syms []core.Symbol) string {
	parts := make([]string, len(syms))
	for i, s := range syms {
		parts[i] = s.Upper()
	}
	return strings.Join(parts, " ")
}

func TestDrawWaiting(t *testing.T) {
	out := render(testMachine(t), 0, [2]Note{})

	for _, want := range []string{"Press any weapon key to start", "alice", "bob", "Left Hand", "Right Hand"} {
		if !strings.Contains(out, want) {
			t.Errorf("waiting screen missing %q", want)
		}
	}
}

func TestDrawRevealShowsPatterns(t *testing.T) {
	m := testMachine(t)
	m.HandleKey("a", 0)
	m.Tick(3000)

	out := render(m, 3000, [2]Note{})
	if !strings.Contains(out, "MEMORIZE!") {
		t.Error("reveal banner missing")
	}
	for _, id := range core.Players {
		p := spaced(m.State().Player(id).Pattern)
		if !strings.Contains(out, p) {
			t.Errorf("pattern %q of %v not shown", p, id)
		}
	}
}

func TestDrawListeningMasksPatterns(t *testing.T) {
	m := testMachine(t)
	m.HandleKey("a", 0)
	m.Tick(5000)

	first := m.State().Player(core.Player1).Pattern[0]
	m.HandleKey(first, 5100)
	m.Tick(5100)

	out := render(m, 5500, [2]Note{{Text: "nice"}, {}})
	if !strings.Contains(out, "FIRE!") {
		t.Error("listening banner missing")
	}
	if !strings.Contains(out, first.Upper()+" _ _") {
		t.Errorf("expected typed symbol followed by masks for player 1:\n%s", out)
	}
	if !strings.Contains(out, "_ _ _") {
		t.Error("player 2 pattern should be fully masked")
	}
	if !strings.Contains(out, "1.5s") {
		t.Error("remaining time missing")
	}
	if !strings.Contains(out, "nice") {
		t.Error("note missing")
	}
}

func TestDrawFinished(t *testing.T) {
	m := testMachine(t)
	m.HandleKey("a", 0)
	m.Tick(7000)

	out := render(m, 7000, [2]Note{})
	if !strings.Contains(out, "Too slow!") || !strings.Contains(out, "play again") {
		t.Errorf("finished screen:\n%s", out)
	}
}

func TestOutcomeTextUsesNames(t *testing.T) {
	players := [2]duel.PlayerView{{Name: "alice"}, {Name: "bob"}}
	got := outcomeText(pattern.Outcome{Winner: core.Player2, Reason: "Player 2 fired first"}, players)
	if got != "bob wins! (Player 2 fired first)" {
		t.Errorf("outcomeText = %q", got)
	}
	if got := outcomeText(pattern.Outcome{Draw: true}, players); got != "Draw!" {
		t.Errorf("draw text = %q", got)
	}
}

func TestDrawTinyScreen(t *testing.T) {
	m := testMachine(t)
	s := core.NewScreen(10, 3)
	// Must not panic on screens smaller than the layout.
	DrawDuel(s, m.Snapshot(0), [2]Note{})
}
