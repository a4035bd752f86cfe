package pattern

import (
	"github.com/vovakirdan/tui-duel/internal/core"
	"github.com/vovakirdan/tui-duel/internal/weapon"
)

// Phase is the game-level state of a duel.
type Phase int

const (
	PhaseWaiting Phase = iota
	PhaseCountdown
	PhaseReveal
	PhaseListening
	PhaseFinished
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseWaiting:
		return "Waiting"
	case PhaseCountdown:
		return "Countdown"
	case PhaseReveal:
		return "Reveal"
	case PhaseListening:
		return "Listening"
	case PhaseFinished:
		return "Finished"
	default:
		return "Unknown"
	}
}

// PlayerDuelState is one duelist's progress through their secret pattern.
// Completed and Disqualified are mutually exclusive and both terminal.
type PlayerDuelState struct {
	ID      core.PlayerID
	Weapon  *weapon.Profile
	Pattern []core.Symbol

	Progress            int
	Completed           bool
	Disqualified        bool
	DisqualifyReason    string
	CompletionTimestamp core.Millis
	LastInputTime       core.Millis
	PenaltyUntil        core.Millis // 0 = no penalty
}

// Finished reports whether the player can no longer make progress.
func (p *PlayerDuelState) Finished() bool {
	return p.Completed || p.Disqualified
}

// Expected returns the next symbol the player must type.
func (p *PlayerDuelState) Expected() (core.Symbol, bool) {
	if p.Progress >= len(p.Pattern) {
		return "", false
	}
	return p.Pattern[p.Progress], true
}

// PatternContains reports whether sym appears anywhere in the player's pattern.
func (p *PlayerDuelState) PatternContains(sym core.Symbol) bool {
	for _, s := range p.Pattern {
		if s == sym {
			return true
		}
	}
	return false
}

// PenalizedAt reports whether input at ts would be suppressed by a penalty.
func (p *PlayerDuelState) PenalizedAt(ts core.Millis) bool {
	return ts < p.PenaltyUntil
}

// DuelState is everything that changes during one duel.
// A fresh DuelState is built for every duel; nothing is recycled.
type DuelState struct {
	Phase              Phase
	ListeningStartTime core.Millis // 0 until listening begins
	Players            [2]PlayerDuelState
	Queue              InputQueue

	keys map[core.Symbol]bool // union of both weapons' alphabets
}

// NewDuelState prepares a duel between two weapons. Patterns are empty until
// the engine assigns them.
func NewDuelState(w1, w2 *weapon.Profile) *DuelState {
	ds := &DuelState{
		Phase: PhaseWaiting,
		keys:  weapon.KeyUnion(w1, w2),
	}
	ds.Players[0] = PlayerDuelState{ID: core.Player1, Weapon: w1}
	ds.Players[1] = PlayerDuelState{ID: core.Player2, Weapon: w2}
	return ds
}

// Player returns the state for the given duelist, or nil for NoPlayer.
func (ds *DuelState) Player(id core.PlayerID) *PlayerDuelState {
	idx := id.Index()
	if idx < 0 {
		return nil
	}
	return &ds.Players[idx]
}

// Recognizes reports whether any assigned weapon uses sym.
func (ds *DuelState) Recognizes(sym core.Symbol) bool {
	return ds.keys[sym]
}
