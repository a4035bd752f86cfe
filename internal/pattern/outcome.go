package pattern

import (
	"fmt"

	"github.com/vovakirdan/tui-duel/internal/core"
)

// Outcome reasons
const (
	ReasonBothDisqualified = "both disqualified"
	ReasonDraw             = "draw"
	ReasonTooSlow          = "too slow"
)

// Outcome is the verdict of a finished duel.
// Winner is core.NoPlayer for draws and duels nobody won.
type Outcome struct {
	Winner core.PlayerID
	Draw   bool
	Reason string
}

// String returns the verdict as shown to players.
func (o Outcome) String() string {
	switch {
	case o.Draw:
		return "Draw!"
	case o.Winner == core.NoPlayer:
		return fmt.Sprintf("No winner: %s", o.Reason)
	default:
		return fmt.Sprintf("%s wins! (%s)", o.Winner, o.Reason)
	}
}

// DecideOutcome inspects the duel without changing it. The second return
// value is false while the duel should continue.
func DecideOutcome(ds *DuelState) (Outcome, bool) {
	a, b := &ds.Players[0], &ds.Players[1]

	if !a.Finished() && !b.Finished() {
		return Outcome{}, false
	}

	switch {
	case a.Disqualified && b.Disqualified:
		return Outcome{Reason: ReasonBothDisqualified}, true
	case a.Disqualified:
		return disqualifiedWin(b, a), true
	case b.Disqualified:
		return disqualifiedWin(a, b), true
	case a.Completed && b.Completed:
		return raceOutcome(a, b), true
	case a.Completed:
		return Outcome{Winner: a.ID, Reason: fmt.Sprintf("%s fired first", a.ID)}, true
	default:
		return Outcome{Winner: b.ID, Reason: fmt.Sprintf("%s fired first", b.ID)}, true
	}
}

// Outcome is a convenience wrapper around DecideOutcome.
func (e *Engine) Outcome(ds *DuelState) (Outcome, bool) {
	return DecideOutcome(ds)
}

func disqualifiedWin(winner, loser *PlayerDuelState) Outcome {
	reason := loser.DisqualifyReason
	if reason == "" {
		reason = "disqualified"
	}
	return Outcome{
		Winner: winner.ID,
		Reason: fmt.Sprintf("%s disqualified (%s)", loser.ID, reason),
	}
}

func raceOutcome(a, b *PlayerDuelState) Outcome {
	diff := a.CompletionTimestamp - b.CompletionTimestamp
	if diff < 0 {
		diff = -diff
	}
	if diff < TieWindowMs {
		return Outcome{Draw: true, Reason: ReasonDraw}
	}
	first := a
	if b.CompletionTimestamp < a.CompletionTimestamp {
		first = b
	}
	return Outcome{
		Winner: first.ID,
		Reason: fmt.Sprintf("%s fired first by %dms", first.ID, diff),
	}
}
