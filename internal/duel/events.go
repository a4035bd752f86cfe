package duel

import (
	"github.com/vovakirdan/tui-duel/internal/core"
	"github.com/vovakirdan/tui-duel/internal/pattern"
)

// PhaseChangedEvent is emitted on every state transition.
type PhaseChangedEvent struct {
	From pattern.Phase
	To   pattern.Phase
	At   core.Millis
}

func (PhaseChangedEvent) IsDuelEvent() {}

// CountdownEvent carries the number to display while counting down.
type CountdownEvent struct {
	Value int
	At    core.Millis
}

func (CountdownEvent) IsDuelEvent() {}

// PatternsRevealedEvent exposes both patterns to their players.
type PatternsRevealedEvent struct {
	Patterns [2][]core.Symbol
	At       core.Millis
}

func (PatternsRevealedEvent) IsDuelEvent() {}

// PenaltyClearedEvent tells presentation that a player may type again.
// It is informational; arbitration checks penalties by timestamp.
type PenaltyClearedEvent struct {
	Player core.PlayerID
	At     core.Millis
}

func (PenaltyClearedEvent) IsDuelEvent() {}

// FinishedEvent carries the final verdict.
type FinishedEvent struct {
	DuelID  string
	Outcome pattern.Outcome
	At      core.Millis
}

func (FinishedEvent) IsDuelEvent() {}

// Sink receives every event the machine emits, in order.
type Sink interface {
	Publish(evt pattern.Event)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(evt pattern.Event)

// Publish calls f(evt).
func (f SinkFunc) Publish(evt pattern.Event) {
	f(evt)
}

// Result summarizes a finished duel for scoring and persistence.
type Result struct {
	DuelID          string
	Players         [2]string
	Weapons         [2]string
	Outcome         pattern.Outcome
	StartedAt       core.Millis
	FinishedAt      core.Millis
	CompletionTimes [2]core.Millis // 0 for players who did not finish
}

// Duration returns how long the duel ran from the first key to the verdict.
func (r Result) Duration() core.Millis {
	return r.FinishedAt - r.StartedAt
}

// WinnerName returns the winning player's name, or "" without a winner.
func (r Result) WinnerName() string {
	idx := r.Outcome.Winner.Index()
	if idx < 0 {
		return ""
	}
	return r.Players[idx]
}

// ResultSaver is an interface for saving duel results.
// This allows the machine to report outcomes without depending on storage.
type ResultSaver interface {
	SaveDuelResult(result Result) error
}
