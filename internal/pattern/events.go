package pattern

import "github.com/vovakirdan/tui-duel/internal/core"

// Event is a domain event produced while adjudicating a duel.
// Events are delivered to presentation in the order they happened.
type Event interface {
	IsDuelEvent() // Marker method for type safety
}

// ProgressEvent reports a correct key that did not finish the pattern.
type ProgressEvent struct {
	Player    core.PlayerID
	Progress  int
	Timestamp core.Millis
}

func (ProgressEvent) IsDuelEvent() {}

// WrongInputEvent reports a key that did not match the expected symbol.
type WrongInputEvent struct {
	Player       core.PlayerID
	Expected     core.Symbol
	Actual       core.Symbol
	PenaltyMs    core.Millis
	PenaltyUntil core.Millis
}

func (WrongInputEvent) IsDuelEvent() {}

// CompleteEvent reports that a player typed their whole pattern and fired.
type CompleteEvent struct {
	Player    core.PlayerID
	Timestamp core.Millis
}

func (CompleteEvent) IsDuelEvent() {}

// DisqualifiedEvent reports a terminal loss for illegal input.
type DisqualifiedEvent struct {
	Player    core.PlayerID
	Reason    string
	Symbol    core.Symbol
	Timestamp core.Millis
}

func (DisqualifiedEvent) IsDuelEvent() {}
