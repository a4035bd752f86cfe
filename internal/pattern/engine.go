// Package pattern adjudicates pattern duels. It owns the per-player progress
// rules: pattern generation, the buffered input queue, per-key arbitration
// with wrong-input penalties, early-input disqualification, and the pure
// outcome query. It knows nothing about rendering, audio or timers.
package pattern

import (
	"math/rand"

	"github.com/vovakirdan/tui-duel/internal/core"
)

// Default engine settings
const (
	DefaultWrongInputPenaltyMs core.Millis = 1500
	DefaultRerollAttempts                  = 10

	// TieWindowMs is the completion-time difference below which two finished
	// players draw. It absorbs timer jitter and is the same for every weapon.
	TieWindowMs core.Millis = 50
)

// ReasonEarly is the disqualification reason for input before listening.
const ReasonEarly = "early"

// Options tunes the engine.
type Options struct {
	WrongInputPenaltyMs core.Millis
	RerollAttempts      int
}

// DefaultOptions returns the standard engine settings.
func DefaultOptions() Options {
	return Options{
		WrongInputPenaltyMs: DefaultWrongInputPenaltyMs,
		RerollAttempts:      DefaultRerollAttempts,
	}
}

// Engine applies the duel rules to a DuelState it is handed on each call.
// It never keeps a reference to the state between calls.
type Engine struct {
	opts Options
	rng  *rand.Rand
}

// NewEngine creates an engine. A nil rng is replaced by one seeded with 1 so
// behaviour stays reproducible.
func NewEngine(opts Options, rng *rand.Rand) *Engine {
	if opts.WrongInputPenaltyMs < 0 {
		opts.WrongInputPenaltyMs = 0
	}
	if opts.RerollAttempts < 0 {
		opts.RerollAttempts = 0
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Engine{opts: opts, rng: rng}
}

// Options returns the engine's settings.
func (e *Engine) Options() Options {
	return e.opts
}

// Assign generates and stores both players' patterns.
func (e *Engine) Assign(ds *DuelState) error {
	p1, p2 := &ds.Players[0], &ds.Players[1]
	seqA, seqB, err := GenerateDuelPatterns(p1.Weapon, p2.Weapon, e.rng, e.opts.RerollAttempts)
	if err != nil {
		return err
	}
	p1.Pattern = seqA
	p2.Pattern = seqB
	return nil
}

// Enqueue buffers a key press for the next drain. Symbols no assigned weapon
// recognizes are dropped and false is returned. Player state is not touched.
func (e *Engine) Enqueue(ds *DuelState, sym core.Symbol, ts core.Millis) bool {
	if !ds.Recognizes(sym) {
		return false
	}
	ds.Queue.Push(Input{Symbol: sym, Timestamp: ts})
	return true
}

// Drain scores every queued input, oldest first, and returns the resulting
// events in that order. This is the only place listening-phase progress,
// completion and penalties change.
func (e *Engine) Drain(ds *DuelState) []Event {
	var events []Event
	for {
		in, ok := ds.Queue.Pop()
		if !ok {
			return events
		}
		events = e.arbitrate(ds, in, events)
	}
}

// arbitrate scores one input against both players independently. Keys are
// not owned by a player, so a single press may advance or penalize both.
func (e *Engine) arbitrate(ds *DuelState, in Input, events []Event) []Event {
	for i := range ds.Players {
		p := &ds.Players[i]

		if p.Finished() {
			continue
		}
		if p.PenalizedAt(in.Timestamp) {
			continue
		}
		// Late input is ignored here; ending the duel on time is the
		// overall timeout's job.
		if in.Timestamp-ds.ListeningStartTime > p.Weapon.InputWindowMs {
			continue
		}
		if !p.Weapon.HasKey(in.Symbol) {
			continue
		}

		expected, ok := p.Expected()
		if !ok {
			continue
		}

		if in.Symbol == expected {
			p.Progress++
			p.LastInputTime = in.Timestamp
			if p.Progress == len(p.Pattern) {
				p.Completed = true
				p.CompletionTimestamp = in.Timestamp
				events = append(events, CompleteEvent{Player: p.ID, Timestamp: in.Timestamp})
			} else {
				events = append(events, ProgressEvent{Player: p.ID, Progress: p.Progress, Timestamp: in.Timestamp})
			}
			continue
		}

		// Wrong key costs time but keeps progress.
		p.PenaltyUntil = in.Timestamp + e.opts.WrongInputPenaltyMs
		events = append(events, WrongInputEvent{
			Player:       p.ID,
			Expected:     expected,
			Actual:       in.Symbol,
			PenaltyMs:    e.opts.WrongInputPenaltyMs,
			PenaltyUntil: p.PenaltyUntil,
		})
	}
	return events
}

// EarlyInput handles a key pressed before listening started. The first
// player, in fixed order, whose pattern contains the symbol and who is not
// already out is disqualified at once. Keys matching no pattern do nothing.
func (e *Engine) EarlyInput(ds *DuelState, sym core.Symbol, ts core.Millis) []Event {
	if !ds.Recognizes(sym) {
		return nil
	}
	for i := range ds.Players {
		p := &ds.Players[i]
		if p.Finished() || !p.PatternContains(sym) {
			continue
		}
		p.Disqualified = true
		p.DisqualifyReason = ReasonEarly
		p.LastInputTime = ts
		return []Event{DisqualifiedEvent{Player: p.ID, Reason: ReasonEarly, Symbol: sym, Timestamp: ts}}
	}
	return nil
}
