package pattern

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-duel/internal/core"
	"github.com/vovakirdan/tui-duel/internal/weapon"
)

func testWeapon(id string, window core.Millis, keys ...string) *weapon.Profile {
	return &weapon.Profile{
		ID:            id,
		DisplayName:   id,
		Length:        len(keys),
		AvailableKeys: weapon.Symbols(keys...),
		InputWindowMs: window,
	}
}

// listeningDuel builds a duel already in the listening phase with fixed patterns.
func listeningDuel(p1, p2 []core.Symbol, w1, w2 *weapon.Profile) *DuelState {
	ds := NewDuelState(w1, w2)
	ds.Phase = PhaseListening
	ds.ListeningStartTime = 0
	ds.Players[0].Pattern = p1
	ds.Players[1].Pattern = p2
	return ds
}

func newTestEngine() *Engine {
	return NewEngine(DefaultOptions(), rand.New(rand.NewSource(42)))
}

func TestScenarioSequentialCompletion(t *testing.T) {
	w := testWeapon("asd", 5000, "a", "s", "d", "x")
	other := testWeapon("other", 5000, "j", "k", "l")
	ds := listeningDuel(weapon.Symbols("a", "s", "d"), weapon.Symbols("j", "k", "l"), w, other)
	e := newTestEngine()
	p1 := ds.Player(core.Player1)

	e.Enqueue(ds, "a", 0)
	e.Drain(ds)
	if p1.Progress != 1 {
		t.Fatalf("after A progress = %d, expected 1", p1.Progress)
	}

	e.Enqueue(ds, "s", 100)
	e.Drain(ds)
	if p1.Progress != 2 {
		t.Fatalf("after S progress = %d, expected 2", p1.Progress)
	}

	e.Enqueue(ds, "d", 200)
	events := e.Drain(ds)
	if p1.Progress != 3 || !p1.Completed {
		t.Fatalf("after D progress = %d completed = %v", p1.Progress, p1.Completed)
	}
	if p1.CompletionTimestamp != 200 {
		t.Errorf("CompletionTimestamp = %d, expected 200", p1.CompletionTimestamp)
	}
	want := []Event{CompleteEvent{Player: core.Player1, Timestamp: 200}}
	if !reflect.DeepEqual(events, want) {
		t.Errorf("events = %#v, expected %#v", events, want)
	}
}

func TestScenarioWrongInputPenalty(t *testing.T) {
	w := testWeapon("asdx", 5000, "a", "s", "d", "x")
	other := testWeapon("other", 5000, "j", "k", "l")
	ds := listeningDuel(weapon.Symbols("a", "s", "d"), weapon.Symbols("j", "k", "l"), w, other)
	e := newTestEngine()
	p1 := ds.Player(core.Player1)

	e.Enqueue(ds, "x", 0)
	events := e.Drain(ds)
	if p1.PenaltyUntil != 1500 {
		t.Errorf("PenaltyUntil = %d, expected 1500", p1.PenaltyUntil)
	}
	if p1.Progress != 0 {
		t.Errorf("progress = %d, wrong input must not advance", p1.Progress)
	}
	wrong, ok := events[0].(WrongInputEvent)
	if !ok || wrong.Expected != "a" || wrong.Actual != "x" || wrong.PenaltyMs != 1500 {
		t.Errorf("unexpected event %#v", events[0])
	}

	e.Enqueue(ds, "a", 1000)
	if events := e.Drain(ds); len(events) != 0 {
		t.Errorf("input inside penalty produced events: %#v", events)
	}
	if p1.Progress != 0 {
		t.Errorf("input inside penalty was accepted")
	}

	e.Enqueue(ds, "a", 1500)
	e.Drain(ds)
	if p1.Progress != 1 {
		t.Errorf("input at penalty end should be accepted, progress = %d", p1.Progress)
	}
}

func TestWrongInputDoesNotResetProgress(t *testing.T) {
	w := testWeapon("w", 5000, "a", "s", "d", "f")
	other := testWeapon("other", 5000, "j", "k")
	ds := listeningDuel(weapon.Symbols("a", "s", "d"), weapon.Symbols("j", "k"), w, other)
	e := newTestEngine()

	e.Enqueue(ds, "a", 10)
	e.Enqueue(ds, "f", 20)
	e.Drain(ds)

	p1 := ds.Player(core.Player1)
	if p1.Progress != 1 {
		t.Errorf("progress = %d, expected 1 after a wrong key", p1.Progress)
	}
	if p1.PenaltyUntil != 20+DefaultWrongInputPenaltyMs {
		t.Errorf("PenaltyUntil = %d", p1.PenaltyUntil)
	}
}

func TestScenarioSameTickOrdering(t *testing.T) {
	w := testWeapon("as", 5000, "a", "s")
	other := testWeapon("other", 5000, "j", "k")
	ds := listeningDuel(weapon.Symbols("a", "s"), weapon.Symbols("j", "k"), w, other)
	e := newTestEngine()

	e.Enqueue(ds, "a", 10)
	e.Enqueue(ds, "s", 10)
	events := e.Drain(ds)

	want := []Event{
		ProgressEvent{Player: core.Player1, Progress: 1, Timestamp: 10},
		CompleteEvent{Player: core.Player1, Timestamp: 10},
	}
	if !reflect.DeepEqual(events, want) {
		t.Errorf("events = %#v, expected %#v", events, want)
	}
	if ds.Queue.Len() != 0 {
		t.Errorf("queue should be empty after drain, has %d", ds.Queue.Len())
	}
}

func TestSharedKeyAdvancesBothPlayers(t *testing.T) {
	w := testWeapon("shared", 5000, "a", "s", "d")
	ds := listeningDuel(weapon.Symbols("a", "s"), weapon.Symbols("a", "d"), w, w)
	e := newTestEngine()

	e.Enqueue(ds, "a", 5)
	events := e.Drain(ds)

	if len(events) != 2 {
		t.Fatalf("expected one event per player, got %#v", events)
	}
	if ds.Players[0].Progress != 1 || ds.Players[1].Progress != 1 {
		t.Errorf("both players should advance on a shared key")
	}

	// "s" matches player 1 and is a wrong key for player 2.
	e.Enqueue(ds, "s", 6)
	events = e.Drain(ds)
	if _, ok := events[0].(CompleteEvent); !ok {
		t.Errorf("first event should complete player 1, got %#v", events[0])
	}
	if _, ok := events[1].(WrongInputEvent); !ok {
		t.Errorf("second event should penalize player 2, got %#v", events[1])
	}
}

func TestArbitrationSkipsOtherWeaponKeys(t *testing.T) {
	w1 := testWeapon("left", 5000, "a", "s")
	w2 := testWeapon("right", 5000, "j", "k")
	ds := listeningDuel(weapon.Symbols("a", "s"), weapon.Symbols("j", "k"), w1, w2)
	e := newTestEngine()

	e.Enqueue(ds, "j", 1)
	events := e.Drain(ds)

	if len(events) != 1 {
		t.Fatalf("expected only player 2 to react, got %#v", events)
	}
	if ds.Players[0].PenaltyUntil != 0 {
		t.Error("a key outside player 1's weapon must not penalize them")
	}
}

func TestArbitrationIgnoresInputOutsideWindow(t *testing.T) {
	w := testWeapon("short", 300, "a", "s")
	other := testWeapon("other", 5000, "j", "k")
	ds := listeningDuel(weapon.Symbols("a", "s"), weapon.Symbols("j", "k"), w, other)
	ds.ListeningStartTime = 1000
	e := newTestEngine()

	e.Enqueue(ds, "a", 1300) // exactly at the window edge
	e.Enqueue(ds, "s", 1301) // one past
	e.Drain(ds)

	p1 := ds.Player(core.Player1)
	if p1.Progress != 1 {
		t.Errorf("progress = %d, expected only the in-window key to count", p1.Progress)
	}
	if p1.Disqualified {
		t.Error("window expiry must not disqualify")
	}
}

func TestFinishedPlayersIgnoreInput(t *testing.T) {
	w := testWeapon("w", 5000, "a", "s")
	ds := listeningDuel(weapon.Symbols("a"), weapon.Symbols("s"), w, w)
	ds.Players[1].Disqualified = true
	e := newTestEngine()

	e.Enqueue(ds, "a", 1)
	e.Enqueue(ds, "a", 2)
	e.Enqueue(ds, "s", 3)
	events := e.Drain(ds)

	if len(events) != 1 {
		t.Fatalf("expected a single completion event, got %#v", events)
	}
	if ds.Players[1].Progress != 0 {
		t.Error("disqualified player must not progress")
	}
}

func TestEnqueueDropsUnrecognizedSymbols(t *testing.T) {
	w := testWeapon("w", 5000, "a", "s")
	ds := listeningDuel(weapon.Symbols("a", "s"), weapon.Symbols("s", "a"), w, w)
	e := newTestEngine()

	if e.Enqueue(ds, "z", 1) {
		t.Error("Enqueue accepted a symbol no weapon uses")
	}
	if !e.Enqueue(ds, "a", 2) {
		t.Error("Enqueue rejected a recognized symbol")
	}
	if ds.Queue.Len() != 1 {
		t.Errorf("queue length = %d, expected 1", ds.Queue.Len())
	}
	if ds.Players[0].Progress != 0 {
		t.Error("Enqueue must not change progress")
	}
}

func TestDrainIsBatchIndependent(t *testing.T) {
	w := testWeapon("w", 5000, "a", "s", "d", "f")
	inputs := []Input{
		{"a", 10}, {"f", 12}, {"j", 15}, {"s", 1600}, {"a", 1601}, {"d", 1700}, {"d", 1750},
	}

	run := func(batches [][]Input) ([]Event, [2]PlayerDuelState) {
		ds := listeningDuel(weapon.Symbols("a", "s", "d"), weapon.Symbols("d", "a", "s"), w, w)
		e := newTestEngine()
		var all []Event
		for _, batch := range batches {
			for _, in := range batch {
				e.Enqueue(ds, in.Symbol, in.Timestamp)
			}
			all = append(all, e.Drain(ds)...)
		}
		return all, ds.Players
	}

	oneBatch, stateA := run([][]Input{inputs})
	perInput := make([][]Input, 0, len(inputs))
	for _, in := range inputs {
		perInput = append(perInput, []Input{in})
	}
	split, stateB := run(perInput)
	uneven, stateC := run([][]Input{inputs[:3], inputs[3:5], inputs[5:]})

	if !reflect.DeepEqual(oneBatch, split) || !reflect.DeepEqual(oneBatch, uneven) {
		t.Errorf("event sequences differ across batching:\n%#v\n%#v\n%#v", oneBatch, split, uneven)
	}
	if !reflect.DeepEqual(stateA, stateB) || !reflect.DeepEqual(stateA, stateC) {
		t.Error("final player states differ across batching")
	}
}

func TestProgressBoundsUnderRandomInput(t *testing.T) {
	w := testWeapon("w", 2000, "a", "s", "d", "f", "g")
	rng := rand.New(rand.NewSource(7))
	e := NewEngine(Options{WrongInputPenaltyMs: 120, RerollAttempts: 10}, rand.New(rand.NewSource(8)))

	for round := 0; round < 200; round++ {
		ds := NewDuelState(w, w)
		if err := e.Assign(ds); err != nil {
			t.Fatalf("Assign() failed: %v", err)
		}
		ds.Phase = PhaseListening

		var last [2]int
		ts := core.Millis(0)
		for step := 0; step < 60; step++ {
			ts += core.Millis(rng.Intn(80))
			e.Enqueue(ds, w.AvailableKeys[rng.Intn(len(w.AvailableKeys))], ts)
			if rng.Intn(3) == 0 {
				e.Drain(ds)
			}
			for i, p := range ds.Players {
				if p.Progress < last[i] {
					t.Fatalf("progress went backwards for %s", p.ID)
				}
				if p.Progress > len(p.Pattern) {
					t.Fatalf("progress %d beyond pattern length %d", p.Progress, len(p.Pattern))
				}
				if p.Completed && p.Disqualified {
					t.Fatalf("%s both completed and disqualified", p.ID)
				}
				last[i] = p.Progress
			}
		}
	}
}

func TestScenarioEarlyInputDisqualifies(t *testing.T) {
	w := testWeapon("w", 5000, "q", "w", "e", "r")
	ds := NewDuelState(w, w)
	ds.Phase = PhaseReveal
	ds.Players[0].Pattern = weapon.Symbols("q", "w")
	ds.Players[1].Pattern = weapon.Symbols("e", "r")
	e := newTestEngine()

	events := e.EarlyInput(ds, "q", 500)

	p1, p2 := ds.Player(core.Player1), ds.Player(core.Player2)
	if !p1.Disqualified || p1.DisqualifyReason != ReasonEarly {
		t.Errorf("player 1 should be disqualified early, got %+v", p1)
	}
	if p2.Disqualified || p2.Progress != 0 || p2.PenaltyUntil != 0 {
		t.Errorf("player 2 must be unaffected, got %+v", p2)
	}
	want := []Event{DisqualifiedEvent{Player: core.Player1, Reason: ReasonEarly, Symbol: "q", Timestamp: 500}}
	if !reflect.DeepEqual(events, want) {
		t.Errorf("events = %#v", events)
	}
}

func TestEarlyInputSharedSymbolPicksFirstEligible(t *testing.T) {
	w := testWeapon("w", 5000, "a", "s", "d")
	ds := NewDuelState(w, w)
	ds.Phase = PhaseReveal
	ds.Players[0].Pattern = weapon.Symbols("a", "s")
	ds.Players[1].Pattern = weapon.Symbols("s", "d")
	e := newTestEngine()

	e.EarlyInput(ds, "s", 1)
	if !ds.Players[0].Disqualified || ds.Players[1].Disqualified {
		t.Fatal("the first player in order should be disqualified first")
	}

	e.EarlyInput(ds, "s", 2)
	if !ds.Players[1].Disqualified {
		t.Error("a second press should fall through to the next eligible player")
	}
}

func TestEarlyInputWithoutMatchingPatternIsDropped(t *testing.T) {
	w := testWeapon("w", 5000, "a", "s", "d")
	ds := NewDuelState(w, w)
	ds.Phase = PhaseCountdown

	e := newTestEngine()
	if events := e.EarlyInput(ds, "a", 1); events != nil {
		t.Errorf("no pattern assigned yet, expected no events, got %#v", events)
	}
	if events := e.EarlyInput(ds, "z", 1); events != nil {
		t.Errorf("unrecognized key should be dropped, got %#v", events)
	}
	if ds.Players[0].Disqualified || ds.Players[1].Disqualified {
		t.Error("nobody should be disqualified")
	}
}
