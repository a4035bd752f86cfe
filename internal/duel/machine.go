// Package duel runs the duel's game-level state machine:
// Waiting -> Countdown -> Reveal -> Listening -> Finished.
//
// The Machine is single-threaded and frame-driven. The host feeds it raw keys
// with HandleKey and calls Tick once per frame. Listening-phase keys are only
// buffered on arrival; Tick drains them through the pattern engine in FIFO
// order and then fires due timers. Every timer callback carries the duel
// generation it was scheduled under and does nothing once a reset has moved
// the machine on.
package duel

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-duel/internal/core"
	"github.com/vovakirdan/tui-duel/internal/pattern"
	"github.com/vovakirdan/tui-duel/internal/weapon"
)

// Machine owns one duel at a time and drives it through its phases.
type Machine struct {
	cfg     Config
	weapons [2]*weapon.Profile
	names   [2]string
	keys    map[core.Symbol]bool

	engine *pattern.Engine
	sched  *Scheduler

	// Per-duel state, replaced on every start.
	state      *pattern.DuelState
	generation uint64
	duelID     string
	countdown  int
	startedAt  core.Millis
	deadline   core.Millis
	outcome    *pattern.Outcome

	pending []pattern.Event

	logger *log.Logger
	sink   Sink
	saver  ResultSaver
	rng    *rand.Rand
	newID  func() string
}

// Option configures a Machine.
type Option func(*Machine)

// WithLogger sets the logger used for transitions and outcomes.
func WithLogger(l *log.Logger) Option {
	return func(m *Machine) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithSink registers a presentation sink that sees every event.
func WithSink(s Sink) Option {
	return func(m *Machine) { m.sink = s }
}

// WithResultSaver registers the consumer of finished duel results.
func WithResultSaver(s ResultSaver) Option {
	return func(m *Machine) { m.saver = s }
}

// WithRand sets the random source used for patterns.
func WithRand(rng *rand.Rand) Option {
	return func(m *Machine) {
		if rng != nil {
			m.rng = rng
		}
	}
}

// WithPlayers names the two duelists for results and display.
func WithPlayers(p1, p2 string) Option {
	return func(m *Machine) {
		if p1 != "" {
			m.names[0] = p1
		}
		if p2 != "" {
			m.names[1] = p2
		}
	}
}

// WithIDGenerator replaces the duel id generator (uuid by default).
func WithIDGenerator(f func() string) Option {
	return func(m *Machine) {
		if f != nil {
			m.newID = f
		}
	}
}

// New creates a machine in the Waiting phase. Invalid timings or weapons are
// configuration errors and are reported here, before any duel starts.
func New(cfg Config, weapons [2]*weapon.Profile, opts ...Option) (*Machine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	for i, w := range weapons {
		if w == nil {
			return nil, fmt.Errorf("duel: no weapon for %s", core.Players[i])
		}
		if err := w.Validate(); err != nil {
			return nil, fmt.Errorf("duel: %s: %w", core.Players[i], err)
		}
	}

	m := &Machine{
		cfg:     cfg,
		weapons: weapons,
		names:   [2]string{core.Player1.String(), core.Player2.String()},
		keys:    weapon.KeyUnion(weapons[0], weapons[1]),
		sched:   NewScheduler(),
		logger:  log.New(io.Discard),
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewSource(1))
	}
	m.engine = pattern.NewEngine(pattern.Options{
		WrongInputPenaltyMs: cfg.WrongInputPenaltyMs,
		RerollAttempts:      pattern.DefaultRerollAttempts,
	}, m.rng)
	return m, nil
}

// Phase returns the current phase.
func (m *Machine) Phase() pattern.Phase {
	if m.state == nil {
		return pattern.PhaseWaiting
	}
	return m.state.Phase
}

// Generation returns the current duel generation. It increases on every
// start and reset.
func (m *Machine) Generation() uint64 {
	return m.generation
}

// State returns the live duel state, or nil while waiting.
// Callers must treat it as read-only.
func (m *Machine) State() *pattern.DuelState {
	return m.state
}

// Outcome returns the verdict once the duel is finished.
func (m *Machine) Outcome() (pattern.Outcome, bool) {
	if m.outcome == nil {
		return pattern.Outcome{}, false
	}
	return *m.outcome, true
}

// Weapons returns the profiles assigned to both players.
func (m *Machine) Weapons() [2]*weapon.Profile {
	return m.weapons
}

// Recognizes reports whether either weapon uses sym.
func (m *Machine) Recognizes(sym core.Symbol) bool {
	return m.keys[sym]
}

// HandleKey routes a raw key press according to the current phase and
// returns the events it caused. Unrecognized symbols are dropped.
func (m *Machine) HandleKey(sym core.Symbol, ts core.Millis) []pattern.Event {
	if sym == "" || !m.keys[sym] {
		return nil
	}

	switch m.Phase() {
	case pattern.PhaseWaiting:
		m.start(ts)

	case pattern.PhaseCountdown, pattern.PhaseReveal:
		// Transitions due by the time of the key happen first, so a key
		// pressed just after the reveal ended is not punished as early.
		m.sched.Fire(ts)
		m.route(sym, ts)

	case pattern.PhaseListening:
		m.route(sym, ts)

	case pattern.PhaseFinished:
		// Ignored until a reset.
	}

	return m.flush()
}

// route handles a key in the phase the machine is in after timers fired.
func (m *Machine) route(sym core.Symbol, ts core.Millis) {
	switch m.Phase() {
	case pattern.PhaseCountdown, pattern.PhaseReveal:
		events := m.engine.EarlyInput(m.state, sym, ts)
		for _, evt := range events {
			m.emit(evt)
		}
		if len(events) > 0 {
			m.logger.Debug("early input", "duel", m.duelID, "symbol", sym, "phase", m.Phase())
			m.checkOutcome(ts)
		}

	case pattern.PhaseListening:
		if ts >= m.deadline {
			return
		}
		m.engine.Enqueue(m.state, sym, ts)
	}
}

// Tick performs one frame of processing: it drains queued input, checks for
// a verdict, and then fires timers due at or before now.
func (m *Machine) Tick(now core.Millis) []pattern.Event {
	if m.Phase() == pattern.PhaseListening {
		for _, evt := range m.engine.Drain(m.state) {
			m.emit(evt)
			if wrong, ok := evt.(pattern.WrongInputEvent); ok {
				m.schedulePenaltyClear(wrong.Player, wrong.PenaltyUntil)
			}
		}
		m.checkOutcome(now)
	}

	m.sched.Fire(now)
	return m.flush()
}

// Reset abandons the current duel, cancels all its timers and returns to
// Waiting. The next start builds a brand-new DuelState.
func (m *Machine) Reset(now core.Millis) []pattern.Event {
	from := m.Phase()
	m.sched.CancelAll()
	m.generation++
	m.state = nil
	m.outcome = nil
	m.duelID = ""
	m.countdown = 0
	m.deadline = 0

	if from != pattern.PhaseWaiting {
		m.emit(PhaseChangedEvent{From: from, To: pattern.PhaseWaiting, At: now})
	}
	m.logger.Debug("duel reset", "generation", m.generation)
	return m.flush()
}

func (m *Machine) start(at core.Millis) {
	m.sched.CancelAll()
	m.generation++
	m.state = pattern.NewDuelState(m.weapons[0], m.weapons[1])
	m.outcome = nil
	m.duelID = m.newID()
	m.startedAt = at
	m.countdown = m.cfg.CountdownSteps

	m.logger.Info("duel requested", "duel", m.duelID,
		"weapon1", m.weapons[0].ID, "weapon2", m.weapons[1].ID)
	m.setPhase(pattern.PhaseCountdown, at)

	if m.countdown <= 0 {
		m.reveal(at)
		return
	}
	m.emit(CountdownEvent{Value: m.countdown, At: at})
	m.schedule(at+m.cfg.CountdownInterval, "countdown", m.countdownStep)
}

func (m *Machine) countdownStep(at core.Millis) {
	m.countdown--
	if m.countdown > 0 {
		m.emit(CountdownEvent{Value: m.countdown, At: at})
		m.schedule(at+m.cfg.CountdownInterval, "countdown", m.countdownStep)
		return
	}
	m.reveal(at)
}

func (m *Machine) reveal(at core.Millis) {
	if err := m.engine.Assign(m.state); err != nil {
		// Weapons are validated in New, so this only happens if a profile
		// was changed behind the machine's back.
		m.logger.Error("cannot generate patterns", "duel", m.duelID, "error", err)
		m.finish(pattern.Outcome{Reason: fmt.Sprintf("configuration error: %v", err)}, at)
		return
	}

	m.setPhase(pattern.PhaseReveal, at)
	m.emit(PatternsRevealedEvent{
		Patterns: [2][]core.Symbol{
			append([]core.Symbol(nil), m.state.Players[0].Pattern...),
			append([]core.Symbol(nil), m.state.Players[1].Pattern...),
		},
		At: at,
	})
	m.schedule(at+m.cfg.RevealDuration, "reveal", m.listen)
}

func (m *Machine) listen(at core.Millis) {
	m.state.ListeningStartTime = at
	m.deadline = at + m.cfg.GameTimeout
	m.setPhase(pattern.PhaseListening, at)
	m.schedule(m.deadline, "timeout", m.timeout)
}

func (m *Machine) timeout(at core.Millis) {
	if m.Phase() != pattern.PhaseListening {
		return
	}
	m.finish(pattern.Outcome{Reason: pattern.ReasonTooSlow}, at)
}

func (m *Machine) schedulePenaltyClear(player core.PlayerID, until core.Millis) {
	m.schedule(until, "penalty", func(at core.Millis) {
		if m.Phase() != pattern.PhaseListening {
			return
		}
		m.emit(PenaltyClearedEvent{Player: player, At: at})
	})
}

// schedule registers a callback bound to the current generation.
func (m *Machine) schedule(due core.Millis, name string, fn func(at core.Millis)) {
	gen := m.generation
	m.sched.At(due, name, func(at core.Millis) {
		if gen != m.generation {
			m.logger.Debug("stale timer ignored", "timer", name, "generation", gen, "current", m.generation)
			return
		}
		fn(at)
	})
}

func (m *Machine) checkOutcome(at core.Millis) {
	if m.state == nil || m.state.Phase == pattern.PhaseFinished {
		return
	}
	if out, done := pattern.DecideOutcome(m.state); done {
		m.finish(out, at)
	}
}

func (m *Machine) finish(out pattern.Outcome, at core.Millis) {
	if m.state.Phase == pattern.PhaseFinished {
		return
	}
	m.sched.CancelAll()
	m.state.Queue.Clear()
	m.outcome = &out
	m.setPhase(pattern.PhaseFinished, at)
	m.emit(FinishedEvent{DuelID: m.duelID, Outcome: out, At: at})

	m.logger.Info("duel finished", "duel", m.duelID,
		"winner", out.Winner, "draw", out.Draw, "reason", out.Reason)

	if m.saver != nil {
		if err := m.saver.SaveDuelResult(m.result(at)); err != nil {
			m.logger.Warn("could not save duel result", "duel", m.duelID, "error", err)
		}
	}
}

func (m *Machine) result(at core.Millis) Result {
	r := Result{
		DuelID:     m.duelID,
		Players:    m.names,
		Weapons:    [2]string{m.weapons[0].ID, m.weapons[1].ID},
		Outcome:    *m.outcome,
		StartedAt:  m.startedAt,
		FinishedAt: at,
	}
	for i, p := range m.state.Players {
		if p.Completed {
			r.CompletionTimes[i] = p.CompletionTimestamp
		}
	}
	return r
}

func (m *Machine) setPhase(p pattern.Phase, at core.Millis) {
	from := m.state.Phase
	m.state.Phase = p
	m.emit(PhaseChangedEvent{From: from, To: p, At: at})
	m.logger.Debug("phase changed", "duel", m.duelID, "from", from, "to", p, "at", at)
}

func (m *Machine) emit(evt pattern.Event) {
	m.pending = append(m.pending, evt)
	if m.sink != nil {
		m.sink.Publish(evt)
	}
}

func (m *Machine) flush() []pattern.Event {
	out := m.pending
	m.pending = nil
	return out
}
