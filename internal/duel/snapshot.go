package duel

import (
	"github.com/vovakirdan/tui-duel/internal/core"
	"github.com/vovakirdan/tui-duel/internal/pattern"
)

// PlayerView is the read-only picture of one duelist used for rendering.
type PlayerView struct {
	ID           core.PlayerID
	Name         string
	Weapon       string
	Pattern      []core.Symbol // empty until the reveal
	Progress     int
	Completed    bool
	Disqualified bool
	Reason       string
	Penalized    bool
	PenaltyUntil core.Millis
}

// Snapshot is a copy of the machine's state at a moment in time.
// It shares nothing with the live duel.
type Snapshot struct {
	DuelID         string
	Phase          pattern.Phase
	Countdown      int
	Players        [2]PlayerView
	ListeningStart core.Millis
	Deadline       core.Millis
	Now            core.Millis
	Outcome        *pattern.Outcome
}

// Remaining returns the listening time left at the snapshot's moment.
func (s Snapshot) Remaining() core.Millis {
	if s.Phase != pattern.PhaseListening {
		return 0
	}
	if s.Now >= s.Deadline {
		return 0
	}
	return s.Deadline - s.Now
}

// Snapshot captures the current state for presentation at time now.
func (m *Machine) Snapshot(now core.Millis) Snapshot {
	snap := Snapshot{
		DuelID:    m.duelID,
		Phase:     m.Phase(),
		Countdown: m.countdown,
		Now:       now,
	}
	for i := range snap.Players {
		snap.Players[i] = PlayerView{
			ID:     core.Players[i],
			Name:   m.names[i],
			Weapon: m.weapons[i].Name(),
		}
	}
	if m.outcome != nil {
		out := *m.outcome
		snap.Outcome = &out
	}
	if m.state == nil {
		return snap
	}

	snap.ListeningStart = m.state.ListeningStartTime
	snap.Deadline = m.deadline
	for i := range m.state.Players {
		p := &m.state.Players[i]
		v := &snap.Players[i]
		if snap.Phase >= pattern.PhaseReveal {
			v.Pattern = append([]core.Symbol(nil), p.Pattern...)
		}
		v.Progress = p.Progress
		v.Completed = p.Completed
		v.Disqualified = p.Disqualified
		v.Reason = p.DisqualifyReason
		v.PenaltyUntil = p.PenaltyUntil
		v.Penalized = snap.Phase == pattern.PhaseListening && p.PenalizedAt(now)
	}
	return snap
}
