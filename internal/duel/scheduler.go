package duel

import "github.com/vovakirdan/tui-duel/internal/core"

// TimerID identifies a scheduled callback.
type TimerID uint64

type timer struct {
	id   TimerID
	due  core.Millis
	name string
	fn   func(at core.Millis)
}

// Scheduler holds deferred callbacks against the duel's monotonic clock.
// Nothing runs on its own: callbacks fire only from Fire, on the caller's
// goroutine, in due-time order (ties in scheduling order).
type Scheduler struct {
	timers []timer
	nextID TimerID
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// At schedules fn to run once the clock reaches due. The callback receives
// its due time rather than the time Fire happened to be called.
func (s *Scheduler) At(due core.Millis, name string, fn func(at core.Millis)) TimerID {
	s.nextID++
	s.timers = append(s.timers, timer{id: s.nextID, due: due, name: name, fn: fn})
	return s.nextID
}

// Cancel removes a pending timer. Unknown ids are ignored.
func (s *Scheduler) Cancel(id TimerID) {
	for i, t := range s.timers {
		if t.id == id {
			s.timers = append(s.timers[:i], s.timers[i+1:]...)
			return
		}
	}
}

// CancelAll drops every pending timer.
func (s *Scheduler) CancelAll() {
	s.timers = nil
}

// Pending returns the number of timers not yet fired.
func (s *Scheduler) Pending() int {
	return len(s.timers)
}

// Next returns the due time of the earliest pending timer.
func (s *Scheduler) Next() (core.Millis, bool) {
	idx := s.earliest()
	if idx < 0 {
		return 0, false
	}
	return s.timers[idx].due, true
}

// Fire runs every timer due at or before now, including timers that earlier
// callbacks schedule within the same window. It returns how many ran.
func (s *Scheduler) Fire(now core.Millis) int {
	fired := 0
	for {
		idx := s.earliest()
		if idx < 0 || s.timers[idx].due > now {
			return fired
		}
		t := s.timers[idx]
		s.timers = append(s.timers[:idx], s.timers[idx+1:]...)
		t.fn(t.due)
		fired++
	}
}

func (s *Scheduler) earliest() int {
	idx := -1
	for i, t := range s.timers {
		if idx < 0 || t.due < s.timers[idx].due || (t.due == s.timers[idx].due && t.id < s.timers[idx].id) {
			idx = i
		}
	}
	return idx
}
