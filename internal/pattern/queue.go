package pattern

import "github.com/vovakirdan/tui-duel/internal/core"

// Input is a key press waiting to be scored.
type Input struct {
	Symbol    core.Symbol
	Timestamp core.Millis
}

// InputQueue buffers key presses between ticks in arrival order.
// It is owned by a single DuelState and touched only from the duel's
// goroutine, so it needs no locking.
type InputQueue struct {
	items []Input
}

// Push appends an input to the back of the queue.
func (q *InputQueue) Push(in Input) {
	q.items = append(q.items, in)
}

// Pop removes and returns the oldest input.
func (q *InputQueue) Pop() (Input, bool) {
	if len(q.items) == 0 {
		return Input{}, false
	}
	in := q.items[0]
	q.items[0] = Input{}
	q.items = q.items[1:]
	return in, true
}

// Len returns the number of pending inputs.
func (q *InputQueue) Len() int {
	return len(q.items)
}

// Pending returns a copy of the pending inputs, oldest first.
func (q *InputQueue) Pending() []Input {
	return append([]Input(nil), q.items...)
}

// Clear drops every pending input.
func (q *InputQueue) Clear() {
	q.items = nil
}
