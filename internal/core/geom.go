// Package core provides the small set of types shared by the duel engine and
// its presentation layers: monotonic time, player ids, input symbols, and a
// character screen buffer. It has no terminal dependencies so that duel logic
// stays pure and testable.
package core

// Rect is an axis-aligned area on the screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Inset shrinks the rectangle by n cells on every side.
func (r Rect) Inset(n int) Rect {
	return Rect{X: r.X + n, Y: r.Y + n, W: Max(0, r.W-2*n), H: Max(0, r.H-2*n)}
}

// SplitVertical cuts the rectangle into left and right halves.
// The right half receives the extra column when the width is odd.
func (r Rect) SplitVertical() (Rect, Rect) {
	leftW := r.W / 2
	return NewRect(r.X, r.Y, leftW, r.H), NewRect(r.X+leftW, r.Y, r.W-leftW, r.H)
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
