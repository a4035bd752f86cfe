package core

import "testing"

func TestRectSplitVertical(t *testing.T) {
	left, right := NewRect(0, 0, 81, 10).SplitVertical()

	if left.W != 40 || right.W != 41 {
		t.Errorf("SplitVertical widths = %d/%d, expected 40/41", left.W, right.W)
	}
	if right.X != 40 {
		t.Errorf("right.X = %d, expected 40", right.X)
	}
}

func TestRectInset(t *testing.T) {
	r := NewRect(2, 2, 10, 6).Inset(1)
	if r != NewRect(3, 3, 8, 4) {
		t.Errorf("Inset(1) = %+v", r)
	}

	tiny := NewRect(0, 0, 1, 1).Inset(2)
	if tiny.W != 0 || tiny.H != 0 {
		t.Errorf("Inset on a tiny rect should clamp to zero, got %+v", tiny)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}
