package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 5, 5)

	tests := []struct {
		x, y     int
		expected bool
	}{
		{10, 10, true},  // top-left corner
		{14, 14, true},  // last cell inside
		{12, 12, true},  // center
		{15, 10, false}, // right edge is exclusive
		{10, 15, false}, // bottom edge is exclusive
		{9, 10, false},
		{10, 9, false},
	}

	for _, tc := range tests {
		if got := r.Contains(tc.x, tc.y); got != tc.expected {
			t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
		}
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(3, 4, 10, 20)

	if r.Right() != 13 {
		t.Errorf("Right() = %d, expected 13", r.Right())
	}
	if r.Bottom() != 24 {
		t.Errorf("Bottom() = %d, expected 24", r.Bottom())
	}
}

func TestCenteredIn(t *testing.T) {
	tests := []struct {
		name     string
		outer    Rect
		w, h     int
		expected Rect
	}{
		{"fits", NewRect(0, 0, 80, 24), 24, 22, NewRect(28, 1, 24, 22)},
		{"offset outer", NewRect(10, 5, 20, 10), 10, 4, NewRect(15, 8, 10, 4)},
		{"too large", NewRect(0, 0, 10, 10), 30, 30, NewRect(0, 0, 30, 30)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CenteredIn(tc.outer, tc.w, tc.h); got != tc.expected {
				t.Errorf("CenteredIn() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}
