package core

import "testing"

func TestTruncTowardZero(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{0, 0},
		{0.99, 0},
		{1.0, 1},
		{17.9, 17},
		{-0.5, 0},
		{-1.7, -1},
	}

	for _, tt := range tests {
		if got := Trunc(tt.in); got != tt.want {
			t.Errorf("Trunc(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestHitboxContainsCell(t *testing.T) {
	h := HitboxAt(10.7, 4.2, 5)

	if h.X != 10 || h.Y != 4 {
		t.Fatalf("Expected floored origin (10,4), got (%d,%d)", h.X, h.Y)
	}
	if !h.ContainsCell(10, 4) || !h.ContainsCell(14, 4) {
		t.Error("Expected both edges of span to be contained")
	}
	if h.ContainsCell(15, 4) {
		t.Error("Expected right edge to be exclusive")
	}
	if h.ContainsCell(9, 4) {
		t.Error("Expected column left of span to be outside")
	}
	if h.ContainsCell(12, 5) {
		t.Error("Expected different row to be outside")
	}
}

func TestHitboxOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Hitbox
		want bool
	}{
		{"same cells", Hitbox{5, 3, 3}, Hitbox{5, 3, 3}, true},
		{"partial", Hitbox{5, 3, 5}, Hitbox{9, 3, 3}, true},
		{"touching edges", Hitbox{5, 3, 5}, Hitbox{10, 3, 3}, false},
		{"touching left", Hitbox{10, 3, 5}, Hitbox{7, 3, 3}, false},
		{"different rows", Hitbox{5, 3, 5}, Hitbox{5, 4, 5}, false},
		{"contained", Hitbox{5, 3, 10}, Hitbox{8, 3, 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
			if got := tt.b.Overlaps(tt.a); got != tt.want {
				t.Errorf("Overlaps (reversed) = %v, want %v", got, tt.want)
			}
		})
	}
}
