package termgrid

import "testing"

func TestCellRect_Corner(t *testing.T) {
	r := CellRect{X: 10, Y: 20, W: 30, H: 40}

	tests := []struct {
		corner int
		x, y   float32
	}{
		{0, 10, 20},
		{1, 40, 20},
		{2, 10, 60},
		{3, 40, 60},
	}

	for _, tt := range tests {
		x, y := r.Corner(tt.corner)
		if x != tt.x || y != tt.y {
			t.Errorf("Corner(%d) = (%v, %v), want (%v, %v)",
				tt.corner, x, y, tt.x, tt.y)
		}
	}
}

func TestCellRect_Corner_NegativeExtent(t *testing.T) {
	// NDC rects carry negative heights; the expansion must mirror, not
	// special-case.
	r := CellRect{X: -1, Y: 1, W: 2, H: -2}

	tests := []struct {
		corner int
		x, y   float32
	}{
		{0, -1, 1},
		{1, 1, 1},
		{2, -1, -1},
		{3, 1, -1},
	}

	for _, tt := range tests {
		x, y := r.Corner(tt.corner)
		if x != tt.x || y != tt.y {
			t.Errorf("Corner(%d) = (%v, %v), want (%v, %v)",
				tt.corner, x, y, tt.x, tt.y)
		}
	}
}

func TestCellRect_Corner_ZeroExtent(t *testing.T) {
	r := CellRect{X: 5, Y: 5}
	for corner := 0; corner < 4; corner++ {
		x, y := r.Corner(corner)
		if x != 5 || y != 5 {
			t.Errorf("Corner(%d) = (%v, %v), want (5, 5)", corner, x, y)
		}
	}
}
