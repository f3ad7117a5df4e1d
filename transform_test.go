package termgrid

import (
	"math"
	"testing"
)

func testMetrics() WindowMetrics {
	return WindowMetrics{
		SurfaceWidth:  800,
		SurfaceHeight: 600,
		CellWidth:     10,
		CellHeight:    20,
		Columns:       80,
	}
}

func TestPixelToNDC_Corners(t *testing.T) {
	m := testMetrics()

	tests := []struct {
		name   string
		px, py float32
		nx, ny float32
	}{
		{"top-left", 0, 0, -1, 1},
		{"top-right", 800, 0, 1, 1},
		{"bottom-left", 0, 600, -1, -1},
		{"bottom-right", 800, 600, 1, -1},
		{"center", 400, 300, 0, 0},
	}

	for _, tt := range tests {
		nx, ny := m.PixelToNDC(tt.px, tt.py)
		if nx != tt.nx || ny != tt.ny {
			t.Errorf("%s: PixelToNDC(%v, %v) = (%v, %v), want (%v, %v)",
				tt.name, tt.px, tt.py, nx, ny, tt.nx, tt.ny)
		}
	}
}

func TestPixelToNDC_RoundTrip(t *testing.T) {
	m := testMetrics()

	const eps = 1e-4
	for _, p := range [][2]float32{
		{0, 0}, {1, 1}, {13, 7}, {399.5, 299.5}, {800, 600}, {123.25, 456.75},
	} {
		nx, ny := m.PixelToNDC(p[0], p[1])
		x, y := m.NDCToPixel(nx, ny)
		if math.Abs(float64(x-p[0])) > eps || math.Abs(float64(y-p[1])) > eps {
			t.Errorf("round trip (%v, %v) -> (%v, %v) -> (%v, %v)",
				p[0], p[1], nx, ny, x, y)
		}
	}
}

func TestPixelExtentToNDC_NegatesY(t *testing.T) {
	m := testMetrics()

	nw, nh := m.PixelExtentToNDC(10, 20)
	if nw != 10*2/800.0 {
		t.Errorf("nw = %v, want %v", nw, 10*2/800.0)
	}
	// Pixel extents point down, NDC extents point up, so the sign flips.
	if nh != -(20 * 2 / 600.0) {
		t.Errorf("nh = %v, want %v", nh, -(20 * 2 / 600.0))
	}
}

func TestPixelToNDCX_MatchesFullTransform(t *testing.T) {
	m := testMetrics()

	for _, x := range []float32{0, 10, 400, 795, 800} {
		got := m.PixelToNDCX(x)
		want, _ := m.PixelToNDC(x, 0)
		if got != want {
			t.Errorf("PixelToNDCX(%v) = %v, want %v", x, got, want)
		}
	}
}

func TestPixelWidthToNDC(t *testing.T) {
	m := testMetrics()

	if got := m.PixelWidthToNDC(800); got != 2 {
		t.Errorf("full width = %v, want 2", got)
	}
	if got := m.PixelWidthToNDC(0); got != 0 {
		t.Errorf("zero width = %v, want 0", got)
	}
}

func TestRectToNDC_FlipsHeight(t *testing.T) {
	m := testMetrics()

	r := m.RectToNDC(CellRect{X: 0, Y: 0, W: 800, H: 600})
	if r.X != -1 || r.Y != 1 {
		t.Errorf("origin = (%v, %v), want (-1, 1)", r.X, r.Y)
	}
	if r.W != 2 || r.H != -2 {
		t.Errorf("extent = (%v, %v), want (2, -2)", r.W, r.H)
	}
}
