package vector

import (
	"math"
	"testing"
)

func TestTessellateFill_Triangle(t *testing.T) {
	path := Path{
		{Op: OpMoveTo, Args: [3][2]float32{{0, 0}}},
		{Op: OpLineTo, Args: [3][2]float32{{10, 0}}},
		{Op: OpLineTo, Args: [3][2]float32{{0, 10}}},
	}
	verts := TessellateFill(path)
	if len(verts) != 3 {
		t.Fatalf("got %d vertices, want 3", len(verts))
	}
	want := [][2]float32{{0, 0}, {10, 0}, {0, 10}}
	for i, v := range verts {
		if v != want[i] {
			t.Errorf("vertex %d = %v, want %v", i, v, want[i])
		}
	}
}

func TestTessellateFill_QuadFan(t *testing.T) {
	path := Path{
		{Op: OpMoveTo, Args: [3][2]float32{{0, 0}}},
		{Op: OpLineTo, Args: [3][2]float32{{10, 0}}},
		{Op: OpLineTo, Args: [3][2]float32{{10, 10}}},
		{Op: OpLineTo, Args: [3][2]float32{{0, 10}}},
	}
	verts := TessellateFill(path)
	// Four points fan into two triangles.
	if len(verts) != 6 {
		t.Fatalf("got %d vertices, want 6", len(verts))
	}
	// Every triangle pivots on the first point.
	if verts[0] != verts[3] {
		t.Errorf("fan pivot differs: %v vs %v", verts[0], verts[3])
	}
}

func TestTessellateFill_CurveFlattening(t *testing.T) {
	// A strongly bent quadratic must subdivide into more than one segment.
	path := Path{
		{Op: OpMoveTo, Args: [3][2]float32{{0, 0}}},
		{Op: OpQuadTo, Args: [3][2]float32{{50, 100}, {100, 0}}},
		{Op: OpLineTo, Args: [3][2]float32{{50, -10}}},
	}
	verts := TessellateFill(path)
	if len(verts) < 9 {
		t.Errorf("bent curve produced %d vertices, want at least 9", len(verts))
	}

	// Flattened points stay close to the true curve's bounding box.
	for _, v := range verts {
		if v[0] < -1 || v[0] > 101 || v[1] < -11 || v[1] > 51 {
			t.Errorf("vertex %v outside curve bounds", v)
		}
	}
}

func TestTessellateFill_MultipleSubpaths(t *testing.T) {
	path := Path{
		{Op: OpMoveTo, Args: [3][2]float32{{0, 0}}},
		{Op: OpLineTo, Args: [3][2]float32{{4, 0}}},
		{Op: OpLineTo, Args: [3][2]float32{{0, 4}}},
		{Op: OpMoveTo, Args: [3][2]float32{{10, 10}}},
		{Op: OpLineTo, Args: [3][2]float32{{14, 10}}},
		{Op: OpLineTo, Args: [3][2]float32{{10, 14}}},
	}
	verts := TessellateFill(path)
	if len(verts) != 6 {
		t.Fatalf("got %d vertices, want 6 (one triangle per subpath)", len(verts))
	}
	// No triangle spans both subpaths.
	if verts[2] != [2]float32{0, 4} || verts[3] != [2]float32{10, 10} {
		t.Errorf("subpath boundary crossed: %v", verts)
	}
}

func TestTessellateFill_DegenerateSubpath(t *testing.T) {
	path := Path{
		{Op: OpMoveTo, Args: [3][2]float32{{0, 0}}},
		{Op: OpLineTo, Args: [3][2]float32{{5, 5}}},
	}
	if verts := TessellateFill(path); len(verts) != 0 {
		t.Errorf("two-point subpath produced %d vertices", len(verts))
	}
	if verts := TessellateFill(nil); len(verts) != 0 {
		t.Errorf("empty path produced %d vertices", len(verts))
	}
}

func TestBar(t *testing.T) {
	verts := Bar(2, 3, 10, 4)
	if len(verts) != 6 {
		t.Fatalf("got %d vertices, want 6", len(verts))
	}
	minX, minY := float32(math.Inf(1)), float32(math.Inf(1))
	maxX, maxY := float32(math.Inf(-1)), float32(math.Inf(-1))
	for _, v := range verts {
		minX = min(minX, v[0])
		minY = min(minY, v[1])
		maxX = max(maxX, v[0])
		maxY = max(maxY, v[1])
	}
	if minX != 2 || minY != 3 || maxX != 12 || maxY != 7 {
		t.Errorf("bar bounds (%v,%v)-(%v,%v), want (2,3)-(12,7)", minX, minY, maxX, maxY)
	}
}

func TestStrikethrough_Centered(t *testing.T) {
	verts := Strikethrough(10, 20, 2)
	for _, v := range verts {
		if v[1] != 9 && v[1] != 11 {
			t.Errorf("strikethrough y = %v, want 9 or 11", v[1])
		}
	}
}

func TestTranslate(t *testing.T) {
	verts := Translate([][2]float32{{1, 2}, {3, 4}}, 10, -1)
	if verts[0] != [2]float32{11, 1} || verts[1] != [2]float32{13, 3} {
		t.Errorf("translated = %v", verts)
	}
}
