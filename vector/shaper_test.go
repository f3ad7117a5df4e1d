package vector

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestShaper_Shape(t *testing.T) {
	s, err := NewShaper(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}

	glyphs := s.Shape("AV", 16)
	if len(glyphs) != 2 {
		t.Fatalf("got %d glyphs, want 2", len(glyphs))
	}
	if glyphs[0].GID == 0 || glyphs[1].GID == 0 {
		t.Error("shaped glyphs include .notdef")
	}
	if glyphs[0].X != 0 {
		t.Errorf("first glyph at x = %v, want 0", glyphs[0].X)
	}
	if glyphs[1].X <= glyphs[0].X {
		t.Errorf("pen did not advance: %v then %v", glyphs[0].X, glyphs[1].X)
	}
}

func TestShaper_FaceReuse(t *testing.T) {
	// One parsed face serves every Shape call; repeated runs over the
	// same input must produce identical glyph streams.
	s, err := NewShaper(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}

	first := s.Shape("kerned text", 14)
	second := s.Shape("kerned text", 14)
	if len(first) == 0 {
		t.Fatal("no glyphs shaped")
	}
	if len(first) != len(second) {
		t.Fatalf("got %d then %d glyphs", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("glyph %d differs: %+v then %+v", i, first[i], second[i])
		}
	}
}

func TestShaper_ShapeEmpty(t *testing.T) {
	s, err := NewShaper(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	if glyphs := s.Shape("", 16); glyphs != nil {
		t.Errorf("empty string shaped to %v", glyphs)
	}
}

func TestExtractor_Outline(t *testing.T) {
	s, err := NewShaper(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	e, err := NewExtractor(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}

	glyphs := s.Shape("o", 24)
	if len(glyphs) != 1 {
		t.Fatalf("got %d glyphs, want 1", len(glyphs))
	}
	path, err := e.Outline(glyphs[0].GID, 24)
	if err != nil {
		t.Fatal(err)
	}
	if len(path) == 0 {
		t.Fatal("outline is empty")
	}
	if path[0].Op != OpMoveTo {
		t.Errorf("outline starts with %d, want MoveTo", path[0].Op)
	}

	// Outline coordinates sit near the 24px em box, above the baseline.
	for _, elem := range path {
		p := elem.Args[0]
		if p[0] < -24 || p[0] > 48 || p[1] < -30 || p[1] > 10 {
			t.Errorf("outline point %v far outside em box", p)
		}
	}
}

func TestEngraver_Engrave(t *testing.T) {
	e, err := NewEngraver(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}

	verts, err := e.Engrave("ok", 16)
	if err != nil {
		t.Fatal(err)
	}
	if len(verts) == 0 {
		t.Fatal("no geometry produced")
	}
	if len(verts)%3 != 0 {
		t.Errorf("vertex count %d is not a triangle list", len(verts))
	}

	// Both glyphs contribute: some vertex lies past the first advance.
	var maxX float32
	for _, v := range verts {
		if v[0] > maxX {
			maxX = v[0]
		}
	}
	if maxX < 8 {
		t.Errorf("max x = %v, want geometry past the first glyph", maxX)
	}
}
