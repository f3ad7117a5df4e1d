package grid

import (
	"testing"

	termgrid "github.com/gogpu/termgrid"
)

func numberedLookup(r rune) (uint32, bool) {
	if r == ' ' {
		return 0, false
	}
	return uint32(r), true
}

func TestRuneCells(t *testing.T) {
	for _, tt := range []struct {
		r    rune
		want uint32
	}{
		{'a', 1},
		{'0', 1},
		{'世', 2},
		{'ｱ', 1},    // halfwidth katakana
		{'Ａ', 2},    // fullwidth latin
		{0x0301, 0}, // combining acute
	} {
		if got := RuneCells(tt.r); got != tt.want {
			t.Errorf("RuneCells(%q) = %d, want %d", tt.r, got, tt.want)
		}
	}
}

func TestPlaceLine_Narrow(t *testing.T) {
	recs := PlaceLine(2, 80, 5, "ab c", termgrid.White, termgrid.Black, numberedLookup)
	if len(recs) != 4 {
		t.Fatalf("got %d records, want 4", len(recs))
	}
	for i, rec := range recs {
		want := uint32(2*80 + 5 + i)
		if rec.Index != want {
			t.Errorf("record %d: index = %d, want %d", i, rec.Index, want)
		}
	}
	if !recs[0].HasGlyph || recs[0].Glyph != 'a' {
		t.Errorf("record 0 = %+v, want glyph 'a'", recs[0])
	}
	if recs[2].HasGlyph {
		t.Error("space cell should carry background only")
	}
}

func TestPlaceLine_WideContinuation(t *testing.T) {
	recs := PlaceLine(0, 80, 0, "a世b", termgrid.White, termgrid.Black, numberedLookup)
	if len(recs) != 4 {
		t.Fatalf("got %d records, want 4", len(recs))
	}

	wide, cont := recs[1], recs[2]
	if !wide.HasGlyph || wide.Glyph != '世' || wide.Index != 1 {
		t.Errorf("wide leading cell = %+v", wide)
	}
	if cont.HasGlyph || cont.Index != 2 {
		t.Errorf("continuation cell = %+v, want glyphless index 2", cont)
	}
	if recs[3].Index != 3 {
		t.Errorf("following rune at index %d, want 3", recs[3].Index)
	}
}

func TestPlaceLine_EdgeClipping(t *testing.T) {
	// Wide rune would straddle the right edge: not placed at all.
	recs := PlaceLine(0, 4, 3, "世", termgrid.White, termgrid.Black, numberedLookup)
	if len(recs) != 0 {
		t.Errorf("straddling wide rune placed %d records, want 0", len(recs))
	}

	// Narrow rune in the last column is fine.
	recs = PlaceLine(0, 4, 3, "x", termgrid.White, termgrid.Black, numberedLookup)
	if len(recs) != 1 || recs[0].Index != 3 {
		t.Errorf("last-column placement = %+v", recs)
	}
}

func TestPlaceLine_ZeroWidthDropped(t *testing.T) {
	recs := PlaceLine(0, 80, 0, "éx", termgrid.White, termgrid.Black, numberedLookup)
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2", len(recs))
	}
	if recs[1].Index != 1 || recs[1].Glyph != 'x' {
		t.Errorf("record after combining mark = %+v, want 'x' at index 1", recs[1])
	}
}
