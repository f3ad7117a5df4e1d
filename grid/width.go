package grid

import (
	"github.com/mattn/go-runewidth"

	termgrid "github.com/gogpu/termgrid"
)

// RuneCells returns the number of grid cells a rune occupies: 2 for East
// Asian wide and fullwidth runes, 0 for zero-width runes (combining
// marks, controls), 1 otherwise.
func RuneCells(r rune) uint32 {
	return uint32(runewidth.RuneWidth(r))
}

// GlyphLookup maps a rune to its dense atlas glyph identifier. A false
// return means the rune has no visible glyph (spaces and the like) and
// the cell carries background only.
type GlyphLookup func(r rune) (uint32, bool)

// PlaceLine lays a string onto one grid row starting at startCol and
// returns the resulting cell records. A wide rune produces two records:
// the leading cell carries the glyph, the continuation cell carries only
// the background so the glyph quad is emitted exactly once. Zero-width
// runes are dropped. Placement stops at the right edge; a wide rune that
// would straddle it is not placed.
func PlaceLine(row, columns, startCol uint32, text string, fg, bg termgrid.RGBA, lookup GlyphLookup) []CellRecord {
	var out []CellRecord
	col := startCol
	for _, r := range text {
		w := RuneCells(r)
		if w == 0 {
			continue
		}
		if col+w > columns {
			break
		}
		rec := CellRecord{Index: row*columns + col, FG: fg, BG: bg}
		if lookup != nil {
			if id, ok := lookup(r); ok {
				rec.Glyph = id
				rec.HasGlyph = true
			}
		}
		out = append(out, rec)
		for extra := uint32(1); extra < w; extra++ {
			out = append(out, CellRecord{Index: row*columns + col + extra, FG: fg, BG: bg})
		}
		col += w
	}
	return out
}
