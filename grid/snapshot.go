// Package grid holds the immutable per-frame description of terminal
// content: which cells are populated, what glyph and colors each carries,
// and the overlay state (cursor, scrollbar, vector decorations) drawn on
// top of the cell grid.
//
// The grid state is produced by the terminal emulation side and consumed
// by the renderer. The two sides never share mutable structures: the
// producer builds a fresh Snapshot, publishes it through a Slot, and the
// renderer reads whichever snapshot was current when its frame began.
package grid

import termgrid "github.com/gogpu/termgrid"

// CellRecord is one populated cell. Index is the linear cell index
// (row*columns + col); the geometry side turns it back into a rectangle,
// so a record is position-complete on its own.
type CellRecord struct {
	Index uint32
	FG    termgrid.RGBA
	BG    termgrid.RGBA

	// Glyph is the dense atlas glyph identifier. Cells without visible
	// glyph content (spaces, wide-cell continuations) leave HasGlyph
	// false and contribute only a background quad.
	Glyph    uint32
	HasGlyph bool

	// GlyphDX and GlyphDY are a sub-cell pixel offset applied to the
	// glyph quad only, never to the background: combining marks and
	// wide-glyph overhang shift the ink, not the cell.
	GlyphDX float32
	GlyphDY float32
}

// Decoration is a pre-tessellated vector overlay anchored to a cell:
// triangle vertices in pixel space relative to the cell origin, painted
// after every grid pass.
type Decoration struct {
	Column   uint32
	Row      uint32
	Vertices [][2]float32
	Color    termgrid.RGBA
}

// Snapshot is one complete frame of terminal content. It is immutable
// after construction; the renderer may read it from any goroutine.
type Snapshot struct {
	Columns uint32
	Rows    uint32

	// Cells lists populated cells in row-major order. Sparse: empty
	// cells are simply absent and render as the surface clear color.
	Cells []CellRecord

	Overlay     OverlayState
	Decorations []Decoration
}

// NewSnapshot builds a snapshot, copying the cell and decoration slices
// so later producer-side mutation cannot leak into a published frame.
func NewSnapshot(columns, rows uint32, cells []CellRecord, overlay OverlayState, decorations []Decoration) *Snapshot {
	s := &Snapshot{
		Columns: columns,
		Rows:    rows,
		Overlay: overlay,
	}
	if len(cells) > 0 {
		s.Cells = make([]CellRecord, len(cells))
		copy(s.Cells, cells)
	}
	if len(decorations) > 0 {
		s.Decorations = make([]Decoration, len(decorations))
		for i, d := range decorations {
			verts := make([][2]float32, len(d.Vertices))
			copy(verts, d.Vertices)
			s.Decorations[i] = Decoration{
				Column:   d.Column,
				Row:      d.Row,
				Vertices: verts,
				Color:    d.Color,
			}
		}
	}
	return s
}
