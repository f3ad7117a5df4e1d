package grid

import termgrid "github.com/gogpu/termgrid"

// OverlayState describes everything painted over the cell grid: the
// cursor and the scrollbar. Both are optional per frame.
type OverlayState struct {
	// CursorVisible gates the cursor pass entirely; blink phase is the
	// renderer's concern, visibility is the producer's.
	CursorVisible bool
	CursorCol     uint32
	CursorRow     uint32
	CursorColor   termgrid.RGBA

	// ScrollVisible gates the scrollbar pass. The track rectangle is in
	// pixel space; the thumb span is expressed as fractions of the
	// scrollback (0 at the top, 1 at the bottom) so the renderer can
	// place it inside the track regardless of surface size.
	ScrollVisible bool
	TrackRect     termgrid.CellRect
	ThumbTop      float32
	ThumbBottom   float32
	ScrollFG      termgrid.RGBA
	ScrollBG      termgrid.RGBA
}
