package termgrid

// CellRect is an axis-aligned rectangle in a stated coordinate space
// (pixel or NDC). W or H may be negative to encode a flipped axis: pixel
// rects converted to NDC keep their top-left origin and carry a negative
// height, because pixel rows grow downward while NDC grows upward.
// CellRects are ephemeral, computed per cell per frame.
type CellRect struct {
	X, Y float32
	W, H float32
}

// Corner returns the rectangle corner selected by a 2-bit index. The
// convention is fixed and shared by every instanced quad in the system:
//
//	0 = origin
//	1 = origin + (W, 0)
//	2 = origin + (0, H)
//	3 = origin + (W, H)
//
// The corner index comes from the draw call's per-vertex counter, not
// from the instance buffer. The expansion is sign-agnostic: negative
// extents produce the mirrored corners without any special casing, which
// is what keeps flipped-axis rects seam-free.
func (r CellRect) Corner(corner int) (x, y float32) {
	x = r.X
	y = r.Y
	if corner&1 != 0 {
		x += r.W
	}
	if corner&2 != 0 {
		y += r.H
	}
	return x, y
}
