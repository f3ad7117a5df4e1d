package termgrid

// Coordinate transforms between pixel space and normalized device space.
//
// Pixel space has its origin at the top-left of the surface with Y growing
// downward. NDC spans [-1,1] per axis with Y growing upward, so positions
// flip Y around the surface center while extents only negate. None of
// these functions round: boundary pixel inclusion is the rasterizer's
// decision, not this layer's.

// PixelToNDC converts a pixel-space position to NDC.
func (m WindowMetrics) PixelToNDC(x, y float32) (nx, ny float32) {
	nx = x*2/m.SurfaceWidth - 1
	ny = 1 - y*2/m.SurfaceHeight
	return nx, ny
}

// NDCToPixel is the exact inverse of PixelToNDC for the same metrics.
func (m WindowMetrics) NDCToPixel(nx, ny float32) (x, y float32) {
	x = (nx + 1) * m.SurfaceWidth / 2
	y = (1 - ny) * m.SurfaceHeight / 2
	return x, y
}

// PixelExtentToNDC converts a pixel-space extent to NDC. Extents scale by
// 2/surface per axis and negate Y: an extent has no absolute position, so
// the downward-to-upward flip cannot re-origin it, only change its sign.
func (m WindowMetrics) PixelExtentToNDC(w, h float32) (nw, nh float32) {
	nw = w * 2 / m.SurfaceWidth
	nh = -h * 2 / m.SurfaceHeight
	return nw, nh
}

// PixelToNDCX converts a pixel X position to NDC. Single-axis variant for
// the scrollbar, which positions in X independently of Y.
func (m WindowMetrics) PixelToNDCX(x float32) float32 {
	return x*2/m.SurfaceWidth - 1
}

// PixelWidthToNDC converts a pixel width to an NDC width.
func (m WindowMetrics) PixelWidthToNDC(w float32) float32 {
	return w * 2 / m.SurfaceWidth
}

// RectToNDC converts a pixel-space rect to NDC. The result keeps the
// top-left origin and carries a negative height (see CellRect).
func (m WindowMetrics) RectToNDC(r CellRect) CellRect {
	nx, ny := m.PixelToNDC(r.X, r.Y)
	nw, nh := m.PixelExtentToNDC(r.W, r.H)
	return CellRect{X: nx, Y: ny, W: nw, H: nh}
}
