package termgrid

// RectFor maps a linear row-major cell index to its pixel-space rectangle:
// row = index / Columns, col = index % Columns, origin = (col,row) * cell
// size. An index implying a row beyond the visible row count is a caller
// contract violation and returns *CellIndexError; the grid-state producer
// is expected to emit only visible cells.
func (m WindowMetrics) RectFor(index uint32) (CellRect, error) {
	row := index / m.Columns
	col := index % m.Columns
	if rows := m.Rows(); row >= rows {
		return CellRect{}, &CellIndexError{Index: index, Columns: m.Columns, Rows: rows}
	}
	return CellRect{
		X: float32(col) * m.CellWidth,
		Y: float32(row) * m.CellHeight,
		W: m.CellWidth,
		H: m.CellHeight,
	}, nil
}

// RectForOffset is RectFor with a sub-cell pixel offset added to the
// origin before any further transform. Glyphs narrower or wider than a
// full cell (combining marks, wide CJK overhang) render outside the
// nominal cell box through this offset.
func (m WindowMetrics) RectForOffset(index uint32, dx, dy float32) (CellRect, error) {
	r, err := m.RectFor(index)
	if err != nil {
		return CellRect{}, err
	}
	r.X += dx
	r.Y += dy
	return r, nil
}
