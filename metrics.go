package termgrid

import "fmt"

// WindowMetrics describes the coordinate environment for one frame: the
// output surface, the cell grid laid over it, and the glyph atlas layer
// grid. It is recomputed when the surface resizes or font metrics change,
// owned by the renderer, and read-only to every other component during a
// frame. All geometry functions take it explicitly; there is no ambient
// metrics state.
type WindowMetrics struct {
	// SurfaceWidth and SurfaceHeight are the output surface size in pixels.
	SurfaceWidth  float32
	SurfaceHeight float32

	// CellWidth and CellHeight are the cell size in pixels.
	CellWidth  float32
	CellHeight float32

	// Columns is the number of grid columns.
	Columns uint32

	// AtlasCols and AtlasRows are the glyph cell counts per atlas layer
	// in each axis.
	AtlasCols uint32
	AtlasRows uint32

	// AtlasTextureDim is the square atlas edge length in texels.
	AtlasTextureDim float32
}

// MetricsError reports an invalid WindowMetrics field.
type MetricsError struct {
	Field  string
	Reason string
}

func (e *MetricsError) Error() string {
	return "termgrid: invalid metrics " + e.Field + ": " + e.Reason
}

// Validate checks the metrics invariants: a positive cell size and at
// least one column.
func (m WindowMetrics) Validate() error {
	if m.Columns == 0 {
		return &MetricsError{Field: "Columns", Reason: "must be positive"}
	}
	if m.CellWidth <= 0 {
		return &MetricsError{Field: "CellWidth", Reason: "must be positive"}
	}
	if m.CellHeight <= 0 {
		return &MetricsError{Field: "CellHeight", Reason: "must be positive"}
	}
	return nil
}

// Rows returns the number of fully or partially visible grid rows for the
// current surface and cell height.
func (m WindowMetrics) Rows() uint32 {
	if m.CellHeight <= 0 {
		return 0
	}
	rows := m.SurfaceHeight / m.CellHeight
	whole := uint32(rows)
	if float32(whole)*m.CellHeight < m.SurfaceHeight {
		whole++
	}
	return whole
}

// CellIndexError reports a linear cell index outside the visible grid.
// It signals a caller contract violation: the grid-state producer emitted
// a cell the declared grid cannot contain. It is surfaced immediately
// rather than clamped so the upstream bug is visible.
type CellIndexError struct {
	Index   uint32
	Columns uint32
	Rows    uint32
}

func (e *CellIndexError) Error() string {
	return fmt.Sprintf("termgrid: cell index %d outside %dx%d grid",
		e.Index, e.Columns, e.Rows)
}
