// Package atlas addresses glyphs inside a layered texture atlas.
//
// The atlas is an array texture: each layer holds a rectangular grid of
// fixed-size glyph cells. Glyph identifiers are dense and monotonically
// assigned by the packing collaborator, so a glyph's location follows from
// pure arithmetic: layer = id / cellsPerLayer, then row and column from
// the remainder. Addressing is O(1) with no lookup table; the cost is that
// the packer must keep the grid fully rectangular (no partial rows).
//
// The Index only addresses layers, it never allocates them. The layer
// count is reported by the packing collaborator and updated between
// frames; within a frame it is read-only shared state, which is what
// makes concurrent resolves safe.
package atlas

import "fmt"

// Config describes the atlas layer grid.
type Config struct {
	// LayerCols and LayerRows are the glyph cell counts per layer in
	// each axis.
	LayerCols uint32
	LayerRows uint32

	// CellWidth and CellHeight are the glyph cell size in texels.
	CellWidth  float32
	CellHeight float32

	// TextureDim is the square atlas edge length in texels, used to
	// normalize texel coordinates into [0,1] sampling space.
	TextureDim float32
}

// ConfigError reports an invalid atlas configuration field.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "atlas: invalid config " + e.Field + ": " + e.Reason
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.LayerCols == 0 {
		return &ConfigError{Field: "LayerCols", Reason: "must be positive"}
	}
	if c.LayerRows == 0 {
		return &ConfigError{Field: "LayerRows", Reason: "must be positive"}
	}
	if c.CellWidth <= 0 {
		return &ConfigError{Field: "CellWidth", Reason: "must be positive"}
	}
	if c.CellHeight <= 0 {
		return &ConfigError{Field: "CellHeight", Reason: "must be positive"}
	}
	if c.TextureDim <= 0 {
		return &ConfigError{Field: "TextureDim", Reason: "must be positive"}
	}
	return nil
}

// GlyphSlot is the resolved atlas location of one glyph: the array layer
// and the normalized texel rectangle to sample.
type GlyphSlot struct {
	Layer int32

	// U, V is the normalized texel origin; W, H the normalized extent.
	// All four are in [0,1].
	U, V float32
	W, H float32
}

// OverflowError reports a glyph identifier that addresses a layer the
// packing collaborator has not allocated. It signals a contract violation
// on the packer side, not a recoverable condition: the core never
// substitutes a fallback glyph.
type OverflowError struct {
	GlyphID uint32
	Layer   uint32
	Layers  uint32
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("atlas: glyph %d addresses layer %d of %d",
		e.GlyphID, e.Layer, e.Layers)
}

// Index projects dense glyph identifiers onto atlas locations.
//
// Resolve never mutates atlas layout, so an Index is safe for concurrent
// resolves within a frame. SetLayerCount must only be called between
// frames, when no resolves are in flight.
type Index struct {
	cfg    Config
	layers uint32
}

// NewIndex creates an Index for the given layer grid. The layer count
// starts at zero; the packing collaborator reports it via SetLayerCount.
func NewIndex(cfg Config) (*Index, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Index{cfg: cfg}, nil
}

// SetLayerCount records the number of layers the packing collaborator has
// allocated. Call between frames only.
func (ix *Index) SetLayerCount(n uint32) {
	ix.layers = n
}

// LayerCount returns the currently reported layer count.
func (ix *Index) LayerCount() uint32 {
	return ix.layers
}

// CellsPerLayer returns the glyph cell capacity of one layer.
func (ix *Index) CellsPerLayer() uint32 {
	return ix.cfg.LayerCols * ix.cfg.LayerRows
}

// TexelOrigin returns the layer and texel origin of a glyph slot. Unlike
// Resolve it ignores the published layer count: the packing side places
// bitmaps before the layer becomes visible to the renderer.
func (ix *Index) TexelOrigin(glyphID uint32) (layer uint32, x, y int) {
	perLayer := ix.CellsPerLayer()
	layer = glyphID / perLayer
	local := glyphID % perLayer
	row := local / ix.cfg.LayerCols
	col := local % ix.cfg.LayerCols
	return layer, int(float32(col) * ix.cfg.CellWidth), int(float32(row) * ix.cfg.CellHeight)
}

// Resolve maps a glyph identifier and its requested texel extent to the
// atlas layer and normalized texel rectangle to sample.
//
// The decomposition is fixed by the dense assignment contract:
//
//	layer = id / cellsPerLayer
//	local = id % cellsPerLayer
//	row   = local / layerCols
//	col   = local % layerCols
//
// Returns *OverflowError when the computed layer is not allocated.
func (ix *Index) Resolve(glyphID uint32, extentW, extentH float32) (GlyphSlot, error) {
	perLayer := ix.CellsPerLayer()
	layer := glyphID / perLayer
	if layer >= ix.layers {
		return GlyphSlot{}, &OverflowError{GlyphID: glyphID, Layer: layer, Layers: ix.layers}
	}

	local := glyphID % perLayer
	row := local / ix.cfg.LayerCols
	col := local % ix.cfg.LayerCols

	dim := ix.cfg.TextureDim
	return GlyphSlot{
		Layer: int32(layer),
		U:     float32(col) * ix.cfg.CellWidth / dim,
		V:     float32(row) * ix.cfg.CellHeight / dim,
		W:     extentW / dim,
		H:     extentH / dim,
	}, nil
}
