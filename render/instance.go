// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/termgrid/atlas"

	termgrid "github.com/gogpu/termgrid"
)

// Byte strides of the packed instance layouts. They match the vertex
// buffer layouts the backend declares; all fields are little-endian
// 32-bit scalars.
const (
	// RectInstanceStride is rect x,y,w,h plus color r,g,b,a.
	RectInstanceStride = 32

	// GlyphInstanceStride is rect, uv rect, color, plus the atlas layer
	// as a signed 32-bit integer.
	GlyphInstanceStride = 52

	// PathVertexStride is position x,y plus color r,g,b,a.
	PathVertexStride = 24
)

// RectInstance is one solid quad: backgrounds, the cursor, and the
// scrollbar all use this layout. Rect is in NDC; the vertex shader
// expands it from the corner index, so negative extents render the same
// region as their positive mirror.
type RectInstance struct {
	Rect  termgrid.CellRect
	Color termgrid.RGBA
}

// AppendTo packs the instance onto v.
func (in RectInstance) AppendTo(v *InstanceVec) {
	v.putF32(in.Rect.X)
	v.putF32(in.Rect.Y)
	v.putF32(in.Rect.W)
	v.putF32(in.Rect.H)
	v.putColor(in.Color)
}

// GlyphInstance is one textured quad sampling a layered atlas slot.
type GlyphInstance struct {
	Rect  termgrid.CellRect
	Slot  atlas.GlyphSlot
	Color termgrid.RGBA
}

// AppendTo packs the instance onto v.
func (in GlyphInstance) AppendTo(v *InstanceVec) {
	v.putF32(in.Rect.X)
	v.putF32(in.Rect.Y)
	v.putF32(in.Rect.W)
	v.putF32(in.Rect.H)
	v.putF32(in.Slot.U)
	v.putF32(in.Slot.V)
	v.putF32(in.Slot.W)
	v.putF32(in.Slot.H)
	v.putColor(in.Color)
	v.putI32(in.Slot.Layer)
}

// PathVertex is one triangle-list vertex of a vector decoration, already
// in NDC.
type PathVertex struct {
	X, Y  float32
	Color termgrid.RGBA
}

// AppendTo packs the vertex onto v.
func (pv PathVertex) AppendTo(v *InstanceVec) {
	v.putF32(pv.X)
	v.putF32(pv.Y)
	v.putColor(pv.Color)
}
