// Package termgrid computes screen-space geometry for GPU terminal grid
// rendering.
//
// A terminal frame is a rectangular grid of fixed-size cells. Every frame
// the renderer turns abstract per-cell state (colors, glyph identifiers)
// and overlay state (cursor, scrollbar) into instance buffers that a GPU
// backend consumes with instanced draws. This package holds the geometry
// core shared by every pass:
//
//   - WindowMetrics: the per-frame coordinate environment (surface size,
//     cell size, column count, atlas layer grid).
//   - Coordinate transforms between pixel space (origin top-left, Y down)
//     and normalized device space ([-1,1] per axis, Y up).
//   - Cell layout: linear row-major cell index to pixel rectangle.
//   - Quad expansion: rectangle plus corner index to vertex position, the
//     one corner convention shared by every quad-producing pass.
//
// All functions here are pure and allocation-free; WindowMetrics is passed
// explicitly into every computation rather than held as ambient state.
// Subpackages build on this core: atlas addresses glyphs inside a layered
// texture atlas, grid models the frame-scoped cell snapshot, render packs
// instance buffers and sequences draw passes, vector tessellates glyph
// outlines for decoration geometry, and backend/wgpu supplies a GPU
// implementation of the render boundary interfaces.
package termgrid
