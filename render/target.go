// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "errors"

// PassKind identifies one of the fixed render passes. The numeric order
// is the painter's order the orchestrator submits in.
type PassKind int

const (
	PassBackground PassKind = iota
	PassGlyph
	PassCursor
	PassScrollbar
	PassVector

	numPasses
)

// String returns the pass name used in logs.
func (k PassKind) String() string {
	switch k {
	case PassBackground:
		return "background"
	case PassGlyph:
		return "glyph"
	case PassCursor:
		return "cursor"
	case PassScrollbar:
		return "scrollbar"
	case PassVector:
		return "vector"
	}
	return "unknown"
}

// ErrSurfaceAcquisition is wrapped by surface implementations when the
// presentable target cannot be obtained (outdated swapchain, device
// loss). It is frame-fatal: the orchestrator skips the whole frame and
// submits nothing.
var ErrSurfaceAcquisition = errors.New("render: surface acquisition failed")

// Surface produces one presentable target per frame.
type Surface interface {
	// Acquire obtains the target for the next frame. Errors wrapping
	// ErrSurfaceAcquisition mean the frame must be skipped entirely.
	Acquire() (FrameTarget, error)
}

// FrameTarget receives the instance streams of one frame. Draw is called
// once per non-empty pass in PassKind order; then exactly one of Present
// or Discard ends the frame.
type FrameTarget interface {
	// Draw submits count instances of the given pass, encoded in that
	// pass's byte layout.
	Draw(pass PassKind, data []byte, count int) error

	// Present commits every drawn pass to the surface.
	Present() error

	// Discard abandons the frame without presenting.
	Discard()
}
