// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"
	"log"

	"github.com/gogpu/termgrid/atlas"
	"github.com/gogpu/termgrid/grid"

	termgrid "github.com/gogpu/termgrid"
)

// Frame is the complete instance output of one built frame: one stream
// per pass, byte-packed and upload-ready. The streams alias the
// Builder's staging storage and are valid until the next BuildFrame.
type Frame struct {
	streams [numPasses]*InstanceVec
}

// Stream returns the instance stream of one pass.
func (f *Frame) Stream(pass PassKind) *InstanceVec {
	return f.streams[pass]
}

// Builder walks a grid snapshot and emits the per-pass instance streams.
// It is single-threaded: one Builder serves one render loop, and the
// staging storage is reused across frames.
type Builder struct {
	metrics termgrid.WindowMetrics
	index   *atlas.Index
	frame   Frame
}

// NewBuilder creates a Builder for the given window metrics and atlas
// index.
func NewBuilder(metrics termgrid.WindowMetrics, index *atlas.Index) (*Builder, error) {
	if err := metrics.Validate(); err != nil {
		return nil, err
	}
	b := &Builder{metrics: metrics, index: index}
	b.frame.streams = [numPasses]*InstanceVec{
		PassBackground: NewInstanceVec(RectInstanceStride),
		PassGlyph:      NewInstanceVec(GlyphInstanceStride),
		PassCursor:     NewInstanceVec(RectInstanceStride),
		PassScrollbar:  NewInstanceVec(RectInstanceStride),
		PassVector:     NewInstanceVec(PathVertexStride),
	}
	return b, nil
}

// SetMetrics installs new window metrics, typically after a resize.
// Call between frames only.
func (b *Builder) SetMetrics(metrics termgrid.WindowMetrics) error {
	if err := metrics.Validate(); err != nil {
		return err
	}
	b.metrics = metrics
	return nil
}

// Metrics returns the current window metrics.
func (b *Builder) Metrics() termgrid.WindowMetrics {
	return b.metrics
}

// BuildFrame rebuilds every instance stream from the snapshot.
// cursorAlpha scales the cursor color's alpha, normally fed from
// CursorBlink.
//
// A cell index outside the grid is a producer contract violation and
// fails the whole build with *termgrid.CellIndexError. A glyph that
// addresses an unallocated atlas layer is instance-local: the quad is
// dropped with a log line and the build continues.
//
// Building the same snapshot twice yields identical streams.
func (b *Builder) BuildFrame(snap *grid.Snapshot, cursorAlpha float32) (*Frame, error) {
	for _, v := range b.frame.streams {
		v.Reset()
	}
	if snap == nil {
		return &b.frame, nil
	}

	if err := b.buildCells(snap); err != nil {
		return nil, err
	}
	if err := b.buildCursor(snap, cursorAlpha); err != nil {
		return nil, err
	}
	b.buildScrollbar(snap)
	if err := b.buildDecorations(snap); err != nil {
		return nil, err
	}
	return &b.frame, nil
}

func (b *Builder) buildCells(snap *grid.Snapshot) error {
	bg := b.frame.streams[PassBackground]
	gl := b.frame.streams[PassGlyph]

	for _, cell := range snap.Cells {
		rect, err := b.metrics.RectFor(cell.Index)
		if err != nil {
			return err
		}
		ndc := b.metrics.RectToNDC(rect)

		RectInstance{Rect: ndc, Color: cell.BG}.AppendTo(bg)

		if !cell.HasGlyph {
			continue
		}
		slot, err := b.index.Resolve(cell.Glyph, b.metrics.CellWidth, b.metrics.CellHeight)
		if err != nil {
			var overflow *atlas.OverflowError
			if errors.As(err, &overflow) {
				log.Printf("render: dropping glyph instance: %v", overflow)
				continue
			}
			return fmt.Errorf("render: cell %d: %w", cell.Index, err)
		}

		// The glyph quad carries the cell's sub-pixel ink offset; the
		// background quad above stays on the grid.
		glyphRect, err := b.metrics.RectForOffset(cell.Index, cell.GlyphDX, cell.GlyphDY)
		if err != nil {
			return err
		}
		GlyphInstance{
			Rect:  b.metrics.RectToNDC(glyphRect),
			Slot:  slot,
			Color: cell.FG,
		}.AppendTo(gl)
	}
	return nil
}

func (b *Builder) buildCursor(snap *grid.Snapshot, alpha float32) error {
	ov := snap.Overlay
	if !ov.CursorVisible {
		return nil
	}
	rect, err := b.metrics.RectFor(ov.CursorRow*b.metrics.Columns + ov.CursorCol)
	if err != nil {
		return err
	}
	RectInstance{
		Rect:  b.metrics.RectToNDC(rect),
		Color: ov.CursorColor.WithAlpha(ov.CursorColor.A * alpha),
	}.AppendTo(b.frame.streams[PassCursor])
	return nil
}

func (b *Builder) buildScrollbar(snap *grid.Snapshot) {
	ov := snap.Overlay
	if !ov.ScrollVisible {
		return
	}
	sb := b.frame.streams[PassScrollbar]

	// The scrollbar positions in X independently of Y: the X axis goes
	// through the single-axis conversions, the Y axis through the shared
	// position/extent pair.
	track := ov.TrackRect
	x := b.metrics.PixelToNDCX(track.X)
	w := b.metrics.PixelWidthToNDC(track.W)
	_, y := b.metrics.PixelToNDC(track.X, track.Y)
	_, h := b.metrics.PixelExtentToNDC(track.W, track.H)
	RectInstance{Rect: termgrid.CellRect{X: x, Y: y, W: w, H: h}, Color: ov.ScrollBG}.AppendTo(sb)

	// Thumb fractions select a vertical span inside the track, converted
	// from the same pixel space.
	_, ty := b.metrics.PixelToNDC(track.X, track.Y+ov.ThumbTop*track.H)
	_, th := b.metrics.PixelExtentToNDC(track.W, (ov.ThumbBottom-ov.ThumbTop)*track.H)
	RectInstance{Rect: termgrid.CellRect{X: x, Y: ty, W: w, H: th}, Color: ov.ScrollFG}.AppendTo(sb)
}

func (b *Builder) buildDecorations(snap *grid.Snapshot) error {
	vec := b.frame.streams[PassVector]
	for _, d := range snap.Decorations {
		rect, err := b.metrics.RectFor(d.Row*b.metrics.Columns + d.Column)
		if err != nil {
			return err
		}
		for _, v := range d.Vertices {
			nx, ny := b.metrics.PixelToNDC(rect.X+v[0], rect.Y+v[1])
			PathVertex{X: nx, Y: ny, Color: d.Color}.AppendTo(vec)
		}
	}
	return nil
}
