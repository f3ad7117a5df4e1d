// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"
	"log"

	"github.com/gogpu/termgrid/grid"
)

// passOrder is the painter's order: later passes draw over earlier ones.
var passOrder = [numPasses]PassKind{
	PassBackground,
	PassGlyph,
	PassCursor,
	PassScrollbar,
	PassVector,
}

// Orchestrator owns one render loop: it loads the current snapshot,
// builds the frame, and submits the passes to the surface in painter's
// order. A frame either presents completely or not at all.
type Orchestrator struct {
	builder *Builder
	surface Surface
	slot    *grid.Slot
	blink   *CursorBlink
}

// NewOrchestrator wires a builder, a surface, and the snapshot slot the
// producer publishes into. blink may be nil, which pins the cursor to
// full visibility.
func NewOrchestrator(builder *Builder, surface Surface, slot *grid.Slot, blink *CursorBlink) *Orchestrator {
	return &Orchestrator{builder: builder, surface: surface, slot: slot, blink: blink}
}

// Builder returns the frame builder, for metric updates on resize.
func (o *Orchestrator) Builder() *Builder {
	return o.builder
}

// RenderFrame renders one frame, advancing animations by dt seconds.
//
// With no published snapshot the frame is a no-op. A surface acquisition
// failure skips the whole frame: the error is returned and nothing was
// submitted. A pass submission failure discards the frame before
// returning.
func (o *Orchestrator) RenderFrame(dt float32) error {
	snap := o.slot.Load()
	if snap == nil {
		return nil
	}

	alpha := float32(1)
	if o.blink != nil {
		alpha = o.blink.Update(dt)
	}

	frame, err := o.builder.BuildFrame(snap, alpha)
	if err != nil {
		return fmt.Errorf("render: build frame: %w", err)
	}

	target, err := o.surface.Acquire()
	if err != nil {
		log.Printf("render: skipping frame: %v", err)
		return fmt.Errorf("render: acquire target: %w", err)
	}

	for _, pass := range passOrder {
		stream := frame.Stream(pass)
		if stream.Count() == 0 {
			continue
		}
		if err := target.Draw(pass, stream.Bytes(), stream.Count()); err != nil {
			target.Discard()
			return fmt.Errorf("render: %s pass: %w", pass, err)
		}
	}
	if err := target.Present(); err != nil {
		return fmt.Errorf("render: present: %w", err)
	}
	return nil
}
