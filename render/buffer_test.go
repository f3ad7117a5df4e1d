// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"testing"

	"github.com/gogpu/termgrid/atlas"

	termgrid "github.com/gogpu/termgrid"
)

func TestInstanceVec_Counts(t *testing.T) {
	v := NewInstanceVec(RectInstanceStride)
	if v.Count() != 0 {
		t.Fatalf("empty Count() = %d", v.Count())
	}

	in := RectInstance{Rect: termgrid.CellRect{X: 1, Y: 2, W: 3, H: 4}, Color: termgrid.White}
	in.AppendTo(v)
	in.AppendTo(v)

	if v.Count() != 2 {
		t.Errorf("Count() = %d, want 2", v.Count())
	}
	if len(v.Bytes()) != 2*RectInstanceStride {
		t.Errorf("Bytes() = %d bytes, want %d", len(v.Bytes()), 2*RectInstanceStride)
	}

	v.Reset()
	if v.Count() != 0 || len(v.Bytes()) != 0 {
		t.Error("Reset did not clear elements")
	}
}

func TestInstanceStrides(t *testing.T) {
	rects := NewInstanceVec(RectInstanceStride)
	RectInstance{}.AppendTo(rects)
	if len(rects.Bytes()) != RectInstanceStride {
		t.Errorf("rect instance encodes to %d bytes, stride says %d",
			len(rects.Bytes()), RectInstanceStride)
	}

	glyphs := NewInstanceVec(GlyphInstanceStride)
	GlyphInstance{Slot: atlas.GlyphSlot{Layer: 3}}.AppendTo(glyphs)
	if len(glyphs.Bytes()) != GlyphInstanceStride {
		t.Errorf("glyph instance encodes to %d bytes, stride says %d",
			len(glyphs.Bytes()), GlyphInstanceStride)
	}

	verts := NewInstanceVec(PathVertexStride)
	PathVertex{}.AppendTo(verts)
	if len(verts.Bytes()) != PathVertexStride {
		t.Errorf("path vertex encodes to %d bytes, stride says %d",
			len(verts.Bytes()), PathVertexStride)
	}
}

func TestInstanceVec_LayerSign(t *testing.T) {
	v := NewInstanceVec(GlyphInstanceStride)
	GlyphInstance{Slot: atlas.GlyphSlot{Layer: -1}}.AppendTo(v)

	data := v.Bytes()
	for i := 48; i < 52; i++ {
		if data[i] != 0xFF {
			t.Fatalf("negative layer bytes = % x, want all FF", data[48:52])
		}
	}
}
