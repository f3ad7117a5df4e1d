package atlas

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func newTestPacker(t *testing.T) *Packer {
	t.Helper()
	cfg := Config{LayerCols: 8, LayerRows: 8, CellWidth: 12, CellHeight: 24, TextureDim: 256}
	index, err := NewIndex(cfg)
	if err != nil {
		t.Fatal(err)
	}
	ras, err := NewRasterizer(goregular.TTF, 12, 24)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { ras.Close() })

	reg := NewRegistry(NewSlotAllocator(64, 4))
	return NewPacker(reg, ras, NewStaging(256), index)
}

func TestRasterizer_CellBitmap(t *testing.T) {
	ras, err := NewRasterizer(goregular.TTF, 12, 24)
	if err != nil {
		t.Fatal(err)
	}
	defer ras.Close()

	bitmap := ras.Rasterize('A')
	if len(bitmap) != 12*24 {
		t.Fatalf("bitmap is %d bytes, want %d", len(bitmap), 12*24)
	}
	covered := 0
	for _, a := range bitmap {
		if a > 0 {
			covered++
		}
	}
	if covered == 0 {
		t.Error("rasterized 'A' has no coverage")
	}

	// Space covers nothing.
	for i, a := range ras.Rasterize(' ') {
		if a != 0 {
			t.Fatalf("space coverage at texel %d", i)
		}
	}
}

func TestPacker_Glyph(t *testing.T) {
	p := newTestPacker(t)

	idA, ok := p.Glyph('A')
	if !ok {
		t.Fatal("packing 'A' failed")
	}
	idB, ok := p.Glyph('B')
	if !ok {
		t.Fatal("packing 'B' failed")
	}
	if idA == idB {
		t.Error("distinct runes share a slot")
	}
	if again, _ := p.Glyph('A'); again != idA {
		t.Errorf("repacking 'A' gave %d, want %d", again, idA)
	}

	// The bitmap landed at the slot's texel origin.
	layer, x, y := p.index.TexelOrigin(idA)
	page := p.Staging().Page(int(layer))
	if page == nil {
		t.Fatal("no staged page for packed glyph")
	}
	covered := false
	for row := 0; row < 24 && !covered; row++ {
		for col := 0; col < 12; col++ {
			if page[(y+row)*256+x+col] > 0 {
				covered = true
				break
			}
		}
	}
	if !covered {
		t.Error("no coverage at slot origin")
	}
}

func TestPacker_PublishUnlocksResolve(t *testing.T) {
	p := newTestPacker(t)

	id, ok := p.Glyph('x')
	if !ok {
		t.Fatal("packing failed")
	}
	if _, err := p.index.Resolve(id, 12, 24); err == nil {
		t.Fatal("Resolve before Publish should overflow")
	}

	p.Publish()
	slot, err := p.index.Resolve(id, 12, 24)
	if err != nil {
		t.Fatal(err)
	}
	if slot.Layer != 0 {
		t.Errorf("slot layer = %d, want 0", slot.Layer)
	}

	if dirty := p.Staging().TakeDirty(); len(dirty) != 1 || dirty[0] != 0 {
		t.Errorf("dirty layers = %v, want [0]", dirty)
	}
}

func TestPacker_ExhaustionFallsBack(t *testing.T) {
	cfg := Config{LayerCols: 8, LayerRows: 8, CellWidth: 12, CellHeight: 24, TextureDim: 256}
	index, err := NewIndex(cfg)
	if err != nil {
		t.Fatal(err)
	}
	ras, err := NewRasterizer(goregular.TTF, 12, 24)
	if err != nil {
		t.Fatal(err)
	}
	defer ras.Close()

	p := NewPacker(NewRegistry(NewSlotAllocator(1, 1)), ras, NewStaging(256), index)
	if _, ok := p.Glyph('a'); !ok {
		t.Fatal("first glyph should pack")
	}
	if _, ok := p.Glyph('b'); ok {
		t.Error("full atlas should report no glyph")
	}
}
