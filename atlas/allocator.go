package atlas

import "errors"

// Allocator errors.
var (
	// ErrSlotsExhausted is returned when every glyph slot across the
	// maximum layer count is taken.
	ErrSlotsExhausted = errors.New("atlas: glyph slots exhausted")

	// ErrRegionTooLarge is returned when a requested region cannot fit
	// inside one layer even when empty.
	ErrRegionTooLarge = errors.New("atlas: region larger than a layer")
)

// SlotAllocator hands out dense, monotonically increasing glyph slot
// identifiers. The identifiers are what makes Index.Resolve pure
// arithmetic: slot N always lands in layer N/cellsPerLayer at a fixed
// grid position, so the allocator's only policy is "next integer".
type SlotAllocator struct {
	perLayer  uint32
	maxLayers uint32
	next      uint32
}

// NewSlotAllocator creates an allocator for the given per-layer capacity
// and maximum layer count.
func NewSlotAllocator(cellsPerLayer, maxLayers uint32) *SlotAllocator {
	return &SlotAllocator{perLayer: cellsPerLayer, maxLayers: maxLayers}
}

// Alloc returns the next free slot identifier.
func (a *SlotAllocator) Alloc() (uint32, error) {
	if a.next >= a.perLayer*a.maxLayers {
		return 0, ErrSlotsExhausted
	}
	id := a.next
	a.next++
	return id, nil
}

// Allocated returns the number of slots handed out so far.
func (a *SlotAllocator) Allocated() uint32 {
	return a.next
}

// LayersInUse returns the number of layers touched by allocated slots.
// This is the value the renderer feeds into Index.SetLayerCount.
func (a *SlotAllocator) LayersInUse() uint32 {
	if a.next == 0 {
		return 0
	}
	return (a.next-1)/a.perLayer + 1
}

// Allocation is a pixel-rect placement inside the layered atlas.
type Allocation struct {
	X, Y  int
	Layer uint32
}

// shelf is one horizontal strip of a layer. Items fill a shelf left to
// right; a new shelf opens below when the current ones cannot fit.
type shelf struct {
	y      int
	height int
	x      int
}

// layerPacker packs rectangles into one layer using shelf packing: simple,
// fast, and well suited to glyph bitmaps of near-uniform height.
type layerPacker struct {
	width   int
	height  int
	padding int
	shelves []shelf
}

func (p *layerPacker) allocate(w, h int) (x, y int, ok bool) {
	paddedW := w + p.padding
	paddedH := h + p.padding

	for i := range p.shelves {
		s := &p.shelves[i]
		if s.x+paddedW > p.width {
			continue
		}
		if h > s.height {
			// Taller than the shelf: extend only the last shelf, and
			// only when there is room below it.
			if i == len(p.shelves)-1 && s.y+paddedH <= p.height {
				s.height = h
				x, y = s.x, s.y
				s.x += paddedW
				return x, y, true
			}
			continue
		}
		x, y = s.x, s.y
		s.x += paddedW
		return x, y, true
	}

	// Open a new shelf below the last one.
	bottom := 0
	if n := len(p.shelves); n > 0 {
		last := p.shelves[n-1]
		bottom = last.y + last.height + p.padding
	}
	if bottom+paddedH > p.height || paddedW > p.width {
		return -1, -1, false
	}
	p.shelves = append(p.shelves, shelf{y: bottom, height: h, x: paddedW})
	return 0, bottom, true
}

// ArrayAllocator packs variable-size pixel regions into the layers of an
// array texture, appending a fresh layer whenever the existing ones are
// full. It backs packing collaborators that store glyph bitmaps tighter
// than the fixed slot grid (e.g. proportional overlays); the fixed-grid
// path uses SlotAllocator instead.
type ArrayAllocator struct {
	width   int
	height  int
	padding int
	layers  []*layerPacker
}

// NewArrayAllocator creates an allocator for layers of the given texel
// dimensions. It starts with a single empty layer.
func NewArrayAllocator(width, height, padding int) *ArrayAllocator {
	a := &ArrayAllocator{width: width, height: height, padding: padding}
	a.layers = append(a.layers, &layerPacker{width: width, height: height, padding: padding})
	return a
}

// LayerCount returns the number of layers in use.
func (a *ArrayAllocator) LayerCount() uint32 {
	return uint32(len(a.layers))
}

// Alloc places a w-by-h texel region, trying each existing layer in order
// and appending a new layer when none fits.
func (a *ArrayAllocator) Alloc(w, h int) (Allocation, error) {
	if w+a.padding > a.width || h+a.padding > a.height {
		return Allocation{}, ErrRegionTooLarge
	}

	for i, layer := range a.layers {
		if x, y, ok := layer.allocate(w, h); ok {
			return Allocation{X: x, Y: y, Layer: uint32(i)}, nil
		}
	}

	fresh := &layerPacker{width: a.width, height: a.height, padding: a.padding}
	x, y, ok := fresh.allocate(w, h)
	if !ok {
		return Allocation{}, ErrRegionTooLarge
	}
	a.layers = append(a.layers, fresh)
	return Allocation{X: x, Y: y, Layer: uint32(len(a.layers) - 1)}, nil
}
