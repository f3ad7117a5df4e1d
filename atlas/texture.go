package atlas

import "fmt"

// Staging is the CPU-side store for layered atlas texel data: one byte
// page per layer, single-channel coverage, plus per-layer dirty flags so
// the GPU upload only touches layers that changed since the last frame.
// Rasterization itself happens in the external font collaborator; Staging
// only receives finished bitmaps.
type Staging struct {
	dim   int
	pages [][]byte
	dirty []bool
}

// NewStaging creates staging storage for square layers of the given texel
// edge length.
func NewStaging(dim int) *Staging {
	return &Staging{dim: dim}
}

// Dim returns the layer edge length in texels.
func (s *Staging) Dim() int {
	return s.dim
}

// LayerCount returns the number of staged layers.
func (s *Staging) LayerCount() int {
	return len(s.pages)
}

// Page returns the raw texel bytes of one layer, or nil if the layer has
// not been staged.
func (s *Staging) Page(layer int) []byte {
	if layer < 0 || layer >= len(s.pages) {
		return nil
	}
	return s.pages[layer]
}

// grow appends zeroed pages until layer exists.
func (s *Staging) grow(layer int) {
	for len(s.pages) <= layer {
		s.pages = append(s.pages, make([]byte, s.dim*s.dim))
		s.dirty = append(s.dirty, false)
	}
}

// Blit copies a w-by-h bitmap into the given layer at (x, y), row by row,
// and marks the layer dirty. src must hold w*h bytes.
func (s *Staging) Blit(layer, x, y, w, h int, src []byte) error {
	if x < 0 || y < 0 || x+w > s.dim || y+h > s.dim {
		return fmt.Errorf("atlas: blit %dx%d at (%d,%d) outside %d texel layer",
			w, h, x, y, s.dim)
	}
	if len(src) < w*h {
		return fmt.Errorf("atlas: blit source has %d bytes, need %d", len(src), w*h)
	}
	s.grow(layer)

	page := s.pages[layer]
	for row := 0; row < h; row++ {
		begin := (y+row)*s.dim + x
		copy(page[begin:begin+w], src[row*w:(row+1)*w])
	}
	s.dirty[layer] = true
	return nil
}

// TakeDirty returns the indices of layers modified since the previous
// call and clears their dirty flags. The GPU collaborator uploads exactly
// these layers.
func (s *Staging) TakeDirty() []int {
	var out []int
	for i, d := range s.dirty {
		if d {
			out = append(out, i)
			s.dirty[i] = false
		}
	}
	return out
}
