package atlas

import (
	"fmt"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Rasterizer renders runes into cell-sized alpha bitmaps for staging.
// The baseline sits at the face's ascent, so all glyphs of one font
// align across cells; overhang is clipped to the cell.
//
// Not safe for concurrent use: font.Face reuses internal buffers.
type Rasterizer struct {
	face   font.Face
	cellW  int
	cellH  int
	ascent fixed.Int26_6
}

// NewRasterizer parses font data and prepares a face sized to the cell
// height.
func NewRasterizer(fontData []byte, cellW, cellH int) (*Rasterizer, error) {
	if cellW <= 0 || cellH <= 0 {
		return nil, fmt.Errorf("atlas: cell size %dx%d must be positive", cellW, cellH)
	}
	parsed, err := sfnt.Parse(fontData)
	if err != nil {
		return nil, fmt.Errorf("atlas: parse font: %w", err)
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    float64(cellH),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("atlas: create face: %w", err)
	}
	return &Rasterizer{
		face:   face,
		cellW:  cellW,
		cellH:  cellH,
		ascent: face.Metrics().Ascent,
	}, nil
}

// CellSize returns the bitmap dimensions in texels.
func (r *Rasterizer) CellSize() (w, h int) {
	return r.cellW, r.cellH
}

// Rasterize draws ch into a cellW*cellH alpha bitmap, one byte per
// texel, row-major. The result is ready for Staging.Blit.
func (r *Rasterizer) Rasterize(ch rune) []byte {
	mask := image.NewAlpha(image.Rect(0, 0, r.cellW, r.cellH))
	d := &font.Drawer{
		Dst:  mask,
		Src:  image.White,
		Face: r.face,
		Dot:  fixed.Point26_6{X: 0, Y: r.ascent},
	}
	d.DrawString(string(ch))
	return mask.Pix
}

// Close releases the face.
func (r *Rasterizer) Close() error {
	return r.face.Close()
}
