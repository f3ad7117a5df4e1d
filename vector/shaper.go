package vector

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"
)

// ShapedGlyph is one positioned glyph from shaping a decoration string:
// the font glyph index and the pen position in pixels, offsets applied.
type ShapedGlyph struct {
	GID  uint16
	X, Y float32
}

// Shaper shapes decoration strings with HarfBuzz-level positioning, so
// badges get kerning and ligatures instead of naive per-rune advances.
//
// Not safe for concurrent use; one Shaper serves one render loop.
type Shaper struct {
	face   *font.Face
	shaper shaping.HarfbuzzShaper
}

// NewShaper parses TTF/OTF font data. The parsed face is kept as-is; a
// Face is not safe to share, which is why the whole Shaper is
// single-loop.
func NewShaper(data []byte) (*Shaper, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("vector: parse font: %w", err)
	}
	return &Shaper{face: face}, nil
}

// Shape shapes text at the given pixel size and returns the positioned
// glyphs. The run direction follows the paragraph's bidi base direction.
func (s *Shaper) Shape(text string, size float32) []ShapedGlyph {
	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: baseDirection(text),
		Face:      s.face,
		Size:      fixed.Int26_6(size * 64),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}
	output := s.shaper.Shape(input)

	var penX, penY float32
	glyphs := make([]ShapedGlyph, 0, len(output.Glyphs))
	for _, g := range output.Glyphs {
		glyphs = append(glyphs, ShapedGlyph{
			GID: uint16(g.GlyphID),
			X:   penX + float32(g.XOffset)/64,
			Y:   penY - float32(g.YOffset)/64,
		})
		penX += float32(g.XAdvance) / 64
		penY -= float32(g.YAdvance) / 64
	}
	return glyphs
}

// baseDirection resolves the paragraph-level run direction.
func baseDirection(text string) di.Direction {
	var p bidi.Paragraph
	if _, err := p.SetString(text); err != nil {
		return di.DirectionLTR
	}
	if _, err := p.Order(); err != nil {
		return di.DirectionLTR
	}
	if !p.IsLeftToRight() {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		switch r {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// Engraver turns a decoration string into filled triangle geometry by
// shaping it and tessellating each glyph outline at the shaped position.
type Engraver struct {
	shaper    *Shaper
	extractor *Extractor
}

// NewEngraver builds an Engraver over one font's data.
func NewEngraver(data []byte) (*Engraver, error) {
	sh, err := NewShaper(data)
	if err != nil {
		return nil, err
	}
	ex, err := NewExtractor(data)
	if err != nil {
		return nil, err
	}
	return &Engraver{shaper: sh, extractor: ex}, nil
}

// Engrave shapes text at the given pixel size and returns one triangle
// list covering every glyph, positioned along the shaped baseline. The
// baseline sits at y=0 with glyphs extending upward (negative Y), so the
// caller anchors the result by adding the baseline's pixel position.
func (e *Engraver) Engrave(text string, size float32) ([][2]float32, error) {
	var out [][2]float32
	for _, g := range e.shaper.Shape(text, size) {
		path, err := e.extractor.Outline(g.GID, size)
		if err != nil {
			return nil, err
		}
		verts := TessellateFill(path)
		out = append(out, Translate(verts, g.X, g.Y)...)
	}
	return out, nil
}
