// Package vector produces the triangle geometry for vector decorations:
// underline and strikethrough bars, and text badges built by shaping a
// string and tessellating the resulting glyph outlines. Output vertices
// are in pixel space relative to the anchor cell's origin; the frame
// builder converts them to NDC.
package vector

import (
	"fmt"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// PathOp is one outline path operation.
type PathOp uint8

const (
	OpMoveTo PathOp = iota
	OpLineTo
	OpQuadTo
	OpCubeTo
)

// PathElem is one path element. Args usage follows the operation:
// MoveTo and LineTo use Args[0]; QuadTo uses Args[0] as control and
// Args[1] as target; CubeTo uses Args[0] and Args[1] as controls and
// Args[2] as target.
type PathElem struct {
	Op   PathOp
	Args [3][2]float32
}

// Path is a glyph outline as float pixel coordinates, Y down.
type Path []PathElem

// Extractor pulls scaled glyph outlines out of a parsed font.
//
// Not safe for concurrent use: the sfnt buffer is reused across calls.
type Extractor struct {
	font *sfnt.Font
	buf  sfnt.Buffer
}

// NewExtractor parses TTF/OTF font data.
func NewExtractor(data []byte) (*Extractor, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("vector: parse font: %w", err)
	}
	return &Extractor{font: f}, nil
}

// Outline loads the glyph's outline scaled to the given pixels-per-em.
// Coordinates come back in pixel units with Y growing downward, matching
// the rest of the pixel-space pipeline.
func (e *Extractor) Outline(gid uint16, ppem float32) (Path, error) {
	segments, err := e.font.LoadGlyph(&e.buf, sfnt.GlyphIndex(gid), fixed.Int26_6(ppem*64), nil)
	if err != nil {
		return nil, fmt.Errorf("vector: load glyph %d: %w", gid, err)
	}

	path := make(Path, 0, len(segments))
	for _, seg := range segments {
		var elem PathElem
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			elem.Op = OpMoveTo
		case sfnt.SegmentOpLineTo:
			elem.Op = OpLineTo
		case sfnt.SegmentOpQuadTo:
			elem.Op = OpQuadTo
		case sfnt.SegmentOpCubeTo:
			elem.Op = OpCubeTo
		default:
			continue
		}
		for i, p := range seg.Args {
			elem.Args[i] = [2]float32{
				float32(p.X) / 64,
				float32(p.Y) / 64,
			}
		}
		path = append(path, elem)
	}
	return path, nil
}
