package vector

import "math"

// defaultFlatness is the maximum distance error in pixels allowed when
// flattening curves.
const defaultFlatness = 0.25

// TessellateFill flattens the path's curves and fan-triangulates each
// subpath. The result is a triangle list: every three vertices form one
// triangle, in the same pixel space as the input path. Subpaths with
// fewer than three points produce nothing.
func TessellateFill(path Path) [][2]float32 {
	var out [][2]float32
	flush := func(points [][2]float32) {
		for i := 1; i+1 < len(points); i++ {
			out = append(out, points[0], points[i], points[i+1])
		}
	}

	var points [][2]float32
	var current [2]float32
	for _, elem := range path {
		switch elem.Op {
		case OpMoveTo:
			flush(points)
			points = points[:0]
			current = elem.Args[0]
			points = append(points, current)
		case OpLineTo:
			current = elem.Args[0]
			points = append(points, current)
		case OpQuadTo:
			seg := flattenQuadratic(current, elem.Args[0], elem.Args[1], defaultFlatness)
			points = append(points, seg[1:]...)
			current = elem.Args[1]
		case OpCubeTo:
			seg := flattenCubic(current, elem.Args[0], elem.Args[1], elem.Args[2], defaultFlatness)
			points = append(points, seg[1:]...)
			current = elem.Args[2]
		}
	}
	flush(points)
	return out
}

// Translate shifts every vertex by (dx, dy) in place and returns verts.
func Translate(verts [][2]float32, dx, dy float32) [][2]float32 {
	for i := range verts {
		verts[i][0] += dx
		verts[i][1] += dy
	}
	return verts
}

// Bar returns the two triangles of an axis-aligned bar, used for
// underline and strikethrough decorations.
func Bar(x, y, w, h float32) [][2]float32 {
	return [][2]float32{
		{x, y}, {x + w, y}, {x, y + h},
		{x + w, y}, {x + w, y + h}, {x, y + h},
	}
}

// Underline returns the bar for an underline across one cell: width
// cellW at the given baseline offset from the cell top.
func Underline(cellW, offsetY, thickness float32) [][2]float32 {
	return Bar(0, offsetY, cellW, thickness)
}

// Strikethrough returns the bar crossing the cell at mid height.
func Strikethrough(cellW, cellH, thickness float32) [][2]float32 {
	return Bar(0, (cellH-thickness)/2, cellW, thickness)
}

func flattenQuadratic(p0, p1, p2 [2]float32, flatness float32) [][2]float32 {
	if pointToLineDistance(p1, p0, p2) <= flatness {
		return [][2]float32{p0, p2}
	}
	q0 := midpoint(p0, p1)
	q1 := midpoint(p1, p2)
	r := midpoint(q0, q1)
	left := flattenQuadratic(p0, q0, r, flatness)
	right := flattenQuadratic(r, q1, p2, flatness)
	return append(left[:len(left)-1], right...)
}

func flattenCubic(p0, p1, p2, p3 [2]float32, flatness float32) [][2]float32 {
	d1 := pointToLineDistance(p1, p0, p3)
	d2 := pointToLineDistance(p2, p0, p3)
	if d1 <= flatness && d2 <= flatness {
		return [][2]float32{p0, p3}
	}
	q0 := midpoint(p0, p1)
	q1 := midpoint(p1, p2)
	q2 := midpoint(p2, p3)
	r0 := midpoint(q0, q1)
	r1 := midpoint(q1, q2)
	s := midpoint(r0, r1)
	left := flattenCubic(p0, q0, r0, s, flatness)
	right := flattenCubic(s, r1, q2, p3, flatness)
	return append(left[:len(left)-1], right...)
}

// pointToLineDistance is the perpendicular distance from p to line a-b.
func pointToLineDistance(p, a, b [2]float32) float32 {
	dx := b[0] - a[0]
	dy := b[1] - a[1]
	lenSq := dx*dx + dy*dy
	if lenSq < 1e-10 {
		pdx := p[0] - a[0]
		pdy := p[1] - a[1]
		return float32(math.Sqrt(float64(pdx*pdx + pdy*pdy)))
	}
	cross := dx*(p[1]-a[1]) - dy*(p[0]-a[0])
	return float32(math.Abs(float64(cross)) / math.Sqrt(float64(lenSq)))
}

func midpoint(a, b [2]float32) [2]float32 {
	return [2]float32{(a[0] + b[0]) * 0.5, (a[1] + b[1]) * 0.5}
}
