package drawlib

import (
	"sort"
)

// ArcLengthTable holds the cumulative distance along a contour: entry i is
// the length of the polyline from the first point to point i. Entry 0 is 0
// and the last entry is the total length.
type ArcLengthTable []float64

// BuildArcLengths computes the arc-length table of a contour.
func BuildArcLengths(c Contour) ArcLengthTable {
	if len(c) == 0 {
		return nil
	}
	table := make(ArcLengthTable, len(c))
	for i := 1; i < len(c); i++ {
		table[i] = table[i-1] + c[i-1].Distance(c[i])
	}
	return table
}

// Total returns the total length, or 0 for an empty table.
func (t ArcLengthTable) Total() float64 {
	if len(t) == 0 {
		return 0
	}
	return t[len(t)-1]
}

// Locate finds the segment (i, i+1) whose arc-length interval contains s
// and the fraction of the way along that segment. s is clamped to the
// table's range. The table must have at least two entries.
func (t ArcLengthTable) Locate(s float64) (i int, frac float64) {
	n := len(t)
	if s <= 0 {
		s = 0
	}
	if total := t[n-1]; s >= total {
		s = total
	}

	// First entry >= s; the segment ends there.
	j := sort.SearchFloat64s(t, s)
	i = j - 1
	if i < 0 {
		i = 0
	}
	if i > n-2 {
		i = n - 2
	}

	span := t[i+1] - t[i]
	if span <= 0 {
		return i, 0
	}
	frac = (s - t[i]) / span
	if frac > 1 {
		frac = 1
	}
	return i, frac
}

// Frame is the local coordinate frame at a point on a path.
type Frame struct {
	// Point is the position on the path.
	Point Point
	// Tangent is the unit direction of travel.
	Tangent Point
	// Normal is the unit vector pointing to the top of text laid on the path.
	Normal Point
}

// horizontalFrame is the frame used when no direction can be derived.
func horizontalFrame(p Point) Frame {
	tangent := Pt(1, 0)
	return Frame{Point: p, Tangent: tangent, Normal: tangent.Perp()}
}

// frameAt interpolates the position at arc length s and derives the frame
// from the bracketing segment. ok is false when that segment has zero
// length; Point is still valid in that case.
func frameAt(c Contour, t ArcLengthTable, s float64) (f Frame, ok bool) {
	i, frac := t.Locate(s)
	a, b := c[i], c[i+1]
	f.Point = a.Lerp(b, frac)

	d := b.Sub(a)
	if d.Length() <= CoincidentEpsilon {
		return f, false
	}
	f.Tangent = d.Normalize()
	f.Normal = f.Tangent.Perp()
	return f, true
}

// PathFrame returns the frame at arc length s along a flattened path.
// When the segment at s is degenerate the nearest non-degenerate segment
// supplies the direction; a path with no direction at all yields the
// horizontal axis. Renderers use this to warp glyph outlines along the path.
func PathFrame(c Contour, t ArcLengthTable, s float64) Frame {
	if len(c) < 2 || len(t) != len(c) {
		if len(c) == 0 {
			return horizontalFrame(Point{})
		}
		return horizontalFrame(c[0])
	}

	f, ok := frameAt(c, t, s)
	if ok {
		return f
	}

	i, _ := t.Locate(s)
	for d := 1; d < len(c); d++ {
		for _, j := range [2]int{i + d, i - d} {
			if j < 0 || j+1 >= len(c) {
				continue
			}
			dir := c[j+1].Sub(c[j])
			if dir.Length() > CoincidentEpsilon {
				f.Tangent = dir.Normalize()
				f.Normal = f.Tangent.Perp()
				return f
			}
		}
	}
	return horizontalFrame(f.Point)
}

// Offset returns the point reached by walking along (along the tangent)
// and up (along the normal) from the frame origin.
func (f Frame) Offset(along, up float64) Point {
	return f.Point.Add(f.Tangent.Mul(along)).Add(f.Normal.Mul(up))
}
