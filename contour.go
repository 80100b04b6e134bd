package drawlib

import "math"

// Contour is an ordered sequence of points forming a polyline.
// The order defines the direction of travel along the line.
type Contour []Point

// Contours is a list of independent polylines.
type Contours []Contour

// Clone returns a copy of the contour that shares no memory with c.
func (c Contour) Clone() Contour {
	if c == nil {
		return nil
	}
	out := make(Contour, len(c))
	copy(out, c)
	return out
}

// Translate returns a copy of the contour moved by (tx, ty).
func (c Contour) Translate(tx, ty float64) Contour {
	out := make(Contour, len(c))
	for i, p := range c {
		out[i] = Point{X: p.X + tx, Y: p.Y + ty}
	}
	return out
}

// Bounds returns the axis-aligned bounding box of the contour.
// The zero Rect is returned for an empty contour.
func (c Contour) Bounds() Rect {
	if len(c) == 0 {
		return Rect{}
	}
	r := Rect{Min: c[0], Max: c[0]}
	for _, p := range c[1:] {
		r = r.Expand(p)
	}
	return r
}

// SignedArea returns the shoelace area of the contour closed back to its
// first point. It is positive for clockwise travel in y-down coordinates.
func (c Contour) SignedArea() float64 {
	if len(c) < 3 {
		return 0
	}
	var sum float64
	prev := c[len(c)-1]
	for _, p := range c {
		sum += prev.X*p.Y - p.X*prev.Y
		prev = p
	}
	return sum / 2
}

// Reversed returns a copy of the contour with the point order inverted.
func (c Contour) Reversed() Contour {
	if c == nil {
		return nil
	}
	out := make(Contour, len(c))
	for i, p := range c {
		out[len(c)-1-i] = p
	}
	return out
}

// Clone returns a deep copy of the contours.
func (cs Contours) Clone() Contours {
	if cs == nil {
		return nil
	}
	out := make(Contours, len(cs))
	for i, c := range cs {
		out[i] = c.Clone()
	}
	return out
}

// Polygon is a filled shape: an outer boundary plus zero or more holes.
// Holes are subtracted regardless of their winding.
type Polygon struct {
	Outer Contour
	Holes Contours
}

// Clone returns a deep copy of the polygon.
func (p Polygon) Clone() Polygon {
	return Polygon{Outer: p.Outer.Clone(), Holes: p.Holes.Clone()}
}

// Bounds returns the bounding box of the outer contour.
func (p Polygon) Bounds() Rect {
	return p.Outer.Bounds()
}

// Triangle is three corner points.
type Triangle [3]Point

// Contains reports whether p lies inside or on the edge of the triangle.
func (t Triangle) Contains(p Point) bool {
	d1 := t[1].Sub(t[0]).Cross(p.Sub(t[0]))
	d2 := t[2].Sub(t[1]).Cross(p.Sub(t[1]))
	d3 := t[0].Sub(t[2]).Cross(p.Sub(t[2]))
	const eps = 1e-9
	hasNeg := d1 < -eps || d2 < -eps || d3 < -eps
	hasPos := d1 > eps || d2 > eps || d3 > eps
	return !(hasNeg && hasPos)
}

// Area returns the unsigned area of the triangle.
func (t Triangle) Area() float64 {
	return math.Abs(t[1].Sub(t[0]).Cross(t[2].Sub(t[0]))) / 2
}

// TwistedTriangles is the triangle soup that bounds a rendered label.
// Each placed glyph contributes two consecutive triangles.
type TwistedTriangles []Triangle

// Contains reports whether p lies inside any of the triangles.
// This is the hit test used for label picking.
func (ts TwistedTriangles) Contains(p Point) bool {
	for _, t := range ts {
		if t.Contains(p) {
			return true
		}
	}
	return false
}

// Bounds returns the bounding box of all triangle corners.
func (ts TwistedTriangles) Bounds() Rect {
	if len(ts) == 0 {
		return Rect{}
	}
	r := Rect{Min: ts[0][0], Max: ts[0][0]}
	for _, t := range ts {
		for _, p := range t {
			r = r.Expand(p)
		}
	}
	return r
}

// Quad is the bounding quadrilateral of one glyph:
// leading-bottom, leading-top, trailing-bottom, trailing-top.
type Quad [4]Point

// Corner indices into a Quad.
const (
	LeadingBottom = iota
	LeadingTop
	TrailingBottom
	TrailingTop
)

// Triangles splits the quad into two triangles with a consistent winding:
// (leading-bottom, leading-top, trailing-bottom) and
// (trailing-top, trailing-bottom, leading-top).
func (q Quad) Triangles() [2]Triangle {
	return [2]Triangle{
		{q[LeadingBottom], q[LeadingTop], q[TrailingBottom]},
		{q[TrailingTop], q[TrailingBottom], q[LeadingTop]},
	}
}
