package text

import (
	"math"

	"github.com/gogpu/drawlib"
)

// OutlinePoint is a point in a glyph outline, in pixels relative to the
// glyph origin on the baseline. Y increases downwards.
type OutlinePoint struct {
	X, Y float64
}

// OutlineSegment represents a segment of a glyph outline.
type OutlineSegment struct {
	// Op is the segment operation type.
	Op OutlineOp

	// Points contains the control and end points for this segment.
	// - MoveTo: Points[0] is the target point
	// - LineTo: Points[0] is the target point
	// - QuadTo: Points[0] is control, Points[1] is target
	// - CubicTo: Points[0], Points[1] are controls, Points[2] is target
	Points [3]OutlinePoint
}

// OutlineOp is the type of path operation.
type OutlineOp uint8

const (
	// OutlineOpMoveTo moves to a new point without drawing.
	OutlineOpMoveTo OutlineOp = iota

	// OutlineOpLineTo draws a line to the target point.
	OutlineOpLineTo

	// OutlineOpQuadTo draws a quadratic bezier curve.
	OutlineOpQuadTo

	// OutlineOpCubicTo draws a cubic bezier curve.
	OutlineOpCubicTo
)

// String returns a string representation of the operation.
func (op OutlineOp) String() string {
	switch op {
	case OutlineOpMoveTo:
		return "MoveTo"
	case OutlineOpLineTo:
		return "LineTo"
	case OutlineOpQuadTo:
		return "QuadTo"
	case OutlineOpCubicTo:
		return "CubicTo"
	default:
		return "Unknown"
	}
}

// GlyphOutline represents the vector outline of a glyph.
// The outline consists of zero or more closed contours.
type GlyphOutline struct {
	// GID is the glyph ID this outline represents.
	GID GlyphID

	// Segments is the list of path segments that make up the outline.
	Segments []OutlineSegment

	// Advance is the horizontal advance width of the glyph.
	Advance float64
}

// IsEmpty returns true if the outline has no segments.
func (o *GlyphOutline) IsEmpty() bool {
	return o == nil || len(o.Segments) == 0
}

// Bounds returns the bounding box of all outline points, control points
// included, in pixels relative to the glyph origin with y down.
func (o *GlyphOutline) Bounds() drawlib.Rect {
	if o.IsEmpty() {
		return drawlib.Rect{}
	}
	r := drawlib.Rect{
		Min: drawlib.Pt(math.Inf(1), math.Inf(1)),
		Max: drawlib.Pt(math.Inf(-1), math.Inf(-1)),
	}
	for _, seg := range o.Segments {
		for _, p := range seg.Points[:seg.pointCount()] {
			r.Min.X = math.Min(r.Min.X, p.X)
			r.Min.Y = math.Min(r.Min.Y, p.Y)
			r.Max.X = math.Max(r.Max.X, p.X)
			r.Max.Y = math.Max(r.Max.Y, p.Y)
		}
	}
	return r
}

// Translate returns a copy of the outline moved by (dx, dy).
func (o *GlyphOutline) Translate(dx, dy float64) *GlyphOutline {
	if o == nil {
		return nil
	}
	out := &GlyphOutline{
		GID:      o.GID,
		Segments: make([]OutlineSegment, len(o.Segments)),
		Advance:  o.Advance,
	}
	for i, seg := range o.Segments {
		for j := 0; j < seg.pointCount(); j++ {
			seg.Points[j].X += dx
			seg.Points[j].Y += dy
		}
		out.Segments[i] = seg
	}
	return out
}

// Contours splits the outline into closed contours expressed as drawlib
// path commands. Quadratic segments are raised to cubics.
func (o *GlyphOutline) Contours() [][]drawlib.PathCommand {
	if o.IsEmpty() {
		return nil
	}

	var (
		out     [][]drawlib.PathCommand
		cur     []drawlib.PathCommand
		current drawlib.Point
	)
	flush := func() {
		if len(cur) > 1 {
			out = append(out, cur)
		}
		cur = nil
	}

	for _, seg := range o.Segments {
		switch seg.Op {
		case OutlineOpMoveTo:
			flush()
			current = seg.Points[0].point()
			cur = append(cur, drawlib.MoveTo{Point: current})
		case OutlineOpLineTo:
			current = seg.Points[0].point()
			cur = append(cur, drawlib.LineTo{Point: current})
		case OutlineOpQuadTo:
			ctrl, end := seg.Points[0].point(), seg.Points[1].point()
			cur = append(cur, drawlib.CurveTo{
				Control1: current.Add(ctrl.Sub(current).Mul(2.0 / 3)),
				Control2: end.Add(ctrl.Sub(end).Mul(2.0 / 3)),
				Point:    end,
			})
			current = end
		case OutlineOpCubicTo:
			current = seg.Points[2].point()
			cur = append(cur, drawlib.CurveTo{
				Control1: seg.Points[0].point(),
				Control2: seg.Points[1].point(),
				Point:    current,
			})
		}
	}
	flush()
	return out
}

// pointCount returns the number of meaningful entries in Points.
func (s OutlineSegment) pointCount() int {
	switch s.Op {
	case OutlineOpQuadTo:
		return 2
	case OutlineOpCubicTo:
		return 3
	default:
		return 1
	}
}

func (p OutlinePoint) point() drawlib.Point {
	return drawlib.Pt(p.X, p.Y)
}
