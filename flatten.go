package drawlib

import (
	"math"
)

const (
	// DefaultTolerance is the maximum distance between a curve and its
	// flattened polyline used when Flatten is given a non-positive tolerance.
	DefaultTolerance = 0.1

	// MaxFlattenDepth caps the recursive subdivision of a single curve.
	MaxFlattenDepth = 16

	// CoincidentEpsilon is the distance below which two consecutive
	// flattened points are treated as the same point.
	CoincidentEpsilon = 1e-9
)

// Flatten converts a command stream into a polyline and its cumulative
// arc-length table.
//
// Curves are subdivided until both control points lie within tolerance of
// the chord, which bounds the distance between the curve and the polyline
// by tolerance. Consecutive duplicate points are collapsed, so every
// segment of the result has a non-zero length.
//
// Only the first subpath is flattened: a MoveTo that follows a drawing
// command ends the walk. Ignored subpaths are logged at warn level; use
// CountSubpaths to detect them up front.
//
// Flatten returns ErrEmptyPath if fewer than two distinct points result,
// and a *MalformedCommandError if a command carries a non-finite value.
func Flatten(cmds []PathCommand, tolerance float64) (Contour, ArcLengthTable, error) {
	if err := Validate(cmds); err != nil {
		return nil, nil, err
	}
	if !(tolerance > 0) || math.IsInf(tolerance, 1) {
		tolerance = DefaultTolerance
	}

	f := flattener{
		tolerance: tolerance,
		contour:   make(Contour, 0, len(cmds)+1),
		lengths:   make(ArcLengthTable, 0, len(cmds)+1),
	}

	ignored := 0
walk:
	for i, cmd := range cmds {
		switch c := cmd.(type) {
		case MoveTo:
			if f.drawing {
				ignored = CountSubpaths(cmds[i:])
				break walk
			}
			f.start = c.Point
			f.current = c.Point

		case LineTo:
			f.lineTo(c.Point)

		case RelLineTo:
			f.lineTo(f.current.Add(c.Offset))

		case CurveTo:
			f.curveTo(c.Control1, c.Control2, c.Point)

		case RelCurveTo:
			base := f.current
			f.curveTo(base.Add(c.Control1), base.Add(c.Control2), base.Add(c.Point))
		}
	}

	if ignored > 0 {
		Logger().Warn("drawlib: flattening first subpath only", "ignored_subpaths", ignored)
	}
	if len(f.contour) < 2 {
		return nil, nil, ErrEmptyPath
	}

	Logger().Debug("drawlib: flattened path",
		"commands", len(cmds),
		"points", len(f.contour),
		"length", f.lengths.Total(),
		"tolerance", tolerance)

	return f.contour, f.lengths, nil
}

// flattener holds the transient state of one Flatten call.
type flattener struct {
	tolerance float64
	contour   Contour
	lengths   ArcLengthTable
	start     Point // Starting point of the subpath
	current   Point // Current point
	drawing   bool
}

// begin emits the subpath start before the first drawing command.
func (f *flattener) begin() {
	if !f.drawing {
		f.drawing = true
		f.emit(f.start)
	}
}

func (f *flattener) lineTo(p Point) {
	f.begin()
	f.emit(p)
	f.current = p
}

func (f *flattener) curveTo(c1, c2, p Point) {
	f.begin()
	f.cubic(f.current, c1, c2, p, 0)
	f.current = p
}

// emit appends p unless it coincides with the previous point, extending
// the arc-length table in the same step.
func (f *flattener) emit(p Point) {
	n := len(f.contour)
	if n == 0 {
		f.contour = append(f.contour, p)
		f.lengths = append(f.lengths, 0)
		return
	}
	d := f.contour[n-1].Distance(p)
	if d <= CoincidentEpsilon {
		return
	}
	f.contour = append(f.contour, p)
	f.lengths = append(f.lengths, f.lengths[n-1]+d)
}

// cubic recursively subdivides a cubic Bezier curve with de Casteljau's
// algorithm. The start point p0 has already been emitted.
func (f *flattener) cubic(p0, p1, p2, p3 Point, depth int) {
	flatness := math.Max(distanceToSegment(p1, p0, p3), distanceToSegment(p2, p0, p3))
	if flatness <= f.tolerance || depth >= MaxFlattenDepth {
		f.emit(p3)
		return
	}

	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := p2.Lerp(p3, 0.5)
	r0 := q0.Lerp(q1, 0.5)
	r1 := q1.Lerp(q2, 0.5)
	s := r0.Lerp(r1, 0.5)

	f.cubic(p0, q0, r0, s, depth+1)
	f.cubic(s, r1, q2, p3, depth+1)
}

// distanceToSegment returns the distance from p to the segment (a, b).
func distanceToSegment(p, a, b Point) float64 {
	ab := b.Sub(a)
	abLenSq := ab.Dot(ab)
	if abLenSq < 1e-20 {
		return p.Distance(a)
	}

	t := p.Sub(a).Dot(ab) / abLenSq
	switch {
	case t <= 0:
		return p.Distance(a)
	case t >= 1:
		return p.Distance(b)
	default:
		return p.Distance(a.Add(ab.Mul(t)))
	}
}

// CubicPoint evaluates the cubic Bezier curve (p0, p1, p2, p3) at t.
func CubicPoint(p0, p1, p2, p3 Point, t float64) Point {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	c := 3 * mt * t * t
	d := t * t * t
	return Point{
		X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
	}
}
