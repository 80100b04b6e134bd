package drawlib

// FitBezierToPoints converts a polyline into a smooth path of cubic curves
// that passes through every point (a uniform Catmull-Rom spline expressed
// as Bezier segments). Endpoint tangents are taken from the neighbouring
// segment. Two points yield a straight line; fewer yield an empty or
// MoveTo-only path.
func FitBezierToPoints(line Contour) []PathCommand {
	pts := make(Contour, 0, len(line))
	for _, p := range line {
		if n := len(pts); n > 0 && pts[n-1].Distance(p) <= CoincidentEpsilon {
			continue
		}
		pts = append(pts, p)
	}

	n := len(pts)
	if n == 0 {
		return nil
	}
	out := make([]PathCommand, 0, n)
	out = append(out, MoveTo{Point: pts[0]})
	switch n {
	case 1:
		return out
	case 2:
		return append(out, LineTo{Point: pts[1]})
	}

	for i := 0; i < n-1; i++ {
		p0 := pts[max(i-1, 0)]
		p1 := pts[i]
		p2 := pts[i+1]
		p3 := pts[min(i+2, n-1)]

		out = append(out, CurveTo{
			Control1: p1.Add(p2.Sub(p0).Mul(1.0 / 6)),
			Control2: p2.Sub(p3.Sub(p1).Mul(1.0 / 6)),
			Point:    p2,
		})
	}
	return out
}
