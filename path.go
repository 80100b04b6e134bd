package drawlib

import "math"

// Path builds a path command stream.
// The zero value is not usable; create paths with NewPath.
type Path struct {
	commands []PathCommand
	start    Point // Starting point of current subpath
	current  Point // Current point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		commands: make([]PathCommand, 0, 16),
	}
}

// PathFromCommands creates a path holding a copy of cmds.
func PathFromCommands(cmds []PathCommand) *Path {
	p := NewPath()
	for _, cmd := range cmds {
		p.Append(cmd)
	}
	return p
}

// Append adds a command and updates the current point.
func (p *Path) Append(cmd PathCommand) {
	switch c := cmd.(type) {
	case MoveTo:
		p.start = c.Point
		p.current = c.Point
	case LineTo:
		p.current = c.Point
	case RelLineTo:
		p.current = p.current.Add(c.Offset)
	case CurveTo:
		p.current = c.Point
	case RelCurveTo:
		p.current = p.current.Add(c.Point)
	default:
		return
	}
	p.commands = append(p.commands, cmd)
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	p.Append(MoveTo{Point: Pt(x, y)})
}

// LineTo draws a line to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.Append(LineTo{Point: Pt(x, y)})
}

// RelLineTo draws a line to the current point plus (dx, dy).
func (p *Path) RelLineTo(dx, dy float64) {
	p.Append(RelLineTo{Offset: Pt(dx, dy)})
}

// CurveTo draws a cubic Bezier curve.
func (p *Path) CurveTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.Append(CurveTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    Pt(x, y),
	})
}

// RelCurveTo draws a cubic Bezier curve with points relative to the
// current point.
func (p *Path) RelCurveTo(dc1x, dc1y, dc2x, dc2y, dx, dy float64) {
	p.Append(RelCurveTo{
		Control1: Pt(dc1x, dc1y),
		Control2: Pt(dc2x, dc2y),
		Point:    Pt(dx, dy),
	})
}

// Arc adds a circular arc around (cx, cy) from angle1 to angle2 (radians),
// approximated with cubic curves of at most 90 degrees each. If the path is
// empty the arc starts with a MoveTo, otherwise with a line to its start.
func (p *Path) Arc(cx, cy, r, angle1, angle2 float64) {
	const twoPi = 2 * math.Pi
	for angle2 < angle1 {
		angle2 += twoPi
	}

	x1 := cx + r*math.Cos(angle1)
	y1 := cy + r*math.Sin(angle1)
	if len(p.commands) == 0 {
		p.MoveTo(x1, y1)
	} else {
		p.LineTo(x1, y1)
	}

	const maxAngle = math.Pi / 2
	numSegments := int(math.Ceil((angle2 - angle1) / maxAngle))
	if numSegments == 0 {
		return
	}
	angleStep := (angle2 - angle1) / float64(numSegments)

	for i := 0; i < numSegments; i++ {
		a1 := angle1 + float64(i)*angleStep
		p.arcSegment(cx, cy, r, a1, a1+angleStep)
	}
}

// arcSegment adds a single arc segment of at most 90 degrees.
func (p *Path) arcSegment(cx, cy, r, a1, a2 float64) {
	alpha := 4.0 / 3 * math.Tan((a2-a1)/4)

	sin1, cos1 := math.Sincos(a1)
	sin2, cos2 := math.Sincos(a2)

	x1 := cx + r*cos1
	y1 := cy + r*sin1
	x2 := cx + r*cos2
	y2 := cy + r*sin2

	p.CurveTo(
		x1-alpha*r*sin1, y1+alpha*r*cos1,
		x2+alpha*r*sin2, y2-alpha*r*cos2,
		x2, y2,
	)
}

// Commands returns the recorded commands.
// The slice is owned by the path; use Clone before mutating the path further
// if the result must stay stable.
func (p *Path) Commands() []PathCommand {
	return p.commands
}

// Len returns the number of commands in the path.
func (p *Path) Len() int {
	return len(p.commands)
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// Clear removes all commands from the path.
func (p *Path) Clear() {
	p.commands = p.commands[:0]
	p.start = Point{}
	p.current = Point{}
}

// Translate returns a new path moved by (tx, ty).
func (p *Path) Translate(tx, ty float64) *Path {
	return PathFromCommands(TranslateCommands(p.commands, tx, ty))
}

// Clone creates a copy of the path.
func (p *Path) Clone() *Path {
	result := &Path{
		commands: make([]PathCommand, len(p.commands)),
		start:    p.start,
		current:  p.current,
	}
	copy(result.commands, p.commands)
	return result
}
