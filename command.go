package drawlib

import (
	"math"
)

// CommandKind is the tag of a path command.
type CommandKind uint8

const (
	// KindMoveTo starts a new subpath at an absolute point.
	KindMoveTo CommandKind = iota
	// KindLineTo draws a straight line to an absolute point.
	KindLineTo
	// KindRelLineTo draws a straight line by an offset from the current point.
	KindRelLineTo
	// KindCurveTo draws a cubic Bezier curve with absolute control and end points.
	KindCurveTo
	// KindRelCurveTo draws a cubic Bezier curve whose points are offsets
	// from the current point.
	KindRelCurveTo
)

var commandKindNames = [...]string{
	KindMoveTo:     "MoveTo",
	KindLineTo:     "LineTo",
	KindRelLineTo:  "RelLineTo",
	KindCurveTo:    "CurveTo",
	KindRelCurveTo: "RelCurveTo",
}

// String returns the string representation of a CommandKind.
func (k CommandKind) String() string {
	if int(k) < len(commandKindNames) {
		return commandKindNames[k]
	}
	return "Unknown"
}

// Arity returns the fixed number of numeric arguments for the kind,
// or 0 for an unknown kind.
func (k CommandKind) Arity() int {
	switch k {
	case KindMoveTo, KindLineTo, KindRelLineTo:
		return 2
	case KindCurveTo, KindRelCurveTo:
		return 6
	default:
		return 0
	}
}

// PathCommand is one element of a path command stream.
// The set of implementations is closed: MoveTo, LineTo, RelLineTo, CurveTo,
// and RelCurveTo.
type PathCommand interface {
	// Kind returns the command tag.
	Kind() CommandKind

	// Args returns the command arguments in wire order.
	Args() []float64

	isPathCommand()
}

// MoveTo moves the current point without drawing and starts a subpath.
type MoveTo struct {
	Point Point
}

// LineTo draws a line to an absolute point.
type LineTo struct {
	Point Point
}

// RelLineTo draws a line to the current point plus Offset.
type RelLineTo struct {
	Offset Point
}

// CurveTo draws a cubic Bezier curve. All points are absolute.
type CurveTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

// RelCurveTo draws a cubic Bezier curve. All points are offsets from the
// current point at the start of the command.
type RelCurveTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (MoveTo) Kind() CommandKind     { return KindMoveTo }
func (LineTo) Kind() CommandKind     { return KindLineTo }
func (RelLineTo) Kind() CommandKind  { return KindRelLineTo }
func (CurveTo) Kind() CommandKind    { return KindCurveTo }
func (RelCurveTo) Kind() CommandKind { return KindRelCurveTo }

func (c MoveTo) Args() []float64    { return []float64{c.Point.X, c.Point.Y} }
func (c LineTo) Args() []float64    { return []float64{c.Point.X, c.Point.Y} }
func (c RelLineTo) Args() []float64 { return []float64{c.Offset.X, c.Offset.Y} }

func (c CurveTo) Args() []float64 {
	return []float64{c.Control1.X, c.Control1.Y, c.Control2.X, c.Control2.Y, c.Point.X, c.Point.Y}
}

func (c RelCurveTo) Args() []float64 {
	return []float64{c.Control1.X, c.Control1.Y, c.Control2.X, c.Control2.Y, c.Point.X, c.Point.Y}
}

func (MoveTo) isPathCommand()     {}
func (LineTo) isPathCommand()     {}
func (RelLineTo) isPathCommand()  {}
func (CurveTo) isPathCommand()    {}
func (RelCurveTo) isPathCommand() {}

// NewPathCommand builds a command from a tag and its argument list.
// It returns a *MalformedCommandError if the tag is unknown, the argument
// count does not match the tag's arity, or an argument is not finite.
func NewPathCommand(kind CommandKind, args ...float64) (PathCommand, error) {
	return newPathCommand(-1, kind, args)
}

func newPathCommand(index int, kind CommandKind, args []float64) (PathCommand, error) {
	want := kind.Arity()
	if want == 0 {
		return nil, &MalformedCommandError{Index: index, Kind: kind, Got: len(args), Reason: "unknown command tag"}
	}
	if len(args) != want {
		return nil, &MalformedCommandError{Index: index, Kind: kind, Got: len(args), Want: want}
	}
	for _, a := range args {
		if math.IsNaN(a) || math.IsInf(a, 0) {
			return nil, &MalformedCommandError{Index: index, Kind: kind, Got: len(args), Want: want, Reason: "non-finite argument"}
		}
	}

	switch kind {
	case KindMoveTo:
		return MoveTo{Point: Pt(args[0], args[1])}, nil
	case KindLineTo:
		return LineTo{Point: Pt(args[0], args[1])}, nil
	case KindRelLineTo:
		return RelLineTo{Offset: Pt(args[0], args[1])}, nil
	case KindCurveTo:
		return CurveTo{Control1: Pt(args[0], args[1]), Control2: Pt(args[2], args[3]), Point: Pt(args[4], args[5])}, nil
	default:
		return RelCurveTo{Control1: Pt(args[0], args[1]), Control2: Pt(args[2], args[3]), Point: Pt(args[4], args[5])}, nil
	}
}

// Validate checks every command in the stream for finite arguments.
// Commands constructed as struct literals bypass NewPathCommand, so
// Flatten validates its input with this function.
func Validate(cmds []PathCommand) error {
	for i, cmd := range cmds {
		if cmd == nil {
			return &MalformedCommandError{Index: i, Kind: CommandKind(math.MaxUint8), Reason: "nil command"}
		}
		args := cmd.Args()
		for _, a := range args {
			if math.IsNaN(a) || math.IsInf(a, 0) {
				return &MalformedCommandError{Index: i, Kind: cmd.Kind(), Got: len(args), Want: cmd.Kind().Arity(), Reason: "non-finite argument"}
			}
		}
	}
	return nil
}

// TranslateCommands returns a copy of the stream moved by (tx, ty).
// Absolute commands are shifted; relative commands are unchanged because
// their offsets follow the shifted current point.
func TranslateCommands(cmds []PathCommand, tx, ty float64) []PathCommand {
	d := Pt(tx, ty)
	out := make([]PathCommand, len(cmds))
	for i, cmd := range cmds {
		switch c := cmd.(type) {
		case MoveTo:
			out[i] = MoveTo{Point: c.Point.Add(d)}
		case LineTo:
			out[i] = LineTo{Point: c.Point.Add(d)}
		case CurveTo:
			out[i] = CurveTo{Control1: c.Control1.Add(d), Control2: c.Control2.Add(d), Point: c.Point.Add(d)}
		default:
			out[i] = cmd
		}
	}
	return out
}

// CountSubpaths returns the number of MoveTo-delimited subpaths that
// contain at least one drawing command. Flatten only follows the first.
func CountSubpaths(cmds []PathCommand) int {
	count := 0
	drawing := false
	for _, cmd := range cmds {
		if _, ok := cmd.(MoveTo); ok {
			drawing = false
			continue
		}
		if !drawing {
			count++
			drawing = true
		}
	}
	return count
}
