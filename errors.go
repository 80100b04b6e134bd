package drawlib

import (
	"errors"
	"fmt"
)

// Sentinel errors for the geometry core.
var (
	// ErrEmptyPath is returned when a path flattens to fewer than two
	// points, or when a contour with zero total length is used for placement.
	ErrEmptyPath = errors.New("drawlib: empty path")

	// ErrEmptyText is returned when no glyph metrics are supplied.
	ErrEmptyText = errors.New("drawlib: empty text")

	// ErrLengthMismatch is returned when an arc-length table does not have
	// exactly one entry per contour point.
	ErrLengthMismatch = errors.New("drawlib: arc-length table does not match contour")

	// ErrInvalidMetric is returned when a glyph metric is NaN or infinite.
	ErrInvalidMetric = errors.New("drawlib: non-finite glyph metric")

	// ErrMalformedCommand is the target of errors.Is for every
	// *MalformedCommandError.
	ErrMalformedCommand = errors.New("drawlib: malformed path command")
)

// MalformedCommandError reports a path command whose argument list does not
// match its tag, or that carries a non-finite coordinate.
type MalformedCommandError struct {
	// Index is the position of the command in its stream, or -1 when the
	// command was built on its own.
	Index int
	// Kind is the command tag as decoded.
	Kind CommandKind
	// Got is the number of arguments supplied.
	Got int
	// Want is the arity fixed by Kind, or 0 for an unknown tag.
	Want int
	// Reason describes non-arity problems (unknown tag, NaN).
	Reason string
}

func (e *MalformedCommandError) Error() string {
	where := ""
	if e.Index >= 0 {
		where = fmt.Sprintf(" at index %d", e.Index)
	}
	if e.Reason != "" {
		return fmt.Sprintf("drawlib: malformed %s command%s: %s", e.Kind, where, e.Reason)
	}
	return fmt.Sprintf("drawlib: malformed %s command%s: got %d args, want %d", e.Kind, where, e.Got, e.Want)
}

// Unwrap allows errors.Is(err, ErrMalformedCommand).
func (e *MalformedCommandError) Unwrap() error {
	return ErrMalformedCommand
}
