package recording

import "github.com/gogpu/drawlib"

// Default canvas size passed to Backend.Begin.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithMeasurer sets the collaborator used by the bounds queries.
func WithMeasurer(m drawlib.Measurer) StoreOption {
	return func(s *Store) {
		s.measurer = m
	}
}

// WithTolerance sets the flattening tolerance used by
// TriangleBoundsTwistedText. Non-positive values select
// drawlib.DefaultTolerance.
func WithTolerance(tol float64) StoreOption {
	return func(s *Store) {
		s.tolerance = tol
	}
}

// WithCapacity preallocates room for n commands.
func WithCapacity(n int) StoreOption {
	return func(s *Store) {
		if n > 0 {
			s.commands = make([]Command, 0, n)
		}
	}
}

// WithSize sets the canvas size passed to Backend.Begin on playback.
func WithSize(width, height int) StoreOption {
	return func(s *Store) {
		s.width = width
		s.height = height
	}
}
