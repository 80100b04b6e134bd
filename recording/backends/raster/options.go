package raster

import (
	"image/color"

	"github.com/gogpu/drawlib/text"
)

// Option configures a Backend.
type Option func(*Backend)

// WithLibrary sets the font library used to measure and draw text.
// Without it the backend creates a library with the Go fonts on first use.
func WithLibrary(lib *text.Library) Option {
	return func(b *Backend) {
		b.lib = lib
	}
}

// WithShaper sets the shaper used for text. The default is the global
// shaper (see text.SetShaper).
func WithShaper(s text.Shaper) Option {
	return func(b *Backend) {
		b.shaper = s
	}
}

// WithBackground sets the color the canvas is cleared to by Begin.
// The default is transparent.
func WithBackground(c color.Color) Option {
	return func(b *Backend) {
		b.background = c
	}
}

// WithTolerance sets the flattening tolerance in pixels for label paths
// and glyph outlines. Non-positive values select drawlib.DefaultTolerance.
func WithTolerance(tol float64) Option {
	return func(b *Backend) {
		b.tolerance = tol
	}
}
