// Package drawlib provides the geometry core of a deferred 2D drawing
// library: vector path commands, curve flattening, and text-along-a-path
// ("twisted text") layout.
//
// # Overview
//
// Drawing operations are recorded by the recording package and replayed to
// a pluggable backend later. The backend renders; this package only does
// the math the backends and the command store share:
//
//   - PathCommand: a closed set of path commands (MoveTo, LineTo,
//     RelLineTo, CurveTo, RelCurveTo).
//   - Flatten: turns a command stream into a polyline (Contour) and a
//     cumulative arc-length table.
//   - PlaceAlongPath: places, orients, and bounds each glyph of a string so
//     its baseline follows the flattened path.
//
// # Quick Start
//
//	path := drawlib.NewPath()
//	path.MoveTo(0, 100)
//	path.CurveTo(100, 0, 200, 200, 300, 100)
//
//	contour, lengths, err := drawlib.Flatten(path.Commands(), drawlib.DefaultTolerance)
//	if err != nil {
//	    return err
//	}
//
//	glyphs, err := measurer.MeasureGlyphs("Hello", props)
//	if err != nil {
//	    return err
//	}
//	placement, err := drawlib.PlaceAlongPath(contour, lengths, glyphs, props.Alignment())
//
// # Coordinate System
//
// Screen coordinates are used throughout:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Label angles are in radians, clockwise
//
// # Concurrency
//
// Flatten, PlaceAlongPath, and the other geometry functions are pure: they
// never mutate their inputs and allocate fresh results, so they may be
// called concurrently on independent inputs.
package drawlib

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
