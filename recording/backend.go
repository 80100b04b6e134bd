package recording

import (
	"image"
	"io"

	"github.com/gogpu/drawlib"
)

// Backend is the interface that all output backends must implement.
// Backends receive recorded drawing commands and translate them to
// their output format (raster pixels, vector streams, etc.).
//
// Backends are created via the registry using NewBackend(name) and
// registered via Register() in their init() functions.
//
// # Implementation Contract
//
// Each backend must:
//  1. Register in init() using recording.Register()
//  2. Handle all Backend methods (even if no-op for some)
//  3. Return ErrNotBegun for drawing calls outside Begin/End
//  4. Treat the slices it receives as read-only
type Backend interface {
	// Begin initializes the backend for rendering at the given dimensions.
	Begin(width, height int) error

	// End finalizes the rendering and prepares the output.
	End() error

	// DrawPolygons fills each polygon's outer contour minus its holes.
	DrawPolygons(polygons []drawlib.Polygon, props drawlib.ShapeProperties) error

	// DrawLines strokes each polyline.
	DrawLines(lines []drawlib.Contour, props drawlib.LineProperties) error

	// DrawText draws straight labels anchored at their top-left corner.
	DrawText(labels []drawlib.TextLabel, props drawlib.TextProperties) error

	// DrawTwistedText draws labels along their paths.
	DrawTwistedText(labels []drawlib.TwistedTextLabel, props drawlib.TextProperties) error

	// LoadResources loads image files under their IDs.
	LoadResources(resources []Resource) error

	// UnloadResources releases images by ID. Unknown IDs are ignored.
	UnloadResources(ids []string) error
}

// WriterBackend extends Backend with the ability to write output to an io.Writer.
type WriterBackend interface {
	Backend

	// WriteTo writes the rendered content to the given writer.
	// This should only be called after End().
	WriteTo(w io.Writer) (int64, error)
}

// FileBackend extends Backend with the ability to save output directly to a file.
type FileBackend interface {
	Backend

	// SaveToFile saves the rendered content to a file at the given path.
	// This should only be called after End().
	SaveToFile(path string) error
}

// PixmapBackend extends Backend with access to rendered pixels.
type PixmapBackend interface {
	Backend

	// Image returns the rendered image, or nil before Begin.
	Image() *image.RGBA
}

// ExtentsBackend reports which part of the canvas has been drawn on.
type ExtentsBackend interface {
	Backend

	// DrawableExtents returns the bounding box of everything drawn since
	// Begin, clipped to the canvas. It is empty if nothing was drawn.
	DrawableExtents() image.Rectangle
}
