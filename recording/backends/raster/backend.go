// Package raster provides a raster backend for the recording system.
// It renders command stores to an *image.RGBA using srwiley/rasterx.
//
// # Supported Features
//
//   - Polygon fills with holes of either winding, solid or textured
//   - Polyline strokes with joins and caps
//   - Straight and twisted text labels, filled and/or outlined
//   - Image resources (PNG, JPEG, GIF, BMP, TIFF, WebP) for textures
//   - Drawable extents tracking
//   - PNG output
//
// # Example
//
//	// Import to register the backend
//	import _ "github.com/gogpu/drawlib/recording/backends/raster"
//
//	// Create via registry
//	backend, _ := recording.NewBackend("raster")
//
//	// Or create directly
//	backend := raster.NewBackend(raster.WithBackground(color.White))
//
//	store.Playback(backend)
//	backend.SaveToFile("output.png")
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"
	"sync"

	"golang.org/x/image/draw"

	"github.com/gogpu/drawlib"
	"github.com/gogpu/drawlib/recording"
	"github.com/gogpu/drawlib/text"
)

func init() {
	recording.Register("raster", func() recording.Backend {
		return NewBackend()
	})
}

// Backend renders recorded commands to a pixel image.
// It implements recording.Backend, recording.WriterBackend,
// recording.FileBackend, recording.PixmapBackend,
// recording.ExtentsBackend and drawlib.Measurer.
//
// Backend is not safe for concurrent use.
type Backend struct {
	canvas  *image.RGBA
	extents image.Rectangle

	background color.Color
	tolerance  float64
	textures   map[string]*image.RGBA

	lib      *text.Library
	shaper   text.Shaper
	initText sync.Once
	textErr  error
	measurer *text.Measurer
}

// Ensure Backend implements all required interfaces.
var (
	_ recording.Backend        = (*Backend)(nil)
	_ recording.WriterBackend  = (*Backend)(nil)
	_ recording.FileBackend    = (*Backend)(nil)
	_ recording.PixmapBackend  = (*Backend)(nil)
	_ recording.ExtentsBackend = (*Backend)(nil)
	_ drawlib.Measurer         = (*Backend)(nil)
)

// NewBackend creates a new raster backend.
// The backend must be initialized with Begin before drawing.
func NewBackend(opts ...Option) *Backend {
	b := &Backend{
		background: color.Transparent,
		tolerance:  drawlib.DefaultTolerance,
		textures:   make(map[string]*image.RGBA),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.tolerance <= 0 {
		b.tolerance = drawlib.DefaultTolerance
	}
	return b
}

// Begin allocates a width x height canvas cleared to the background color.
// Loaded resources survive Begin.
func (b *Backend) Begin(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("raster: invalid canvas size %dx%d", width, height)
	}
	b.canvas = image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(b.canvas, b.canvas.Bounds(), image.NewUniform(b.background), image.Point{}, draw.Src)
	b.extents = image.Rectangle{}
	drawlib.Logger().Debug("raster: begin", "width", width, "height", height)
	return nil
}

// End finalizes the rendering.
// After End is called, output methods (WriteTo, SaveToFile) can be used.
func (b *Backend) End() error {
	if b.canvas == nil {
		return recording.ErrNotBegun
	}
	return nil
}

// Image returns the rendered image, or nil before Begin.
func (b *Backend) Image() *image.RGBA {
	return b.canvas
}

// Width returns the canvas width.
func (b *Backend) Width() int {
	if b.canvas == nil {
		return 0
	}
	return b.canvas.Bounds().Dx()
}

// Height returns the canvas height.
func (b *Backend) Height() int {
	if b.canvas == nil {
		return 0
	}
	return b.canvas.Bounds().Dy()
}

// DrawableExtents returns the bounding box of everything drawn since Begin.
func (b *Backend) DrawableExtents() image.Rectangle {
	return b.extents
}

// WriteTo writes the rendered content as PNG to the given writer.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if b.canvas == nil {
		return 0, recording.ErrNotBegun
	}
	cw := &countingWriter{w: w}
	err := png.Encode(cw, b.canvas)
	return cw.n, err
}

// SaveToFile saves the rendered content as PNG to a file.
func (b *Backend) SaveToFile(path string) error {
	// #nosec G304 -- output path is provided by the caller
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("raster: create %s: %w", path, err)
	}
	if _, err := b.WriteTo(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("raster: encode %s: %w", path, err)
	}
	return f.Close()
}

// markDirty grows the drawable extents by r, clipped to the canvas.
func (b *Backend) markDirty(r drawlib.Rect) {
	ir := image.Rect(
		int(math.Floor(r.Min.X)), int(math.Floor(r.Min.Y)),
		int(math.Ceil(r.Max.X)), int(math.Ceil(r.Max.Y)),
	).Intersect(b.canvas.Bounds())
	if ir.Empty() {
		return
	}
	b.extents = b.extents.Union(ir)
}

// countingWriter wraps an io.Writer and counts bytes written.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
