package raster

import (
	"image"
	"image/color"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/drawlib"
	"github.com/gogpu/drawlib/recording"
)

// miterLimit is the stroke miter limit in line widths.
const miterLimit = 4

// DrawPolygons fills each polygon with holes removed. Textured properties
// fill through a coverage mask with the loaded image tiled from
// TexOffset; an unknown image ID falls back to the solid fill color.
func (b *Backend) DrawPolygons(polygons []drawlib.Polygon, props drawlib.ShapeProperties) error {
	if b.canvas == nil {
		return recording.ErrNotBegun
	}

	var texture *image.RGBA
	if props.Textured() {
		texture = b.textures[props.ImageID]
		if texture == nil {
			drawlib.Logger().Warn("raster: texture not loaded, using fill color", "image", props.ImageID)
		}
	}

	for _, poly := range polygons {
		if len(poly.Outer) < 3 {
			continue
		}
		if texture != nil {
			b.fillTextured(poly, texture, props.TexOffset)
		} else {
			b.fillPolygon(b.canvas, poly, props.Fill.Color())
		}
		b.markDirty(poly.Bounds())
	}
	return nil
}

// fillPolygon rasterizes poly into dst. The GV scanner only fills with
// the nonzero rule, so holes are wound against the outer contour first.
func (b *Backend) fillPolygon(dst draw.Image, poly drawlib.Polygon, c color.Color) {
	fillContours(dst, polygonContours(poly), c)
}

// polygonContours returns the outer contour followed by every hole, each
// hole oriented opposite to the outer one.
func polygonContours(poly drawlib.Polygon) []drawlib.Contour {
	contours := make([]drawlib.Contour, 0, 1+len(poly.Holes))
	contours = append(contours, poly.Outer)
	outer := poly.Outer.SignedArea()
	for _, hole := range poly.Holes {
		if hole.SignedArea()*outer > 0 {
			hole = hole.Reversed()
		}
		contours = append(contours, hole)
	}
	return contours
}

// fillContours fills closed contours into dst in one pass with the
// nonzero winding rule.
func fillContours(dst draw.Image, cs []drawlib.Contour, c color.Color) {
	bounds := dst.Bounds()
	scanner := rasterx.NewScannerGV(bounds.Dx(), bounds.Dy(), dst, bounds)
	filler := rasterx.NewFiller(bounds.Dx(), bounds.Dy(), scanner)
	filler.SetColor(c)
	for _, contour := range cs {
		addContour(filler, contour, true)
	}
	filler.Draw()
}

// fillTextured renders the polygon's coverage into an alpha mask and
// composites the tiled texture through it.
func (b *Backend) fillTextured(poly drawlib.Polygon, texture *image.RGBA, offset drawlib.Point) {
	mask := image.NewAlpha(b.canvas.Bounds())
	b.fillPolygon(mask, poly, color.Alpha{A: 0xff})

	src := &tiled{img: texture, dx: int(offset.X), dy: int(offset.Y)}
	draw.DrawMask(b.canvas, b.canvas.Bounds(), src, image.Point{}, mask, image.Point{}, draw.Over)
}

// DrawLines strokes each polyline with the join and cap of props.
func (b *Backend) DrawLines(lines []drawlib.Contour, props drawlib.LineProperties) error {
	if b.canvas == nil {
		return recording.ErrNotBegun
	}
	if props.Width <= 0 {
		return nil
	}

	for _, line := range lines {
		if len(line) < 2 {
			continue
		}
		b.strokeContours([]drawlib.Contour{line}, props.ClosedLoop, props.Width, props.Color.Color(), props.Join, props.Cap)
		b.markDirty(line.Bounds().Grow(props.Width * miterLimit / 2))
	}
	return nil
}

// strokeContours strokes polylines onto the canvas in one pass.
func (b *Backend) strokeContours(cs []drawlib.Contour, closed bool, width float64, col color.Color, join drawlib.LineJoin, lineCap drawlib.LineCap) {
	bounds := b.canvas.Bounds()
	scanner := rasterx.NewScannerGV(bounds.Dx(), bounds.Dy(), b.canvas, bounds)
	stroker := rasterx.NewStroker(bounds.Dx(), bounds.Dy(), scanner)

	capFn, gapFn, joinMode := strokeStyle(join, lineCap)
	stroker.SetStroke(
		fixed.Int26_6(width*64),
		fixed.Int26_6(miterLimit*64),
		capFn, capFn, gapFn, joinMode,
	)
	stroker.SetColor(col)

	for _, c := range cs {
		addContour(stroker, c, closed)
	}
	stroker.Draw()
}

// strokeStyle maps line properties onto rasterx stroke functions.
func strokeStyle(join drawlib.LineJoin, lineCap drawlib.LineCap) (rasterx.CapFunc, rasterx.GapFunc, rasterx.JoinMode) {
	var capFn rasterx.CapFunc
	switch lineCap {
	case drawlib.LineCapRound:
		capFn = rasterx.RoundCap
	case drawlib.LineCapSquare:
		capFn = rasterx.SquareCap
	default:
		capFn = rasterx.ButtCap
	}

	switch join {
	case drawlib.LineJoinRound:
		return capFn, rasterx.RoundGap, rasterx.Round
	case drawlib.LineJoinBevel:
		return capFn, rasterx.FlatGap, rasterx.Bevel
	default:
		return capFn, rasterx.FlatGap, rasterx.MiterClip
	}
}

// pathAdder is the part of the rasterx Filler and Stroker API used to
// build paths.
type pathAdder interface {
	Start(a fixed.Point26_6)
	Line(b fixed.Point26_6)
	Stop(closeLoop bool)
}

// addContour adds c as one subpath.
func addContour(p pathAdder, c drawlib.Contour, closed bool) {
	if len(c) == 0 {
		return
	}
	p.Start(rasterx.ToFixedP(c[0].X, c[0].Y))
	for _, pt := range c[1:] {
		p.Line(rasterx.ToFixedP(pt.X, pt.Y))
	}
	p.Stop(closed)
}

// tiled repeats an image over the plane, shifted by (dx, dy).
type tiled struct {
	img    *image.RGBA
	dx, dy int
}

func (t *tiled) ColorModel() color.Model { return t.img.ColorModel() }

func (t *tiled) Bounds() image.Rectangle {
	return image.Rect(-1<<30, -1<<30, 1<<30, 1<<30)
}

func (t *tiled) At(x, y int) color.Color {
	r := t.img.Bounds()
	w, h := r.Dx(), r.Dy()
	if w == 0 || h == 0 {
		return color.Transparent
	}
	tx := ((x-t.dx)%w + w) % w
	ty := ((y-t.dy)%h + h) % h
	return t.img.At(r.Min.X+tx, r.Min.Y+ty)
}
