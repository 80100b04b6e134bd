package raster

import (
	"errors"
	"math"

	"github.com/gogpu/drawlib"
	"github.com/gogpu/drawlib/recording"
	"github.com/gogpu/drawlib/text"
)

// maxWarpStep bounds the length of glyph outline segments, in pixels,
// before they are bent along a path.
const maxWarpStep = 1.0

// textMeasurer returns the measurer, creating the font library on first use.
func (b *Backend) textMeasurer() (*text.Measurer, error) {
	b.initText.Do(func() {
		if b.lib == nil {
			b.lib, b.textErr = text.NewLibrary()
			if b.textErr != nil {
				return
			}
		}
		var opts []text.MeasurerOption
		if b.shaper != nil {
			opts = append(opts, text.WithShaper(b.shaper))
		}
		b.measurer = text.NewMeasurer(b.lib, opts...)
	})
	return b.measurer, b.textErr
}

// MeasureGlyphs implements drawlib.Measurer with the fonts the backend
// draws with, so stores can compute bounds that match the output.
func (b *Backend) MeasureGlyphs(s string, props drawlib.TextProperties) ([]drawlib.GlyphMetric, error) {
	m, err := b.textMeasurer()
	if err != nil {
		return nil, err
	}
	return m.MeasureGlyphs(s, props)
}

// DrawText draws straight labels. The anchor is the top-left corner of the
// text box shifted by the alignment, and the box rotates around it.
func (b *Backend) DrawText(labels []drawlib.TextLabel, props drawlib.TextProperties) error {
	if b.canvas == nil {
		return recording.ErrNotBegun
	}
	m, err := b.textMeasurer()
	if err != nil {
		return err
	}

	for _, label := range labels {
		if label.Text == "" {
			continue
		}
		layout, err := m.Layout(label.Text, props)
		if err != nil {
			return err
		}

		x0 := -props.HAlign * layout.Width()
		baseline := -props.VAlign*layout.Metrics.Height() + layout.Metrics.Ascent
		anchor := drawlib.Pt(label.X, label.Y)

		contours := b.glyphContours(layout, func(i int, p drawlib.Point) drawlib.Point {
			g := layout.Glyphs[i]
			local := drawlib.Pt(x0+g.X+p.X, baseline-g.Y+p.Y)
			return anchor.Add(local.Rotate(label.Angle))
		})
		b.paintGlyphs(contours, props)
	}
	return nil
}

// DrawTwistedText draws labels whose glyphs follow a path. Each glyph
// outline is densified and every point is moved into the frame of the
// path at its arc length, so glyphs bend with the curve. Glyphs past the
// end of the path are not drawn.
func (b *Backend) DrawTwistedText(labels []drawlib.TwistedTextLabel, props drawlib.TextProperties) error {
	if b.canvas == nil {
		return recording.ErrNotBegun
	}
	m, err := b.textMeasurer()
	if err != nil {
		return err
	}

	for _, label := range labels {
		if label.Text == "" {
			continue
		}
		layout, err := m.Layout(label.Text, props)
		if err != nil {
			return err
		}
		path, lengths, err := drawlib.Flatten(label.Path, b.tolerance)
		if err != nil {
			if errors.Is(err, drawlib.ErrEmptyPath) {
				drawlib.Logger().Warn("raster: skipping twisted label with empty path", "text", label.Text)
				continue
			}
			return err
		}

		metrics := make([]drawlib.GlyphMetric, len(layout.Glyphs))
		pens := make([]float64, len(layout.Glyphs))
		var pen float64
		for i, g := range layout.Glyphs {
			metrics[i] = drawlib.GlyphMetric{
				Rune:    g.Rune,
				Advance: g.XAdvance,
				Ascent:  layout.Metrics.Ascent,
				Descent: layout.Metrics.Descent,
			}
			pens[i] = pen
			pen += g.XAdvance
		}

		placement, err := drawlib.PlaceAlongPath(path, lengths, metrics, props.Alignment())
		if err != nil {
			if errors.Is(err, drawlib.ErrEmptyPath) {
				drawlib.Logger().Warn("raster: skipping twisted label with zero-length path", "text", label.Text)
				continue
			}
			return err
		}
		if placement.Truncated() {
			drawlib.Logger().Debug("raster: twisted label truncated",
				"text", label.Text, "placed", placement.Placed(), "glyphs", placement.Glyphs)
		}

		placed := &text.Layout{
			Face:    layout.Face,
			Glyphs:  layout.Glyphs[:placement.Placed()],
			Metrics: layout.Metrics,
		}
		// Baseline height above the path for VAlign 0.
		base := -props.VAlign*layout.Metrics.Height() + layout.Metrics.Descent

		contours := b.glyphContours(placed, func(i int, p drawlib.Point) drawlib.Point {
			g := placed.Glyphs[i]
			s := placement.Spans[i].Start + (g.X - pens[i]) + p.X
			up := base + g.Y - p.Y
			return drawlib.PathFrame(path, lengths, s).Offset(0, up)
		})
		b.paintGlyphs(contours, props)
	}
	return nil
}

// glyphContours flattens the outline of every glyph in layout and maps
// each point through place, which receives the glyph index and the point
// relative to the glyph origin (y down).
func (b *Backend) glyphContours(layout *text.Layout, place func(i int, p drawlib.Point) drawlib.Point) []drawlib.Contour {
	var out []drawlib.Contour
	for i, g := range layout.Glyphs {
		outline, err := layout.Face.Outline(g.GID)
		if err != nil {
			drawlib.Logger().Warn("raster: glyph outline unavailable",
				"glyph", g.GID, "rune", string(g.Rune), "error", err)
			continue
		}
		for _, cmds := range outline.Contours() {
			contour, _, err := drawlib.Flatten(cmds, b.tolerance)
			if err != nil {
				continue
			}
			contour = densify(contour, maxWarpStep)
			for j, p := range contour {
				contour[j] = place(i, p)
			}
			out = append(out, contour)
		}
	}
	return out
}

// paintGlyphs fills and/or outlines glyph contours and grows the extents.
func (b *Backend) paintGlyphs(contours []drawlib.Contour, props drawlib.TextProperties) {
	if len(contours) == 0 {
		return
	}
	var bounds drawlib.Rect
	for i, c := range contours {
		if i == 0 {
			bounds = c.Bounds()
		} else {
			bounds = bounds.Union(c.Bounds())
		}
	}

	if props.Filled {
		fillContours(b.canvas, contours, props.Fill.Color())
	}
	if props.Outline && props.LineWidth > 0 {
		b.strokeContours(contours, true, props.LineWidth, props.Line.Color(), drawlib.LineJoinRound, drawlib.LineCapButt)
		bounds = bounds.Grow(props.LineWidth / 2)
	}
	b.markDirty(bounds)
}

// densify splits segments longer than step so the contour bends smoothly
// when warped.
func densify(c drawlib.Contour, step float64) drawlib.Contour {
	if len(c) < 2 {
		return c
	}
	out := make(drawlib.Contour, 0, len(c))
	out = append(out, c[0])
	for i := 1; i < len(c); i++ {
		a, p := c[i-1], c[i]
		if n := int(math.Ceil(a.Distance(p) / step)); n > 1 {
			for k := 1; k < n; k++ {
				out = append(out, a.Lerp(p, float64(k)/float64(n)))
			}
		}
		out = append(out, p)
	}
	return out
}
