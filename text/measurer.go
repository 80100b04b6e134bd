package text

import (
	"github.com/gogpu/drawlib"
)

// Glyph is a shaped glyph together with the rune it was produced from.
type Glyph struct {
	ShapedGlyph
	// Rune is the first rune of the glyph's cluster.
	Rune rune
}

// Layout is a shaped line of text in visual order.
type Layout struct {
	// Face is the face the line was shaped with.
	Face Face
	// Glyphs holds the glyphs left to right; X positions accumulate from 0.
	Glyphs []Glyph
	// Metrics are the face metrics at the layout's size.
	Metrics Metrics
}

// Width returns the total advance of the line.
func (l *Layout) Width() float64 {
	var w float64
	for _, g := range l.Glyphs {
		w += g.XAdvance
	}
	return w
}

// Measurer resolves drawlib text properties to fonts and shapes text.
// It implements drawlib.Measurer.
//
// Measurer is safe for concurrent use.
type Measurer struct {
	lib    *Library
	shaper Shaper
	base   Direction
}

var _ drawlib.Measurer = (*Measurer)(nil)

// NewMeasurer creates a Measurer backed by lib.
func NewMeasurer(lib *Library, opts ...MeasurerOption) *Measurer {
	m := &Measurer{lib: lib, base: DirectionLTR}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Library returns the font library the measurer resolves names against.
func (m *Measurer) Library() *Library {
	return m.lib
}

// Layout shapes s with the font and size named by props.
func (m *Measurer) Layout(s string, props drawlib.TextProperties) (*Layout, error) {
	if s == "" {
		return nil, drawlib.ErrEmptyText
	}
	src, err := m.lib.Source(props.FontName())
	if err != nil {
		return nil, err
	}
	parsed, err := src.Parsed()
	if err != nil {
		return nil, err
	}

	size := props.Size()
	shaper := m.shaper
	if shaper == nil {
		shaper = GetShaper()
	}

	runes := []rune(s)
	out := &Layout{
		Face:    src.Face(size, WithDirection(m.base)),
		Metrics: parsed.Metrics(size),
		Glyphs:  make([]Glyph, 0, len(runes)),
	}

	var x float64
	for _, run := range VisualRuns(s, m.base) {
		face := src.Face(size, WithDirection(run.Direction))
		shaped := shaper.Shape(run.Text, face)
		if len(shaped) == 0 {
			drawlib.Logger().Warn("text: shaper returned no glyphs, using builtin shaper",
				"font", src.Name(), "run", run.Text)
			shaped = (&BuiltinShaper{}).Shape(run.Text, face)
		}
		// Re-base the run onto the line, keeping the shaper's fine offsets.
		var pen float64
		for _, g := range shaped {
			g.Cluster += run.Start
			g.X = x + (g.X - pen)
			pen += g.XAdvance
			var r rune
			if g.Cluster >= 0 && g.Cluster < len(runes) {
				r = runes[g.Cluster]
			}
			out.Glyphs = append(out.Glyphs, Glyph{ShapedGlyph: g, Rune: r})
			x += g.XAdvance
		}
	}

	drawlib.Logger().Debug("text: layout",
		"font", src.Name(), "size", size, "runes", len(runes), "glyphs", len(out.Glyphs))
	return out, nil
}

// MeasureGlyphs implements drawlib.Measurer. Every glyph carries the face
// ascent and descent so that all boxes along a path share one height.
func (m *Measurer) MeasureGlyphs(s string, props drawlib.TextProperties) ([]drawlib.GlyphMetric, error) {
	layout, err := m.Layout(s, props)
	if err != nil {
		return nil, err
	}
	out := make([]drawlib.GlyphMetric, len(layout.Glyphs))
	for i, g := range layout.Glyphs {
		out[i] = drawlib.GlyphMetric{
			Rune:    g.Rune,
			Advance: g.XAdvance,
			Ascent:  layout.Metrics.Ascent,
			Descent: layout.Metrics.Descent,
		}
	}
	return out, nil
}
