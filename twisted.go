package drawlib

import (
	"fmt"
	"math"
)

// LengthEpsilon is the relative slack allowed when comparing a glyph's
// trailing edge with the path length, absorbing floating-point error from
// summing advances.
const LengthEpsilon = 1e-9

// GlyphMetric holds the layout metrics of one rendered character in path
// units: the advance along the baseline and the extents above (Ascent) and
// below (Descent) it. Both extents are non-negative distances.
type GlyphMetric struct {
	Rune    rune
	Advance float64
	Ascent  float64
	Descent float64
}

// Height returns Ascent + Descent.
func (g GlyphMetric) Height() float64 {
	return g.Ascent + g.Descent
}

// Measurer resolves a string into per-glyph metrics for a text style.
// It is the only capability the layout code needs from a font system;
// implementations live in the text package and in rendering backends.
type Measurer interface {
	MeasureGlyphs(text string, props TextProperties) ([]GlyphMetric, error)
}

// Alignment positions text relative to a path.
type Alignment struct {
	// VAlign moves the text box along the normal: 0 puts the path on the
	// bottom edge of the box, 0.5 through its middle, 1 on its top edge.
	VAlign float64
	// HAlign distributes the slack between path and text: 0 starts the text
	// at the path start, 1 ends it at the path end.
	HAlign float64
}

// Span is the arc-length interval covered by one placed glyph.
type Span struct {
	Start, End float64
}

// TextPlacement is the result of laying text along a path.
type TextPlacement struct {
	// Quads bounds each placed glyph, in text order.
	Quads []Quad
	// Spans holds the arc-length interval of each placed glyph.
	Spans []Span
	// Glyphs is the number of glyphs that were requested.
	Glyphs int
	// PathLength is the total length of the path.
	PathLength float64
	// TextLength is the sum of all glyph advances, placed or not.
	TextLength float64
}

// Placed returns the number of glyphs that fit on the path.
func (p *TextPlacement) Placed() int {
	return len(p.Quads)
}

// Truncated reports whether glyphs were dropped because the path was too short.
func (p *TextPlacement) Truncated() bool {
	return len(p.Quads) < p.Glyphs
}

// Triangles returns two triangles per placed glyph.
func (p *TextPlacement) Triangles() TwistedTriangles {
	out := make(TwistedTriangles, 0, 2*len(p.Quads))
	for _, q := range p.Quads {
		tris := q.Triangles()
		out = append(out, tris[0], tris[1])
	}
	return out
}

// PlaceAlongPath lays glyphs along a flattened path and returns a bounding
// quadrilateral per glyph, oriented to the path's local tangent and normal.
//
// Text that does not fit is truncated: the first glyph whose trailing edge
// would pass the end of the path, and every glyph after it, is omitted.
// Truncation is not an error; compare TextLength with PathLength or call
// Truncated to detect it.
//
// It returns ErrEmptyText if glyphs is empty, ErrEmptyPath if the contour
// has fewer than two points or zero length, and ErrLengthMismatch if the
// table does not have one entry per point. A glyph with a NaN or infinite
// metric yields ErrInvalidMetric.
func PlaceAlongPath(contour Contour, lengths ArcLengthTable, glyphs []GlyphMetric, align Alignment) (*TextPlacement, error) {
	if len(glyphs) == 0 {
		return nil, ErrEmptyText
	}
	if len(contour) < 2 {
		return nil, ErrEmptyPath
	}
	if len(lengths) != len(contour) {
		return nil, ErrLengthMismatch
	}
	pathLength := lengths.Total()
	if !(pathLength > 0) {
		return nil, ErrEmptyPath
	}

	textLength := 0.0
	for i, g := range glyphs {
		if !finite(g.Advance) || !finite(g.Ascent) || !finite(g.Descent) {
			return nil, fmt.Errorf("%w: glyph %d (%q)", ErrInvalidMetric, i, g.Rune)
		}
		textLength += g.Advance
	}

	result := &TextPlacement{
		Quads:      make([]Quad, 0, len(glyphs)),
		Spans:      make([]Span, 0, len(glyphs)),
		Glyphs:     len(glyphs),
		PathLength: pathLength,
		TextLength: textLength,
	}

	start := clamp01(align.HAlign) * math.Max(0, pathLength-textLength)
	limit := pathLength + LengthEpsilon*math.Max(1, pathLength)

	pl := placer{contour: contour, lengths: lengths, prev: horizontalFrame(contour[0])}
	cursor := start
	for _, g := range glyphs {
		end := cursor + g.Advance
		if end > limit {
			break
		}

		lead := pl.frame(cursor)
		trail := pl.frame(end)

		h := g.Height()
		bottom := -align.VAlign * h
		top := (1 - align.VAlign) * h

		var q Quad
		q[LeadingBottom] = lead.Offset(0, bottom)
		q[LeadingTop] = lead.Offset(0, top)
		q[TrailingBottom] = trail.Offset(0, bottom)
		q[TrailingTop] = trail.Offset(0, top)

		result.Quads = append(result.Quads, q)
		result.Spans = append(result.Spans, Span{Start: cursor, End: end})
		cursor = end
	}

	Logger().Debug("drawlib: placed text along path",
		"glyphs", len(glyphs),
		"placed", len(result.Quads),
		"path_length", pathLength,
		"text_length", textLength)

	return result, nil
}

// placer carries the last good frame between glyph edges so a degenerate
// segment inherits the previous orientation.
type placer struct {
	contour Contour
	lengths ArcLengthTable
	prev    Frame
}

func (pl *placer) frame(s float64) Frame {
	f, ok := frameAt(pl.contour, pl.lengths, s)
	if !ok {
		f.Tangent = pl.prev.Tangent
		f.Normal = pl.prev.Normal
		return f
	}
	pl.prev = f
	return f
}

// PlaceTextOnPath flattens cmds and lays glyphs along the result.
func PlaceTextOnPath(cmds []PathCommand, tolerance float64, glyphs []GlyphMetric, align Alignment) (*TextPlacement, error) {
	if len(glyphs) == 0 {
		return nil, ErrEmptyText
	}
	contour, lengths, err := Flatten(cmds, tolerance)
	if err != nil {
		return nil, err
	}
	return PlaceAlongPath(contour, lengths, glyphs, align)
}

func clamp01(x float64) float64 {
	switch {
	case math.IsNaN(x), x < 0:
		return 0
	case x > 1:
		return 1
	default:
		return x
	}
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
