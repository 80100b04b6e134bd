package drawlib

import "math"

// TextLabel is a straight line of text anchored at (X, Y).
// With zero alignment the anchor is the top-left corner of the text box.
type TextLabel struct {
	Text string
	X, Y float64
	// Angle rotates the label clockwise around the anchor, in radians.
	Angle float64
}

// Translate returns the label moved by (tx, ty).
func (l TextLabel) Translate(tx, ty float64) TextLabel {
	l.X += tx
	l.Y += ty
	return l
}

// TwistedTextLabel is text whose bottom edge follows a path.
type TwistedTextLabel struct {
	Text string
	Path []PathCommand
}

// NewTwistedTextLabel creates a label from text and the commands of p.
func NewTwistedTextLabel(text string, p *Path) TwistedTextLabel {
	return TwistedTextLabel{Text: text, Path: p.Clone().Commands()}
}

// Translate returns the label with its path moved by (tx, ty).
func (l TwistedTextLabel) Translate(tx, ty float64) TwistedTextLabel {
	return TwistedTextLabel{Text: l.Text, Path: TranslateCommands(l.Path, tx, ty)}
}

// Clone returns a copy of the label that shares no command slice with l.
func (l TwistedTextLabel) Clone() TwistedTextLabel {
	path := make([]PathCommand, len(l.Path))
	copy(path, l.Path)
	return TwistedTextLabel{Text: l.Text, Path: path}
}

// LabelBounds returns the bounding triangles of a straight label: one quad
// per glyph, split into two triangles, rotated with the label.
//
// HAlign shifts the box left by HAlign times its width and VAlign shifts it
// up by VAlign times its height, so (0, 0) anchors the top-left corner and
// (1, 1) the bottom-right corner.
func LabelBounds(label TextLabel, glyphs []GlyphMetric, align Alignment) (TwistedTriangles, error) {
	if len(glyphs) == 0 {
		return nil, ErrEmptyText
	}

	width, ascent, descent := 0.0, 0.0, 0.0
	for _, g := range glyphs {
		width += g.Advance
		ascent = math.Max(ascent, g.Ascent)
		descent = math.Max(descent, g.Descent)
	}
	height := ascent + descent

	anchor := Pt(label.X, label.Y)
	top := -align.VAlign * height
	bottom := top + height
	x := -align.HAlign * width

	place := func(px, py float64) Point {
		return anchor.Add(Pt(px, py).Rotate(label.Angle))
	}

	out := make(TwistedTriangles, 0, 2*len(glyphs))
	for _, g := range glyphs {
		var q Quad
		q[LeadingBottom] = place(x, bottom)
		q[LeadingTop] = place(x, top)
		q[TrailingBottom] = place(x+g.Advance, bottom)
		q[TrailingTop] = place(x+g.Advance, top)
		tris := q.Triangles()
		out = append(out, tris[0], tris[1])
		x += g.Advance
	}
	return out, nil
}
