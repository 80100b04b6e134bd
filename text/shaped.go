package text

// ShapedGlyph is one glyph placed by a Shaper. Positions are in pixels
// from the start of the shaped run.
type ShapedGlyph struct {
	GID GlyphID
	// Cluster is the rune index, within the shaped text, of the first rune
	// the glyph was produced from.
	Cluster int
	// X is the pen position plus any horizontal offset from the shaper.
	X float64
	// Y is the vertical offset from the baseline, positive up.
	Y        float64
	XAdvance float64
}
