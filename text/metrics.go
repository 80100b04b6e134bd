package text

// Metrics are the vertical font metrics of a face, in pixels. Ascent and
// Descent are both non-negative distances from the baseline.
type Metrics struct {
	Ascent  float64
	Descent float64
	LineGap float64
}

// Height returns the height of the box a glyph occupies on a path.
func (m Metrics) Height() float64 {
	return m.Ascent + m.Descent
}

// LineHeight returns the baseline-to-baseline distance.
func (m Metrics) LineHeight() float64 {
	return m.Height() + m.LineGap
}
