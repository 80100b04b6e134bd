package text

// Direction is the writing direction of a run of text.
type Direction int

const (
	// DirectionLTR is left-to-right text such as Latin or Cyrillic.
	DirectionLTR Direction = iota
	// DirectionRTL is right-to-left text such as Hebrew or Arabic.
	DirectionRTL
)

func (d Direction) String() string {
	switch d {
	case DirectionLTR:
		return "LTR"
	case DirectionRTL:
		return "RTL"
	}
	return "Unknown"
}

// IsRTL reports whether glyphs of a run in direction d are reversed
// relative to logical order.
func (d Direction) IsRTL() bool {
	return d == DirectionRTL
}

// GlyphID is a glyph index within a font.
type GlyphID uint16
