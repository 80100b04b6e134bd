package text

import "unicode/utf8"

// Face represents a font face at a specific size.
// This is a lightweight object that can be created from a FontSource.
// Face is safe for concurrent use.
type Face interface {
	// Metrics returns the font metrics at this face's size.
	Metrics() Metrics

	// Advance returns the total advance width of the text in pixels,
	// kerning included.
	Advance(text string) float64

	// HasGlyph reports whether the font has a glyph for the given rune.
	HasGlyph(r rune) bool

	// GlyphIndex returns the glyph for r, or 0 (the missing glyph).
	GlyphIndex(r rune) GlyphID

	// GlyphAdvance returns the advance of a glyph in pixels.
	GlyphAdvance(gid GlyphID) float64

	// Kern returns the kerning adjustment between two glyphs in pixels.
	Kern(left, right GlyphID) float64

	// Outline returns the glyph outline scaled to this face's size.
	Outline(gid GlyphID) (*GlyphOutline, error)

	// Direction returns the text direction for this face.
	Direction() Direction

	// Language returns the language tag used for shaping.
	Language() string

	// Source returns the FontSource this face was created from.
	Source() *FontSource

	// Size returns the size of this face in pixels per em.
	Size() float64

	// private prevents external implementation
	private()
}

// sourceFace is the internal implementation of Face.
type sourceFace struct {
	source *FontSource
	size   float64
	config faceConfig
}

// Metrics implements Face.Metrics.
func (f *sourceFace) Metrics() Metrics {
	parsed, err := f.source.Parsed()
	if err != nil {
		return Metrics{}
	}
	return parsed.Metrics(f.size)
}

// Advance implements Face.Advance.
func (f *sourceFace) Advance(text string) float64 {
	parsed, err := f.source.Parsed()
	if err != nil {
		return 0
	}

	var (
		total float64
		prev  GlyphID
	)
	for i, r := range []rune(text) {
		gid := parsed.GlyphIndex(r)
		if i > 0 {
			total += parsed.Kern(prev, gid, f.size)
		}
		total += parsed.GlyphAdvance(gid, f.size)
		prev = gid
	}
	return total
}

// HasGlyph implements Face.HasGlyph.
func (f *sourceFace) HasGlyph(r rune) bool {
	if r == utf8.RuneError {
		return false
	}
	return f.GlyphIndex(r) != 0
}

// GlyphIndex implements Face.GlyphIndex.
func (f *sourceFace) GlyphIndex(r rune) GlyphID {
	parsed, err := f.source.Parsed()
	if err != nil {
		return 0
	}
	return parsed.GlyphIndex(r)
}

// GlyphAdvance implements Face.GlyphAdvance.
func (f *sourceFace) GlyphAdvance(gid GlyphID) float64 {
	parsed, err := f.source.Parsed()
	if err != nil {
		return 0
	}
	return parsed.GlyphAdvance(gid, f.size)
}

// Kern implements Face.Kern.
func (f *sourceFace) Kern(left, right GlyphID) float64 {
	parsed, err := f.source.Parsed()
	if err != nil {
		return 0
	}
	return parsed.Kern(left, right, f.size)
}

// Outline implements Face.Outline.
func (f *sourceFace) Outline(gid GlyphID) (*GlyphOutline, error) {
	parsed, err := f.source.Parsed()
	if err != nil {
		return nil, err
	}
	return parsed.Outline(gid, f.size)
}

// Direction implements Face.Direction.
func (f *sourceFace) Direction() Direction {
	return f.config.direction
}

// Language implements Face.Language.
func (f *sourceFace) Language() string {
	return f.config.language
}

// Source implements Face.Source.
func (f *sourceFace) Source() *FontSource {
	return f.source
}

// Size implements Face.Size.
func (f *sourceFace) Size() float64 {
	return f.size
}

func (f *sourceFace) private() {}
