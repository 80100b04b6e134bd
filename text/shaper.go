package text

import "sync/atomic"

// Shaper turns a run of text into positioned glyphs for one face.
//
// Two implementations ship with the package. BuiltinShaper maps runes to
// glyphs one to one and applies pair kerning from the font tables.
// GoTextShaper runs HarfBuzz through go-text/typesetting and also applies
// ligatures and contextual forms.
//
// Glyphs come back in visual order: for a right-to-left face the first
// glyph is the leftmost one. The size is taken from face.Size().
type Shaper interface {
	Shape(text string, face Face) []ShapedGlyph
}

// shaperHolder lets an interface value live in an atomic.Pointer.
type shaperHolder struct{ Shaper }

var globalShaper atomic.Pointer[shaperHolder]

func init() {
	globalShaper.Store(&shaperHolder{&BuiltinShaper{}})
}

// SetShaper replaces the package default used by Shape and by Measurers
// created without WithShaper. nil restores BuiltinShaper.
func SetShaper(s Shaper) {
	if s == nil {
		s = &BuiltinShaper{}
	}
	globalShaper.Store(&shaperHolder{s})
}

// GetShaper returns the package default shaper.
func GetShaper() Shaper {
	return globalShaper.Load().Shaper
}

// Shape shapes text with the package default shaper.
func Shape(text string, face Face) []ShapedGlyph {
	return GetShaper().Shape(text, face)
}
