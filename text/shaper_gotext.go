package text

import (
	"bytes"
	"sync"
	"unicode"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"

	"github.com/gogpu/drawlib"
)

// GoTextShaper shapes text with the HarfBuzz port in go-text/typesetting,
// so advances include kerning, ligatures and contextual forms. Use it when
// the glyph widths laid along a path must match a full text engine.
//
// GoTextShaper is safe for concurrent use. Parsed fonts are shared per
// FontSource; HarfBuzz shapers and font faces are not thread-safe and are
// pooled or created per call.
type GoTextShaper struct {
	shapers sync.Pool
	fonts   sync.Map // *FontSource -> *font.Font
}

// NewGoTextShaper creates a GoTextShaper.
func NewGoTextShaper() *GoTextShaper {
	s := &GoTextShaper{}
	s.shapers.New = func() any { return new(shaping.HarfbuzzShaper) }
	return s
}

// Shape implements Shaper. It returns nil for empty text, a nil face, or a
// font that go-text cannot load; callers fall back to BuiltinShaper.
func (s *GoTextShaper) Shape(text string, face Face) []ShapedGlyph {
	if text == "" || face == nil || face.Source() == nil {
		return nil
	}
	source := face.Source()
	f, err := s.font(source)
	if err != nil {
		drawlib.Logger().Warn("text: go-text shaping unavailable", "font", source.Name(), "error", err)
		return nil
	}

	runes := []rune(text)
	hb := s.shapers.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: mapDirection(face.Direction()),
		Face:      font.NewFace(f),
		Size:      floatToFixed(face.Size()),
		Script:    detectScript(runes),
		Language:  language.NewLanguage(face.Language()),
	})
	s.shapers.Put(hb)

	return convertGlyphs(out.Glyphs)
}

// font returns the go-text font for source, parsing it on first use.
// Concurrent first uses may parse twice; one result wins.
func (s *GoTextShaper) font(source *FontSource) (*font.Font, error) {
	if f, ok := s.fonts.Load(source); ok {
		return f.(*font.Font), nil
	}
	data, err := source.Data()
	if err != nil {
		return nil, err
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	f, _ := s.fonts.LoadOrStore(source, face.Font)
	return f.(*font.Font), nil
}

// RemoveSource forgets the parsed font of source. Call it after closing
// the source to release the memory.
func (s *GoTextShaper) RemoveSource(source *FontSource) {
	s.fonts.Delete(source)
}

// cachedFonts returns the number of parsed fonts held.
func (s *GoTextShaper) cachedFonts() int {
	n := 0
	s.fonts.Range(func(any, any) bool {
		n++
		return true
	})
	return n
}

func mapDirection(d Direction) di.Direction {
	if d.IsRTL() {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

// detectScript returns the script of the first non-space rune. Visual
// runs are split by direction, not script, so a run mixing scripts is
// shaped with its leading script.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if !unicode.IsSpace(r) {
			return language.LookupScript(r)
		}
	}
	return language.Latin
}

// convertGlyphs maps HarfBuzz output, which is already in visual order,
// to ShapedGlyphs with accumulated pen positions.
func convertGlyphs(glyphs []shaping.Glyph) []ShapedGlyph {
	if len(glyphs) == 0 {
		return nil
	}
	out := make([]ShapedGlyph, len(glyphs))
	var pen float64
	for i, g := range glyphs {
		advance := fixedToFloat(g.Advance)
		out[i] = ShapedGlyph{
			GID:      GlyphID(uint16(g.GlyphID)), //nolint:gosec // glyph indices fit in uint16
			Cluster:  g.TextIndex(),
			X:        pen + fixedToFloat(g.XOffset),
			Y:        fixedToFloat(g.YOffset),
			XAdvance: advance,
		}
		pen += advance
	}
	return out
}
