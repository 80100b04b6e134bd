package text

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ximageParser implements FontParser using golang.org/x/image/font/opentype.
type ximageParser struct{}

// Parse implements FontParser.Parse.
func (p *ximageParser) Parse(data []byte) (ParsedFont, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	return &ximageParsedFont{font: f}, nil
}

// ximageParsedFont implements ParsedFont using sfnt.Font.
// sfnt.Font is safe for concurrent use; every call uses its own sfnt.Buffer.
type ximageParsedFont struct {
	font *opentype.Font
}

// Name implements ParsedFont.Name.
func (f *ximageParsedFont) Name() string {
	if name, err := f.font.Name(nil, sfnt.NameIDFamily); err == nil {
		return name
	}
	return ""
}

// FullName implements ParsedFont.FullName.
func (f *ximageParsedFont) FullName() string {
	if name, err := f.font.Name(nil, sfnt.NameIDFull); err == nil {
		return name
	}
	return ""
}

// NumGlyphs implements ParsedFont.NumGlyphs.
func (f *ximageParsedFont) NumGlyphs() int {
	return f.font.NumGlyphs()
}

// UnitsPerEm implements ParsedFont.UnitsPerEm.
func (f *ximageParsedFont) UnitsPerEm() int {
	return int(f.font.UnitsPerEm())
}

// GlyphIndex implements ParsedFont.GlyphIndex.
func (f *ximageParsedFont) GlyphIndex(r rune) GlyphID {
	idx, err := f.font.GlyphIndex(nil, r)
	if err != nil {
		return 0
	}
	return GlyphID(idx)
}

// GlyphAdvance implements ParsedFont.GlyphAdvance.
func (f *ximageParsedFont) GlyphAdvance(gid GlyphID, ppem float64) float64 {
	var buf sfnt.Buffer
	advance, err := f.font.GlyphAdvance(&buf, sfnt.GlyphIndex(gid), floatToFixed(ppem), font.HintingNone)
	if err != nil {
		return 0
	}
	return fixedToFloat(advance)
}

// Kern implements ParsedFont.Kern.
func (f *ximageParsedFont) Kern(left, right GlyphID, ppem float64) float64 {
	var buf sfnt.Buffer
	k, err := f.font.Kern(&buf, sfnt.GlyphIndex(left), sfnt.GlyphIndex(right), floatToFixed(ppem), font.HintingNone)
	if err != nil {
		// sfnt.ErrNotFound means the font has no kern table.
		return 0
	}
	return fixedToFloat(k)
}

// Metrics implements ParsedFont.Metrics.
func (f *ximageParsedFont) Metrics(ppem float64) Metrics {
	var buf sfnt.Buffer
	m, err := f.font.Metrics(&buf, floatToFixed(ppem), font.HintingNone)
	if err != nil {
		return Metrics{}
	}

	ascent := fixedToFloat(m.Ascent)
	descent := math.Abs(fixedToFloat(m.Descent))
	return Metrics{
		Ascent:  ascent,
		Descent: descent,
		LineGap: math.Max(0, fixedToFloat(m.Height)-ascent-descent),
	}
}

// Outline implements ParsedFont.Outline.
func (f *ximageParsedFont) Outline(gid GlyphID, ppem float64) (*GlyphOutline, error) {
	var buf sfnt.Buffer
	segments, err := f.font.LoadGlyph(&buf, sfnt.GlyphIndex(gid), floatToFixed(ppem), nil)
	if err != nil {
		if errors.Is(err, sfnt.ErrColoredGlyph) {
			return nil, ErrUnsupportedFontType
		}
		return nil, fmt.Errorf("text: load glyph %d: %w", gid, err)
	}

	outline := &GlyphOutline{
		GID:      gid,
		Segments: make([]OutlineSegment, 0, len(segments)),
		Advance:  f.GlyphAdvance(gid, ppem),
	}
	for _, seg := range segments {
		var out OutlineSegment
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			out.Op = OutlineOpMoveTo
			out.Points[0] = fixedPoint(seg.Args[0])
		case sfnt.SegmentOpLineTo:
			out.Op = OutlineOpLineTo
			out.Points[0] = fixedPoint(seg.Args[0])
		case sfnt.SegmentOpQuadTo:
			out.Op = OutlineOpQuadTo
			out.Points[0] = fixedPoint(seg.Args[0])
			out.Points[1] = fixedPoint(seg.Args[1])
		case sfnt.SegmentOpCubeTo:
			out.Op = OutlineOpCubicTo
			out.Points[0] = fixedPoint(seg.Args[0])
			out.Points[1] = fixedPoint(seg.Args[1])
			out.Points[2] = fixedPoint(seg.Args[2])
		default:
			continue
		}
		outline.Segments = append(outline.Segments, out)
	}
	return outline, nil
}

// fixedPoint converts a fixed.Point26_6 to an OutlinePoint.
func fixedPoint(p fixed.Point26_6) OutlinePoint {
	return OutlinePoint{X: fixedToFloat(p.X), Y: fixedToFloat(p.Y)}
}

// floatToFixed converts a float64 size to fixed.Int26_6.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
