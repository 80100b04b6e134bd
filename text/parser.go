package text

import "sync"

// FontParser is an interface for font parsing backends.
// This abstraction allows swapping the font parsing library.
//
// The default implementation uses golang.org/x/image/font/opentype.
type FontParser interface {
	// Parse parses font data (TTF or OTF) and returns a ParsedFont.
	Parse(data []byte) (ParsedFont, error)
}

// ParsedFont represents a parsed font file.
// Sizes are pixels per em. Implementations must be safe for concurrent use.
type ParsedFont interface {
	// Name returns the font family name.
	// Returns empty string if not available.
	Name() string

	// FullName returns the full font name.
	// Returns empty string if not available.
	FullName() string

	// NumGlyphs returns the number of glyphs in the font.
	NumGlyphs() int

	// UnitsPerEm returns the units per em for the font.
	UnitsPerEm() int

	// GlyphIndex returns the glyph index for a rune.
	// Returns 0 if the glyph is not found.
	GlyphIndex(r rune) GlyphID

	// GlyphAdvance returns the advance width for a glyph.
	GlyphAdvance(gid GlyphID, ppem float64) float64

	// Kern returns the horizontal adjustment between two glyphs, or 0 when
	// the font has no kerning for the pair.
	Kern(left, right GlyphID, ppem float64) float64

	// Metrics returns the font metrics at the given size.
	Metrics(ppem float64) Metrics

	// Outline returns the outline of a glyph with the origin on the baseline
	// and y increasing downwards.
	Outline(gid GlyphID, ppem float64) (*GlyphOutline, error)
}

// defaultParserName is the name of the default parser.
const defaultParserName = "ximage"

var (
	parserMu sync.RWMutex

	// parserRegistry holds registered font parsers.
	parserRegistry = map[string]FontParser{
		defaultParserName: &ximageParser{},
	}
)

// RegisterParser registers a custom font parser under name.
// Registering an existing name replaces the previous parser.
func RegisterParser(name string, parser FontParser) {
	parserMu.Lock()
	defer parserMu.Unlock()
	parserRegistry[name] = parser
}

// getParser returns the parser by name, or the default if not found.
func getParser(name string) FontParser {
	parserMu.RLock()
	defer parserMu.RUnlock()
	if p, ok := parserRegistry[name]; ok {
		return p
	}
	return parserRegistry[defaultParserName]
}
