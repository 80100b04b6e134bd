// Package text supplies font metrics and glyph outlines for drawlib.
//
// The pipeline separates shared resources from per-size views:
//
//   - FontSource: heavyweight, shared font resource (parses TTF/OTF data)
//   - Face: lightweight view of a FontSource at a pixel size
//   - Library: font family names mapped to sources
//   - Shaper: converts a string to positioned glyphs
//   - Measurer: implements drawlib.Measurer on top of a Library and Shaper
//
// # Example usage
//
//	lib, err := text.NewLibrary()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	m := text.NewMeasurer(lib, text.WithShaper(text.NewGoTextShaper()))
//
//	props := drawlib.NewTextProperties(0, 0, 0)
//	glyphs, err := m.MeasureGlyphs("Hello", props)
//
// # Pluggable Parser Backend
//
// Font parsing is abstracted through the FontParser interface.
// By default golang.org/x/image/font/opentype is used.
// Custom parsers can be registered with RegisterParser and selected with
// WithParser.
//
// # Bidirectional text
//
// Measurer splits text into directional runs with golang.org/x/text and
// returns glyphs in visual (left to right) order, which is the order in
// which they are laid along a path.
package text
