package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrUnknownFont is returned when a font name is not registered in a Library.
	ErrUnknownFont = errors.New("text: unknown font")

	// ErrFontClosed is returned when a closed FontSource is used.
	ErrFontClosed = errors.New("text: font source closed")

	// ErrUnsupportedFontType is returned when a ParsedFont cannot provide
	// glyph outlines.
	ErrUnsupportedFontType = errors.New("text: unsupported font type for outline extraction")
)
