package text

import (
	"fmt"
	"os"
	"sync/atomic"
)

// FontSource is a parsed font file. Faces of any size are created from it
// with Face; they share the parsed tables, so one source per font file is
// enough for a whole program.
//
// FontSource is safe for concurrent use. Pass it by pointer.
type FontSource struct {
	_     noCopy
	name  string
	state atomic.Pointer[fontState]
}

// fontState is the part of a source that Close releases.
type fontState struct {
	data   []byte
	parsed ParsedFont
}

// noCopy makes go vet's copylocks check flag FontSource values.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// NewFontSource parses TTF or OTF data. The data is copied, so the caller
// may reuse the slice.
func NewFontSource(data []byte, opts ...SourceOption) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	config := defaultSourceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	owned := append([]byte(nil), data...)
	parsed, err := getParser(config.parserName).Parse(owned)
	if err != nil {
		return nil, err
	}

	s := &FontSource{name: familyName(parsed)}
	s.state.Store(&fontState{data: owned, parsed: parsed})
	return s, nil
}

// NewFontSourceFromFile reads and parses a font file.
func NewFontSourceFromFile(path string, opts ...SourceOption) (*FontSource, error) {
	// #nosec G304 -- font file path is provided by the caller
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: read font %s: %w", path, err)
	}
	return NewFontSource(data, opts...)
}

// Face returns a face at size pixels per em. It panics on a nil source,
// which usually means an ignored error from NewFontSource.
func (s *FontSource) Face(size float64, opts ...FaceOption) Face {
	if s == nil {
		panic("text: Face called on nil FontSource")
	}
	config := defaultFaceConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return &sourceFace{source: s, size: size, config: config}
}

// Name returns the font family name. It stays valid after Close.
func (s *FontSource) Name() string {
	return s.name
}

// Parsed returns the parsed font, or ErrFontClosed after Close.
func (s *FontSource) Parsed() (ParsedFont, error) {
	st := s.state.Load()
	if st == nil {
		return nil, ErrFontClosed
	}
	return st.parsed, nil
}

// Data returns the raw font bytes, or ErrFontClosed after Close. The
// slice must not be modified.
func (s *FontSource) Data() ([]byte, error) {
	st := s.state.Load()
	if st == nil {
		return nil, ErrFontClosed
	}
	return st.data, nil
}

// Close releases the font data. Faces created from the source report
// zero metrics and no glyphs afterwards. Close is idempotent.
func (s *FontSource) Close() error {
	s.state.Store(nil)
	return nil
}

// familyName picks the best available name from the font's name table.
func familyName(parsed ParsedFont) string {
	if name := parsed.Name(); name != "" {
		return name
	}
	if name := parsed.FullName(); name != "" {
		return name
	}
	return "Unknown Font"
}
