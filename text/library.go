package text

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// Names of the fonts every Library starts with.
const (
	GoRegular = "Go"
	GoMono    = "Go Mono"
)

// Library maps font family names to font sources. Names are matched
// case-insensitively.
//
// Library is safe for concurrent use.
type Library struct {
	mu          sync.RWMutex
	sources     map[string]*FontSource
	names       map[string]string // lower-case key to registered name
	defaultFont string
}

// NewLibrary creates a Library holding the Go fonts under GoRegular and
// GoMono, unless WithoutBuiltinFonts is given.
func NewLibrary(opts ...LibraryOption) (*Library, error) {
	config := defaultLibraryConfig()
	for _, opt := range opts {
		opt(&config)
	}

	lib := &Library{
		sources:     make(map[string]*FontSource),
		names:       make(map[string]string),
		defaultFont: config.defaultFont,
	}
	if config.builtins {
		if err := lib.Load(GoRegular, goregular.TTF); err != nil {
			return nil, err
		}
		if err := lib.Load(GoMono, gomono.TTF); err != nil {
			return nil, err
		}
	}
	return lib, nil
}

// Register adds src under name, replacing any source with the same name.
func (l *Library) Register(name string, src *FontSource) {
	key := strings.ToLower(name)
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sources[key] = src
	l.names[key] = name
}

// Load parses font data and registers it under name.
func (l *Library) Load(name string, data []byte, opts ...SourceOption) error {
	src, err := NewFontSource(data, opts...)
	if err != nil {
		return fmt.Errorf("text: load font %q: %w", name, err)
	}
	l.Register(name, src)
	return nil
}

// LoadFile reads a font file and registers it under name.
func (l *Library) LoadFile(name, path string, opts ...SourceOption) error {
	src, err := NewFontSourceFromFile(path, opts...)
	if err != nil {
		return fmt.Errorf("text: load font %q: %w", name, err)
	}
	l.Register(name, src)
	return nil
}

// Source returns the source registered under name. An empty name selects
// the default font.
func (l *Library) Source(name string) (*FontSource, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if name == "" {
		name = l.defaultFont
	}
	src, ok := l.sources[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFont, name)
	}
	return src, nil
}

// Face returns a face of the named font at size pixels per em.
func (l *Library) Face(name string, size float64, opts ...FaceOption) (Face, error) {
	src, err := l.Source(name)
	if err != nil {
		return nil, err
	}
	return src.Face(size, opts...), nil
}

// Names returns the registered font names in sorted order.
func (l *Library) Names() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	names := make([]string, 0, len(l.names))
	for _, name := range l.names {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Close closes every registered source and empties the library.
func (l *Library) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	for key, src := range l.sources {
		_ = src.Close()
		delete(l.sources, key)
		delete(l.names, key)
	}
	return nil
}
