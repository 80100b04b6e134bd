package text

// SourceOption configures FontSource creation.
type SourceOption func(*sourceConfig)

// sourceConfig holds configuration for FontSource.
type sourceConfig struct {
	parserName string
}

// defaultSourceConfig returns the default source configuration.
func defaultSourceConfig() sourceConfig {
	return sourceConfig{
		parserName: defaultParserName,
	}
}

// WithParser specifies the font parser backend.
// The default is "ximage" which uses golang.org/x/image/font/opentype.
// Custom parsers can be registered with RegisterParser.
func WithParser(name string) SourceOption {
	return func(c *sourceConfig) {
		c.parserName = name
	}
}

// FaceOption configures Face creation.
type FaceOption func(*faceConfig)

// faceConfig holds configuration for Face.
type faceConfig struct {
	direction Direction
	language  string
}

// defaultFaceConfig returns the default face configuration.
func defaultFaceConfig() faceConfig {
	return faceConfig{
		direction: DirectionLTR,
		language:  "en",
	}
}

// WithDirection sets the text direction for the face.
func WithDirection(d Direction) FaceOption {
	return func(c *faceConfig) {
		c.direction = d
	}
}

// WithLanguage sets the language tag for the face (e.g., "en", "ja", "ar").
func WithLanguage(lang string) FaceOption {
	return func(c *faceConfig) {
		c.language = lang
	}
}

// LibraryOption configures a Library.
type LibraryOption func(*libraryConfig)

type libraryConfig struct {
	defaultFont string
	builtins    bool
}

func defaultLibraryConfig() libraryConfig {
	return libraryConfig{
		defaultFont: GoRegular,
		builtins:    true,
	}
}

// WithDefaultFont sets the font used for an empty font name.
func WithDefaultFont(name string) LibraryOption {
	return func(c *libraryConfig) {
		c.defaultFont = name
	}
}

// WithoutBuiltinFonts starts the library empty instead of with the Go fonts.
func WithoutBuiltinFonts() LibraryOption {
	return func(c *libraryConfig) {
		c.builtins = false
	}
}

// MeasurerOption configures a Measurer.
type MeasurerOption func(*Measurer)

// WithShaper sets the shaper. The default is the global shaper at the
// time of each call (see SetShaper).
func WithShaper(s Shaper) MeasurerOption {
	return func(m *Measurer) {
		m.shaper = s
	}
}

// WithBaseDirection sets the paragraph direction used to order
// mixed-direction text. The default is DirectionLTR.
func WithBaseDirection(d Direction) MeasurerOption {
	return func(m *Measurer) {
		m.base = d
	}
}
