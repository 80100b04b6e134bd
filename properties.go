package drawlib

import "strings"

// ShapeProperties describes how filled polygons are painted.
type ShapeProperties struct {
	// Fill is the solid fill color, used when ImageID is empty or the
	// image is not loaded.
	Fill RGBA
	// ImageID names a loaded image resource used as a repeating texture.
	ImageID string
	// TexOffset translates the texture origin.
	TexOffset Point
}

// NewShapeProperties returns opaque fill properties with the given color.
func NewShapeProperties(r, g, b float64) ShapeProperties {
	return ShapeProperties{Fill: RGB(r, g, b)}
}

// Textured reports whether the shape is painted with an image.
func (p ShapeProperties) Textured() bool {
	return p.ImageID != ""
}

// LineJoin specifies the shape at the corners of stroked lines.
type LineJoin uint8

const (
	// LineJoinMiter extends outer edges to meet at a point.
	LineJoinMiter LineJoin = iota
	// LineJoinRound rounds corners with an arc.
	LineJoinRound
	// LineJoinBevel cuts corners with a straight edge.
	LineJoinBevel
)

// String returns the name of the join.
func (j LineJoin) String() string {
	switch j {
	case LineJoinRound:
		return "round"
	case LineJoinBevel:
		return "bevel"
	default:
		return "miter"
	}
}

// ParseLineJoin parses "miter", "round", or "bevel" (case-insensitive).
// Unknown names yield LineJoinMiter.
func ParseLineJoin(s string) LineJoin {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "round":
		return LineJoinRound
	case "bevel":
		return LineJoinBevel
	default:
		return LineJoinMiter
	}
}

// LineCap specifies the shape at the ends of open stroked lines.
type LineCap uint8

const (
	// LineCapButt ends the stroke flat at the endpoint.
	LineCapButt LineCap = iota
	// LineCapRound ends the stroke with a half circle.
	LineCapRound
	// LineCapSquare ends the stroke with a half square past the endpoint.
	LineCapSquare
)

// String returns the name of the cap.
func (c LineCap) String() string {
	switch c {
	case LineCapRound:
		return "round"
	case LineCapSquare:
		return "square"
	default:
		return "butt"
	}
}

// ParseLineCap parses "butt", "round", or "square" (case-insensitive).
// Unknown names yield LineCapButt.
func ParseLineCap(s string) LineCap {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "round":
		return LineCapRound
	case "square":
		return LineCapSquare
	default:
		return LineCapButt
	}
}

// LineProperties describes how lines are stroked.
type LineProperties struct {
	Color      RGBA
	Width      float64
	ClosedLoop bool
	Join       LineJoin
	Cap        LineCap
}

// NewLineProperties returns opaque stroke properties.
func NewLineProperties(r, g, b, width float64) LineProperties {
	return LineProperties{Color: RGB(r, g, b), Width: width}
}

const (
	// DefaultFontName is the font family used when TextProperties.Font is empty.
	DefaultFontName = "Go"

	// DefaultFontSize is the font size in pixels used when
	// TextProperties.FontSize is not positive.
	DefaultFontSize = 12.0
)

// TextProperties describes how labels are rendered and aligned.
type TextProperties struct {
	// Line is the outline color.
	Line RGBA
	// Fill is the glyph fill color.
	Fill RGBA
	// Font is the font family name resolved by the Measurer.
	Font string
	// FontSize is the em size in pixels.
	FontSize float64
	// Outline enables stroking glyph outlines with Line and LineWidth.
	Outline bool
	// Filled enables filling glyphs with Fill.
	Filled bool
	// LineWidth is the outline stroke width.
	LineWidth float64
	// HAlign is 0 for left/start aligned text, 1 for right/end aligned.
	HAlign float64
	// VAlign is 0 for top aligned text, 1 for bottom aligned. On a path,
	// 0 places the path along the bottom edge of the text and 1 along the
	// top edge.
	VAlign float64
}

// NewTextProperties returns filled text properties with the default font.
func NewTextProperties(r, g, b float64) TextProperties {
	return TextProperties{
		Line:      Black,
		Fill:      RGB(r, g, b),
		Font:      DefaultFontName,
		FontSize:  DefaultFontSize,
		Filled:    true,
		LineWidth: 1,
	}
}

// Size returns the font size, or DefaultFontSize if unset.
func (p TextProperties) Size() float64 {
	if p.FontSize > 0 {
		return p.FontSize
	}
	return DefaultFontSize
}

// FontName returns the font family, or DefaultFontName if unset.
func (p TextProperties) FontName() string {
	if p.Font != "" {
		return p.Font
	}
	return DefaultFontName
}

// Alignment returns the alignment used by PlaceAlongPath.
func (p TextProperties) Alignment() Alignment {
	return Alignment{VAlign: p.VAlign, HAlign: p.HAlign}
}
