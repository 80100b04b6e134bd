package recording

import (
	"errors"
	"fmt"

	"github.com/gogpu/drawlib"
)

// mockBackend records the calls it receives.
type mockBackend struct {
	name          string
	width, height int
	calls         []string
	failOn        string
	polygons      []drawlib.Polygon
	twisted       []drawlib.TwistedTextLabel
	loaded        []Resource
	unloaded      []string
}

var errMockFailure = errors.New("mock failure")

func newMockBackend(name string) *mockBackend {
	return &mockBackend{name: name}
}

func (b *mockBackend) record(call string) error {
	b.calls = append(b.calls, call)
	if call == b.failOn {
		return errMockFailure
	}
	return nil
}

func (b *mockBackend) Begin(width, height int) error {
	b.width, b.height = width, height
	return b.record("Begin")
}

func (b *mockBackend) End() error { return b.record("End") }

func (b *mockBackend) DrawPolygons(polygons []drawlib.Polygon, _ drawlib.ShapeProperties) error {
	b.polygons = append(b.polygons, polygons...)
	return b.record("DrawPolygons")
}

func (b *mockBackend) DrawLines(_ []drawlib.Contour, _ drawlib.LineProperties) error {
	return b.record("DrawLines")
}

func (b *mockBackend) DrawText(_ []drawlib.TextLabel, _ drawlib.TextProperties) error {
	return b.record("DrawText")
}

func (b *mockBackend) DrawTwistedText(labels []drawlib.TwistedTextLabel, _ drawlib.TextProperties) error {
	b.twisted = append(b.twisted, labels...)
	return b.record("DrawTwistedText")
}

func (b *mockBackend) LoadResources(resources []Resource) error {
	b.loaded = append(b.loaded, resources...)
	return b.record("LoadResources")
}

func (b *mockBackend) UnloadResources(ids []string) error {
	b.unloaded = append(b.unloaded, ids...)
	return b.record("UnloadResources")
}

// fixedMeasurer gives every rune the same box.
type fixedMeasurer struct {
	advance, ascent, descent float64
}

func (m fixedMeasurer) MeasureGlyphs(s string, _ drawlib.TextProperties) ([]drawlib.GlyphMetric, error) {
	if s == "" {
		return nil, drawlib.ErrEmptyText
	}
	var out []drawlib.GlyphMetric
	for _, r := range s {
		out = append(out, drawlib.GlyphMetric{Rune: r, Advance: m.advance, Ascent: m.ascent, Descent: m.descent})
	}
	return out, nil
}

// foreignCommand is a Command that Playback does not know.
type foreignCommand struct{}

func (foreignCommand) Type() CommandType { return CommandType(200) }

func (c foreignCommand) String() string { return fmt.Sprintf("foreign(%d)", c.Type()) }
