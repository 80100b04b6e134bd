package recording

import (
	"fmt"

	"github.com/gogpu/drawlib"
)

// Store is an append-only buffer of drawing commands.
// Commands are kept in the order they were added and replayed in that
// order by Playback.
//
// Store is not safe for concurrent use. The slice returned by Commands
// must be treated as read-only.
type Store struct {
	width, height int
	commands      []Command
	measurer      drawlib.Measurer
	tolerance     float64
}

// NewStore creates an empty store.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		width:     DefaultWidth,
		height:    DefaultHeight,
		tolerance: drawlib.DefaultTolerance,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.commands == nil {
		s.commands = make([]Command, 0, 16)
	}
	return s
}

// Width returns the canvas width passed to backends.
func (s *Store) Width() int {
	return s.width
}

// Height returns the canvas height passed to backends.
func (s *Store) Height() int {
	return s.height
}

// Commands returns the recorded commands.
func (s *Store) Commands() []Command {
	return s.commands
}

// Len returns the number of recorded commands.
func (s *Store) Len() int {
	return len(s.commands)
}

// Clear removes all commands.
func (s *Store) Clear() {
	clear(s.commands)
	s.commands = s.commands[:0]
}

// DrawPolygons records a fill of polygons with holes.
func (s *Store) DrawPolygons(polygons []drawlib.Polygon, props drawlib.ShapeProperties) {
	cloned := make([]drawlib.Polygon, len(polygons))
	for i, p := range polygons {
		cloned[i] = p.Clone()
	}
	s.commands = append(s.commands, DrawPolygonsCommand{Polygons: cloned, Props: props})
}

// DrawLines records a stroke of polylines.
func (s *Store) DrawLines(lines []drawlib.Contour, props drawlib.LineProperties) {
	cloned := make([]drawlib.Contour, len(lines))
	for i, l := range lines {
		cloned[i] = l.Clone()
	}
	s.commands = append(s.commands, DrawLinesCommand{Lines: cloned, Props: props})
}

// DrawText records straight text labels.
func (s *Store) DrawText(labels []drawlib.TextLabel, props drawlib.TextProperties) {
	cloned := make([]drawlib.TextLabel, len(labels))
	copy(cloned, labels)
	s.commands = append(s.commands, DrawTextCommand{Labels: cloned, Props: props})
}

// DrawTwistedText records text laid along paths. Label paths are
// validated up front; a malformed path records nothing.
func (s *Store) DrawTwistedText(labels []drawlib.TwistedTextLabel, props drawlib.TextProperties) error {
	cloned := make([]drawlib.TwistedTextLabel, len(labels))
	for i, l := range labels {
		if err := drawlib.Validate(l.Path); err != nil {
			return fmt.Errorf("recording: twisted label %d: %w", i, err)
		}
		cloned[i] = l.Clone()
	}
	s.commands = append(s.commands, DrawTwistedTextCommand{Labels: cloned, Props: props})
	return nil
}

// LoadResources records image loads.
func (s *Store) LoadResources(resources ...Resource) {
	cloned := make([]Resource, len(resources))
	copy(cloned, resources)
	s.commands = append(s.commands, LoadResourcesCommand{Resources: cloned})
}

// UnloadResources records image releases.
func (s *Store) UnloadResources(ids ...string) {
	cloned := make([]string, len(ids))
	copy(cloned, ids)
	s.commands = append(s.commands, UnloadResourcesCommand{IDs: cloned})
}

// Playback replays the commands to backend between Begin and End.
// The first backend error stops playback and is returned with the index
// and type of the failing command.
func (s *Store) Playback(backend Backend) error {
	if err := backend.Begin(s.width, s.height); err != nil {
		return fmt.Errorf("recording: begin: %w", err)
	}

	for i, cmd := range s.commands {
		var err error
		switch c := cmd.(type) {
		case DrawPolygonsCommand:
			err = backend.DrawPolygons(c.Polygons, c.Props)
		case DrawLinesCommand:
			err = backend.DrawLines(c.Lines, c.Props)
		case DrawTextCommand:
			err = backend.DrawText(c.Labels, c.Props)
		case DrawTwistedTextCommand:
			err = backend.DrawTwistedText(c.Labels, c.Props)
		case LoadResourcesCommand:
			err = backend.LoadResources(c.Resources)
		case UnloadResourcesCommand:
			err = backend.UnloadResources(c.IDs)
		default:
			err = fmt.Errorf("%w: %T", ErrUnknownCommand, cmd)
		}
		if err != nil {
			return fmt.Errorf("recording: command %d (%s): %w", i, cmd.Type(), err)
		}
	}

	drawlib.Logger().Debug("recording: playback complete",
		"backend", fmt.Sprintf("%T", backend), "commands", len(s.commands))
	return backend.End()
}

// TriangleBoundsText returns the triangles covered by a straight label.
func (s *Store) TriangleBoundsText(label drawlib.TextLabel, props drawlib.TextProperties) (drawlib.TwistedTriangles, error) {
	if s.measurer == nil {
		return nil, ErrNoMeasurer
	}
	glyphs, err := s.measurer.MeasureGlyphs(label.Text, props)
	if err != nil {
		return nil, fmt.Errorf("recording: measure %q: %w", label.Text, err)
	}
	return drawlib.LabelBounds(label, glyphs, props.Alignment())
}

// TriangleBoundsTwistedText lays a twisted label along its path and
// returns the triangles of the placed glyphs together with the path
// length and the full text length. Glyphs that do not fit are left out
// of the triangles; compare the lengths to detect truncation.
func (s *Store) TriangleBoundsTwistedText(label drawlib.TwistedTextLabel, props drawlib.TextProperties) (tris drawlib.TwistedTriangles, pathLength, textLength float64, err error) {
	if s.measurer == nil {
		return nil, 0, 0, ErrNoMeasurer
	}
	glyphs, err := s.measurer.MeasureGlyphs(label.Text, props)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("recording: measure %q: %w", label.Text, err)
	}
	placement, err := drawlib.PlaceTextOnPath(label.Path, s.tolerance, glyphs, props.Alignment())
	if err != nil {
		return nil, 0, 0, err
	}
	return placement.Triangles(), placement.PathLength, placement.TextLength, nil
}
