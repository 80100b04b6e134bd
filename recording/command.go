package recording

import (
	"github.com/gogpu/drawlib"
)

// CommandType identifies the type of a command.
type CommandType uint8

const (
	CmdDrawPolygons    CommandType = iota // Fill polygons with holes
	CmdDrawLines                          // Stroke polylines
	CmdDrawText                           // Draw straight text labels
	CmdDrawTwistedText                    // Draw text along paths
	CmdLoadResources                      // Load image resources
	CmdUnloadResources                    // Release image resources
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdDrawPolygons:    "DrawPolygons",
	CmdDrawLines:       "DrawLines",
	CmdDrawText:        "DrawText",
	CmdDrawTwistedText: "DrawTwistedText",
	CmdLoadResources:   "LoadResources",
	CmdUnloadResources: "UnloadResources",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
// Commands own their data: the store clones every input when a command
// is recorded, so later changes by the caller do not reach the buffer.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// Resource names an image file that drawing commands refer to by ID.
type Resource struct {
	ID       string
	Filename string
}

// DrawPolygonsCommand fills polygons, holes excluded.
type DrawPolygonsCommand struct {
	Polygons []drawlib.Polygon
	Props    drawlib.ShapeProperties
}

// Type implements Command.
func (DrawPolygonsCommand) Type() CommandType { return CmdDrawPolygons }

// DrawLinesCommand strokes polylines.
type DrawLinesCommand struct {
	Lines []drawlib.Contour
	Props drawlib.LineProperties
}

// Type implements Command.
func (DrawLinesCommand) Type() CommandType { return CmdDrawLines }

// DrawTextCommand draws straight text labels.
type DrawTextCommand struct {
	Labels []drawlib.TextLabel
	Props  drawlib.TextProperties
}

// Type implements Command.
func (DrawTextCommand) Type() CommandType { return CmdDrawText }

// DrawTwistedTextCommand draws text whose bottom edge follows a path.
type DrawTwistedTextCommand struct {
	Labels []drawlib.TwistedTextLabel
	Props  drawlib.TextProperties
}

// Type implements Command.
func (DrawTwistedTextCommand) Type() CommandType { return CmdDrawTwistedText }

// LoadResourcesCommand makes images available under their IDs.
type LoadResourcesCommand struct {
	Resources []Resource
}

// Type implements Command.
func (LoadResourcesCommand) Type() CommandType { return CmdLoadResources }

// UnloadResourcesCommand releases images by ID.
type UnloadResourcesCommand struct {
	IDs []string
}

// Type implements Command.
func (UnloadResourcesCommand) Type() CommandType { return CmdUnloadResources }
