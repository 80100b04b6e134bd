// Package recording provides the deferred drawing command buffer.
//
// A Store collects drawing commands (polygons, lines, straight text
// labels, twisted text labels) and resource loads in the order they were
// issued. Nothing is drawn until the store is played back to a Backend,
// which translates each command to its output format.
//
// # Basic Usage
//
//	store := recording.NewStore(recording.WithSize(800, 600))
//
//	poly := drawlib.Polygon{Outer: drawlib.Contour{{10, 10}, {200, 10}, {100, 150}}}
//	store.DrawPolygons([]drawlib.Polygon{poly}, drawlib.NewShapeProperties(1, 0, 0))
//
//	p := drawlib.NewPath()
//	p.MoveTo(20, 300)
//	p.CurveTo(200, 100, 400, 500, 600, 300)
//	props := drawlib.NewTextProperties(0, 0, 0)
//	props.FontSize = 32
//	err := store.DrawTwistedText([]drawlib.TwistedTextLabel{
//	    drawlib.NewTwistedTextLabel("along the curve", p),
//	}, props)
//
// # Playback to Backends
//
//	backend, _ := recording.NewBackend("raster")
//	if err := store.Playback(backend); err != nil {
//	    log.Fatal(err)
//	}
//	backend.(recording.FileBackend).SaveToFile("out.png")
//
// # Backend Registration
//
// Backends are registered using the database/sql driver pattern. Import a
// backend package with a blank identifier to register it:
//
//	import _ "github.com/gogpu/drawlib/recording/backends/raster"
//
// # Bounds Queries
//
// A store created WithMeasurer answers layout questions without drawing:
// TriangleBoundsText and TriangleBoundsTwistedText return the triangles
// covered by a label, which callers use for hit testing and collision
// checks.
package recording
