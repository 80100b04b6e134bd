// Command twistdemo records a small map-like scene with text laid along a
// curved path and renders it to a PNG file.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/gogpu/drawlib"
	"github.com/gogpu/drawlib/recording"
	_ "github.com/gogpu/drawlib/recording/backends/raster"
)

func main() {
	var (
		width    = flag.Int("width", 800, "image width")
		height   = flag.Int("height", 600, "image height")
		output   = flag.String("output", "twistdemo.png", "output file")
		label    = flag.String("text", "The quick brown fox follows the river", "text laid along the path")
		pathFile = flag.String("path", "", "CBOR file with the label path commands")
		texture  = flag.String("texture", "", "image file used to texture the land polygon")
		font     = flag.String("font", drawlib.DefaultFontName, "font family")
		size     = flag.Float64("size", 22, "font size in pixels")
		valign   = flag.Float64("valign", 0.5, "vertical alignment of the text on the path")
		halign   = flag.Float64("halign", 0.5, "horizontal alignment of the text on the path")
		bounds   = flag.Bool("bounds", false, "outline the glyph bounding triangles")
		verbose  = flag.Bool("v", false, "log debug output to stderr")
	)
	flag.Parse()

	if *verbose {
		drawlib.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	backend, err := recording.NewBackend("raster")
	if err != nil {
		log.Fatalf("create backend: %v", err)
	}
	measurer, _ := backend.(drawlib.Measurer)

	river := riverPath(*width, *height)
	if *pathFile != "" {
		river, err = loadPath(*pathFile)
		if err != nil {
			log.Fatalf("load path: %v", err)
		}
	}

	textProps := drawlib.NewTextProperties(0.05, 0.1, 0.3)
	textProps.Font = *font
	textProps.FontSize = *size
	textProps.VAlign = *valign
	textProps.HAlign = *halign
	textProps.Outline = true
	textProps.Line = drawlib.RGBA{R: 1, G: 1, B: 1, A: 0.8}

	store := recording.NewStore(
		recording.WithSize(*width, *height),
		recording.WithMeasurer(measurer),
	)
	if err := recordScene(store, river, *label, textProps, *texture); err != nil {
		log.Fatalf("record scene: %v", err)
	}

	if *bounds && measurer != nil {
		twisted := drawlib.TwistedTextLabel{Text: *label, Path: river}
		tris, pathLen, textLen, err := store.TriangleBoundsTwistedText(twisted, textProps)
		if err != nil {
			log.Fatalf("bounds: %v", err)
		}
		if textLen > pathLen {
			log.Printf("text (%.1f) is longer than the path (%.1f) and will be truncated", textLen, pathLen)
		}
		outlines := make([]drawlib.Contour, len(tris))
		for i, t := range tris {
			outlines[i] = drawlib.Contour{t[0], t[1], t[2]}
		}
		lineProps := drawlib.NewLineProperties(1, 0, 0, 0.75)
		lineProps.ClosedLoop = true
		store.DrawLines(outlines, lineProps)
	}

	if err := store.Playback(backend); err != nil {
		log.Fatalf("render: %v", err)
	}

	fb, ok := backend.(recording.FileBackend)
	if !ok {
		log.Fatal("backend cannot save to file")
	}
	if err := fb.SaveToFile(*output); err != nil {
		log.Fatalf("save: %v", err)
	}

	log.Printf("Demo saved to %s (%dx%d, %d commands)\n", *output, *width, *height, store.Len())
}

// recordScene records land with a lake, the river and its labels.
func recordScene(store *recording.Store, river []drawlib.PathCommand, text string, props drawlib.TextProperties, texture string) error {
	w, h := float64(store.Width()), float64(store.Height())

	land := drawlib.NewShapeProperties(0.78, 0.86, 0.62)
	if texture != "" {
		store.LoadResources(recording.Resource{ID: "land", Filename: texture})
		land.ImageID = "land"
	}
	store.DrawPolygons([]drawlib.Polygon{{
		Outer: drawlib.Contour{
			drawlib.Pt(0, 0), drawlib.Pt(w, 0), drawlib.Pt(w, h), drawlib.Pt(0, h),
		},
		Holes: drawlib.Contours{circle(w*0.8, h*0.25, math.Min(w, h)*0.12, 48)},
	}}, land)

	lake := drawlib.NewShapeProperties(0.55, 0.75, 0.95)
	store.DrawPolygons([]drawlib.Polygon{{
		Outer: circle(w*0.8, h*0.25, math.Min(w, h)*0.12, 48),
	}}, lake)

	riverLine, _, err := drawlib.Flatten(river, drawlib.DefaultTolerance)
	if err != nil {
		return fmt.Errorf("flatten river: %w", err)
	}
	water := drawlib.NewLineProperties(0.55, 0.75, 0.95, props.Size()*1.6)
	water.Join = drawlib.LineJoinRound
	water.Cap = drawlib.LineCapRound
	store.DrawLines([]drawlib.Contour{riverLine}, water)

	if err := store.DrawTwistedText([]drawlib.TwistedTextLabel{{Text: text, Path: river}}, props); err != nil {
		return err
	}

	title := props
	title.FontSize = props.Size() * 1.5
	title.Outline = false
	title.HAlign, title.VAlign = 0, 0
	store.DrawText([]drawlib.TextLabel{{Text: "drawlib", X: 24, Y: 20}}, title)

	lakeLabel := props
	lakeLabel.Outline = false
	lakeLabel.HAlign, lakeLabel.VAlign = 0.5, 0.5
	store.DrawText([]drawlib.TextLabel{{Text: "Lake", X: w * 0.8, Y: h * 0.25, Angle: -0.2}}, lakeLabel)
	return nil
}

// riverPath returns a smooth path through a meandering set of points.
func riverPath(width, height int) []drawlib.PathCommand {
	w, h := float64(width), float64(height)
	points := drawlib.Contour{
		drawlib.Pt(0.05*w, 0.80*h),
		drawlib.Pt(0.25*w, 0.60*h),
		drawlib.Pt(0.45*w, 0.75*h),
		drawlib.Pt(0.62*w, 0.50*h),
		drawlib.Pt(0.72*w, 0.35*h),
	}
	return drawlib.FitBezierToPoints(points)
}

// loadPath reads label path commands in the CBOR wire format.
func loadPath(name string) ([]drawlib.PathCommand, error) {
	// #nosec G304 -- path file is provided on the command line
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	cmds, err := drawlib.UnmarshalCommands(data)
	if err != nil {
		return nil, err
	}
	if n := drawlib.CountSubpaths(cmds); n > 1 {
		log.Printf("%s has %d subpaths; only the first is used", name, n)
	}
	return cmds, nil
}

func circle(cx, cy, r float64, n int) drawlib.Contour {
	c := make(drawlib.Contour, n)
	for i := range c {
		a := 2 * math.Pi * float64(i) / float64(n)
		c[i] = drawlib.Pt(cx+r*math.Cos(a), cy+r*math.Sin(a))
	}
	return c
}
