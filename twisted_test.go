package drawlib

import (
	"errors"
	"math"
	"reflect"
	"sync"
	"testing"
)

func glyphs(advances ...float64) []GlyphMetric {
	out := make([]GlyphMetric, len(advances))
	for i, a := range advances {
		out[i] = GlyphMetric{Rune: rune('a' + i), Advance: a, Ascent: 8, Descent: 2}
	}
	return out
}

func straightPath(t *testing.T, length float64) (Contour, ArcLengthTable) {
	t.Helper()
	c, l, err := Flatten([]PathCommand{MoveTo{Pt(0, 0)}, LineTo{Pt(length, 0)}}, 0)
	if err != nil {
		t.Fatalf("Flatten: %v", err)
	}
	return c, l
}

func TestPlaceAlongPathTwoGlyphs(t *testing.T) {
	c, l := straightPath(t, 100)

	p, err := PlaceAlongPath(c, l, glyphs(20, 30), Alignment{})
	if err != nil {
		t.Fatalf("PlaceAlongPath: %v", err)
	}
	if p.PathLength != 100 || p.TextLength != 50 {
		t.Errorf("lengths = (%v, %v), want (100, 50)", p.PathLength, p.TextLength)
	}
	if p.Placed() != 2 || p.Truncated() {
		t.Fatalf("placed %d glyphs (truncated %v), want 2", p.Placed(), p.Truncated())
	}

	wantSpans := []Span{{0, 20}, {20, 50}}
	if !reflect.DeepEqual(p.Spans, wantSpans) {
		t.Errorf("spans = %v, want %v", p.Spans, wantSpans)
	}

	// Height 10 above the path (y up is negative).
	want := []Quad{
		{Pt(0, 0), Pt(0, -10), Pt(20, 0), Pt(20, -10)},
		{Pt(20, 0), Pt(20, -10), Pt(50, 0), Pt(50, -10)},
	}
	for i, q := range p.Quads {
		for k := range q {
			if !pointNear(q[k], want[i][k], eps) {
				t.Errorf("quad %d corner %d = %v, want %v", i, k, q[k], want[i][k])
			}
		}
	}
}

func TestPlaceAlongPathTruncates(t *testing.T) {
	c, l := straightPath(t, 40)

	p, err := PlaceAlongPath(c, l, glyphs(20, 30), Alignment{})
	if err != nil {
		t.Fatalf("PlaceAlongPath: %v", err)
	}
	if p.Placed() != 1 {
		t.Fatalf("placed %d glyphs, want 1", p.Placed())
	}
	if !p.Truncated() {
		t.Error("Truncated() = false, want true")
	}
	if p.TextLength != 50 || p.PathLength != 40 {
		t.Errorf("lengths = (%v, %v), want (40, 50)", p.PathLength, p.TextLength)
	}
	if got := len(p.Triangles()); got != 2 {
		t.Errorf("Triangles() has %d triangles, want 2", got)
	}
}

func TestPlaceAlongPathTruncationLaw(t *testing.T) {
	path := []PathCommand{MoveTo{Pt(0, 0)}, CurveTo{Pt(50, -80), Pt(150, 80), Pt(200, 0)}}
	contour, lengths, err := Flatten(path, 0.1)
	if err != nil {
		t.Fatal(err)
	}
	total := lengths.Total()

	for _, halign := range []float64{0, 0.3, 1} {
		for n := 1; n <= 30; n++ {
			advs := make([]float64, n)
			for i := range advs {
				advs[i] = 7 + float64(i%3)*2.5
			}
			p, err := PlaceAlongPath(contour, lengths, glyphs(advs...), Alignment{HAlign: halign})
			if err != nil {
				t.Fatal(err)
			}
			s0 := halign * math.Max(0, total-p.TextLength)
			if p.TextLength > total-s0+1e-9 && p.Placed() >= n {
				t.Errorf("halign %v n %d: text %v > path %v but all glyphs placed", halign, n, p.TextLength, total)
			}
			if p.TextLength <= total && p.Placed() != n {
				t.Errorf("halign %v n %d: text fits but only %d placed", halign, n, p.Placed())
			}
			for i, sp := range p.Spans {
				if sp.End > total+1e-9 {
					t.Errorf("halign %v n %d: glyph %d ends at %v beyond %v", halign, n, i, sp.End, total)
				}
			}
		}
	}
}

func TestPlaceAlongPathHorizontalAlignment(t *testing.T) {
	c, l := straightPath(t, 100)
	tests := []struct {
		halign    float64
		wantStart float64
	}{
		{0, 0},
		{0.5, 25},
		{1, 50},
		{-3, 0},
		{7, 50},
	}
	for _, tt := range tests {
		p, err := PlaceAlongPath(c, l, glyphs(20, 30), Alignment{HAlign: tt.halign})
		if err != nil {
			t.Fatal(err)
		}
		if !near(p.Spans[0].Start, tt.wantStart, eps) {
			t.Errorf("halign %v: first glyph starts at %v, want %v", tt.halign, p.Spans[0].Start, tt.wantStart)
		}
		if !pointNear(p.Quads[0][LeadingBottom], Pt(tt.wantStart, 0), eps) {
			t.Errorf("halign %v: leading corner %v", tt.halign, p.Quads[0][LeadingBottom])
		}
	}

	p, err := PlaceAlongPath(c, l, glyphs(20, 30), Alignment{HAlign: 1})
	if err != nil {
		t.Fatal(err)
	}
	if last := p.Spans[len(p.Spans)-1]; !near(last.End, p.PathLength, eps) {
		t.Errorf("halign 1: last glyph ends at %v, want %v", last.End, p.PathLength)
	}
}

func TestPlaceAlongPathRightAlignedOnCurve(t *testing.T) {
	path := []PathCommand{MoveTo{Pt(0, 0)}, CurveTo{Pt(33, 100), Pt(66, 100), Pt(100, 0)}}
	contour, lengths, err := Flatten(path, 0.1)
	if err != nil {
		t.Fatal(err)
	}
	// Advances that do not sum exactly in binary floating point.
	g := glyphs(0.1, 0.2, 0.3, 11.7, 13.1)
	p, err := PlaceAlongPath(contour, lengths, g, Alignment{HAlign: 1})
	if err != nil {
		t.Fatal(err)
	}
	if p.Truncated() {
		t.Fatalf("right-aligned text that fits was truncated: %d of %d", p.Placed(), len(g))
	}
	if last := p.Spans[len(p.Spans)-1]; !near(last.End, p.PathLength, 1e-9) {
		t.Errorf("last glyph ends at %v, want %v", last.End, p.PathLength)
	}
	end := p.Quads[len(p.Quads)-1][TrailingBottom]
	if !pointNear(end, Pt(100, 0), 1e-6) {
		t.Errorf("trailing corner = %v, want path end (100,0)", end)
	}
}

func TestPlaceAlongPathVerticalAlignment(t *testing.T) {
	c, l := straightPath(t, 100)
	tests := []struct {
		valign           float64
		wantBot, wantTop float64
	}{
		{0, 0, -10},
		{0.5, 5, -5},
		{1, 10, 0},
	}
	for _, tt := range tests {
		p, err := PlaceAlongPath(c, l, glyphs(20), Alignment{VAlign: tt.valign})
		if err != nil {
			t.Fatal(err)
		}
		q := p.Quads[0]
		if !near(q[LeadingBottom].Y, tt.wantBot, eps) || !near(q[LeadingTop].Y, tt.wantTop, eps) {
			t.Errorf("valign %v: bottom y %v top y %v, want %v %v",
				tt.valign, q[LeadingBottom].Y, q[LeadingTop].Y, tt.wantBot, tt.wantTop)
		}
	}
}

func TestPlaceAlongPathFollowsCorner(t *testing.T) {
	cmds := []PathCommand{MoveTo{Pt(0, 0)}, LineTo{Pt(10, 0)}, LineTo{Pt(10, 10)}}
	p, err := PlaceTextOnPath(cmds, 0, glyphs(5, 5, 5), Alignment{})
	if err != nil {
		t.Fatal(err)
	}
	if p.Placed() != 3 {
		t.Fatalf("placed %d, want 3", p.Placed())
	}

	q := p.Quads[2]
	if !pointNear(q[LeadingBottom], Pt(10, 0), eps) {
		t.Errorf("leading bottom = %v, want (10,0)", q[LeadingBottom])
	}
	// The trailing edge lies on the downward segment, whose normal points right.
	if !pointNear(q[TrailingBottom], Pt(10, 5), eps) {
		t.Errorf("trailing bottom = %v, want (10,5)", q[TrailingBottom])
	}
	if !pointNear(q[TrailingTop], Pt(20, 5), eps) {
		t.Errorf("trailing top = %v, want (20,5)", q[TrailingTop])
	}
}

func TestPlaceAlongPathDegenerateSegment(t *testing.T) {
	contour := Contour{Pt(0, 0), Pt(0, 0), Pt(0, 10)}
	lengths := ArcLengthTable{0, 0, 10}

	p, err := PlaceAlongPath(contour, lengths, glyphs(5), Alignment{})
	if err != nil {
		t.Fatal(err)
	}
	q := p.Quads[0]
	// First glyph on a zero-length segment falls back to the horizontal axis.
	if !pointNear(q[LeadingTop], Pt(0, -10), eps) {
		t.Errorf("leading top = %v, want (0,-10)", q[LeadingTop])
	}
	if !pointNear(q[TrailingTop], Pt(10, 5), eps) {
		t.Errorf("trailing top = %v, want (10,5)", q[TrailingTop])
	}
}

func TestPlaceAlongPathErrors(t *testing.T) {
	c, l := straightPath(t, 100)
	tests := []struct {
		name    string
		contour Contour
		lengths ArcLengthTable
		glyphs  []GlyphMetric
		want    error
	}{
		{"no glyphs", c, l, nil, ErrEmptyText},
		{"single point", Contour{Pt(1, 1)}, ArcLengthTable{0}, glyphs(1), ErrEmptyPath},
		{"zero length", Contour{Pt(1, 1), Pt(1, 1)}, ArcLengthTable{0, 0}, glyphs(1), ErrEmptyPath},
		{"mismatch", c, ArcLengthTable{0}, glyphs(1), ErrLengthMismatch},
		{"nan advance", c, l, glyphs(10, math.NaN(), 10), ErrInvalidMetric},
		{"infinite advance", c, l, glyphs(math.Inf(1)), ErrInvalidMetric},
		{"negative infinite advance", c, l, glyphs(math.Inf(-1), 5), ErrInvalidMetric},
		{"nan ascent", c, l, []GlyphMetric{{Rune: 'a', Advance: 5, Ascent: math.NaN()}}, ErrInvalidMetric},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := PlaceAlongPath(tt.contour, tt.lengths, tt.glyphs, Alignment{})
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := PlaceTextOnPath(nil, 0, glyphs(1), Alignment{}); !errors.Is(err, ErrEmptyPath) {
		t.Errorf("PlaceTextOnPath(nil) error = %v, want ErrEmptyPath", err)
	}
	if _, err := PlaceTextOnPath(nil, 0, nil, Alignment{}); !errors.Is(err, ErrEmptyText) {
		t.Errorf("PlaceTextOnPath(no glyphs) error = %v, want ErrEmptyText", err)
	}
}

func TestPlaceAlongPathCornersOnCurve(t *testing.T) {
	p0, p1, p2, p3 := Pt(0, 0), Pt(40, -60), Pt(120, 60), Pt(160, 0)
	const tol = 0.1
	p, err := PlaceTextOnPath([]PathCommand{MoveTo{p0}, CurveTo{p1, p2, p3}}, tol, glyphs(10, 12, 9, 14, 8), Alignment{})
	if err != nil {
		t.Fatal(err)
	}
	samples := sampleCubic(p0, p1, p2, p3, 20000)
	for i, q := range p.Quads {
		for _, corner := range []Point{q[LeadingBottom], q[TrailingBottom]} {
			best := math.Inf(1)
			for _, s := range samples {
				best = math.Min(best, corner.Distance(s))
			}
			if best > tol+0.02 {
				t.Errorf("glyph %d baseline corner %v is %v from the curve", i, corner, best)
			}
		}
		// Box height is preserved by the unit normal.
		if h := q[LeadingBottom].Distance(q[LeadingTop]); !near(h, 10, 1e-9) {
			t.Errorf("glyph %d leading edge height = %v, want 10", i, h)
		}
	}
}

func TestPlaceAlongPathDoesNotMutateInput(t *testing.T) {
	c, l := straightPath(t, 100)
	cc, lc := c.Clone(), append(ArcLengthTable(nil), l...)
	g := glyphs(10, 20)
	gc := append([]GlyphMetric(nil), g...)

	if _, err := PlaceAlongPath(c, l, g, Alignment{HAlign: 0.5, VAlign: 0.5}); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(c, cc) || !reflect.DeepEqual(l, lc) || !reflect.DeepEqual(g, gc) {
		t.Error("PlaceAlongPath modified its inputs")
	}
}

func TestPlaceTextOnPathConcurrent(t *testing.T) {
	cmds := []PathCommand{MoveTo{Pt(0, 0)}, CurveTo{Pt(33, 100), Pt(66, 100), Pt(100, 0)}}
	g := glyphs(5, 6, 7, 8, 9, 10)
	want, err := PlaceTextOnPath(cmds, 0.1, g, Alignment{HAlign: 0.5})
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	errs := make(chan string, 32)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := PlaceTextOnPath(cmds, 0.1, g, Alignment{HAlign: 0.5})
			if err != nil {
				errs <- err.Error()
				return
			}
			if !reflect.DeepEqual(got, want) {
				errs <- "concurrent placement differs from sequential placement"
			}
		}()
	}
	wg.Wait()
	close(errs)
	for e := range errs {
		t.Error(e)
	}
}

func TestTextPlacementTriangles(t *testing.T) {
	c, l := straightPath(t, 100)
	p, err := PlaceAlongPath(c, l, glyphs(10, 10), Alignment{})
	if err != nil {
		t.Fatal(err)
	}
	tris := p.Triangles()
	if len(tris) != 4 {
		t.Fatalf("got %d triangles, want 4", len(tris))
	}
	q := p.Quads[0]
	if tris[0] != (Triangle{q[LeadingBottom], q[LeadingTop], q[TrailingBottom]}) {
		t.Errorf("first triangle = %v", tris[0])
	}
	if tris[1] != (Triangle{q[TrailingTop], q[TrailingBottom], q[LeadingTop]}) {
		t.Errorf("second triangle = %v", tris[1])
	}
	if !tris.Contains(Pt(5, -5)) {
		t.Error("triangles should contain the centre of the first glyph")
	}
	if tris.Contains(Pt(5, 5)) {
		t.Error("triangles should not contain a point below the path")
	}
	if b := tris.Bounds(); b.Min != Pt(0, -10) || b.Max != Pt(20, 0) {
		t.Errorf("Bounds() = %v", b)
	}
}
