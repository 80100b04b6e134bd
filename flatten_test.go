package drawlib

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"strings"
	"testing"
)

const eps = 1e-9

func near(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func pointNear(a, b Point, tol float64) bool {
	return near(a.X, b.X, tol) && near(a.Y, b.Y, tol)
}

// distanceToPolyline returns the distance from p to the nearest segment of c.
func distanceToPolyline(p Point, c Contour) float64 {
	best := math.Inf(1)
	for i := 0; i+1 < len(c); i++ {
		best = math.Min(best, distanceToSegment(p, c[i], c[i+1]))
	}
	return best
}

func sampleCubic(p0, p1, p2, p3 Point, n int) []Point {
	out := make([]Point, n+1)
	for i := 0; i <= n; i++ {
		out[i] = CubicPoint(p0, p1, p2, p3, float64(i)/float64(n))
	}
	return out
}

func checkTable(t *testing.T, c Contour, table ArcLengthTable) {
	t.Helper()
	if len(table) != len(c) {
		t.Fatalf("table has %d entries, contour has %d points", len(table), len(c))
	}
	if table[0] != 0 {
		t.Errorf("table[0] = %v, want 0", table[0])
	}
	for i := 1; i < len(table); i++ {
		if table[i] < table[i-1] {
			t.Errorf("table not monotone at %d: %v < %v", i, table[i], table[i-1])
		}
		if !near(table[i]-table[i-1], c[i-1].Distance(c[i]), 1e-9) {
			t.Errorf("table step %d = %v, want segment length %v", i, table[i]-table[i-1], c[i-1].Distance(c[i]))
		}
	}
}

func TestFlattenStraightLine(t *testing.T) {
	cmds := []PathCommand{MoveTo{Pt(0, 0)}, LineTo{Pt(100, 0)}}

	contour, table, err := Flatten(cmds, 1)
	if err != nil {
		t.Fatalf("Flatten: %v", err)
	}

	want := Contour{Pt(0, 0), Pt(100, 0)}
	if len(contour) != len(want) {
		t.Fatalf("contour = %v, want %v", contour, want)
	}
	for i := range want {
		if contour[i] != want[i] {
			t.Errorf("contour[%d] = %v, want %v", i, contour[i], want[i])
		}
	}
	if len(table) != 2 || table[0] != 0 || table[1] != 100 {
		t.Errorf("table = %v, want [0 100]", table)
	}
	if table.Total() != 100 {
		t.Errorf("Total() = %v, want 100", table.Total())
	}
}

func TestFlattenCollapsesZeroLengthSegments(t *testing.T) {
	cmds := []PathCommand{
		MoveTo{Pt(0, 0)},
		LineTo{Pt(0, 0)},
		LineTo{Pt(10, 0)},
		LineTo{Pt(10, 0)},
		RelLineTo{Pt(0, 0)},
		CurveTo{Pt(10, 0), Pt(10, 0), Pt(10, 0)},
		LineTo{Pt(10, 10)},
	}

	contour, table, err := Flatten(cmds, 0.1)
	if err != nil {
		t.Fatalf("Flatten: %v", err)
	}
	want := Contour{Pt(0, 0), Pt(10, 0), Pt(10, 10)}
	if len(contour) != len(want) {
		t.Fatalf("contour = %v, want %v", contour, want)
	}
	for i := 1; i < len(contour); i++ {
		if contour[i] == contour[i-1] {
			t.Errorf("duplicate consecutive point at %d: %v", i, contour[i])
		}
	}
	checkTable(t, contour, table)
}

func TestFlattenRelativeCommands(t *testing.T) {
	cmds := []PathCommand{
		MoveTo{Pt(10, 10)},
		RelLineTo{Pt(5, 0)},
		RelCurveTo{Pt(5, 0), Pt(10, 5), Pt(10, 10)},
		RelLineTo{Pt(0, 5)},
	}

	contour, table, err := Flatten(cmds, 0.05)
	if err != nil {
		t.Fatalf("Flatten: %v", err)
	}
	if contour[0] != Pt(10, 10) {
		t.Errorf("first point = %v, want (10,10)", contour[0])
	}
	if contour[1] != Pt(15, 10) {
		t.Errorf("second point = %v, want (15,10)", contour[1])
	}
	if last := contour[len(contour)-1]; !pointNear(last, Pt(25, 25), eps) {
		t.Errorf("last point = %v, want (25,25)", last)
	}
	// The relative curve ends at (25, 20) before the final RelLineTo.
	found := false
	for _, p := range contour {
		if pointNear(p, Pt(25, 20), eps) {
			found = true
		}
	}
	if !found {
		t.Errorf("contour %v does not contain the curve endpoint (25,20)", contour)
	}
	checkTable(t, contour, table)
}

func TestFlattenImplicitOrigin(t *testing.T) {
	contour, table, err := Flatten([]PathCommand{LineTo{Pt(3, 4)}}, 0)
	if err != nil {
		t.Fatalf("Flatten: %v", err)
	}
	if len(contour) != 2 || contour[0] != Pt(0, 0) || contour[1] != Pt(3, 4) {
		t.Errorf("contour = %v, want [(0,0) (3,4)]", contour)
	}
	if !near(table.Total(), 5, eps) {
		t.Errorf("Total() = %v, want 5", table.Total())
	}
}

func TestFlattenEmpty(t *testing.T) {
	tests := []struct {
		name string
		cmds []PathCommand
	}{
		{"nil", nil},
		{"single move", []PathCommand{MoveTo{Pt(5, 5)}}},
		{"moves only", []PathCommand{MoveTo{Pt(5, 5)}, MoveTo{Pt(6, 6)}}},
		{"line to current point", []PathCommand{MoveTo{Pt(5, 5)}, LineTo{Pt(5, 5)}}},
		{"zero relative line", []PathCommand{RelLineTo{Pt(0, 0)}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Flatten(tt.cmds, 0.1)
			if !errors.Is(err, ErrEmptyPath) {
				t.Errorf("Flatten() error = %v, want ErrEmptyPath", err)
			}
		})
	}
}

func TestFlattenMalformed(t *testing.T) {
	cmds := []PathCommand{MoveTo{Pt(0, 0)}, LineTo{Pt(math.NaN(), 1)}}
	_, _, err := Flatten(cmds, 0.1)
	if !errors.Is(err, ErrMalformedCommand) {
		t.Fatalf("Flatten() error = %v, want ErrMalformedCommand", err)
	}
	var mce *MalformedCommandError
	if !errors.As(err, &mce) || mce.Index != 1 {
		t.Errorf("error = %#v, want index 1", err)
	}

	_, _, err = Flatten([]PathCommand{nil}, 0.1)
	if !errors.Is(err, ErrMalformedCommand) {
		t.Errorf("Flatten(nil command) error = %v, want ErrMalformedCommand", err)
	}
}

func TestFlattenFirstSubpathOnly(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})))

	cmds := []PathCommand{
		MoveTo{Pt(0, 0)},
		LineTo{Pt(10, 0)},
		MoveTo{Pt(50, 50)},
		LineTo{Pt(60, 50)},
		MoveTo{Pt(70, 70)},
		LineTo{Pt(80, 70)},
	}
	if got := CountSubpaths(cmds); got != 3 {
		t.Errorf("CountSubpaths() = %d, want 3", got)
	}

	contour, table, err := Flatten(cmds, 0.1)
	if err != nil {
		t.Fatalf("Flatten: %v", err)
	}
	if len(contour) != 2 || contour[1] != Pt(10, 0) {
		t.Errorf("contour = %v, want first subpath only", contour)
	}
	if table.Total() != 10 {
		t.Errorf("Total() = %v, want 10", table.Total())
	}
	if !strings.Contains(buf.String(), "ignored_subpaths=2") {
		t.Errorf("log output %q does not report ignored subpaths", buf.String())
	}
}

func TestFlattenLeadingMovesReplaceStart(t *testing.T) {
	cmds := []PathCommand{MoveTo{Pt(0, 0)}, MoveTo{Pt(5, 5)}, LineTo{Pt(10, 5)}}
	contour, _, err := Flatten(cmds, 0.1)
	if err != nil {
		t.Fatalf("Flatten: %v", err)
	}
	if len(contour) != 2 || contour[0] != Pt(5, 5) {
		t.Errorf("contour = %v, want to start at (5,5)", contour)
	}
	if got := CountSubpaths(cmds); got != 1 {
		t.Errorf("CountSubpaths() = %d, want 1", got)
	}
}

func TestFlattenCubicTolerance(t *testing.T) {
	curves := [][4]Point{
		{Pt(0, 0), Pt(33, 100), Pt(66, 100), Pt(100, 0)},
		{Pt(0, 0), Pt(100, 100), Pt(0, 100), Pt(100, 0)}, // self-crossing control polygon
		{Pt(10, 10), Pt(200, 10), Pt(-100, 80), Pt(90, 90)},
		{Pt(0, 0), Pt(0, 0), Pt(50, 50), Pt(50, 50)}, // coincident controls
	}
	tolerances := []float64{2, 0.5, 0.1}

	for ci, c := range curves {
		samples := sampleCubic(c[0], c[1], c[2], c[3], 20000)
		for _, tol := range tolerances {
			cmds := []PathCommand{MoveTo{c[0]}, CurveTo{c[1], c[2], c[3]}}
			contour, table, err := Flatten(cmds, tol)
			if err != nil {
				t.Fatalf("curve %d tol %v: Flatten: %v", ci, tol, err)
			}
			checkTable(t, contour, table)

			// Every curve point is within tol of the polyline.
			for i := 0; i < len(samples); i += 5 {
				if d := distanceToPolyline(samples[i], contour); d > tol+1e-9 {
					t.Fatalf("curve %d tol %v: curve point %v is %v from polyline", ci, tol, samples[i], d)
				}
			}

			// Every polyline point is within tol of the curve (up to sampling error).
			const slack = 0.02
			for i := 0; i+1 < len(contour); i++ {
				for k := 0; k <= 4; k++ {
					p := contour[i].Lerp(contour[i+1], float64(k)/4)
					best := math.Inf(1)
					for _, s := range samples {
						best = math.Min(best, p.Distance(s))
					}
					if best > tol+slack {
						t.Fatalf("curve %d tol %v: polyline point %v is %v from curve", ci, tol, p, best)
					}
				}
			}
		}
	}
}

func TestFlattenFinerToleranceMorePoints(t *testing.T) {
	cmds := []PathCommand{MoveTo{Pt(0, 0)}, CurveTo{Pt(33, 100), Pt(66, 100), Pt(100, 0)}}
	coarse, _, err := Flatten(cmds, 5)
	if err != nil {
		t.Fatal(err)
	}
	fine, _, err := Flatten(cmds, 0.01)
	if err != nil {
		t.Fatal(err)
	}
	if len(fine) <= len(coarse) {
		t.Errorf("fine tolerance produced %d points, coarse %d", len(fine), len(coarse))
	}
}

func TestFlattenDefaultTolerance(t *testing.T) {
	cmds := []PathCommand{MoveTo{Pt(0, 0)}, CurveTo{Pt(33, 100), Pt(66, 100), Pt(100, 0)}}
	want, _, err := Flatten(cmds, DefaultTolerance)
	if err != nil {
		t.Fatal(err)
	}
	for _, tol := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		got, _, err := Flatten(cmds, tol)
		if err != nil {
			t.Fatalf("tol %v: %v", tol, err)
		}
		if len(got) != len(want) {
			t.Errorf("tol %v: %d points, want %d (default tolerance)", tol, len(got), len(want))
		}
	}
}

func TestFlattenCubicScenario(t *testing.T) {
	p0, p1, p2, p3 := Pt(0, 0), Pt(33, 100), Pt(66, 100), Pt(100, 0)
	contour, table, err := Flatten([]PathCommand{MoveTo{p0}, CurveTo{p1, p2, p3}}, 0.5)
	if err != nil {
		t.Fatalf("Flatten: %v", err)
	}
	if len(contour) < 3 {
		t.Fatalf("curve flattened to only %d points", len(contour))
	}
	for i := 1; i < len(contour); i++ {
		if contour[i].Distance(contour[i-1]) <= CoincidentEpsilon {
			t.Errorf("points %d and %d coincide", i-1, i)
		}
		if contour[i].X <= contour[i-1].X {
			t.Errorf("x not increasing at %d: %v -> %v", i, contour[i-1], contour[i])
		}
	}
	if contour[len(contour)-1] != p3 {
		t.Errorf("last point = %v, want %v", contour[len(contour)-1], p3)
	}
	checkTable(t, contour, table)

	samples := sampleCubic(p0, p1, p2, p3, 100000)
	trueLength := 0.0
	for i := 1; i < len(samples); i++ {
		trueLength += samples[i-1].Distance(samples[i])
	}
	total := table.Total()
	if total > trueLength+1e-6 {
		t.Errorf("flattened length %v exceeds curve length %v", total, trueLength)
	}
	if (trueLength-total)/trueLength > 0.01 {
		t.Errorf("flattened length %v differs from curve length %v by more than 1%%", total, trueLength)
	}
}
