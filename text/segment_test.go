package text

import (
	"strings"
	"testing"
)

func checkRunCoverage(t *testing.T, text string, runs []Run) {
	t.Helper()
	runes := []rune(text)
	seen := make([]bool, len(runes))
	for _, r := range runs {
		n := len([]rune(r.Text))
		if got := string(runes[r.Start : r.Start+n]); got != r.Text {
			t.Errorf("run at %d has text %q, paragraph has %q", r.Start, r.Text, got)
		}
		for i := r.Start; i < r.Start+n; i++ {
			if seen[i] {
				t.Errorf("rune %d covered twice", i)
			}
			seen[i] = true
		}
	}
	for i, ok := range seen {
		if !ok {
			t.Errorf("rune %d not covered", i)
		}
	}
}

func TestVisualRunsLatin(t *testing.T) {
	runs := VisualRuns("Hello, world", DirectionLTR)
	if len(runs) != 1 {
		t.Fatalf("got %d runs, want 1", len(runs))
	}
	if runs[0].Text != "Hello, world" || runs[0].Direction != DirectionLTR || runs[0].Start != 0 {
		t.Errorf("run = %+v", runs[0])
	}
}

func TestVisualRunsEmpty(t *testing.T) {
	if runs := VisualRuns("", DirectionLTR); runs != nil {
		t.Errorf("VisualRuns(\"\") = %v, want nil", runs)
	}
}

func TestVisualRunsHebrew(t *testing.T) {
	text := "שלום"
	runs := VisualRuns(text, DirectionLTR)
	checkRunCoverage(t, text, runs)
	for _, r := range runs {
		if r.Direction != DirectionRTL {
			t.Errorf("run %q direction = %v, want RTL", r.Text, r.Direction)
		}
	}
}

func TestVisualRunsMixed(t *testing.T) {
	text := "abc שלום def"
	runs := VisualRuns(text, DirectionLTR)
	checkRunCoverage(t, text, runs)

	var rtl, ltr bool
	for _, r := range runs {
		switch {
		case strings.Contains(r.Text, "שלום"):
			rtl = r.Direction == DirectionRTL
		case strings.Contains(r.Text, "abc"):
			ltr = r.Direction == DirectionLTR
		}
	}
	if !rtl || !ltr {
		t.Errorf("runs = %+v", runs)
	}
	if runs[0].Start != 0 {
		t.Errorf("first visual run of an LTR paragraph starts at %d", runs[0].Start)
	}
}

func TestDirectionString(t *testing.T) {
	if DirectionLTR.String() != "LTR" || DirectionRTL.String() != "RTL" || Direction(7).String() != "Unknown" {
		t.Error("Direction.String()")
	}
}
