package text

import (
	"golang.org/x/text/unicode/bidi"
)

// Run is a contiguous piece of text with a single direction.
type Run struct {
	// Text is the run's text in logical order.
	Text string
	// Start is the rune index of the run within the paragraph.
	Start int
	// Direction is the direction the run is read in.
	Direction Direction
}

// VisualRuns splits text into directional runs using the Unicode
// bidirectional algorithm and returns them in visual order, left to right.
// base is the paragraph direction used when the text itself is neutral.
func VisualRuns(text string, base Direction) []Run {
	if text == "" {
		return nil
	}

	defaultDir := bidi.LeftToRight
	if base == DirectionRTL {
		defaultDir = bidi.RightToLeft
	}
	single := []Run{{Text: text, Direction: base}}

	var p bidi.Paragraph
	if _, err := p.SetString(text, bidi.DefaultDirection(defaultDir)); err != nil {
		return single
	}
	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return single
	}

	runes := []rune(text)
	runs := make([]Run, 0, ordering.NumRuns())
	for i := 0; i < ordering.NumRuns(); i++ {
		r := ordering.Run(i)
		// Pos returns rune indices, end inclusive.
		start, end := r.Pos()
		if start < 0 || end >= len(runes) || start > end {
			continue
		}
		dir := DirectionLTR
		if r.Direction() == bidi.RightToLeft {
			dir = DirectionRTL
		}
		runs = append(runs, Run{
			Text:      string(runes[start : end+1]),
			Start:     start,
			Direction: dir,
		})
	}
	if len(runs) == 0 {
		return single
	}
	return runs
}
