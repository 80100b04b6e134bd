package text

// BuiltinShaper positions one glyph per rune using the font's advance
// widths and kern table. It covers Latin, Cyrillic, Greek and other scripts
// that need no contextual shaping. Right-to-left faces get their glyphs
// reversed into visual order.
//
// For ligatures and complex scripts use GoTextShaper.
//
// BuiltinShaper is stateless and safe for concurrent use.
type BuiltinShaper struct{}

// Shape implements the Shaper interface.
func (s *BuiltinShaper) Shape(text string, face Face) []ShapedGlyph {
	if text == "" || face == nil {
		return nil
	}

	runes := []rune(text)
	gids := make([]GlyphID, len(runes))
	for i, r := range runes {
		gids[i] = face.GlyphIndex(r)
	}

	order := make([]int, len(runes))
	for i := range order {
		order[i] = i
	}
	if face.Direction().IsRTL() {
		for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
			order[i], order[j] = order[j], order[i]
		}
	}

	result := make([]ShapedGlyph, 0, len(runes))
	var x float64
	for n, cluster := range order {
		gid := gids[cluster]
		if n > 0 {
			last := &result[n-1]
			kern := face.Kern(last.GID, gid)
			last.XAdvance += kern
			x += kern
		}

		advance := face.GlyphAdvance(gid)
		result = append(result, ShapedGlyph{
			GID:      gid,
			Cluster:  cluster,
			X:        x,
			XAdvance: advance,
		})
		x += advance
	}
	return result
}
