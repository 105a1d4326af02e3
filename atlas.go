package richtext

// AtlasFont is a hand-built metrics source for bitmap-style fonts whose
// advances come from an atlas or other external table rather than from
// font files. It implements Metrics and Kerner and ignores style bits, so
// bold or oblique variants belong in separate family slots.
//
// AtlasFont is not safe for concurrent mutation; finish building it before
// sharing it.
type AtlasFont struct {
	advances   map[rune]advanceEntry
	kerns      map[[2]rune]float64
	cellHeight float64
}

type advanceEntry struct {
	advance float64
	offsetX float64
}

// NewAtlasFont returns an empty atlas with the given line height.
func NewAtlasFont(cellHeight float64) *AtlasFont {
	return &AtlasFont{
		advances:   make(map[rune]advanceEntry),
		cellHeight: cellHeight,
	}
}

// AddGlyph registers one glyph with its advance and left-side bearing.
func (a *AtlasFont) AddGlyph(r rune, advance, offsetX float64) *AtlasFont {
	a.advances[r] = advanceEntry{advance: advance, offsetX: offsetX}
	return a
}

// AddGlyphs registers a run of glyphs sharing one advance and no bearing.
func (a *AtlasFont) AddGlyphs(advance float64, rs ...rune) *AtlasFont {
	for _, r := range rs {
		a.advances[r] = advanceEntry{advance: advance}
	}
	return a
}

// AddRange registers every rune from lo through hi with one advance.
func (a *AtlasFont) AddRange(lo, hi rune, advance float64) *AtlasFont {
	for r := lo; r <= hi; r++ {
		a.advances[r] = advanceEntry{advance: advance}
	}
	return a
}

// AddKern registers a kerning adjustment for the prev, next pair.
func (a *AtlasFont) AddKern(prev, next rune, amount float64) *AtlasFont {
	if a.kerns == nil {
		a.kerns = make(map[[2]rune]float64)
	}
	a.kerns[[2]rune{prev, next}] = amount
	return a
}

// Advance implements Metrics. Unregistered runes report no glyph.
func (a *AtlasFont) Advance(r rune, _ Style) (advance, offsetX float64, ok bool) {
	e, ok := a.advances[r]
	if !ok {
		return 0, 0, false
	}
	return e.advance, e.offsetX, true
}

// CellHeight implements Metrics.
func (a *AtlasFont) CellHeight() float64 { return a.cellHeight }

// Kern implements Kerner. Unregistered pairs report zero.
func (a *AtlasFont) Kern(prev, next rune) float64 {
	return a.kerns[[2]rune{prev, next}]
}
