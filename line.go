package richtext

// Line is one visual row of glyphs produced by layout. Glyphs appear in
// draw order; structural glyphs (hard breaks at the start of a line, wrap
// markers at the end) are included, renderers filter them with
// [Glyph.Display].
type Line struct {
	// Glyphs holds the line's content in visual order.
	Glyphs []Glyph

	// Width is the total advance of the line including kerning deltas.
	// The layout engine maintains it incrementally; it is never recomputed
	// from scratch on append.
	Width float64

	// Height is the scaled cell height of the font that was current when
	// the line was created. Lines in one layout may differ in height when
	// the font family changes between them.
	Height float64
}

func newLine(height float64) *Line {
	return &Line{Height: height}
}

func (l *Line) append(g Glyph) {
	l.Glyphs = append(l.Glyphs, g)
}

// truncate keeps the first n glyphs. Width is the caller's responsibility;
// the wrap engine adjusts it from the widths it recomputes while moving
// glyphs.
func (l *Line) truncate(n int) {
	if n < 0 {
		n = 0
	}
	if n < len(l.Glyphs) {
		l.Glyphs = l.Glyphs[:n]
	}
}

func (l *Line) reset() {
	l.Glyphs = l.Glyphs[:0]
	l.Width = 0
	l.Height = 0
}
