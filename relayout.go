package richtext

// RegenerateLayout reflows l's stored glyphs under its current
// configuration, producing the same lines a fresh markup of the original
// text would. Wrap markers dissolve back into zero-width spaces, hard
// breaks are replayed, and the glyph stream runs through the same
// placement path as markup, so widths, splits, and ellipsis decisions
// come out identical. Call it after changing the target width, line
// budget, ellipsis, or alignment of an already laid out layout.
//
// A layout produced by a different font, or by none, is returned
// unchanged.
func (f *Font) RegenerateLayout(l *Layout) *Layout {
	if l.font != f {
		Logger().Warn("richtext: regenerate layout with a different font, returning unchanged")
		return l
	}
	old := l.lines
	l.lines = make([]*Line, 0, len(old))
	l.lines = append(l.lines, newLine(f.CellHeight()))
	l.atLimit = false

	prev := rune(-1)
	for _, line := range old {
		for _, g := range line.Glyphs {
			if g.IsWrapMarker() {
				g.Rune = ' '
			}
			if g.Rune == hardBreak {
				l.Add(g)
				prev = hardBreak
				continue
			}
			if f.place(l, g, prev) {
				return l
			}
			if g.Color != 0 {
				prev = g.Rune
			}
		}
	}
	return l
}
