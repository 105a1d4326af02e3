package richtext

import "slices"

// breakRunes are the wrap opportunities, sorted for binary search: blank
// characters and breaking hyphens. U+2007 figure space and U+2011
// non-breaking hyphen are not break opportunities.
var breakRunes = []rune{
	'\t', ' ', '-', '­',
	' ', ' ', ' ', ' ', ' ', ' ', ' ',
	' ', ' ', ' ', '​',
	'‐', '‒', '–', '—', '‧',
}

// spaceRunes are the break characters consumed at a line split, sorted for
// binary search. Hyphens break but are kept on the line, so they are
// absent here.
var spaceRunes = []rune{
	'\t', ' ',
	' ', ' ', ' ', ' ', ' ', ' ', ' ',
	' ', ' ', ' ', '​',
}

func isBreakRune(r rune) bool {
	_, ok := slices.BinarySearch(breakRunes, r)
	return ok
}

func isSpaceRune(r rune) bool {
	_, ok := slices.BinarySearch(spaceRunes, r)
	return ok
}

// charge returns the width g adds at the end of the glyph stream: its
// advance plus kerning against the previous rune, or nothing for
// zero-color glyphs and line breaks, which also stay out of the kerning
// chain.
func (f *Font) charge(prev rune, g Glyph) float64 {
	if g.Color == 0 || g.Rune == hardBreak {
		return 0
	}
	w := f.GlyphAdvance(g)
	if prev >= 0 {
		w += f.KerningPair(prev, g.Rune, g.Style)
	}
	return w
}

// place appends g to the current line, charging its width against the
// target. An over-width line splits at its latest break opportunity while
// lines remain in the budget; once the budget is spent the line is
// truncated with the layout's ellipsis instead. It reports whether an
// ellipsis was committed, which ends the glyph stream.
func (f *Font) place(l *Layout, g Glyph, prev rune) bool {
	line := l.peekLine()
	if g.Color == 0 {
		if !l.atLimit {
			line.append(g)
		}
		return false
	}
	line.Width += f.charge(prev, g)
	line.append(g)
	over := (l.targetWidth > 0 && line.Width > l.targetWidth) || l.atLimit
	if !over {
		return false
	}
	later := l.pushLine()
	if later == nil {
		return f.truncateWithEllipsis(l, line)
	}
	f.splitLine(line, later)
	return false
}

// splitLine scans earlier from the end for a break opportunity, moves the
// glyphs after it onto later, drops the boundary's space run, and records
// the split with a zero-color newline marker so re-layout can dissolve it.
// Moved glyphs are re-kerned at their new position. Without a break
// opportunity nothing moves and the line stays over-width.
func (f *Font) splitLine(earlier, later *Line) {
	for j := len(earlier.Glyphs) - 2; j >= 0; j-- {
		g := earlier.Glyphs[j]
		if g.Color != 0 && !isBreakRune(g.Rune) {
			continue
		}
		leading := 0
		for j >= 0 && (earlier.Glyphs[j].Color == 0 || isSpaceRune(earlier.Glyphs[j].Rune)) {
			leading++
			j--
		}
		var change, changeNext float64
		prevKept := rune(-1)
		if j >= 0 {
			prevKept = earlier.Glyphs[j].Rune
		}
		prevMoved := rune(-1)
		for k := j + 1; k < len(earlier.Glyphs); k++ {
			cg := earlier.Glyphs[k]
			leading--
			if cg.Color == 0 {
				if leading < 0 {
					later.append(cg)
				}
				continue
			}
			adv := f.GlyphAdvance(cg)
			w := adv
			if prevKept >= 0 {
				w += f.KerningPair(prevKept, cg.Rune, cg.Style)
			}
			prevKept = cg.Rune
			change += w
			if leading < 0 {
				w = adv
				if prevMoved >= 0 {
					w += f.KerningPair(prevMoved, cg.Rune, cg.Style)
				}
				prevMoved = cg.Rune
				changeNext += w
				later.append(cg)
			}
		}
		earlier.truncate(j + 1)
		earlier.append(Glyph{Rune: hardBreak})
		later.Width = changeNext
		earlier.Width -= change
		return
	}
}

// truncateWithEllipsis makes the final line fit the target width with the
// ellipsis appended. It first tries the ellipsis alone, then walks anchors
// right to left, cutting a word and its leading spaces at each anchor
// until the remainder plus the ellipsis fits. It reports whether the
// ellipsis was committed; on failure the line is left as it is and keeps
// growing.
func (f *Font) truncateWithEllipsis(l *Layout, line *Line) bool {
	if l.ellipsis == "" {
		return false
	}
	ell := []rune(l.ellipsis)
	if len(line.Glyphs) > 0 {
		appendNext := f.ellipsisWidth(ell, l.baseColor, lastColoredRune(line))
		if line.Width+appendNext <= l.targetWidth {
			appendEllipsis(line, ell, l.baseColor)
			line.Width += appendNext
			return true
		}
	}
	for j := len(line.Glyphs) - 1; j >= 0; j-- {
		for j >= 0 && (line.Glyphs[j].Color == 0 || (!isSpaceRune(line.Glyphs[j].Rune) && j > 0)) {
			j--
		}
		for j >= 0 && (line.Glyphs[j].Color == 0 || (isSpaceRune(line.Glyphs[j].Rune) && j > 0)) {
			j--
		}
		var change float64
		prevKept := rune(-1)
		seed := rune(-1)
		if j >= 0 {
			seed = line.Glyphs[j].Rune
			prevKept = seed
		}
		for k := j + 1; k < len(line.Glyphs); k++ {
			cg := line.Glyphs[k]
			if cg.Color == 0 {
				continue
			}
			w := f.GlyphAdvance(cg)
			if prevKept >= 0 {
				w += f.KerningPair(prevKept, cg.Rune, cg.Style)
			}
			prevKept = cg.Rune
			change += w
		}
		truncNext := f.ellipsisWidth(ell, l.baseColor, seed)
		if line.Width-change+truncNext <= l.targetWidth {
			line.truncate(j + 1)
			appendEllipsis(line, ell, l.baseColor)
			line.Width = line.Width - change + truncNext
			return true
		}
	}
	return false
}

// ellipsisWidth measures the ellipsis as it will be appended: plain style,
// base color, kerned against the rune it follows.
func (f *Font) ellipsisWidth(ell []rune, color RGBA, prev rune) float64 {
	var w float64
	for _, r := range ell {
		g := Glyph{Rune: r, Color: color}
		w += f.charge(prev, g)
		if g.Color != 0 {
			prev = r
		}
	}
	return w
}

// appendEllipsis stores the ellipsis runes with plain style and the base
// color.
func appendEllipsis(line *Line, ell []rune, color RGBA) {
	for _, r := range ell {
		line.append(Glyph{Rune: r, Color: color})
	}
}

// lastColoredRune returns the rune of the last glyph that participates in
// the kerning chain, or -1 for none.
func lastColoredRune(line *Line) rune {
	for i := len(line.Glyphs) - 1; i >= 0; i-- {
		if line.Glyphs[i].Color != 0 {
			return line.Glyphs[i].Rune
		}
	}
	return -1
}
