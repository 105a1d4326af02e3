package richtext

import "unicode"

// Markup lays text out into l, interpreting square-bracket tags and
// curly-brace tokens along the way. Tags change the style and color state
// carried by the glyphs that follow them:
//
//	[]        reset color, style, and case modes
//	[*]       toggle bold
//	[/]       toggle oblique
//	[_]       toggle underline
//	[~]       toggle strikethrough
//	[^]       toggle superscript
//	[=]       toggle midscript
//	[.]       toggle subscript
//	[;]       toggle per-word capitalization
//	[!]       toggle upper case
//	[,]       toggle lower case
//	[#HHHHHH] set color from hex, with optional alpha digits
//	[NAME]    set a named color, two or more characters
//	[|NAME]   set a named color, explicit form
//	[@Name]   switch to a family font, [@] returns to the primary
//
// [[ emits a literal bracket and {{ a literal brace. A {TOKEN} run is
// stored verbatim with zero width so later passes can interpret it.
//
// Glyphs wrap against the layout's target width and, once the line budget
// is spent, are truncated with the layout's ellipsis. Laying out into a
// layout produced by a different font clears it first, and the current
// line takes the font's cell height at each call.
func (f *Font) Markup(text string, l *Layout) *Layout {
	if l.font != f {
		l.Clear()
		l.font = f
	}
	l.peekLine().Height = f.CellHeight()

	style := Style(0)
	color := l.baseColor
	capitalize, capsLock, lowerCase := false, false, false
	previousWasLetter := false
	prev := rune(-1)

	rs := []rune(text)
	for i := 0; i < len(rs); i++ {
		r := rs[i]
		literal := false

		if r == '{' {
			if i+1 < len(rs) && rs[i+1] == '{' {
				i++
			} else {
				i = f.copyToken(l, rs, i, style)
				continue
			}
		} else if r == '[' {
			if i+1 < len(rs) && rs[i+1] != '[' {
				if end := closeBracket(rs, i+1); end >= 0 {
					f.applyTag(l, rs[i+1:end], &style, &color,
						&capitalize, &capsLock, &lowerCase)
					i = end
					continue
				}
				Logger().Debug("richtext: unterminated tag, bracket kept as text", "at", i)
			} else if i+1 < len(rs) {
				i++
			}
			r = EscapedBracket
			literal = true
		}

		if unicode.IsLower(r) {
			if (capitalize && !previousWasLetter) || capsLock {
				r = unicode.ToUpper(r)
			}
			previousWasLetter = true
		} else if unicode.IsUpper(r) {
			if (capitalize && previousWasLetter) || lowerCase {
				r = unicode.ToLower(r)
			}
			previousWasLetter = true
		} else if !literal {
			previousWasLetter = false
		}

		if r == hardBreak {
			l.Add(Glyph{Rune: hardBreak, Style: style, Color: breakColor(color, l.baseColor)})
			prev = hardBreak
			continue
		}
		if f.place(l, Glyph{Rune: r, Style: style, Color: color}, prev) {
			break
		}
		if color != 0 {
			prev = r
		}
	}
	return l
}

// breakColor picks a non-zero color for a stored hard break. Zero color is
// reserved for wrap markers, so a break written while the color state is
// transparent falls back to the base color, then to white.
func breakColor(current, base RGBA) RGBA {
	if current != 0 {
		return current
	}
	if base != 0 {
		return base
	}
	return White
}

// copyToken stores a {TOKEN} run verbatim, braces included, as zero-color
// glyphs that contribute no width and stay out of the kerning chain. The
// run ends at the closing brace, at a newline, or at the end of input.
// It returns the index of the last consumed rune.
func (f *Font) copyToken(l *Layout, rs []rune, i int, style Style) int {
	end := i
	for end < len(rs) && rs[end] != '}' && rs[end] != hardBreak {
		end++
	}
	last := end
	if last >= len(rs) || rs[last] == hardBreak {
		last--
	}
	for k := i; k <= last; k++ {
		if !l.atLimit {
			l.peekLine().append(Glyph{Rune: rs[k], Style: style})
		}
	}
	return last
}

// closeBracket returns the index of the next ']' at or after start, or -1.
func closeBracket(rs []rune, start int) int {
	for j := start; j < len(rs); j++ {
		if rs[j] == ']' {
			return j
		}
	}
	return -1
}

// applyTag mutates the markup state for one bracket tag. The first rune
// dispatches; trailing runes of toggle tags are ignored. Unknown
// single-rune tags are no-ops, unknown color names fall back to the base
// color, and unknown family names fall back to the primary font.
func (f *Font) applyTag(l *Layout, tag []rune, style *Style, color *RGBA,
	capitalize, capsLock, lowerCase *bool) {

	if len(tag) == 0 {
		*color = l.baseColor
		*style = 0
		*capitalize, *capsLock, *lowerCase = false, false, false
		return
	}
	switch tag[0] {
	case '*':
		*style ^= StyleBold
	case '/':
		*style ^= StyleOblique
	case '_':
		*style ^= StyleUnderline
	case '~':
		*style ^= StyleStrikethrough
	case '^':
		*style = style.ToggleScript(ScriptSuper)
	case '=':
		*style = style.ToggleScript(ScriptMid)
	case '.':
		*style = style.ToggleScript(ScriptSub)
	case ';':
		*capitalize = !*capitalize
		*capsLock, *lowerCase = false, false
	case '!':
		*capsLock = !*capsLock
		*capitalize, *lowerCase = false, false
	case ',':
		*lowerCase = !*lowerCase
		*capitalize, *capsLock = false, false
	case '#':
		// Tags take the six and eight digit forms only; Hex's short
		// forms are not valid markup.
		if c, ok := Hex(string(tag)); ok && (len(tag) == 7 || len(tag) == 9) {
			*color = c
		} else {
			*color = l.baseColor
		}
	case '|':
		if c, ok := f.lookupColor(string(tag[1:])); ok {
			*color = c
		} else {
			Logger().Debug("richtext: unknown color name", "name", string(tag[1:]))
			*color = l.baseColor
		}
	case '@':
		if f.family == nil {
			*style = style.WithFamilyIndex(0)
			return
		}
		if name := string(tag[1:]); name != "" {
			if idx, ok := f.family.IndexOf(name); ok {
				*style = style.WithFamilyIndex(idx)
				return
			}
			Logger().Debug("richtext: unknown family name", "name", name)
		}
		*style = style.WithFamilyIndex(0)
	default:
		if len(tag) > 1 {
			if c, ok := f.lookupColor(string(tag)); ok {
				*color = c
			} else {
				*color = l.baseColor
			}
		}
	}
}
