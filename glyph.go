package richtext

// Reserved runes carried by structural glyphs.
const (
	// EscapedBracket marks a glyph produced by the "[[" markup escape.
	// It renders as a literal '[' but never re-triggers tag parsing.
	EscapedBracket rune = 2

	// hardBreak is the rune of a hard line-break glyph. A soft wrap marker
	// uses the same rune with zero color; see Glyph.IsWrapMarker.
	hardBreak rune = '\n'
)

// Glyph is the atomic unit of laid-out text: one character with the style
// and color that were in effect when it was parsed. Glyphs are small value
// types; Lines hold them by value.
type Glyph struct {
	Rune  rune
	Style Style
	Color RGBA
}

// IsWrapMarker reports whether g is a soft line-wrap marker inserted by the
// wrap engine: a zero-color newline with zero advance. Re-layout converts
// these back into the spaces they replaced.
func (g Glyph) IsWrapMarker() bool {
	return g.Rune == hardBreak && g.Color == 0
}

// IsHardBreak reports whether g is a hard line break fed through markup.
// Hard breaks keep the style and color in effect so re-layout can replay
// them; they are structural and never render or advance.
func (g Glyph) IsHardBreak() bool {
	return g.Rune == hardBreak && g.Color != 0
}

// Display returns the rune a renderer should draw for g. Structural glyphs
// (line breaks, wrap markers) report false; the escaped-bracket glyph maps
// to a literal '['.
func (g Glyph) Display() (rune, bool) {
	switch g.Rune {
	case hardBreak:
		return 0, false
	case EscapedBracket:
		return '[', true
	}
	return g.Rune, true
}
