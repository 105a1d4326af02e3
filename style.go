package richtext

import (
	"strconv"
	"strings"
)

// Style is a bitmask of glyph formatting state: four independent flags,
// a two-bit script mode, and a four-bit family font index. The zero value
// is plain text in the primary font.
type Style uint32

// Independent style flags.
const (
	StyleBold          Style = 1 << 30
	StyleOblique       Style = 1 << 29
	StyleUnderline     Style = 1 << 28
	StyleStrikethrough Style = 1 << 27
)

// Script field layout. The two bits hold one of four mutually exclusive
// modes; impossible combinations cannot be expressed through WithScript.
const (
	scriptShift     = 25
	styleScriptMask = Style(3) << scriptShift
	familyShift     = 16
	styleFamilyMask = Style(15) << familyShift
)

// Script is a glyph's vertical script mode. Modes are mutually exclusive:
// a glyph is in at most one of subscript, midscript, or superscript.
type Script uint8

const (
	ScriptNone Script = iota
	ScriptSub
	ScriptMid
	ScriptSuper
)

// String returns the script mode name.
func (m Script) String() string {
	switch m {
	case ScriptSub:
		return "subscript"
	case ScriptMid:
		return "midscript"
	case ScriptSuper:
		return "superscript"
	default:
		return "none"
	}
}

// Bold reports whether the bold flag is set.
func (s Style) Bold() bool { return s&StyleBold != 0 }

// Oblique reports whether the oblique flag is set.
func (s Style) Oblique() bool { return s&StyleOblique != 0 }

// Underline reports whether the underline flag is set.
func (s Style) Underline() bool { return s&StyleUnderline != 0 }

// Strikethrough reports whether the strikethrough flag is set.
func (s Style) Strikethrough() bool { return s&StyleStrikethrough != 0 }

// Script returns the current script mode.
func (s Style) Script() Script {
	return Script(s & styleScriptMask >> scriptShift)
}

// WithScript returns s with the script mode replaced.
func (s Style) WithScript(m Script) Style {
	return s&^styleScriptMask | Style(m)<<scriptShift&styleScriptMask
}

// ToggleScript returns s with the script mode toggled: toggling the mode
// already in effect clears it, toggling a different mode overrides the
// previous one.
func (s Style) ToggleScript(m Script) Style {
	if s.Script() == m {
		return s.WithScript(ScriptNone)
	}
	return s.WithScript(m)
}

// FamilyIndex returns the family font index (0 is the primary font).
func (s Style) FamilyIndex() int {
	return int(s & styleFamilyMask >> familyShift)
}

// WithFamilyIndex returns s with the family font index replaced.
// Indices outside [0, 15] are masked to four bits.
func (s Style) WithFamilyIndex(i int) Style {
	return s&^styleFamilyMask | Style(i)<<familyShift&styleFamilyMask
}

// String lists the active style components, or "plain".
func (s Style) String() string {
	var parts []string
	if s.Bold() {
		parts = append(parts, "bold")
	}
	if s.Oblique() {
		parts = append(parts, "oblique")
	}
	if s.Underline() {
		parts = append(parts, "underline")
	}
	if s.Strikethrough() {
		parts = append(parts, "strikethrough")
	}
	if m := s.Script(); m != ScriptNone {
		parts = append(parts, m.String())
	}
	if i := s.FamilyIndex(); i != 0 {
		parts = append(parts, "family="+strconv.Itoa(i))
	}
	if len(parts) == 0 {
		return "plain"
	}
	return strings.Join(parts, "|")
}
