package richtext

import (
	"testing"
)

// TestMarkupPlain tests that plain text produces one glyph per rune with
// plain style and the base color.
func TestMarkupPlain(t *testing.T) {
	f := newTestFont(t)
	l := f.Markup("hello", NewLayout())

	if l.LineCount() != 1 {
		t.Fatalf("LineCount() = %d, want 1", l.LineCount())
	}
	if got := lineString(l.Line(0)); got != "hello" {
		t.Errorf("line = %q, want %q", got, "hello")
	}
	if !approxEq(l.Width(), 50) {
		t.Errorf("Width() = %v, want 50", l.Width())
	}
	if !approxEq(l.Height(), 16) {
		t.Errorf("Height() = %v, want 16", l.Height())
	}
	for i, g := range l.Line(0).Glyphs {
		if g.Style != 0 || g.Color != White {
			t.Errorf("glyph %d = %+v, want plain white", i, g)
		}
	}
	if l.Font() != f {
		t.Error("Font() is not the laying font")
	}
}

// TestMarkupStyleToggles tests the four style flag tags.
func TestMarkupStyleToggles(t *testing.T) {
	f := newTestFont(t)

	tests := []struct {
		name string
		text string
		want []Style
	}{
		{"bold", "[*]ab", []Style{StyleBold, StyleBold}},
		{"bold off", "[*]a[*]b", []Style{StyleBold, 0}},
		{"oblique", "[/]a", []Style{StyleOblique}},
		{"underline", "[_]a", []Style{StyleUnderline}},
		{"strikethrough", "[~]a", []Style{StyleStrikethrough}},
		{"stacked", "[*][/]a", []Style{StyleBold | StyleOblique}},
		{"reset", "[*][/]a[]b", []Style{StyleBold | StyleOblique, 0}},
		{"tag tail ignored", "[*bold]a", []Style{StyleBold}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := f.Markup(tt.text, NewLayout())
			glyphs := l.Line(0).Glyphs
			if len(glyphs) != len(tt.want) {
				t.Fatalf("got %d glyphs, want %d", len(glyphs), len(tt.want))
			}
			for i, want := range tt.want {
				if glyphs[i].Style != want {
					t.Errorf("glyph %d style = %v, want %v", i, glyphs[i].Style, want)
				}
			}
		})
	}
}

// TestMarkupScriptToggles tests the three script tags: re-toggling one
// mode clears it, toggling another overrides it.
func TestMarkupScriptToggles(t *testing.T) {
	f := newTestFont(t)

	tests := []struct {
		name string
		text string
		want []Script
	}{
		{"superscript", "[^]a", []Script{ScriptSuper}},
		{"midscript", "[=]a", []Script{ScriptMid}},
		{"subscript", "[.]a", []Script{ScriptSub}},
		{"same cancels", "[^]a[^]b", []Script{ScriptSuper, ScriptNone}},
		{"other overrides", "[^]a[=]b", []Script{ScriptSuper, ScriptMid}},
		{"reset clears", "[.]a[]b", []Script{ScriptSub, ScriptNone}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := f.Markup(tt.text, NewLayout())
			glyphs := l.Line(0).Glyphs
			if len(glyphs) != len(tt.want) {
				t.Fatalf("got %d glyphs, want %d", len(glyphs), len(tt.want))
			}
			for i, want := range tt.want {
				if glyphs[i].Style.Script() != want {
					t.Errorf("glyph %d script = %v, want %v", i, glyphs[i].Style.Script(), want)
				}
			}
		})
	}
}

// TestMarkupScriptHalvesAdvance tests that script glyphs advance half as
// far, except in monospaced fonts.
func TestMarkupScriptHalvesAdvance(t *testing.T) {
	f := newTestFont(t)
	if w := f.WidthOf("[^]ab"); !approxEq(w, 10) {
		t.Errorf("WidthOf(superscript ab) = %v, want 10", w)
	}
	if w := f.WidthOf("ab"); !approxEq(w, 20) {
		t.Errorf("WidthOf(ab) = %v, want 20", w)
	}

	f.SetMono(true)
	if w := f.WidthOf("[^]ab"); !approxEq(w, 20) {
		t.Errorf("mono WidthOf(superscript ab) = %v, want 20", w)
	}
}

// TestMarkupCaseModes tests the three case-transform tags. Capitalize
// raises the first letter of a word and lowers the rest, tracking letter
// runs across tags and literals.
func TestMarkupCaseModes(t *testing.T) {
	f := newTestFont(t)

	tests := []struct {
		name string
		text string
		want string
	}{
		{"capitalize", "[;]hello world", "Hello World"},
		{"capitalize lowers rest", "[;]HELLO WORLD", "Hello World"},
		{"digit splits words", "[;]a1b", "A1B"},
		{"caps lock", "[!]abc def", "ABC DEF"},
		{"lower case", "[,]ABC DeF", "abc def"},
		{"modes exclusive", "[;][!]ab cd", "AB CD"},
		{"toggle off", "[!]ab[!]cd", "ABcd"},
		{"reset clears", "[!]ab[]cd", "ABcd"},
		{"state survives tags", "[;]a[*]b", "Ab"},
		{"state survives literal", "[;]a[[b", "A[b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := f.Markup(tt.text, NewLayout())
			if got := lineString(l.Line(0)); got != tt.want {
				t.Errorf("Markup(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

// TestMarkupHexColors tests [#...] color tags, including the fallback to
// the base color on malformed input.
func TestMarkupHexColors(t *testing.T) {
	f := newTestFont(t)

	tests := []struct {
		name string
		text string
		want RGBA
	}{
		{"rrggbb", "[#FF8000]a", NewRGBA(255, 128, 0, 255)},
		{"rrggbbaa", "[#11223344]a", NewRGBA(0x11, 0x22, 0x33, 0x44)},
		{"short form falls back", "[#F00]a", White},
		{"too short", "[#12]a", White},
		{"seven digits fall back", "[#1234567]a", White},
		{"bad digits", "[#GGHHII]a", White},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := f.Markup(tt.text, NewLayout())
			if got := l.Line(0).Glyphs[0].Color; got != tt.want {
				t.Errorf("Markup(%q) color = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

// TestMarkupNamedColors tests [NAME] and [|NAME] color tags against the
// default palette.
func TestMarkupNamedColors(t *testing.T) {
	f := newTestFont(t)

	tests := []struct {
		name string
		text string
		want RGBA
	}{
		{"upper", "[RED]a", Red},
		{"folded", "[Red]a", Red},
		{"svg name", "[ROYALBLUE]a", RGBA(0x4169E1FF)},
		{"explicit form", "[|red]a", Red},
		{"unknown falls back", "[NOTACOLOR]a", White},
		{"unknown explicit falls back", "[|notacolor]a", White},
		{"clear is transparent", "[CLEAR]a", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := f.Markup(tt.text, NewLayout())
			if got := l.Line(0).Glyphs[0].Color; got != tt.want {
				t.Errorf("Markup(%q) color = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

// TestMarkupUnknownSingleTag tests that an unrecognized single-rune tag is
// consumed without changing any state.
func TestMarkupUnknownSingleTag(t *testing.T) {
	f := newTestFont(t)
	l := f.Markup("[RED]a[q]b", NewLayout())

	glyphs := l.Line(0).Glyphs
	if len(glyphs) != 2 {
		t.Fatalf("got %d glyphs, want 2", len(glyphs))
	}
	if glyphs[0].Color != Red || glyphs[1].Color != Red {
		t.Errorf("colors = %v, %v, want red, red", glyphs[0].Color, glyphs[1].Color)
	}
}

// TestMarkupTransparentRun tests that zero-color glyphs take no width and
// stay out of the kerning chain.
func TestMarkupTransparentRun(t *testing.T) {
	f := newTestFont(t)
	l := f.Markup("[CLEAR]ab[]c", NewLayout())

	glyphs := l.Line(0).Glyphs
	if len(glyphs) != 3 {
		t.Fatalf("got %d glyphs, want 3", len(glyphs))
	}
	if glyphs[0].Color != 0 || glyphs[1].Color != 0 || glyphs[2].Color != White {
		t.Errorf("colors = %v, %v, %v", glyphs[0].Color, glyphs[1].Color, glyphs[2].Color)
	}
	if !approxEq(l.Width(), 10) {
		t.Errorf("Width() = %v, want 10", l.Width())
	}

	kf := newKernFont(t)
	// A transparent 'o' does not kern the following 'w'.
	if w := kf.WidthOf("[CLEAR]o[]w"); !approxEq(w, 10) {
		t.Errorf("WidthOf(transparent o, w) = %v, want 10", w)
	}
	if w := kf.WidthOf("ow"); !approxEq(w, 18) {
		t.Errorf("WidthOf(ow) = %v, want 18", w)
	}
}

// TestMarkupEscapes tests literal brackets and braces.
func TestMarkupEscapes(t *testing.T) {
	f := newTestFont(t)

	tests := []struct {
		name      string
		text      string
		want      string
		wantWidth float64
	}{
		{"double bracket", "[[", "[", 7},
		{"escape then bare closers", "[[x]]", "[x]]", 31},
		{"trailing bracket", "a[", "a[", 17},
		{"unterminated tag", "a[bc", "a[bc", 37},
		{"double brace", "{{", "{", 8},
		{"brace in text", "x{{y", "x{y", 28},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := f.Markup(tt.text, NewLayout())
			if got := lineString(l.Line(0)); got != tt.want {
				t.Errorf("Markup(%q) = %q, want %q", tt.text, got, tt.want)
			}
			if !approxEq(l.Width(), tt.wantWidth) {
				t.Errorf("Markup(%q) width = %v, want %v", tt.text, l.Width(), tt.wantWidth)
			}
		})
	}
}

// TestMarkupEscapedBracketGlyph tests that the "[[" escape stores the
// reserved rune rather than a plain bracket, so re-parsing can never
// mistake it for a tag.
func TestMarkupEscapedBracketGlyph(t *testing.T) {
	f := newTestFont(t)
	l := f.Markup("[[", NewLayout())

	glyphs := l.Line(0).Glyphs
	if len(glyphs) != 1 {
		t.Fatalf("got %d glyphs, want 1", len(glyphs))
	}
	if glyphs[0].Rune != EscapedBracket {
		t.Errorf("rune = %U, want EscapedBracket", glyphs[0].Rune)
	}
	if r, ok := glyphs[0].Display(); !ok || r != '[' {
		t.Errorf("Display() = %q, %v, want '[', true", r, ok)
	}
}

// TestMarkupTokens tests {TOKEN} pass-through: stored verbatim with the
// current style, zero color, and zero width.
func TestMarkupTokens(t *testing.T) {
	f := newTestFont(t)

	t.Run("verbatim zero width", func(t *testing.T) {
		l := f.Markup("{WAVE}ab", NewLayout())
		glyphs := l.Line(0).Glyphs
		if len(glyphs) != 8 {
			t.Fatalf("got %d glyphs, want 8", len(glyphs))
		}
		for i, r := range "{WAVE}" {
			if glyphs[i].Rune != r || glyphs[i].Color != 0 {
				t.Errorf("token glyph %d = %+v, want zero-color %q", i, glyphs[i], r)
			}
		}
		if !approxEq(l.Width(), 20) {
			t.Errorf("Width() = %v, want 20", l.Width())
		}
	})

	t.Run("carries style", func(t *testing.T) {
		l := f.Markup("[*]{x}a", NewLayout())
		for i, g := range l.Line(0).Glyphs {
			if g.Style != StyleBold {
				t.Errorf("glyph %d style = %v, want bold", i, g.Style)
			}
		}
	})

	t.Run("skips case transform", func(t *testing.T) {
		l := f.Markup("[!]{abc}d", NewLayout())
		if got := lineString(l.Line(0)); got != "{abc}D" {
			t.Errorf("line = %q, want %q", got, "{abc}D")
		}
	})

	t.Run("unterminated runs to end", func(t *testing.T) {
		l := f.Markup("{rainbow", NewLayout())
		if got := lineString(l.Line(0)); got != "{rainbow" {
			t.Errorf("line = %q, want %q", got, "{rainbow")
		}
		if !approxEq(l.Width(), 0) {
			t.Errorf("Width() = %v, want 0", l.Width())
		}
	})

	t.Run("stops at newline", func(t *testing.T) {
		l := f.Markup("{a\nb}c", NewLayout())
		if l.LineCount() != 2 {
			t.Fatalf("LineCount() = %d, want 2", l.LineCount())
		}
		if got := lineString(l.Line(0)); got != "{a" {
			t.Errorf("line 0 = %q, want %q", got, "{a")
		}
		if got := lineString(l.Line(1)); got != "b}c" {
			t.Errorf("line 1 = %q, want %q", got, "b}c")
		}
		// "b}c" after the break is ordinary colored text.
		if !approxEq(l.Line(1).Width, 28) {
			t.Errorf("line 1 width = %v, want 28", l.Line(1).Width)
		}
	})
}

// TestMarkupHardBreaks tests that newlines start new lines, are stored at
// the head of the line they open, and never carry zero color.
func TestMarkupHardBreaks(t *testing.T) {
	f := newTestFont(t)

	t.Run("two lines", func(t *testing.T) {
		l := f.Markup("ab\ncd", NewLayout())
		if l.LineCount() != 2 {
			t.Fatalf("LineCount() = %d, want 2", l.LineCount())
		}
		if got := lineRunes(l.Line(0)); got != "ab" {
			t.Errorf("line 0 runes = %q, want %q", got, "ab")
		}
		if got := lineRunes(l.Line(1)); got != "\ncd" {
			t.Errorf("line 1 runes = %q, want %q", got, "\ncd")
		}
		if !l.Line(1).Glyphs[0].IsHardBreak() {
			t.Errorf("head glyph %+v is not a hard break", l.Line(1).Glyphs[0])
		}
		if !approxEq(l.Line(0).Width, 20) || !approxEq(l.Line(1).Width, 20) {
			t.Errorf("widths = %v, %v, want 20, 20", l.Line(0).Width, l.Line(1).Width)
		}
	})

	t.Run("blank line", func(t *testing.T) {
		l := f.Markup("a\n\nb", NewLayout())
		if l.LineCount() != 3 {
			t.Fatalf("LineCount() = %d, want 3", l.LineCount())
		}
		if got := lineRunes(l.Line(1)); got != "\n" {
			t.Errorf("line 1 runes = %q, want %q", got, "\n")
		}
	})

	t.Run("leading newline", func(t *testing.T) {
		l := f.Markup("\nx", NewLayout())
		if l.LineCount() != 2 {
			t.Fatalf("LineCount() = %d, want 2", l.LineCount())
		}
		if len(l.Line(0).Glyphs) != 0 {
			t.Errorf("line 0 has %d glyphs, want 0", len(l.Line(0).Glyphs))
		}
	})

	t.Run("transparent state falls back", func(t *testing.T) {
		l := f.Markup("[CLEAR]a\nb", NewLayout())
		head := l.Line(1).Glyphs[0]
		if head.Color != White {
			t.Errorf("break color = %v, want white", head.Color)
		}
		if !head.IsHardBreak() {
			t.Errorf("glyph %+v is not a hard break", head)
		}
	})

	t.Run("transparent state uses base color", func(t *testing.T) {
		l := NewLayout().SetBaseColor(Red)
		f.Markup("[CLEAR]a\nb", l)
		if got := l.Line(1).Glyphs[0].Color; got != Red {
			t.Errorf("break color = %v, want red", got)
		}
	})
}

// TestMarkupBaseColor tests that the layout's base color seeds the text
// color and receives all fallbacks.
func TestMarkupBaseColor(t *testing.T) {
	f := newTestFont(t)
	l := NewLayout().SetBaseColor(Red)
	f.Markup("a[LIME]b[]c[#Z]d", l)

	glyphs := l.Line(0).Glyphs
	want := []RGBA{Red, Green, Red, Red}
	if len(glyphs) != len(want) {
		t.Fatalf("got %d glyphs, want %d", len(glyphs), len(want))
	}
	for i, c := range want {
		if glyphs[i].Color != c {
			t.Errorf("glyph %d color = %v, want %v", i, glyphs[i].Color, c)
		}
	}
}

// TestMarkupIncremental tests appending onto an existing layout: the same
// font continues the current line, a different font clears first.
func TestMarkupIncremental(t *testing.T) {
	f := newTestFont(t)
	l := NewLayout()
	f.Markup("[*]ab", l)
	f.Markup("cd", l)

	if l.LineCount() != 1 {
		t.Fatalf("LineCount() = %d, want 1", l.LineCount())
	}
	if got := lineString(l.Line(0)); got != "abcd" {
		t.Errorf("line = %q, want %q", got, "abcd")
	}
	if !approxEq(l.Width(), 40) {
		t.Errorf("Width() = %v, want 40", l.Width())
	}
	// Style state does not leak across calls.
	if got := l.Line(0).Glyphs[2].Style; got != 0 {
		t.Errorf("appended glyph style = %v, want plain", got)
	}

	f2 := newTestFont(t)
	f2.Markup("ef", l)
	if got := lineString(l.Line(0)); got != "ef" {
		t.Errorf("after font switch line = %q, want %q", got, "ef")
	}
	if l.Font() != f2 {
		t.Error("Font() is not the new font")
	}
}

// TestMarkupRescaledHeight tests that each call sets the current line to
// the font's present cell height, shrink included, while finished lines
// keep the height they were built at.
func TestMarkupRescaledHeight(t *testing.T) {
	f := newTestFont(t)
	l := f.Markup("a\nb", NewLayout())
	if !approxEq(l.Height(), 32) {
		t.Fatalf("Height() = %v, want 32", l.Height())
	}

	f.SetScale(1, 0.5)
	f.Markup("c", l)
	if !approxEq(l.Line(0).Height, 16) {
		t.Errorf("first line height = %v, want 16", l.Line(0).Height)
	}
	if !approxEq(l.Line(1).Height, 8) {
		t.Errorf("current line height = %v, want 8", l.Line(1).Height)
	}
	if !approxEq(l.Height(), 24) {
		t.Errorf("Height() = %v, want 24", l.Height())
	}
}
