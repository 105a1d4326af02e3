package richtext

// Metrics supplies horizontal glyph metrics. Implementations exist for
// OpenType fonts (OpenTypeFont, ShapedFont) and hand-built grids (AtlasFont).
type Metrics interface {
	// Advance returns the horizontal advance and left-side bearing of r
	// under style, in unscaled units, and whether the glyph exists.
	Advance(r rune, style Style) (advance, offsetX float64, ok bool)

	// CellHeight returns the unscaled line height.
	CellHeight() float64
}

// Kerner adjusts spacing between adjacent glyphs. The returned value is in
// unscaled units and is usually negative.
type Kerner interface {
	Kern(prev, next rune) float64
}

// ColorLookup resolves markup color names to packed colors.
type ColorLookup interface {
	Lookup(name string) (RGBA, bool)
}

// Font binds a metrics source to the layout engine together with the knobs
// wrapping reads: scale, monospace handling, kerning, color names, and an
// optional font family for [@Name] markup.
type Font struct {
	metrics Metrics
	kerner  Kerner
	colors  ColorLookup
	family  *Family
	mono    bool
	scaleX  float64
	scaleY  float64
}

// NewFont returns a Font over m with scale 1 and no kerning, colors, or
// family attached. It returns ErrNilMetrics when m is nil.
func NewFont(m Metrics) (*Font, error) {
	if m == nil {
		return nil, ErrNilMetrics
	}
	return &Font{metrics: m, scaleX: 1, scaleY: 1}, nil
}

// SetKerner attaches pair kerning. Nil detaches it.
func (f *Font) SetKerner(k Kerner) *Font {
	f.kerner = k
	return f
}

// SetColors attaches a color name resolver used by [NAME] and [|NAME] tags.
// Nil falls back to the package palette.
func (f *Font) SetColors(c ColorLookup) *Font {
	f.colors = c
	return f
}

// SetMono marks the font as monospaced. Monospaced fonts add the left-side
// bearing into every advance and ignore superscript width reduction.
func (f *Font) SetMono(mono bool) *Font {
	f.mono = mono
	return f
}

// Mono reports whether the font is monospaced.
func (f *Font) Mono() bool { return f.mono }

// SetScale sets the horizontal and vertical scale factors. Values at or
// below zero are replaced by one.
func (f *Font) SetScale(x, y float64) *Font {
	if x <= 0 {
		x = 1
	}
	if y <= 0 {
		y = 1
	}
	f.scaleX = x
	f.scaleY = y
	return f
}

// ScaleX returns the horizontal scale factor.
func (f *Font) ScaleX() float64 { return f.scaleX }

// ScaleY returns the vertical scale factor.
func (f *Font) ScaleY() float64 { return f.scaleY }

// Metrics returns the metrics source.
func (f *Font) Metrics() Metrics { return f.metrics }

// Family returns the attached font family, or nil.
func (f *Font) Family() *Family { return f.family }

// CellHeight returns the scaled line height.
func (f *Font) CellHeight() float64 {
	return f.metrics.CellHeight() * f.scaleY
}

// resolve returns the family member selected by the style's family index,
// falling back to the family's primary font for empty slots. Fonts without
// a family resolve to themselves.
func (f *Font) resolve(style Style) *Font {
	if f.family == nil {
		return f
	}
	return f.family.fontAt(style.FamilyIndex())
}

// advanceRune maps structural runes to the rune actually measured.
func advanceRune(r rune) rune {
	if r == EscapedBracket {
		return '['
	}
	return r
}

// GlyphAdvance returns the scaled horizontal advance of g. Zero-color
// glyphs, newline glyphs, and glyphs missing from the font contribute no
// width. Monospaced fonts fold the left-side bearing into the advance;
// otherwise a superscript, subscript, or midscript style halves it.
func (f *Font) GlyphAdvance(g Glyph) float64 {
	if g.Color == 0 || g.Rune == hardBreak {
		return 0
	}
	ft := f.resolve(g.Style)
	adv, off, ok := ft.metrics.Advance(advanceRune(g.Rune), g.Style)
	if !ok {
		return 0
	}
	w := adv * ft.scaleX
	if ft.mono {
		w += off * ft.scaleX
	} else if g.Style.Script() != ScriptNone {
		w *= 0.5
	}
	return w
}

// KerningPair returns the scaled kerning adjustment between prev and next
// under style. Fonts without a Kerner return zero.
func (f *Font) KerningPair(prev, next rune, style Style) float64 {
	ft := f.resolve(style)
	if ft.kerner == nil {
		return 0
	}
	return ft.kerner.Kern(advanceRune(prev), advanceRune(next)) * ft.scaleX
}

// lookupColor resolves a markup color name through the font's resolver or
// the package palette.
func (f *Font) lookupColor(name string) (RGBA, bool) {
	if f.colors != nil {
		return f.colors.Lookup(name)
	}
	return defaultPalette.Lookup(name)
}

// WidthOf returns the width of text laid out on a single unlimited line,
// markup included.
func (f *Font) WidthOf(text string) float64 {
	l := GetLayout()
	defer PutLayout(l)
	f.Markup(text, l)
	return l.Width()
}

// MarkupGlyph applies the markup in text and returns the first content
// glyph it produces, or false when text yields no glyph.
func (f *Font) MarkupGlyph(text string) (Glyph, bool) {
	l := GetLayout()
	defer PutLayout(l)
	f.Markup(text, l)
	for _, ln := range l.lines {
		for _, g := range ln.Glyphs {
			if g.Rune != hardBreak {
				return g, true
			}
		}
	}
	return Glyph{}, false
}
