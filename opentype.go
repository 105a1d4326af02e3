package richtext

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// OpenTypeFont reads glyph metrics from an OpenType or TrueType font
// through the x/image sfnt parser. It implements Metrics and Kerner, using
// the font's "kern" table for pair adjustments. Left-side bearings are
// reported as zero; grids that need them should use AtlasFont.
//
// OpenTypeFont is safe for concurrent use.
type OpenTypeFont struct {
	font       *opentype.Font
	ppem       fixed.Int26_6
	cellHeight float64

	mu  sync.Mutex
	buf sfnt.Buffer
}

// ParseOpenType parses font data and fixes its metrics at sizePx pixels
// per em.
func ParseOpenType(data []byte, sizePx float64) (*OpenTypeFont, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("richtext: parse font: %w", err)
	}
	return NewOpenTypeFont(f, sizePx)
}

// NewOpenTypeFont wraps an already parsed font at sizePx pixels per em.
func NewOpenTypeFont(f *opentype.Font, sizePx float64) (*OpenTypeFont, error) {
	o := &OpenTypeFont{font: f, ppem: fixed.Int26_6(sizePx * 64)}
	m, err := f.Metrics(&o.buf, o.ppem, font.HintingFull)
	if err != nil {
		return nil, fmt.Errorf("richtext: font metrics: %w", err)
	}
	o.cellHeight = fixedToFloat(m.Height)
	return o, nil
}

// Name returns the font's family name, or empty when absent.
func (o *OpenTypeFont) Name() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	name, err := o.font.Name(&o.buf, sfnt.NameIDFamily)
	if err != nil {
		return ""
	}
	return name
}

// Advance implements Metrics. Runes without a glyph report no glyph, and
// style bits are ignored.
func (o *OpenTypeFont) Advance(r rune, _ Style) (advance, offsetX float64, ok bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	idx, err := o.font.GlyphIndex(&o.buf, r)
	if err != nil || idx == 0 {
		return 0, 0, false
	}
	adv, err := o.font.GlyphAdvance(&o.buf, idx, o.ppem, font.HintingFull)
	if err != nil {
		return 0, 0, false
	}
	return fixedToFloat(adv), 0, true
}

// CellHeight implements Metrics.
func (o *OpenTypeFont) CellHeight() float64 { return o.cellHeight }

// Kern implements Kerner. Pairs without an entry, or runes without a
// glyph, report zero.
func (o *OpenTypeFont) Kern(prev, next rune) float64 {
	o.mu.Lock()
	defer o.mu.Unlock()
	i0, err := o.font.GlyphIndex(&o.buf, prev)
	if err != nil || i0 == 0 {
		return 0
	}
	i1, err := o.font.GlyphIndex(&o.buf, next)
	if err != nil || i1 == 0 {
		return 0
	}
	k, err := o.font.Kern(&o.buf, i0, i1, o.ppem, font.HintingFull)
	if err != nil {
		return 0
	}
	return fixedToFloat(k)
}

// fixedToFloat converts a 26.6 fixed-point value to float64.
func fixedToFloat(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}
