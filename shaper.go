package richtext

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// ShapedFont measures glyphs through the go-text HarfBuzz shaper, honoring
// kerning and other OpenType positioning that plain advance lookups miss.
// It implements Metrics and Kerner. Pair adjustments come from shaping the
// pair and subtracting the single-rune advances, which folds kern tables
// and GPOS positioning into one number.
//
// Shaping is comparatively expensive, so results are cached per rune and
// per pair. ShapedFont is safe for concurrent use: the parsed font is
// read-only, shaper instances are pooled, and the caches are guarded.
type ShapedFont struct {
	font       *font.Font
	size       fixed.Int26_6
	cellHeight float64

	pool sync.Pool

	mu        sync.RWMutex
	advCache  map[rune]advEntry
	kernCache map[[2]rune]float64
}

type advEntry struct {
	adv float64
	ok  bool
}

// ParseShapedFont parses TrueType or OpenType font data and fixes its
// metrics at sizePx pixels per em.
func ParseShapedFont(data []byte, sizePx float64) (*ShapedFont, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("richtext: parse font: %w", err)
	}
	s := &ShapedFont{
		font: face.Font,
		size: fixed.Int26_6(sizePx * 64),
		pool: sync.Pool{
			New: func() any { return &shaping.HarfbuzzShaper{} },
		},
		advCache:  make(map[rune]advEntry),
		kernCache: make(map[[2]rune]float64),
	}
	out := s.shape([]rune{' '})
	lb := out.LineBounds
	s.cellHeight = fixedToFloat(lb.Ascent - lb.Descent + lb.Gap)
	return s, nil
}

// shape runs one left-to-right shaping pass over rs. The font.Face wrapper
// is created per call because it is not safe for concurrent use, while the
// underlying font is.
func (s *ShapedFont) shape(rs []rune) shaping.Output {
	in := shaping.Input{
		Text:      rs,
		RunStart:  0,
		RunEnd:    len(rs),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(s.font),
		Size:      s.size,
		Script:    runScript(rs),
		Language:  language.NewLanguage("en"),
	}
	hb := s.pool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(in)
	s.pool.Put(hb)
	return out
}

// measure returns the shaped width of rs and whether any rune mapped to a
// real glyph.
func (s *ShapedFont) measure(rs []rune) (float64, bool) {
	out := s.shape(rs)
	if len(out.Glyphs) == 0 {
		return 0, false
	}
	var w fixed.Int26_6
	known := false
	for _, g := range out.Glyphs {
		w += g.Advance
		if g.GlyphID != 0 {
			known = true
		}
	}
	return fixedToFloat(w), known
}

// Advance implements Metrics. Style bits are ignored and the left-side
// bearing is reported as zero.
func (s *ShapedFont) Advance(r rune, _ Style) (advance, offsetX float64, ok bool) {
	s.mu.RLock()
	if e, hit := s.advCache[r]; hit {
		s.mu.RUnlock()
		return e.adv, 0, e.ok
	}
	s.mu.RUnlock()

	adv, known := s.measure([]rune{r})
	s.mu.Lock()
	s.advCache[r] = advEntry{adv: adv, ok: known}
	s.mu.Unlock()
	return adv, 0, known
}

// CellHeight implements Metrics.
func (s *ShapedFont) CellHeight() float64 { return s.cellHeight }

// Kern implements Kerner. Pairs where either rune has no glyph report
// zero.
func (s *ShapedFont) Kern(prev, next rune) float64 {
	key := [2]rune{prev, next}
	s.mu.RLock()
	if k, hit := s.kernCache[key]; hit {
		s.mu.RUnlock()
		return k
	}
	s.mu.RUnlock()

	var k float64
	a1, _, ok1 := s.Advance(prev, 0)
	a2, _, ok2 := s.Advance(next, 0)
	if ok1 && ok2 {
		if pw, ok := s.measure([]rune{prev, next}); ok {
			k = pw - a1 - a2
		}
	}
	s.mu.Lock()
	s.kernCache[key] = k
	s.mu.Unlock()
	return k
}

// runScript returns the script of the first visible rune, defaulting to
// Latin.
func runScript(rs []rune) language.Script {
	for _, r := range rs {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
