package richtext

import (
	"sync"

	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"
)

// Palette resolves color names for [NAME] and [|NAME] markup tags. Names
// are case-folded, so [RED], [red], and [Red] all resolve to the same
// color. Palette is safe for concurrent use.
type Palette struct {
	mu    sync.RWMutex
	names map[string]RGBA
}

// NewPalette returns a palette preloaded with the SVG 1.1 color names plus
// "clear", the fully transparent color.
func NewPalette() *Palette {
	p := &Palette{names: make(map[string]RGBA, len(colornames.Map)+1)}
	for name, c := range colornames.Map {
		p.names[name] = FromColor(c)
	}
	p.names["clear"] = Transparent
	return p
}

// Register adds or replaces a named color. The name is case-folded.
func (p *Palette) Register(name string, c RGBA) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.names[foldName(name)] = c
}

// Lookup resolves a color name. It implements ColorLookup.
func (p *Palette) Lookup(name string) (RGBA, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	c, ok := p.names[foldName(name)]
	return c, ok
}

// foldName normalizes a color name with Unicode case folding.
func foldName(s string) string {
	return cases.Fold().String(s)
}

var defaultPalette = NewPalette()

// DefaultPalette returns the package-wide palette used by fonts without
// their own ColorLookup. Colors registered on it are visible to all such
// fonts.
func DefaultPalette() *Palette {
	return defaultPalette
}
