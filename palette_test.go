package richtext

import "testing"

// TestPaletteLookup tests the preloaded SVG names and case folding.
func TestPaletteLookup(t *testing.T) {
	p := NewPalette()

	tests := []struct {
		name string
		want RGBA
		ok   bool
	}{
		{"red", Red, true},
		{"RED", Red, true},
		{"Red", Red, true},
		{"royalblue", RGBA(0x4169E1FF), true},
		{"lime", Green, true},
		{"clear", Transparent, true},
		{"CLEAR", Transparent, true},
		{"notacolor", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := p.Lookup(tt.name)
			if ok != tt.ok || got != tt.want {
				t.Errorf("Lookup(%q) = %v, %v, want %v, %v", tt.name, got, ok, tt.want, tt.ok)
			}
		})
	}
}

// TestPaletteRegister tests adding custom names with folding applied on
// both sides.
func TestPaletteRegister(t *testing.T) {
	p := NewPalette()
	brand := NewRGBA(0x12, 0x34, 0x56, 0xFF)
	p.Register("BrandBlue", brand)

	if got, ok := p.Lookup("brandblue"); !ok || got != brand {
		t.Errorf("Lookup(brandblue) = %v, %v, want %v, true", got, ok, brand)
	}
	if got, ok := p.Lookup("BRANDBLUE"); !ok || got != brand {
		t.Errorf("Lookup(BRANDBLUE) = %v, %v, want %v, true", got, ok, brand)
	}

	// Re-registration replaces.
	p.Register("brandblue", Red)
	if got, _ := p.Lookup("BrandBlue"); got != Red {
		t.Errorf("after replace Lookup = %v, want red", got)
	}
}

// TestDefaultPalette tests the package-wide palette shared by fonts
// without their own resolver.
func TestDefaultPalette(t *testing.T) {
	p := DefaultPalette()
	if p == nil {
		t.Fatal("DefaultPalette() = nil")
	}
	if got, ok := p.Lookup("white"); !ok || got != White {
		t.Errorf("Lookup(white) = %v, %v, want white, true", got, ok)
	}
}

// TestFontCustomColors tests that a font-level resolver overrides the
// package palette.
func TestFontCustomColors(t *testing.T) {
	p := NewPalette()
	p.Register("accent", Magenta)
	f := newTestFont(t).SetColors(p)

	l := f.Markup("[ACCENT]x", NewLayout())
	if got := l.Line(0).Glyphs[0].Color; got != Magenta {
		t.Errorf("custom color = %v, want magenta", got)
	}
}
