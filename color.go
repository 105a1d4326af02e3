package richtext

import (
	"fmt"
	"image/color"
)

// RGBA is a packed 32-bit color in RGBA8888 channel order: red in the top
// byte, alpha in the bottom byte. Every Glyph carries one; the layout engine
// never interprets it beyond two reserved meanings: the zero value (fully
// transparent black) marks a non-rendering glyph with zero advance, and the
// layout base color is substituted for unresolvable markup colors.
type RGBA uint32

// NewRGBA packs four 8-bit channels into an RGBA color.
func NewRGBA(r, g, b, a uint8) RGBA {
	return RGBA(r)<<24 | RGBA(g)<<16 | RGBA(b)<<8 | RGBA(a)
}

// RGB packs three 8-bit channels into a fully opaque RGBA color.
func RGB(r, g, b uint8) RGBA {
	return NewRGBA(r, g, b, 0xFF)
}

// R returns the red channel.
func (c RGBA) R() uint8 { return uint8(c >> 24) }

// G returns the green channel.
func (c RGBA) G() uint8 { return uint8(c >> 16) }

// B returns the blue channel.
func (c RGBA) B() uint8 { return uint8(c >> 8) }

// A returns the alpha channel.
func (c RGBA) A() uint8 { return uint8(c) }

// Color converts the packed value to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}
}

// FromColor converts a standard color.Color to a packed RGBA.
func FromColor(c color.Color) RGBA {
	r, g, b, a := c.RGBA()
	return NewRGBA(uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8))
}

// String formats the color as "#RRGGBBAA".
func (c RGBA) String() string {
	return fmt.Sprintf("#%08X", uint32(c))
}

// Hex parses a hex color string with an optional leading '#'.
// Supported forms: "RGB", "RGBA", "RRGGBB", "RRGGBBAA". Three- and six-digit
// forms are fully opaque. Reports false for any other length or for any
// non-hex digit; callers substitute their own fallback color.
func Hex(hex string) (RGBA, bool) {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b uint32
	a := uint32(255)

	switch len(hex) {
	case 3: // RGB
		if !parseHex(hex[0:1], &r) || !parseHex(hex[1:2], &g) || !parseHex(hex[2:3], &b) {
			return 0, false
		}
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		if !parseHex(hex[0:1], &r) || !parseHex(hex[1:2], &g) || !parseHex(hex[2:3], &b) || !parseHex(hex[3:4], &a) {
			return 0, false
		}
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		if !parseHex(hex[0:2], &r) || !parseHex(hex[2:4], &g) || !parseHex(hex[4:6], &b) {
			return 0, false
		}
	case 8: // RRGGBBAA
		if !parseHex(hex[0:2], &r) || !parseHex(hex[2:4], &g) || !parseHex(hex[4:6], &b) || !parseHex(hex[6:8], &a) {
			return 0, false
		}
	default:
		return 0, false
	}

	return NewRGBA(uint8(r), uint8(g), uint8(b), uint8(a)), true
}

// parseHex is a helper for hex parsing.
func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}

// Common colors.
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(255, 255, 255)
	Red         = RGB(255, 0, 0)
	Green       = RGB(0, 255, 0)
	Blue        = RGB(0, 0, 255)
	Yellow      = RGB(255, 255, 0)
	Cyan        = RGB(0, 255, 255)
	Magenta     = RGB(255, 0, 255)
	Transparent = RGBA(0)
)
