package richtext

import "math"

// Align specifies horizontal placement of lines within the layout width.
type Align uint8

const (
	// AlignLeft places lines at the left edge (default).
	AlignLeft Align = iota
	// AlignCenter centers lines horizontally.
	AlignCenter
	// AlignRight places lines at the right edge.
	AlignRight
)

// String returns the string representation of the alignment.
func (a Align) String() string {
	switch a {
	case AlignCenter:
		return "Center"
	case AlignRight:
		return "Right"
	default:
		return "Left"
	}
}

// Layout is an ordered sequence of Lines plus the configuration that wrapping
// decisions read: target width, line budget, ellipsis, base color, alignment.
// A Layout always holds at least one Line, possibly empty.
//
// A Layout is not safe for concurrent mutation. Read-only iteration is safe
// only while no Markup or RegenerateLayout call is in flight.
type Layout struct {
	lines       []*Line
	font        *Font
	targetWidth float64
	maxLines    int
	ellipsis    string
	baseColor   RGBA
	align       Align
	atLimit     bool
}

// NewLayout returns an empty Layout with default configuration: unlimited
// width and line count, no ellipsis, white base color, left alignment.
func NewLayout() *Layout {
	l := &Layout{}
	l.applyDefaults()
	l.lines = append(l.lines, newLine(0))
	return l
}

func (l *Layout) applyDefaults() {
	l.targetWidth = 0
	l.maxLines = math.MaxInt32
	l.ellipsis = ""
	l.baseColor = White
	l.align = AlignLeft
}

// SetTargetWidth sets the wrap width. Zero or negative disables wrapping.
func (l *Layout) SetTargetWidth(w float64) *Layout {
	l.targetWidth = w
	return l
}

// TargetWidth returns the wrap width; zero or negative means unlimited.
func (l *Layout) TargetWidth() float64 { return l.targetWidth }

// SetMaxLines caps the number of lines. Values below one are treated as one.
func (l *Layout) SetMaxLines(n int) *Layout {
	if n < 1 {
		n = 1
	}
	l.maxLines = n
	return l
}

// MaxLines returns the line cap.
func (l *Layout) MaxLines() int { return l.maxLines }

// SetEllipsis sets the string substituted for truncated content when the
// line cap is reached. Empty disables ellipsis truncation.
func (l *Layout) SetEllipsis(s string) *Layout {
	l.ellipsis = s
	return l
}

// Ellipsis returns the configured ellipsis string.
func (l *Layout) Ellipsis() string { return l.ellipsis }

// SetBaseColor sets the color markup reverts to on "[]", failed color
// lookups, and ellipsis glyphs.
func (l *Layout) SetBaseColor(c RGBA) *Layout {
	l.baseColor = c
	return l
}

// BaseColor returns the base color.
func (l *Layout) BaseColor() RGBA { return l.baseColor }

// SetAlign sets the horizontal alignment used by OffsetX.
func (l *Layout) SetAlign(a Align) *Layout {
	l.align = a
	return l
}

// Align returns the horizontal alignment.
func (l *Layout) Align() Align { return l.align }

// Font returns the font that produced the layout's glyphs, or nil before the
// first markup call. Markup with a different font clears the layout first.
func (l *Layout) Font() *Font { return l.font }

// Full reports whether the layout hit its line cap and stopped accepting
// content.
func (l *Layout) Full() bool { return l.atLimit }

// LineCount returns the number of lines.
func (l *Layout) LineCount() int { return len(l.lines) }

// Line returns the i-th line, top to bottom.
func (l *Layout) Line(i int) *Line { return l.lines[i] }

// Lines returns the line slice for iteration. Callers must not mutate it.
func (l *Layout) Lines() []*Line { return l.lines }

// GlyphCount returns the total number of stored glyphs across all lines,
// including structural break and marker glyphs.
func (l *Layout) GlyphCount() int {
	n := 0
	for _, ln := range l.lines {
		n += len(ln.Glyphs)
	}
	return n
}

// Width returns the widest line's width.
func (l *Layout) Width() float64 {
	var w float64
	for _, ln := range l.lines {
		if ln.Width > w {
			w = ln.Width
		}
	}
	return w
}

// Height returns the sum of all line heights.
func (l *Layout) Height() float64 {
	var h float64
	for _, ln := range l.lines {
		h += ln.Height
	}
	return h
}

// OffsetX returns the horizontal draw offset for a line of the given width
// under the configured alignment. The container is the target width when
// wrapping is enabled, otherwise the layout's own width. Over-width lines
// never shift left of the origin.
func (l *Layout) OffsetX(lineWidth float64) float64 {
	if l.align == AlignLeft {
		return 0
	}
	container := l.targetWidth
	if container <= 0 {
		container = l.Width()
	}
	offset := container - lineWidth
	if l.align == AlignCenter {
		offset /= 2
	}
	if offset <= 0 {
		return 0
	}
	return offset
}

// Add appends a glyph to the current line. A newline glyph starts a new line
// instead and is stored at the head of that line so re-layout can replay the
// break. Once the layout is full every glyph is dropped.
func (l *Layout) Add(g Glyph) *Layout {
	if l.atLimit {
		return l
	}
	if g.Rune == hardBreak {
		if line := l.pushLine(); line != nil {
			line.append(g)
		}
		return l
	}
	l.peekLine().append(g)
	return l
}

// peekLine returns the current (last) line. The line slice is never empty.
func (l *Layout) peekLine() *Line {
	return l.lines[len(l.lines)-1]
}

// pushLine starts a new line inheriting the current line's height, or marks
// the layout full and returns nil when the line cap is reached.
func (l *Layout) pushLine() *Line {
	if len(l.lines) >= l.maxLines {
		l.atLimit = true
		return nil
	}
	line := newLine(l.peekLine().Height)
	l.lines = append(l.lines, line)
	return line
}

// Clear removes all content, leaving one empty line. Configuration and the
// font binding are kept.
func (l *Layout) Clear() *Layout {
	l.lines = l.lines[:0]
	l.lines = append(l.lines, newLine(0))
	l.atLimit = false
	return l
}

// Reset clears content, unbinds the font, and restores the default
// configuration. Pooled layouts are reset on release.
func (l *Layout) Reset() *Layout {
	l.Clear()
	l.font = nil
	l.applyDefaults()
	return l
}
