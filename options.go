package richtext

import "math"

// LayoutOptions bundles layout configuration for batch application.
// The zero value of each field selects that setting's default, so the zero
// LayoutOptions restores the configuration NewLayout starts with.
type LayoutOptions struct {
	// TargetWidth is the wrap width. Zero or negative disables wrapping.
	TargetWidth float64

	// MaxLines caps the number of lines. Zero means unlimited.
	MaxLines int

	// Ellipsis replaces truncated content at the line cap. Empty disables
	// ellipsis truncation.
	Ellipsis string

	// BaseColor is the color markup reverts to. Zero means white.
	BaseColor RGBA

	// Align sets horizontal placement of lines.
	Align Align
}

// DefaultLayoutOptions returns options matching NewLayout's defaults.
func DefaultLayoutOptions() LayoutOptions {
	return LayoutOptions{
		TargetWidth: 0,
		MaxLines:    0,
		Ellipsis:    "",
		BaseColor:   White,
		Align:       AlignLeft,
	}
}

// Configure applies opts to the layout and returns it.
func (l *Layout) Configure(opts LayoutOptions) *Layout {
	l.SetTargetWidth(opts.TargetWidth)
	if opts.MaxLines > 0 {
		l.SetMaxLines(opts.MaxLines)
	} else {
		l.maxLines = math.MaxInt32
	}
	l.SetEllipsis(opts.Ellipsis)
	if opts.BaseColor != 0 {
		l.SetBaseColor(opts.BaseColor)
	} else {
		l.baseColor = White
	}
	l.SetAlign(opts.Align)
	return l
}
