// Package richtext parses inline text markup into styled glyphs and lays
// them out into wrapped, width-measured lines.
//
// # Overview
//
// The pipeline has three stages:
//
//   - Metrics: a per-glyph advance source. ParseOpenType reads sfnt
//     tables, ParseShapedFont measures through the HarfBuzz shaper, and
//     AtlasFont is built by hand from atlas data.
//   - Font: binds a Metrics source with scale, kerning, color names, and
//     an optional Family of up to sixteen fonts.
//   - Layout: the output. Lines of Glyphs, each glyph carrying its rune,
//     style bits, and color, wrapped against a target width and truncated
//     with an ellipsis when a line budget runs out.
//
// # Quick Start
//
//	data, err := os.ReadFile("Roboto-Regular.ttf")
//	if err != nil {
//		log.Fatal(err)
//	}
//	mtr, err := richtext.ParseOpenType(data, 24)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fnt, _ := richtext.NewFont(mtr)
//	fnt.SetKerner(mtr)
//
//	layout := richtext.NewLayout().
//		SetTargetWidth(240).
//		SetMaxLines(3).
//		SetEllipsis("...")
//	fnt.Markup("[*]Bold[*], [/]oblique[/], and [RED]red[] text.", layout)
//
//	for _, line := range layout.Lines() {
//		render(line.Glyphs, line.Width, line.Height)
//	}
//
// # Markup
//
// Square-bracket tags toggle styles ([*] bold, [/] oblique, [_]
// underline, [~] strikethrough, [^] [=] [.] scripts), switch case modes
// ([;] [!] [,]), set colors ([#FF7700], [ORANGE], [|ORANGE]), select
// family fonts ([@Mono]), and reset everything ([]). See Font.Markup for
// the full table. [[ and {{ escape the bracket and brace, and {TOKEN}
// runs pass through with zero width for later passes to interpret.
//
// # Re-layout
//
// Layouts remember enough structure to be reflowed: after changing the
// target width, line budget, or ellipsis, Font.RegenerateLayout reshapes
// the stored glyphs into exactly the lines a fresh markup pass would
// produce, without the original text.
package richtext
