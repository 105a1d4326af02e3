// Command richtextdemo lays marked-up text out and prints the resulting
// line structure.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/richtext"
)

const sampleText = "[*]Markup[*] handles [/]styles[/], [ROYALBLUE]colors[], " +
	"{SHAKE}tokens{ENDSHAKE}, and wrapping. Escapes: [[literal] and {{literal}. " +
	"Case modes: [;]each word capitalized[;] and [!]shouting[!]."

func main() {
	var (
		fontPath = flag.String("font", "", "TTF/OTF font file; empty uses a built-in grid")
		size     = flag.Float64("size", 16, "font size in pixels")
		width    = flag.Float64("width", 320, "target wrap width; 0 disables wrapping")
		maxLines = flag.Int("max-lines", 0, "line budget; 0 means unlimited")
		ellipsis = flag.String("ellipsis", "...", "ellipsis for truncated content")
		align    = flag.String("align", "left", "alignment: left, center, or right")
		shaped   = flag.Bool("shaped", false, "measure through the HarfBuzz shaper")
		verbose  = flag.Bool("v", false, "log layout internals")
	)
	flag.Parse()

	if *verbose {
		richtext.SetLogger(slog.Default())
	}

	fnt, err := loadFont(*fontPath, *size, *shaped)
	if err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}

	text := sampleText
	if flag.NArg() > 0 {
		text = strings.Join(flag.Args(), " ")
	}

	layout := richtext.NewLayout().
		SetTargetWidth(*width).
		SetEllipsis(*ellipsis).
		SetAlign(parseAlign(*align))
	if *maxLines > 0 {
		layout.SetMaxLines(*maxLines)
	}
	fnt.Markup(text, layout)

	printLayout(layout)
}

// loadFont builds a Font from a font file, or from a built-in monospaced
// grid when no file is given.
func loadFont(path string, size float64, shaped bool) (*richtext.Font, error) {
	if path == "" {
		atlas := richtext.NewAtlasFont(size).AddRange(' ', '~', size*0.6)
		fnt, err := richtext.NewFont(atlas)
		if err != nil {
			return nil, err
		}
		return fnt.SetMono(true), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var (
		m richtext.Metrics
		k richtext.Kerner
	)
	if shaped {
		sf, err := richtext.ParseShapedFont(data, size)
		if err != nil {
			return nil, err
		}
		m, k = sf, sf
	} else {
		of, err := richtext.ParseOpenType(data, size)
		if err != nil {
			return nil, err
		}
		m, k = of, of
	}
	fnt, err := richtext.NewFont(m)
	if err != nil {
		return nil, err
	}
	return fnt.SetKerner(k), nil
}

func parseAlign(s string) richtext.Align {
	switch s {
	case "center":
		return richtext.AlignCenter
	case "right":
		return richtext.AlignRight
	default:
		return richtext.AlignLeft
	}
}

func printLayout(l *richtext.Layout) {
	fmt.Printf("%d line(s), %.1f x %.1f", l.LineCount(), l.Width(), l.Height())
	if l.Full() {
		fmt.Print(", truncated")
	}
	fmt.Println()

	for i, line := range l.Lines() {
		var b strings.Builder
		for _, g := range line.Glyphs {
			if r, ok := g.Display(); ok {
				b.WriteRune(r)
			}
		}
		fmt.Printf("%2d | %-50s  w=%6.1f  x=%5.1f\n",
			i, b.String(), line.Width, l.OffsetX(line.Width))
	}
}
