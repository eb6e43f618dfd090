package colour

import (
	"fmt"
	"strings"
)

// ANSI escape codes for 24-bit terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

func ansiBg(p Packed) string {
	r, g, b := p.RGB()
	return fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, r, g, b, ansiSuffix)
}

func ansiFg(p Packed) string {
	r, g, b := p.RGB()
	return fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, r, g, b, ansiSuffix)
}

// Swatch returns a solid block of p, width cells wide, for a true-colour
// terminal.
func Swatch(p Packed, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	return ansiBg(p) + strings.Repeat(" ", width) + ansiReset
}

// SwatchWithText centres text on a block of p. The text is black or white,
// whichever reads better on p.
func SwatchWithText(p Packed, text string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	fg := Packed(0xffffff)
	if ContrastRatio(p, Packed(0x000000)) > ContrastRatio(p, fg) {
		fg = 0x000000
	}

	switch {
	case len(text) > width:
		text = text[:width]
	case len(text) < width:
		pad := (width - len(text)) / 2
		text = strings.Repeat(" ", pad) + text + strings.Repeat(" ", width-len(text)-pad)
	}
	return ansiBg(p) + ansiFg(fg) + text + ansiReset
}

// FormatWithLabel formats a swatch, a label and the hex code on one line.
func FormatWithLabel(p Packed, label string, width int) string {
	return fmt.Sprintf("%s  %-12s %s", Swatch(p, width), label, p.Hex())
}
