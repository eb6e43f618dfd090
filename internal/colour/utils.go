package colour

import (
	"image/color"
	"math"
)

// Luminance calculates the relative luminance of a colour according to WCAG 2.0.
// Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func Luminance(c color.Color) float64 {
	r, g, b, _ := c.RGBA()
	// Convert from 16-bit to 8-bit.
	rf := gammaCorrect(float64(r>>8) / 255.0)
	gf := gammaCorrect(float64(g>>8) / 255.0)
	bf := gammaCorrect(float64(b>>8) / 255.0)

	return 0.2126*rf + 0.7152*gf + 0.0722*bf
}

// gammaCorrect applies gamma correction to a colour component.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio calculates the contrast ratio between two colours according to WCAG 2.0.
// Returns a value between 1 and 21, where 21 is maximum contrast (black vs white).
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func ContrastRatio(c1, c2 color.Color) float64 {
	l1 := Luminance(c1)
	l2 := Luminance(c2)

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}

// MinContrastRatio returns the lowest contrast ratio between background and
// any of the given colours, or 0 when there are none.
func MinContrastRatio(background color.Color, colours ...color.Color) float64 {
	lowest := 0.0
	for i, c := range colours {
		ratio := ContrastRatio(background, c)
		if i == 0 || ratio < lowest {
			lowest = ratio
		}
	}
	return lowest
}
