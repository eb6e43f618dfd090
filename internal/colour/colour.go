// Package colour provides packed RGB colours and the random colour source
// used to pick backgrounds and contrasting shape colours.
package colour

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// SimilarityThreshold is the largest packed difference at which two colours
// are still considered too similar to tell apart.
const SimilarityThreshold = 100

// Packed is an RGB colour encoded as 0xRRGGBB. It has no alpha channel and
// is always opaque.
type Packed uint32

// Model converts any color.Color to a Packed colour, dropping alpha.
var Model color.Model = color.ModelFunc(packedModel)

// Pack composes a Packed colour from its channels.
func Pack(r, g, b uint8) Packed {
	return Packed(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB returns the individual channels.
func (p Packed) RGB() (r, g, b uint8) {
	return uint8(p >> 16), uint8(p >> 8), uint8(p)
}

// RGBA implements color.Color.
func (p Packed) RGBA() (r, g, b, a uint32) {
	r8, g8, b8 := p.RGB()
	r = uint32(r8)
	r |= r << 8
	g = uint32(g8)
	g |= g << 8
	b = uint32(b8)
	b |= b << 8
	return r, g, b, 0xffff
}

// Hex returns the colour as a hex string (e.g., "#1a2b3c").
func (p Packed) Hex() string {
	return fmt.Sprintf("#%06x", uint32(p)&0xffffff)
}

// String implements fmt.Stringer.
func (p Packed) String() string {
	return p.Hex()
}

// ParseHex parses "#rrggbb" or "rrggbb".
func ParseHex(s string) (Packed, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return 0, fmt.Errorf("invalid colour %q: expected 6-char hex", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	return Packed(v), nil
}

// Distance returns the absolute difference of the packed integer values.
// This is a crude stand-in for perceptual distance and is only used to
// keep shapes distinguishable from the background.
func Distance(a, b Packed) int {
	d := int64(a) - int64(b)
	if d < 0 {
		d = -d
	}
	return int(d)
}

// TooSimilar reports whether a and b are within SimilarityThreshold.
func TooSimilar(a, b Packed) bool {
	return Distance(a, b) <= SimilarityThreshold
}

func packedModel(c color.Color) color.Color {
	if p, ok := c.(Packed); ok {
		return p
	}
	r, g, b, _ := c.RGBA()
	return Pack(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}
