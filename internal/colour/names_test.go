package colour

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamed(t *testing.T) {
	tests := []struct {
		name string
		want Packed
		ok   bool
	}{
		{"black", 0x000000, true},
		{"Navy", 0x000080, true},
		{"dark-blue", 0x000080, true},
		{"Bright White", 0xffffff, true},
		{"grey", 0xe5e5e5, true},
		{"color4", 0x2472c8, true},
		{"chartreuse", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Named(tt.name)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNamesResolve(t *testing.T) {
	names := Names()
	assert.Contains(t, names, "orange")
	assert.Contains(t, names, "magenta")
	assert.NotContains(t, names, "purple", "aliases are not listed")
	assert.Len(t, names, len(namedColours))
	for _, n := range names {
		_, ok := Named(n)
		assert.True(t, ok, n)
	}
}

func TestParse(t *testing.T) {
	c, err := Parse("orange")
	require.NoError(t, err)
	assert.Equal(t, Packed(0xffa500), c)

	c, err = Parse("#102030")
	require.NoError(t, err)
	assert.Equal(t, Packed(0x102030), c)

	_, err = Parse("not-a-colour")
	assert.ErrorContains(t, err, "colour name: black, red,")
	assert.ErrorContains(t, err, "navy")
	assert.NotContains(t, err.Error(), "color0")
}

func TestSwatch(t *testing.T) {
	s := Swatch(0x102030, 3)
	assert.Equal(t, "\033[48;2;16;32;48m   \033[0m", s)
	assert.Equal(t, Swatch(0x102030, defaultWidth), Swatch(0x102030, 0))
}

func TestSwatchWithText(t *testing.T) {
	dark := SwatchWithText(0x000000, "bg", 6)
	assert.Contains(t, dark, "\033[38;2;255;255;255m", "white text on black")
	assert.Contains(t, dark, "  bg  ")

	light := SwatchWithText(0xffffff, "toolong", 4)
	assert.Contains(t, light, "\033[38;2;0;0;0m", "black text on white")
	assert.Contains(t, light, "tool\033[0m")
}

func TestFormatWithLabel(t *testing.T) {
	line := FormatWithLabel(0xff0000, "shape 1", 2)
	assert.True(t, strings.HasSuffix(line, "shape 1      #ff0000"), line)
}
