package fill

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/hexgen/internal/canvas"
	"github.com/jmylchreest/hexgen/internal/colour"
)

func TestRegionsSolid(t *testing.T) {
	c := canvas.New(7, 3)
	c.Fill(blue)

	regions := Regions(c, Four)
	require.Len(t, regions, 1)
	assert.Equal(t, Region{Colour: blue, Seed: image.Pt(0, 0), Area: 21, Bounds: image.Rect(0, 0, 7, 3)}, regions[0])
}

func TestRegionsDiagonalPair(t *testing.T) {
	// Two red pixels touching only at a corner.
	c := canvas.New(3, 3)
	c.Fill(white)
	c.Set(0, 0, red)
	c.Set(1, 1, red)

	four := Regions(c, Four)
	assert.Len(t, four, 3, "two red singletons and the white remainder")

	eight := Regions(c, Eight)
	require.Len(t, eight, 2)
	assert.Equal(t, red, eight[0].Colour)
	assert.Equal(t, 2, eight[0].Area)
	assert.Equal(t, image.Rect(0, 0, 2, 2), eight[0].Bounds)
}

func TestRegionsHexagon(t *testing.T) {
	c, h := hexagonCanvas(128, image.Pt(40, 30), 20, black, white)
	_, err := Flood(c, h.Seed(), red)
	require.NoError(t, err)

	regions := Regions(c, Four)
	counts := map[colour.Packed]int{}
	area := 0
	for _, r := range regions {
		counts[r.Colour]++
		area += r.Area
	}
	assert.Equal(t, 128*128, area)
	assert.Equal(t, 1, counts[black])
	assert.Equal(t, 1, counts[red])
	assert.Equal(t, c.Count(red), regionArea(regions, red))
}

func TestRegionsDoesNotModify(t *testing.T) {
	c, _ := hexagonCanvas(64, image.Pt(20, 20), 10, black, white)
	before := c.Clone()
	Regions(c, Eight)
	assert.Equal(t, before.Pix, c.Pix)
}

func regionArea(regions []Region, want colour.Packed) int {
	n := 0
	for _, r := range regions {
		if r.Colour == want {
			n += r.Area
		}
	}
	return n
}
