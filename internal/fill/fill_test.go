package fill

import (
	"errors"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/hexgen/internal/canvas"
	"github.com/jmylchreest/hexgen/internal/colour"
	"github.com/jmylchreest/hexgen/internal/raster"
)

const (
	black colour.Packed = 0x000000
	white colour.Packed = 0xffffff
	red   colour.Packed = 0xff0000
	blue  colour.Packed = 0x0000ff
)

// countingSurface counts how often each pixel is painted.
type countingSurface struct {
	*canvas.Canvas
	paints map[image.Point]int
}

func newCountingSurface(c *canvas.Canvas) *countingSurface {
	return &countingSurface{Canvas: c, paints: make(map[image.Point]int)}
}

func (s *countingSurface) Set(x, y int, c colour.Packed) {
	s.paints[image.Pt(x, y)]++
	s.Canvas.Set(x, y, c)
}

// stuckSurface ignores every write.
type stuckSurface struct {
	*canvas.Canvas
}

func (stuckSurface) Set(int, int, colour.Packed) {}

// hexagonCanvas returns a size x size canvas filled with bg and one
// hexagon outline drawn in outline.
func hexagonCanvas(size int, origin image.Point, edge int, bg, outline colour.Packed) (*canvas.Canvas, raster.Hexagon) {
	c := canvas.New(size, size)
	c.Fill(bg)
	h := raster.HexagonVertices(origin, edge)
	raster.DrawHexagon(c, h, outline)
	return c, h
}

func TestFloodBox(t *testing.T) {
	// 5x5 canvas with a one pixel blue frame around a 3x3 white interior.
	c := canvas.New(5, 5)
	c.Fill(white)
	for i := 0; i < 5; i++ {
		c.Set(i, 0, blue)
		c.Set(i, 4, blue)
		c.Set(0, i, blue)
		c.Set(4, i, blue)
	}

	res, err := Flood(c, image.Pt(2, 2), red)
	require.NoError(t, err)
	assert.Equal(t, 9, res.Painted)

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			want := red
			if x == 0 || y == 0 || x == 4 || y == 4 {
				want = blue
			}
			assert.Equal(t, want, c.Get(x, y), "pixel (%d,%d)", x, y)
		}
	}
}

func TestFloodHexagonCoverage(t *testing.T) {
	tests := []struct {
		name   string
		origin image.Point
		edge   int
	}{
		{"smallest", image.Pt(10, 10), 2},
		{"small", image.Pt(20, 20), 5},
		{"default", image.Pt(60, 80), 25},
		{"large", image.Pt(100, 100), 50},
		{"odd", image.Pt(90, 40), 33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, h := hexagonCanvas(255, tt.origin, tt.edge, black, white)
			outline := c.Clone()

			_, err := Flood(c, h.Seed(), red)
			require.NoError(t, err)

			// Outline pixels keep their colour.
			for i, p := range outline.Pix {
				if p == white {
					require.Equal(t, white, c.Pix[i], "outline pixel %d repainted", i)
				}
			}
			// The fill stays inside the hexagon.
			for y := 0; y < 255; y++ {
				for x := 0; x < 255; x++ {
					if c.Get(x, y) == red {
						require.True(t, h.Contains(image.Pt(x, y)), "fill leaked to (%d,%d)", x, y)
					}
				}
			}
			// Nothing inside is left unfilled: the only black region left is
			// the exterior, which touches the corner.
			var blacks []Region
			for _, r := range Regions(c, Four) {
				if r.Colour == black {
					blacks = append(blacks, r)
				}
			}
			require.Len(t, blacks, 1)
			assert.Equal(t, image.Pt(0, 0), blacks[0].Seed)
			assert.Equal(t, black, c.Get(0, 0))
			assert.Equal(t, black, c.Get(254, 254))
		})
	}
}

func TestFloodScenarioWhiteOnBlack(t *testing.T) {
	c, h := hexagonCanvas(255, image.Pt(100, 100), 50, black, white)
	outline := c.Clone()

	res, err := Flood(c, image.Pt(101, 101), white)
	require.NoError(t, err)
	assert.Positive(t, res.Painted)

	for y := 0; y < 255; y++ {
		for x := 0; x < 255; x++ {
			p := image.Pt(x, y)
			// Strictly inside by a pixel, so rounding along the outline
			// does not matter.
			inside := h.Contains(p) &&
				h.Contains(p.Add(image.Pt(1, 0))) && h.Contains(p.Add(image.Pt(-1, 0))) &&
				h.Contains(p.Add(image.Pt(0, 1))) && h.Contains(p.Add(image.Pt(0, -1)))
			if inside {
				require.Equal(t, white, c.Get(x, y), "interior pixel %v", p)
			}
			if !h.Contains(p) && outline.Get(x, y) != white {
				require.Equal(t, black, c.Get(x, y), "exterior pixel %v", p)
			}
		}
	}
	assert.Equal(t, black, c.Get(0, 0))
	assert.Equal(t, white, c.Get(125, 135))
}

func TestFloodPaintsEachPixelOnce(t *testing.T) {
	for _, conn := range []Connectivity{Four, Eight} {
		t.Run(conn.String(), func(t *testing.T) {
			c := canvas.New(40, 30)
			c.Fill(blue)
			s := newCountingSurface(c)

			f := New()
			f.Connectivity = conn
			res, err := f.Flood(s, image.Pt(17, 9), red)
			require.NoError(t, err)

			// An open field queues most pixels several times over.
			assert.Greater(t, res.Enqueued, res.Painted)
			assert.Equal(t, 40*30, res.Painted)
			assert.Len(t, s.paints, 40*30)
			for p, n := range s.paints {
				require.Equal(t, 1, n, "pixel %v painted %d times", p, n)
			}
		})
	}
}

func TestFloodTerminatesWithinPixelCount(t *testing.T) {
	c, h := hexagonCanvas(255, image.Pt(80, 90), 40, blue, red)
	s := newCountingSurface(c)

	res, err := Flood(s, h.Seed(), white)
	require.NoError(t, err)
	assert.LessOrEqual(t, res.Painted, 255*255)
	assert.Equal(t, len(s.paints), res.Painted)
	assert.Equal(t, res.Painted, c.Count(white))
}

func TestFloodDegenerate(t *testing.T) {
	c := canvas.New(4, 4)
	c.Fill(red)

	_, err := Flood(c, image.Pt(1, 1), red)
	var degenerate *DegenerateFillError
	require.ErrorAs(t, err, &degenerate)
	assert.Equal(t, image.Pt(1, 1), degenerate.Seed)
	assert.Equal(t, red, degenerate.Colour)

	f := New()
	f.Degenerate = DegenerateSkip
	res, err := f.Flood(c, image.Pt(1, 1), red)
	require.NoError(t, err)
	assert.Zero(t, res.Painted)
	assert.Equal(t, 16, c.Count(red))
}

func TestFloodInvariantViolation(t *testing.T) {
	c := canvas.New(4, 4)
	c.Fill(blue)

	_, err := Flood(stuckSurface{c}, image.Pt(0, 0), red)
	var violation *InvariantViolationError
	require.True(t, errors.As(err, &violation), "got %v", err)
	assert.Equal(t, image.Pt(0, 0), violation.Pixel)
	assert.Equal(t, red, violation.Want)
	assert.Equal(t, blue, violation.Got)

	f := New()
	f.CheckPaint = false
	res, err := f.Flood(stuckSurface{c}, image.Pt(0, 0), red)
	require.NoError(t, err)
	// Every pixel keeps the start colour, so the whole canvas is visited
	// once and the fill still terminates.
	assert.Equal(t, 16, res.Painted)
	assert.Equal(t, 16, c.Count(blue))
}

func TestFloodOutOfBoundsSeedPanics(t *testing.T) {
	c := canvas.New(4, 4)
	assert.Panics(t, func() { _, _ = Flood(c, image.Pt(4, 0), red) })
}

func TestEightConnectivityLeaksThroughDiagonals(t *testing.T) {
	c, h := hexagonCanvas(255, image.Pt(100, 100), 25, black, white)

	f := New()
	f.Connectivity = Eight
	_, err := f.Flood(c, h.Seed(), red)
	require.NoError(t, err)
	assert.Equal(t, red, c.Get(0, 0), "diagonal staircase should not contain an 8-connected fill")
}

func TestSeedOnBackgroundRepaintsBackground(t *testing.T) {
	c, _ := hexagonCanvas(64, image.Pt(20, 20), 10, black, white)
	outline := c.Count(white)

	_, err := Flood(c, image.Pt(0, 0), red)
	require.NoError(t, err)
	assert.Equal(t, outline, c.Count(white))
	assert.Equal(t, red, c.Get(63, 63))
	assert.Positive(t, c.Count(black), "hexagon interior is untouched")
}
