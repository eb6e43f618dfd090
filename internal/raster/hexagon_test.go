package raster

import (
	"image"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApexOffset(t *testing.T) {
	tests := []struct {
		edge, want int
	}{
		{1, 0},
		{2, 1},
		{3, 2},
		{10, 7},
		{25, 17},
		{50, 35},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ApexOffset(tt.edge), "edge %d", tt.edge)
	}
}

func TestHexagonVertices(t *testing.T) {
	h := HexagonVertices(image.Pt(100, 100), 50)
	want := Hexagon{
		{100, 100},
		{150, 100},
		{185, 135},
		{150, 170},
		{100, 170},
		{65, 135},
	}
	assert.Equal(t, want, h)
	assert.Equal(t, image.Pt(100, 100), h.Origin())
	assert.Equal(t, 50, h.EdgeLength())
	assert.Equal(t, image.Rect(65, 100, 186, 171), h.Bounds())
	assert.Equal(t, image.Pt(101, 101), h.Seed())
}

// The outline must be a strictly convex, and therefore simple, closed
// polygon: every turn goes the same way and no turn is degenerate.
func TestHexagonIsStrictlyConvex(t *testing.T) {
	for edge := MinEdgeLength; edge <= 120; edge++ {
		h := HexagonVertices(image.Pt(200, 200), edge)
		sign := 0
		for i := range h {
			a, b, c := h[i], h[(i+1)%6], h[(i+2)%6]
			cross := (b.X-a.X)*(c.Y-b.Y) - (b.Y-a.Y)*(c.X-b.X)
			require.NotZero(t, cross, "edge %d: vertices %d..%d are collinear", edge, i, i+2)
			if sign == 0 {
				sign = cross
			}
			require.Equal(t, sign > 0, cross > 0, "edge %d: turn at vertex %d reverses", edge, (i+1)%6)
		}
	}
}

func TestHexagonHorizontalEdgesMatchLength(t *testing.T) {
	for _, edge := range []int{2, 7, 25, 64} {
		h := HexagonVertices(image.Pt(150, 150), edge)
		d := ApexOffset(edge)
		assert.Equal(t, edge, h[1].X-h[0].X)
		assert.Equal(t, edge, h[3].X-h[4].X)
		assert.Equal(t, image.Pt(d, d), h[2].Sub(h[1]))
		assert.Equal(t, image.Pt(-d, d), h[3].Sub(h[2]))
		assert.Equal(t, image.Pt(-d, -d), h[5].Sub(h[4]))
		assert.Equal(t, image.Pt(d, -d), h[0].Sub(h[5]))
	}
}

func TestContains(t *testing.T) {
	h := HexagonVertices(image.Pt(100, 100), 50)
	for _, p := range []image.Point{h.Seed(), {125, 135}, {66, 135}, {184, 135}, {100, 100}, {65, 135}} {
		assert.True(t, h.Contains(p), "%v should be inside", p)
	}
	for _, p := range []image.Point{{0, 0}, {99, 100}, {64, 135}, {186, 135}, {125, 171}, {70, 105}} {
		assert.False(t, h.Contains(p), "%v should be outside", p)
	}
}

func TestOriginRange(t *testing.T) {
	size := image.Pt(255, 255)

	r, err := OriginRange(size, 25)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(42, 42, 213, 213), r)

	_, err = OriginRange(size, 1)
	assert.ErrorIs(t, err, ErrEdgeTooShort)

	_, err = OriginRange(size, 80)
	assert.ErrorIs(t, err, ErrEdgeTooLong)
}

func TestPlaceKeepsHexagonOnCanvas(t *testing.T) {
	size := image.Pt(255, 255)
	canvasRect := image.Rectangle{Max: size}
	rng := rand.New(rand.NewSource(3))

	for _, edge := range []int{2, 10, 25, 50, 70} {
		for i := 0; i < 500; i++ {
			origin, err := Place(rng, size, edge)
			require.NoError(t, err)
			h := HexagonVertices(origin, edge)
			require.True(t, h.Bounds().In(canvasRect), "edge %d origin %v: %v", edge, origin, h.Bounds())
			require.Greater(t, h.Bounds().Min.X, 0)
			require.Greater(t, h.Bounds().Min.Y, 0)
		}
	}
}

func TestPlaceIsReproducible(t *testing.T) {
	a := rand.New(rand.NewSource(11))
	b := rand.New(rand.NewSource(11))
	for i := 0; i < 50; i++ {
		pa, err := Place(a, image.Pt(255, 255), 25)
		require.NoError(t, err)
		pb, err := Place(b, image.Pt(255, 255), 25)
		require.NoError(t, err)
		require.Equal(t, pa, pb)
	}
}
