package raster

import (
	"image"
	"math"

	"github.com/jmylchreest/hexgen/internal/colour"
)

// LineTolerance is how close the stepped position must get to the end point
// on both axes before an edge is complete.
const LineTolerance = 0.01

// Setter is the drawing surface.
type Setter interface {
	Set(x, y int, c colour.Packed)
}

// DrawEdge draws the straight line from a towards b. The step count is
// fixed at 2*edge regardless of the actual distance between a and b, and
// each step paints the pixel nearest to the current position. The end point
// is not painted; in a closed outline the next edge starts there.
func DrawEdge(dst Setter, a, b image.Point, edge int, c colour.Packed) {
	steps := 2 * edge
	if steps < 1 {
		steps = 1
	}
	var (
		dx = float64(b.X-a.X) / float64(steps)
		dy = float64(b.Y-a.Y) / float64(steps)
		x  = float64(a.X)
		y  = float64(a.Y)
	)
	// Positions are recomputed from the step index so rounding error does
	// not accumulate; the iteration cap guarantees termination.
	for i := 0; i <= steps; i++ {
		if math.Abs(float64(b.X)-x) <= LineTolerance && math.Abs(float64(b.Y)-y) <= LineTolerance {
			return
		}
		dst.Set(int(math.Round(x)), int(math.Round(y)), c)
		x = float64(a.X) + float64(i+1)*dx
		y = float64(a.Y) + float64(i+1)*dy
	}
}

// DrawHexagon draws the six edges of h in order, closing the outline from
// the last vertex back to the first.
func DrawHexagon(dst Setter, h Hexagon, c colour.Packed) {
	edge := h.EdgeLength()
	for i := range h {
		DrawEdge(dst, h[i], h[(i+1)%len(h)], edge, c)
	}
}
