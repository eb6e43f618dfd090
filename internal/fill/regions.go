package fill

import (
	"image"

	"github.com/jmylchreest/hexgen/internal/colour"
)

// Region is a maximal connected set of same-coloured pixels.
type Region struct {
	Colour colour.Packed
	// Seed is the first pixel of the region in row-major order.
	Seed   image.Point
	Area   int
	Bounds image.Rectangle
}

// Reader is the read-only part of a Surface.
type Reader interface {
	Bounds() image.Rectangle
	Get(x, y int) colour.Packed
}

// Regions labels every connected region of r in row-major order of their
// first pixel. The surface is not modified.
func Regions(r Reader, conn Connectivity) []Region {
	var (
		bounds  = r.Bounds()
		grid    = newGrid(bounds)
		offsets = conn.offsets()
		regions []Region
		queue   []image.Point
	)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			start := image.Pt(x, y)
			if grid.visited(start) {
				continue
			}

			region := Region{
				Colour: r.Get(x, y),
				Seed:   start,
				Bounds: image.Rectangle{Min: start, Max: start.Add(image.Pt(1, 1))},
			}
			grid.mark(start)
			queue = append(queue[:0], start)
			for head := 0; head < len(queue); head++ {
				p := queue[head]
				region.Area++
				region.Bounds = region.Bounds.Union(image.Rectangle{Min: p, Max: p.Add(image.Pt(1, 1))})

				for _, o := range offsets {
					n := p.Add(o)
					if !n.In(bounds) || grid.visited(n) || r.Get(n.X, n.Y) != region.Colour {
						continue
					}
					// Marking on enqueue keeps each pixel in the queue once.
					grid.mark(n)
					queue = append(queue, n)
				}
			}
			regions = append(regions, region)
		}
	}
	return regions
}
