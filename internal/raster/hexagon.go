// Package raster draws hexagon outlines onto a pixel grid.
//
// Edges are drawn by parametric stepping rather than an integer line
// algorithm. Every edge is sampled 2*L times, where L is the hexagon's edge
// length, which is dense enough that the outline has no gaps a 4-connected
// fill could slip through.
package raster

import (
	"errors"
	"image"
	"math"
	"math/rand"
)

// MinEdgeLength is the shortest edge that still yields a hexagon with an
// interior. With L = 1 the apex offset rounds down to zero and the six
// vertices collapse onto a segment.
const MinEdgeLength = 2

var (
	// ErrEdgeTooShort is returned for edge lengths below MinEdgeLength.
	ErrEdgeTooShort = errors.New("edge length too short for a hexagon")

	// ErrEdgeTooLong is returned when no origin keeps the hexagon on the canvas.
	ErrEdgeTooLong = errors.New("edge length too long for canvas")
)

// Hexagon holds six vertices in clockwise order starting at the top-left:
// top-left, top-right, right, bottom-right, bottom-left, left.
type Hexagon [6]image.Point

// ApexOffset returns floor(sqrt(L*L/2)), the horizontal and vertical offset
// of the left and right apexes. The slanted edges are hypotenuses of
// isosceles right triangles with legs of this length, which keeps them close
// to L long.
func ApexOffset(edge int) int {
	return int(math.Sqrt(float64(edge*edge) / 2))
}

// HexagonVertices computes the hexagon whose top-left vertex is origin.
func HexagonVertices(origin image.Point, edge int) Hexagon {
	var (
		x = origin.X
		y = origin.Y
		l = edge
		d = ApexOffset(edge)
	)
	return Hexagon{
		{X: x, Y: y},             // top left
		{X: x + l, Y: y},         // top right
		{X: x + l + d, Y: y + d}, // right
		{X: x + l, Y: y + 2*d},   // bottom right
		{X: x, Y: y + 2*d},       // bottom left
		{X: x - d, Y: y + d},     // left
	}
}

// Origin returns the top-left vertex.
func (h Hexagon) Origin() image.Point {
	return h[0]
}

// EdgeLength returns the length of the horizontal edges.
func (h Hexagon) EdgeLength() int {
	return h[1].X - h[0].X
}

// Bounds returns the smallest rectangle containing every outline pixel.
func (h Hexagon) Bounds() image.Rectangle {
	return image.Rectangle{
		Min: image.Point{X: h[5].X, Y: h[0].Y},
		Max: image.Point{X: h[2].X + 1, Y: h[3].Y + 1},
	}
}

// Seed returns a pixel strictly inside the outline, one step right and
// down of the top-left vertex.
func (h Hexagon) Seed() image.Point {
	return h[0].Add(image.Point{X: 1, Y: 1})
}

// Contains reports whether p lies inside or on the geometric hexagon.
func (h Hexagon) Contains(p image.Point) bool {
	sign := 0
	for i := range h {
		a, b := h[i], h[(i+1)%len(h)]
		cross := (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
		switch {
		case cross == 0:
			continue
		case sign == 0:
			sign = cross
		case (cross > 0) != (sign > 0):
			return false
		}
	}
	return true
}

// OriginRange returns the rectangle of valid origins for a hexagon with the
// given edge length on a canvas of the given size: each coordinate lies in
// [L+d, size-L-d).
func OriginRange(size image.Point, edge int) (image.Rectangle, error) {
	if edge < MinEdgeLength {
		return image.Rectangle{}, ErrEdgeTooShort
	}
	margin := edge + ApexOffset(edge)
	if size.X-margin <= margin || size.Y-margin <= margin {
		return image.Rectangle{}, ErrEdgeTooLong
	}
	return image.Rect(margin, margin, size.X-margin, size.Y-margin), nil
}

// Place draws an origin uniformly from OriginRange.
func Place(rng *rand.Rand, size image.Point, edge int) (image.Point, error) {
	r, err := OriginRange(size, edge)
	if err != nil {
		return image.Point{}, err
	}
	// #nosec G404 -- reproducible synthesis, not security
	return image.Point{
		X: r.Min.X + rng.Intn(r.Dx()),
		Y: r.Min.Y + rng.Intn(r.Dy()),
	}, nil
}
