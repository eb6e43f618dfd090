// Package fill implements breadth-first flood fill and connected region
// labelling over a pixel surface.
//
// Visited pixels are tracked in a dense boolean grid indexed by coordinate,
// so a pixel can be queued more than once but is painted at most once.
package fill

import (
	"fmt"
	"image"

	"github.com/jmylchreest/hexgen/internal/colour"
)

// Surface is the pixel grid a fill operates on. Get and Set may panic for
// points outside Bounds; the filler never asks for them.
type Surface interface {
	Bounds() image.Rectangle
	Get(x, y int) colour.Packed
	Set(x, y int, c colour.Packed)
}

// Connectivity selects which neighbours are adjacent.
type Connectivity int

const (
	// Four connects north, east, south and west neighbours.
	Four Connectivity = iota
	// Eight adds the diagonal neighbours. Outlines drawn with diagonal
	// staircases do not contain an Eight fill.
	Eight
)

// String implements fmt.Stringer.
func (c Connectivity) String() string {
	switch c {
	case Four:
		return "four"
	case Eight:
		return "eight"
	default:
		return fmt.Sprintf("Connectivity(%d)", int(c))
	}
}

var (
	cardinal = []image.Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	diagonal = []image.Point{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
)

// offsets returns the neighbour offsets for c.
func (c Connectivity) offsets() []image.Point {
	if c == Eight {
		return append(append([]image.Point{}, cardinal...), diagonal...)
	}
	return cardinal
}

// DegeneratePolicy decides what happens when the seed already has the
// target colour.
type DegeneratePolicy int

const (
	// DegenerateError rejects the fill with a *DegenerateFillError.
	DegenerateError DegeneratePolicy = iota
	// DegenerateSkip treats the fill as a no-op.
	DegenerateSkip
)

// Result describes a completed fill.
type Result struct {
	// Painted is the number of pixels repainted.
	Painted int
	// Enqueued counts every push onto the work queue, duplicates included.
	Enqueued int
}

// Filler floods regions of one colour with another.
type Filler struct {
	Connectivity Connectivity
	Degenerate   DegeneratePolicy

	// CheckPaint reads every pixel back after painting it and fails with an
	// *InvariantViolationError if the surface did not keep the colour.
	CheckPaint bool
}

// New returns a 4-connected filler that rejects degenerate fills and checks
// every paint.
func New() *Filler {
	return &Filler{
		Connectivity: Four,
		Degenerate:   DegenerateError,
		CheckPaint:   true,
	}
}

// Flood repaints every pixel reachable from seed through pixels of the
// seed's current colour. The seed must lie strictly inside a closed outline
// of a different colour; otherwise the fill escapes into the surrounding
// region.
func (f *Filler) Flood(s Surface, seed image.Point, target colour.Packed) (Result, error) {
	start := s.Get(seed.X, seed.Y)
	if start == target {
		if f.Degenerate == DegenerateSkip {
			return Result{}, nil
		}
		return Result{}, &DegenerateFillError{Seed: seed, Colour: target}
	}

	var (
		bounds  = s.Bounds()
		grid    = newGrid(bounds)
		queue   = []image.Point{seed}
		offsets = f.Connectivity.offsets()
		res     = Result{Enqueued: 1}
	)
	for head := 0; head < len(queue); head++ {
		p := queue[head]
		if grid.visited(p) {
			continue
		}
		s.Set(p.X, p.Y, target)
		grid.mark(p)
		res.Painted++

		if f.CheckPaint {
			if got := s.Get(p.X, p.Y); got != target {
				return res, &InvariantViolationError{Pixel: p, Want: target, Got: got}
			}
		}

		for _, o := range offsets {
			n := p.Add(o)
			if !n.In(bounds) || grid.visited(n) {
				continue
			}
			if s.Get(n.X, n.Y) == start {
				queue = append(queue, n)
				res.Enqueued++
			}
		}
	}
	return res, nil
}

// Flood runs a default filler.
func Flood(s Surface, seed image.Point, target colour.Packed) (Result, error) {
	return New().Flood(s, seed, target)
}

// grid is a dense visited marker covering a rectangle.
type grid struct {
	rect image.Rectangle
	bits []bool
}

func newGrid(r image.Rectangle) *grid {
	return &grid{rect: r, bits: make([]bool, r.Dx()*r.Dy())}
}

func (g *grid) index(p image.Point) int {
	return (p.Y-g.rect.Min.Y)*g.rect.Dx() + (p.X - g.rect.Min.X)
}

func (g *grid) visited(p image.Point) bool {
	return g.bits[g.index(p)]
}

func (g *grid) mark(p image.Point) {
	g.bits[g.index(p)] = true
}
