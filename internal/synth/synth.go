// Package synth renders labelled hexagon images.
//
// A render is a pure function of (seed, shapes): the same pair always
// produces the same pixels. All randomness comes from one *rand.Rand per
// render, drawn in a fixed order: the background colour, then for each
// shape its colour and the x and y of its origin.
package synth

import (
	"errors"
	"fmt"
	"image"
	"math/rand"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/hexgen/internal/canvas"
	"github.com/jmylchreest/hexgen/internal/colour"
	"github.com/jmylchreest/hexgen/internal/fill"
	"github.com/jmylchreest/hexgen/internal/raster"
)

const (
	// Size is the width and height of every rendered image.
	Size = 255
	// DefaultEdgeLength is the hexagon edge length in pixels.
	DefaultEdgeLength = 25
	// MaxShapes is the largest shape count a dataset draws by default.
	MaxShapes = 3
	// DefaultPlacementAttempts bounds the origin redraws per shape.
	DefaultPlacementAttempts = 64
)

var (
	// ErrNoPlacement is returned when a shape cannot be placed clear of the
	// shapes already on the canvas.
	ErrNoPlacement = errors.New("no free placement for shape")

	// ErrTooManyShapes is returned by CheckShapes for counts above Capacity.
	ErrTooManyShapes = errors.New("too many shapes for edge length")
)

// Config controls rendering.
type Config struct {
	// EdgeLength of every hexagon, at least raster.MinEdgeLength.
	EdgeLength int
	// Background, when set, replaces the random background colour. The
	// random draw still happens so shape colours do not depend on it.
	Background *colour.Packed
	// AllowOverlap places shapes without checking for collisions. Overlapping
	// shapes merge, so the label no longer matches what is visible.
	AllowOverlap bool
	// MaxPlacementAttempts bounds origin redraws per shape when overlap is
	// not allowed.
	MaxPlacementAttempts int
}

// DefaultConfig returns the configuration used for datasets.
func DefaultConfig() Config {
	return Config{
		EdgeLength:           DefaultEdgeLength,
		MaxPlacementAttempts: DefaultPlacementAttempts,
	}
}

// Validate reports whether the configuration can render on a Size x Size
// canvas.
func (c Config) Validate() error {
	if _, err := raster.OriginRange(image.Pt(Size, Size), c.EdgeLength); err != nil {
		return fmt.Errorf("edge length %d: %w", c.EdgeLength, err)
	}
	if !c.AllowOverlap && c.MaxPlacementAttempts < 1 {
		return fmt.Errorf("max placement attempts must be positive, got %d", c.MaxPlacementAttempts)
	}
	return nil
}

// Capacity returns how many non-overlapping shapes always fit, however the
// earlier shapes were placed. A placed shape blocks every origin whose grown
// bounds would touch it: a (2w+1) x (2h+1) box of origins, where w x h are
// the hexagon's bounds. Fewer boxes than it takes to cover the origin range
// always leave a free origin.
func (c Config) Capacity() int {
	r, err := raster.OriginRange(image.Pt(Size, Size), c.EdgeLength)
	if err != nil {
		return 0
	}
	b := raster.HexagonVertices(image.Point{}, c.EdgeLength).Bounds()
	return ceilDiv(r.Dx(), 2*b.Dx()+1) * ceilDiv(r.Dy(), 2*b.Dy()+1)
}

// CheckShapes reports whether every render of up to n shapes is guaranteed to
// find room for all of them.
func (c Config) CheckShapes(n int) error {
	if c.AllowOverlap {
		return nil
	}
	if capacity := c.Capacity(); n > capacity {
		return fmt.Errorf("%w: %d shapes requested, edge length %d fits at most %d", ErrTooManyShapes, n, c.EdgeLength, capacity)
	}
	return nil
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// Task describes one image of a dataset.
type Task struct {
	Index  int
	Seed   int64
	Shapes int
	Path   string
}

// Shape records one rendered hexagon.
type Shape struct {
	Origin image.Point
	Colour colour.Packed
	// Painted is the number of interior pixels the fill repainted.
	Painted int
}

// Sample is a rendered image and what was drawn on it.
type Sample struct {
	Canvas     *canvas.Canvas
	Seed       int64
	Background colour.Packed
	Shapes     []Shape
}

// Colours returns the shape colours in drawing order.
func (s *Sample) Colours() []colour.Packed {
	out := make([]colour.Packed, len(s.Shapes))
	for i, sh := range s.Shapes {
		out[i] = sh.Colour
	}
	return out
}

// Generator renders samples. It holds no per-render state and may be reused.
type Generator struct {
	config Config
	filler *fill.Filler
	logger hclog.Logger
}

// NewGenerator validates cfg and returns a Generator. A nil logger discards
// output.
func NewGenerator(cfg Config, logger hclog.Logger) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	filler := fill.New()
	if cfg.AllowOverlap {
		// A seed can land on an earlier shape of the same colour.
		filler.Degenerate = fill.DegenerateSkip
	}

	return &Generator{
		config: cfg,
		filler: filler,
		logger: logger.Named("synth"),
	}, nil
}

// Config returns the generator's configuration.
func (g *Generator) Config() Config {
	return g.config
}

// Generate renders a task.
func (g *Generator) Generate(task Task) (*Sample, error) {
	return g.Render(task.Seed, task.Shapes)
}

// Render draws shapes hexagons on a fresh canvas using seed.
func (g *Generator) Render(seed int64, shapes int) (*Sample, error) {
	if shapes < 0 {
		return nil, fmt.Errorf("shape count must not be negative, got %d", shapes)
	}

	// #nosec G404 -- reproducible synthesis, not security
	rng := rand.New(rand.NewSource(seed))
	src := colour.NewSource(rng)
	size := image.Pt(Size, Size)

	background := src.Random()
	if g.config.Background != nil {
		background = *g.config.Background
	}

	c := canvas.New(Size, Size)
	c.Fill(background)

	sample := &Sample{
		Canvas:     c,
		Seed:       seed,
		Background: background,
		Shapes:     make([]Shape, 0, shapes),
	}
	var placed []image.Rectangle

	for i := 0; i < shapes; i++ {
		fg := src.Contrasting(background)

		hex, err := g.place(rng, size, placed)
		if err != nil {
			return nil, fmt.Errorf("shape %d: %w", i, err)
		}
		placed = append(placed, hex.Bounds())

		raster.DrawHexagon(c, hex, fg)
		res, err := g.filler.Flood(c, hex.Seed(), fg)
		if err != nil {
			return nil, fmt.Errorf("shape %d: fill: %w", i, err)
		}

		g.logger.Trace("shape drawn", "seed", seed, "index", i, "origin", hex.Origin(), "colour", fg, "painted", res.Painted)
		sample.Shapes = append(sample.Shapes, Shape{Origin: hex.Origin(), Colour: fg, Painted: res.Painted})
	}

	g.logger.Debug("rendered", "seed", seed, "shapes", shapes, "background", background)
	return sample, nil
}

// place draws an origin, redrawing while the hexagon's bounds, grown by one
// pixel, touch an already placed shape. Once the random attempts run out it
// picks uniformly among the remaining free origins, so placement only fails
// when none is left.
func (g *Generator) place(rng *rand.Rand, size image.Point, placed []image.Rectangle) (raster.Hexagon, error) {
	attempts := g.config.MaxPlacementAttempts
	if g.config.AllowOverlap || attempts < 1 {
		attempts = 1
	}

	for attempt := 0; attempt < attempts; attempt++ {
		origin, err := raster.Place(rng, size, g.config.EdgeLength)
		if err != nil {
			return raster.Hexagon{}, err
		}
		hex := raster.HexagonVertices(origin, g.config.EdgeLength)
		if g.config.AllowOverlap || !collides(hex.Bounds().Inset(-1), placed) {
			return hex, nil
		}
	}

	free, err := g.freeOrigins(size, placed)
	if err != nil {
		return raster.Hexagon{}, err
	}
	if len(free) == 0 {
		return raster.Hexagon{}, fmt.Errorf("%w: no free origin left after %d attempts", ErrNoPlacement, attempts)
	}
	g.logger.Trace("placement fell back to free origins", "free", len(free), "placed", len(placed))
	return raster.HexagonVertices(free[rng.Intn(len(free))], g.config.EdgeLength), nil
}

// freeOrigins lists, in row-major order, every origin whose grown bounds
// clear all placed shapes.
func (g *Generator) freeOrigins(size image.Point, placed []image.Rectangle) ([]image.Point, error) {
	r, err := raster.OriginRange(size, g.config.EdgeLength)
	if err != nil {
		return nil, err
	}
	var free []image.Point
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			hex := raster.HexagonVertices(image.Pt(x, y), g.config.EdgeLength)
			if !collides(hex.Bounds().Inset(-1), placed) {
				free = append(free, hex.Origin())
			}
		}
	}
	return free, nil
}

func collides(r image.Rectangle, placed []image.Rectangle) bool {
	for _, p := range placed {
		if r.Overlaps(p) {
			return true
		}
	}
	return false
}
