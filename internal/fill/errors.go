package fill

import (
	"fmt"
	"image"

	"github.com/jmylchreest/hexgen/internal/colour"
)

// DegenerateFillError reports a fill whose seed already has the target
// colour.
type DegenerateFillError struct {
	Seed   image.Point
	Colour colour.Packed
}

func (e *DegenerateFillError) Error() string {
	return fmt.Sprintf("degenerate fill: seed %v already has target colour %s", e.Seed, e.Colour)
}

// InvariantViolationError reports a pixel that did not hold its colour after
// being painted. It points at a broken surface implementation.
type InvariantViolationError struct {
	Pixel image.Point
	Want  colour.Packed
	Got   colour.Packed
}

func (e *InvariantViolationError) Error() string {
	return fmt.Sprintf("pixel %v reads %s after being painted %s", e.Pixel, e.Got, e.Want)
}
