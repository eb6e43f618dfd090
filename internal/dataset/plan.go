package dataset

import (
	"fmt"
	"math/rand"

	"github.com/jmylchreest/hexgen/internal/seed"
	"github.com/jmylchreest/hexgen/internal/synth"
)

// Plan returns n tasks derived from base. Task i renders with
// seed.Derive(base, i); shape counts are uniform in [0, maxShapes] and drawn
// from a planner stream seeded with base, so a plan is reproducible. Paths
// are left for the Runner to fill in.
func Plan(n int, base int64, maxShapes int) ([]synth.Task, error) {
	if n < 0 {
		return nil, fmt.Errorf("image count must not be negative, got %d", n)
	}
	if maxShapes < 0 {
		return nil, fmt.Errorf("max shapes must not be negative, got %d", maxShapes)
	}

	// #nosec G404 -- reproducible synthesis, not security
	rng := rand.New(rand.NewSource(base))
	tasks := make([]synth.Task, n)
	for i := range tasks {
		tasks[i] = synth.Task{
			Index:  i,
			Seed:   seed.Derive(base, i),
			Shapes: rng.Intn(maxShapes + 1),
		}
	}
	return tasks, nil
}
