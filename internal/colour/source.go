package colour

import "math/rand"

// Source draws colours from an explicit random number generator, so that a
// fixed seed always yields the same sequence of colours.
//
// A Source is not safe for concurrent use.
type Source struct {
	rng *rand.Rand
}

// NewSource returns a Source drawing from rng.
func NewSource(rng *rand.Rand) *Source {
	return &Source{rng: rng}
}

// Random returns a colour with each channel drawn uniformly from [0, 255].
func (s *Source) Random() Packed {
	return Pack(s.channel(), s.channel(), s.channel())
}

// Contrasting draws colours until one is further than SimilarityThreshold
// from background. There is no cap on the number of draws.
func (s *Source) Contrasting(background Packed) Packed {
	for {
		c := s.Random()
		if !TooSimilar(c, background) {
			return c
		}
	}
}

func (s *Source) channel() uint8 {
	return uint8(s.rng.Intn(256)) // #nosec G404 -- reproducible synthesis, not security
}
