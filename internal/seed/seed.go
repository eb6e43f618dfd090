// Package seed provides base seed selection and per-task seed derivation.
// Every image in a dataset gets its own seed so that any single image can be
// regenerated from the base seed and its index alone.
package seed

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math/rand"
	"slices"
	"time"
)

// Mode determines how the base seed for a run is chosen.
type Mode string

const (
	// ModeRandom uses a non-deterministic seed (varies each run).
	ModeRandom Mode = "random"
	// ModeManual uses a user-provided seed value.
	ModeManual Mode = "manual"
)

// Config holds configuration for base seed selection.
type Config struct {
	Mode  Mode   // Seed mode
	Value *int64 // Seed value (only used when Mode is ModeManual)
}

// Calculate determines the base seed value based on the seed mode.
func Calculate(config Config) (int64, error) {
	switch config.Mode {
	case ModeManual:
		if config.Value == nil {
			return 0, fmt.Errorf("seed value is required for manual seed mode")
		}
		return *config.Value, nil
	case ModeRandom, "":
		return GenerateRandomSeed(), nil
	default:
		return 0, fmt.Errorf("unknown seed mode: %s", config.Mode)
	}
}

// GenerateRandomSeed generates a non-deterministic random seed.
func GenerateRandomSeed() int64 {
	// #nosec G404 -- Random seed generation is intentionally non-deterministic
	return time.Now().UnixNano() + int64(rand.Intn(1000000))
}

// Derive returns the seed of the task at index within a run started from
// base. The result is the first 8 bytes of sha256(base || index), so
// neighbouring indices give unrelated random streams.
func Derive(base int64, index int) int64 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[0:8], uint64(base))   // #nosec G115 -- bit pattern is hashed, sign is irrelevant
	binary.LittleEndian.PutUint64(buf[8:16], uint64(index)) // #nosec G115 -- bit pattern is hashed, sign is irrelevant
	hash := sha256.Sum256(buf[:])
	return int64(binary.LittleEndian.Uint64(hash[:8])) // #nosec G115 -- hash conversion is safe
}

// ValidModes returns a list of valid seed modes.
func ValidModes() []Mode {
	return []Mode{ModeRandom, ModeManual}
}

// ParseMode converts a string to a Mode.
// Returns an error if the string is not a valid mode.
func ParseMode(s string) (Mode, error) {
	mode := Mode(s)
	if slices.Contains(ValidModes(), mode) {
		return mode, nil
	}
	return "", fmt.Errorf("invalid seed mode: %s (valid: random, manual)", s)
}
