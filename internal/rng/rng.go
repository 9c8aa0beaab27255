package rng

import (
	"fmt"
	"math/rand"
	"time"
)

// Generator provides a simple random number
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}

// source names
const (
	SourceCrypto = "crypto"
	SourceMath   = "math"
)

// NewSeeded returns a math/rand generator
// A seed of 0 will seed from the current time.
func NewSeeded(seed int64) Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return rand.New(rand.NewSource(seed)) // nolint:gosec
}

// New returns the generator for the named source
func New(source string, seed int64) (Generator, error) {
	switch source {
	case "", SourceCrypto:
		return Crypto{}, nil
	case SourceMath:
		return NewSeeded(seed), nil
	default:
		return nil, fmt.Errorf("unknown random source: %s", source)
	}
}
