package rng

import (
	"crypto/rand"
	"io"
	"math/big"
)

// Crypto draws random numbers from a cryptographically secure source
type Crypto struct {
	// Reader defaults to crypto/rand.Reader
	Reader io.Reader
}

// Intn returns a random number from 0 <= x < n
// Intn panics if n <= 0 or the reader fails.
func (c Crypto) Intn(n int) int {
	r := c.Reader
	if r == nil {
		r = rand.Reader
	}

	b, err := rand.Int(r, big.NewInt(int64(n)))
	if err != nil {
		panic(err)
	}

	return int(b.Int64())
}
