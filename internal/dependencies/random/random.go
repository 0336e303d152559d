package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// Random provides random number generation that can be mocked for testing
type Random interface {
	// Intn returns a random int in [0, n)
	Intn(n int) int

	// String generates a random string of the given length from the given alphabet
	String(length int, alphabet string) string
}

// Source implements Random on a ChaCha8 generator
type Source struct {
	rng *rand.Rand
}

// New creates a Source seeded from crypto/rand
func New() *Source {
	var seed [32]byte
	if _, err := crand.Read(seed[:]); err != nil {
		// crypto/rand does not fail on supported platforms
		binary.LittleEndian.PutUint64(seed[:], rand.Uint64())
	}
	return &Source{rng: rand.New(rand.NewChaCha8(seed))}
}

// NewSeeded creates a Source that always produces the same sequence for a seed
func NewSeeded(seed uint64) *Source {
	var s [32]byte
	binary.LittleEndian.PutUint64(s[:], seed)
	return &Source{rng: rand.New(rand.NewChaCha8(s))}
}

// Intn returns a random int in [0, n), or 0 if n <= 0
func (r *Source) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return r.rng.IntN(n)
}

// String generates a random string of the given length from the given alphabet
func (r *Source) String(length int, alphabet string) string {
	if length <= 0 || len(alphabet) == 0 {
		return ""
	}
	result := make([]byte, length)
	for i := range result {
		result[i] = alphabet[r.Intn(len(alphabet))]
	}
	return string(result)
}
