package core

import (
	"encoding/binary"
	"math/rand/v2"
)

// SeededRandom is a ChaCha8 backed Random. The same seed always yields the same stream.
type SeededRandom struct {
	source *rand.ChaCha8
	random *rand.Rand
}

// NewRandom creates a random source from a 64-bit seed
func NewRandom(seed uint64) *SeededRandom {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:8], seed)
	source := rand.NewChaCha8(key)
	return &SeededRandom{source: source, random: rand.New(source)}
}

// RandomSeed returns a non-zero seed from the runtime's randomly seeded generator
func RandomSeed() uint64 {
	for {
		if seed := rand.Uint64(); seed != 0 {
			return seed
		}
	}
}

// IntN returns a uniform integer in [0, n)
func (r *SeededRandom) IntN(n int) int {
	return r.random.IntN(n)
}

// IntRange returns a uniform integer in [lo, hi]
func (r *SeededRandom) IntRange(lo, hi int) int {
	return lo + r.random.IntN(hi-lo+1)
}

// FloatRange returns a uniform float in [lo, hi)
func (r *SeededRandom) FloatRange(lo, hi float64) float64 {
	return lo + r.random.Float64()*(hi-lo)
}

// Read fills p with bytes from the underlying ChaCha8 stream
func (r *SeededRandom) Read(p []byte) (int, error) {
	return r.source.Read(p)
}
