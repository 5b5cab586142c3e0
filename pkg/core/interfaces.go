package core

// Logger interface for generator logging
type Logger interface {
	Debugf(template string, args ...interface{})
}

// Random supplies the uniform draws used during scene generation.
// Implementations are not safe for concurrent use.
type Random interface {
	// IntN returns a uniform integer in [0, n)
	IntN(n int) int
	// IntRange returns a uniform integer in [lo, hi], both ends inclusive
	IntRange(lo, hi int) int
	// FloatRange returns a uniform float in [lo, hi)
	FloatRange(lo, hi float64) float64
	// Read fills p with random bytes from the same stream
	Read(p []byte) (int, error)
}
