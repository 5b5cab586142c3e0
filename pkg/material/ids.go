package material

import (
	"fmt"
	"io"

	"github.com/google/uuid"
)

// UUIDSource produces random (version 4) UUID identifiers
type UUIDSource struct {
	entropy io.Reader
}

// NewUUIDSource creates an identifier source reading its randomness from entropy.
// A nil reader falls back to the uuid package's crypto/rand source.
// Passing the seeded scene random source makes identifiers reproducible for a given seed.
func NewUUIDSource(entropy io.Reader) *UUIDSource {
	return &UUIDSource{entropy: entropy}
}

// NewID returns a new UUID string. It panics if the entropy source fails,
// which only happens when the process has no usable randomness at all.
func (s *UUIDSource) NewID() string {
	if s.entropy == nil {
		return uuid.NewString()
	}
	return uuid.Must(uuid.NewRandomFromReader(s.entropy)).String()
}

// SequentialIDSource numbers identifiers with a fixed prefix, e.g. "mat-1", "mat-2"
type SequentialIDSource struct {
	Prefix string
	next   int
}

// NewSequentialIDSource creates a deterministic identifier source
func NewSequentialIDSource(prefix string) *SequentialIDSource {
	return &SequentialIDSource{Prefix: prefix}
}

// NewID returns the next identifier in the sequence
func (s *SequentialIDSource) NewID() string {
	s.next++
	return fmt.Sprintf("%s%d", s.Prefix, s.next)
}
