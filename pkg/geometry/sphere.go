package geometry

import (
	"github.com/df07/go-scene-generator/pkg/core"
)

// Sphere represents a placed sphere. Material is an identifier into the scene's material table.
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material string
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, material string) Sphere {
	return Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

// Overlaps reports whether two spheres intersect.
// Spheres that exactly touch do not overlap.
func (s Sphere) Overlaps(other Sphere) bool {
	return s.Center.Distance(other.Center) < s.Radius+other.Radius
}

// OverlapsAny reports whether s intersects any of the given spheres
func (s Sphere) OverlapsAny(others []Sphere) bool {
	for _, other := range others {
		if s.Overlaps(other) {
			return true
		}
	}
	return false
}
