package material

import (
	"errors"
	"fmt"

	"github.com/df07/go-scene-generator/pkg/core"
)

// ErrUnknownKind is returned for material type names outside the three known families
var ErrUnknownKind = errors.New("unknown material type")

// Kind names a material family as written in the scene document
type Kind string

const (
	KindLambertian Kind = "lambertian" // diffuse, matte scattering
	KindMetal      Kind = "metal"      // reflective, with roughness fuzz
	KindDielectric Kind = "dielectric" // refractive, transparent
)

// Material is one of Lambertian, Metal or Dielectric.
// The unexported method keeps the set closed, so a material can never carry both
// a fuzz and a refraction index.
type Material interface {
	Kind() Kind
	Albedo() core.Color
	material()
}

// IDSource hands out material identifiers that are unique within a run
type IDSource interface {
	NewID() string
}

// ParseKind converts a document type name to a Kind
func ParseKind(name string) (Kind, error) {
	switch k := Kind(name); k {
	case KindLambertian, KindMetal, KindDielectric:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
}
