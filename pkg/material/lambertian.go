package material

import (
	"github.com/df07/go-scene-generator/pkg/core"
)

// DiffuseFuzz is the fuzz written for every lambertian material
const DiffuseFuzz = 1.0

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Color core.Color
	Fuzz  float64
}

// NewLambertian creates a new lambertian material with the standard diffuse fuzz
func NewLambertian(color core.Color) *Lambertian {
	return &Lambertian{Color: color, Fuzz: DiffuseFuzz}
}

func (l *Lambertian) Kind() Kind         { return KindLambertian }
func (l *Lambertian) Albedo() core.Color { return l.Color }
func (l *Lambertian) material()          {}
