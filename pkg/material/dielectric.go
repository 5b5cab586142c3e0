package material

import (
	"github.com/df07/go-scene-generator/pkg/core"
)

// GlassRefractionIndex is the index of refraction used for generated refractive materials
const GlassRefractionIndex = 1.6

// Dielectric represents a transparent material like glass that can both reflect and refract
type Dielectric struct {
	Color           core.Color
	RefractionIndex float64 // Index of refraction, always > 1.0
}

// NewDielectric creates a new dielectric material
func NewDielectric(color core.Color, refractionIndex float64) *Dielectric {
	return &Dielectric{Color: color, RefractionIndex: refractionIndex}
}

func (d *Dielectric) Kind() Kind         { return KindDielectric }
func (d *Dielectric) Albedo() core.Color { return d.Color }
func (d *Dielectric) material()          {}
