package material

import (
	"github.com/df07/go-scene-generator/pkg/core"
)

// Factory generates randomized materials.
//
// Kinds are drawn with fixed weights: two thirds lambertian, and the remaining
// third split evenly between metal and dielectric.
type Factory struct {
	random core.Random
	ids    IDSource
}

// NewFactory creates a material factory drawing from random and naming materials with ids
func NewFactory(random core.Random, ids IDSource) *Factory {
	return &Factory{random: random, ids: ids}
}

// Generate returns a fresh identifier and a randomly chosen material
func (f *Factory) Generate() (string, Material) {
	var m Material
	if f.random.IntN(3) > 0 {
		m = f.lambertian()
	} else if f.random.IntN(2) > 0 {
		m = NewMetal(core.White, MetalFuzz)
	} else {
		m = NewDielectric(core.White, GlassRefractionIndex)
	}
	return f.ids.NewID(), m
}

// lambertian draws each color channel independently over [0, 255]
func (f *Factory) lambertian() *Lambertian {
	r := uint8(f.random.IntRange(0, 255))
	g := uint8(f.random.IntRange(0, 255))
	b := uint8(f.random.IntRange(0, 255))
	return NewLambertian(core.NewColor(r, g, b))
}
