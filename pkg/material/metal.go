package material

import (
	"github.com/df07/go-scene-generator/pkg/core"
)

// MetalFuzz is the low roughness used for generated reflective materials
const MetalFuzz = 0.05

// Metal represents a metallic material with specular reflection
type Metal struct {
	Color core.Color
	Fuzz  float64 // 0.0 = perfect mirror, 1.0 = very fuzzy
}

// NewMetal creates a new metal material
func NewMetal(color core.Color, fuzz float64) *Metal {
	// Clamp fuzz to valid range
	if fuzz > 1.0 {
		fuzz = 1.0
	}
	if fuzz < 0.0 {
		fuzz = 0.0
	}
	return &Metal{Color: color, Fuzz: fuzz}
}

func (m *Metal) Kind() Kind         { return KindMetal }
func (m *Metal) Albedo() core.Color { return m.Color }
func (m *Metal) material()          {}
