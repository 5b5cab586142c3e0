package scene

import (
	"github.com/df07/go-scene-generator/pkg/core"
	"github.com/df07/go-scene-generator/pkg/geometry"
	"github.com/df07/go-scene-generator/pkg/material"
)

// Identifiers of the anchor materials. They are stable across runs.
const (
	BrownID = "brown"
	MetalID = "metal"
	GlassID = "glass"
)

// AnchorRadius is the radius of the three large anchor spheres
const AnchorRadius = 3.0

// Anchor is one of the fixed large spheres present in every generated scene
type Anchor struct {
	ID       string
	Material material.Material
	Sphere   geometry.Sphere
}

// Anchors returns the three anchor spheres: a brown diffuse, a metal and a glass sphere.
// The centers are 7 units apart so the anchors never touch each other.
func Anchors() []Anchor {
	return []Anchor{
		{
			ID:       BrownID,
			Material: material.NewLambertian(core.NewColor(100, 40, 0)),
			Sphere:   geometry.NewSphere(core.NewVec3(0, 3, 0), AnchorRadius, BrownID),
		},
		{
			ID:       MetalID,
			Material: material.NewMetal(core.White, material.MetalFuzz),
			Sphere:   geometry.NewSphere(core.NewVec3(7, 3, 0), AnchorRadius, MetalID),
		},
		{
			ID:       GlassID,
			Material: material.NewDielectric(core.White, material.GlassRefractionIndex),
			Sphere:   geometry.NewSphere(core.NewVec3(-7, 3, 0), AnchorRadius, GlassID),
		},
	}
}

// AddAnchors adds the anchor materials and spheres to the scene
func (s *Scene) AddAnchors() {
	for _, anchor := range Anchors() {
		s.AddMaterial(anchor.ID, anchor.Material)
		s.AddSphere(anchor.Sphere)
	}
}
