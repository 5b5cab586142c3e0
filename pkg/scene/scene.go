package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-scene-generator/pkg/geometry"
	"github.com/df07/go-scene-generator/pkg/material"
)

var (
	ErrOverlap         = errors.New("spheres overlap")
	ErrUnknownMaterial = errors.New("sphere references unknown material")
)

// Scene contains everything written to the scene document
type Scene struct {
	Camera    geometry.CameraConfig
	Materials map[string]material.Material // Keyed by material identifier
	Spheres   []geometry.Sphere            // Anchors first, then random spheres in placement order
}

// New creates an empty scene for the given camera
func New(camera geometry.CameraConfig) *Scene {
	return &Scene{
		Camera:    camera,
		Materials: make(map[string]material.Material),
		Spheres:   make([]geometry.Sphere, 0),
	}
}

// AddMaterial registers a material under id, replacing any previous entry
func (s *Scene) AddMaterial(id string, m material.Material) {
	s.Materials[id] = m
}

// AddSphere appends a sphere. Callers are responsible for the overlap check.
func (s *Scene) AddSphere(sphere geometry.Sphere) {
	s.Spheres = append(s.Spheres, sphere)
}

// Validate checks that every sphere references a known material and that no two spheres overlap
func (s *Scene) Validate() error {
	for i, sphere := range s.Spheres {
		if _, ok := s.Materials[sphere.Material]; !ok {
			return fmt.Errorf("sphere %d: %w %q", i, ErrUnknownMaterial, sphere.Material)
		}
	}
	for i := range s.Spheres {
		for j := i + 1; j < len(s.Spheres); j++ {
			if s.Spheres[i].Overlaps(s.Spheres[j]) {
				return fmt.Errorf("spheres %d and %d: %w", i, j, ErrOverlap)
			}
		}
	}
	return nil
}

// CountByKind returns how many materials of each kind the scene holds
func (s *Scene) CountByKind() map[material.Kind]int {
	counts := make(map[material.Kind]int)
	for _, m := range s.Materials {
		counts[m.Kind()]++
	}
	return counts
}
