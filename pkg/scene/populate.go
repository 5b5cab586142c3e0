package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-scene-generator/pkg/core"
	"github.com/df07/go-scene-generator/pkg/geometry"
	"github.com/df07/go-scene-generator/pkg/material"
)

// ErrPlacementExhausted is returned when a sphere could not be placed within the attempt budget
var ErrPlacementExhausted = errors.New("placement attempts exhausted")

// PlacementConfig controls where and how many random spheres are placed
type PlacementConfig struct {
	// Number of random spheres placed after the anchors
	Spheres int `json:"spheres" validate:"gte=0"`
	// Candidate centers have x and z drawn from [RegionMin, RegionMax)
	RegionMin float64 `json:"region_min" validate:"ltfield=RegionMax"`
	RegionMax float64 `json:"region_max"`
	// Every random sphere sits at this height with this radius
	Height float64 `json:"height"`
	Radius float64 `json:"radius" validate:"gt=0"`
	// Candidates drawn per sphere before giving up
	MaxAttempts int `json:"max_attempts" validate:"gte=1"`
}

// DefaultPlacementConfig returns the reference configuration: 50 unit spheres on a 60x60 field
func DefaultPlacementConfig() PlacementConfig {
	return PlacementConfig{
		Spheres:     50,
		RegionMin:   -30,
		RegionMax:   30,
		Height:      1.0,
		Radius:      1.0,
		MaxAttempts: 10000,
	}
}

// Validate checks the placement ranges
func (c PlacementConfig) Validate() error {
	return core.Validate(c)
}

// Stats summarizes a population run
type Stats struct {
	Placed     int // Random spheres accepted
	Candidates int // Candidate spheres drawn
	Rejections int // Candidates rejected for overlapping
}

// PlacementError reports the sphere that could not be placed
type PlacementError struct {
	Index    int // Zero-based index of the random sphere
	Attempts int // Candidates tried for it
	Placed   int // Random spheres placed before it
}

func (e *PlacementError) Error() string {
	return fmt.Sprintf("sphere %d: %v after %d attempts (%d placed)", e.Index, ErrPlacementExhausted, e.Attempts, e.Placed)
}

func (e *PlacementError) Unwrap() error {
	return ErrPlacementExhausted
}

// Populator builds scenes: fixed anchors plus randomly placed, non-overlapping spheres
type Populator struct {
	config  PlacementConfig
	random  core.Random
	factory *material.Factory
	logger  core.Logger
}

// NewPopulator creates a populator. The factory should draw from the same random stream.
func NewPopulator(config PlacementConfig, random core.Random, factory *material.Factory, logger core.Logger) *Populator {
	return &Populator{
		config:  config,
		random:  random,
		factory: factory,
		logger:  logger,
	}
}

// NewSeededPopulator wires a populator whose draws and material identifiers all come from one seeded stream
func NewSeededPopulator(config PlacementConfig, seed uint64, logger core.Logger) *Populator {
	random := core.NewRandom(seed)
	factory := material.NewFactory(random, material.NewUUIDSource(random))
	return NewPopulator(config, random, factory, logger)
}

// Populate builds a scene for the camera.
//
// Each random sphere gets a fresh material and is placed by rejection sampling against
// every sphere already in the scene, anchors included. A sphere that is still rejected
// after MaxAttempts candidates stops the run with a *PlacementError; the scene placed so far
// is returned alongside it, without the material of the sphere that did not fit.
func (p *Populator) Populate(camera geometry.CameraConfig) (*Scene, Stats, error) {
	var stats Stats
	if err := camera.Validate(); err != nil {
		return nil, stats, fmt.Errorf("invalid camera: %w", err)
	}
	if err := p.config.Validate(); err != nil {
		return nil, stats, fmt.Errorf("invalid placement: %w", err)
	}

	s := New(camera)
	s.AddAnchors()

	for i := 0; i < p.config.Spheres; i++ {
		id, m := p.factory.Generate()
		s.AddMaterial(id, m)

		attempts, err := p.place(s, id, &stats)
		if err != nil {
			delete(s.Materials, id)
			return s, stats, &PlacementError{Index: i, Attempts: attempts, Placed: stats.Placed}
		}
		p.debugf("placed sphere %d (%s, %s) after %d attempts", i, id, m.Kind(), attempts)
	}

	return s, stats, nil
}

// place draws candidates until one fits, returning the number of attempts used
func (p *Populator) place(s *Scene, id string, stats *Stats) (int, error) {
	for attempt := 1; attempt <= p.config.MaxAttempts; attempt++ {
		stats.Candidates++

		x := p.random.FloatRange(p.config.RegionMin, p.config.RegionMax)
		z := p.random.FloatRange(p.config.RegionMin, p.config.RegionMax)
		candidate := geometry.NewSphere(core.NewVec3(x, p.config.Height, z), p.config.Radius, id)

		if !candidate.OverlapsAny(s.Spheres) {
			s.AddSphere(candidate)
			stats.Placed++
			return attempt, nil
		}
		stats.Rejections++
	}
	return p.config.MaxAttempts, ErrPlacementExhausted
}

func (p *Populator) debugf(template string, args ...interface{}) {
	if p.logger != nil {
		p.logger.Debugf(template, args...)
	}
}
