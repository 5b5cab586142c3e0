package document

import (
	"errors"
	"fmt"

	"github.com/df07/go-scene-generator/pkg/core"
	"github.com/df07/go-scene-generator/pkg/geometry"
	"github.com/df07/go-scene-generator/pkg/material"
	"github.com/df07/go-scene-generator/pkg/scene"
)

// ErrInvalidDocument wraps every structural problem found while reading a document
var ErrInvalidDocument = errors.New("invalid scene document")

// Document is the scene description consumed by the renderer
type Document struct {
	Camera    CameraRecord              `json:"camera" yaml:"camera" toml:"camera"`
	Materials map[string]MaterialRecord `json:"materials" yaml:"materials" toml:"materials"`
	Shapes    []ShapeRecord             `json:"shapes" yaml:"shapes" toml:"shapes"`
}

// CameraRecord is the camera section of a document
type CameraRecord struct {
	PixelSamples int       `json:"pixel_samples" yaml:"pixel_samples" toml:"pixel_samples"`
	VFov         float64   `json:"vfov" yaml:"vfov" toml:"vfov"`
	LookFrom     []float64 `json:"lookfrom" yaml:"lookfrom,flow" toml:"lookfrom"`
	LookAt       []float64 `json:"lookat" yaml:"lookat,flow" toml:"lookat"`
	VUp          []float64 `json:"vup" yaml:"vup,flow" toml:"vup"`
	DefocusAngle float64   `json:"defocus_angle" yaml:"defocus_angle" toml:"defocus_angle"`
	FocusDist    float64   `json:"focus_dist" yaml:"focus_dist" toml:"focus_dist"`
	AspectRatio  float64   `json:"aspect_ratio" yaml:"aspect_ratio" toml:"aspect_ratio"`
	ImageWidth   int       `json:"image_width" yaml:"image_width" toml:"image_width"`
	MaxDepth     int       `json:"max_depth" yaml:"max_depth" toml:"max_depth"`
	Background   []int     `json:"background" yaml:"background,flow" toml:"background"`
}

// MaterialRecord is a flat material entry. Fuzz is set for lambertian and metal,
// RefractionIndex for dielectric; the other one is omitted from the output.
type MaterialRecord struct {
	Type            string   `json:"type" yaml:"type" toml:"type"`
	Color           []int    `json:"color" yaml:"color,flow" toml:"color"`
	Fuzz            *float64 `json:"fuzz,omitempty" yaml:"fuzz,omitempty" toml:"fuzz,omitempty"`
	RefractionIndex *float64 `json:"refraction_index,omitempty" yaml:"refraction_index,omitempty" toml:"refraction_index,omitempty"`
}

// ShapeRecord is a single-key object wrapping one shape
type ShapeRecord struct {
	Sphere *SphereRecord `json:"sphere" yaml:"sphere" toml:"sphere"`
}

// SphereRecord references its material by identifier
type SphereRecord struct {
	Center   []float64 `json:"center" yaml:"center,flow" toml:"center"`
	Radius   float64   `json:"radius" yaml:"radius" toml:"radius"`
	Material string    `json:"material" yaml:"material" toml:"material"`
}

// FromScene converts a generated scene into its document form
func FromScene(s *scene.Scene) *Document {
	doc := &Document{
		Camera:    cameraRecord(s.Camera),
		Materials: make(map[string]MaterialRecord, len(s.Materials)),
		Shapes:    make([]ShapeRecord, 0, len(s.Spheres)),
	}
	for id, m := range s.Materials {
		doc.Materials[id] = materialRecord(m)
	}
	for _, sphere := range s.Spheres {
		doc.Shapes = append(doc.Shapes, ShapeRecord{Sphere: &SphereRecord{
			Center:   sphere.Center.Slice(),
			Radius:   sphere.Radius,
			Material: sphere.Material,
		}})
	}
	return doc
}

func cameraRecord(c geometry.CameraConfig) CameraRecord {
	return CameraRecord{
		PixelSamples: c.PixelSamples,
		VFov:         c.VFov,
		LookFrom:     c.LookFrom.Slice(),
		LookAt:       c.LookAt.Slice(),
		VUp:          c.VUp.Slice(),
		DefocusAngle: c.DefocusAngle,
		FocusDist:    c.FocusDist,
		AspectRatio:  c.AspectRatio,
		ImageWidth:   c.ImageWidth,
		MaxDepth:     c.MaxDepth,
		Background:   c.Background.Ints(),
	}
}

func materialRecord(m material.Material) MaterialRecord {
	record := MaterialRecord{
		Type:  string(m.Kind()),
		Color: m.Albedo().Ints(),
	}
	switch v := m.(type) {
	case *material.Lambertian:
		record.Fuzz = floatPtr(v.Fuzz)
	case *material.Metal:
		record.Fuzz = floatPtr(v.Fuzz)
	case *material.Dielectric:
		record.RefractionIndex = floatPtr(v.RefractionIndex)
	}
	return record
}

func floatPtr(f float64) *float64 {
	return &f
}

// ToScene converts a document back into a scene, checking every field on the way.
// The materials and shapes keys are required, though either may be empty.
// Overlap is not checked here; call Validate on the result for that.
func (d *Document) ToScene() (*scene.Scene, error) {
	if d.Materials == nil {
		return nil, fmt.Errorf("%w: missing materials", ErrInvalidDocument)
	}
	if d.Shapes == nil {
		return nil, fmt.Errorf("%w: missing shapes", ErrInvalidDocument)
	}

	camera, err := d.Camera.toCamera()
	if err != nil {
		return nil, fmt.Errorf("%w: camera: %v", ErrInvalidDocument, err)
	}

	s := scene.New(camera)
	for id, record := range d.Materials {
		m, err := record.toMaterial()
		if err != nil {
			return nil, fmt.Errorf("%w: material %q: %v", ErrInvalidDocument, id, err)
		}
		s.AddMaterial(id, m)
	}

	for i, shape := range d.Shapes {
		sphere, err := shape.toSphere()
		if err != nil {
			return nil, fmt.Errorf("%w: shape %d: %v", ErrInvalidDocument, i, err)
		}
		if _, ok := s.Materials[sphere.Material]; !ok {
			return nil, fmt.Errorf("%w: shape %d: %v %q", ErrInvalidDocument, i, scene.ErrUnknownMaterial, sphere.Material)
		}
		s.AddSphere(sphere)
	}
	return s, nil
}

// Validate reports the first structural problem in the document, if any
func (d *Document) Validate() error {
	_, err := d.ToScene()
	return err
}

func (c CameraRecord) toCamera() (geometry.CameraConfig, error) {
	lookFrom, err := core.Vec3FromSlice(c.LookFrom)
	if err != nil {
		return geometry.CameraConfig{}, fmt.Errorf("lookfrom: %v", err)
	}
	lookAt, err := core.Vec3FromSlice(c.LookAt)
	if err != nil {
		return geometry.CameraConfig{}, fmt.Errorf("lookat: %v", err)
	}
	vup, err := core.Vec3FromSlice(c.VUp)
	if err != nil {
		return geometry.CameraConfig{}, fmt.Errorf("vup: %v", err)
	}
	background, err := core.ColorFromInts(c.Background)
	if err != nil {
		return geometry.CameraConfig{}, fmt.Errorf("background: %v", err)
	}

	camera := geometry.CameraConfig{
		PixelSamples: c.PixelSamples,
		VFov:         c.VFov,
		LookFrom:     lookFrom,
		LookAt:       lookAt,
		VUp:          vup,
		DefocusAngle: c.DefocusAngle,
		FocusDist:    c.FocusDist,
		AspectRatio:  c.AspectRatio,
		ImageWidth:   c.ImageWidth,
		MaxDepth:     c.MaxDepth,
		Background:   background,
	}
	if err := camera.Validate(); err != nil {
		return geometry.CameraConfig{}, err
	}
	return camera, nil
}

func (m MaterialRecord) toMaterial() (material.Material, error) {
	kind, err := material.ParseKind(m.Type)
	if err != nil {
		return nil, err
	}
	color, err := core.ColorFromInts(m.Color)
	if err != nil {
		return nil, fmt.Errorf("color: %v", err)
	}

	switch kind {
	case material.KindDielectric:
		if m.Fuzz != nil {
			return nil, errors.New("dielectric must not have fuzz")
		}
		if m.RefractionIndex == nil {
			return nil, errors.New("dielectric requires refraction_index")
		}
		if *m.RefractionIndex <= 1.0 {
			return nil, fmt.Errorf("refraction_index must be greater than 1, got %g", *m.RefractionIndex)
		}
		return material.NewDielectric(color, *m.RefractionIndex), nil
	default:
		if m.RefractionIndex != nil {
			return nil, fmt.Errorf("%s must not have refraction_index", kind)
		}
		if m.Fuzz == nil {
			return nil, fmt.Errorf("%s requires fuzz", kind)
		}
		if *m.Fuzz < 0 {
			return nil, fmt.Errorf("fuzz must not be negative, got %g", *m.Fuzz)
		}
		if kind == material.KindMetal {
			return &material.Metal{Color: color, Fuzz: *m.Fuzz}, nil
		}
		return &material.Lambertian{Color: color, Fuzz: *m.Fuzz}, nil
	}
}

func (s ShapeRecord) toSphere() (geometry.Sphere, error) {
	if s.Sphere == nil {
		return geometry.Sphere{}, errors.New("missing sphere")
	}
	center, err := core.Vec3FromSlice(s.Sphere.Center)
	if err != nil {
		return geometry.Sphere{}, fmt.Errorf("center: %v", err)
	}
	if s.Sphere.Radius <= 0 {
		return geometry.Sphere{}, fmt.Errorf("radius must be positive, got %g", s.Sphere.Radius)
	}
	return geometry.NewSphere(center, s.Sphere.Radius, s.Sphere.Material), nil
}
