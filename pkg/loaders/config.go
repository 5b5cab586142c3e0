package loaders

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/df07/go-scene-generator/pkg/core"
	"github.com/df07/go-scene-generator/pkg/document"
	"github.com/df07/go-scene-generator/pkg/geometry"
	"github.com/df07/go-scene-generator/pkg/scene"
)

// ErrUnsupportedConfig is returned for config files that are neither TOML nor YAML
var ErrUnsupportedConfig = errors.New("unsupported config file type")

// Config is the generator configuration as read from a file, the environment and flags.
// Nil and zero fields keep the value of the layer below.
type Config struct {
	Scene     string           `toml:"scene" yaml:"scene" json:"scene"`
	Seed      uint64           `toml:"seed" yaml:"seed" json:"seed"`
	Format    string           `toml:"format" yaml:"format" json:"format"`
	Pretty    bool             `toml:"pretty" yaml:"pretty" json:"pretty"`
	Placement PlacementSection `toml:"placement" yaml:"placement" json:"placement"`
	Camera    CameraSection    `toml:"camera" yaml:"camera" json:"camera"`
}

// PlacementSection overrides fields of the selected preset
type PlacementSection struct {
	Spheres     *int     `toml:"spheres" yaml:"spheres" json:"spheres"`
	RegionMin   *float64 `toml:"region_min" yaml:"region_min" json:"region_min"`
	RegionMax   *float64 `toml:"region_max" yaml:"region_max" json:"region_max"`
	Height      *float64 `toml:"height" yaml:"height" json:"height"`
	Radius      *float64 `toml:"radius" yaml:"radius" json:"radius"`
	MaxAttempts *int     `toml:"max_attempts" yaml:"max_attempts" json:"max_attempts"`
}

// CameraSection overrides fields of the default camera. Field names match the document.
type CameraSection struct {
	PixelSamples *int      `toml:"pixel_samples" yaml:"pixel_samples" json:"pixel_samples"`
	VFov         *float64  `toml:"vfov" yaml:"vfov" json:"vfov"`
	LookFrom     []float64 `toml:"lookfrom" yaml:"lookfrom" json:"lookfrom"`
	LookAt       []float64 `toml:"lookat" yaml:"lookat" json:"lookat"`
	VUp          []float64 `toml:"vup" yaml:"vup" json:"vup"`
	DefocusAngle *float64  `toml:"defocus_angle" yaml:"defocus_angle" json:"defocus_angle"`
	FocusDist    *float64  `toml:"focus_dist" yaml:"focus_dist" json:"focus_dist"`
	AspectRatio  *float64  `toml:"aspect_ratio" yaml:"aspect_ratio" json:"aspect_ratio"`
	ImageWidth   *int      `toml:"image_width" yaml:"image_width" json:"image_width"`
	MaxDepth     *int      `toml:"max_depth" yaml:"max_depth" json:"max_depth"`
	Background   []int     `toml:"background" yaml:"background" json:"background"`
}

// LoadConfig reads a TOML or YAML config file, chosen by extension. Unknown keys are rejected.
func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.NewDecoder(file).DisallowUnknownFields().Decode(&cfg)
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(file)
		dec.KnownFields(true)
		err = dec.Decode(&cfg)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedConfig, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Resolve applies the config on top of its preset and the default camera
func (c *Config) Resolve() (scene.PlacementConfig, geometry.CameraConfig, document.Format, error) {
	placement, err := scene.LookupPreset(c.Scene)
	if err != nil {
		return scene.PlacementConfig{}, geometry.CameraConfig{}, "", err
	}
	placement = c.Placement.Apply(placement)

	camera, err := c.Camera.Apply(geometry.DefaultCameraConfig())
	if err != nil {
		return scene.PlacementConfig{}, geometry.CameraConfig{}, "", fmt.Errorf("camera: %w", err)
	}

	format, err := document.ParseFormat(c.Format)
	if err != nil {
		return scene.PlacementConfig{}, geometry.CameraConfig{}, "", err
	}
	return placement, camera, format, nil
}

// Apply returns base with every set field replaced
func (p PlacementSection) Apply(base scene.PlacementConfig) scene.PlacementConfig {
	result := base
	if p.Spheres != nil {
		result.Spheres = *p.Spheres
	}
	if p.RegionMin != nil {
		result.RegionMin = *p.RegionMin
	}
	if p.RegionMax != nil {
		result.RegionMax = *p.RegionMax
	}
	if p.Height != nil {
		result.Height = *p.Height
	}
	if p.Radius != nil {
		result.Radius = *p.Radius
	}
	if p.MaxAttempts != nil {
		result.MaxAttempts = *p.MaxAttempts
	}
	return result
}

// Apply returns base with every set field replaced. Vectors and colors must have three components.
func (c CameraSection) Apply(base geometry.CameraConfig) (geometry.CameraConfig, error) {
	result := base
	if c.PixelSamples != nil {
		result.PixelSamples = *c.PixelSamples
	}
	if c.VFov != nil {
		result.VFov = *c.VFov
	}
	vectors := []struct {
		name   string
		values []float64
		target *core.Vec3
	}{
		{"lookfrom", c.LookFrom, &result.LookFrom},
		{"lookat", c.LookAt, &result.LookAt},
		{"vup", c.VUp, &result.VUp},
	}
	for _, v := range vectors {
		if v.values == nil {
			continue
		}
		vec, err := core.Vec3FromSlice(v.values)
		if err != nil {
			return geometry.CameraConfig{}, fmt.Errorf("%s: %w", v.name, err)
		}
		*v.target = vec
	}
	if c.DefocusAngle != nil {
		result.DefocusAngle = *c.DefocusAngle
	}
	if c.FocusDist != nil {
		result.FocusDist = *c.FocusDist
	}
	if c.AspectRatio != nil {
		result.AspectRatio = *c.AspectRatio
	}
	if c.ImageWidth != nil {
		result.ImageWidth = *c.ImageWidth
	}
	if c.MaxDepth != nil {
		result.MaxDepth = *c.MaxDepth
	}
	if c.Background != nil {
		background, err := core.ColorFromInts(c.Background)
		if err != nil {
			return geometry.CameraConfig{}, fmt.Errorf("background: %w", err)
		}
		result.Background = background
	}
	return result, nil
}
