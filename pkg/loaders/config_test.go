package loaders

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-scene-generator/pkg/core"
	"github.com/df07/go-scene-generator/pkg/document"
	"github.com/df07/go-scene-generator/pkg/geometry"
	"github.com/df07/go-scene-generator/pkg/scene"
)

const tomlConfig = `scene = "dense-field"
seed = 42
format = "yaml"

[placement]
spheres = 20
max_attempts = 500

[camera]
vfov = 35.0
lookfrom = [0.0, 10.0, 60.0]
background = [0, 0, 0]
`

const yamlConfig = `scene: anchors
pretty: true
placement:
  radius: 0.5
camera:
  image_width: 400
  aspect_ratio: 1.5
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig_TOML(t *testing.T) {
	cfg, err := LoadConfig(writeFile(t, "scene.toml", tomlConfig))
	require.NoError(t, err)

	assert.Equal(t, "dense-field", cfg.Scene)
	assert.Equal(t, uint64(42), cfg.Seed)

	placement, camera, format, err := cfg.Resolve()
	require.NoError(t, err)

	assert.Equal(t, document.FormatYAML, format)
	assert.Equal(t, 20, placement.Spheres)
	assert.Equal(t, 500, placement.MaxAttempts)
	assert.Equal(t, -20.0, placement.RegionMin, "unset fields keep the preset value")

	assert.Equal(t, 35.0, camera.VFov)
	assert.Equal(t, core.NewVec3(0, 10, 60), camera.LookFrom)
	assert.Equal(t, core.NewColor(0, 0, 0), camera.Background)
	assert.Equal(t, geometry.DefaultCameraConfig().FocusDist, camera.FocusDist)
}

func TestLoadConfig_YAML(t *testing.T) {
	cfg, err := LoadConfig(writeFile(t, "scene.yml", yamlConfig))
	require.NoError(t, err)
	assert.True(t, cfg.Pretty)

	placement, camera, format, err := cfg.Resolve()
	require.NoError(t, err)

	assert.Equal(t, document.FormatJSON, format)
	assert.Equal(t, 0, placement.Spheres)
	assert.Equal(t, 0.5, placement.Radius)
	assert.Equal(t, 400, camera.ImageWidth)
	assert.Equal(t, 1.5, camera.AspectRatio)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"unknown toml key", "bad.toml", "zoom = 3\n"},
		{"unknown yaml key", "bad.yaml", "camera:\n  zoom: 3\n"},
		{"malformed toml", "bad.toml", "scene = \n"},
		{"unsupported extension", "scene.ini", "scene=random\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeFile(t, tt.file, tt.content))
			assert.Error(t, err)
		})
	}

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.True(t, errors.Is(err, os.ErrNotExist))

	_, err = LoadConfig(writeFile(t, "scene.json", "{}"))
	assert.True(t, errors.Is(err, ErrUnsupportedConfig))
}

func TestConfig_ResolveDefaults(t *testing.T) {
	var cfg Config
	placement, camera, format, err := cfg.Resolve()
	require.NoError(t, err)

	assert.Equal(t, scene.DefaultPlacementConfig(), placement)
	assert.Equal(t, geometry.DefaultCameraConfig(), camera)
	assert.Equal(t, document.FormatJSON, format)
}

func TestConfig_ResolveErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"unknown preset", Config{Scene: "cornell"}},
		{"unknown format", Config{Format: "xml"}},
		{"short vector", Config{Camera: CameraSection{VUp: []float64{0, 1}}}},
		{"bad background", Config{Camera: CameraSection{Background: []int{0, 0, 999}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, err := tt.cfg.Resolve()
			assert.Error(t, err)
		})
	}
}

func TestPlacementSection_Apply(t *testing.T) {
	zero := 0
	radius := 2.5
	section := PlacementSection{Spheres: &zero, Radius: &radius}

	result := section.Apply(scene.DefaultPlacementConfig())
	assert.Equal(t, 0, result.Spheres, "an explicit zero overrides the preset")
	assert.Equal(t, 2.5, result.Radius)
	assert.Equal(t, scene.DefaultPlacementConfig().MaxAttempts, result.MaxAttempts)
}
