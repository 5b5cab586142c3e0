package scene

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-scene-generator/pkg/geometry"
)

func TestLookupPreset(t *testing.T) {
	tests := []struct {
		name        string
		preset      string
		wantSpheres int
		wantErr     bool
	}{
		{"empty name selects default", "", 50, false},
		{"random", "random", 50, false},
		{"anchors", "anchors", 0, false},
		{"dense field", "dense-field", 150, false},
		{"unknown", "cornell", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := LookupPreset(tt.preset)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrUnknownPreset))
				assert.Contains(t, err.Error(), "random")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSpheres, config.Spheres)
			assert.NoError(t, config.Validate())
		})
	}
}

func TestPresetsPopulate(t *testing.T) {
	for _, name := range PresetNames() {
		t.Run(name, func(t *testing.T) {
			config, err := LookupPreset(name)
			require.NoError(t, err)

			s, stats, err := NewSeededPopulator(config, 77, nil).Populate(geometry.DefaultCameraConfig())
			require.NoError(t, err)
			assert.Equal(t, config.Spheres, stats.Placed)
			assert.Len(t, s.Spheres, 3+config.Spheres)
			assert.NoError(t, s.Validate())
		})
	}
}

func TestListPresets(t *testing.T) {
	list := ListPresets()
	require.Len(t, list, len(PresetNames()))

	for i, name := range PresetNames() {
		assert.Equal(t, name, list[i].ID)
		assert.NotEmpty(t, list[i].Description)
	}
	assert.Equal(t, "Dense Field", list[1].DisplayName)
}

func TestTitleCase(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"dense-field", "Dense Field"},
		{"my_custom_preset", "My Custom Preset"},
		{"random", "Random"},
		{"UPPER-case", "Upper Case"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			result := titleCase(tc.input)
			if result != tc.expected {
				t.Errorf("titleCase(%q) = %q, want %q", tc.input, result, tc.expected)
			}
		})
	}
}
