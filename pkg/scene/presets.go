package scene

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownPreset is returned by LookupPreset for names that are not registered
var ErrUnknownPreset = errors.New("unknown scene preset")

// DefaultPreset is used when no preset name is given
const DefaultPreset = "random"

// PresetInfo describes a named placement configuration
type PresetInfo struct {
	ID          string          `json:"id"`          // Name used on the command line and in requests
	DisplayName string          `json:"displayName"` // UI display name
	Description string          `json:"description"`
	Config      PlacementConfig `json:"config"`
}

var presets = map[string]PresetInfo{
	"random": {
		ID:          "random",
		Description: "Three anchor spheres and 50 random unit spheres on a 60x60 field",
		Config:      DefaultPlacementConfig(),
	},
	"anchors": {
		ID:          "anchors",
		Description: "Only the brown, metal and glass anchor spheres",
		Config:      withSpheres(DefaultPlacementConfig(), 0),
	},
	"dense-field": {
		ID:          "dense-field",
		Description: "150 random unit spheres packed on a 40x40 field",
		Config: PlacementConfig{
			Spheres:     150,
			RegionMin:   -20,
			RegionMax:   20,
			Height:      1.0,
			Radius:      1.0,
			MaxAttempts: 10000,
		},
	},
}

func withSpheres(c PlacementConfig, n int) PlacementConfig {
	c.Spheres = n
	return c
}

// LookupPreset returns the placement configuration registered under name.
// An empty name selects DefaultPreset.
func LookupPreset(name string) (PlacementConfig, error) {
	if name == "" {
		name = DefaultPreset
	}
	preset, ok := presets[name]
	if !ok {
		return PlacementConfig{}, fmt.Errorf("%w %q (available: %s)", ErrUnknownPreset, name, strings.Join(PresetNames(), ", "))
	}
	return preset.Config, nil
}

// PresetNames returns the registered preset names in sorted order
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ListPresets returns every preset, sorted by name, with display names filled in
func ListPresets() []PresetInfo {
	var list []PresetInfo
	for _, name := range PresetNames() {
		preset := presets[name]
		preset.DisplayName = titleCase(preset.ID)
		list = append(list, preset)
	}
	return list
}

// titleCase converts a preset-style name to title case
// e.g., "dense-field" -> "Dense Field"
func titleCase(s string) string {
	// Replace hyphens and underscores with spaces
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	// Title case each word
	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
