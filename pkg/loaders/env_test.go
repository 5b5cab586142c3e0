package loaders

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestConfig_ApplyEnv(t *testing.T) {
	cfg := Config{Scene: "random", Format: "json"}
	err := cfg.ApplyEnv(lookupFrom(map[string]string{
		EnvScene:       "anchors",
		EnvSpheres:     "12",
		EnvSeed:        "18446744073709551615",
		EnvMaxAttempts: "50",
		EnvFormat:      "toml",
		EnvPretty:      "true",
	}))
	require.NoError(t, err)

	assert.Equal(t, "anchors", cfg.Scene)
	assert.Equal(t, "toml", cfg.Format)
	assert.Equal(t, uint64(18446744073709551615), cfg.Seed)
	assert.True(t, cfg.Pretty)
	require.NotNil(t, cfg.Placement.Spheres)
	assert.Equal(t, 12, *cfg.Placement.Spheres)
	require.NotNil(t, cfg.Placement.MaxAttempts)
	assert.Equal(t, 50, *cfg.Placement.MaxAttempts)
}

func TestConfig_ApplyEnvKeepsUnset(t *testing.T) {
	cfg := Config{Scene: "dense-field", Seed: 9}
	require.NoError(t, cfg.ApplyEnv(lookupFrom(map[string]string{EnvScene: ""})))

	assert.Equal(t, "dense-field", cfg.Scene)
	assert.Equal(t, uint64(9), cfg.Seed)
	assert.Nil(t, cfg.Placement.Spheres)
}

func TestConfig_ApplyEnvInvalid(t *testing.T) {
	for _, key := range []string{EnvSpheres, EnvSeed, EnvMaxAttempts, EnvPretty} {
		t.Run(key, func(t *testing.T) {
			var cfg Config
			err := cfg.ApplyEnv(lookupFrom(map[string]string{key: "not-a-number"}))
			assert.ErrorContains(t, err, key)
		})
	}
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("SCENEGEN_TEST_SPHERES=7\n"), 0644))
	t.Cleanup(func() { os.Unsetenv("SCENEGEN_TEST_SPHERES") })

	require.NoError(t, LoadEnvFile(path, true))
	assert.Equal(t, "7", os.Getenv("SCENEGEN_TEST_SPHERES"))

	missing := filepath.Join(t.TempDir(), "missing.env")
	assert.NoError(t, LoadEnvFile(missing, false))
	assert.Error(t, LoadEnvFile(missing, true))
}

func TestLoadEnvFile_ExistingVariablesWin(t *testing.T) {
	t.Setenv("SCENEGEN_TEST_FORMAT", "yaml")
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("SCENEGEN_TEST_FORMAT=toml\n"), 0644))

	require.NoError(t, LoadEnvFile(path, true))
	assert.Equal(t, "yaml", os.Getenv("SCENEGEN_TEST_FORMAT"))
}
