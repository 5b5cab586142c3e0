package loaders

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables read by ApplyEnv
const (
	EnvScene       = "SCENEGEN_SCENE"
	EnvSpheres     = "SCENEGEN_SPHERES"
	EnvSeed        = "SCENEGEN_SEED"
	EnvMaxAttempts = "SCENEGEN_MAX_ATTEMPTS"
	EnvFormat      = "SCENEGEN_FORMAT"
	EnvPretty      = "SCENEGEN_PRETTY"
)

// LoadEnvFile loads a dotenv file into the process environment. Variables that are
// already set win over the file. A missing file is only an error when required is set.
func LoadEnvFile(path string, required bool) error {
	err := godotenv.Load(path)
	if err == nil {
		return nil
	}
	if !required && errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("failed to load env file %s: %w", path, err)
}

// ApplyEnv overrides config fields from SCENEGEN_* variables, using lookup to read them
// (os.LookupEnv outside of tests)
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvScene); ok && v != "" {
		c.Scene = v
	}
	if v, ok := lookup(EnvFormat); ok && v != "" {
		c.Format = v
	}
	if v, ok := lookup(EnvSpheres); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvSpheres, err)
		}
		c.Placement.Spheres = &n
	}
	if v, ok := lookup(EnvMaxAttempts); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvMaxAttempts, err)
		}
		c.Placement.MaxAttempts = &n
	}
	if v, ok := lookup(EnvSeed); ok && v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvSeed, err)
		}
		c.Seed = seed
	}
	if v, ok := lookup(EnvPretty); ok && v != "" {
		pretty, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvPretty, err)
		}
		c.Pretty = pretty
	}
	return nil
}
