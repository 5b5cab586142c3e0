package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/df07/go-scene-generator/internal/log"
	"github.com/df07/go-scene-generator/pkg/batch"
	"github.com/df07/go-scene-generator/pkg/core"
	"github.com/df07/go-scene-generator/pkg/document"
	"github.com/df07/go-scene-generator/pkg/loaders"
	"github.com/df07/go-scene-generator/pkg/scene"
)

type options struct {
	scene       string
	spheres     int
	seed        uint64
	maxAttempts int
	configPath  string
	envPath     string
	format      string
	pretty      bool
	outPath     string
	checkPath   string
	count       int
	workers     int
	debug       bool
	help        bool
	set         map[string]bool // flags given explicitly on the command line
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if opts.help {
		printHelp(stderr)
		return 0
	}

	logger, err := log.NewLogger(stderr, true, opts.debug)
	if err != nil {
		fmt.Fprintf(stderr, "Error creating logger: %v\n", err)
		return 1
	}
	defer logger.Sync()

	if opts.checkPath != "" {
		if err := checkDocument(opts, logger); err != nil {
			logger.Errorw("document check failed", "path", opts.checkPath, "error", err)
			return 1
		}
		return 0
	}

	cfg, err := buildConfig(opts)
	if err != nil {
		logger.Errorw("invalid configuration", "error", err)
		return 1
	}

	if opts.count > 1 {
		if err := generateBatch(cfg, opts, logger); err != nil {
			logger.Errorw("batch generation failed", "error", err)
			return 1
		}
		return 0
	}

	out, err := generate(cfg, logger)
	if err != nil {
		var placementErr *scene.PlacementError
		if errors.As(err, &placementErr) {
			logger.Errorw("could not place all spheres, enlarge the region or reduce the sphere count",
				"sphere", placementErr.Index, "attempts", placementErr.Attempts, "placed", placementErr.Placed)
		} else {
			logger.Errorw("scene generation failed", "error", err)
		}
		return 1
	}

	if err := writeOutput(out, opts.outPath, stdout); err != nil {
		logger.Errorw("failed to write scene document", "error", err)
		return 1
	}
	if opts.outPath != "" {
		logger.Infow("scene saved", "path", opts.outPath)
	}
	return 0
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	opts := &options{set: make(map[string]bool)}

	fs := flag.NewFlagSet("scenegen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.scene, "scene", scene.DefaultPreset, "Scene preset: 'random', 'anchors' or 'dense-field'")
	fs.IntVar(&opts.spheres, "spheres", 0, "Number of random spheres (overrides the preset)")
	fs.Uint64Var(&opts.seed, "seed", 0, "Random seed, 0 picks one and logs it")
	fs.IntVar(&opts.maxAttempts, "max-attempts", 0, "Placement attempts per sphere before giving up")
	fs.StringVar(&opts.configPath, "config", "", "TOML or YAML config file")
	fs.StringVar(&opts.envPath, "env", ".env", "dotenv file with SCENEGEN_* variables")
	fs.StringVar(&opts.format, "format", "", "Output format: json, yaml or toml")
	fs.BoolVar(&opts.pretty, "pretty", false, "Indent the output")
	fs.StringVar(&opts.outPath, "out", "", "Write the document to this file instead of stdout")
	fs.StringVar(&opts.checkPath, "check", "", "Validate an existing scene document and exit")
	fs.IntVar(&opts.count, "count", 1, "Number of scenes to generate with consecutive seeds (requires -out directory)")
	fs.IntVar(&opts.workers, "workers", 0, "Parallel workers for -count, 0 uses all CPUs")
	fs.BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	fs.BoolVar(&opts.help, "help", false, "Show help information")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	fs.Visit(func(f *flag.Flag) { opts.set[f.Name] = true })

	if opts.count < 1 {
		err := fmt.Errorf("-count must be at least 1, got %d", opts.count)
		fmt.Fprintln(stderr, err)
		return nil, err
	}

	if opts.help {
		fs.PrintDefaults()
	}
	return opts, nil
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Random Sphere Scene Generator")
	fmt.Fprintln(w, "Usage: scenegen [options] > scene.json")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Available scenes:")
	for _, preset := range scene.ListPresets() {
		fmt.Fprintf(w, "  %-12s - %s\n", preset.ID, preset.Description)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Settings are layered: preset < -config file < SCENEGEN_* environment < flags")
}

// buildConfig layers the config file, the environment and explicit flags
func buildConfig(opts *options) (*loaders.Config, error) {
	if err := loaders.LoadEnvFile(opts.envPath, opts.set["env"]); err != nil {
		return nil, err
	}

	cfg := &loaders.Config{}
	if opts.configPath != "" {
		loaded, err := loaders.LoadConfig(opts.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	if opts.set["scene"] {
		cfg.Scene = opts.scene
	}
	if opts.set["spheres"] {
		cfg.Placement.Spheres = &opts.spheres
	}
	if opts.set["max-attempts"] {
		cfg.Placement.MaxAttempts = &opts.maxAttempts
	}
	if opts.set["seed"] {
		cfg.Seed = opts.seed
	}
	if opts.set["format"] {
		cfg.Format = opts.format
	}
	if opts.set["pretty"] {
		cfg.Pretty = opts.pretty
	}
	return cfg, nil
}

// generate populates a scene and encodes it in full before anything is written
func generate(cfg *loaders.Config, logger *log.Logger) ([]byte, error) {
	placement, camera, format, err := cfg.Resolve()
	if err != nil {
		return nil, err
	}

	seed := resolveSeed(cfg.Seed)
	logger.Infow("generating scene", "scene", cfg.Scene, "spheres", placement.Spheres, "seed", seed)

	s, stats, err := scene.NewSeededPopulator(placement, seed, logger).Populate(camera)
	if err != nil {
		return nil, err
	}
	logger.Debugw("scene populated",
		"placed", stats.Placed, "candidates", stats.Candidates, "rejections", stats.Rejections)

	var buf bytes.Buffer
	if err := document.Encode(&buf, document.FromScene(s), format, cfg.Pretty); err != nil {
		return nil, fmt.Errorf("failed to encode scene: %w", err)
	}
	return buf.Bytes(), nil
}

// generateBatch writes one document per seed into the -out directory
func generateBatch(cfg *loaders.Config, opts *options, logger *log.Logger) error {
	if opts.outPath == "" {
		return errors.New("-count requires -out to name an output directory")
	}
	placement, camera, format, err := cfg.Resolve()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(opts.outPath, 0755); err != nil {
		return err
	}

	base := resolveSeed(cfg.Seed)
	logger.Infow("generating scene batch", "scene", cfg.Scene, "count", opts.count, "base_seed", base)

	results, err := batch.Generate(context.Background(), batch.Config{
		Placement:  placement,
		Camera:     camera,
		Seeds:      batch.Seeds(base, opts.count),
		NumWorkers: opts.workers,
	}, logger)
	if err != nil {
		return err
	}

	for _, result := range results {
		if result.Err != nil {
			logger.Errorw("scene failed", "seed", result.Seed, "error", result.Err)
			continue
		}
		var buf bytes.Buffer
		if err := document.Encode(&buf, document.FromScene(result.Scene), format, cfg.Pretty); err != nil {
			return fmt.Errorf("failed to encode scene %d: %w", result.Seed, err)
		}
		path := filepath.Join(opts.outPath, fmt.Sprintf("scene-%d.%s", result.Seed, format))
		if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
			return err
		}
	}

	summary := batch.Summarize(results)
	logger.Infow("batch complete", "scenes", summary.Scenes, "failed", summary.Failed,
		"mean_rejections", summary.MeanRejections, "stddev_rejections", summary.StdDevRejections,
		"acceptance_rate", summary.MeanAcceptanceRate)
	if summary.Failed > 0 {
		return fmt.Errorf("%d of %d scenes could not be placed", summary.Failed, len(results))
	}
	return nil
}

// resolveSeed picks a random non-zero seed when none is configured
func resolveSeed(seed uint64) uint64 {
	if seed == 0 {
		return core.RandomSeed()
	}
	return seed
}

func writeOutput(out []byte, path string, stdout io.Writer) error {
	if path == "" {
		_, err := stdout.Write(out)
		return err
	}
	return os.WriteFile(path, out, 0644)
}

// checkDocument decodes a scene document and verifies that no spheres overlap
func checkDocument(opts *options, logger *log.Logger) error {
	var format document.Format
	var err error
	if opts.format != "" {
		format, err = document.ParseFormat(opts.format)
	} else {
		format, err = document.FormatFromPath(opts.checkPath)
	}
	if err != nil {
		return err
	}

	file, err := os.Open(opts.checkPath)
	if err != nil {
		return err
	}
	defer file.Close()

	doc, err := document.Decode(file, format)
	if err != nil {
		return err
	}
	s, err := doc.ToScene()
	if err != nil {
		return err
	}
	if err := s.Validate(); err != nil {
		return err
	}

	counts := s.CountByKind()
	logger.Infow("document is valid", "path", opts.checkPath, "spheres", len(s.Spheres),
		"lambertian", counts["lambertian"], "metal", counts["metal"], "dielectric", counts["dielectric"])
	return nil
}
