package main

import (
	"context"
	"errors"
	"fmt"

	docgen "github.com/alnah/go-docgen"
	"github.com/alnah/go-docgen/internal/config"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage   = errors.New("invalid usage")
	ErrNoInput = errors.New("no input specified")
)

// configNotFoundError remembers the requested name so the hint can list
// the searched paths.
type configNotFoundError struct {
	name string
	err  error
}

func (e *configNotFoundError) Error() string { return e.err.Error() }
func (e *configNotFoundError) Unwrap() error { return e.err }

// documentParams groups per-document values shared across a batch.
type documentParams struct {
	title  string
	author string
}

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, positionalArgs []string, flags *convertFlags, env *Environment) error {
	// Validate worker count early
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	envCfg := loadEnvConfig(env.Getenv)
	if !flags.common.quiet {
		warnUnknownEnvVars(env.Stderr, env.Environ())
	}

	cfg, err := loadConfig(flags.common.config, envCfg)
	if err != nil {
		return err
	}

	// Env fills gaps in the file, CLI wins over both
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	inputPath, err := resolveInputPath(positionalArgs, cfg)
	if err != nil {
		return err
	}
	outputDir := resolveOutputDir(flags.output, cfg)

	files, err := discoverFiles(inputPath, outputDir)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w: no markdown files found in %s", ErrNoInput, inputPath)
	}

	opts, err := buildOptions(cfg)
	if err != nil {
		return err
	}

	workers := flags.workers
	if workers == 0 {
		workers = envCfg.Workers
	}
	size := min(docgen.ResolvePoolSize(workers), len(files))
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Engine: %s, pool size: %d\n", cfg.Engine, size)
	}

	pool := env.NewPool(size, opts...)
	defer func() {
		if cerr := pool.Close(); cerr != nil && flags.common.verbose {
			fmt.Fprintf(env.Stderr, "warning: closing converters: %v\n", cerr)
		}
	}()

	params := &documentParams{
		title:  cfg.Document.Title,
		author: cfg.Document.Author,
	}
	results := convertBatch(ctx, pool, files, params)

	failed, firstErr := printResults(results, flags.common.quiet, flags.common.verbose, env)
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d file(s): %w", ErrConversionFailed, failed, len(results), firstErr)
	}

	return nil
}

// loadConfig reads the file named by the --config flag or DOCGEN_CONFIG.
// With neither set it returns the defaults.
func loadConfig(flagConfig string, envCfg *envConfig) (*config.Config, error) {
	name := flagConfig
	if name == "" {
		name = envCfg.ConfigPath
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			err = &configNotFoundError{name: name, err: err}
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if flags.engine != "" {
		cfg.Engine = flags.engine
	}
	if flags.timeout != "" {
		cfg.Timeout = flags.timeout
	}

	// Theme
	if flags.theme.background != "" {
		cfg.Theme.Background = flags.theme.background
	}
	if flags.theme.text != "" {
		cfg.Theme.Text = flags.theme.text
	}

	// Document metadata
	if flags.document.title != "" {
		cfg.Document.Title = flags.document.title
	}
	if flags.document.author != "" {
		cfg.Document.Author = flags.document.author
	}
	if flags.document.producer != "" {
		cfg.Document.Producer = flags.document.producer
	}

	// Style
	if flags.style.name != "" {
		cfg.Style.Name = flags.style.name
	}
	if flags.style.dir != "" {
		cfg.Style.Dir = flags.style.dir
	}
}

// buildOptions translates a validated config into converter options.
func buildOptions(cfg *config.Config) ([]docgen.Option, error) {
	engine, err := docgen.ParseEngine(cfg.Engine)
	if err != nil {
		return nil, err
	}

	opts := []docgen.Option{docgen.WithEngine(engine)}

	if d := cfg.TimeoutDuration(); d > 0 {
		opts = append(opts, docgen.WithTimeout(d))
	}
	if cfg.Theme.Background != "" || cfg.Theme.Text != "" {
		opts = append(opts, docgen.WithTheme(&docgen.Theme{
			Background: cfg.Theme.Background,
			Text:       cfg.Theme.Text,
		}))
	}
	if cfg.Document.Producer != "" {
		opts = append(opts, docgen.WithProducer(cfg.Document.Producer))
	}
	if cfg.Style.Name != "" {
		opts = append(opts, docgen.WithStyle(cfg.Style.Name))
	}
	if cfg.Style.Dir != "" {
		opts = append(opts, docgen.WithStyleDir(cfg.Style.Dir))
	}

	return opts, nil
}

// resolveInputPath returns the positional argument, falling back to the
// configured default directory.
func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", ErrNoInput
}

// resolveOutputDir returns the -o value, falling back to the configured
// default directory. Empty means next to each source file.
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.DefaultDir
}
