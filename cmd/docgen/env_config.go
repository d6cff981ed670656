package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alnah/go-docgen/internal/config"
)

const envPrefix = "DOCGEN_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // DOCGEN_CONFIG: config file name or path
	Engine     string // DOCGEN_ENGINE: auto, chrome, native
	Timeout    string // DOCGEN_TIMEOUT: PDF generation timeout
	Style      string // DOCGEN_STYLE: chrome engine style name
	InputDir   string // DOCGEN_INPUT_DIR: default input directory
	OutputDir  string // DOCGEN_OUTPUT_DIR: default output directory
	Author     string // DOCGEN_AUTHOR: document author
	Workers    int    // DOCGEN_WORKERS: parallel workers
}

// knownEnvVars lists valid DOCGEN_* environment variables.
var knownEnvVars = map[string]bool{
	"DOCGEN_CONFIG":     true,
	"DOCGEN_ENGINE":     true,
	"DOCGEN_TIMEOUT":    true,
	"DOCGEN_STYLE":      true,
	"DOCGEN_INPUT_DIR":  true,
	"DOCGEN_OUTPUT_DIR": true,
	"DOCGEN_AUTHOR":     true,
	"DOCGEN_WORKERS":    true,
	"DOCGEN_CONTAINER":  true,
}

// loadEnvConfig reads the DOCGEN_* variables through getenv.
// DOCGEN_WORKERS is ignored unless it is a positive integer.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		ConfigPath: getenv("DOCGEN_CONFIG"),
		Engine:     getenv("DOCGEN_ENGINE"),
		Timeout:    getenv("DOCGEN_TIMEOUT"),
		Style:      getenv("DOCGEN_STYLE"),
		InputDir:   getenv("DOCGEN_INPUT_DIR"),
		OutputDir:  getenv("DOCGEN_OUTPUT_DIR"),
		Author:     getenv("DOCGEN_AUTHOR"),
	}

	if workers := getenv("DOCGEN_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars reports DOCGEN_* variables that are not recognized,
// which are usually typos.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	for _, kv := range environ {
		if !strings.HasPrefix(kv, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(kv, "=")
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig fills config fields that are still empty from the
// environment. Precedence: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	// The config default is "auto", so a set variable wins unless the file
	// chose a concrete engine.
	if env.Engine != "" && (cfg.Engine == "" || cfg.Engine == "auto") {
		cfg.Engine = strings.ToLower(env.Engine)
	}
	if env.Timeout != "" && cfg.Timeout == "" {
		cfg.Timeout = env.Timeout
	}
	if env.Style != "" && cfg.Style.Name == "" {
		cfg.Style.Name = env.Style
	}
	if env.InputDir != "" && cfg.Input.DefaultDir == "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.OutputDir != "" && cfg.Output.DefaultDir == "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.Author != "" && cfg.Document.Author == "" {
		cfg.Document.Author = env.Author
	}
}
