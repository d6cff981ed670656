package main

// Notes:
// - loadEnvConfig is fed a map-backed getenv, so tests stay parallel.
// - applyEnvConfig: env only fills empty config fields; engine also
//   replaces the "auto" default.

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alnah/go-docgen/internal/config"
)

func mapGetenv(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

// ---------------------------------------------------------------------------
// TestLoadEnvConfig - Variable parsing
// ---------------------------------------------------------------------------

func TestLoadEnvConfig(t *testing.T) {
	t.Parallel()

	got := loadEnvConfig(mapGetenv(map[string]string{
		"DOCGEN_CONFIG":     "work",
		"DOCGEN_ENGINE":     "native",
		"DOCGEN_TIMEOUT":    "1m",
		"DOCGEN_STYLE":      "plain",
		"DOCGEN_INPUT_DIR":  "in",
		"DOCGEN_OUTPUT_DIR": "out",
		"DOCGEN_AUTHOR":     "Ops",
		"DOCGEN_WORKERS":    "3",
	}))

	want := envConfig{
		ConfigPath: "work",
		Engine:     "native",
		Timeout:    "1m",
		Style:      "plain",
		InputDir:   "in",
		OutputDir:  "out",
		Author:     "Ops",
		Workers:    3,
	}
	if *got != want {
		t.Errorf("loadEnvConfig() = %+v, want %+v", *got, want)
	}
}

func TestLoadEnvConfig_Workers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value string
		want  int
	}{
		{"", 0},
		{"4", 4},
		{"0", 0},
		{"-2", 0},
		{"many", 0},
	}

	for _, tt := range tests {
		got := loadEnvConfig(mapGetenv(map[string]string{"DOCGEN_WORKERS": tt.value}))
		if got.Workers != tt.want {
			t.Errorf("DOCGEN_WORKERS=%q: Workers = %d, want %d", tt.value, got.Workers, tt.want)
		}
	}
}

// ---------------------------------------------------------------------------
// TestWarnUnknownEnvVars - Typo detection
// ---------------------------------------------------------------------------

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	warnUnknownEnvVars(&buf, []string{
		"HOME=/root",
		"DOCGEN_ENGINE=native",
		"DOCGEN_AUTOR=x",
		"DOCGEN_CONTAINER=1",
	})

	out := buf.String()
	if !strings.Contains(out, "DOCGEN_AUTOR") {
		t.Errorf("expected warning for DOCGEN_AUTOR, got %q", out)
	}
	if strings.Count(out, "warning:") != 1 {
		t.Errorf("expected exactly one warning, got %q", out)
	}
}

// ---------------------------------------------------------------------------
// TestApplyEnvConfig - Env fills gaps only
// ---------------------------------------------------------------------------

func TestApplyEnvConfig(t *testing.T) {
	t.Parallel()

	env := &envConfig{
		Engine:    "Chrome",
		Timeout:   "10s",
		Style:     "plain",
		InputDir:  "in",
		OutputDir: "out",
		Author:    "Env",
	}

	t.Run("empty config takes env", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		applyEnvConfig(env, cfg)

		if cfg.Engine != "chrome" || cfg.Timeout != "10s" || cfg.Style.Name != "plain" ||
			cfg.Input.DefaultDir != "in" || cfg.Output.DefaultDir != "out" || cfg.Document.Author != "Env" {
			t.Errorf("config = %+v", cfg)
		}
	})

	t.Run("config values kept", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Engine = "native"
		cfg.Timeout = "5s"
		cfg.Style.Name = "report"
		cfg.Input.DefaultDir = "docs"
		cfg.Output.DefaultDir = "build"
		cfg.Document.Author = "File"
		applyEnvConfig(env, cfg)

		if cfg.Engine != "native" || cfg.Timeout != "5s" || cfg.Style.Name != "report" ||
			cfg.Input.DefaultDir != "docs" || cfg.Output.DefaultDir != "build" || cfg.Document.Author != "File" {
			t.Errorf("config = %+v", cfg)
		}
	})
}
