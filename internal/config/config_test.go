package config

// Notes:
// - Name lookup tests use t.Chdir and t.Setenv("XDG_CONFIG_HOME") and cannot
//   run in parallel. The user config directory lookup is only exercised on
//   platforms where os.UserConfigDir honours XDG_CONFIG_HOME.

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return path
}

// ---------------------------------------------------------------------------
// TestDefaultConfig - Defaults
// ---------------------------------------------------------------------------

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if cfg.Engine != "auto" {
		t.Errorf("Engine = %q, want auto", cfg.Engine)
	}
	if cfg.Timeout != "" || cfg.TimeoutDuration() != 0 {
		t.Errorf("Timeout = %q, want unset", cfg.Timeout)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}

// ---------------------------------------------------------------------------
// TestConfig_Validate - Field checks
// ---------------------------------------------------------------------------

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{
			name: "fully populated",
			cfg: Config{
				Engine:   "native",
				Timeout:  "45s",
				Theme:    ThemeConfig{Background: "#3B3B3B", Text: "#fff"},
				Document: DocumentConfig{Title: "Weekly", Author: "Ops", Producer: "docgen"},
			},
		},
		{
			name: "engine case-insensitive",
			cfg:  Config{Engine: "Chrome"},
		},
		{
			name:    "unknown engine",
			cfg:     Config{Engine: "latex"},
			wantErr: ErrInvalidValue,
		},
		{
			name:    "unparsable timeout",
			cfg:     Config{Timeout: "soon"},
			wantErr: ErrInvalidValue,
		},
		{
			name:    "negative timeout",
			cfg:     Config{Timeout: "-5s"},
			wantErr: ErrInvalidValue,
		},
		{
			name:    "colour without hash",
			cfg:     Config{Theme: ThemeConfig{Background: "3B3B3B"}},
			wantErr: ErrInvalidValue,
		},
		{
			name:    "colour with bad digits",
			cfg:     Config{Theme: ThemeConfig{Text: "#GGGGGG"}},
			wantErr: ErrInvalidValue,
		},
		{
			name:    "colour too long",
			cfg:     Config{Theme: ThemeConfig{Text: "#3B3B3B00"}},
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "title too long",
			cfg:     Config{Document: DocumentConfig{Title: strings.Repeat("t", MaxTitleLength+1)}},
			wantErr: ErrFieldTooLong,
		},
		{
			name: "title at limit",
			cfg:  Config{Document: DocumentConfig{Title: strings.Repeat("t", MaxTitleLength)}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_TimeoutDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		timeout string
		want    time.Duration
	}{
		{"", 0},
		{"90s", 90 * time.Second},
		{"2m", 2 * time.Minute},
		{"bogus", 0},
	}

	for _, tt := range tests {
		t.Run(tt.timeout, func(t *testing.T) {
			t.Parallel()

			cfg := Config{Timeout: tt.timeout}
			if got := cfg.TimeoutDuration(); got != tt.want {
				t.Errorf("TimeoutDuration() = %v, want %v", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestLoadConfig - File path loading
// ---------------------------------------------------------------------------

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("empty name", func(t *testing.T) {
		t.Parallel()

		if _, err := LoadConfig(""); !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("full document", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, t.TempDir(), "report.yaml", `input:
  defaultDir: "./reports"
output:
  defaultDir: "./pdf"
engine: NATIVE
timeout: 1m
theme:
  background: "#000000"
  text: "#ffffff"
style:
  name: brand
  dir: ./styles
document:
  title: "Weekly Status"
  author: "Ops"
  producer: "docgen"
`)

		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}

		want := Config{
			Input:    InputConfig{DefaultDir: "./reports"},
			Output:   OutputConfig{DefaultDir: "./pdf"},
			Engine:   "native",
			Timeout:  "1m",
			Theme:    ThemeConfig{Background: "#000000", Text: "#ffffff"},
			Style:    StyleConfig{Name: "brand", Dir: "./styles"},
			Document: DocumentConfig{Title: "Weekly Status", Author: "Ops", Producer: "docgen"},
		}
		if *cfg != want {
			t.Errorf("LoadConfig() = %+v, want %+v", *cfg, want)
		}
		if cfg.TimeoutDuration() != time.Minute {
			t.Errorf("TimeoutDuration() = %v, want 1m", cfg.TimeoutDuration())
		}
	})

	t.Run("engine defaults to auto", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, t.TempDir(), "c.yaml", "document:\n  title: \"x\"\n")
		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Engine != "auto" {
			t.Errorf("Engine = %q, want auto", cfg.Engine)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("syntax error", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, t.TempDir(), "bad.yaml", "engine: [unclosed")
		if _, err := LoadConfig(path); !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, t.TempDir(), "unknown.yaml", "engine: auto\nwatermark: true\n")
		if _, err := LoadConfig(path); !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("invalid value surfaces validation error", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, t.TempDir(), "engine.yaml", "engine: latex\n")
		if _, err := LoadConfig(path); !errors.Is(err, ErrInvalidValue) {
			t.Errorf("error = %v, want ErrInvalidValue", err)
		}
	})

	t.Run("unreadable file is not reported as missing", func(t *testing.T) {
		t.Parallel()

		if runtime.GOOS == "windows" || os.Geteuid() == 0 {
			t.Skip("permission bits not enforced")
		}
		path := writeConfig(t, t.TempDir(), "locked.yaml", "engine: auto\n")
		if err := os.Chmod(path, 0o000); err != nil {
			t.Fatalf("setup chmod: %v", err)
		}
		t.Cleanup(func() { _ = os.Chmod(path, 0o600) })

		_, err := LoadConfig(path)
		if err == nil || errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want a read error", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestLoadConfig_ByName - Search path resolution
// ---------------------------------------------------------------------------

func TestLoadConfig_ByName(t *testing.T) {
	t.Run("working directory wins", func(t *testing.T) {
		work := t.TempDir()
		xdg := t.TempDir()
		t.Chdir(work)
		t.Setenv("XDG_CONFIG_HOME", xdg)

		writeConfig(t, work, "team.yml", "engine: chrome\n")
		writeConfig(t, xdg, filepath.Join("go-docgen", "team.yaml"), "engine: native\n")

		cfg, err := LoadConfig("team")
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Engine != "chrome" {
			t.Errorf("Engine = %q, want chrome from the working directory", cfg.Engine)
		}
	})

	t.Run("user config directory", func(t *testing.T) {
		if runtime.GOOS == "windows" || runtime.GOOS == "darwin" || runtime.GOOS == "plan9" {
			t.Skip("os.UserConfigDir ignores XDG_CONFIG_HOME here")
		}
		t.Chdir(t.TempDir())
		xdg := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", xdg)

		writeConfig(t, xdg, filepath.Join("go-docgen", "team.yaml"), "engine: native\n")

		cfg, err := LoadConfig("team")
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Engine != "native" {
			t.Errorf("Engine = %q, want native", cfg.Engine)
		}
	})

	t.Run("not found lists searched paths", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())

		_, err := LoadConfig("absent")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("error = %v, want ErrConfigNotFound", err)
		}
		for _, p := range []string{"absent.yaml", "absent.yml"} {
			if !strings.Contains(err.Error(), p) {
				t.Errorf("error %q should mention %s", err, p)
			}
		}
	})
}
