// Package config loads the YAML configuration used by the docgen CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-docgen/internal/fileutil"
	"github.com/alnah/go-docgen/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxPathLength     = 4096
	MaxTitleLength    = 200
	MaxAuthorLength   = 100
	MaxProducerLength = 100
	MaxColorLength    = 7 // "#RRGGBB"

	MaxStyleNameLength = 64
)

// Engines accepted by the engine field, in display order.
var Engines = []string{"auto", "chrome", "native"}

// Config holds all configuration for document generation.
type Config struct {
	Input    InputConfig    `yaml:"input"`
	Output   OutputConfig   `yaml:"output"`
	Engine   string         `yaml:"engine"`  // auto, chrome or native (empty = auto)
	Timeout  string         `yaml:"timeout"` // Go duration, e.g. "30s" (empty = library default)
	Theme    ThemeConfig    `yaml:"theme"`
	Style    StyleConfig    `yaml:"style"`
	Document DocumentConfig `yaml:"document"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // empty = must specify
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // empty = next to the source
}

// ThemeConfig holds the page colours. Empty fields keep the default theme.
type ThemeConfig struct {
	Background string `yaml:"background"`
	Text       string `yaml:"text"`
}

// StyleConfig selects the chrome engine stylesheet. Dir, when set, holds
// custom styles under styles/{name}.css that take precedence over the
// built-in ones.
type StyleConfig struct {
	Name string `yaml:"name"` // empty = built-in default
	Dir  string `yaml:"dir"`
}

// DocumentConfig holds metadata written to the PDF Info dictionary.
type DocumentConfig struct {
	Title    string `yaml:"title"` // empty = front matter title
	Author   string `yaml:"author"`
	Producer string `yaml:"producer"`
}

// DefaultConfig returns a configuration that selects every default.
func DefaultConfig() *Config {
	return &Config{Engine: "auto"}
}

// TimeoutDuration returns the parsed timeout, or zero when unset.
// Call Validate first; an unparsable value also yields zero.
func (c *Config) TimeoutDuration() time.Duration {
	if c.Timeout == "" {
		return 0
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0
	}
	return d
}

// Validate checks field lengths and enumerated values. LoadConfig calls it;
// callers building a Config by hand should too.
func (c *Config) Validate() error {
	lengths := []struct {
		field string
		value string
		max   int
	}{
		{"input.defaultDir", c.Input.DefaultDir, MaxPathLength},
		{"output.defaultDir", c.Output.DefaultDir, MaxPathLength},
		{"style.name", c.Style.Name, MaxStyleNameLength},
		{"style.dir", c.Style.Dir, MaxPathLength},
		{"document.title", c.Document.Title, MaxTitleLength},
		{"document.author", c.Document.Author, MaxAuthorLength},
		{"document.producer", c.Document.Producer, MaxProducerLength},
		{"theme.background", c.Theme.Background, MaxColorLength},
		{"theme.text", c.Theme.Text, MaxColorLength},
	}
	for _, l := range lengths {
		if err := validateFieldLength(l.field, l.value, l.max); err != nil {
			return err
		}
	}

	if c.Engine != "" && !isEngine(c.Engine) {
		return fmt.Errorf("%w: engine %q (must be one of %s)", ErrInvalidValue, c.Engine, strings.Join(Engines, ", "))
	}

	if c.Timeout != "" {
		d, err := time.ParseDuration(c.Timeout)
		if err != nil {
			return fmt.Errorf("%w: timeout %q: %v", ErrInvalidValue, c.Timeout, err)
		}
		if d <= 0 {
			return fmt.Errorf("%w: timeout must be positive, got %s", ErrInvalidValue, c.Timeout)
		}
	}

	for field, value := range map[string]string{
		"theme.background": c.Theme.Background,
		"theme.text":       c.Theme.Text,
	} {
		if value != "" && !isHexColor(value) {
			return fmt.Errorf("%w: %s %q (want #RGB or #RRGGBB)", ErrInvalidValue, field, value)
		}
	}

	return nil
}

func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

func isEngine(s string) bool {
	for _, e := range Engines {
		if strings.EqualFold(s, e) {
			return true
		}
	}
	return false
}

func isHexColor(s string) bool {
	if !strings.HasPrefix(s, "#") || (len(s) != 4 && len(s) != 7) {
		return false
	}
	for _, r := range s[1:] {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

// LoadConfig reads a config by file path or by name. A value containing a
// path separator is a path; otherwise the name is looked up as name.yaml
// then name.yml in the working directory, then in the user config
// directory under go-docgen. There is no silent fallback to defaults.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !strings.ContainsAny(nameOrPath, "/\\") {
		var err error
		if configPath, err = resolveConfigPath(nameOrPath); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	if cfg.Engine == "" {
		cfg.Engine = "auto"
	}
	cfg.Engine = strings.ToLower(cfg.Engine)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SearchPaths lists the candidate files for a config name in lookup order.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)
	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(dir, "go-docgen", name+ext))
		}
	}
	return paths
}

func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
