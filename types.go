package docgen

import (
	"fmt"
	"strings"
	"time"

	"github.com/alnah/go-docgen/internal/layout"
)

// TextRecord is one logical line of a flattened document. Emphasized
// records are headings; a record with empty Content is vertical space.
type TextRecord struct {
	Content    string
	Emphasized bool
}

// Input contains conversion parameters. Exactly one of Markdown and
// Records must be set.
type Input struct {
	Markdown string       // Markdown with optional YAML front matter
	Records  []TextRecord // Pre-flattened document
	Title    string       // Overrides the front matter title
	Author   string       // Overrides the front matter author
}

// ConvertResult is the output of Convert.
type ConvertResult struct {
	PDF    []byte
	HTML   []byte // Page printed by the chrome engine; nil for native output
	Engine Engine // Engine that produced PDF
	Pages  int    // Page count reported by the native engine; zero for chrome
	// Fallback is the chrome engine error that made EngineAuto switch to
	// the native engine, nil otherwise.
	Fallback error
}

// Engine selects the PDF backend.
type Engine string

// Supported engines.
const (
	EngineAuto   Engine = "auto"
	EngineChrome Engine = "chrome"
	EngineNative Engine = "native"
)

// Engines returns the supported engine names in display order.
func Engines() []string {
	return []string{string(EngineAuto), string(EngineChrome), string(EngineNative)}
}

// ParseEngine maps a case-insensitive name to an Engine. The empty string
// selects EngineAuto.
func ParseEngine(s string) (Engine, error) {
	switch e := Engine(strings.ToLower(strings.TrimSpace(s))); e {
	case "":
		return EngineAuto, nil
	case EngineAuto, EngineChrome, EngineNative:
		return e, nil
	default:
		return "", fmt.Errorf("%w: %q (must be one of %s)", ErrInvalidEngine, s, strings.Join(Engines(), ", "))
	}
}

// Option configures a Converter.
type Option func(*Converter)

type converterConfig struct {
	timeout  time.Duration
	engine   Engine
	theme    *Theme
	producer string
	style    string
	styleDir string
	geometry layout.Geometry
	now      func() time.Time
}

const (
	defaultTimeout  = 30 * time.Second
	defaultProducer = "go-docgen"
)

// WithTimeout bounds browser page loads. Panics if d <= 0.
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("docgen: WithTimeout duration must be positive")
	}
	return func(c *Converter) {
		c.cfg.timeout = d
	}
}

// WithEngine selects the backend. NewConverter rejects unknown engines.
func WithEngine(e Engine) Option {
	return func(c *Converter) {
		c.cfg.engine = e
	}
}

// WithTheme sets page colours for both engines. Empty fields keep the
// DefaultTheme values; nil restores the default.
func WithTheme(t *Theme) Option {
	return func(c *Converter) {
		c.cfg.theme = t
	}
}

// WithProducer sets the /Producer entry of native output.
func WithProducer(producer string) Option {
	return func(c *Converter) {
		c.cfg.producer = producer
	}
}

// WithStyle selects the chrome engine stylesheet by name.
func WithStyle(name string) Option {
	return func(c *Converter) {
		c.cfg.style = name
	}
}

// WithStyleDir adds a directory of custom stylesheets, laid out as
// {dir}/styles/{name}.css, in front of the built-in ones.
func WithStyleDir(dir string) Option {
	return func(c *Converter) {
		c.cfg.styleDir = dir
	}
}
