package docgen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alnah/go-docgen/internal/pdfemit"
)

// Default theme colours: light text on a dark page.
const (
	DefaultBackground = "#3B3B3B"
	DefaultText       = "#E8E8E8"
)

// Theme holds page colours as hex strings, #RGB or #RRGGBB.
type Theme struct {
	Background string
	Text       string
}

// DefaultTheme returns the built-in colours.
func DefaultTheme() *Theme {
	return &Theme{Background: DefaultBackground, Text: DefaultText}
}

// Validate checks both colours. Empty fields are allowed and mean the
// default colour. A nil theme is valid.
func (t *Theme) Validate() error {
	if t == nil {
		return nil
	}
	if _, err := parseHexColor(t.Background); t.Background != "" && err != nil {
		return fmt.Errorf("background: %w", err)
	}
	if _, err := parseHexColor(t.Text); t.Text != "" && err != nil {
		return fmt.Errorf("text: %w", err)
	}
	return nil
}

// resolved returns a copy with empty fields filled from DefaultTheme.
func (t *Theme) resolved() Theme {
	out := *DefaultTheme()
	if t == nil {
		return out
	}
	if t.Background != "" {
		out.Background = t.Background
	}
	if t.Text != "" {
		out.Text = t.Text
	}
	return out
}

// pdfColors converts a resolved theme to content stream colours.
func (t Theme) pdfColors() (bg, fg *pdfemit.Color, err error) {
	b, err := parseHexColor(t.Background)
	if err != nil {
		return nil, nil, err
	}
	f, err := parseHexColor(t.Text)
	if err != nil {
		return nil, nil, err
	}
	return &b, &f, nil
}

func parseHexColor(s string) (pdfemit.Color, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || (len(hex) != 3 && len(hex) != 6) {
		return pdfemit.Color{}, fmt.Errorf("%w: %q (want #RGB or #RRGGBB)", ErrInvalidColor, s)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return pdfemit.Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return pdfemit.Color{
		R: float64(v>>16&0xFF) / 255,
		G: float64(v>>8&0xFF) / 255,
		B: float64(v&0xFF) / 255,
	}, nil
}
