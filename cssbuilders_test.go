package docgen

import (
	"strings"
	"testing"

	"github.com/alnah/go-docgen/internal/layout"
)

func TestBuildThemeCSS(t *testing.T) {
	t.Parallel()

	css := buildThemeCSS(Theme{Background: "#101010", Text: "#fafafa"})
	for _, want := range []string{"--docgen-background: #101010;", "--docgen-text: #fafafa;"} {
		if !strings.Contains(css, want) {
			t.Errorf("buildThemeCSS() missing %q in %q", want, css)
		}
	}
}

func TestBuildPageCSS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		g    layout.Geometry
		want []string
	}{
		{"letter", layout.DefaultGeometry(), []string{"size: 8.5in 11in;", "margin: 1in;"}},
		{"half-inch margins", layout.Geometry{Width: 576, Height: 720, Margin: 36}, []string{"size: 8in 10in;", "margin: 0.5in;"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			css := buildPageCSS(tt.g)
			for _, want := range tt.want {
				if !strings.Contains(css, want) {
					t.Errorf("buildPageCSS() missing %q in %q", want, css)
				}
			}
		})
	}
}
