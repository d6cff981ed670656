package docgen

import (
	"fmt"

	"github.com/alnah/go-docgen/internal/layout"
)

// buildThemeCSS exposes the theme colours as the custom properties read by
// the built-in stylesheets. Colours are validated before this is called.
func buildThemeCSS(t Theme) string {
	return fmt.Sprintf(`
/* Theme */
:root {
  --docgen-background: %s;
  --docgen-text: %s;
}
`, t.Background, t.Text)
}

// buildPageCSS sizes the printed page like the native geometry so both
// engines paginate on the same sheet.
func buildPageCSS(g layout.Geometry) string {
	return fmt.Sprintf(`
/* Page */
@page {
  size: %gin %gin;
  margin: %gin;
}
`, g.Width/pointsPerInch, g.Height/pointsPerInch, g.Margin/pointsPerInch)
}
