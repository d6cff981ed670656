package pipeline

import (
	"context"
	"strings"
)

// CSSInjector places the report stylesheet into a rendered document.
type CSSInjector interface {
	InjectCSS(ctx context.Context, htmlContent, cssContent string) string
}

// CSSInjection writes the stylesheet as a single inline <style> element.
type CSSInjection struct{}

// InjectCSS returns htmlContent with cssContent inlined. The style element
// goes at the end of <head>, at the start of <body> for documents without
// a head, and in front of bare fragments. A cancelled context or empty CSS
// leaves the document untouched.
func (s *CSSInjection) InjectCSS(ctx context.Context, htmlContent, cssContent string) string {
	if cssContent == "" || ctx.Err() != nil {
		return htmlContent
	}

	at := styleInsertionPoint(htmlContent)
	var sb strings.Builder
	sb.Grow(len(htmlContent) + len(cssContent) + len("<style></style>"))
	sb.WriteString(htmlContent[:at])
	sb.WriteString("<style>")
	sb.WriteString(sanitizeCSS(cssContent))
	sb.WriteString("</style>")
	sb.WriteString(htmlContent[at:])
	return sb.String()
}

// styleInsertionPoint finds the byte offset for the style element. Tag
// matching is case-insensitive; a <body> tag missing its '>' counts as
// absent.
func styleInsertionPoint(doc string) int {
	lower := strings.ToLower(doc)
	if i := strings.Index(lower, "</head>"); i >= 0 {
		return i
	}
	if i := strings.Index(lower, "<body"); i >= 0 {
		if end := strings.IndexByte(doc[i:], '>'); end >= 0 {
			return i + end + 1
		}
	}
	return 0
}

// sanitizeCSS escapes "</" so theme values cannot close the style block.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
