package pipeline

import (
	"html"
	"strings"

	"github.com/alnah/go-docgen/internal/layout"
)

// RecordsToHTML renders flat records as a standalone HTML document for the
// chrome engine. Emphasized records become centered headings, others
// paragraphs, and blank records empty spacer paragraphs.
func RecordsToHTML(records []layout.Record, title string) string {
	var sb strings.Builder
	for _, r := range records {
		switch {
		case r.Content == "":
			sb.WriteString(`<p class="spacer"></p>`)
		case r.Emphasized:
			sb.WriteString(`<h2 class="emphasized">`)
			sb.WriteString(html.EscapeString(r.Content))
			sb.WriteString("</h2>")
		default:
			sb.WriteString("<p>")
			sb.WriteString(html.EscapeString(r.Content))
			sb.WriteString("</p>")
		}
		sb.WriteByte('\n')
	}
	return wrapDocument(title, sb.String())
}
