package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/alnah/go-docgen/internal/yamlutil"
)

// ErrFrontMatter indicates YAML front matter that could not be parsed.
var ErrFrontMatter = errors.New("invalid front matter")

// Highlight placeholders use Unicode Private Use Area characters.
// They pass through Goldmark unchanged and are turned into <mark> tags
// after HTML generation, or dropped when flattening to records.
const (
	MarkStartPlaceholder = "\uE000" // U+E000: Private Use Area start
	MarkEndPlaceholder   = "\uE001" // U+E001: Private Use Area end
)

var (
	crlfOrCR           = regexp.MustCompile(`\r\n?`)
	multipleBlankLines = regexp.MustCompile(`\n{3,}`)
	highlightPattern   = regexp.MustCompile(`==(.*?)==`)
)

// MarkdownPreprocessor defines the contract for markdown preprocessing.
type MarkdownPreprocessor interface {
	PreprocessMarkdown(ctx context.Context, content string) string
}

// CommonMarkPreprocessor applies transformations before CommonMark parsing.
type CommonMarkPreprocessor struct{}

// PreprocessMarkdown normalizes line endings, marks highlights and limits
// blank lines to two in a row.
func (p *CommonMarkPreprocessor) PreprocessMarkdown(ctx context.Context, content string) string {
	if ctx.Err() != nil {
		return content
	}

	content = crlfOrCR.ReplaceAllString(content, "\n")
	content = highlightPattern.ReplaceAllString(content, MarkStartPlaceholder+"$1"+MarkEndPlaceholder)
	content = multipleBlankLines.ReplaceAllString(content, "\n\n")
	return content
}

// ConvertMarkPlaceholders converts placeholder markers to <mark> tags.
func ConvertMarkPlaceholders(content string) string {
	return strings.ReplaceAll(
		strings.ReplaceAll(content, MarkStartPlaceholder, "<mark>"),
		MarkEndPlaceholder, "</mark>",
	)
}

// stripMarkPlaceholders removes highlight markers from plain text.
func stripMarkPlaceholders(content string) string {
	return strings.NewReplacer(MarkStartPlaceholder, "", MarkEndPlaceholder, "").Replace(content)
}

// FrontMatter holds the document metadata a report may declare in a
// leading YAML block delimited by "---" lines.
type FrontMatter struct {
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
}

// SplitFrontMatter separates a leading YAML front matter block from the
// Markdown body. Content without front matter is returned unchanged with a
// zero FrontMatter. Unknown keys are ignored so report templates can carry
// their own fields.
func SplitFrontMatter(content string) (FrontMatter, string, error) {
	var fm FrontMatter

	normalized := crlfOrCR.ReplaceAllString(content, "\n")
	if !strings.HasPrefix(normalized, "---\n") {
		return fm, content, nil
	}

	rest := normalized[len("---\n"):]
	end := strings.Index(rest, "\n---")
	if end < 0 {
		return fm, content, nil
	}
	block := rest[:end]
	body := rest[end+len("\n---"):]
	if nl := strings.IndexByte(body, '\n'); nl >= 0 {
		// Anything on the closing line after the dashes is discarded.
		body = body[nl+1:]
	} else {
		body = ""
	}

	if len(bytes.TrimSpace([]byte(block))) > 0 {
		if err := yamlutil.Unmarshal([]byte(block), &fm); err != nil {
			return FrontMatter{}, content, fmt.Errorf("%w: %v", ErrFrontMatter, err)
		}
	}

	return fm, body, nil
}
