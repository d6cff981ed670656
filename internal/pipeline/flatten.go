package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/alnah/go-docgen/internal/layout"
)

// cellSeparator joins table cells on one line.
const cellSeparator = " | "

// Flattener turns Markdown into layout records for the native engine.
type Flattener struct {
	md goldmark.Markdown
}

// NewFlattener creates a Flattener that understands GFM tables, task lists
// and strikethrough.
func NewFlattener() *Flattener {
	return &Flattener{md: goldmark.New(goldmark.WithExtensions(extension.GFM))}
}

// FlattenMarkdown walks the document in display order and emits one record
// per heading, paragraph, list item, code line and table row. Headings are
// emphasized. Blocks are separated by a single blank record; leading and
// trailing blanks are dropped.
func (f *Flattener) FlattenMarkdown(ctx context.Context, content string) ([]layout.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	src := []byte(content)
	doc := f.md.Parser().Parse(text.NewReader(src))

	w := &recordWriter{src: src}
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		w.block(n, "", "")
		w.blank()
	}
	return w.result(), nil
}

// recordWriter accumulates records while walking block nodes.
type recordWriter struct {
	src     []byte
	records []layout.Record
}

func (w *recordWriter) emit(content string, emphasized bool) {
	w.records = append(w.records, layout.Record{Content: content, Emphasized: emphasized})
}

// blank appends a spacer unless the previous record already is one.
func (w *recordWriter) blank() {
	if len(w.records) == 0 || w.records[len(w.records)-1].Content == "" {
		return
	}
	w.emit("", false)
}

func (w *recordWriter) result() []layout.Record {
	records := w.records
	for len(records) > 0 && records[len(records)-1].Content == "" {
		records = records[:len(records)-1]
	}
	return records
}

// block emits records for n. first prefixes the first line, rest prefixes
// the following ones, so list markers appear once and continuation lines
// stay indented.
func (w *recordWriter) block(n ast.Node, first, rest string) {
	switch n := n.(type) {
	case *ast.Heading:
		w.emit(first+w.inline(n), true)

	case *ast.Paragraph, *ast.TextBlock:
		w.emit(first+w.inline(n), false)

	case *ast.FencedCodeBlock, *ast.CodeBlock:
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			line := strings.TrimRight(string(seg.Value(w.src)), "\n")
			prefix := rest
			if i == 0 {
				prefix = first
			}
			w.emit(prefix+line, false)
		}

	case *ast.Blockquote:
		w.children(n, first+"> ", rest+"> ", true)

	case *ast.List:
		index := n.Start
		lead := first
		for item := n.FirstChild(); item != nil; item = item.NextSibling() {
			if !n.IsTight && item != n.FirstChild() {
				w.blank()
			}
			marker := "- "
			if n.IsOrdered() {
				marker = fmt.Sprintf("%d. ", index)
				index++
			}
			w.children(item, lead+marker, rest+strings.Repeat(" ", len(marker)), !n.IsTight)
			lead = rest
		}

	case *ast.ThematicBreak:
		w.blank()

	case *east.Table:
		for row := n.FirstChild(); row != nil; row = row.NextSibling() {
			cells := make([]string, 0, row.ChildCount())
			for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
				cells = append(cells, w.inline(cell))
			}
			w.emit(first+strings.Join(cells, cellSeparator), false)
		}

	case *ast.HTMLBlock:
		// Raw HTML has no plain-text rendering.

	default:
		w.children(n, first, rest, false)
	}
}

// children emits every child block of n, optionally separated by blanks.
func (w *recordWriter) children(n ast.Node, first, rest string, spaced bool) {
	prefix := first
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if spaced && c != n.FirstChild() {
			w.blank()
		}
		w.block(c, prefix, rest)
		prefix = rest
	}
}

// inline flattens the inline content of n to plain text.
func (w *recordWriter) inline(n ast.Node) string {
	var sb strings.Builder
	_ = ast.Walk(n, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := node.(type) {
		case *ast.Text:
			sb.Write(node.Segment.Value(w.src))
			if node.SoftLineBreak() || node.HardLineBreak() {
				sb.WriteByte(' ')
			}
		case *ast.String:
			sb.Write(node.Value)
		case *ast.AutoLink:
			sb.Write(node.Label(w.src))
			return ast.WalkSkipChildren, nil
		case *east.TaskCheckBox:
			if node.IsChecked {
				sb.WriteString("[x] ")
			} else {
				sb.WriteString("[ ] ")
			}
		case *ast.RawHTML:
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return strings.Join(strings.Fields(stripMarkPlaceholders(sb.String())), " ")
}
