package docgen

import (
	"context"
	"fmt"

	"github.com/alnah/go-docgen/internal/layout"
	"github.com/alnah/go-docgen/internal/pdfemit"
)

// renderNative lays the document out and assembles the PDF without a
// browser.
func (c *Converter) renderNative(ctx context.Context, doc *document) (*ConvertResult, error) {
	records := doc.records
	if records == nil {
		var err error
		records, err = c.flattener.FlattenMarkdown(ctx, doc.markdown)
		if err != nil {
			return nil, err
		}
	}

	pages, err := layout.Compose(records, c.cfg.geometry)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLayout, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	bg, fg, err := c.theme.pdfColors()
	if err != nil {
		return nil, err
	}

	data := pdfemit.Assemble(pages, pdfemit.Options{
		Width:        c.cfg.geometry.Width,
		Height:       c.cfg.geometry.Height,
		Background:   bg,
		Foreground:   fg,
		Title:        doc.title,
		Author:       doc.author,
		Producer:     c.cfg.producer,
		CreationDate: c.cfg.now(),
	})

	return &ConvertResult{
		PDF:    data,
		Engine: EngineNative,
		Pages:  len(pages),
	}, nil
}

// RenderRecords lays records out and assembles them into PDF bytes with
// the given theme, without a Converter or a browser. A nil theme uses
// DefaultTheme.
func RenderRecords(records []TextRecord, theme *Theme) ([]byte, error) {
	if err := theme.Validate(); err != nil {
		return nil, err
	}
	bg, fg, err := theme.resolved().pdfColors()
	if err != nil {
		return nil, err
	}

	recs := make([]layout.Record, len(records))
	for i, r := range records {
		recs[i] = layout.Record(r)
	}

	pages, err := layout.Compose(recs, layout.DefaultGeometry())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLayout, err)
	}
	return pdfemit.Assemble(pages, pdfemit.Options{Background: bg, Foreground: fg}), nil
}
