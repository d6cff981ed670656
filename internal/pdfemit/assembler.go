package pdfemit

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/alnah/go-docgen/internal/layout"
)

// header is the version line followed by a comment of high-bit bytes that
// marks the file as binary for transfer tools.
const header = "%PDF-1.4\n%\xE2\xE3\xCF\xD3\n"

// Options controls page size, colours and document metadata.
type Options struct {
	// Width and Height give the media box in points; zero means US Letter.
	Width  float64
	Height float64

	// Background fills each page before text is drawn. Nil leaves pages white.
	Background *Color
	// Foreground sets the text colour. Nil keeps the reader default (black).
	Foreground *Color

	// Title, Author, Producer and CreationDate go into the document
	// information dictionary, which is only written when one of the
	// strings is set.
	Title        string
	Author       string
	Producer     string
	CreationDate time.Time
}

func (o Options) width() float64 {
	if o.Width > 0 {
		return o.Width
	}
	return layout.DefaultPageWidth
}

func (o Options) height() float64 {
	if o.Height > 0 {
		return o.Height
	}
	return layout.DefaultPageHeight
}

func (o Options) hasInfo() bool {
	return o.Title != "" || o.Author != "" || o.Producer != ""
}

// Assemble serializes pages into a complete PDF file. The output depends
// only on its arguments. Passing no pages is a programming error and
// panics: Compose always returns at least one.
func Assemble(pages []layout.Page, opts Options) []byte {
	if len(pages) == 0 {
		panic("pdfemit: Assemble called with no pages")
	}

	p := allocate(len(pages), opts.hasInfo())
	w := newObjectWriter(p.size)
	w.buf.WriteString(header)

	w.object(p.catalog, []byte(fmt.Sprintf("<< /Type /Catalog /Pages %s >>", ref(p.pageTree))))
	w.object(p.pageTree, pageTree(p))

	for _, f := range p.fontObjects() {
		w.object(f.id, []byte(fmt.Sprintf(
			"<< /Type /Font /Subtype /Type1 /BaseFont /%s /Encoding /WinAnsiEncoding >>", f.baseFont)))
	}

	resources := fontResources(p)
	mediaBox := fmt.Sprintf("[0 0 %s %s]", formatNumber(opts.width()), formatNumber(opts.height()))
	for i, page := range pages {
		ids := p.pages[i]
		w.stream(ids.content, contentStream(page, opts))
		w.object(ids.page, []byte(fmt.Sprintf(
			"<< /Type /Page /Parent %s /MediaBox %s /Contents %s /Resources << /Font %s >> >>",
			ref(p.pageTree), mediaBox, ref(ids.content), resources)))
	}

	trailer := fmt.Sprintf("/Size %d /Root %s", p.size, ref(p.catalog))
	if p.info != 0 {
		w.object(p.info, infoDict(opts))
		trailer += " /Info " + ref(p.info)
	}

	w.xref(trailer)
	return w.bytes()
}

func pageTree(p plan) []byte {
	kids := make([]string, len(p.pages))
	for i, ids := range p.pages {
		kids[i] = ref(ids.page)
	}
	return []byte(fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(p.pages)))
}

func fontResources(p plan) string {
	parts := make([]string, 0, 2)
	for _, f := range p.fontObjects() {
		parts = append(parts, fmt.Sprintf("/%s %s", f.ref, ref(f.id)))
	}
	return "<< " + strings.Join(parts, " ") + " >>"
}

func infoDict(opts Options) []byte {
	var buf bytes.Buffer
	buf.WriteString("<<")
	if opts.Title != "" {
		buf.WriteString(" /Title ")
		buf.Write(literalString(opts.Title))
	}
	if opts.Author != "" {
		buf.WriteString(" /Author ")
		buf.Write(literalString(opts.Author))
	}
	if opts.Producer != "" {
		buf.WriteString(" /Producer ")
		buf.Write(literalString(opts.Producer))
	}
	if !opts.CreationDate.IsZero() {
		buf.WriteString(" /CreationDate ")
		buf.Write(literalString("D:" + opts.CreationDate.UTC().Format("20060102150405") + "Z"))
	}
	buf.WriteString(" >>")
	return buf.Bytes()
}

func ref(id int) string {
	return fmt.Sprintf("%d 0 R", id)
}
