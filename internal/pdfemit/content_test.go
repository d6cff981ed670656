package pdfemit

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alnah/go-docgen/internal/layout"
)

func TestLiteralString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want []byte
	}{
		{"plain ascii", "Hello", []byte("(Hello)")},
		{"empty", "", []byte("()")},
		{"backslash", `a\b`, []byte(`(a\\b)`)},
		{"parentheses", "f(x) = (y)", []byte(`(f\(x\) = \(y\))`)},
		{"all three", `\()`, []byte(`(\\\(\))`)},
		{"latin-1 accent", "café", []byte("(caf\xe9)")},
		{"euro sign maps to 0x80", "€5", []byte("(\x805)")},
		{"curly quotes", "“q”", []byte("(\x93q\x94)")},
		{"unencodable rune replaced", "漢字", []byte("(??)")},
		{"newline escaped", "a\nb", []byte(`(a\nb)`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := literalString(tt.in)
			if !bytes.Equal(got, tt.want) {
				t.Errorf("literalString(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{612, "612"},
		{11, "11"},
		{0.231, "0.231"},
		{0.23149, "0.231"},
		{1.5, "1.5"},
		{-0.0001, "0"},
	}

	for _, tt := range tests {
		if got := formatNumber(tt.in); got != tt.want {
			t.Errorf("formatNumber(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestContentStream(t *testing.T) {
	t.Parallel()

	page := layout.Page{Commands: []layout.DrawCommand{
		{Font: layout.Bold, Size: 16, X: 286, Y: 720, Text: "Title"},
		{Font: layout.Regular, Size: 11, X: 72, Y: 685.6, Text: "(x)"},
	}}

	t.Run("without colours", func(t *testing.T) {
		t.Parallel()

		got := string(contentStream(page, Options{}))
		want := "BT\n/F2 16 Tf 286 720 Td (Title) Tj\nET\n" +
			"BT\n/F1 11 Tf 72 686 Td (\\(x\\)) Tj\nET"
		if got != want {
			t.Errorf("contentStream() =\n%s\nwant\n%s", got, want)
		}
	})

	t.Run("with background and text colour", func(t *testing.T) {
		t.Parallel()

		opts := Options{
			Background: &Color{R: 0.231, G: 0.231, B: 0.231},
			Foreground: &Color{R: 0.91, G: 0.91, B: 0.91},
		}
		got := string(contentStream(page, opts))

		if !strings.HasPrefix(got, "0.231 0.231 0.231 rg 0 0 612 792 re f\n") {
			t.Errorf("content stream should start with a page fill, got:\n%s", got)
		}
		if n := strings.Count(got, "0.91 0.91 0.91 rg\n"); n != 2 {
			t.Errorf("text colour set %d times, want once per text object (2)", n)
		}
	})

	t.Run("empty page with background", func(t *testing.T) {
		t.Parallel()

		got := string(contentStream(layout.Page{}, Options{Background: &Color{}}))
		if got != "0 0 0 rg 0 0 612 792 re f" {
			t.Errorf("contentStream() = %q", got)
		}
	})

	t.Run("empty page without background", func(t *testing.T) {
		t.Parallel()

		if got := contentStream(layout.Page{}, Options{}); len(got) != 0 {
			t.Errorf("contentStream() = %q, want empty", got)
		}
	})
}

func TestAllocate(t *testing.T) {
	t.Parallel()

	p := allocate(3, false)
	if p.catalog != 1 || p.pageTree != 2 || p.regular != 3 || p.bold != 4 {
		t.Errorf("fixed objects = %d %d %d %d, want 1 2 3 4", p.catalog, p.pageTree, p.regular, p.bold)
	}
	for i, ids := range p.pages {
		if ids.content != 5+2*i || ids.page != 6+2*i {
			t.Errorf("page %d = (%d, %d), want (%d, %d)", i, ids.content, ids.page, 5+2*i, 6+2*i)
		}
	}
	if p.info != 0 || p.size != 11 {
		t.Errorf("info = %d size = %d, want 0 and 11", p.info, p.size)
	}

	p = allocate(1, true)
	if p.info != 7 || p.size != 8 {
		t.Errorf("with info: info = %d size = %d, want 7 and 8", p.info, p.size)
	}
}
