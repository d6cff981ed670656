//go:build integration

package docgen

// Notes:
// - Requires Chrome or network access for rod to download Chromium.
// - Each test owns its converter so a browser crash stays local.

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alnah/go-docgen/internal/layout"
)

const testTimeout = 30 * time.Second

func assertValidPDF(t *testing.T, data []byte) {
	t.Helper()

	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("data does not have PDF magic bytes, got prefix: %q", data[:min(10, len(data))])
	}
	if len(data) < 100 {
		t.Errorf("PDF data suspiciously small: %d bytes", len(data))
	}
}

func TestRodConverter_ToPDF_Integration(t *testing.T) {
	t.Parallel()

	conv := newRodConverter(testTimeout)
	defer conv.Close()

	html := `<!DOCTYPE html><html><head><title>T</title></head><body><h1>Hello</h1></body></html>`
	data, err := conv.ToPDF(context.Background(), html, pdfOptionsFor(layout.DefaultGeometry()))
	if err != nil {
		t.Fatalf("ToPDF() error = %v", err)
	}
	assertValidPDF(t, data)
}

func TestConvert_ChromeEngine_Integration(t *testing.T) {
	t.Parallel()

	conv, err := NewConverter(WithEngine(EngineChrome), WithTimeout(testTimeout))
	if err != nil {
		t.Fatal(err)
	}
	defer conv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*testTimeout)
	defer cancel()

	result, err := conv.Convert(ctx, Input{
		Markdown: "---\ntitle: Integration\n---\n# Heading\n\n| a | b |\n|---|---|\n| 1 | 2 |\n\n```go\nfmt.Println(1)\n```\n",
	})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if result.Engine != EngineChrome {
		t.Errorf("Engine = %q, want chrome", result.Engine)
	}
	assertValidPDF(t, result.PDF)
}

func TestConvert_ChromeEngine_CanceledMidway_Integration(t *testing.T) {
	t.Parallel()

	conv, err := NewConverter(WithTimeout(testTimeout))
	if err != nil {
		t.Fatal(err)
	}
	defer conv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
	defer cancel()
	time.Sleep(5 * time.Millisecond)

	_, err = conv.Convert(ctx, Input{Records: []TextRecord{{Content: "x"}}})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Convert() error = %v, want context.DeadlineExceeded", err)
	}
}
