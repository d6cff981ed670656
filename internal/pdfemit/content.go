package pdfemit

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	"golang.org/x/text/encoding/charmap"

	"github.com/alnah/go-docgen/internal/layout"
)

// Color is an RGB colour with components in [0, 1].
type Color struct {
	R, G, B float64
}

// contentStream renders the drawing operators of one page. Each line gets
// its own text object so that Td positions are absolute.
func contentStream(page layout.Page, opts Options) []byte {
	var buf bytes.Buffer

	if opts.Background != nil {
		fmt.Fprintf(&buf, "%s rg 0 0 %s %s re f\n",
			opts.Background.operands(), formatNumber(opts.width()), formatNumber(opts.height()))
	}

	for _, cmd := range page.Commands {
		buf.WriteString("BT\n")
		if opts.Foreground != nil {
			fmt.Fprintf(&buf, "%s rg\n", opts.Foreground.operands())
		}
		fmt.Fprintf(&buf, "/%s %s Tf %.0f %.0f Td ", cmd.Font, formatNumber(cmd.Size), cmd.X, cmd.Y)
		buf.Write(literalString(cmd.Text))
		buf.WriteString(" Tj\nET\n")
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n"))
}

// literalString encodes s as a PDF literal string in WinAnsiEncoding.
// Runes outside Windows-1252 become '?'. Backslash and both parentheses are
// escaped since they delimit the string.
func literalString(s string) []byte {
	out := make([]byte, 0, len(s)+2)
	out = append(out, '(')
	for _, r := range s {
		b, ok := charmap.Windows1252.EncodeRune(r)
		if !ok {
			b = '?'
		}
		switch b {
		case '\\', '(', ')':
			out = append(out, '\\', b)
		case '\r':
			out = append(out, '\\', 'r')
		case '\n':
			out = append(out, '\\', 'n')
		default:
			out = append(out, b)
		}
	}
	return append(out, ')')
}

func (c Color) operands() string {
	return formatNumber(clamp01(c.R)) + " " + formatNumber(clamp01(c.G)) + " " + formatNumber(clamp01(c.B))
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// formatNumber writes v with at most three decimals and no trailing zeros.
func formatNumber(v float64) string {
	v = math.Round(v*1000) / 1000
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
