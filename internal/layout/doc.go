// Package layout turns flattened text records into fixed-size pages.
//
// Layout happens in two steps:
//   - Wrap splits a paragraph into lines no wider than a column count
//   - Compose walks the records top to bottom, wrapping each one and
//     breaking to a new page when the vertical cursor reaches the bottom
//     margin
//
// Widths are approximated in characters rather than measured from glyph
// metrics. The output is a list of pages holding absolute draw commands,
// ready for the PDF assembler in internal/pdfemit.
package layout
