// Package pipeline prepares report content for the two rendering engines.
//
// Both engines share the same preprocessing:
//   - line ending normalization and blank line compression
//   - ==highlight== syntax
//   - YAML front matter (title, author) split from the body
//
// The chrome engine then needs a standalone HTML document:
//   - Markdown to HTML via Goldmark (GFM, footnotes, syntax highlighting)
//   - plain records to HTML when no Markdown source exists
//   - CSS injection
//
// The native engine needs flat text records instead. FlattenMarkdown walks
// Goldmark's syntax tree in display order and collapses every block into
// (text, emphasized) pairs, headings being the only emphasized ones.
//
// PDF generation itself lives in the root docgen package.
package pipeline
