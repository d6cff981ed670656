// Package pdfemit assembles PDF 1.4 files from laid-out pages without any
// PDF writer library.
//
// Object numbers are allocated up front in a fixed order: catalog, page
// tree, the two standard fonts, then one content stream and one page object
// per page, and finally an optional document information dictionary. The
// catalog and page tree are written first and refer forward to page objects
// by number. Every object's byte offset is captured as it is written, and
// the cross-reference table and trailer are built from those offsets.
//
// Verify reads the cross-reference table back and checks that every entry
// points at its object and that no reference dangles.
package pdfemit
