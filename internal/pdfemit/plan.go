package pdfemit

import "github.com/alnah/go-docgen/internal/layout"

// pagePair holds the object numbers for one page.
type pagePair struct {
	content int
	page    int
}

// plan is the object numbering of one file.
type plan struct {
	catalog  int
	pageTree int
	regular  int
	bold     int
	pages    []pagePair
	info     int // 0 when the file has no information dictionary
	size     int // highest object number + 1
}

// allocate numbers every object of a file with pageCount pages. Numbers
// start at 1 and follow dependency order.
func allocate(pageCount int, withInfo bool) plan {
	next := 1
	alloc := func() int {
		n := next
		next++
		return n
	}

	p := plan{
		catalog:  alloc(),
		pageTree: alloc(),
		regular:  alloc(),
		bold:     alloc(),
		pages:    make([]pagePair, pageCount),
	}
	for i := range p.pages {
		p.pages[i].content = alloc()
		p.pages[i].page = alloc()
	}
	if withInfo {
		p.info = alloc()
	}
	p.size = next
	return p
}

// fontObjects lists the standard fonts in object number order.
func (p plan) fontObjects() []fontObject {
	return []fontObject{
		{ref: layout.Regular, id: p.regular, baseFont: "Helvetica"},
		{ref: layout.Bold, id: p.bold, baseFont: "Helvetica-Bold"},
	}
}

type fontObject struct {
	ref      layout.FontRef
	id       int
	baseFont string
}
