package pdfemit

import (
	"bytes"
	"fmt"
)

// objectWriter appends objects to an in-memory file and remembers where
// each one starts.
type objectWriter struct {
	buf     bytes.Buffer
	offsets []int64 // indexed by object number; 0 is the free-list head
}

func newObjectWriter(size int) *objectWriter {
	return &objectWriter{offsets: make([]int64, size)}
}

func (w *objectWriter) pos() int64 {
	return int64(w.buf.Len())
}

// object writes "id 0 obj", the body and "endobj".
func (w *objectWriter) object(id int, body []byte) {
	w.offsets[id] = w.pos()
	fmt.Fprintf(&w.buf, "%d 0 obj\n", id)
	w.buf.Write(body)
	w.buf.WriteString("\nendobj\n")
}

// stream writes a stream object whose /Length is the exact data length.
func (w *objectWriter) stream(id int, data []byte) {
	var body bytes.Buffer
	fmt.Fprintf(&body, "<< /Length %d >>\nstream\n", len(data))
	body.Write(data)
	body.WriteString("\nendstream")
	w.object(id, body.Bytes())
}

// xref writes the cross-reference section, trailer and end marker. The
// trailer dictionary entries are given without the enclosing brackets.
func (w *objectWriter) xref(trailer string) {
	start := w.pos()

	fmt.Fprintf(&w.buf, "xref\n0 %d\n", len(w.offsets))
	w.buf.WriteString("0000000000 65535 f \n")
	for _, off := range w.offsets[1:] {
		fmt.Fprintf(&w.buf, "%010d 00000 n \n", off)
	}

	fmt.Fprintf(&w.buf, "trailer\n<< %s >>\n", trailer)
	fmt.Fprintf(&w.buf, "startxref\n%d\n%%%%EOF\n", start)
}

func (w *objectWriter) bytes() []byte {
	return w.buf.Bytes()
}
