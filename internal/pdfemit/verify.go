package pdfemit

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// ErrMalformed indicates a file whose cross-reference data does not match
// its objects.
var ErrMalformed = errors.New("malformed PDF")

// xrefEntryLen is the fixed width of one cross-reference entry, EOL included.
const xrefEntryLen = 20

// XRef is a parsed cross-reference section and trailer.
type XRef struct {
	// Offsets maps each in-use object number to its byte offset.
	Offsets map[int]int64
	// Size is the /Size trailer entry.
	Size int
	// Root is the object number of the catalog.
	Root int
	// Start is the byte offset of the "xref" keyword.
	Start int64
}

var (
	trailerSizeRe = regexp.MustCompile(`/Size (\d+)`)
	trailerRootRe = regexp.MustCompile(`/Root (\d+) 0 R`)
	referenceRe   = regexp.MustCompile(`(\d+) (\d+) R\b`)
)

// ReadXRef parses the classic cross-reference table that startxref points
// to. Cross-reference streams and incremental updates are not supported.
func ReadXRef(data []byte) (*XRef, error) {
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		return nil, fmt.Errorf("%w: missing header", ErrMalformed)
	}
	if !bytes.HasSuffix(bytes.TrimRight(data, "\r\n"), []byte("%%EOF")) {
		return nil, fmt.Errorf("%w: missing end marker", ErrMalformed)
	}

	i := bytes.LastIndex(data, []byte("startxref"))
	if i < 0 {
		return nil, fmt.Errorf("%w: missing startxref", ErrMalformed)
	}
	fields := bytes.Fields(data[i+len("startxref"):])
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty startxref", ErrMalformed)
	}
	start, err := strconv.ParseInt(string(fields[0]), 10, 64)
	if err != nil || start < 0 || start >= int64(len(data)) {
		return nil, fmt.Errorf("%w: bad startxref offset %q", ErrMalformed, fields[0])
	}

	rest := data[start:]
	if !bytes.HasPrefix(rest, []byte("xref\n")) {
		return nil, fmt.Errorf("%w: startxref %d does not point at xref", ErrMalformed, start)
	}
	rest = rest[len("xref\n"):]

	nl := bytes.IndexByte(rest, '\n')
	if nl < 0 {
		return nil, fmt.Errorf("%w: truncated xref header", ErrMalformed)
	}
	var first, count int
	if _, err := fmt.Sscanf(string(rest[:nl]), "%d %d", &first, &count); err != nil {
		return nil, fmt.Errorf("%w: xref subsection header: %v", ErrMalformed, err)
	}
	if first != 0 {
		return nil, fmt.Errorf("%w: xref subsection starts at %d", ErrMalformed, first)
	}
	rest = rest[nl+1:]
	if count < 0 {
		return nil, fmt.Errorf("%w: xref subsection count %d", ErrMalformed, count)
	}
	if count > len(rest)/xrefEntryLen {
		return nil, fmt.Errorf("%w: xref table truncated", ErrMalformed)
	}

	x := &XRef{Offsets: make(map[int]int64, count), Start: start}
	for id := 0; id < count; id++ {
		entry := rest[id*xrefEntryLen : (id+1)*xrefEntryLen]
		off, err := strconv.ParseInt(string(entry[0:10]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: xref entry %d: %v", ErrMalformed, id, err)
		}
		switch entry[17] {
		case 'n':
			if off < 0 || off >= start {
				return nil, fmt.Errorf("%w: xref entry %d offset %d outside the body", ErrMalformed, id, off)
			}
			x.Offsets[id] = off
		case 'f':
		default:
			return nil, fmt.Errorf("%w: xref entry %d has type %q", ErrMalformed, id, entry[17])
		}
	}

	trailer := rest[count*xrefEntryLen:]
	if !bytes.HasPrefix(trailer, []byte("trailer")) {
		return nil, fmt.Errorf("%w: missing trailer", ErrMalformed)
	}
	m := trailerSizeRe.FindSubmatch(trailer)
	if m == nil {
		return nil, fmt.Errorf("%w: trailer without /Size", ErrMalformed)
	}
	x.Size, _ = strconv.Atoi(string(m[1]))
	m = trailerRootRe.FindSubmatch(trailer)
	if m == nil {
		return nil, fmt.Errorf("%w: trailer without /Root", ErrMalformed)
	}
	x.Root, _ = strconv.Atoi(string(m[1]))

	return x, nil
}

// Verify checks that every cross-reference entry points exactly at its
// "N 0 obj" marker, that /Size matches the table, and that every indirect
// reference outside strings and streams names an existing object.
func Verify(data []byte) error {
	x, err := ReadXRef(data)
	if err != nil {
		return err
	}

	if x.Size != len(x.Offsets)+1 {
		return fmt.Errorf("%w: /Size %d but %d objects", ErrMalformed, x.Size, len(x.Offsets))
	}
	for id, off := range x.Offsets {
		marker := []byte(strconv.Itoa(id) + " 0 obj")
		if off < 0 || off >= x.Start || !bytes.HasPrefix(data[off:], marker) {
			return fmt.Errorf("%w: object %d not found at offset %d", ErrMalformed, id, off)
		}
	}
	if _, ok := x.Offsets[x.Root]; !ok {
		return fmt.Errorf("%w: /Root %d is not in the xref table", ErrMalformed, x.Root)
	}

	for id := range x.Offsets {
		for _, ref := range References(data, x, id) {
			if _, ok := x.Offsets[ref]; !ok {
				return fmt.Errorf("%w: object %d references missing object %d", ErrMalformed, id, ref)
			}
		}
	}

	return nil
}

// References returns the object numbers referenced from the body of object
// id, ignoring string and stream contents.
func References(data []byte, x *XRef, id int) []int {
	off, ok := x.Offsets[id]
	if !ok {
		return nil
	}
	end := bytes.Index(data[off:], []byte("endobj"))
	if end < 0 {
		return nil
	}
	var ids []int
	for _, m := range referenceRe.FindAllSubmatch(stripStringsAndStreams(data[off:off+int64(end)]), -1) {
		n, _ := strconv.Atoi(string(m[1]))
		ids = append(ids, n)
	}
	return ids
}

// stripStringsAndStreams blanks out literal strings and stream data so that
// user text cannot be mistaken for object syntax.
func stripStringsAndStreams(data []byte) []byte {
	out := make([]byte, 0, len(data))
	depth := 0
	for i := 0; i < len(data); i++ {
		c := data[i]
		if depth > 0 {
			switch c {
			case '\\':
				i++
			case '(':
				depth++
			case ')':
				depth--
			}
			continue
		}
		if c == '(' {
			depth = 1
			continue
		}
		if bytes.HasPrefix(data[i:], []byte("stream\n")) {
			end := bytes.Index(data[i:], []byte("endstream"))
			if end < 0 {
				break
			}
			i += end + len("endstream") - 1
			out = append(out, ' ')
			continue
		}
		out = append(out, c)
	}
	return out
}
