package editor

import (
	"sort"
	"strings"
)

// MemDocument is an in-memory Document implementation.
//
// It is used by the command-line tool and by tests. MemDocument is not safe
// for concurrent use; the engine's cooperative scheduling never touches a
// document from more than one goroutine at a time.
type MemDocument struct {
	path string
	text string
	sel  Selection
}

// NewMemDocument creates a document with the given path and text.
// Pass an empty path for an untitled document.
func NewMemDocument(path, text string) *MemDocument {
	return &MemDocument{path: path, text: text}
}

// Path returns the on-disk path, or "" for untitled documents.
func (d *MemDocument) Path() string { return d.path }

// Text returns the full document text.
func (d *MemDocument) Text() string { return d.text }

// Len returns the document length in bytes.
func (d *MemDocument) Len() ByteOffset { return ByteOffset(len(d.text)) }

// TextRange returns the text within r, clamped to the document.
func (d *MemDocument) TextRange(r Range) string {
	start := clamp(r.Start, 0, d.Len())
	end := clamp(r.End, start, d.Len())
	return d.text[start:end]
}

// LineCount returns the number of lines. An empty document has one line.
func (d *MemDocument) LineCount() int {
	return strings.Count(d.text, "\n") + 1
}

// LineText returns the text of the given line without its trailing newline.
func (d *MemDocument) LineText(line int) string {
	r := d.LineRange(line)
	return d.text[r.Start:r.End]
}

// LineRange returns the byte range of the given line, excluding the
// trailing newline. Out-of-range lines yield an empty range at the
// document boundary.
func (d *MemDocument) LineRange(line int) Range {
	if line < 0 {
		return Range{}
	}
	start := ByteOffset(0)
	for i := 0; i < line; i++ {
		nl := strings.IndexByte(d.text[start:], '\n')
		if nl < 0 {
			end := d.Len()
			return Range{Start: end, End: end}
		}
		start += ByteOffset(nl) + 1
	}
	end := start
	if nl := strings.IndexByte(d.text[start:], '\n'); nl >= 0 {
		end = start + ByteOffset(nl)
	} else {
		end = d.Len()
	}
	return Range{Start: start, End: end}
}

// OffsetToPoint converts a byte offset to a line/column point.
func (d *MemDocument) OffsetToPoint(offset ByteOffset) Point {
	offset = clamp(offset, 0, d.Len())
	prefix := d.text[:offset]
	line := strings.Count(prefix, "\n")
	col := offset
	if nl := strings.LastIndexByte(prefix, '\n'); nl >= 0 {
		col = offset - ByteOffset(nl) - 1
	}
	return Point{Line: uint32(line), Column: uint32(col)}
}

// PointToOffset converts a line/column point to a byte offset.
func (d *MemDocument) PointToOffset(p Point) ByteOffset {
	r := d.LineRange(int(p.Line))
	off := r.Start + ByteOffset(p.Column)
	return clamp(off, r.Start, r.End)
}

// Selection returns the primary selection.
func (d *MemDocument) Selection() Selection { return d.sel }

// SetSelection replaces the primary selection, clamped to the document.
func (d *MemDocument) SetSelection(s Selection) {
	s.Anchor = clamp(s.Anchor, 0, d.Len())
	s.Head = clamp(s.Head, 0, d.Len())
	d.sel = s
}

// JumpToBracket moves the cursor to the bracket matching the closing
// bracket immediately before the cursor. No-op when the preceding
// character is not a closing bracket or no match exists.
func (d *MemDocument) JumpToBracket() {
	head := d.sel.Head
	if head <= 0 || head > d.Len() {
		return
	}
	closing := d.text[head-1]
	var open byte
	switch closing {
	case '}':
		open = '{'
	case ')':
		open = '('
	case ']':
		open = '['
	default:
		return
	}
	depth := 0
	for i := head - 1; i >= 0; i-- {
		switch d.text[i] {
		case closing:
			depth++
		case open:
			depth--
			if depth == 0 {
				d.sel = NewCursorSelection(i)
				return
			}
		}
	}
}

// Replace applies edits atomically, back-to-front. Edits must be within
// the document and must not overlap.
func (d *MemDocument) Replace(edits []Edit) error {
	if len(edits) == 0 {
		return nil
	}
	sorted := make([]Edit, len(edits))
	copy(sorted, edits)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Range.Start > sorted[j].Range.Start
	})
	for i, e := range sorted {
		if !e.Range.IsValid() || e.Range.Start < 0 || e.Range.End > d.Len() {
			return ErrInvalidRange
		}
		if i > 0 && sorted[i-1].Range.Overlaps(e.Range) {
			return ErrOverlappingEdits
		}
	}
	text := d.text
	for _, e := range sorted {
		text = text[:e.Range.Start] + e.Text + text[e.Range.End:]
	}
	d.text = text
	d.sel.Anchor = clamp(d.sel.Anchor, 0, d.Len())
	d.sel.Head = clamp(d.sel.Head, 0, d.Len())
	return nil
}

func clamp(v, lo, hi ByteOffset) ByteOffset {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Ensure MemDocument implements Document.
var _ Document = (*MemDocument)(nil)
