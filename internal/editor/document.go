package editor

// Edit describes a single text replacement.
type Edit struct {
	// Range is the byte range to replace.
	Range Range

	// Text is the replacement text.
	Text string
}

// Document is the host editor abstraction the formatting engine depends on.
//
// A concrete editor integration implements Document over its own buffer and
// selection model. All offsets are byte offsets into the document text.
type Document interface {
	// Path returns the on-disk path of the document.
	// Untitled or in-memory documents return an empty string.
	Path() string

	// Text returns the full document text.
	Text() string

	// TextRange returns the text within the given range.
	// Out-of-bounds ranges are clamped to the document.
	TextRange(r Range) string

	// Len returns the document length in bytes.
	Len() ByteOffset

	// LineCount returns the number of lines in the document.
	// An empty document has one line.
	LineCount() int

	// LineText returns the text of the given 0-indexed line,
	// without the trailing newline.
	LineText(line int) string

	// LineRange returns the byte range of the given line,
	// excluding the trailing newline.
	LineRange(line int) Range

	// OffsetToPoint converts a byte offset to a line/column point.
	OffsetToPoint(offset ByteOffset) Point

	// PointToOffset converts a line/column point to a byte offset.
	PointToOffset(p Point) ByteOffset

	// Selection returns the primary selection.
	Selection() Selection

	// SetSelection replaces the primary selection. This is also how the
	// engine undoes a cursor movement: it records the selection before a
	// jump and restores it afterwards.
	SetSelection(s Selection)

	// JumpToBracket moves the cursor to the bracket matching the one
	// immediately before the cursor, mirroring an editor's
	// jump-to-bracket command. When no match exists the selection is
	// left unchanged.
	JumpToBracket()

	// Replace applies the given edits atomically. Edits must not overlap;
	// they are applied back-to-front so earlier offsets stay valid.
	Replace(edits []Edit) error
}
