package editor

import (
	"errors"
	"testing"
)

func TestNewMemDocument(t *testing.T) {
	d := NewMemDocument("", "")

	if d.Path() != "" {
		t.Errorf("expected empty path, got %q", d.Path())
	}
	if d.Len() != 0 {
		t.Errorf("expected length 0, got %d", d.Len())
	}
	if d.LineCount() != 1 {
		t.Errorf("expected 1 line, got %d", d.LineCount())
	}
}

func TestMemDocumentLines(t *testing.T) {
	d := NewMemDocument("/tmp/a.php", "<?php\n$a = 1;\n$b = 2;")

	if d.LineCount() != 3 {
		t.Fatalf("expected 3 lines, got %d", d.LineCount())
	}
	if d.LineText(0) != "<?php" {
		t.Errorf("line 0: got %q", d.LineText(0))
	}
	if d.LineText(1) != "$a = 1;" {
		t.Errorf("line 1: got %q", d.LineText(1))
	}
	if d.LineText(2) != "$b = 2;" {
		t.Errorf("line 2: got %q", d.LineText(2))
	}

	r := d.LineRange(1)
	if r.Start != 6 || r.End != 13 {
		t.Errorf("line 1 range: got %v", r)
	}
}

func TestMemDocumentOffsetPointRoundTrip(t *testing.T) {
	d := NewMemDocument("", "ab\ncd\nef")

	tests := []struct {
		offset ByteOffset
		point  Point
	}{
		{0, Point{Line: 0, Column: 0}},
		{2, Point{Line: 0, Column: 2}},
		{3, Point{Line: 1, Column: 0}},
		{5, Point{Line: 1, Column: 2}},
		{7, Point{Line: 2, Column: 1}},
	}

	for _, tt := range tests {
		p := d.OffsetToPoint(tt.offset)
		if p != tt.point {
			t.Errorf("OffsetToPoint(%d) = %v, want %v", tt.offset, p, tt.point)
		}
		off := d.PointToOffset(tt.point)
		if off != tt.offset {
			t.Errorf("PointToOffset(%v) = %d, want %d", tt.point, off, tt.offset)
		}
	}
}

func TestMemDocumentReplace(t *testing.T) {
	d := NewMemDocument("", "hello world")

	err := d.Replace([]Edit{{Range: NewRange(0, 5), Text: "goodbye"}})
	if err != nil {
		t.Fatalf("replace failed: %v", err)
	}
	if d.Text() != "goodbye world" {
		t.Errorf("got %q", d.Text())
	}
}

func TestMemDocumentReplaceMultiple(t *testing.T) {
	d := NewMemDocument("", "aa bb cc")

	// Edits given in forward order must apply back-to-front.
	err := d.Replace([]Edit{
		{Range: NewRange(0, 2), Text: "xx"},
		{Range: NewRange(6, 8), Text: "yy"},
	})
	if err != nil {
		t.Fatalf("replace failed: %v", err)
	}
	if d.Text() != "xx bb yy" {
		t.Errorf("got %q", d.Text())
	}
}

func TestMemDocumentReplaceOverlap(t *testing.T) {
	d := NewMemDocument("", "abcdef")

	err := d.Replace([]Edit{
		{Range: NewRange(0, 3), Text: "x"},
		{Range: NewRange(2, 5), Text: "y"},
	})
	if !errors.Is(err, ErrOverlappingEdits) {
		t.Errorf("expected ErrOverlappingEdits, got %v", err)
	}
	if d.Text() != "abcdef" {
		t.Errorf("document mutated on failed replace: %q", d.Text())
	}
}

func TestMemDocumentReplaceAdjacent(t *testing.T) {
	d := NewMemDocument("", "abcdef")

	// Touching ranges share no byte and must be accepted.
	if err := d.Replace([]Edit{
		{Range: NewRange(0, 2), Text: "X"},
		{Range: NewRange(2, 4), Text: "Y"},
	}); err != nil {
		t.Fatalf("adjacent edits rejected: %v", err)
	}
	if d.Text() != "XYef" {
		t.Errorf("got %q, want %q", d.Text(), "XYef")
	}
}

func TestMemDocumentReplaceOutOfBounds(t *testing.T) {
	d := NewMemDocument("", "abc")

	err := d.Replace([]Edit{{Range: NewRange(1, 10), Text: "x"}})
	if !errors.Is(err, ErrInvalidRange) {
		t.Errorf("expected ErrInvalidRange, got %v", err)
	}
}

func TestMemDocumentJumpToBracket(t *testing.T) {
	text := "if ($a) {\n    foo();\n}"
	d := NewMemDocument("", text)

	// Cursor just after the closing brace.
	d.SetSelection(NewCursorSelection(ByteOffset(len(text))))
	d.JumpToBracket()

	want := ByteOffset(8) // the '{'
	if d.Selection().Head != want {
		t.Errorf("jump landed at %d, want %d", d.Selection().Head, want)
	}
}

func TestMemDocumentJumpToBracketNested(t *testing.T) {
	text := "{ { } }"
	d := NewMemDocument("", text)

	d.SetSelection(NewCursorSelection(7))
	d.JumpToBracket()
	if d.Selection().Head != 0 {
		t.Errorf("outer jump landed at %d, want 0", d.Selection().Head)
	}

	d.SetSelection(NewCursorSelection(5))
	d.JumpToBracket()
	if d.Selection().Head != 2 {
		t.Errorf("inner jump landed at %d, want 2", d.Selection().Head)
	}
}

func TestMemDocumentJumpToBracketNoMatch(t *testing.T) {
	d := NewMemDocument("", "no brackets here }")

	d.SetSelection(NewCursorSelection(5))
	before := d.Selection()

	d.JumpToBracket()
	if d.Selection() != before {
		t.Errorf("selection moved without a bracket before the cursor")
	}
}

func TestSelectionRange(t *testing.T) {
	s := NewSelection(10, 4)

	r := s.Range()
	if r.Start != 4 || r.End != 10 {
		t.Errorf("reversed selection range: got %v", r)
	}
	if s.Start() != 4 || s.End() != 10 {
		t.Errorf("Start/End: got %d/%d", s.Start(), s.End())
	}
	if s.IsEmpty() {
		t.Error("selection with extent reported empty")
	}
	if c := s.Collapse(); c.Anchor != 4 || c.Head != 4 {
		t.Errorf("collapse: got %v", c)
	}
}
