package editor

import "fmt"

// Range is a half-open byte range [Start, End) in a document.
type Range struct {
	Start ByteOffset
	End   ByteOffset
}

// NewRange creates a range from start and end offsets.
func NewRange(start, end ByteOffset) Range {
	return Range{Start: start, End: end}
}

// String returns the range as "[start:end)".
func (r Range) String() string {
	return fmt.Sprintf("[%d:%d)", r.Start, r.End)
}

// IsValid reports whether Start <= End.
func (r Range) IsValid() bool {
	return r.Start <= r.End
}

// Overlaps reports whether r and other share at least one byte.
// Touching ranges, such as [0,2) and [2,4), do not overlap.
func (r Range) Overlaps(other Range) bool {
	return r.Start < other.End && other.Start < r.End
}
