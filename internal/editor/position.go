package editor

import "fmt"

// ByteOffset is a byte position in a document. All document operations
// index text by byte; hosts that think in lines convert through
// OffsetToPoint and PointToOffset.
type ByteOffset = int64

// Point is a 0-indexed line/column position. Column counts bytes from
// the start of the line.
type Point struct {
	Line   uint32
	Column uint32
}

// String returns the point as "(line:column)".
func (p Point) String() string {
	return fmt.Sprintf("(%d:%d)", p.Line, p.Column)
}
