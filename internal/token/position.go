package token

import "fmt"

// Pos is a single source location: byte offset, 1-based line, and
// 1-based column (column is a rune count, not a byte offset, so that
// multi-byte Cyrillic identifiers position correctly).
type Pos struct {
	Offset int
	Line   int
	Col    int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Place is the source span attached to every AST node: begin/end byte
// offsets and begin/end line/column pairs.
type Place struct {
	BegPos  int
	EndPos  int
	BegLine int
	EndLine int
	BegCol  int
	EndCol  int
}

func (p Place) String() string {
	if p.BegLine == p.EndLine {
		return fmt.Sprintf("%d:%d-%d", p.BegLine, p.BegCol, p.EndCol)
	}
	return fmt.Sprintf("%d:%d-%d:%d", p.BegLine, p.BegCol, p.EndLine, p.EndCol)
}

// NewPlace builds a Place from a begin and an end Pos.
func NewPlace(beg, end Pos) Place {
	return Place{
		BegPos:  beg.Offset,
		EndPos:  end.Offset,
		BegLine: beg.Line,
		EndLine: end.Line,
		BegCol:  beg.Col,
		EndCol:  end.Col,
	}
}

// Join returns a Place that starts where a starts and ends at the later of
// a's and b's ends; callers pass the earlier span as a.
func Join(a, b Place) Place {
	p := a
	if b.EndPos > p.EndPos {
		p.EndPos = b.EndPos
		p.EndLine = b.EndLine
		p.EndCol = b.EndCol
	}
	return p
}

// Comment is a `//`-introduced line comment, addressable by its 1-based
// line number through Module.Comments.
type Comment struct {
	Text string
	Pos  Pos
	Line int
	Col  int
}
