package buffer

import "fmt"

// Pos is a (row, col) position, both 0-based, col counted in runes.
type Pos struct {
	Row int
	Col int
}

func (p Pos) String() string { return fmt.Sprintf("%d:%d", p.Row, p.Col) }

// Range is a half-open range [Start, End) of positions.
type Range struct {
	Start Pos
	End   Pos
}

func (r Range) String() string { return fmt.Sprintf("%v-%v", r.Start, r.End) }

// IsEmpty reports whether the range covers no text.
func (r Range) IsEmpty() bool { return r.Start == r.End }

// TextEdit replaces the text in Range with Text, which may span lines.
type TextEdit struct {
	Range Range
	Text  string
}

// ComparePos orders positions in document order.
func ComparePos(a, b Pos) int {
	switch {
	case a.Row != b.Row:
		return cmpInt(a.Row, b.Row)
	default:
		return cmpInt(a.Col, b.Col)
	}
}

func cmpInt(a, b int) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

// NormalizeRange swaps Start and End if they are out of document order.
func NormalizeRange(r Range) Range {
	if ComparePos(r.Start, r.End) > 0 {
		r.Start, r.End = r.End, r.Start
	}
	return r
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}

// ClampPos moves p inside a document of rowCount rows whose row lengths are
// given by lineLen. A rowCount below one is treated as one.
func ClampPos(p Pos, rowCount int, lineLen func(row int) int) Pos {
	rowCount = max(rowCount, 1)
	row := clampInt(p.Row, 0, rowCount-1)
	limit := 0
	if lineLen != nil {
		limit = max(lineLen(row), 0)
	}
	return Pos{Row: row, Col: clampInt(p.Col, 0, limit)}
}

// ClampRange clamps both ends of r. It does not normalize.
func ClampRange(r Range, rowCount int, lineLen func(row int) int) Range {
	return Range{
		Start: ClampPos(r.Start, rowCount, lineLen),
		End:   ClampPos(r.End, rowCount, lineLen),
	}
}
