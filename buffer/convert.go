package buffer

import "github.com/iw2rmb/spotlight/span"

// OffsetFromPos returns the rune offset of p, counting each row break as one
// rune. It reports false if p is outside the document.
func (b *Buffer) OffsetFromPos(p Pos) (int, bool) {
	if b.clampPos(p) != p {
		return 0, false
	}
	off := p.Col
	for row := 0; row < p.Row; row++ {
		off += len(b.lines[row]) + 1
	}
	return off, true
}

// PosFromOffset is the inverse of OffsetFromPos. Offset Len() maps to the
// end of the document.
func (b *Buffer) PosFromOffset(off int) (Pos, bool) {
	if off < 0 {
		return Pos{}, false
	}
	for row, line := range b.lines {
		if off <= len(line) {
			return Pos{Row: row, Col: off}, true
		}
		off -= len(line) + 1
	}
	return Pos{}, false
}

// SpanFromRange converts r, clamped and normalized, to a rune span.
func (b *Buffer) SpanFromRange(r Range) span.Span {
	r = NormalizeRange(ClampRange(r, len(b.lines), b.lineLen))
	start, _ := b.OffsetFromPos(r.Start)
	end, _ := b.OffsetFromPos(r.End)
	return span.FromBounds(start, end)
}

// RangeFromSpan converts sp to a range, clamping it to the document.
func (b *Buffer) RangeFromSpan(sp span.Span) Range {
	sp = sp.Clamp(span.New(0, b.Len()))
	start, _ := b.PosFromOffset(sp.Offset)
	end, _ := b.PosFromOffset(sp.End())
	return Range{Start: start, End: end}
}

// SelectionSpans returns the active selection as spans: none without a
// selection, otherwise exactly one.
func (b *Buffer) SelectionSpans() []span.Span {
	r, ok := b.Selection()
	if !ok {
		return nil
	}
	return []span.Span{b.SpanFromRange(r)}
}
