package preview

import (
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/iw2rmb/spotlight/span"
)

// Remap moves spans measured against before so they cover the same text in
// after.
//
// Offsets inside deleted text move to the deletion point. Text inserted
// exactly at a span boundary stays outside the span; text inserted inside
// it becomes part of it. Spans that end up empty are dropped.
func Remap(before, after string, spans []span.Span) []span.Span {
	if len(spans) == 0 {
		return nil
	}
	if before == after {
		return append([]span.Span(nil), spans...)
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMainRunes([]rune(before), []rune(after), false)
	limit := span.New(0, utf8.RuneCountInString(after))

	out := make([]span.Span, 0, len(spans))
	for _, sp := range spans {
		start := mapOffset(diffs, sp.Offset, true)
		end := mapOffset(diffs, sp.End(), false)
		next := span.FromBounds(start, max(start, end)).Clamp(limit)
		if next.IsEmpty() {
			continue
		}
		out = append(out, next)
	}
	return out
}

// mapOffset translates a rune offset in the diff source into the diff
// destination. stickRight places the result after text inserted at loc.
func mapOffset(diffs []diffmatchpatch.Diff, loc int, stickRight bool) int {
	p1, p2 := 0, 0
	for _, d := range diffs {
		n := utf8.RuneCountInString(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			if loc == p1 && !stickRight {
				return p2
			}
			p2 += n
		case diffmatchpatch.DiffDelete:
			if loc < p1+n || (loc == p1+n && !stickRight) {
				return p2
			}
			p1 += n
		case diffmatchpatch.DiffEqual:
			if loc < p1+n || (loc == p1+n && !stickRight) {
				return p2 + (loc - p1)
			}
			p1 += n
			p2 += n
		}
	}
	return p2 + (loc - p1)
}
