package span

import (
	"slices"
	"strings"
)

// Set is an ordered sequence of non-empty, non-overlapping spans, ascending
// by offset. The zero value is the empty set.
type Set struct {
	spans []Span
}

// Single returns a set holding s, or the empty set if s is empty.
func Single(s Span) Set {
	mustValid(s)
	if s.IsEmpty() {
		return Set{}
	}
	return Set{spans: []Span{s}}
}

// Union merges spans into a set. Overlapping and adjacent spans are joined;
// empty spans are dropped. Input order does not matter.
func Union(spans []Span) Set {
	if len(spans) == 0 {
		return Set{}
	}

	sorted := make([]Span, 0, len(spans))
	for _, s := range spans {
		mustValid(s)
		if s.IsEmpty() {
			continue
		}
		sorted = append(sorted, s)
	}
	slices.SortFunc(sorted, func(a, b Span) int {
		if a.Offset != b.Offset {
			return a.Offset - b.Offset
		}
		return a.Length - b.Length
	})

	merged := make([]Span, 0, len(sorted))
	for _, s := range sorted {
		if len(merged) == 0 {
			merged = append(merged, s)
			continue
		}
		last := &merged[len(merged)-1]
		if s.Offset > last.End() {
			merged = append(merged, s)
			continue
		}
		if s.End() > last.End() {
			last.Length = s.End() - last.Offset
		}
	}
	if len(merged) == 0 {
		return Set{}
	}
	return Set{spans: merged}
}

// Spans returns a copy of the spans in ascending order.
func (s Set) Spans() []Span {
	if len(s.spans) == 0 {
		return nil
	}
	return append([]Span(nil), s.spans...)
}

func (s Set) Len() int { return len(s.spans) }

func (s Set) At(i int) Span { return s.spans[i] }

func (s Set) IsEmpty() bool { return len(s.spans) == 0 }

// Size returns the number of indices covered by the set.
func (s Set) Size() int {
	n := 0
	for _, sp := range s.spans {
		n += sp.Length
	}
	return n
}

// Covers reports whether index i lies inside one of the spans.
func (s Set) Covers(i int) bool {
	_, found := slices.BinarySearchFunc(s.spans, i, func(sp Span, target int) int {
		if sp.End() <= target {
			return -1
		}
		if sp.Offset > target {
			return 1
		}
		return 0
	})
	return found
}

func (s Set) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, sp := range s.spans {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(sp.String())
	}
	sb.WriteByte('}')
	return sb.String()
}
