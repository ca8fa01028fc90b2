package styledtext

import (
	"fmt"
	"slices"

	"github.com/iw2rmb/spotlight/span"
)

// Run assigns Style to the positions in Span.
type Run struct {
	Span  span.Span
	Style Style
}

// StyledText is an immutable sequence of runes with a style for every
// position. The zero value is the empty text.
//
// Runs are kept canonical: no empty runs, and adjacent runs never share a
// style. Two texts with the same runes and per-position styles therefore
// have identical run lists.
type StyledText struct {
	text []rune
	runs []Run
}

// Empty returns the empty text.
func Empty() StyledText { return StyledText{} }

// New returns text with st applied to every position.
func New(text string, st Style) StyledText {
	rs := []rune(text)
	if len(rs) == 0 {
		return StyledText{}
	}
	return StyledText{
		text: rs,
		runs: []Run{{Span: span.New(0, len(rs)), Style: st}},
	}
}

// FromRuns builds a styled text from explicit runs.
//
// Runs must tile [0, len(text)) in order with no gaps or overlaps; empty
// runs are allowed and dropped. Anything else panics.
func FromRuns(text string, runs []Run) StyledText {
	rs := []rune(text)
	next := 0
	for _, r := range runs {
		if r.Span.Length < 0 || r.Span.Offset != next {
			panic(fmt.Sprintf("styledtext: run %v does not continue at %d", r.Span, next))
		}
		next = r.Span.End()
	}
	if next != len(rs) {
		panic(fmt.Sprintf("styledtext: runs cover %d of %d runes", next, len(rs)))
	}
	if len(rs) == 0 {
		return StyledText{}
	}
	return StyledText{text: rs, runs: canonicalRuns(runs)}
}

func (t StyledText) String() string { return string(t.text) }

// Len returns the length in runes.
func (t StyledText) Len() int { return len(t.text) }

// Runes returns a copy of the text.
func (t StyledText) Runes() []rune { return slices.Clone(t.text) }

// Runs returns a copy of the canonical run list.
func (t StyledText) Runs() []Run { return slices.Clone(t.runs) }

// StyleAt returns the style at rune index i. It panics if i is out of range.
func (t StyledText) StyleAt(i int) Style {
	if i < 0 || i >= len(t.text) {
		panic(fmt.Sprintf("styledtext: index %d out of range [0,%d)", i, len(t.text)))
	}
	idx, _ := slices.BinarySearchFunc(t.runs, i, func(r Run, target int) int {
		if r.Span.End() <= target {
			return -1
		}
		if r.Span.Offset > target {
			return 1
		}
		return 0
	})
	return t.runs[idx].Style
}

// Slice returns the runes and styles inside sp, rebased to offset 0.
func (t StyledText) Slice(sp span.Span) StyledText {
	t.mustFit(sp)
	if sp.IsEmpty() {
		return StyledText{}
	}

	out := make([]Run, 0, 2)
	for _, r := range t.runs {
		if !r.Span.Overlaps(sp) {
			continue
		}
		part := r.Span.Clamp(sp)
		part.Offset -= sp.Offset
		out = append(out, Run{Span: part, Style: r.Style})
	}
	return StyledText{
		text: t.text[sp.Offset:sp.End():sp.End()],
		runs: out,
	}
}

// Equal reports whether t and other have the same runes and the same style
// at every position.
func (t StyledText) Equal(other StyledText) bool {
	return slices.Equal(t.text, other.text) && slices.Equal(t.runs, other.runs)
}

// StyleEqual reports whether t and other have the same length and the same
// style at every position, ignoring the runes.
func (t StyledText) StyleEqual(other StyledText) bool {
	return len(t.text) == len(other.text) && slices.Equal(t.runs, other.runs)
}

func (t StyledText) mustFit(sp span.Span) {
	if !span.New(0, len(t.text)).Contains(sp) {
		panic(fmt.Sprintf("styledtext: span %v outside text of length %d", sp, len(t.text)))
	}
}

func canonicalRuns(runs []Run) []Run {
	out := make([]Run, 0, len(runs))
	for _, r := range runs {
		if r.Span.IsEmpty() {
			continue
		}
		if n := len(out); n > 0 && out[n-1].Style == r.Style && out[n-1].Span.End() == r.Span.Offset {
			out[n-1].Span.Length += r.Span.Length
			continue
		}
		out = append(out, r)
	}
	return out
}
