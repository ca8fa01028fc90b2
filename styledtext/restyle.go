package styledtext

import "github.com/iw2rmb/spotlight/span"

// Restyle returns a copy of t where fn has been applied to the style of
// every position covered by set. Positions outside set keep their style.
//
// fn is called once per run fragment and must be a pure function of its
// argument. Every span in set must lie within the text.
func (t StyledText) Restyle(set span.Set, fn func(Style) Style) StyledText {
	for i := 0; i < set.Len(); i++ {
		t.mustFit(set.At(i))
	}
	if set.IsEmpty() || fn == nil {
		return t
	}

	out := make([]Run, 0, len(t.runs)+2*set.Len())
	si := 0
	for _, r := range t.runs {
		pos, end := r.Span.Offset, r.Span.End()
		for pos < end {
			for si < set.Len() && set.At(si).End() <= pos {
				si++
			}
			if si == set.Len() || set.At(si).Offset >= end {
				out = append(out, Run{Span: span.FromBounds(pos, end), Style: r.Style})
				break
			}

			sp := set.At(si)
			if sp.Offset > pos {
				out = append(out, Run{Span: span.FromBounds(pos, sp.Offset), Style: r.Style})
				pos = sp.Offset
			}
			segEnd := min(end, sp.End())
			out = append(out, Run{Span: span.FromBounds(pos, segEnd), Style: fn(r.Style)})
			pos = segEnd
		}
	}

	return StyledText{text: t.text, runs: canonicalRuns(out)}
}

// RestyleSpan is Restyle over a single span.
func (t StyledText) RestyleSpan(sp span.Span, fn func(Style) Style) StyledText {
	t.mustFit(sp)
	return t.Restyle(span.Single(sp), fn)
}
