package span

// Complement returns the maximal runs of indices in total that are not
// covered by any span in excluded.
//
// Excluded spans may be unsorted, overlapping, adjacent, or empty. Every
// excluded span must lie within total; a span outside total or with a
// negative length is a caller bug and panics.
func Complement(total Span, excluded []Span) Set {
	mustValid(total)
	for _, ex := range excluded {
		mustContain(total, ex)
	}
	if total.IsEmpty() {
		return Set{}
	}

	removed := make([]bool, total.Length)
	for _, ex := range excluded {
		start := ex.Offset - total.Offset
		for i := start; i < start+ex.Length; i++ {
			removed[i] = true
		}
	}

	var out []Span
	runStart := -1
	for i, gone := range removed {
		switch {
		case !gone && runStart < 0:
			runStart = i
		case gone && runStart >= 0:
			out = append(out, Span{Offset: total.Offset + runStart, Length: i - runStart})
			runStart = -1
		}
	}
	if runStart >= 0 {
		out = append(out, Span{Offset: total.Offset + runStart, Length: total.Length - runStart})
	}

	return Set{spans: out}
}
