package span

import (
	"fmt"
	"math"
)

// Span is a half-open range [Offset, Offset+Length).
// Length must be >= 0.
type Span struct {
	Offset int
	Length int
}

func New(offset, length int) Span {
	return Span{Offset: offset, Length: length}
}

// FromBounds returns the span [start, end). Bounds are swapped if end < start.
func FromBounds(start, end int) Span {
	if end < start {
		start, end = end, start
	}
	return Span{Offset: start, Length: end - start}
}

// End returns the exclusive upper bound, saturating at math.MaxInt.
func (s Span) End() int {
	if s.Length > 0 && s.Offset > math.MaxInt-s.Length {
		return math.MaxInt
	}
	return s.Offset + s.Length
}

func (s Span) IsEmpty() bool { return s.Length == 0 }

func (s Span) Valid() bool { return s.Length >= 0 }

// Contains reports whether other is valid and lies entirely within s.
// An empty span at either boundary of s is contained.
func (s Span) Contains(other Span) bool {
	return other.Length >= 0 && other.Offset >= s.Offset && other.Offset <= s.End() &&
		other.Length <= s.End()-other.Offset
}

// Overlaps reports whether s and other share at least one index.
func (s Span) Overlaps(other Span) bool {
	return s.Offset < other.End() && other.Offset < s.End()
}

// Clamp returns s trimmed to limit. A span entirely outside limit collapses
// to an empty span at the nearest boundary.
func (s Span) Clamp(limit Span) Span {
	start := clampInt(s.Offset, limit.Offset, limit.End())
	end := clampInt(s.End(), limit.Offset, limit.End())
	if end < start {
		end = start
	}
	return Span{Offset: start, Length: end - start}
}

func (s Span) String() string {
	return fmt.Sprintf("[%d,%d)", s.Offset, s.End())
}

func mustValid(s Span) {
	if s.Length < 0 {
		panic(fmt.Sprintf("span: negative length in %v", s))
	}
}

func mustContain(total, s Span) {
	mustValid(s)
	if !total.Contains(s) {
		panic(fmt.Sprintf("span: invalid span %v in %v", s, total))
	}
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
