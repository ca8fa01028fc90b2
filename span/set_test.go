package span

import (
	"math"
	"reflect"
	"testing"
)

func TestUnion_MergesOverlappingAndAdjacent(t *testing.T) {
	cases := []struct {
		in   []Span
		want []Span
	}{
		{in: nil, want: nil},
		{in: []Span{New(3, 0)}, want: nil},
		{in: []Span{New(5, 2), New(0, 2)}, want: []Span{New(0, 2), New(5, 2)}},
		{in: []Span{New(0, 2), New(2, 2)}, want: []Span{New(0, 4)}},
		{in: []Span{New(0, 5), New(1, 2)}, want: []Span{New(0, 5)}},
		{in: []Span{New(4, 4), New(0, 5), New(10, 1)}, want: []Span{New(0, 8), New(10, 1)}},
	}

	for _, tc := range cases {
		if got := Union(tc.in).Spans(); !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("Union(%v): got %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestUnion_ComplementRoundTrip(t *testing.T) {
	total := New(0, 12)
	excluded := []Span{New(1, 3), New(2, 5), New(9, 1)}

	rest := Complement(total, excluded)
	all := Union(append(rest.Spans(), excluded...))
	if got, want := all.Spans(), []Span{total}; !reflect.DeepEqual(got, want) {
		t.Fatalf("union of complement and exclusions: got %v, want %v", got, want)
	}
	if got, want := rest.Size()+Union(excluded).Size(), total.Length; got != want {
		t.Fatalf("sizes: got %d, want %d", got, want)
	}
}

func TestSingle(t *testing.T) {
	if got := Single(New(4, 0)); !got.IsEmpty() {
		t.Fatalf("Single(empty): got %v, want empty", got)
	}
	got := Single(New(4, 2))
	if got.Len() != 1 || got.At(0) != New(4, 2) {
		t.Fatalf("Single: got %v", got)
	}
}

func TestSet_Covers(t *testing.T) {
	s := Union([]Span{New(2, 2), New(7, 1)})

	for i, want := range []bool{false, false, true, true, false, false, false, true, false} {
		if got := s.Covers(i); got != want {
			t.Fatalf("Covers(%d): got %v, want %v", i, got, want)
		}
	}
}

func TestSet_SpansReturnsCopy(t *testing.T) {
	s := Single(New(1, 3))
	spans := s.Spans()
	spans[0] = New(0, 0)
	if s.At(0) != New(1, 3) {
		t.Fatalf("set mutated through Spans(): %v", s)
	}
}

func TestSpan_Helpers(t *testing.T) {
	s := New(2, 4)
	if s.End() != 6 {
		t.Fatalf("End: got %d, want 6", s.End())
	}
	if !s.Contains(New(6, 0)) || s.Contains(New(5, 2)) {
		t.Fatalf("Contains boundary handling is wrong")
	}
	if !s.Overlaps(New(5, 3)) || s.Overlaps(New(6, 3)) {
		t.Fatalf("Overlaps boundary handling is wrong")
	}
	if got, want := FromBounds(6, 2), s; got != want {
		t.Fatalf("FromBounds: got %v, want %v", got, want)
	}
	if got, want := New(0, 10).Clamp(s), s; got != want {
		t.Fatalf("Clamp inside: got %v, want %v", got, want)
	}
	if got, want := New(8, 3).Clamp(s), New(6, 0); got != want {
		t.Fatalf("Clamp outside: got %v, want %v", got, want)
	}
	if got, want := s.String(), "[2,6)"; got != want {
		t.Fatalf("String: got %q, want %q", got, want)
	}
}

func TestSpan_HugeLengthDoesNotWrap(t *testing.T) {
	huge := New(5, math.MaxInt)
	if got := huge.End(); got != math.MaxInt {
		t.Fatalf("End: got %d, want MaxInt", got)
	}
	cases := []struct {
		outer, inner Span
		want         bool
	}{
		{New(0, 10), huge, false},
		{New(0, 10), New(math.MaxInt, 1), false},
		{New(0, 10), New(4, -1), false},
		{New(0, math.MaxInt), New(3, math.MaxInt-3), true},
		{New(0, 10), New(3, 7), true},
	}
	for _, tc := range cases {
		if got := tc.outer.Contains(tc.inner); got != tc.want {
			t.Fatalf("%v.Contains(%v): got %v, want %v", tc.outer, tc.inner, got, tc.want)
		}
	}
	if got, want := huge.Clamp(New(0, 10)), New(5, 5); got != want {
		t.Fatalf("Clamp: got %v, want %v", got, want)
	}
}
