// Package span implements half-open integer ranges over text positions and
// the set arithmetic the preview pipeline needs.
//
// A Span is [Offset, Offset+Length) in runes. A Set is an ordered,
// non-overlapping collection of non-empty spans; it can only be produced by
// Complement, Union, or Single.
package span
