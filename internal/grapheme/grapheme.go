// Package grapheme maps between rune offsets and grapheme cluster
// boundaries so cursor movement never stops inside a cluster.
package grapheme

import (
	"unicode"

	"github.com/rivo/uniseg"
)

// Boundaries returns the rune offsets at which clusters of line start,
// followed by len(line). An empty line yields [0].
func Boundaries(line []rune) []int {
	out := make([]int, 0, len(line)+1)
	out = append(out, 0)
	if len(line) == 0 {
		return out
	}
	g := uniseg.NewGraphemes(string(line))
	off := 0
	for g.Next() {
		off += len(g.Runes())
		out = append(out, off)
	}
	return out
}

// Count returns the number of grapheme clusters in line.
func Count(line []rune) int {
	return len(Boundaries(line)) - 1
}

// Prev returns the start of the cluster before col, or 0.
func Prev(line []rune, col int) int {
	b := Boundaries(line)
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] < col {
			return b[i]
		}
	}
	return 0
}

// Next returns the end of the cluster that starts at or contains col, or
// len(line).
func Next(line []rune, col int) int {
	for _, off := range Boundaries(line) {
		if off > col {
			return off
		}
	}
	return len(line)
}

// Snap moves col back to the start of the cluster containing it.
func Snap(line []rune, col int) int {
	if col <= 0 {
		return 0
	}
	if col >= len(line) {
		return len(line)
	}
	prev := 0
	for _, off := range Boundaries(line) {
		if off == col {
			return col
		}
		if off > col {
			return prev
		}
		prev = off
	}
	return prev
}

// IsSpace reports whether r is Unicode whitespace.
func IsSpace(r rune) bool { return unicode.IsSpace(r) }

// IsPunct reports whether r is Unicode punctuation.
func IsPunct(r rune) bool { return unicode.IsPunct(r) }
