// Package styledtext provides an immutable styled-text value and its
// terminal rendering.
//
// A StyledText pairs runes with a run list that assigns a Style to every
// position. Offsets are rune indices. Every operation that changes styles
// returns a new value; the receiver and any value derived from it earlier
// are never modified.
package styledtext
