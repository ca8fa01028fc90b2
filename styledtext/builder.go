package styledtext

import (
	"unicode/utf8"

	"github.com/iw2rmb/spotlight/span"
)

// Builder assembles a StyledText from styled fragments.
// The zero value is ready to use.
type Builder struct {
	text []rune
	runs []Run
}

func (b *Builder) WriteString(s string, st Style) {
	n := utf8.RuneCountInString(s)
	if n == 0 {
		return
	}
	b.runs = append(b.runs, Run{Span: span.New(len(b.text), n), Style: st})
	b.text = append(b.text, []rune(s)...)
}

func (b *Builder) Len() int { return len(b.text) }

// StyledText returns the assembled value. The builder can keep writing
// afterwards without affecting the returned value.
func (b *Builder) StyledText() StyledText {
	if len(b.text) == 0 {
		return StyledText{}
	}
	text := append([]rune(nil), b.text...)
	return StyledText{text: text, runs: canonicalRuns(b.runs)}
}
