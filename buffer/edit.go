package buffer

import (
	"strings"

	"github.com/iw2rmb/spotlight/internal/grapheme"
)

// InsertText inserts s at the cursor, replacing the selection if one is
// active. The cursor ends after the inserted text.
func (b *Buffer) InsertText(s string) {
	r, ok := b.Selection()
	if !ok {
		if s == "" {
			return
		}
		r = Range{Start: b.cursor, End: b.cursor}
	}
	b.editLocal(r, s)
}

// InsertRune inserts a single rune.
func (b *Buffer) InsertRune(r rune) { b.InsertText(string(r)) }

// InsertNewline splits the row at the cursor.
func (b *Buffer) InsertNewline() { b.InsertText("\n") }

// DeleteBackward removes the selection, or the grapheme cluster before the
// cursor, or joins with the previous row at column zero.
func (b *Buffer) DeleteBackward() {
	if r, ok := b.Selection(); ok {
		b.editLocal(r, "")
		return
	}
	p := b.cursor
	var start Pos
	switch {
	case p.Col > 0:
		start = Pos{Row: p.Row, Col: grapheme.Prev(b.lines[p.Row], p.Col)}
	case p.Row > 0:
		start = Pos{Row: p.Row - 1, Col: len(b.lines[p.Row-1])}
	default:
		return
	}
	b.editLocal(Range{Start: start, End: p}, "")
}

// DeleteForward removes the selection, or the grapheme cluster at the
// cursor, or joins with the next row at end of line.
func (b *Buffer) DeleteForward() {
	if r, ok := b.Selection(); ok {
		b.editLocal(r, "")
		return
	}
	p := b.cursor
	var end Pos
	switch {
	case p.Col < len(b.lines[p.Row]):
		end = Pos{Row: p.Row, Col: grapheme.Next(b.lines[p.Row], p.Col)}
	case p.Row < len(b.lines)-1:
		end = Pos{Row: p.Row + 1}
	default:
		return
	}
	b.editLocal(Range{Start: p, End: end}, "")
}

// DeleteSelection removes the selected text, if any.
func (b *Buffer) DeleteSelection() {
	if r, ok := b.Selection(); ok {
		b.editLocal(r, "")
	}
}

// SelectedText returns the selected text, or "" with no selection.
func (b *Buffer) SelectedText() string {
	r, ok := b.Selection()
	if !ok {
		return ""
	}
	return textInRange(b.lines, r)
}

func (b *Buffer) editLocal(r Range, text string) {
	change := b.beginChange(ChangeSourceLocal)
	next, applied, changed := b.replaceRange(r, text)
	if !changed {
		return
	}
	b.cursor = next
	b.sel = selectionState{}
	b.version++
	b.textVersion++
	change.addAppliedEdit(applied)
	b.commitChange(change)
}

// replaceRange swaps the text in r for text and returns the position just
// after the inserted text.
func (b *Buffer) replaceRange(r Range, text string) (Pos, AppliedEdit, bool) {
	r = NormalizeRange(ClampRange(r, len(b.lines), b.lineLen))
	deleted := textInRange(b.lines, r)
	if deleted == text {
		return b.cursor, AppliedEdit{}, false
	}

	ins := splitLines(text)
	prefix := b.lines[r.Start.Row][:r.Start.Col]
	suffix := b.lines[r.End.Row][r.End.Col:]

	repl := make([][]rune, len(ins))
	for i, part := range ins {
		var line []rune
		if i == 0 {
			line = append(line, prefix...)
		}
		line = append(line, part...)
		repl[i] = line
	}
	last := len(repl) - 1
	next := Pos{Row: r.Start.Row + last, Col: len(repl[last])}
	repl[last] = append(repl[last], suffix...)

	out := make([][]rune, 0, len(b.lines)-(r.End.Row-r.Start.Row)+last)
	out = append(out, b.lines[:r.Start.Row]...)
	out = append(out, repl...)
	out = append(out, b.lines[r.End.Row+1:]...)
	b.lines = out

	return next, AppliedEdit{
		RangeBefore: r,
		RangeAfter:  Range{Start: r.Start, End: next},
		InsertText:  text,
		DeletedText: deleted,
	}, true
}

func textInRange(lines [][]rune, r Range) string {
	r = NormalizeRange(r)
	if r.IsEmpty() {
		return ""
	}
	if r.Start.Row == r.End.Row {
		return string(lines[r.Start.Row][r.Start.Col:r.End.Col])
	}
	var sb strings.Builder
	sb.WriteString(string(lines[r.Start.Row][r.Start.Col:]))
	for row := r.Start.Row + 1; row < r.End.Row; row++ {
		sb.WriteByte('\n')
		sb.WriteString(string(lines[row]))
	}
	sb.WriteByte('\n')
	sb.WriteString(string(lines[r.End.Row][:r.End.Col]))
	return sb.String()
}
