package buffer

import "strings"

type selectionState struct {
	active bool
	anchor Pos
	end    Pos
}

// Buffer holds the document text, cursor, and selection.
// It is not safe for concurrent use.
type Buffer struct {
	lines       [][]rune
	version     uint64
	textVersion uint64

	cursor Pos
	sel    selectionState

	lastChange    Change
	hasLastChange bool
}

// New returns a buffer holding text with the cursor at the start.
func New(text string) *Buffer {
	return &Buffer{lines: splitLines(text)}
}

// Text returns the document with rows joined by '\n'.
func (b *Buffer) Text() string {
	return joinLines(b.lines)
}

// Len returns the document length in runes, newlines included.
func (b *Buffer) Len() int {
	n := len(b.lines) - 1
	for _, line := range b.lines {
		n += len(line)
	}
	return n
}

// LineCount returns the number of rows. It is always at least one.
func (b *Buffer) LineCount() int { return len(b.lines) }

// Line returns a copy of row, or nil when row is out of range.
func (b *Buffer) Line(row int) []rune {
	if row < 0 || row >= len(b.lines) {
		return nil
	}
	return append([]rune(nil), b.lines[row]...)
}

func (b *Buffer) Version() uint64 { return b.version }

// TextVersion changes only when the text does.
func (b *Buffer) TextVersion() uint64 { return b.textVersion }

func (b *Buffer) Cursor() Pos { return b.cursor }

// SetCursor moves the cursor to p, clamped. The selection is kept.
func (b *Buffer) SetCursor(p Pos) {
	next := b.clampPos(p)
	if next == b.cursor {
		return
	}
	b.cursor = next
	b.version++
}

// Selection returns the normalized selection. Empty selections report false.
func (b *Buffer) Selection() (Range, bool) {
	if !b.sel.active {
		return Range{}, false
	}
	r := NormalizeRange(Range{Start: b.sel.anchor, End: b.sel.end})
	if r.IsEmpty() {
		return Range{}, false
	}
	return r, true
}

// SelectionRaw returns anchor and end in the order they were set.
func (b *Buffer) SelectionRaw() (Range, bool) {
	if !b.sel.active || b.sel.anchor == b.sel.end {
		return Range{}, false
	}
	return Range{Start: b.sel.anchor, End: b.sel.end}, true
}

// SetSelection selects r, clamped. r.Start is the anchor. An empty range
// clears the selection.
func (b *Buffer) SetSelection(r Range) {
	clamped := ClampRange(r, len(b.lines), b.lineLen)
	next := selectionState{active: true, anchor: clamped.Start, end: clamped.End}
	if clamped.IsEmpty() {
		next = selectionState{}
	}
	prev, prevOK := b.Selection()
	b.sel = next
	cur, curOK := b.Selection()
	if prevOK != curOK || prev != cur {
		b.version++
	}
}

func (b *Buffer) ClearSelection() {
	_, had := b.Selection()
	b.sel = selectionState{}
	if had {
		b.version++
	}
}

// SetText replaces the whole document. The cursor is clamped into the new
// text and the selection is dropped.
func (b *Buffer) SetText(text string) {
	before := b.Text()
	if before == text {
		return
	}
	change := b.beginChange(ChangeSourceReload)
	b.lines = splitLines(text)
	b.cursor = b.clampPos(b.cursor)
	b.sel = selectionState{}
	b.version++
	b.textVersion++
	change.addAppliedEdit(AppliedEdit{
		RangeBefore: fullDocumentRange(before),
		RangeAfter:  fullDocumentRange(text),
		InsertText:  text,
		DeletedText: before,
	})
	b.commitChange(change)
}

func (b *Buffer) lineLen(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return len(b.lines[row])
}

func (b *Buffer) clampPos(p Pos) Pos {
	return ClampPos(p, len(b.lines), b.lineLen)
}

func (b *Buffer) lastPos() Pos {
	last := len(b.lines) - 1
	return Pos{Row: last, Col: len(b.lines[last])}
}

func splitLines(text string) [][]rune {
	parts := strings.Split(text, "\n")
	lines := make([][]rune, len(parts))
	for i, s := range parts {
		lines[i] = []rune(s)
	}
	return lines
}

func joinLines(lines [][]rune) string {
	var sb strings.Builder
	for i, line := range lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(line))
	}
	return sb.String()
}

func fullDocumentRange(text string) Range {
	lines := splitLines(text)
	last := len(lines) - 1
	return Range{End: Pos{Row: last, Col: len(lines[last])}}
}
