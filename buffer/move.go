package buffer

import "github.com/iw2rmb/spotlight/internal/grapheme"

type MoveUnit int

const (
	MoveGrapheme MoveUnit = iota
	MoveWord
	MoveLine
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // line start, or document start for MoveDoc
	DirEnd  // line end, or document end for MoveDoc
)

// Move describes one cursor motion. With Extend set the selection grows from
// its anchor (or the old cursor) to the new cursor; otherwise it is cleared.
type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool
}

func (b *Buffer) Move(m Move) {
	prev := b.cursor
	next := b.clampPos(b.moveCursor(prev, m))

	sel := selectionState{}
	if m.Extend {
		anchor := prev
		if b.sel.active && b.sel.anchor != b.sel.end {
			anchor = b.sel.anchor
		}
		if anchor != next {
			sel = selectionState{active: true, anchor: anchor, end: next}
		}
	}

	if prev == next && sel == b.normalizedState() {
		return
	}
	b.cursor = next
	b.sel = sel
	b.version++
}

// normalizedState maps every inactive or empty selection to the zero value.
func (b *Buffer) normalizedState() selectionState {
	if !b.sel.active || b.sel.anchor == b.sel.end {
		return selectionState{}
	}
	return b.sel
}

func (b *Buffer) moveCursor(p Pos, m Move) Pos {
	switch m.Unit {
	case MoveGrapheme:
		return b.moveGrapheme(p, m.Dir)
	case MoveWord:
		return b.moveWord(p, m.Dir)
	case MoveLine:
		return b.moveLine(p, m.Dir)
	case MoveDoc:
		if m.Dir == DirHome || m.Dir == DirUp {
			return Pos{}
		}
		if m.Dir == DirEnd || m.Dir == DirDown {
			return b.lastPos()
		}
	}
	return p
}

func (b *Buffer) moveGrapheme(p Pos, dir MoveDir) Pos {
	line := b.lines[p.Row]
	switch dir {
	case DirLeft:
		if p.Col > 0 {
			return Pos{Row: p.Row, Col: grapheme.Prev(line, p.Col)}
		}
		if p.Row > 0 {
			return Pos{Row: p.Row - 1, Col: len(b.lines[p.Row-1])}
		}
		return p
	case DirRight:
		if p.Col < len(line) {
			return Pos{Row: p.Row, Col: grapheme.Next(line, p.Col)}
		}
		if p.Row < len(b.lines)-1 {
			return Pos{Row: p.Row + 1}
		}
		return p
	default:
		return b.moveLine(p, dir)
	}
}

func (b *Buffer) moveLine(p Pos, dir MoveDir) Pos {
	row := p.Row
	switch dir {
	case DirHome:
		return Pos{Row: row}
	case DirEnd:
		return Pos{Row: row, Col: len(b.lines[row])}
	case DirUp:
		row--
	case DirDown:
		row++
	default:
		return p
	}
	if row < 0 || row >= len(b.lines) {
		return p
	}
	line := b.lines[row]
	return Pos{Row: row, Col: grapheme.Snap(line, min(p.Col, len(line)))}
}

func (b *Buffer) moveWord(p Pos, dir MoveDir) Pos {
	line := b.lines[p.Row]
	switch dir {
	case DirLeft:
		return Pos{Row: p.Row, Col: prevWordBoundary(line, p.Col)}
	case DirRight:
		return Pos{Row: p.Row, Col: nextWordBoundary(line, p.Col)}
	default:
		return b.moveLine(p, dir)
	}
}

// Words are runs of non-space runes; punctuation runs count as their own
// words. Word moves stay on the current row.
func prevWordBoundary(line []rune, col int) int {
	i := clampInt(col, 0, len(line))
	for i > 0 && grapheme.IsSpace(line[i-1]) {
		i--
	}
	if i == 0 {
		return 0
	}
	punct := grapheme.IsPunct(line[i-1])
	for i > 0 && !grapheme.IsSpace(line[i-1]) && grapheme.IsPunct(line[i-1]) == punct {
		i--
	}
	return grapheme.Snap(line, i)
}

func nextWordBoundary(line []rune, col int) int {
	i := clampInt(col, 0, len(line))
	for i < len(line) && grapheme.IsSpace(line[i]) {
		i++
	}
	if i == len(line) {
		return i
	}
	punct := grapheme.IsPunct(line[i])
	for i < len(line) && !grapheme.IsSpace(line[i]) && grapheme.IsPunct(line[i]) == punct {
		i++
	}
	if i < len(line) {
		return grapheme.Snap(line, i)
	}
	return i
}
