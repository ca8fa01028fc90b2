package editor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/iw2rmb/spotlight/internal/grapheme"
	"github.com/iw2rmb/spotlight/span"
	"github.com/iw2rmb/spotlight/styledtext"
)

var cursorStyle = styledtext.Style{Reverse: true}

// renderContent draws the last delivered preview with the cursor and line
// numbers on top. Before the session is attached there is nothing to draw.
func (m *Model) renderContent() string {
	out, ok := m.frame.get()
	if !ok {
		return ""
	}

	cursor := m.buf.Cursor()
	eolCursor := false
	if m.focused {
		line := m.buf.Line(cursor.Row)
		off, _ := m.buf.OffsetFromPos(cursor)
		if cursor.Col < len(line) {
			n := grapheme.Next(line, cursor.Col) - cursor.Col
			if sp := span.New(off, n); sp.End() <= out.Len() {
				out = out.RestyleSpan(sp, func(st styledtext.Style) styledtext.Style {
					st.Reverse = !st.Reverse
					return st
				})
			}
		} else {
			eolCursor = true
		}
	}

	lines := strings.Split(m.cfg.Theme.Render(m.renderer, out), "\n")
	if eolCursor && cursor.Row < len(lines) {
		lines[cursor.Row] += m.cfg.Theme.Style(m.renderer, cursorStyle).Render(" ")
	}

	if m.cfg.ShowLineNums {
		pinned := m.pinnedRows(len(lines))
		digits := len(strconv.Itoa(len(lines)))
		for row := range lines {
			num := m.cfg.Style.LineNum
			switch {
			case m.focused && row == cursor.Row:
				num = m.cfg.Style.LineNumActive
			case pinned[row]:
				num = m.cfg.Style.LineNumPinned
			}
			lines[row] = num.Render(fmt.Sprintf("%*d ", digits, row+1)) + lines[row]
		}
	}
	return strings.Join(lines, "\n")
}

// pinnedRows marks rows touched by a pinned selection.
func (m *Model) pinnedRows(n int) []bool {
	rows := make([]bool, n)
	for _, sp := range m.session.Pinned() {
		r := m.buf.RangeFromSpan(sp)
		for row := r.Start.Row; row <= r.End.Row && row < n; row++ {
			rows[row] = true
		}
	}
	return rows
}
