package editor

import (
	"github.com/iw2rmb/spotlight/styledtext"
)

// HighlightSpan styles the runes [StartCol, EndCol) of one line.
type HighlightSpan struct {
	StartCol int
	EndCol   int
	Style    styledtext.Style
}

// LineContext is passed to a Highlighter for one buffer row.
type LineContext struct {
	Row  int
	Text string
}

// Highlighter assigns base styles to a line. The preview mutes on top of
// these styles, so a muted run keeps its highlight attributes.
//
// On error the line is rendered unstyled.
type Highlighter interface {
	HighlightLine(ctx LineContext) ([]HighlightSpan, error)
}

// HighlighterFunc adapts a function to Highlighter.
type HighlighterFunc func(ctx LineContext) ([]HighlightSpan, error)

func (f HighlighterFunc) HighlightLine(ctx LineContext) ([]HighlightSpan, error) {
	return f(ctx)
}

// sourceText builds the styled text the preview renders from: the buffer
// text with highlighter styles applied.
func (m Model) sourceText() styledtext.StyledText {
	if m.cfg.Highlighter == nil {
		return styledtext.New(m.buf.Text(), styledtext.Style{})
	}

	var b styledtext.Builder
	for row := 0; row < m.buf.LineCount(); row++ {
		if row > 0 {
			b.WriteString("\n", styledtext.Style{})
		}
		line := m.buf.Line(row)
		styles := m.lineStyles(row, line)
		start := 0
		for i := 1; i <= len(line); i++ {
			if i == len(line) || styles[i] != styles[start] {
				b.WriteString(string(line[start:i]), styles[start])
				start = i
			}
		}
	}
	return b.StyledText()
}

// lineStyles resolves highlight spans to one style per rune. Later spans
// win where spans overlap.
func (m Model) lineStyles(row int, line []rune) []styledtext.Style {
	styles := make([]styledtext.Style, len(line))
	spans, err := m.cfg.Highlighter.HighlightLine(LineContext{Row: row, Text: string(line)})
	if err != nil {
		m.log.Debug("highlighter failed", "row", row, "err", err)
		return styles
	}
	for _, hs := range spans {
		start := clampInt(hs.StartCol, 0, len(line))
		end := clampInt(hs.EndCol, 0, len(line))
		for i := start; i < end; i++ {
			styles[i] = hs.Style
		}
	}
	return styles
}

func clampInt(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
