package styledtext

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
)

// Theme maps styles to terminal output.
type Theme struct {
	// Foreground is used for runs without an explicit Fg.
	Foreground lipgloss.Color
	// Background is the color muted text fades toward. Only hex colors are
	// blended; anything else disables blending.
	Background lipgloss.Color
	// Muted is the fallback muted foreground for colors that cannot be
	// desaturated (ANSI palette indices, or no color at all). When empty,
	// muted runs without a hex color render faint.
	Muted lipgloss.Color
	// Desaturate is the fraction of HSL saturation removed from muted
	// colors, in [0, 1].
	Desaturate float64
	// TabWidth is the tab stop distance in cells. 0 means 4.
	TabWidth int
}

const mutedBlend = 0.35

func DefaultTheme() Theme {
	return Theme{
		Muted:      lipgloss.Color("240"),
		Desaturate: 0.8,
		TabWidth:   4,
	}
}

// MutedColor returns the muted variant of fg. An empty fg resolves to the
// theme foreground first.
func (th Theme) MutedColor(fg lipgloss.Color) lipgloss.Color {
	if fg == "" {
		fg = th.Foreground
	}
	c, err := colorful.Hex(string(fg))
	if err != nil {
		return th.Muted
	}

	h, s, l := c.Hsl()
	out := colorful.Hsl(h, s*(1-clamp01(th.Desaturate)), l)
	if bg, err := colorful.Hex(string(th.Background)); err == nil {
		out = out.BlendLab(bg, mutedBlend)
	}
	return lipgloss.Color(out.Clamped().Hex())
}

// Style converts st into a lipgloss style bound to r. A nil renderer uses
// the lipgloss default renderer.
func (th Theme) Style(r *lipgloss.Renderer, st Style) lipgloss.Style {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	ls := r.NewStyle()

	fg := st.Fg
	if fg == "" {
		fg = th.Foreground
	}
	if st.Muted() {
		if m := th.MutedColor(fg); m != "" {
			fg = m
		} else {
			ls = ls.Faint(true)
		}
	}
	if fg != "" {
		ls = ls.Foreground(fg)
	}
	if st.Bg != "" {
		ls = ls.Background(st.Bg)
	}
	if st.Bold {
		ls = ls.Bold(true)
	}
	if st.Italic {
		ls = ls.Italic(true)
	}
	if st.Underline {
		ls = ls.Underline(true)
	}
	if st.Reverse {
		ls = ls.Reverse(true)
	}
	return ls
}

// Render returns t as terminal text. Lines are rendered separately so no
// escape sequence spans a newline, and tabs are expanded to tab stops.
func (th Theme) Render(r *lipgloss.Renderer, t StyledText) string {
	tabWidth := th.TabWidth
	if tabWidth <= 0 {
		tabWidth = 4
	}

	var sb strings.Builder
	var piece strings.Builder
	col := 0
	for _, run := range t.runs {
		ls := th.Style(r, run.Style)
		flush := func() {
			if piece.Len() == 0 {
				return
			}
			sb.WriteString(ls.Render(piece.String()))
			piece.Reset()
		}

		for _, c := range t.text[run.Span.Offset:run.Span.End()] {
			switch c {
			case '\n':
				flush()
				sb.WriteByte('\n')
				col = 0
			case '\t':
				n := tabWidth - col%tabWidth
				piece.WriteString(strings.Repeat(" ", n))
				col += n
			default:
				piece.WriteRune(c)
				col += runewidth.RuneWidth(c)
			}
		}
		flush()
	}
	return sb.String()
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
