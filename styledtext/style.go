package styledtext

import "github.com/charmbracelet/lipgloss"

// Emphasis is the de-emphasis attribute the preview pipeline controls.
type Emphasis uint8

const (
	EmphasisNormal Emphasis = iota
	EmphasisMuted
)

func (e Emphasis) String() string {
	switch e {
	case EmphasisNormal:
		return "normal"
	case EmphasisMuted:
		return "muted"
	default:
		return "unknown"
	}
}

// Style is the attribute record attached to a run of text.
//
// Empty colors mean "use the theme default". Style is comparable; two runs
// with equal styles are merged.
type Style struct {
	Fg lipgloss.Color
	Bg lipgloss.Color

	Bold      bool
	Italic    bool
	Underline bool
	Reverse   bool

	Emphasis Emphasis
}

func (s Style) Muted() bool { return s.Emphasis == EmphasisMuted }

func (s Style) WithEmphasis(e Emphasis) Style {
	s.Emphasis = e
	return s
}

// Mute returns s with muted emphasis. Other attributes are kept.
func Mute(s Style) Style { return s.WithEmphasis(EmphasisMuted) }
