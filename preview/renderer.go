package preview

import (
	"github.com/iw2rmb/spotlight/span"
	"github.com/iw2rmb/spotlight/styledtext"
)

// Renderer produces the de-emphasized variant of a styled text.
// The zero value mutes by setting styledtext.EmphasisMuted.
type Renderer struct {
	// Mute transforms the style of positions outside every excluded span.
	// It must be a pure function of its argument.
	Mute func(styledtext.Style) styledtext.Style
}

// Render returns source with every position outside excluded muted.
//
// Each excluded span must lie within [0, source.Len()]; anything else is a
// caller bug and panics. No exclusions mute the whole text, and exclusions
// covering the whole text return a value equal to source.
func (r Renderer) Render(source styledtext.StyledText, excluded []span.Span) styledtext.StyledText {
	toMute := span.Complement(span.New(0, source.Len()), excluded)
	return source.Restyle(toMute, r.mute())
}

func (r Renderer) mute() func(styledtext.Style) styledtext.Style {
	if r.Mute != nil {
		return r.Mute
	}
	return styledtext.Mute
}

// Render uses the zero Renderer.
func Render(source styledtext.StyledText, excluded []span.Span) styledtext.StyledText {
	return Renderer{}.Render(source, excluded)
}
