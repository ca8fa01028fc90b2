package editor

import (
	"log/slog"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/spotlight/styledtext"
)

// Config configures the editor Model. The zero value is usable.
type Config struct {
	// Initial text for the internal buffer.
	Text string

	ShowLineNums bool
	// Theme turns preview output into terminal text. Zero means
	// styledtext.DefaultTheme().
	Theme styledtext.Theme
	// Style covers the chrome around the text. The zero value is unstyled.
	Style Style
	// Renderer is used for all text styling. Nil uses the lipgloss default.
	Renderer *lipgloss.Renderer

	// KeyMap with no keys bound at all means DefaultKeyMap().
	KeyMap KeyMap
	// Clipboard is optional. Failures are ignored.
	Clipboard Clipboard
	// Highlighter supplies base styles before muting. Optional.
	Highlighter Highlighter

	ReadOnly bool

	// OnChange is called synchronously after every effective change.
	OnChange func(ChangeEvent)

	// Logger receives debug records. Nil discards.
	Logger *slog.Logger
}
