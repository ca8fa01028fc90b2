package editor

import (
	"github.com/iw2rmb/spotlight/buffer"
	"github.com/iw2rmb/spotlight/span"
)

// ChangeEvent reports the editor state after an effective change.
type ChangeEvent struct {
	Version uint64
	Cursor  buffer.Pos
	// Selections are the live selection spans fed to the preview, in runes.
	Selections []span.Span
	// Pinned are the pinned spans after remapping through the change.
	Pinned []span.Span
	Text   string
}

func (m Model) buildChangeEvent() ChangeEvent {
	return ChangeEvent{
		Version:    m.buf.Version(),
		Cursor:     m.buf.Cursor(),
		Selections: m.buf.SelectionSpans(),
		Pinned:     m.session.Pinned(),
		Text:       m.buf.Text(),
	}
}
