// Package editor provides a Bubble Tea text editor that previews the
// current selection: text outside the selected (and pinned) ranges is shown
// muted, text inside keeps its normal style.
//
// The model owns a buffer.Buffer for editing and a preview.Session for
// rendering. Every text or selection change is fed to the session, and the
// session's output is what the viewport shows.
package editor
