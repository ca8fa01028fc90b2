package editor

// Clipboard is the editor's clipboard integration. Errors never reach the
// UI; a failed read pastes nothing and a failed write is dropped.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}
