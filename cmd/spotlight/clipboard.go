package main

import (
	"github.com/atotto/clipboard"

	"github.com/iw2rmb/spotlight/editor"
)

type systemClipboard struct{}

func (systemClipboard) ReadText() (string, error) { return clipboard.ReadAll() }

func (systemClipboard) WriteText(s string) error { return clipboard.WriteAll(s) }

// newClipboard returns nil when no system clipboard tool is available.
func newClipboard() editor.Clipboard {
	if clipboard.Unsupported {
		return nil
	}
	return systemClipboard{}
}
