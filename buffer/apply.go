package buffer

// Apply runs edits in order as one change. Each edit's range is read against
// the document as left by the edits before it and is clamped into bounds.
// The cursor ends after the last effective edit and the selection is
// cleared. Edits that change nothing are skipped.
func (b *Buffer) Apply(edits ...TextEdit) {
	change := b.beginChange(ChangeSourceLocal)
	cursor := b.cursor
	changed := false
	for _, e := range edits {
		next, applied, ok := b.replaceRange(e.Range, e.Text)
		if !ok {
			continue
		}
		changed = true
		cursor = next
		change.addAppliedEdit(applied)
	}
	if !changed {
		return
	}
	b.cursor = b.clampPos(cursor)
	b.sel = selectionState{}
	b.version++
	b.textVersion++
	b.commitChange(change)
}
