package buffer

// ChangeSource says what produced a change.
type ChangeSource uint8

const (
	// ChangeSourceLocal is an edit made through the buffer's edit methods.
	ChangeSourceLocal ChangeSource = iota
	// ChangeSourceReload is a whole-document replacement via SetText.
	ChangeSourceReload
)

func (s ChangeSource) String() string {
	switch s {
	case ChangeSourceLocal:
		return "local"
	case ChangeSourceReload:
		return "reload"
	default:
		return "unknown"
	}
}

// SelectionState is a normalized selection snapshot.
type SelectionState struct {
	Active bool
	Range  Range
}

// AppliedEdit is one effective edit inside a Change.
type AppliedEdit struct {
	RangeBefore Range
	RangeAfter  Range
	InsertText  string
	DeletedText string
}

// Change describes the most recent text mutation.
type Change struct {
	Source          ChangeSource
	VersionBefore   uint64
	VersionAfter    uint64
	CursorBefore    Pos
	CursorAfter     Pos
	SelectionBefore SelectionState
	SelectionAfter  SelectionState
	AppliedEdits    []AppliedEdit
}

// LastChange returns the most recent text change, if any happened.
func (b *Buffer) LastChange() (Change, bool) {
	if !b.hasLastChange {
		return Change{}, false
	}
	out := b.lastChange
	out.AppliedEdits = append([]AppliedEdit(nil), b.lastChange.AppliedEdits...)
	return out, true
}

type changeBuilder struct {
	source          ChangeSource
	versionBefore   uint64
	cursorBefore    Pos
	selectionBefore SelectionState
	edits           []AppliedEdit
}

func (b *Buffer) selectionState() SelectionState {
	r, ok := b.Selection()
	if !ok {
		return SelectionState{}
	}
	return SelectionState{Active: true, Range: r}
}

func (b *Buffer) beginChange(source ChangeSource) changeBuilder {
	return changeBuilder{
		source:          source,
		versionBefore:   b.version,
		cursorBefore:    b.cursor,
		selectionBefore: b.selectionState(),
	}
}

func (cb *changeBuilder) addAppliedEdit(e AppliedEdit) {
	e.RangeBefore = NormalizeRange(e.RangeBefore)
	e.RangeAfter = NormalizeRange(e.RangeAfter)
	cb.edits = append(cb.edits, e)
}

// commitChange records cb if the version moved since beginChange.
func (b *Buffer) commitChange(cb changeBuilder) {
	if b.version == cb.versionBefore {
		return
	}
	b.lastChange = Change{
		Source:          cb.source,
		VersionBefore:   cb.versionBefore,
		VersionAfter:    b.version,
		CursorBefore:    cb.cursorBefore,
		CursorAfter:     b.cursor,
		SelectionBefore: cb.selectionBefore,
		SelectionAfter:  b.selectionState(),
		AppliedEdits:    cb.edits,
	}
	b.hasLastChange = true
}
