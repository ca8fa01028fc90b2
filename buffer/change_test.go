package buffer

import "testing"

func TestLastChange_RecordsLocalEdit(t *testing.T) {
	b := New("abc")
	if _, ok := b.LastChange(); ok {
		t.Fatalf("fresh buffer should have no change")
	}

	b.SetSelection(Range{Start: Pos{Col: 1}, End: Pos{Col: 2}})
	b.InsertText("XY")

	ch, ok := b.LastChange()
	if !ok {
		t.Fatalf("expected change")
	}
	if ch.Source != ChangeSourceLocal {
		t.Fatalf("source: got %v, want local", ch.Source)
	}
	if ch.VersionAfter != b.Version() || ch.VersionBefore >= ch.VersionAfter {
		t.Fatalf("versions: got %d -> %d, buffer at %d", ch.VersionBefore, ch.VersionAfter, b.Version())
	}
	if !ch.SelectionBefore.Active || ch.SelectionAfter.Active {
		t.Fatalf("selection states: before %+v after %+v", ch.SelectionBefore, ch.SelectionAfter)
	}
	if len(ch.AppliedEdits) != 1 {
		t.Fatalf("edits: got %d, want 1", len(ch.AppliedEdits))
	}
	e := ch.AppliedEdits[0]
	if e.DeletedText != "b" || e.InsertText != "XY" {
		t.Fatalf("edit text: got %q -> %q", e.DeletedText, e.InsertText)
	}
	if e.RangeAfter != (Range{Start: Pos{Col: 1}, End: Pos{Col: 3}}) {
		t.Fatalf("range after: got %v", e.RangeAfter)
	}
	if ch.CursorAfter != (Pos{Col: 3}) {
		t.Fatalf("cursor after: got %v", ch.CursorAfter)
	}
}

func TestLastChange_IgnoresNonTextMutations(t *testing.T) {
	b := New("abc")
	b.InsertText("x")
	first, _ := b.LastChange()

	b.SetCursor(Pos{Col: 3})
	b.SetSelection(Range{End: Pos{Col: 1}})
	got, _ := b.LastChange()
	if got.VersionAfter != first.VersionAfter {
		t.Fatalf("cursor and selection changes replaced the last change")
	}
}

func TestLastChange_ReturnsCopy(t *testing.T) {
	b := New("abc")
	b.InsertText("x")
	ch, _ := b.LastChange()
	ch.AppliedEdits[0].InsertText = "mutated"

	again, _ := b.LastChange()
	if again.AppliedEdits[0].InsertText != "x" {
		t.Fatalf("LastChange leaked internal state")
	}
}

func TestChangeSourceString(t *testing.T) {
	if ChangeSourceReload.String() != "reload" || ChangeSource(9).String() != "unknown" {
		t.Fatalf("unexpected strings: %v %v", ChangeSourceReload, ChangeSource(9))
	}
}
