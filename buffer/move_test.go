package buffer

import "testing"

func TestMove_GraphemeSkipsClusters(t *testing.T) {
	b := New("ae\u0301b\nxy")

	var got []Pos
	for i := 0; i < 5; i++ {
		b.Move(Move{Unit: MoveGrapheme, Dir: DirRight})
		got = append(got, b.Cursor())
	}
	want := []Pos{{Col: 1}, {Col: 3}, {Col: 4}, {Row: 1, Col: 0}, {Row: 1, Col: 1}}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("step %d: got %v, want %v", i, got[i], want[i])
		}
	}

	b.SetCursor(Pos{Row: 0, Col: 3})
	b.Move(Move{Unit: MoveGrapheme, Dir: DirLeft})
	if got := b.Cursor(); got != (Pos{Col: 1}) {
		t.Fatalf("left over cluster: got %v, want 0:1", got)
	}
}

func TestMove_VerticalSnapsToClusterStart(t *testing.T) {
	b := New("ae\u0301b\nwxyz")
	b.SetCursor(Pos{Row: 1, Col: 2})

	b.Move(Move{Unit: MoveLine, Dir: DirUp})
	if got := b.Cursor(); got != (Pos{Row: 0, Col: 1}) {
		t.Fatalf("up: got %v, want 0:1", got)
	}
	b.Move(Move{Unit: MoveLine, Dir: DirUp})
	if got := b.Cursor(); got != (Pos{Row: 0, Col: 1}) {
		t.Fatalf("up at first row moved to %v", got)
	}
}

func TestMove_WordBoundaries(t *testing.T) {
	b := New("foo, bar")
	var stops []int
	for i := 0; i < 4; i++ {
		b.Move(Move{Unit: MoveWord, Dir: DirRight})
		stops = append(stops, b.Cursor().Col)
	}
	if want := []int{3, 4, 8, 8}; !equalCols(stops, want) {
		t.Fatalf("right stops: got %v, want %v", stops, want)
	}

	stops = stops[:0]
	for i := 0; i < 3; i++ {
		b.Move(Move{Unit: MoveWord, Dir: DirLeft})
		stops = append(stops, b.Cursor().Col)
	}
	if want := []int{5, 3, 0}; !equalCols(stops, want) {
		t.Fatalf("left stops: got %v, want %v", stops, want)
	}
}

func equalCols(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestMove_ExtendKeepsAnchor(t *testing.T) {
	b := New("hello\nworld")
	b.SetCursor(Pos{Col: 2})

	b.Move(Move{Unit: MoveGrapheme, Dir: DirRight, Extend: true})
	b.Move(Move{Unit: MoveLine, Dir: DirDown, Extend: true})
	r, ok := b.Selection()
	if !ok {
		t.Fatalf("expected selection")
	}
	if want := (Range{Start: Pos{Col: 2}, End: Pos{Row: 1, Col: 3}}); r != want {
		t.Fatalf("selection: got %v, want %v", r, want)
	}

	b.Move(Move{Unit: MoveDoc, Dir: DirHome, Extend: true})
	r, _ = b.Selection()
	if want := (Range{Start: Pos{}, End: Pos{Col: 2}}); r != want {
		t.Fatalf("selection after doc home: got %v, want %v", r, want)
	}

	b.Move(Move{Unit: MoveDoc, Dir: DirEnd})
	if _, ok := b.Selection(); ok {
		t.Fatalf("plain move should clear selection")
	}
	if got := b.Cursor(); got != (Pos{Row: 1, Col: 5}) {
		t.Fatalf("doc end: got %v, want 1:5", got)
	}
}

func TestMove_NoOpDoesNotBumpVersion(t *testing.T) {
	b := New("ab")
	b.Move(Move{Unit: MoveGrapheme, Dir: DirLeft})
	b.Move(Move{Unit: MoveLine, Dir: DirHome})
	if b.Version() != 0 {
		t.Fatalf("version: got %d, want 0", b.Version())
	}
}
