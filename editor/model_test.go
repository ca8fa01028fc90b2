package editor

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func testRenderer(p termenv.Profile) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(p)
	r.SetHasDarkBackground(true)
	return r
}

func TestModel_SetSizeAffectsViewHeight(t *testing.T) {
	m := New(Config{Text: "a\nb\nc", Renderer: testRenderer(termenv.Ascii)})
	m = m.Blur()

	m = m.SetSize(20, 2)
	if got := lipgloss.Height(m.View()); got != 2 {
		t.Fatalf("height after SetSize(20,2): got %d, want %d", got, 2)
	}

	m = m.SetSize(20, 4)
	if got := lipgloss.Height(m.View()); got != 4 {
		t.Fatalf("height after SetSize(20,4): got %d, want %d", got, 4)
	}
}

func TestView_SnapshotFixedSize(t *testing.T) {
	m := New(Config{
		Text:         "one\ntwo\nthree\nfour\nfive",
		ShowLineNums: true,
		Renderer:     testRenderer(termenv.Ascii),
	})
	m = m.Blur()
	m = m.SetSize(8, 3)

	got := strings.Split(m.View(), "\n")
	if len(got) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(got))
	}
	for i := range got {
		got[i] = strings.TrimRight(got[i], " ")
	}
	want := []string{"1 one", "2 two", "3 three"}
	if fmt.Sprintf("%q", got) != fmt.Sprintf("%q", want) {
		t.Fatalf("unexpected view:\n got: %q\nwant: %q", got, want)
	}
}

func TestModel_PreviewPendingUntilSized(t *testing.T) {
	m := New(Config{Text: "hello", Renderer: testRenderer(termenv.Ascii)})

	if got := m.renderContent(); got != "" {
		t.Fatalf("content before SetSize: got %q, want empty", got)
	}
	if _, _, ok := m.Session().Last(); ok {
		t.Fatalf("preview delivered before the view had a size")
	}

	m = m.SetSize(10, 1)
	last, _, ok := m.Session().Last()
	if !ok {
		t.Fatalf("expected preview after SetSize")
	}
	if last.String() != "hello" {
		t.Fatalf("preview text: got %q, want %q", last.String(), "hello")
	}
	for i := 0; i < last.Len(); i++ {
		if !last.StyleAt(i).Muted() {
			t.Fatalf("index %d not muted without a selection", i)
		}
	}
}

func TestModel_ZeroSizeDetaches(t *testing.T) {
	m := New(Config{Text: "x"})
	m = m.SetSize(5, 1)
	if !m.Session().Ready() {
		t.Fatalf("expected session attached")
	}
	m = m.SetSize(0, 0)
	if m.Session().Ready() {
		t.Fatalf("expected session detached at zero size")
	}
}

func TestModel_EditsBeforeAttachAreDelivered(t *testing.T) {
	m := New(Config{Text: "abc"})
	m.Buffer().InsertText("X")
	m, _ = m.Update(nil)

	m = m.SetSize(10, 1)
	last, _, ok := m.Session().Last()
	if !ok || last.String() != "Xabc" {
		t.Fatalf("preview after attach: got %q (ok=%v)", last.String(), ok)
	}
}
