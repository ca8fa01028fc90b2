package editor

import (
	"fmt"
	"strings"
	"testing"

	"github.com/muesli/termenv"

	"github.com/iw2rmb/spotlight/buffer"
	"github.com/iw2rmb/spotlight/styledtext"
)

var (
	normal = styledtext.Style{}
	muted  = styledtext.Style{Emphasis: styledtext.EmphasisMuted}
)

func colorTheme() styledtext.Theme {
	return styledtext.Theme{
		Foreground: "#ff5500",
		Background: "#101010",
		Desaturate: 1,
		TabWidth:   4,
	}
}

func TestRender_SelectionShowsUnselectedTextMuted(t *testing.T) {
	r := testRenderer(termenv.TrueColor)
	th := colorTheme()
	m := New(Config{Text: "HELLO", Theme: th, Renderer: r})
	m = m.Blur()
	m = m.SetSize(10, 1)

	m.Buffer().SetSelection(buffer.Range{Start: buffer.Pos{Col: 1}, End: buffer.Pos{Col: 3}})
	m, _ = m.Update(nil)

	got := m.renderContent()
	want := th.Style(r, muted).Render("H") + th.Style(r, normal).Render("EL") + th.Style(r, muted).Render("LO")
	if got != want {
		t.Fatalf("unexpected render:\n got: %q\nwant: %q", got, want)
	}
	if th.Style(r, muted).Render("H") == th.Style(r, normal).Render("H") {
		t.Fatalf("muted and normal styles render identically")
	}
}

func TestRender_CursorReversesCluster(t *testing.T) {
	r := testRenderer(termenv.TrueColor)
	th := colorTheme()
	m := New(Config{Text: "éb", Theme: th, Renderer: r})
	m = m.SetSize(10, 1)

	got := m.renderContent()
	want := th.Style(r, styledtext.Style{Emphasis: styledtext.EmphasisMuted, Reverse: true}).Render("é") +
		th.Style(r, muted).Render("b")
	if got != want {
		t.Fatalf("unexpected cursor render:\n got: %q\nwant: %q", got, want)
	}
}

func TestRender_CursorAtLineEnd(t *testing.T) {
	r := testRenderer(termenv.TrueColor)
	th := colorTheme()
	m := New(Config{Text: "ab\ncd", Theme: th, Renderer: r})
	m = m.SetSize(10, 2)
	m.Buffer().SetCursor(buffer.Pos{Row: 0, Col: 2})
	m, _ = m.Update(nil)

	lines := strings.Split(m.renderContent(), "\n")
	want := th.Style(r, muted).Render("ab") + th.Style(r, cursorStyle).Render(" ")
	if lines[0] != want {
		t.Fatalf("line 0:\n got: %q\nwant: %q", lines[0], want)
	}
	if lines[1] != th.Style(r, muted).Render("cd") {
		t.Fatalf("line 1 should have no cursor: %q", lines[1])
	}
}

func TestRender_LineNumberAlignment_1To120(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 120; i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString("x")
	}

	m := New(Config{Text: sb.String(), ShowLineNums: true, Renderer: testRenderer(termenv.Ascii)})
	m = m.Blur()
	m = m.SetSize(10, 120)

	lines := strings.Split(m.View(), "\n")
	if len(lines) != 120 {
		t.Fatalf("expected 120 lines, got %d", len(lines))
	}
	for i, line := range lines {
		wantPrefix := fmt.Sprintf("%*d x", 3, i+1)
		if !strings.HasPrefix(line, wantPrefix) {
			t.Fatalf("line %d prefix: got %q, want prefix %q", i+1, line, wantPrefix)
		}
	}
}

func TestRender_TabsExpanded(t *testing.T) {
	m := New(Config{Text: "a\tb", Renderer: testRenderer(termenv.Ascii)})
	m = m.Blur()
	m = m.SetSize(20, 1)
	if got := m.renderContent(); got != "a   b" {
		t.Fatalf("tab expansion: got %q, want %q", got, "a   b")
	}
}
