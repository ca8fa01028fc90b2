package editor

import (
	"errors"
	"testing"

	"github.com/iw2rmb/spotlight/buffer"
	"github.com/iw2rmb/spotlight/styledtext"
)

func TestHighlighting_StylesSurviveMuting(t *testing.T) {
	var rows []int
	m := New(Config{
		Text: "let x\nx = 1",
		Highlighter: HighlighterFunc(func(ctx LineContext) ([]HighlightSpan, error) {
			rows = append(rows, ctx.Row)
			if ctx.Text == "let x" {
				return []HighlightSpan{{StartCol: 0, EndCol: 3, Style: styledtext.Style{Bold: true}}}, nil
			}
			return nil, nil
		}),
	})
	m = m.SetSize(20, 2)
	if len(rows) != 2 {
		t.Fatalf("highlighter rows: got %v, want one call per row", rows)
	}

	m.buf.SetSelection(buffer.Range{Start: buffer.Pos{Col: 2}, End: buffer.Pos{Col: 5}})
	m, _ = m.Update(nil)

	last, _, _ := m.Session().Last()
	cases := []struct {
		i           int
		bold, muted bool
	}{
		{i: 0, bold: true, muted: true},
		{i: 2, bold: true, muted: false},
		{i: 3, bold: false, muted: false},
		{i: 6, bold: false, muted: true},
	}
	for _, tc := range cases {
		st := last.StyleAt(tc.i)
		if st.Bold != tc.bold || st.Muted() != tc.muted {
			t.Fatalf("index %d: got %+v, want bold=%v muted=%v", tc.i, st, tc.bold, tc.muted)
		}
	}
}

func TestHighlighting_ErrorFallsBackToPlainText(t *testing.T) {
	m := New(Config{
		Text: "abcd",
		Highlighter: HighlighterFunc(func(ctx LineContext) ([]HighlightSpan, error) {
			return []HighlightSpan{{StartCol: 1, EndCol: 3, Style: styledtext.Style{Underline: true}}}, errors.New("boom")
		}),
	})
	src := m.sourceText()
	for i := 0; i < src.Len(); i++ {
		if src.StyleAt(i).Underline {
			t.Fatalf("index %d kept a style from a failed highlighter", i)
		}
	}
}

func TestHighlighting_ClampsSpans(t *testing.T) {
	m := New(Config{
		Text: "ab",
		Highlighter: HighlighterFunc(func(ctx LineContext) ([]HighlightSpan, error) {
			return []HighlightSpan{{StartCol: -4, EndCol: 99, Style: styledtext.Style{Italic: true}}}, nil
		}),
	})
	src := m.sourceText()
	if !src.StyleAt(0).Italic || !src.StyleAt(1).Italic || src.String() != "ab" {
		t.Fatalf("clamped highlight: got %v", src.Runs())
	}
}
