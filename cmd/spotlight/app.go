package main

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/spotlight/editor"
	"github.com/iw2rmb/spotlight/internal/config"
)

type appKeys struct {
	editor.KeyMap
	Quit key.Binding
}

func (k appKeys) ShortHelp() []key.Binding {
	return append(k.KeyMap.ShortHelp(), k.Quit)
}

func (k appKeys) FullHelp() [][]key.Binding {
	return append(k.KeyMap.FullHelp(), []key.Binding{k.Quit})
}

type app struct {
	editor editor.Model
	keys   appKeys
	help   help.Model
}

func newApp(cfg config.Config, r *lipgloss.Renderer, log *slog.Logger, text string) app {
	km := editor.DefaultKeyMap()
	ed := editor.New(editor.Config{
		Text:         text,
		ShowLineNums: cfg.ShowLineNumbers,
		Theme:        cfg.StyledTheme(),
		Style:        editor.DefaultStyle(),
		Renderer:     r,
		KeyMap:       km,
		Clipboard:    newClipboard(),
		Logger:       log,
	})
	return app{
		editor: ed,
		keys: appKeys{
			KeyMap: km,
			Quit:   key.NewBinding(key.WithKeys("esc", "ctrl+q"), key.WithHelp("esc", "quit")),
		},
		help: help.New(),
	}
}

func (a app) Init() tea.Cmd { return a.editor.Init() }

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.help.Width = msg.Width
		a.editor = a.editor.SetSize(msg.Width, max(msg.Height-1, 0))
		return a, nil
	case tea.KeyMsg:
		if key.Matches(msg, a.keys.Quit) {
			return a, tea.Quit
		}
	}

	var cmd tea.Cmd
	a.editor, cmd = a.editor.Update(msg)
	return a, cmd
}

func (a app) View() string {
	return lipgloss.JoinVertical(lipgloss.Left, a.editor.View(), a.help.View(a.keys))
}
