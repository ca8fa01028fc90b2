package editor

import (
	"io"
	"log/slog"
	"slices"
	"sync"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/spotlight/buffer"
	"github.com/iw2rmb/spotlight/preview"
	"github.com/iw2rmb/spotlight/span"
	"github.com/iw2rmb/spotlight/styledtext"
)

// frame is the session sink. It is shared by every copy of a Model.
type frame struct {
	mu  sync.Mutex
	out styledtext.StyledText
	seq uint64
	ok  bool
}

func (f *frame) Show(out styledtext.StyledText, seq uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.out, f.seq, f.ok = out, seq, true
}

func (f *frame) get() (styledtext.StyledText, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.out, f.ok
}

// Model is a Bubble Tea component that edits a buffer and shows the
// selection preview of its text.
type Model struct {
	cfg      Config
	buf      *buffer.Buffer
	session  *preview.Session
	frame    *frame
	log      *slog.Logger
	renderer *lipgloss.Renderer

	focused  bool
	attached bool

	viewport viewport.Model

	lastVersion     uint64
	lastTextVersion uint64
	lastSpans       []span.Span
}

func New(cfg Config) Model {
	if cfg.Theme == (styledtext.Theme{}) {
		cfg.Theme = styledtext.DefaultTheme()
	}
	if cfg.KeyMap.isEmpty() {
		cfg.KeyMap = DefaultKeyMap()
	}
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	r := cfg.Renderer
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	m := Model{
		cfg:      cfg,
		buf:      buffer.New(cfg.Text),
		session:  preview.NewSession(preview.SessionConfig{Logger: log}),
		frame:    &frame{},
		log:      log,
		renderer: r,
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.lastVersion = m.buf.Version()
	m.lastTextVersion = m.buf.TextVersion()
	// Stays pending until SetSize attaches the view.
	m.session.SetText(m.sourceText())
	return m
}

func (m Model) Buffer() *buffer.Buffer { return m.buf }

func (m Model) Session() *preview.Session { return m.session }

func (m Model) Init() tea.Cmd { return nil }

// SetSize resizes the view. The first non-zero size attaches the preview
// session, which delivers any render requested before then. A zero size
// detaches it again.
func (m Model) SetSize(width, height int) Model {
	m.viewport.Width = max(width, 0)
	m.viewport.Height = max(height, 0)

	visible := m.viewport.Width > 0 && m.viewport.Height > 0
	switch {
	case visible && !m.attached:
		m.session.Attach(m.frame)
		m.attached = true
		m.log.Debug("preview attached", "width", width, "height", height)
	case !visible && m.attached:
		m.session.Detach()
		m.attached = false
	}

	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
		m.followCursor()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

// SetText replaces the document, keeping pinned selections aligned with the
// text they covered.
func (m Model) SetText(text string) Model {
	m.buf.SetText(text)
	m.syncFromBuffer()
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case ReloadMsg:
		return m.SetText(msg.Text), nil
	case tea.KeyMsg:
		m = m.updateKey(msg)
		m.syncFromBuffer()
		return m, nil
	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		m.syncFromBuffer()
		return m, cmd
	default:
		// The host may have mutated the buffer directly.
		m.syncFromBuffer()
		return m, nil
	}
}

func (m Model) View() string { return m.viewport.View() }

// syncFromBuffer feeds buffer changes to the session and redraws.
func (m *Model) syncFromBuffer() bool {
	ver := m.buf.Version()
	if ver == m.lastVersion {
		return false
	}
	m.lastVersion = ver

	spans := m.buf.SelectionSpans()
	if tv := m.buf.TextVersion(); tv != m.lastTextVersion {
		m.lastTextVersion = tv
		if err := m.session.Update(m.sourceText(), spans); err != nil {
			m.log.Error("preview update rejected", "err", err)
		}
	} else if !slices.Equal(spans, m.lastSpans) {
		if err := m.session.SetSelections(spans); err != nil {
			m.log.Error("preview selection rejected", "err", err)
		}
	}
	m.lastSpans = spans

	m.rebuildContent()
	m.followCursor()
	m.notify()
	return true
}

func (m *Model) notify() {
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(m.buildChangeEvent())
	}
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

func (m *Model) followCursor() {
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}
	row := m.buf.Cursor().Row
	switch y := m.viewport.YOffset; {
	case row < y:
		m.viewport.SetYOffset(row)
	case row >= y+h:
		m.viewport.SetYOffset(row - h + 1)
	}
}
