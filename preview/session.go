package preview

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/iw2rmb/spotlight/span"
	"github.com/iw2rmb/spotlight/styledtext"
)

// ErrSpanOutOfRange is returned when a selection does not fit the current
// text.
var ErrSpanOutOfRange = errors.New("preview: span out of range")

// Sink receives rendered previews. Seq increases with every request; a sink
// never receives a result older than one it already got.
//
// Show is called synchronously and must not call the session's mutating
// methods.
type Sink interface {
	Show(out styledtext.StyledText, seq uint64)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(out styledtext.StyledText, seq uint64)

func (f SinkFunc) Show(out styledtext.StyledText, seq uint64) { f(out, seq) }

type SessionConfig struct {
	Renderer Renderer

	// Logger receives debug records about dropped and deferred renders.
	// Nil discards.
	Logger *slog.Logger
}

// Session keeps the current text and selections together and renders a new
// preview whenever either changes.
//
// Until a sink is attached, requests are recorded and the latest one is
// rendered on Attach. Session is safe for concurrent use; renders run
// outside the lock and a result is delivered only if no newer request was
// made while it was computed.
type Session struct {
	renderer Renderer
	log      *slog.Logger

	// deliverMu orders sink calls; it is taken before mu.
	deliverMu sync.Mutex

	mu        sync.Mutex
	text      styledtext.StyledText
	live      []span.Span
	pinned    []span.Span
	seq       uint64
	delivered uint64
	sink      Sink
	pending   bool

	last    styledtext.StyledText
	lastSeq uint64
	hasLast bool
}

func NewSession(cfg SessionConfig) *Session {
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Session{
		renderer: cfg.Renderer,
		log:      log,
	}
}

// Attach sets the display sink. A render requested while no sink was
// attached is performed now.
func (s *Session) Attach(sink Sink) {
	s.mu.Lock()
	s.sink = sink
	flush := s.pending && sink != nil
	s.mu.Unlock()

	if flush {
		s.log.Debug("flushing pending preview")
		s.requestRender()
	}
}

// Detach removes the sink. Later requests stay pending until Attach.
func (s *Session) Detach() {
	s.mu.Lock()
	s.sink = nil
	s.mu.Unlock()
}

// Ready reports whether a sink is attached.
func (s *Session) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sink != nil
}

// SetText replaces the text. Live and pinned selections are carried over
// to the new text.
func (s *Session) SetText(t styledtext.StyledText) {
	s.mu.Lock()
	s.replaceTextLocked(t)
	s.mu.Unlock()

	s.requestRender()
}

// SetSelections replaces the live selections. Each span must lie within the
// current text.
func (s *Session) SetSelections(spans []span.Span) error {
	s.mu.Lock()
	if err := checkSpans(s.text.Len(), spans); err != nil {
		s.mu.Unlock()
		return err
	}
	s.live = append([]span.Span(nil), spans...)
	s.mu.Unlock()

	s.requestRender()
	return nil
}

// Update sets text and live selections together. Selections are measured
// against t. Pinned selections are carried over to t.
func (s *Session) Update(t styledtext.StyledText, spans []span.Span) error {
	if err := checkSpans(t.Len(), spans); err != nil {
		return err
	}

	s.mu.Lock()
	s.replaceTextLocked(t)
	s.live = append([]span.Span(nil), spans...)
	s.mu.Unlock()

	s.requestRender()
	return nil
}

// Pin keeps sp excluded from muting until Unpin, independent of the live
// selections.
func (s *Session) Pin(sp span.Span) error {
	s.mu.Lock()
	if err := checkSpans(s.text.Len(), []span.Span{sp}); err != nil {
		s.mu.Unlock()
		return err
	}
	if sp.IsEmpty() {
		s.mu.Unlock()
		return nil
	}
	s.pinned = append(s.pinned, sp)
	s.mu.Unlock()

	s.requestRender()
	return nil
}

// Unpin drops all pinned selections.
func (s *Session) Unpin() {
	s.mu.Lock()
	had := len(s.pinned) > 0
	s.pinned = nil
	s.mu.Unlock()

	if had {
		s.requestRender()
	}
}

func (s *Session) Pinned() []span.Span {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]span.Span(nil), s.pinned...)
}

func (s *Session) Selections() []span.Span {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]span.Span(nil), s.live...)
}

func (s *Session) Text() styledtext.StyledText {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.text
}

// Last returns the most recently delivered preview and its sequence number.
func (s *Session) Last() (styledtext.StyledText, uint64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last, s.lastSeq, s.hasLast
}

func (s *Session) replaceTextLocked(t styledtext.StyledText) {
	before, after := s.text.String(), t.String()
	if before != after {
		s.live = Remap(before, after, s.live)
		s.pinned = Remap(before, after, s.pinned)
	}
	s.text = t
}

func (s *Session) requestRender() {
	s.mu.Lock()
	s.seq++
	seq := s.seq
	if s.sink == nil {
		s.pending = true
		s.mu.Unlock()
		s.log.Debug("preview deferred until a sink is attached", "seq", seq)
		return
	}
	s.pending = false
	text := s.text
	excluded := make([]span.Span, 0, len(s.live)+len(s.pinned))
	excluded = append(excluded, s.live...)
	excluded = append(excluded, s.pinned...)
	s.mu.Unlock()

	out := s.renderer.Render(text, excluded)

	s.deliverMu.Lock()
	defer s.deliverMu.Unlock()

	s.mu.Lock()
	if seq != s.seq || seq <= s.delivered || s.sink == nil {
		stale := seq != s.seq
		if s.sink == nil {
			s.pending = true
		}
		s.mu.Unlock()
		s.log.Debug("dropping preview", "seq", seq, "stale", stale)
		return
	}
	s.delivered = seq
	s.last, s.lastSeq, s.hasLast = out, seq, true
	sink := s.sink
	s.mu.Unlock()

	sink.Show(out, seq)
}

func checkSpans(n int, spans []span.Span) error {
	limit := span.New(0, n)
	for _, sp := range spans {
		if !limit.Contains(sp) {
			return fmt.Errorf("selection %v in text of length %d: %w", sp, n, ErrSpanOutOfRange)
		}
	}
	return nil
}
