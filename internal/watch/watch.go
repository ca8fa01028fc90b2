// Package watch reports external edits to a single file.
//
// The parent directory is watched rather than the file itself so that
// editors which save by writing a temporary file and renaming it over the
// watched path are still seen.
package watch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ErrClosed is returned by Close on a watcher that is already closed.
var ErrClosed = errors.New("watch: watcher closed")

// Change carries the new content of the watched file.
type Change struct {
	Path string
	Text string
}

type Option func(*Watcher)

// WithDebounce sets how long the file must be quiet before it is read.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d >= 0 {
			w.debounce = d
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(w *Watcher) {
		if l != nil {
			w.log = l
		}
	}
}

// Watcher delivers a Change whenever the file's content differs from the
// last content it saw.
type Watcher struct {
	fsw      *fsnotify.Watcher
	path     string
	debounce time.Duration
	log      *slog.Logger

	events chan Change
	errors chan error

	mu      sync.Mutex
	closed  bool
	closeCh chan struct{}
	wg      sync.WaitGroup

	last string
}

// New starts watching path. The watcher stops when ctx is done or Close is
// called; both close the Events and Errors channels.
func New(ctx context.Context, path string, opts ...Option) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", abs, err)
	}

	w := &Watcher{
		fsw:      fsw,
		path:     abs,
		debounce: 50 * time.Millisecond,
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		events:   make(chan Change, 1),
		errors:   make(chan error, 1),
		closeCh:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	if data, err := os.ReadFile(abs); err == nil {
		w.last = string(data)
	}

	w.wg.Add(1)
	go w.loop(ctx)
	return w, nil
}

func (w *Watcher) Path() string { return w.path }

func (w *Watcher) Events() <-chan Change { return w.events }

func (w *Watcher) Errors() <-chan error { return w.errors }

// Close stops the watcher and waits for its goroutine to exit.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return ErrClosed
	}
	w.closed = true
	close(w.closeCh)
	w.mu.Unlock()

	w.wg.Wait()
	return w.fsw.Close()
}

func (w *Watcher) loop(ctx context.Context) {
	defer w.wg.Done()
	defer close(w.events)
	defer close(w.errors)

	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-w.closeCh:
			return
		case <-ctx.Done():
			go w.Close()
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path || !ev.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				continue
			}
			w.log.Debug("file event", "path", ev.Name, "op", ev.Op.String())
			timer.Reset(w.debounce)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.sendError(err)
		case <-timer.C:
			w.readAndSend(ctx)
		}
	}
}

func (w *Watcher) readAndSend(ctx context.Context) {
	data, err := os.ReadFile(w.path)
	if err != nil {
		// A rename-over-save can leave a short window with no file.
		if !errors.Is(err, os.ErrNotExist) {
			w.sendError(err)
		}
		return
	}
	text := string(data)
	if text == w.last {
		return
	}
	w.last = text
	select {
	case w.events <- Change{Path: w.path, Text: text}:
	case <-w.closeCh:
	case <-ctx.Done():
	}
}

func (w *Watcher) sendError(err error) {
	select {
	case w.errors <- err:
	default:
		w.log.Warn("dropping watch error", "err", err)
	}
}
