// Command spotlight shows a text file with everything outside the current
// selection de-emphasized.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/iw2rmb/spotlight"
	"github.com/iw2rmb/spotlight/editor"
	"github.com/iw2rmb/spotlight/internal/config"
	"github.com/iw2rmb/spotlight/internal/watch"
	"github.com/iw2rmb/spotlight/preview"
	"github.com/iw2rmb/spotlight/span"
	"github.com/iw2rmb/spotlight/styledtext"
)

const welcome = "Welcome to spotlight.\n\n" +
	"Select text with shift+arrows and everything else fades.\n" +
	"ctrl+p pins the selection, ctrl+u clears pins.\n" +
	"esc quits."

type options struct {
	configPath string
	watch      bool
	plain      bool
	selections []span.Span
	logLevel   slog.Level
	logFile    string
	version    bool
	file       string
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "spotlight: %v\n", err)
		os.Exit(1)
	}
}

func parseOptions(args []string, stderr io.Writer) (options, error) {
	var opts options
	var sel, level string

	fs := flag.NewFlagSet("spotlight", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "Path to the TOML config file")
	fs.BoolVar(&opts.watch, "watch", false, "Reload the file when it changes on disk")
	fs.BoolVar(&opts.plain, "plain", false, "Print one render to stdout and exit")
	fs.StringVar(&sel, "select", "", "Spans kept unmuted with -plain, as offset:length,...")
	fs.StringVar(&level, "log-level", "info", "Log level (debug, info, warn, error)")
	fs.StringVar(&opts.logFile, "log-file", "", "Write logs to this file")
	fs.BoolVar(&opts.version, "version", false, "Print the version and exit")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: spotlight [flags] [file]\n\nFlags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if err := opts.logLevel.UnmarshalText([]byte(level)); err != nil {
		return options{}, fmt.Errorf("invalid -log-level %q", level)
	}
	spans, err := parseSpans(sel)
	if err != nil {
		return options{}, err
	}
	opts.selections = spans

	switch fs.NArg() {
	case 0:
	case 1:
		opts.file = fs.Arg(0)
	default:
		return options{}, errors.New("at most one file may be given")
	}
	if opts.watch && opts.file == "" {
		return options{}, errors.New("-watch needs a file")
	}
	return opts, nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	opts, err := parseOptions(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	if opts.version {
		fmt.Fprintf(stdout, "spotlight %s\n", spotlight.Version())
		return nil
	}

	log, closeLog, err := newLogger(opts.logFile, opts.logLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	path := opts.configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path, ".env")
	if err != nil {
		return err
	}
	log.Debug("config loaded", "path", path, "no_color", cfg.NoColor)

	r := lipgloss.NewRenderer(stdout)
	if cfg.NoColor {
		r.SetColorProfile(termenv.Ascii)
	}

	if opts.plain {
		text, err := readInput(opts.file, stdin)
		if err != nil {
			return err
		}
		return renderPlain(stdout, r, cfg.StyledTheme(), text, opts.selections)
	}

	text := welcome
	if opts.file != "" {
		data, err := os.ReadFile(opts.file)
		if err != nil {
			return err
		}
		text = string(data)
	}
	return runInteractive(opts, cfg, r, log, text)
}

func runInteractive(opts options, cfg config.Config, r *lipgloss.Renderer, log *slog.Logger, text string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p := tea.NewProgram(newApp(cfg, r, log, text), tea.WithAltScreen(), tea.WithMouseCellMotion())

	if opts.watch {
		w, err := watch.New(ctx, opts.file, watch.WithLogger(log))
		if err != nil {
			return err
		}
		defer w.Close()
		go func() {
			for c := range w.Events() {
				log.Info("file changed", "path", c.Path)
				p.Send(editor.ReloadMsg{Text: c.Text})
			}
		}()
		go func() {
			for err := range w.Errors() {
				log.Error("watch", "err", err)
			}
		}()
	}

	_, err := p.Run()
	return err
}

func readInput(file string, stdin io.Reader) (string, error) {
	if file == "" {
		data, err := io.ReadAll(stdin)
		return string(data), err
	}
	data, err := os.ReadFile(file)
	return string(data), err
}

// renderPlain writes one render of text with sel unmuted.
func renderPlain(w io.Writer, r *lipgloss.Renderer, th styledtext.Theme, text string, sel []span.Span) error {
	src := styledtext.New(text, styledtext.Style{})
	limit := span.New(0, src.Len())
	for _, sp := range sel {
		if !limit.Contains(sp) {
			return fmt.Errorf("selection %s is outside the text (%d runes)", sp, src.Len())
		}
	}
	out := th.Render(r, preview.Render(src, sel))
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	_, err := io.WriteString(w, out)
	return err
}

// newLogger logs to path, or nowhere when path is empty. The terminal
// belongs to the UI.
func newLogger(path string, level slog.Level) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	log := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return log, func() { _ = f.Close() }, nil
}
