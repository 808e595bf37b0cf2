// Package console writes nmclean's user-facing output.
//
// Informational lines go to stdout and disappear in quiet mode; diagnostics
// go to stderr and only when debug output was asked for. Colors are applied
// only when the destination is a terminal, so piped output stays plain text.
package console

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"nmclean/internal/config"
)

// Tone selects the color a fragment is painted with on a terminal.
type Tone int

const (
	ToneAccent Tone = iota
	ToneDanger
	ToneSuccess
	ToneWarn
	ToneMuted
)

var palette = map[Tone]lipgloss.AdaptiveColor{
	ToneAccent:  {Light: "#0891b2", Dark: "#22d3ee"},
	ToneDanger:  {Light: "#dc2626", Dark: "#f87171"},
	ToneSuccess: {Light: "#16a34a", Dark: "#4ade80"},
	ToneWarn:    {Light: "#ca8a04", Dark: "#facc15"},
	ToneMuted:   {Light: "#6b7280", Dark: "#9ca3af"},
}

// Logger is a small leveled printer bound to a pair of writers.
type Logger struct {
	out   io.Writer
	err   io.Writer
	debug bool

	// nil when the writer is not a terminal
	outRenderer *lipgloss.Renderer
	errRenderer *lipgloss.Renderer
}

// New creates a Logger writing informational output to stdout and
// diagnostics to stderr according to opts.
func New(stdout, stderr io.Writer, opts config.Options) *Logger {
	l := &Logger{
		out:   stdout,
		err:   stderr,
		debug: opts.Debug,
	}
	if opts.Quiet {
		l.out = io.Discard
	}
	l.outRenderer = rendererFor(l.out)
	l.errRenderer = rendererFor(l.err)
	return l
}

// Discard returns a Logger that drops everything.
func Discard() *Logger {
	return New(io.Discard, io.Discard, config.Options{Quiet: true})
}

// rendererFor returns a lipgloss renderer for w, or nil if w is not a terminal.
func rendererFor(w io.Writer) *lipgloss.Renderer {
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return nil
	}
	return lipgloss.NewRenderer(f)
}

func paint(r *lipgloss.Renderer, tone Tone, s string) string {
	if r == nil {
		return s
	}
	style := r.NewStyle().Foreground(palette[tone])
	if tone == ToneAccent || tone == ToneDanger {
		style = style.Bold(true)
	}
	return style.Render(s)
}

// Paint colors s for inline use in an informational line.
func (l *Logger) Paint(tone Tone, s string) string {
	return paint(l.outRenderer, tone, s)
}

// Infof writes one informational line.
func (l *Logger) Infof(format string, args ...any) {
	fmt.Fprintf(l.out, format+"\n", args...)
}

// Entry writes an indented "label value" line, e.g. one discovered path.
func (l *Logger) Entry(tone Tone, label, value string) {
	fmt.Fprintf(l.out, "\t%s %s\n", paint(l.outRenderer, tone, label), value)
}

// Status writes a single painted informational line.
func (l *Logger) Status(tone Tone, msg string) {
	fmt.Fprintln(l.out, paint(l.outRenderer, tone, msg))
}

// Debugf writes a diagnostic line to stderr when debug output is enabled.
func (l *Logger) Debugf(format string, args ...any) {
	if !l.debug {
		return
	}
	fmt.Fprintln(l.err, paint(l.errRenderer, ToneMuted, "debug: "+fmt.Sprintf(format, args...)))
}
