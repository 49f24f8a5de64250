// Package output provides output mode resolution and terminal styling for
// the unitsmith CLI.
package output

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// OutputMode selects how command results are rendered.
type OutputMode string

const (
	// ModeAuto picks text for a TTY and markdown otherwise.
	ModeAuto OutputMode = "auto"
	// ModeText renders styled tables for interactive use.
	ModeText OutputMode = "text"
	// ModeMarkdown renders pipe tables suitable for docs and CI logs.
	ModeMarkdown OutputMode = "markdown"
	// ModeJSON renders machine-readable JSON.
	ModeJSON OutputMode = "json"
)

// Mode normalizes a user-supplied format string to an OutputMode.
func Mode(s string) OutputMode {
	switch s {
	case "text":
		return ModeText
	case "md", "markdown":
		return ModeMarkdown
	case "json":
		return ModeJSON
	default:
		return ModeAuto
	}
}

// Styles holds the lipgloss styles shared by commands.
type Styles struct {
	Title   lipgloss.Style
	Header  lipgloss.Style
	Muted   lipgloss.Style
	Error   lipgloss.Style
	Success lipgloss.Style
}

// NewStyles builds the default style set. When styling is disabled the
// styles are zero values and render plain text.
func NewStyles(enabled bool) *Styles {
	if !enabled {
		return &Styles{}
	}
	return &Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Header:  lipgloss.NewStyle().Bold(true),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	}
}

// Renderer ties an output mode to writers and styles.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   OutputMode
	isTTY  bool
	styles *Styles
}

// NewRenderer creates a renderer, detecting TTY state from the out writer.
func NewRenderer(out, errOut io.Writer, mode OutputMode) *Renderer {
	return NewRendererWithTTY(out, errOut, isTerminal(out), mode)
}

// NewRendererWithTTY creates a renderer with an explicit TTY state. Tests
// use this to pin down mode resolution.
func NewRendererWithTTY(out, errOut io.Writer, isTTY bool, mode OutputMode) *Renderer {
	return &Renderer{
		out:    out,
		errOut: errOut,
		mode:   mode,
		isTTY:  isTTY,
		styles: NewStyles(isTTY && mode != ModeJSON && mode != ModeMarkdown),
	}
}

// Out returns the writer for primary output.
func (r *Renderer) Out() io.Writer { return r.out }

// ErrOut returns the writer for diagnostics.
func (r *Renderer) ErrOut() io.Writer { return r.errOut }

// Styles returns the active style set.
func (r *Renderer) Styles() *Styles { return r.styles }

// Resolved returns the concrete mode with auto resolved against TTY state.
func (r *Renderer) Resolved() OutputMode {
	if r.mode != ModeAuto {
		return r.mode
	}
	if r.isTTY {
		return ModeText
	}
	return ModeMarkdown
}

type rendererKey struct{}

// WithRenderer stores the renderer in the context.
func WithRenderer(ctx context.Context, r *Renderer) context.Context {
	return context.WithValue(ctx, rendererKey{}, r)
}

// FromContext retrieves the renderer from the context, falling back to a
// stdout renderer in auto mode.
func FromContext(ctx context.Context) *Renderer {
	if r, ok := ctx.Value(rendererKey{}).(*Renderer); ok {
		return r
	}
	return NewRenderer(os.Stdout, os.Stderr, ModeAuto)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
