package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Reporter writes user-facing status lines. Normal output goes to Out,
// warnings and errors to Err.
type Reporter struct {
	out, err io.Writer
	plain    bool

	errStyle, warnStyle, okStyle, dimStyle lipgloss.Style
}

// NewReporter returns a Reporter writing to out and errOut. Styling is
// resolved per writer, so pipes and buffers get plain text; noColor forces it.
func NewReporter(out, errOut io.Writer, noColor bool) *Reporter {
	ro := lipgloss.NewRenderer(out)
	re := lipgloss.NewRenderer(errOut)
	return &Reporter{
		out:       out,
		err:       errOut,
		plain:     noColor,
		errStyle:  re.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		warnStyle: re.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
		okStyle:   ro.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		dimStyle:  ro.NewStyle().Faint(true),
	}
}

// Out is the writer for normal output.
func (r *Reporter) Out() io.Writer { return r.out }

// ErrOut is the writer for diagnostics.
func (r *Reporter) ErrOut() io.Writer { return r.err }

// Info prints a plain line.
func (r *Reporter) Info(format string, args ...any) {
	_, _ = fmt.Fprintf(r.out, format+"\n", args...)
}

// Detail prints a de-emphasised line.
func (r *Reporter) Detail(format string, args ...any) {
	_, _ = fmt.Fprintln(r.out, r.render(r.dimStyle, fmt.Sprintf(format, args...)))
}

// Success prints a highlighted confirmation line.
func (r *Reporter) Success(format string, args ...any) {
	_, _ = fmt.Fprintln(r.out, r.render(r.okStyle, fmt.Sprintf(format, args...)))
}

// Warn prints "Warning: ..." to the error stream.
func (r *Reporter) Warn(format string, args ...any) {
	_, _ = fmt.Fprintf(r.err, "%s %s\n", r.render(r.warnStyle, "Warning:"), fmt.Sprintf(format, args...))
}

// Drift prints a warning about the manifest disagreeing with the environment.
func (r *Reporter) Drift(format string, args ...any) {
	r.Warn("drift: "+format, args...)
}

// Error prints "Error: <err>" to the error stream.
func (r *Reporter) Error(err error) {
	_, _ = fmt.Fprintf(r.err, "%s %v\n", r.render(r.errStyle, "Error:"), err)
}

func (r *Reporter) render(s lipgloss.Style, text string) string {
	if r.plain {
		return text
	}
	return s.Render(text)
}
