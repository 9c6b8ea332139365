package ui

import (
	"fmt"
	"io"
)

// Progress numbers the items of a sequential batch.
type Progress struct {
	out   io.Writer
	total int
	n     int
}

// NewProgress creates a progress counter for total items.
func NewProgress(out io.Writer, total int) *Progress {
	return &Progress{out: out, total: total}
}

// Step advances to the next item and prints "[n/N] label".
func (p *Progress) Step(format string, args ...any) {
	p.n++
	_, _ = fmt.Fprintf(p.out, "[%d/%d] %s\n", p.n, p.total, fmt.Sprintf(format, args...))
}

// Log prints an informational message within the progress context.
func (p *Progress) Log(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, "      "+format+"\n", args...)
}
