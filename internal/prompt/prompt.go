// Package prompt asks yes/no questions on a line-oriented terminal or any
// scripted answer source.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	// ErrNoAnswer is returned when the answer source ends before a valid answer.
	ErrNoAnswer = errors.New("no answer given")

	// ErrTooManyAttempts is returned after MaxAttempts unrecognized answers.
	ErrTooManyAttempts = errors.New("too many invalid answers")
)

// Confirmer asks a yes/no question.
type Confirmer interface {
	Confirm(question string) (bool, error)
}

// Always answers every question with a fixed value (used for --yes).
type Always bool

// Confirm returns the fixed answer.
func (a Always) Confirm(string) (bool, error) { return bool(a), nil }

// LineConfirmer reads answers line by line from In and re-asks on anything
// other than y/yes/n/no.
type LineConfirmer struct {
	In  io.Reader
	Out io.Writer

	// MaxAttempts bounds the number of questions asked. Zero means ask until
	// a valid answer or the end of input.
	MaxAttempts int

	sc *bufio.Scanner
}

// NewLineConfirmer returns a LineConfirmer reading from in and writing
// questions to out.
func NewLineConfirmer(in io.Reader, out io.Writer, maxAttempts int) *LineConfirmer {
	return &LineConfirmer{In: in, Out: out, MaxAttempts: maxAttempts}
}

// Confirm asks question until a recognized answer arrives.
func (c *LineConfirmer) Confirm(question string) (bool, error) {
	if c.sc == nil {
		c.sc = bufio.NewScanner(c.In)
	}
	for attempt := 1; c.MaxAttempts <= 0 || attempt <= c.MaxAttempts; attempt++ {
		if c.Out != nil {
			_, _ = fmt.Fprintf(c.Out, "%s [y/n]: ", question)
		}
		if !c.sc.Scan() {
			if err := c.sc.Err(); err != nil {
				return false, fmt.Errorf("reading answer: %w", err)
			}
			return false, ErrNoAnswer
		}
		if v, ok := ParseAnswer(c.sc.Text()); ok {
			return v, nil
		}
		if c.Out != nil {
			_, _ = fmt.Fprintln(c.Out, "Please answer y or n.")
		}
	}
	return false, ErrTooManyAttempts
}

// ParseAnswer recognizes y, yes, n and no in any case.
func ParseAnswer(s string) (value, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes":
		return true, true
	case "n", "no":
		return false, true
	}
	return false, false
}
