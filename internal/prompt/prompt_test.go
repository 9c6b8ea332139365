package prompt

import (
	"errors"
	"strings"
	"testing"
)

func TestParseAnswer(t *testing.T) {
	tests := []struct {
		in       string
		want, ok bool
	}{
		{"y", true, true},
		{"YES", true, true},
		{" n ", false, true},
		{"No", false, true},
		{"", false, false},
		{"maybe", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseAnswer(tt.in)
			if got != tt.want || ok != tt.ok {
				t.Errorf("ParseAnswer(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestLineConfirmer_repromptsOnInvalidInput(t *testing.T) {
	var out strings.Builder
	c := NewLineConfirmer(strings.NewReader("what\n\nyes\n"), &out, 0)

	ok, err := c.Confirm("Create it?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Error("expected yes")
	}
	if n := strings.Count(out.String(), "Create it? [y/n]"); n != 3 {
		t.Errorf("question asked %d times, want 3:\n%s", n, out.String())
	}
}

func TestLineConfirmer_maxAttempts(t *testing.T) {
	c := NewLineConfirmer(strings.NewReader("a\nb\nc\ny\n"), nil, 3)

	_, err := c.Confirm("Continue?")
	if !errors.Is(err, ErrTooManyAttempts) {
		t.Fatalf("err = %v, want ErrTooManyAttempts", err)
	}
}

func TestLineConfirmer_eof(t *testing.T) {
	c := NewLineConfirmer(strings.NewReader("huh\n"), nil, 0)

	_, err := c.Confirm("Continue?")
	if !errors.Is(err, ErrNoAnswer) {
		t.Fatalf("err = %v, want ErrNoAnswer", err)
	}
}

func TestLineConfirmer_multipleQuestionsShareInput(t *testing.T) {
	c := NewLineConfirmer(strings.NewReader("n\ny\n"), nil, 0)

	first, err := c.Confirm("one?")
	if err != nil || first {
		t.Fatalf("first = %v, %v; want false, nil", first, err)
	}
	second, err := c.Confirm("two?")
	if err != nil || !second {
		t.Fatalf("second = %v, %v; want true, nil", second, err)
	}
}

func TestAlways(t *testing.T) {
	ok, err := Always(true).Confirm("anything")
	if err != nil || !ok {
		t.Errorf("Always(true) = %v, %v", ok, err)
	}
}
