package engine

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrCancelled is returned when the user declines creating the environment.
	ErrCancelled = errors.New("cancelled")

	// ErrNothingToInstall is returned by InstallAll for a manifest without packages.
	ErrNothingToInstall = errors.New("no packages to install")
)

// ValidationError rejects a request before any external action ran.
type ValidationError struct {
	Kind    string // "package", "script" or "project"
	Name    string
	Problem string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %q %s", e.Kind, e.Name, e.Problem)
}

// BatchError summarises the failed items of a batch workflow.
type BatchError struct {
	Op     string
	Total  int
	Failed []string
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("%s: %d of %d failed: %s", e.Op, len(e.Failed), e.Total, strings.Join(e.Failed, ", "))
}

// Summary records the per-item outcome of a batch workflow.
type Summary struct {
	Op        string
	Succeeded []string
	// Unchanged holds packages update reinstalled at the version already recorded.
	Unchanged []string
	// Skipped holds items rejected with a ValidationError.
	Skipped []string
	// Failed holds items whose external action or bookkeeping failed.
	Failed []string
	// Drifted is the subset of Failed whose external action did take effect.
	Drifted []string
}

// Total is the number of items the batch processed.
func (s Summary) Total() int {
	return len(s.Succeeded) + len(s.Unchanged) + len(s.Skipped) + len(s.Failed)
}

// Err returns a *BatchError when any item was skipped or failed.
func (s Summary) Err() error {
	if len(s.Failed)+len(s.Skipped) == 0 {
		return nil
	}
	failed := make([]string, 0, len(s.Skipped)+len(s.Failed))
	failed = append(failed, s.Skipped...)
	failed = append(failed, s.Failed...)
	return &BatchError{Op: s.Op, Total: s.Total(), Failed: failed}
}
