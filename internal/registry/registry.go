// Package registry looks up the latest published version of a package on a
// PyPI-compatible JSON API.
package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is the public PyPI JSON API.
const DefaultBaseURL = "https://pypi.org/pypi"

// ErrResolution is wrapped by every error returned from Latest.
var ErrResolution = errors.New("version resolution failed")

// Resolver returns the latest version of a named package.
type Resolver interface {
	Latest(ctx context.Context, name string) (string, error)
}

// ResolutionError describes a failed lookup for one package.
type ResolutionError struct {
	Package    string
	StatusCode int // 0 when no response was received
	Err        error
}

func (e *ResolutionError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("resolving latest version of %s: registry returned %d", e.Package, e.StatusCode)
	}
	return fmt.Sprintf("resolving latest version of %s: %v", e.Package, e.Err)
}

func (e *ResolutionError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrResolution}
	}
	return []error{ErrResolution, e.Err}
}

// Client queries <BaseURL>/<name>/json.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// NewClient returns a client for baseURL. A zero timeout means no timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: timeout},
	}
}

// metadata is the subset of the package JSON document we read.
type metadata struct {
	Info struct {
		Version string `json:"version"`
	} `json:"info"`
}

// Latest issues a single GET and returns info.version.
func (c *Client) Latest(ctx context.Context, name string) (string, error) {
	endpoint := c.BaseURL + "/" + url.PathEscape(name) + "/json"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", &ResolutionError{Package: name, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	hc := c.HTTP
	if hc == nil {
		hc = http.DefaultClient
	}
	resp, err := hc.Do(req)
	if err != nil {
		return "", &ResolutionError{Package: name, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return "", &ResolutionError{Package: name, StatusCode: resp.StatusCode}
	}

	var md metadata
	if err := json.NewDecoder(resp.Body).Decode(&md); err != nil {
		return "", &ResolutionError{Package: name, Err: fmt.Errorf("decoding response: %w", err)}
	}
	v := strings.TrimSpace(md.Info.Version)
	if v == "" {
		return "", &ResolutionError{Package: name, Err: errors.New("response has no info.version")}
	}
	return v, nil
}
