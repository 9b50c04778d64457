package storage

import (
	"context"
	"fmt"
	"io"
	"iter"
	"net/http"
	"net/url"
	"strings"
)

// HTTP is a network locator fetching documents relative to a base URL.
// Listing is not supported: HTTP has no portable directory notion.
type HTTP struct {
	Base   string
	Client *http.Client
}

// NewHTTP returns a network locator rooted at the given base URL.
func NewHTTP(base string) *HTTP {
	return &HTTP{Base: base, Client: http.DefaultClient}
}

func (l *HTTP) resolve(path string) (string, error) {
	if l.Base == "" {
		return path, nil
	}
	base, err := url.Parse(l.Base)
	if err != nil {
		return "", fmt.Errorf("bad base url %q: %w", l.Base, err)
	}
	ref, err := url.Parse(strings.TrimPrefix(path, "/"))
	if err != nil {
		return "", fmt.Errorf("bad path %q: %w", path, err)
	}
	return base.ResolveReference(ref).String(), nil
}

func (l *HTTP) Fetch(ctx context.Context, path string) ([]byte, error) {
	u, err := l.resolve(path)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, path)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %q: unexpected status %s", path, resp.Status)
	}
	return io.ReadAll(resp.Body)
}

func (l *HTTP) Entries(ctx context.Context, path string) (iter.Seq[string], error) {
	return nil, fmt.Errorf("%w: http listing", ErrNotSupported)
}
