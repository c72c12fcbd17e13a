// Package http provides an HTTP-backed corpus source for crawling
// static sites that don't require JavaScript rendering.
package http

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/fwojciec/sitesearch"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent identifies the crawler to servers.
const DefaultUserAgent = "sitesearch/1.0"

// Compile-time interface verification.
var (
	_ sitesearch.Fetcher    = (*Source)(nil)
	_ sitesearch.SeedSource = (*Source)(nil)
)

// Source serves a corpus over HTTP. Identifiers are absolute URLs on
// the crawl host; Seeds returns the configured base URL.
type Source struct {
	base      string
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Source.
type Option func(*Source)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(s *Source) {
		s.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(s *Source) {
		s.userAgent = ua
	}
}

// NewSource creates a Source crawling from the base URL.
func NewSource(base string, opts ...Option) (*Source, error) {
	u, err := url.Parse(base)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, sitesearch.Errorf(sitesearch.EINVALID, "invalid base URL %q", base)
	}

	s := &Source{
		base:      base,
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.client = &http.Client{
		Timeout: s.timeout,
	}

	return s, nil
}

// Fetch retrieves the HTML for the URL identifier. A 404 returns
// ENOTFOUND; other non-200 responses return EUNAVAILABLE with the
// status in the message.
func (s *Source) Fetch(ctx context.Context, id sitesearch.DocumentID) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, string(id), nil)
	if err != nil {
		return "", sitesearch.Errorf(sitesearch.EINVALID, "invalid page URL %q: %v", id, err)
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", sitesearch.Errorf(sitesearch.ENOTFOUND, "HTTP %d for %s", resp.StatusCode, id)
	}
	if resp.StatusCode != http.StatusOK {
		return "", sitesearch.Errorf(sitesearch.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, id)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// Seeds returns the base URL as the sole seed.
func (s *Source) Seeds(ctx context.Context) ([]sitesearch.DocumentID, error) {
	return []sitesearch.DocumentID{sitesearch.DocumentID(s.base)}, nil
}
