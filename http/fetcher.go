// Package http provides an HTTP-based implementation of notes.Fetcher with
// bounded timeouts, a response size cap, a redirect hop limit, and strict
// content-type validation.
package http

import (
	"context"
	"errors"
	"io"
	"mime"
	"net/http"
	"time"

	notes "github.com/nandkishor-kumawat/notes-summarizer-mcp"
)

// Defaults for fetcher limits.
const (
	DefaultTimeout      = 10 * time.Second
	DefaultMaxBytes     = 8 << 20 // 8 MiB
	DefaultMaxRedirects = 5
	DefaultUserAgent    = "notes-summarizer/1.0"
)

// errRedirectLimit marks a redirect chain that exceeded the hop limit.
// http.Client wraps it in *url.Error, so it is recovered with errors.Is.
var errRedirectLimit = errors.New("redirect hop limit exceeded")

// Ensure Fetcher implements notes.Fetcher at compile time.
var _ notes.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using plain HTTP requests.
// JavaScript-rendered pages are out of scope.
type Fetcher struct {
	client       *http.Client
	timeout      time.Duration
	maxBytes     int64
	maxRedirects int
	userAgent    string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithMaxBytes sets the maximum response body size in bytes.
func WithMaxBytes(n int64) Option {
	return func(f *Fetcher) {
		f.maxBytes = n
	}
}

// WithMaxRedirects sets the redirect hop limit.
func WithMaxRedirects(n int) Option {
	return func(f *Fetcher) {
		f.maxRedirects = n
	}
}

// WithUserAgent sets the User-Agent header sent with requests.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:      DefaultTimeout,
		maxBytes:     DefaultMaxBytes,
		maxRedirects: DefaultMaxRedirects,
		userAgent:    DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= f.maxRedirects {
				return errRedirectLimit
			}
			return nil
		},
	}

	return f
}

// Fetch retrieves the page at url, enforcing the fetcher's limits.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*notes.FetchResult, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, notes.Errorf(notes.EINVALID, "invalid URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, classifyTransportError(url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, notes.Errorf(notes.EFETCH, "failed to fetch %s: HTTP %d", url, resp.StatusCode)
	}

	mediaType, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil || mediaType != "text/html" {
		return nil, notes.Errorf(notes.EUNSUPPORTED,
			"unsupported content type %q for %s", resp.Header.Get("Content-Type"), url)
	}

	// Read one byte past the cap to distinguish at-limit from over-limit.
	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		return nil, classifyTransportError(url, err)
	}
	if int64(len(body)) > f.maxBytes {
		return nil, notes.Errorf(notes.ETOOLARGE,
			"response for %s exceeds %d bytes", url, f.maxBytes)
	}

	finalURL := url
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}

	return &notes.FetchResult{
		HTML:     string(body),
		FinalURL: finalURL,
	}, nil
}

// Close releases resources. A no-op for the HTTP fetcher since http.Client
// requires no explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}

// classifyTransportError maps a transport failure onto the fetch error
// taxonomy: redirect limit, timeout, or plain network failure.
func classifyTransportError(url string, err error) error {
	switch {
	case errors.Is(err, errRedirectLimit):
		return notes.Errorf(notes.EREDIRECT, "too many redirects fetching %s", url)
	case errors.Is(err, context.DeadlineExceeded):
		return notes.Errorf(notes.ETIMEOUT, "timed out fetching %s", url)
	case errors.Is(err, context.Canceled):
		return err
	default:
		return notes.Errorf(notes.EFETCH, "failed to fetch %s: %v", url, err)
	}
}
