package notes

import "context"

// FetchResult holds the raw response of a successful page fetch.
type FetchResult struct {
	// HTML is the raw response body.
	HTML string

	// FinalURL is the canonical URL after following redirects.
	FinalURL string
}

// Fetcher retrieves raw HTML from URLs.
//
// Implementations enforce a bounded timeout, a maximum response size, a
// redirect hop limit, and a text/html content-type check, reporting
// violations with ETIMEOUT, ETOOLARGE, EREDIRECT, and EUNSUPPORTED
// respectively. Network failures surface as EFETCH and are never retried
// silently; retry policy belongs to the caller.
type Fetcher interface {
	// Fetch retrieves the page at url.
	// The context controls cancellation in addition to the fetcher's
	// own timeout.
	Fetch(ctx context.Context, url string) (*FetchResult, error)

	// Close releases any resources held by the fetcher.
	Close() error
}
