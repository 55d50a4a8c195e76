package mock

import (
	"context"

	notes "github.com/nandkishor-kumawat/notes-summarizer-mcp"
)

var _ notes.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of notes.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*notes.FetchResult, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*notes.FetchResult, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}
