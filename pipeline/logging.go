package pipeline

import (
	"context"
	"log/slog"
	"time"

	notes "github.com/nandkishor-kumawat/notes-summarizer-mcp"
)

// Ensure LoggingFetcher implements notes.Fetcher.
var _ notes.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with debug logging.
type LoggingFetcher struct {
	next   notes.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next notes.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch logs the URL being fetched and delegates to the wrapped fetcher.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (result *notes.FetchResult, err error) {
	defer func(begin time.Time) {
		var bytes int
		if result != nil {
			bytes = len(result.HTML)
		}
		f.logger.Info("fetch",
			"url", url,
			"bytes", bytes,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
