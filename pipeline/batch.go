package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	notes "github.com/nandkishor-kumawat/notes-summarizer-mcp"
	"golang.org/x/sync/errgroup"
)

// batchResult pairs a completed item with its input position, so results
// can be reassembled in input order regardless of completion order.
type batchResult struct {
	position int
	item     notes.BatchItem
}

// BatchSummarize runs the single-URL pipeline over many URLs with a bounded
// worker pool. Each URL's failure is caught at its boundary and recorded as
// a failed item; it never aborts sibling URLs. The report preserves input
// order and carries the merged study-guide Markdown.
//
// Cancelling ctx stops in-flight fetches and returns the context error; no
// partial report is produced.
func (p *Pipeline) BatchSummarize(ctx context.Context, urls []string, tier notes.LengthTier) (*notes.BatchReport, error) {
	if len(urls) == 0 {
		return nil, notes.Errorf(notes.EINVALID, "no URLs to summarize")
	}

	concurrency := p.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	batchID := uuid.NewString()
	logger := p.logger().With("batch", batchID)
	logger.Info("batch started", "urls", len(urls), "tier", tier, "concurrency", concurrency)

	resultCh := make(chan batchResult, len(urls))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, u := range urls {
			g.Go(func() error {
				resultCh <- batchResult{
					position: i,
					item:     p.summarizeOne(gctx, u, tier, logger),
				}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	items := make([]notes.BatchItem, len(urls))
	for r := range resultCh {
		items[r.position] = r.item
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report := &notes.BatchReport{
		Items:    items,
		Markdown: notes.FormatStudyGuide(items),
	}
	logger.Info("batch finished", "ok", len(items)-report.Failed(), "failed", report.Failed())
	return report, nil
}

// summarizeOne runs one URL's pipeline and converts any failure into a
// failed batch item. This is the only place a pipeline error is caught
// instead of propagated.
func (p *Pipeline) summarizeOne(ctx context.Context, pageURL string, tier notes.LengthTier, logger *slog.Logger) notes.BatchItem {
	begin := time.Now()

	if err := p.waitLimiter(ctx, pageURL); err != nil {
		return notes.FailedItem(pageURL, err)
	}

	summary, err := p.Summarize(ctx, pageURL, tier)
	if err != nil {
		logger.Warn("url failed",
			"url", pageURL,
			"code", notes.ErrorCode(err),
			"duration", time.Since(begin),
		)
		return notes.FailedItem(pageURL, err)
	}

	logger.Info("url summarized",
		"url", pageURL,
		"bullets", len(summary.Bullets),
		"duration", time.Since(begin),
	)
	return notes.BatchItem{URL: pageURL, Summary: summary}
}
