// Package pipeline composes the single-URL processing stages
// (fetch → extract → render → index) and fans them out over URL batches
// with bounded concurrency and per-URL failure isolation.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/cespare/xxhash/v2"
	notes "github.com/nandkishor-kumawat/notes-summarizer-mcp"
	gq "github.com/nandkishor-kumawat/notes-summarizer-mcp/goquery"
)

// DefaultConcurrency bounds simultaneous URL pipelines in a batch.
const DefaultConcurrency = 5

// Pipeline turns URLs into notes, summaries, outlines, and batch reports.
// The stages of a single URL run sequentially; BatchSummarize is the sole
// source of concurrency.
type Pipeline struct {
	Fetcher   notes.Fetcher
	Extractor notes.Extractor
	Converter notes.Converter

	// Tokens bounds summarization chunk sizes. Optional; a rune-based
	// estimate is used when nil.
	Tokens notes.TokenCounter

	// Limiter applies per-domain politeness limits to batch fetches.
	// Optional.
	Limiter *DomainLimiter

	// Concurrency is the batch worker limit. Defaults to
	// DefaultConcurrency when <= 0.
	Concurrency int

	// Logger receives pipeline events. Optional.
	Logger *slog.Logger
}

// Process runs the full single-URL pipeline: fetch, extract, render, index.
// Each stage fails fast; error kinds propagate unchanged to the caller.
func (p *Pipeline) Process(ctx context.Context, pageURL string) (*notes.PageNotes, error) {
	fetched, err := p.Fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	extracted, err := p.Extractor.Extract(fetched.HTML)
	if err != nil {
		return nil, err
	}

	markdown, err := p.Converter.Convert(extracted.ContentHTML, fetched.FinalURL)
	if err != nil {
		return nil, err
	}

	// Link harvesting is best effort; a page with an unparsable link set
	// still produces notes.
	links, err := gq.ExtractLinks(fetched.HTML, fetched.FinalURL)
	if err != nil {
		links = nil
	}

	doc := &notes.Document{
		URL:         fetched.FinalURL,
		Title:       extracted.Title,
		Byline:      extracted.Byline,
		PublishedAt: extracted.PublishedAt,
		ContentHTML: extracted.ContentHTML,
		ContentHash: fmt.Sprintf("%016x", xxhash.Sum64String(extracted.ContentHTML)),
		Links:       links,
	}

	return &notes.PageNotes{
		Document: doc,
		Markdown: markdown,
		Sections: notes.BuildSectionIndex(markdown, extracted.Title),
	}, nil
}

// Notes fetches a page and renders it as Markdown notes with a metadata
// header.
func (p *Pipeline) Notes(ctx context.Context, pageURL string) (string, error) {
	page, err := p.Process(ctx, pageURL)
	if err != nil {
		return "", err
	}
	return notes.FormatNotes(page), nil
}

// Summarize fetches a page and produces a bullet summary at the given tier.
func (p *Pipeline) Summarize(ctx context.Context, pageURL string, tier notes.LengthTier) (*notes.Summary, error) {
	page, err := p.Process(ctx, pageURL)
	if err != nil {
		return nil, err
	}
	return notes.Summarize(ctx, page, tier, p.Tokens)
}

// Outline fetches a page and renders its heading-hierarchy outline.
func (p *Pipeline) Outline(ctx context.Context, pageURL string) (string, error) {
	page, err := p.Process(ctx, pageURL)
	if err != nil {
		return "", err
	}
	entries, err := notes.BuildOutline(page.Sections)
	if err != nil {
		return "", err
	}
	return notes.FormatOutline(entries), nil
}

// waitLimiter applies the per-domain rate limit for the URL's host, if a
// limiter is configured.
func (p *Pipeline) waitLimiter(ctx context.Context, pageURL string) error {
	if p.Limiter == nil {
		return nil
	}
	u, err := url.Parse(pageURL)
	if err != nil || u.Host == "" {
		// Invalid URLs fail in the fetcher with a proper error kind.
		return nil
	}
	return p.Limiter.Wait(ctx, u.Host)
}

func (p *Pipeline) logger() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return slog.New(slog.DiscardHandler)
}
