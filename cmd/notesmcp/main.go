package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	notes "github.com/nandkishor-kumawat/notes-summarizer-mcp"
	"github.com/nandkishor-kumawat/notes-summarizer-mcp/gemini"
	"github.com/nandkishor-kumawat/notes-summarizer-mcp/goquery"
	"github.com/nandkishor-kumawat/notes-summarizer-mcp/htmltomarkdown"
	nethttp "github.com/nandkishor-kumawat/notes-summarizer-mcp/http"
	"github.com/nandkishor-kumawat/notes-summarizer-mcp/pipeline"
	"github.com/nandkishor-kumawat/notes-summarizer-mcp/readability"
	"github.com/nandkishor-kumawat/notes-summarizer-mcp/trafilatura"
)

const version = "1.0.0"

// tokenizerModel is used for token counting when sizing summarization
// chunks.
const tokenizerModel = "gemini-2.5-flash"

func main() {
	ctx := context.Background()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run parses arguments, wires the pipeline, and executes the selected
// command.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("notesmcp"),
		kong.Description("Turn web pages into structured, citation-bearing notes."),
		kong.Writers(stdout, stderr),
	)
	if err != nil {
		return err
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// MCP uses stdout for protocol; all logging goes to stderr.
	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	extractor, err := newExtractor(cli.Engine)
	if err != nil {
		return err
	}

	// Summarization falls back to a rune-based estimate without a
	// tokenizer, so a missing tokenizer model is not fatal.
	var tokens notes.TokenCounter
	if tc, err := gemini.NewTokenCounter(tokenizerModel); err != nil {
		logger.Warn("tokenizer unavailable, using estimates", "error", err)
	} else {
		tokens = tc
	}

	fetcher := nethttp.NewFetcher(
		nethttp.WithTimeout(cli.Timeout),
		nethttp.WithMaxBytes(cli.MaxBytes),
	)
	defer fetcher.Close()

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Pipeline: &pipeline.Pipeline{
			Fetcher:     pipeline.NewLoggingFetcher(fetcher, logger),
			Extractor:   extractor,
			Converter:   htmltomarkdown.NewConverter(),
			Tokens:      tokens,
			Limiter:     pipeline.NewDomainLimiter(cli.RPS),
			Concurrency: cli.Concurrency,
			Logger:      logger,
		},
		OwnerID: cli.Owner,
	}

	return kctx.Run(deps)
}

// newExtractor selects the content extraction engine.
func newExtractor(engine string) (notes.Extractor, error) {
	switch engine {
	case "density":
		return goquery.NewExtractor(goquery.DefaultConfig()), nil
	case "readability":
		return readability.NewExtractor(), nil
	case "trafilatura":
		return trafilatura.NewExtractor(), nil
	}
	return nil, notes.Errorf(notes.EINVALID, "unknown extraction engine %q", engine)
}
