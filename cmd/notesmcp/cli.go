package main

import (
	"context"
	"io"
	"time"

	"github.com/nandkishor-kumawat/notes-summarizer-mcp/pipeline"
)

// Dependencies holds the wired pipeline and I/O for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Pipeline *pipeline.Pipeline
	OwnerID  string
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Timeout     time.Duration `default:"10s" env:"NOTES_TIMEOUT" help:"Per-URL fetch timeout"`
	MaxBytes    int64         `default:"8388608" env:"NOTES_MAX_BYTES" help:"Maximum response size in bytes"`
	Concurrency int           `short:"c" default:"5" env:"NOTES_CONCURRENCY" help:"Concurrent URL limit for batches"`
	Engine      string        `default:"density" enum:"density,readability,trafilatura" env:"NOTES_ENGINE" help:"Content extraction engine"`
	RPS         float64       `default:"2" env:"NOTES_RPS" help:"Per-domain requests per second in batches"`
	Owner       string        `env:"NOTES_OWNER_ID" help:"Owner identifier echoed by the validate tool"`
	Verbose     bool          `short:"v" help:"Enable debug logging"`

	Serve     ServeCmd     `cmd:"" help:"Run the MCP server on stdio"`
	Notes     NotesCmd     `cmd:"" help:"Fetch a URL and print Markdown notes"`
	Summarize SummarizeCmd `cmd:"" help:"Summarize a URL into cited bullets"`
	Outline   OutlineCmd   `cmd:"" help:"Print a URL's heading outline"`
	Batch     BatchCmd     `cmd:"" help:"Merge summaries of many URLs into a study guide"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct{}

// NotesCmd is the "notes" subcommand.
type NotesCmd struct {
	URL string `arg:"" help:"URL to fetch"`
}

// SummarizeCmd is the "summarize" subcommand.
type SummarizeCmd struct {
	URL    string `arg:"" help:"URL to summarize"`
	Length string `short:"l" default:"short" enum:"short,medium,long" help:"Summary length tier"`
}

// OutlineCmd is the "outline" subcommand.
type OutlineCmd struct {
	URL string `arg:"" help:"URL to outline"`
}

// BatchCmd is the "batch" subcommand.
type BatchCmd struct {
	URLs   []string `arg:"" help:"URLs to summarize"`
	Length string   `short:"l" default:"short" enum:"short,medium,long" help:"Summary length tier"`
}
