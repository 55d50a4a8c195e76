package main

import (
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	notes "github.com/nandkishor-kumawat/notes-summarizer-mcp"
	notesmcp "github.com/nandkishor-kumawat/notes-summarizer-mcp/mcp"
)

// Run starts the MCP server on stdio and blocks until the client
// disconnects or the context is canceled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	server := notesmcp.NewServer(deps.Pipeline, deps.OwnerID, version)
	return server.Run(deps.Ctx, &sdkmcp.StdioTransport{})
}

// Run fetches a single URL and prints its rendered notes.
func (c *NotesCmd) Run(deps *Dependencies) error {
	rendered, err := deps.Pipeline.Notes(deps.Ctx, c.URL)
	if err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, rendered)
	return nil
}

// Run summarizes a single URL and prints the cited bullets.
func (c *SummarizeCmd) Run(deps *Dependencies) error {
	tier, err := notes.ParseLengthTier(c.Length)
	if err != nil {
		return err
	}

	summary, err := deps.Pipeline.Summarize(deps.Ctx, c.URL, tier)
	if err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, notes.FormatSummary(summary))
	return nil
}

// Run prints the heading outline of a single URL.
func (c *OutlineCmd) Run(deps *Dependencies) error {
	rendered, err := deps.Pipeline.Outline(deps.Ctx, c.URL)
	if err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, rendered)
	return nil
}

// Run summarizes many URLs and prints the merged study guide.
func (c *BatchCmd) Run(deps *Dependencies) error {
	tier, err := notes.ParseLengthTier(c.Length)
	if err != nil {
		return err
	}

	report, err := deps.Pipeline.BatchSummarize(deps.Ctx, c.URLs, tier)
	if err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, report.Markdown)
	return nil
}
