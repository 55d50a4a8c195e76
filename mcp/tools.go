package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	notes "github.com/nandkishor-kumawat/notes-summarizer-mcp"
)

// FetchNotesInput defines input for the fetch_notes tool.
type FetchNotesInput struct {
	URL string `json:"url" jsonschema:"The URL to fetch and convert to Markdown notes"`
}

// SummarizeURLInput defines input for the summarize_url tool.
type SummarizeURLInput struct {
	URL    string `json:"url" jsonschema:"The URL to summarize"`
	Length string `json:"length,omitempty" jsonschema:"Summary length: short, medium, or long (default short)"`
}

// OutlineURLInput defines input for the outline_url tool.
type OutlineURLInput struct {
	URL string `json:"url" jsonschema:"The URL to outline"`
}

// BatchSummarizeInput defines input for the batch_summarize tool.
type BatchSummarizeInput struct {
	URLs   []string `json:"urls" jsonschema:"List of URLs to summarize into one study guide"`
	Length string   `json:"length,omitempty" jsonschema:"Summary length for each URL: short, medium, or long (default short)"`
}

// ValidateInput defines input for the validate tool.
type ValidateInput struct{}

// MarkdownOutput is the rendered Markdown result shared by all tools.
type MarkdownOutput struct {
	Markdown string `json:"markdown"`
}

// ValidateOutput defines output for the validate tool.
type ValidateOutput struct {
	Owner string `json:"owner"`
}

func (s *Server) registerTools() {
	mcp.AddTool(s.server,
		&mcp.Tool{
			Name:        "fetch_notes",
			Description: "Fetch a web page and return clean Markdown with a metadata header (title, byline, published date, canonical URL, reading time) and outbound links. Use when the user provides a URL and wants readable notes or citations.",
		},
		s.fetchNotes,
	)

	mcp.AddTool(s.server,
		&mcp.Tool{
			Name:        "summarize_url",
			Description: "Summarize a URL into concise bullet points with inline citation markers referencing the page's sections. Use when the user wants a quick summary of a page with references.",
		},
		s.summarizeURL,
	)

	mcp.AddTool(s.server,
		&mcp.Tool{
			Name:        "outline_url",
			Description: "Generate a navigable outline of a page's heading hierarchy. Use when the user wants a structured outline for study or navigation.",
		},
		s.outlineURL,
	)

	mcp.AddTool(s.server,
		&mcp.Tool{
			Name:        "batch_summarize",
			Description: "Summarize multiple URLs into a single merged study guide with references and a failure appendix. Use when the user provides many links and wants combined notes.",
		},
		s.batchSummarize,
	)

	mcp.AddTool(s.server,
		&mcp.Tool{
			Name:        "validate",
			Description: "Returns the server owner's identifier.",
		},
		s.validate,
	)
}

func (s *Server) fetchNotes(ctx context.Context, req *mcp.CallToolRequest, input FetchNotesInput) (*mcp.CallToolResult, MarkdownOutput, error) {
	rendered, err := s.pipeline.Notes(ctx, input.URL)
	if err != nil {
		return nil, MarkdownOutput{}, toolError(err)
	}
	return nil, MarkdownOutput{Markdown: rendered}, nil
}

func (s *Server) summarizeURL(ctx context.Context, req *mcp.CallToolRequest, input SummarizeURLInput) (*mcp.CallToolResult, MarkdownOutput, error) {
	tier, err := notes.ParseLengthTier(input.Length)
	if err != nil {
		return nil, MarkdownOutput{}, toolError(err)
	}

	summary, err := s.pipeline.Summarize(ctx, input.URL, tier)
	if err != nil {
		return nil, MarkdownOutput{}, toolError(err)
	}
	return nil, MarkdownOutput{Markdown: notes.FormatSummary(summary)}, nil
}

func (s *Server) outlineURL(ctx context.Context, req *mcp.CallToolRequest, input OutlineURLInput) (*mcp.CallToolResult, MarkdownOutput, error) {
	rendered, err := s.pipeline.Outline(ctx, input.URL)
	if err != nil {
		return nil, MarkdownOutput{}, toolError(err)
	}
	return nil, MarkdownOutput{Markdown: rendered}, nil
}

func (s *Server) batchSummarize(ctx context.Context, req *mcp.CallToolRequest, input BatchSummarizeInput) (*mcp.CallToolResult, MarkdownOutput, error) {
	tier, err := notes.ParseLengthTier(input.Length)
	if err != nil {
		return nil, MarkdownOutput{}, toolError(err)
	}

	report, err := s.pipeline.BatchSummarize(ctx, input.URLs, tier)
	if err != nil {
		return nil, MarkdownOutput{}, toolError(err)
	}
	return nil, MarkdownOutput{Markdown: report.Markdown}, nil
}

func (s *Server) validate(ctx context.Context, req *mcp.CallToolRequest, input ValidateInput) (*mcp.CallToolResult, ValidateOutput, error) {
	return nil, ValidateOutput{Owner: s.ownerID}, nil
}
