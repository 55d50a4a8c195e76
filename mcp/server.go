// Package mcp exposes the notes pipeline as MCP tools over a go-sdk server.
// Protocol framing and transport belong to the SDK; this package only maps
// tool calls onto pipeline operations and pipeline errors onto structured
// tool errors.
package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	notes "github.com/nandkishor-kumawat/notes-summarizer-mcp"
	"github.com/nandkishor-kumawat/notes-summarizer-mcp/pipeline"
)

const serverName = "notes-summarizer"

// Server wires the pipeline to an MCP server instance.
type Server struct {
	server   *mcp.Server
	pipeline *pipeline.Pipeline

	// ownerID is echoed by the validate tool as an ownership handshake.
	ownerID string
}

// NewServer creates an MCP server exposing the notes tools.
func NewServer(p *pipeline.Pipeline, ownerID string, version string) *Server {
	s := &Server{
		server: mcp.NewServer(
			&mcp.Implementation{
				Name:    serverName,
				Version: version,
			},
			nil,
		),
		pipeline: p,
		ownerID:  ownerID,
	}
	s.registerTools()
	return s
}

// Run serves MCP over the given transport until the context is canceled.
func (s *Server) Run(ctx context.Context, transport mcp.Transport) error {
	return s.server.Run(ctx, transport)
}

// toolError shapes a pipeline error into the structured payload surfaced to
// the boundary: error kind plus a human readable message naming the URL.
func toolError(err error) error {
	return fmt.Errorf("[%s] %s", notes.ErrorCode(err), notes.ErrorMessage(err))
}
