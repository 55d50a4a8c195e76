// Package trafilatura provides an alternate content-extraction engine built
// on go-trafilatura.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/markusmobius/go-trafilatura"
	notes "github.com/nandkishor-kumawat/notes-summarizer-mcp"
	"golang.org/x/net/html"
)

// Ensure Extractor implements notes.Extractor at compile time.
var _ notes.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content and metadata.
func (e *Extractor) Extract(rawHTML string) (*notes.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, notes.Errorf(notes.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, notes.Errorf(notes.EEXTRACTION, "trafilatura extraction failed: %v", err)
	}
	if result.ContentNode == nil {
		return nil, notes.Errorf(notes.EEXTRACTION, "no content-like container found")
	}

	contentHTML, err := renderNode(result.ContentNode)
	if err != nil {
		return nil, notes.Errorf(notes.EINTERNAL, "failed to render content root: %v", err)
	}

	return &notes.ExtractResult{
		Title:       result.Metadata.Title,
		Byline:      result.Metadata.Author,
		PublishedAt: result.Metadata.Date,
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
