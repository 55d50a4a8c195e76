// Package readability provides an alternate content-extraction engine built
// on go-readability.
package readability

import (
	"strings"

	"github.com/go-shiori/go-readability"
	notes "github.com/nandkishor-kumawat/notes-summarizer-mcp"
)

// Ensure Extractor implements notes.Extractor at compile time.
var _ notes.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
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

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, notes.Errorf(notes.EEXTRACTION, "readability extraction failed: %v", err)
	}
	if strings.TrimSpace(article.Content) == "" {
		return nil, notes.Errorf(notes.EEXTRACTION, "no content-like container found")
	}

	result := &notes.ExtractResult{
		Title:       article.Title,
		Byline:      article.Byline,
		ContentHTML: article.Content,
	}
	if article.PublishedTime != nil {
		result.PublishedAt = *article.PublishedTime
	}
	return result, nil
}
