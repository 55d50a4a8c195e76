// Package htmltomarkdown converts extracted HTML content to Markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	notes "github.com/nandkishor-kumawat/notes-summarizer-mcp"
)

// Ensure Converter implements notes.Converter at compile time.
var _ notes.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert HTML to Markdown.
// Headings, emphasis, lists, blockquotes, code blocks, and tables are
// converted structurally; inline scripts and other non-content elements are
// dropped by the underlying converter.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML content into Markdown. Relative links and image
// sources are rewritten to absolute URLs against baseURL.
func (c *Converter) Convert(html string, baseURL string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", notes.Errorf(notes.EINVALID, "empty HTML input")
	}

	var opts []converter.ConvertOptionFunc
	if baseURL != "" {
		opts = append(opts, converter.WithDomain(baseURL))
	}

	result, err := c.conv.ConvertString(html, opts...)
	if err != nil {
		return "", notes.Errorf(notes.EINTERNAL, "markdown conversion failed: %v", err)
	}

	return result, nil
}
