package notes

import (
	"strings"
	"time"
)

// wordsPerMinute is the reading speed assumed for reading time estimates.
const wordsPerMinute = 200

// Document represents a fetched and extracted web page. It is built once by
// the fetch+extract stages of the pipeline and immutable afterward; its
// lifetime is a single pipeline invocation.
type Document struct {
	// URL is the canonical URL of the page after following redirects.
	URL string `json:"url"`

	// Title is the page title recovered from metadata.
	Title string `json:"title"`

	// Byline is the author attribution, if one was found.
	Byline string `json:"byline,omitempty"`

	// PublishedAt is the publication date, if one was found.
	// The zero value means unknown.
	PublishedAt time.Time `json:"publishedAt,omitempty"`

	// ContentHTML is the primary content subtree as clean HTML.
	// Boilerplate (nav, footer, sidebar, ads) has been removed.
	ContentHTML string `json:"-"`

	// ContentHash is a stable hash of ContentHTML.
	ContentHash string `json:"contentHash"`

	// Links holds absolute outbound links discovered in the raw page,
	// deduplicated in document order.
	Links []string `json:"links,omitempty"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.URL == "" {
		return Errorf(EINVALID, "document URL required")
	}
	if d.ContentHTML == "" {
		return Errorf(EINVALID, "document content required")
	}
	return nil
}

// ReadingTime estimates reading time in minutes for the given text,
// assuming an average reading speed. Always returns at least 1.
func ReadingTime(text string) int {
	words := len(strings.Fields(text))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		return 1
	}
	return minutes
}

// PageNotes is the fully processed form of a single page: its document
// metadata, the rendered Markdown, and the section index built from it.
type PageNotes struct {
	Document *Document
	Markdown string
	Sections *SectionIndex
}
