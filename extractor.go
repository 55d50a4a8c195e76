package notes

import "time"

// ExtractResult holds the extracted content and metadata from an HTML page.
type ExtractResult struct {
	// Title is the page title from structured metadata, falling back to
	// the first h1 or the title tag.
	Title string

	// Byline is the author attribution, if found.
	Byline string

	// PublishedAt is the publication date, if found.
	PublishedAt time.Time

	// ContentHTML is the primary content as clean HTML.
	// Boilerplate (nav, footer, sidebar, ads) has been removed.
	ContentHTML string
}

// Extractor isolates primary content from raw HTML, removing boilerplate.
//
// Implementations fail with EEXTRACTION when no container on the page looks
// content-like (e.g., a pure media viewer), rather than returning empty
// content.
type Extractor interface {
	Extract(rawHTML string) (*ExtractResult, error)
}
