package mock

import notes "github.com/nandkishor-kumawat/notes-summarizer-mcp"

var _ notes.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of notes.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*notes.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*notes.ExtractResult, error) {
	return e.ExtractFn(html)
}
