package mock

import notes "github.com/nandkishor-kumawat/notes-summarizer-mcp"

var _ notes.Converter = (*Converter)(nil)

// Converter is a mock implementation of notes.Converter.
type Converter struct {
	ConvertFn func(html string, baseURL string) (string, error)
}

func (c *Converter) Convert(html string, baseURL string) (string, error) {
	return c.ConvertFn(html, baseURL)
}
