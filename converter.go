package notes

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms clean HTML (e.g., from an Extractor) into
	// Markdown. Relative links are rewritten to absolute using baseURL.
	Convert(html string, baseURL string) (string, error)
}
