package readability_test

import (
	"testing"

	notes "github.com/nandkishor-kumawat/notes-summarizer-mcp"
	"github.com/nandkishor-kumawat/notes-summarizer-mcp/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements notes.Extractor at compile time.
var _ notes.Extractor = (*readability.Extractor)(nil)

func TestExtractor_RejectsEmptyInput(t *testing.T) {
	t.Parallel()

	ext := readability.NewExtractor()
	_, err := ext.Extract("")

	require.Error(t, err)
	assert.Equal(t, notes.EINVALID, notes.ErrorCode(err))
}

func TestExtractor_ExtractsTitle(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Why Goroutines Are Cheap</title></head>
<body><article><p>Goroutines start with a small stack that grows on demand.</p></article></body>
</html>`

	ext := readability.NewExtractor()
	result, err := ext.Extract(html)

	require.NoError(t, err)
	assert.Equal(t, "Why Goroutines Are Cheap", result.Title)
}

func TestExtractor_RemovesNavigation(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<nav><a href="/home">Home Nav Link</a><a href="/archive">Archive Nav Link</a></nav>
<article><p>This is the main article content that should survive into the output.</p></article>
</body>
</html>`

	ext := readability.NewExtractor()
	result, err := ext.Extract(html)

	require.NoError(t, err)
	assert.Contains(t, result.ContentHTML, "main article content")
	assert.NotContains(t, result.ContentHTML, "Home Nav Link")
	assert.NotContains(t, result.ContentHTML, "Archive Nav Link")
}

func TestExtractor_RemovesFooter(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<article><p>This is the main article content that should survive into the output.</p></article>
<footer><p>Footer copyright text 2026</p></footer>
</body>
</html>`

	ext := readability.NewExtractor()
	result, err := ext.Extract(html)

	require.NoError(t, err)
	assert.NotContains(t, result.ContentHTML, "Footer copyright text")
}

func TestExtractor_ExtractsByline(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head>
<title>Test</title>
<meta name="author" content="Ada Lovelace">
</head>
<body>
<article><p>This is the main article content, long enough to be picked up.</p></article>
</body>
</html>`

	ext := readability.NewExtractor()
	result, err := ext.Extract(html)

	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", result.Byline)
}

func TestExtractor_PreservesHeadingsAndCode(t *testing.T) {
	t.Parallel()

	// go-readability may demote h1 to h2, but heading text is preserved.
	html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<article>
<h1>Main Heading</h1>
<p>Some intro text here.</p>
<h2>Subheading Level Two</h2>
<p>Run <code>go test ./...</code> before every commit.</p>
<pre><code>go build ./cmd/notesmcp</code></pre>
</article>
</body>
</html>`

	ext := readability.NewExtractor()
	result, err := ext.Extract(html)

	require.NoError(t, err)
	assert.Contains(t, result.ContentHTML, "Main Heading")
	assert.Contains(t, result.ContentHTML, "Subheading Level Two")
	assert.Contains(t, result.ContentHTML, "<pre")
	assert.Contains(t, result.ContentHTML, "go build ./cmd/notesmcp")
}
