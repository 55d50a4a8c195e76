package notes_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	notes "github.com/nandkishor-kumawat/notes-summarizer-mcp"
	"github.com/nandkishor-kumawat/notes-summarizer-mcp/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// page builds a PageNotes fixture from rendered markdown.
func page(url, title, markdown string) *notes.PageNotes {
	return &notes.PageNotes{
		Document: &notes.Document{URL: url, Title: title, ContentHTML: "<article></article>"},
		Markdown: markdown,
		Sections: notes.BuildSectionIndex(markdown, title),
	}
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("produces cited bullets from section lead sentences", func(t *testing.T) {
		t.Parallel()

		markdown := "# Intro\n\nGo is a compiled language. It has garbage collection.\n\n## Speed\n\nCompilation is fast on most machines.\n"
		p := page("https://example.com/go", "Intro", markdown)

		summary, err := notes.Summarize(ctx, p, notes.TierShort, nil)

		require.NoError(t, err)
		assert.Equal(t, "https://example.com/go", summary.SourceURL)
		assert.Equal(t, notes.TierShort, summary.Tier)
		require.Len(t, summary.Bullets, 2)
		assert.Equal(t, "Intro: Go is a compiled language.", summary.Bullets[0].Text)
		assert.Equal(t, "Speed: Compilation is fast on most machines.", summary.Bullets[1].Text)
	})

	t.Run("every bullet carries at least one resolvable citation", func(t *testing.T) {
		t.Parallel()

		markdown := "# A\n\nFirst fact stands here.\n\n## B\n\nSecond fact stands apart.\n\n### C\n\nThird item differs entirely.\n"
		p := page("https://example.com", "A", markdown)

		summary, err := notes.Summarize(ctx, p, notes.TierLong, nil)

		require.NoError(t, err)
		require.NotEmpty(t, summary.Bullets)
		for _, b := range summary.Bullets {
			require.NotEmpty(t, b.Citations)
			for _, c := range b.Citations {
				_, ok := p.Sections.Lookup(c.SectionID)
				assert.True(t, ok, "citation %s must resolve", c.SectionID)
			}
		}
	})

	t.Run("shallower and earlier sections rank first", func(t *testing.T) {
		t.Parallel()

		markdown := "# Main\n\nalpha1 alpha2 alpha3 main text.\n\n## Detail\n\nzeta1 zeta2 zeta3 detail text.\n\n# Closing\n\nomega1 omega2 omega3 closing text.\n"
		p := page("https://example.com", "Main", markdown)

		summary, err := notes.Summarize(ctx, p, notes.TierShort, nil)

		require.NoError(t, err)
		require.Len(t, summary.Bullets, 3)
		assert.True(t, strings.HasPrefix(summary.Bullets[0].Text, "Main:"))
		assert.True(t, strings.HasPrefix(summary.Bullets[1].Text, "Closing:"))
		assert.True(t, strings.HasPrefix(summary.Bullets[2].Text, "Detail:"))
	})

	t.Run("near-duplicate bullets are merged with citation union", func(t *testing.T) {
		t.Parallel()

		markdown := "# One\n\nThe same exact sentence appears here.\n\n# Two\n\nThe same exact sentence appears here.\n"
		p := page("https://example.com", "One", markdown)

		summary, err := notes.Summarize(ctx, p, notes.TierShort, nil)

		require.NoError(t, err)
		require.Len(t, summary.Bullets, 1)
		assert.Len(t, summary.Bullets[0].Citations, 2)
	})

	t.Run("fails with empty content error when index is empty", func(t *testing.T) {
		t.Parallel()

		p := page("https://example.com", "T", "")

		_, err := notes.Summarize(ctx, p, notes.TierShort, nil)

		require.Error(t, err)
		assert.Equal(t, notes.EEMPTYCONTENT, notes.ErrorCode(err))
	})

	t.Run("fails when headings exist but no section has body text", func(t *testing.T) {
		t.Parallel()

		p := page("https://example.com", "T", "# A\n## B\n### C\n")

		_, err := notes.Summarize(ctx, p, notes.TierShort, nil)

		require.Error(t, err)
		assert.Equal(t, notes.EEMPTYCONTENT, notes.ErrorCode(err))
	})

	t.Run("uses injected token counter", func(t *testing.T) {
		t.Parallel()

		var counted int
		counter := &mock.TokenCounter{
			CountTokensFn: func(ctx context.Context, text string) (int, error) {
				counted++
				return len(text), nil
			},
		}
		p := page("https://example.com", "A", "# A\n\nShort body text.\n")

		_, err := notes.Summarize(ctx, p, notes.TierShort, counter)

		require.NoError(t, err)
		assert.Positive(t, counted)
	})
}

func TestSummarize_TierMonotonicity(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	b.WriteString("# Guide\n\nopening0 opening1 opening2 statement.\n")
	for i := 1; i <= 24; i++ {
		fmt.Fprintf(&b, "\n## Part %d\n\nalpha%d beta%d gamma%d delta%d.\n", i, i, i, i, i)
	}
	p := page("https://example.com/guide", "Guide", b.String())

	ctx := context.Background()
	short, err := notes.Summarize(ctx, p, notes.TierShort, nil)
	require.NoError(t, err)
	medium, err := notes.Summarize(ctx, p, notes.TierMedium, nil)
	require.NoError(t, err)
	long, err := notes.Summarize(ctx, p, notes.TierLong, nil)
	require.NoError(t, err)

	assert.Len(t, short.Bullets, 5)
	assert.Len(t, medium.Bullets, 10)
	assert.Len(t, long.Bullets, 20)
	assert.GreaterOrEqual(t, len(long.Bullets), len(medium.Bullets))
	assert.GreaterOrEqual(t, len(medium.Bullets), len(short.Bullets))
}

func TestParseLengthTier(t *testing.T) {
	t.Parallel()

	t.Run("accepts known tiers", func(t *testing.T) {
		t.Parallel()

		for _, s := range []string{"short", "medium", "long"} {
			tier, err := notes.ParseLengthTier(s)
			require.NoError(t, err)
			assert.Equal(t, notes.LengthTier(s), tier)
		}
	})

	t.Run("empty string defaults to short", func(t *testing.T) {
		t.Parallel()

		tier, err := notes.ParseLengthTier("")

		require.NoError(t, err)
		assert.Equal(t, notes.TierShort, tier)
	})

	t.Run("rejects unknown tiers", func(t *testing.T) {
		t.Parallel()

		_, err := notes.ParseLengthTier("gigantic")

		require.Error(t, err)
		assert.Equal(t, notes.EINVALID, notes.ErrorCode(err))
	})
}
