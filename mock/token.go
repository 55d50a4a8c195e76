package mock

import (
	"context"

	notes "github.com/nandkishor-kumawat/notes-summarizer-mcp"
)

var _ notes.TokenCounter = (*TokenCounter)(nil)

// TokenCounter is a mock implementation of notes.TokenCounter.
type TokenCounter struct {
	CountTokensFn func(ctx context.Context, text string) (int, error)
}

func (tc *TokenCounter) CountTokens(ctx context.Context, text string) (int, error) {
	return tc.CountTokensFn(ctx, text)
}
