package notes

import "context"

// TokenCounter counts tokens in text for a specific model.
// The summarizer uses it to bound chunk sizes.
type TokenCounter interface {
	CountTokens(ctx context.Context, text string) (int, error)
}
