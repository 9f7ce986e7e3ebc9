package llm

import (
	"context"
)

// Client is a text-in, text-out language model.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
