package deps

import (
	"context"
)

// LLMClient abstracts the chat-completion call behind recommendation generation
type LLMClient interface {
	GenerateContent(ctx context.Context, prompt string, temperature float32, maxOutputTokens int32) (string, error)
}
