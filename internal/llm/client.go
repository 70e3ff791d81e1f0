package llm

import (
	"context"
	"os"
)

// Client is a chat-completion provider. Implementations return the raw
// model output text; JSON-shape validation belongs to the caller.
type Client interface {
	Chat(ctx context.Context, system, user string) (string, error)
}

// FromEnv picks the provider from LLM_PROVIDER. OpenAI is the default.
func FromEnv() Client {
	switch os.Getenv("LLM_PROVIDER") {
	case "gemini":
		return NewGeminiClient()
	default:
		return NewOpenAIClient()
	}
}
