package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/Aashish23092/finguide-ai/dto"
)

// LLMClient is the language model capability the services depend on.
type LLMClient interface {
	// Chat continues a conversation: history holds the prior turns, message the new user turn.
	Chat(ctx context.Context, history []dto.ChatMessage, message string) (string, error)
	// Generate answers a single prompt.
	Generate(ctx context.Context, prompt string) (string, error)
}

type LLMOptions struct {
	Provider string
	APIKey   string
	Model    string
	BaseURL  string
}

// NewLLMClient builds the provider named in opts. A missing API key does not
// fail construction; every call then returns dto.ErrMissingAPIKey.
func NewLLMClient(opts LLMOptions) (LLMClient, error) {
	switch strings.ToLower(strings.TrimSpace(opts.Provider)) {
	case "", "gemini":
		return NewGeminiClient(opts.APIKey, opts.Model), nil
	case "openai":
		return NewOpenAIClient(opts.APIKey, opts.Model, opts.BaseURL), nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", opts.Provider)
	}
}

// Close releases the provider connection held by c, if it holds one.
func Close(c LLMClient) error {
	if closer, ok := c.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}
