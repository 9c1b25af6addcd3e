package client

import (
	"context"
	"time"

	"github.com/Aashish23092/finguide-ai/dto"
)

type timeoutClient struct {
	next    LLMClient
	timeout time.Duration
}

// WithTimeout bounds every call to next. A zero timeout returns next unchanged.
func WithTimeout(next LLMClient, timeout time.Duration) LLMClient {
	if timeout <= 0 {
		return next
	}
	return &timeoutClient{next: next, timeout: timeout}
}

func (t *timeoutClient) Chat(ctx context.Context, history []dto.ChatMessage, message string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.next.Chat(ctx, history, message)
}

func (t *timeoutClient) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.next.Generate(ctx, prompt)
}

func (t *timeoutClient) Close() error {
	return Close(t.next)
}
