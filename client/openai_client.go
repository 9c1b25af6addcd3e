package client

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Aashish23092/finguide-ai/dto"
	openai "github.com/sashabaranov/go-openai"
)

const DefaultOpenAIModel = openai.GPT4oMini

// OpenAIClient works with OpenAI and any server exposing the same
// chat-completions API (set BaseURL, e.g. a local Ollama at /v1).
type OpenAIClient struct {
	apiKey string
	model  string
	client *openai.Client
}

func NewOpenAIClient(apiKey, model, baseURL string) *OpenAIClient {
	apiKey = strings.TrimSpace(apiKey)
	if strings.TrimSpace(model) == "" {
		model = DefaultOpenAIModel
	}

	cfg := openai.DefaultConfig(apiKey)
	if baseURL = strings.TrimSpace(baseURL); baseURL != "" {
		cfg.BaseURL = baseURL
	}

	return &OpenAIClient{
		apiKey: apiKey,
		model:  strings.TrimSpace(model),
		client: openai.NewClientWithConfig(cfg),
	}
}

func (o *OpenAIClient) Chat(ctx context.Context, history []dto.ChatMessage, message string) (string, error) {
	msgs := make([]openai.ChatCompletionMessage, 0, len(history)+1)
	for _, turn := range history {
		msgs = append(msgs, openai.ChatCompletionMessage{
			Role:    openAIRole(turn.Role),
			Content: turn.Text(),
		})
	}
	msgs = append(msgs, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: message})
	return o.complete(ctx, msgs)
}

func (o *OpenAIClient) Generate(ctx context.Context, prompt string) (string, error) {
	return o.complete(ctx, []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleUser, Content: prompt},
	})
}

func (o *OpenAIClient) complete(ctx context.Context, msgs []openai.ChatCompletionMessage) (string, error) {
	if o.apiKey == "" {
		return "", dto.ErrMissingAPIKey
	}

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    o.model,
		Messages: msgs,
	})
	if err != nil {
		return "", fmt.Errorf("openai: chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai: empty response")
	}
	return resp.Choices[0].Message.Content, nil
}

func openAIRole(role string) string {
	if role == "model" {
		return openai.ChatMessageRoleAssistant
	}
	return openai.ChatMessageRoleUser
}
