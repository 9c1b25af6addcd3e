package client

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/Aashish23092/finguide-ai/dto"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const DefaultGeminiModel = "gemini-1.5-flash"

// GeminiClient talks to Google's Generative Language API.
// The underlying client is created on first use.
type GeminiClient struct {
	apiKey string
	model  string

	mu     sync.Mutex
	client *genai.Client
}

func NewGeminiClient(apiKey, model string) *GeminiClient {
	if strings.TrimSpace(model) == "" {
		model = DefaultGeminiModel
	}
	return &GeminiClient{
		apiKey: strings.TrimSpace(apiKey),
		model:  strings.TrimSpace(model),
	}
}

func (g *GeminiClient) ensureClient() (*genai.Client, error) {
	if g.apiKey == "" {
		return nil, dto.ErrMissingAPIKey
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.client == nil {
		c, err := genai.NewClient(context.Background(), option.WithAPIKey(g.apiKey))
		if err != nil {
			return nil, fmt.Errorf("gemini: create client: %w", err)
		}
		g.client = c
	}
	return g.client, nil
}

func (g *GeminiClient) Chat(ctx context.Context, history []dto.ChatMessage, message string) (string, error) {
	c, err := g.ensureClient()
	if err != nil {
		return "", err
	}

	cs := c.GenerativeModel(g.model).StartChat()
	cs.History = toGeminiHistory(history)

	resp, err := cs.SendMessage(ctx, genai.Text(message))
	if err != nil {
		return "", fmt.Errorf("gemini: send message: %w", err)
	}
	return responseText(resp)
}

func (g *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	c, err := g.ensureClient()
	if err != nil {
		return "", err
	}

	resp, err := c.GenerativeModel(g.model).GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}
	return responseText(resp)
}

// Close releases the underlying connection, if one was opened.
func (g *GeminiClient) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.client == nil {
		return nil
	}
	err := g.client.Close()
	g.client = nil
	return err
}

func toGeminiHistory(history []dto.ChatMessage) []*genai.Content {
	out := make([]*genai.Content, 0, len(history))
	for _, turn := range history {
		parts := make([]genai.Part, 0, len(turn.Parts))
		for _, p := range turn.Parts {
			parts = append(parts, genai.Text(p.Text))
		}
		out = append(out, &genai.Content{Role: turn.Role, Parts: parts})
	}
	return out
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("gemini: empty response")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return sb.String(), nil
}
