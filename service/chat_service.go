package service

import (
	"context"
	"fmt"

	"github.com/Aashish23092/finguide-ai/client"
	"github.com/Aashish23092/finguide-ai/dto"
	"github.com/rs/zerolog"
)

// ChatService relays one user turn to the model. It keeps no session; the
// caller sends the whole history every time.
type ChatService struct {
	llm    client.LLMClient
	logger zerolog.Logger
}

func NewChatService(llm client.LLMClient, logger zerolog.Logger) *ChatService {
	return &ChatService{
		llm:    llm,
		logger: logger.With().Str("component", "chat").Logger(),
	}
}

func (s *ChatService) Reply(ctx context.Context, req *dto.ChatRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	reply, err := s.llm.Chat(ctx, req.History, req.Message)
	if err != nil {
		return "", fmt.Errorf("%w: %w", dto.ErrProviderFailure, err)
	}

	s.logger.Debug().Int("history", len(req.History)).Int("reply_chars", len(reply)).Msg("chat reply")
	return reply, nil
}
