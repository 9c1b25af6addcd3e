package service

import (
	"context"
	"fmt"

	"github.com/Aashish23092/finguide-ai/client"
	"github.com/Aashish23092/finguide-ai/dto"
	"github.com/Aashish23092/finguide-ai/utils"
	"github.com/rs/zerolog"
)

// MaxPromptTextChars caps how much statement text is sent to the model.
const MaxPromptTextChars = 10000

const extractionPrompt = `
Act as a meticulous accountant. Extract all transactions from the following text.
Your response MUST be a valid JSON array of objects.
Each object should have these exact keys: "date", "description", "amount".
If a value is missing, use "N/A".
Do not include any explanation or intro text, only the JSON.

Text to analyze:
---
%s
`

// BuildExtractionPrompt embeds the first MaxPromptTextChars characters of text.
func BuildExtractionPrompt(text string) string {
	return fmt.Sprintf(extractionPrompt, truncateRunes(text, MaxPromptTextChars))
}

func truncateRunes(s string, n int) string {
	if len(s) <= n {
		return s
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}

type ExtractionService struct {
	llm    client.LLMClient
	logger zerolog.Logger
}

func NewExtractionService(llm client.LLMClient, logger zerolog.Logger) *ExtractionService {
	return &ExtractionService{
		llm:    llm,
		logger: logger.With().Str("component", "extraction").Logger(),
	}
}

// ExtractTransactions asks the model for a JSON array of {date, description,
// amount} rows and returns the cleaned array text. The output is not
// validated here; the normalizer rejects anything that does not parse.
func (s *ExtractionService) ExtractTransactions(ctx context.Context, text string) (string, error) {
	raw, err := s.llm.Generate(ctx, BuildExtractionPrompt(text))
	if err != nil {
		return "", fmt.Errorf("%w: %w", dto.ErrProviderFailure, err)
	}

	s.logger.Debug().Str("raw_text", raw).Msg("extraction model response")

	return utils.ExtractJSONArray(raw), nil
}
