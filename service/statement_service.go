package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"

	"github.com/Aashish23092/finguide-ai/dto"
	"github.com/rs/zerolog"
)

// StatementService turns an uploaded statement into the model's JSON array of rows.
type StatementService struct {
	extractor  *DocumentExtractor
	extraction *ExtractionService
	logger     zerolog.Logger
}

func NewStatementService(extractor *DocumentExtractor, extraction *ExtractionService, logger zerolog.Logger) *StatementService {
	return &StatementService{
		extractor:  extractor,
		extraction: extraction,
		logger:     logger.With().Str("component", "statement").Logger(),
	}
}

// ReadUpload loads a multipart file into a Document. The content type is
// the one the client declared.
func ReadUpload(fileHeader *multipart.FileHeader, password string) (Document, error) {
	if fileHeader == nil {
		return Document{}, dto.ErrMissingFile
	}

	f, err := fileHeader.Open()
	if err != nil {
		return Document{}, fmt.Errorf("failed to open file %s: %w", fileHeader.Filename, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return Document{}, fmt.Errorf("failed to read file %s: %w", fileHeader.Filename, err)
	}

	return Document{
		Filename: fileHeader.Filename,
		MIMEType: fileHeader.Header.Get("Content-Type"),
		Data:     data,
		Password: password,
	}, nil
}

// Analyze extracts the document text and asks the model for its transactions.
// Unsupported documents are rejected before the model is called.
func (s *StatementService) Analyze(ctx context.Context, doc Document) (string, error) {
	if DetectKind(doc.MIMEType) == KindUnknown {
		return "", fmt.Errorf("%w: %q", dto.ErrUnsupportedFileType, doc.MIMEType)
	}

	text, err := s.extractor.Extract(ctx, doc)
	if err != nil {
		return "", err
	}

	out, err := s.extraction.ExtractTransactions(ctx, text)
	if err != nil {
		return "", err
	}

	s.logger.Info().
		Str("file", doc.Filename).
		Int("bytes", len(doc.Data)).
		Int("text_chars", len(text)).
		Msg("statement analyzed")
	return out, nil
}

// IsClientError reports whether err is the caller's fault.
func IsClientError(err error) bool {
	return errors.Is(err, dto.ErrUnsupportedFileType) || errors.Is(err, dto.ErrMissingFile)
}
