package service

import (
	"time"

	"github.com/Aashish23092/finguide-ai/dto"
	"github.com/Aashish23092/finguide-ai/store"
	"github.com/Aashish23092/finguide-ai/utils"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type TransactionService struct {
	repo   store.TransactionRepository
	now    func() time.Time
	logger zerolog.Logger
}

func NewTransactionService(repo store.TransactionRepository, logger zerolog.Logger) *TransactionService {
	return &TransactionService{
		repo:   repo,
		now:    time.Now,
		logger: logger.With().Str("component", "transactions").Logger(),
	}
}

func (s *TransactionService) List() []dto.Transaction {
	return s.repo.List()
}

// Add records a manually entered transaction. Without an explicit GST rate
// the category's table rate is used, or 0 when the table has none.
func (s *TransactionService) Add(req *dto.AddTransactionRequest) (dto.Transaction, error) {
	if err := req.Validate(); err != nil {
		return dto.Transaction{}, err
	}

	date := s.now()
	if req.Date != nil && !req.Date.IsZero() {
		date = *req.Date
	}

	rate := 0
	if req.GSTRate != nil {
		rate = *req.GSTRate
	} else if r, ok := utils.GSTRateFor(string(req.Category)); ok {
		rate = r
	}

	txn := dto.Transaction{
		ID:              uuid.NewString(),
		Date:            date,
		Amount:          req.Amount,
		Category:        req.Category,
		Description:     req.Description,
		IsTaxDeductible: req.IsTaxDeductible,
		GSTRate:         rate,
	}
	s.repo.Prepend(txn)

	s.logger.Info().Str("id", txn.ID).Str("category", string(txn.Category)).Float64("amount", txn.Amount).Msg("transaction added")
	return txn, nil
}

// ImportRaw parses extraction output and stores the valid rows. Nothing is
// stored when the output does not parse.
func (s *TransactionService) ImportRaw(raw string) ([]dto.Transaction, error) {
	records, err := ParseRecords(raw)
	if err != nil {
		return nil, err
	}
	return s.Import(records), nil
}

// Import normalizes records and puts them ahead of existing transactions.
func (s *TransactionService) Import(records []dto.ExtractedRecord) []dto.Transaction {
	txns := Normalize(records, s.now())
	s.repo.Prepend(txns...)

	s.logger.Info().
		Int("received", len(records)).
		Int("imported", len(txns)).
		Msg("statement rows imported")
	return txns
}
