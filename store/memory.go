package store

import (
	"sync"
	"time"

	"github.com/Aashish23092/finguide-ai/dto"
	"github.com/google/uuid"
)

// TransactionRepository holds transactions newest first.
type TransactionRepository interface {
	// Prepend puts txns, in the given order, ahead of everything already stored.
	Prepend(txns ...dto.Transaction)
	List() []dto.Transaction
}

// MemoryStore keeps transactions for the life of the process.
type MemoryStore struct {
	mu   sync.RWMutex
	txns []dto.Transaction
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Prepend(txns ...dto.Transaction) {
	if len(txns) == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	merged := make([]dto.Transaction, 0, len(txns)+len(s.txns))
	merged = append(merged, txns...)
	s.txns = append(merged, s.txns...)
}

// List returns a copy so callers cannot mutate the store.
func (s *MemoryStore) List() []dto.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]dto.Transaction, len(s.txns))
	copy(out, s.txns)
	return out
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

// DemoTransactions is the sample month shown on a fresh dashboard.
func DemoTransactions() []dto.Transaction {
	return []dto.Transaction{
		{ID: uuid.NewString(), Date: day(2026, time.January, 14), Amount: 4500, Category: dto.CategoryDining, Description: "Team Dinner", GSTRate: 18},
		{ID: uuid.NewString(), Date: day(2026, time.January, 12), Amount: 250, Category: dto.CategoryTravel, Description: "Uber to Work", GSTRate: 5},
		{ID: uuid.NewString(), Date: day(2026, time.January, 10), Amount: 15000, Category: dto.CategoryInvestment, Description: "SIP Mutual Fund", IsTaxDeductible: true},
		{ID: uuid.NewString(), Date: day(2026, time.January, 8), Amount: 2500, Category: dto.CategoryShopping, Description: "Groceries"},
		{ID: uuid.NewString(), Date: day(2026, time.January, 5), Amount: 899, Category: dto.CategoryBills, Description: "Netflix Subscription", GSTRate: 18},
	}
}
