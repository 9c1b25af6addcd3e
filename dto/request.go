package dto

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ChatRequest is the body of POST /api/chat
type ChatRequest struct {
	History []ChatMessage `json:"history"`
	Message string        `json:"message"`
}

// Validate performs basic validation on the request
func (r *ChatRequest) Validate() error {
	if strings.TrimSpace(r.Message) == "" {
		return errors.New("message is required")
	}
	for i, turn := range r.History {
		if turn.Role != "user" && turn.Role != "model" {
			return fmt.Errorf("history[%d]: role must be \"user\" or \"model\"", i)
		}
	}
	return nil
}

// AddTransactionRequest is a manually entered transaction.
type AddTransactionRequest struct {
	Amount          float64    `json:"amount" binding:"required"`
	Category        Category   `json:"category" binding:"required"`
	Description     string     `json:"description"`
	Date            *time.Time `json:"date,omitempty"`
	GSTRate         *int       `json:"gstRate,omitempty"`
	IsTaxDeductible bool       `json:"isTaxDeductible"`
}

func (r *AddTransactionRequest) Validate() error {
	if r.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidTransaction)
	}
	if !r.Category.Valid() {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidTransaction, r.Category)
	}
	if r.GSTRate != nil && !ValidGSTRate(*r.GSTRate) {
		return fmt.Errorf("%w: gstRate must be one of 0, 5, 12, 18, 28", ErrInvalidTransaction)
	}
	return nil
}

// GSTRequest asks for the tax portion of a tax-inclusive bill.
// Rate wins over Category when both are given.
type GSTRequest struct {
	Amount   float64 `json:"amount" binding:"gt=0"`
	Category string  `json:"category"`
	Rate     *int    `json:"rate,omitempty"`
}

// TaxCompareRequest is a UserProfile without a regime.
type TaxCompareRequest struct {
	AnnualIncome   float64 `json:"annualIncome" binding:"gte=0"`
	Investments80C float64 `json:"investments80C" binding:"gte=0"`
}
