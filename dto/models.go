package dto

import "time"

type Category string

const (
	CategoryFood       Category = "Food"
	CategoryDining     Category = "Dining"
	CategoryTravel     Category = "Travel"
	CategoryBills      Category = "Bills"
	CategoryInsurance  Category = "Insurance"
	CategoryInvestment Category = "Investment"
	CategoryLuxury     Category = "Luxury"
	CategoryEducation  Category = "Education"
	CategoryHealth     Category = "Health"
	CategoryShopping   Category = "Shopping"
	CategoryOther      Category = "Other"
)

// DefaultImportCategory is assigned to every row that arrives through statement ingestion.
const DefaultImportCategory = CategoryOther

// Categories lists every accepted category in display order.
var Categories = []Category{
	CategoryFood, CategoryDining, CategoryTravel, CategoryBills, CategoryInsurance,
	CategoryInvestment, CategoryLuxury, CategoryEducation, CategoryHealth,
	CategoryShopping, CategoryOther,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// GSTRates are the slab percentages a transaction may carry.
var GSTRates = []int{0, 5, 12, 18, 28}

func ValidGSTRate(rate int) bool {
	for _, r := range GSTRates {
		if r == rate {
			return true
		}
	}
	return false
}

type Transaction struct {
	ID              string    `json:"id"`
	Date            time.Time `json:"date"`
	Amount          float64   `json:"amount"`
	Category        Category  `json:"category"`
	Description     string    `json:"description"`
	IsTaxDeductible bool      `json:"isTaxDeductible"`
	GSTRate         int       `json:"gstRate"` // 0, 5, 12, 18 or 28
}

type Regime string

const (
	RegimeOld Regime = "Old"
	RegimeNew Regime = "New"
)

// UserProfile is the input of the income tax estimate. It is never stored.
type UserProfile struct {
	Name           string  `json:"name,omitempty"`
	AnnualIncome   float64 `json:"annualIncome" binding:"gte=0"`
	Regime         Regime  `json:"regime" binding:"required,oneof=Old New"`
	Investments80C float64 `json:"investments80C" binding:"gte=0"`
}

// ExtractedRecord is one loosely-typed row returned by the extraction model.
// Any field may be missing, "N/A", a string or a number.
type ExtractedRecord struct {
	Date        any `json:"date,omitempty"`
	Description any `json:"description,omitempty"`
	Amount      any `json:"amount,omitempty"`
}

type ChatPart struct {
	Text string `json:"text"`
}

// ChatMessage is one prior turn. Role is "user" or "model".
type ChatMessage struct {
	Role  string     `json:"role"`
	Parts []ChatPart `json:"parts"`
}

// Text joins all parts of the turn.
func (m ChatMessage) Text() string {
	if len(m.Parts) == 1 {
		return m.Parts[0].Text
	}
	var out string
	for i, p := range m.Parts {
		if i > 0 {
			out += "\n"
		}
		out += p.Text
	}
	return out
}

type CategoryTotal struct {
	Category Category `json:"category"`
	Total    float64  `json:"total"`
}

type DashboardSummary struct {
	HealthScore   int             `json:"healthScore"`
	TotalSpent    float64         `json:"totalSpent"`
	MonthlyIncome float64         `json:"monthlyIncome"`
	Count         int             `json:"count"`
	ByCategory    []CategoryTotal `json:"byCategory"`
}
