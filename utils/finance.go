package utils

import (
	"sort"

	"github.com/Aashish23092/finguide-ai/dto"
	"github.com/shopspring/decimal"
)

// DefaultGSTRate applies to bills whose category label is not in the table.
const DefaultGSTRate = 18

var gstRates = map[string]int{
	"Vegetables":            0,
	"Education":             0,
	"Health":                0,
	"Packaged Food":         5,
	"Cab":                   5,
	"Air Travel (Business)": 12,
	"Dining":                18,
	"Electronics":           18,
	"Bills":                 18,
	"Luxury Hotel":          28,
	"Luxury Car":            28,
}

// GSTRateFor returns the slab rate for a category label.
func GSTRateFor(label string) (int, bool) {
	rate, ok := gstRates[label]
	return rate, ok
}

// GSTRateTable returns the table sorted by rate, then label.
func GSTRateTable() []dto.GSTRateEntry {
	out := make([]dto.GSTRateEntry, 0, len(gstRates))
	for label, rate := range gstRates {
		out = append(out, dto.GSTRateEntry{Label: label, Rate: rate})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Rate != out[j].Rate {
			return out[i].Rate < out[j].Rate
		}
		return out[i].Label < out[j].Label
	})
	return out
}

// CalculateGSTComponent returns the GST contained in a tax-inclusive total:
// base = total / (1 + rate/100), tax = total - base.
func CalculateGSTComponent(total, rate float64) float64 {
	if rate == 0 {
		return 0
	}
	base := total / (1 + rate/100)
	return total - base
}

// ReverseGST splits a tax-inclusive total into base and tax, rounded to paise.
func ReverseGST(total float64, rate int) dto.GSTResponse {
	tax := CalculateGSTComponent(total, float64(rate))
	t := decimal.NewFromFloat(tax).Round(2)
	b := decimal.NewFromFloat(total).Sub(t)
	return dto.GSTResponse{
		Base: b.InexactFloat64(),
		Tax:  t.InexactFloat64(),
		Rate: rate,
	}
}

var (
	needsCategories   = []dto.Category{dto.CategoryFood, dto.CategoryBills, dto.CategoryHealth, dto.CategoryEducation}
	wantsCategories   = []dto.Category{dto.CategoryTravel, dto.CategoryLuxury, dto.CategoryShopping, dto.CategoryDining}
	savingsCategories = []dto.Category{dto.CategoryInvestment}
)

func sumCategories(txns []dto.Transaction, cats []dto.Category) float64 {
	var sum float64
	for _, t := range txns {
		for _, c := range cats {
			if t.Category == c {
				sum += t.Amount
				break
			}
		}
	}
	return sum
}

// CalculateHealthScore scores spending against the 50/30/20 guideline.
// Starts at 100: -10 if needs exceed 50% of income, -20 if wants exceed 30%,
// +10 if savings exceed 20% and -10 otherwise. Clamped to [0, 100].
func CalculateHealthScore(txns []dto.Transaction, monthlyIncome float64) int {
	needs := sumCategories(txns, needsCategories)
	wants := sumCategories(txns, wantsCategories)
	savings := sumCategories(txns, savingsCategories)

	score := 100
	if needs > monthlyIncome*0.5 {
		score -= 10
	}
	if wants > monthlyIncome*0.3 {
		score -= 20
	}
	if savings > monthlyIncome*0.2 {
		score += 10
	} else {
		score -= 10
	}

	return max(0, min(100, score))
}

// TotalsByCategory sums amounts per category in first-seen order.
func TotalsByCategory(txns []dto.Transaction) []dto.CategoryTotal {
	index := make(map[dto.Category]int)
	var out []dto.CategoryTotal
	for _, t := range txns {
		i, ok := index[t.Category]
		if !ok {
			i = len(out)
			index[t.Category] = i
			out = append(out, dto.CategoryTotal{Category: t.Category})
		}
		out[i].Total += t.Amount
	}
	return out
}
