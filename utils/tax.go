package utils

import (
	"github.com/Aashish23092/finguide-ai/dto"
	"github.com/shopspring/decimal"
)

const (
	Max80CDeduction      = 150000
	OldStandardDeduction = 50000
	NewStandardDeduction = 75000
	BasicExemptionLimit  = 300000
)

// TaxBracket taxes income above Threshold at Rate.
type TaxBracket struct {
	Threshold float64
	Rate      float64
}

// TaxBrackets is walked from the highest threshold down (FY 2025-26 slabs, simplified).
var TaxBrackets = []TaxBracket{
	{Threshold: 1500000, Rate: 0.30},
	{Threshold: 1200000, Rate: 0.20},
	{Threshold: 1000000, Rate: 0.15},
	{Threshold: 700000, Rate: 0.10},
	{Threshold: 300000, Rate: 0.05},
}

// TaxableIncome applies the regime's deductions. Only the old regime allows 80C.
func TaxableIncome(p dto.UserProfile) float64 {
	taxable := decimal.NewFromFloat(p.AnnualIncome)
	if p.Regime == dto.RegimeOld {
		deduction := min(p.Investments80C, Max80CDeduction)
		taxable = taxable.Sub(decimal.NewFromFloat(deduction)).Sub(decimal.NewFromInt(OldStandardDeduction))
	} else {
		taxable = taxable.Sub(decimal.NewFromInt(NewStandardDeduction))
	}
	return taxable.InexactFloat64()
}

// CalculateTaxLiability estimates annual income tax, rounded to the nearest rupee.
func CalculateTaxLiability(p dto.UserProfile) float64 {
	return taxOn(TaxableIncome(p))
}

func taxOn(taxableIncome float64) float64 {
	if taxableIncome <= BasicExemptionLimit {
		return 0
	}

	remaining := decimal.NewFromFloat(taxableIncome)
	tax := decimal.Zero
	for _, b := range TaxBrackets {
		threshold := decimal.NewFromFloat(b.Threshold)
		if remaining.GreaterThan(threshold) {
			tax = tax.Add(remaining.Sub(threshold).Mul(decimal.NewFromFloat(b.Rate)))
			remaining = threshold
		}
	}

	return tax.Round(0).InexactFloat64()
}

// EstimateTax returns the taxable income and tax for the profile's regime.
func EstimateTax(p dto.UserProfile) dto.TaxLiabilityResponse {
	taxable := TaxableIncome(p)
	return dto.TaxLiabilityResponse{
		Regime:        p.Regime,
		TaxableIncome: taxable,
		Tax:           taxOn(taxable),
	}
}

// CompareRegimes evaluates both regimes for the same income and investments.
// Ties favour the new regime.
func CompareRegimes(p dto.UserProfile) dto.RegimeComparison {
	oldP, newP := p, p
	oldP.Regime = dto.RegimeOld
	newP.Regime = dto.RegimeNew

	cmp := dto.RegimeComparison{
		Old: EstimateTax(oldP),
		New: EstimateTax(newP),
	}
	if cmp.Old.Tax < cmp.New.Tax {
		cmp.Recommended = dto.RegimeOld
		cmp.Savings = cmp.New.Tax - cmp.Old.Tax
	} else {
		cmp.Recommended = dto.RegimeNew
		cmp.Savings = cmp.Old.Tax - cmp.New.Tax
	}
	return cmp
}
