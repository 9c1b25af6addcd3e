package service

import (
	"github.com/Aashish23092/finguide-ai/dto"
	"github.com/Aashish23092/finguide-ai/store"
	"github.com/Aashish23092/finguide-ai/utils"
)

// DashboardService derives metrics from the stored transactions on demand.
type DashboardService struct {
	repo          store.TransactionRepository
	monthlyIncome float64
}

func NewDashboardService(repo store.TransactionRepository, defaultMonthlyIncome float64) *DashboardService {
	return &DashboardService{
		repo:          repo,
		monthlyIncome: defaultMonthlyIncome,
	}
}

// Summary scores spending against monthlyIncome, or the configured default when it is not positive.
func (s *DashboardService) Summary(monthlyIncome float64) dto.DashboardSummary {
	if monthlyIncome <= 0 {
		monthlyIncome = s.monthlyIncome
	}

	txns := s.repo.List()

	var total float64
	for _, t := range txns {
		total += t.Amount
	}

	byCategory := utils.TotalsByCategory(txns)
	if byCategory == nil {
		byCategory = []dto.CategoryTotal{}
	}

	return dto.DashboardSummary{
		HealthScore:   utils.CalculateHealthScore(txns, monthlyIncome),
		TotalSpent:    total,
		MonthlyIncome: monthlyIncome,
		Count:         len(txns),
		ByCategory:    byCategory,
	}
}
