package services

import (
	"sort"
	"time"

	"budgetwise/internal/engine"
	apperrors "budgetwise/internal/errors"
	"budgetwise/internal/models"
	"budgetwise/internal/store"
)

// monthlyService manages per-category monthly spending limits.
type monthlyService struct {
	store *store.Store
	now   func() time.Time
}

// NewMonthlyService creates a new MonthlyServicer.
func NewMonthlyService(st *store.Store) MonthlyServicer {
	return &monthlyService{store: st, now: time.Now}
}

// SetLimit sets or replaces a category's monthly limit.
func (s *monthlyService) SetLimit(category string, limit float64) error {
	if category == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "category is required")
	}
	if limit < 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "limit cannot be negative")
	}
	return s.store.Update(func(state *models.AppState) error {
		state.MonthlyBudgets[category] = limit
		return nil
	})
}

// RemoveLimit removes a category's monthly limit. Removing an unset
// category is a no-op.
func (s *monthlyService) RemoveLimit(category string) error {
	return s.store.Update(func(state *models.AppState) error {
		delete(state.MonthlyBudgets, category)
		return nil
	})
}

// Limits returns a copy of the monthly limits map.
func (s *monthlyService) Limits() models.MonthlyBudgets {
	out := models.MonthlyBudgets{}
	s.store.View(func(state *models.AppState) {
		for k, v := range state.MonthlyBudgets {
			out[k] = v
		}
	})
	return out
}

// Summary reports limit, current-month spend and remaining surplus per
// category, sorted by category name. This is the same surplus figure the
// rollover protocol consumes.
func (s *monthlyService) Summary() []MonthlySummaryEntry {
	entries := []MonthlySummaryEntry{}
	s.store.View(func(state *models.AppState) {
		today := models.DateOf(s.now())
		for category, limit := range state.MonthlyBudgets {
			spent := engine.MonthlySpent(state.Transactions, category, today)
			entries = append(entries, MonthlySummaryEntry{
				Category:  category,
				Limit:     limit,
				Spent:     spent,
				Remaining: limit - spent,
			})
		}
	})
	sort.Slice(entries, func(i, j int) bool { return entries[i].Category < entries[j].Category })
	return entries
}
