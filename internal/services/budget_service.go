package services

import (
	"time"

	"budgetwise/internal/engine"
	apperrors "budgetwise/internal/errors"
	"budgetwise/internal/ident"
	"budgetwise/internal/models"
	"budgetwise/internal/store"
)

// budgetService handles custom budget lifecycle operations.
type budgetService struct {
	store     *store.Store
	confirmer Confirmer
	now       func() time.Time
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(st *store.Store, confirmer Confirmer) BudgetServicer {
	return &budgetService{store: st, confirmer: confirmer, now: time.Now}
}

func validateBudgetForm(form *CustomBudgetForm) error {
	if form.Name == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "budget name is required")
	}
	if form.TotalAmount < 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "total amount cannot be negative")
	}
	switch form.Priority {
	case models.PriorityLow, models.PriorityMedium, models.PriorityHigh, "":
	default:
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "priority must be low, medium or high")
	}
	for category, amount := range form.CategoryBudgets {
		if amount < 0 {
			return apperrors.WithMessage(apperrors.ErrInvalidInput, "allocation for "+category+" cannot be negative")
		}
	}
	return nil
}

// normalizeCategories keeps the submitted order and makes sure every
// allocated category is listed; a category may be listed with no
// allocation. The allocation sum may exceed the total; the UI warns, the
// core does not block.
func normalizeCategories(form *CustomBudgetForm) ([]string, map[string]float64) {
	allocations := make(map[string]float64, len(form.CategoryBudgets))
	for k, v := range form.CategoryBudgets {
		allocations[k] = v
	}

	categories := []string{}
	seen := map[string]bool{}
	for _, c := range form.Categories {
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		categories = append(categories, c)
	}
	for c := range allocations {
		if !seen[c] {
			seen[c] = true
			categories = append(categories, c)
		}
	}
	return categories, allocations
}

// CreateCustomBudget creates a new envelope. Derived fields start at their
// only trustworthy caller-free values: nothing spent, everything remaining.
func (s *budgetService) CreateCustomBudget(form CustomBudgetForm) (*models.CustomBudget, error) {
	if err := validateBudgetForm(&form); err != nil {
		return nil, err
	}

	categories, allocations := normalizeCategories(&form)
	priority := form.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}

	now := s.now()
	budget := models.CustomBudget{
		ID:              ident.Next(),
		Name:            form.Name,
		Description:     form.Description,
		Priority:        priority,
		Deadline:        form.Deadline,
		TotalAmount:     form.TotalAmount,
		Categories:      categories,
		CategoryBudgets: allocations,
		SpentAmount:     0,
		RemainingAmount: form.TotalAmount,
		Status:          models.BudgetStatusActive,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	err := s.store.Update(func(state *models.AppState) error {
		state.CustomBudgets = append(state.CustomBudgets, budget)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &budget, nil
}

// UpdateCustomBudget replaces the user-editable fields and recalculates,
// since a changed total or category set shifts the derived amounts.
func (s *budgetService) UpdateCustomBudget(id int64, form CustomBudgetForm) (*models.CustomBudget, error) {
	if err := validateBudgetForm(&form); err != nil {
		return nil, err
	}

	var updated models.CustomBudget
	err := s.store.Update(func(state *models.AppState) error {
		budget := state.FindCustomBudget(id)
		if budget == nil {
			return apperrors.ErrBudgetNotFound
		}

		categories, allocations := normalizeCategories(&form)
		budget.Name = form.Name
		budget.Description = form.Description
		if form.Priority != "" {
			budget.Priority = form.Priority
		}
		budget.Deadline = form.Deadline
		budget.TotalAmount = form.TotalAmount
		budget.Categories = categories
		budget.CategoryBudgets = allocations

		state.CustomBudgets = engine.Recalculate(state.Transactions, state.CustomBudgets, s.now())
		updated = *state.FindCustomBudget(id)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteCustomBudget removes an envelope after confirmation, cascading to
// its transactions and any relationship rule pointing at it. The remaining
// budgets are recalculated as defense in depth; their own transactions did
// not change.
func (s *budgetService) DeleteCustomBudget(id int64) error {
	var exists bool
	s.store.View(func(state *models.AppState) {
		exists = state.FindCustomBudget(id) != nil
	})
	if !exists {
		return apperrors.ErrBudgetNotFound
	}

	return s.confirmer.Confirm(
		"Delete budget",
		"This will remove the budget along with all of its transactions and linked rollover rules.",
		func() error {
			return s.store.Update(func(state *models.AppState) error {
				budgets := state.CustomBudgets[:0]
				for _, b := range state.CustomBudgets {
					if b.ID != id {
						budgets = append(budgets, b)
					}
				}
				state.CustomBudgets = budgets

				transactions := state.Transactions[:0]
				for _, t := range state.Transactions {
					if !t.BelongsToBudget(id) {
						transactions = append(transactions, t)
					}
				}
				state.Transactions = transactions

				relationships := state.Relationships[:0]
				for _, r := range state.Relationships {
					if r.DestinationBudgetID != id {
						relationships = append(relationships, r)
					}
				}
				state.Relationships = relationships

				state.CustomBudgets = engine.Recalculate(state.Transactions, state.CustomBudgets, s.now())
				return nil
			})
		},
	)
}

// GetCustomBudgetByID returns a copy of one budget.
func (s *budgetService) GetCustomBudgetByID(id int64) (*models.CustomBudget, error) {
	var found *models.CustomBudget
	s.store.View(func(state *models.AppState) {
		if b := state.FindCustomBudget(id); b != nil {
			cp := *b
			found = &cp
		}
	})
	if found == nil {
		return nil, apperrors.ErrBudgetNotFound
	}
	return found, nil
}

// ListCustomBudgets returns a copy of all budgets in creation order.
func (s *budgetService) ListCustomBudgets() []models.CustomBudget {
	var out []models.CustomBudget
	s.store.View(func(state *models.AppState) {
		out = make([]models.CustomBudget, len(state.CustomBudgets))
		copy(out, state.CustomBudgets)
	})
	return out
}

// CountCustomBudgets returns how many budgets exist, for tier limit checks.
func (s *budgetService) CountCustomBudgets() int {
	var n int
	s.store.View(func(state *models.AppState) {
		n = len(state.CustomBudgets)
	})
	return n
}

// SetStatus applies a manual lifecycle transition. Pause, lock and archive
// store the override directly; resume and unlock hand the budget back to
// the automatic rules, so a recalculation reasserts completed or active.
func (s *budgetService) SetStatus(id int64, status models.BudgetStatus) (*models.CustomBudget, error) {
	switch status {
	case models.BudgetStatusActive, models.BudgetStatusPaused, models.BudgetStatusLocked, models.BudgetStatusArchived:
	default:
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "status must be active, paused, locked or archived")
	}

	var updated models.CustomBudget
	err := s.store.Update(func(state *models.AppState) error {
		budget := state.FindCustomBudget(id)
		if budget == nil {
			return apperrors.ErrBudgetNotFound
		}
		budget.Status = status
		budget.UpdatedAt = s.now()

		state.CustomBudgets = engine.Recalculate(state.Transactions, state.CustomBudgets, s.now())
		updated = *state.FindCustomBudget(id)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
