package models

import "time"

// BudgetStatus is the lifecycle status of a custom budget.
// Completed is reached automatically when spending covers the total;
// paused, locked and archived are manual overrides that recalculation
// must preserve.
type BudgetStatus string

const (
	BudgetStatusActive    BudgetStatus = "active"
	BudgetStatusCompleted BudgetStatus = "completed"
	BudgetStatusPaused    BudgetStatus = "paused"
	BudgetStatusLocked    BudgetStatus = "locked"
	BudgetStatusArchived  BudgetStatus = "archived"
)

// BudgetPriority represents how important a custom budget is to the user.
type BudgetPriority string

const (
	PriorityLow    BudgetPriority = "low"
	PriorityMedium BudgetPriority = "medium"
	PriorityHigh   BudgetPriority = "high"
)

// CustomBudget is a purpose-scoped envelope with its own sub-categories,
// independent of the monthly category budgets.
//
// SpentAmount and RemainingAmount are derived caches: the recalculation
// engine is their only writer. Never assign them from any other code path.
type CustomBudget struct {
	ID          int64          `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Priority    BudgetPriority `json:"priority"`
	Deadline    *Date          `json:"deadline,omitempty"`

	TotalAmount float64 `json:"totalAmount"`

	// CategoryBudgets maps sub-category name to its allocated amount. A
	// category may appear in Categories with no allocation; Categories keeps
	// the display order.
	CategoryBudgets map[string]float64 `json:"categoryBudgets"`
	Categories      []string           `json:"categories"`

	SpentAmount     float64 `json:"spentAmount"`
	RemainingAmount float64 `json:"remainingAmount"`

	Status BudgetStatus `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// IsFrozen reports whether the budget rejects transaction writes.
func (b *CustomBudget) IsFrozen() bool {
	return b.Status == BudgetStatusLocked || b.Status == BudgetStatusPaused
}

// HasManualStatus reports whether the status is a manual override that
// recalculation preserves regardless of spend.
func (b *CustomBudget) HasManualStatus() bool {
	switch b.Status {
	case BudgetStatusPaused, BudgetStatusLocked, BudgetStatusArchived:
		return true
	}
	return false
}
