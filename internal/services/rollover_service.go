package services

import (
	"fmt"
	"time"

	"budgetwise/internal/engine"
	apperrors "budgetwise/internal/errors"
	"budgetwise/internal/ident"
	"budgetwise/internal/models"
	"budgetwise/internal/store"
)

// rolloverCategory is the destination sub-category rollover credits land in.
const rolloverCategory = "Rollover Funds"

// rolloverService manages relationship rules and turns end-of-month monthly
// surpluses into custom-budget credits.
type rolloverService struct {
	store     *store.Store
	confirmer Confirmer
	now       func() time.Time
}

// NewRolloverService creates a new RolloverServicer.
func NewRolloverService(st *store.Store, confirmer Confirmer) RolloverServicer {
	return &rolloverService{store: st, confirmer: confirmer, now: time.Now}
}

// CreateRelationship adds a standing rule linking a monthly category's
// surplus to a destination custom budget.
func (s *rolloverService) CreateRelationship(sourceCategory string, destinationBudgetID int64) (*models.BudgetRelationship, error) {
	if sourceCategory == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "source category is required")
	}

	var rel models.BudgetRelationship
	err := s.store.Update(func(state *models.AppState) error {
		if state.FindCustomBudget(destinationBudgetID) == nil {
			return apperrors.WithMessage(apperrors.ErrBudgetNotFound, "Destination budget not found")
		}
		rel = models.BudgetRelationship{
			ID:                  ident.Next(),
			SourceCategory:      sourceCategory,
			DestinationBudgetID: destinationBudgetID,
			Condition:           models.ConditionEndOfMonthSurplus,
		}
		state.Relationships = append(state.Relationships, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &rel, nil
}

// ListRelationships returns a copy of all rules.
func (s *rolloverService) ListRelationships() []models.BudgetRelationship {
	var out []models.BudgetRelationship
	s.store.View(func(state *models.AppState) {
		out = append([]models.BudgetRelationship{}, state.Relationships...)
	})
	return out
}

// DeleteRelationship removes a rule after confirmation.
func (s *rolloverService) DeleteRelationship(id int64) error {
	var exists bool
	s.store.View(func(state *models.AppState) {
		for _, r := range state.Relationships {
			if r.ID == id {
				exists = true
				return
			}
		}
	})
	if !exists {
		return apperrors.ErrRelationshipNotFound
	}

	return s.confirmer.Confirm(
		"Delete rollover rule",
		"Future end-of-month surpluses for this category will no longer be rolled over.",
		func() error {
			return s.store.Update(func(state *models.AppState) error {
				kept := state.Relationships[:0]
				for _, r := range state.Relationships {
					if r.ID != id {
						kept = append(kept, r)
					}
				}
				state.Relationships = kept
				return nil
			})
		},
	)
}

// ProcessEndOfMonthRollovers runs every relationship rule once: each
// monthly category with a positive current-month surplus credits its
// destination budget with one transfer-type income transaction.
//
// The ledger has no already-rolled-over marker, so running this twice in
// the same month double-credits the destinations. Known limitation, kept
// deliberately; callers trigger this once at month end.
func (s *rolloverService) ProcessEndOfMonthRollovers() (*RolloverResult, error) {
	result := &RolloverResult{}
	err := s.confirmer.Confirm(
		"Process rollovers",
		"Unspent monthly budget surpluses will be credited to their linked custom budgets.",
		func() error {
			return s.store.Update(func(state *models.AppState) error {
				today := models.DateOf(s.now())
				timestamp := s.now()

				var credits []models.Transaction
				for _, rel := range state.Relationships {
					limit := state.MonthlyBudgets.Limit(rel.SourceCategory)
					remaining := limit - engine.MonthlySpent(state.Transactions, rel.SourceCategory, today)
					if remaining <= 0 {
						continue
					}
					dest := state.FindCustomBudget(rel.DestinationBudgetID)
					if dest == nil {
						continue
					}

					destID := rel.DestinationBudgetID
					credits = append(credits, models.Transaction{
						ID:             ident.Next(),
						Amount:         remaining,
						Type:           models.TransactionTypeIncome,
						BudgetType:     models.BudgetTypeTransfer,
						CustomBudgetID: &destID,
						CustomCategory: rolloverCategory,
						Description:    fmt.Sprintf("End of month rollover from %s", rel.SourceCategory),
						Date:           today,
						Timestamp:      timestamp,
						Tags:           []string{"rollover", "automation"},
					})
					result.CreatedCount++
					result.TotalCredited += remaining
				}

				if len(credits) == 0 {
					// No surplus anywhere: a reported no-op, not an error.
					return nil
				}

				state.Transactions = append(state.Transactions, credits...)
				state.CustomBudgets = engine.Recalculate(state.Transactions, state.CustomBudgets, s.now())
				return nil
			})
		},
	)
	if err != nil {
		return nil, err
	}
	return result, nil
}
