package services

import (
	"fmt"
	"math"
	"time"

	"budgetwise/internal/engine"
	apperrors "budgetwise/internal/errors"
	"budgetwise/internal/ident"
	"budgetwise/internal/models"
	"budgetwise/internal/store"
)

// allocationTolerance is the allowed drift between the transfer amount
// field and the sum of the user-edited per-category allocation fields.
const allocationTolerance = 0.01

// transferService moves allocated funds between custom budgets. A transfer
// is a paired set of ordinary ledger transactions plus a supplemental audit
// event; there is no special balance-affecting entry type.
type transferService struct {
	store *store.Store
	now   func() time.Time
}

// NewTransferService creates a new TransferServicer.
func NewTransferService(st *store.Store) TransferServicer {
	return &transferService{store: st, now: time.Now}
}

// TransferFunds validates and applies a transfer of amount from one
// budget's category into one or more categories of another budget.
//
// All failure modes are pre-commit validation rejections; the ledger is
// mutated once, after every check has passed, so nothing is ever partially
// applied.
func (s *transferService) TransferFunds(fromBudgetID int64, fromCategory string, toBudgetID int64, amount float64, allocations map[string]float64) (*models.TransferEvent, error) {
	if fromCategory == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "source category is required")
	}
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "transfer amount must be a positive number")
	}
	if len(allocations) == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "at least one destination allocation is required")
	}
	for category, alloc := range allocations {
		if alloc < 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "allocation for "+category+" cannot be negative")
		}
	}

	var event models.TransferEvent
	err := s.store.Update(func(state *models.AppState) error {
		from := state.FindCustomBudget(fromBudgetID)
		if from == nil {
			return apperrors.WithMessage(apperrors.ErrBudgetNotFound, "Source budget not found")
		}
		to := state.FindCustomBudget(toBudgetID)
		if to == nil {
			return apperrors.WithMessage(apperrors.ErrBudgetNotFound, "Destination budget not found")
		}

		available := from.CategoryBudgets[fromCategory] - engine.SpentInCategory(state.Transactions, fromBudgetID, fromCategory)
		if amount > available {
			return apperrors.WithMessage(apperrors.ErrInsufficientCategoryFunds,
				fmt.Sprintf("Only %.2f is available in %q", available, fromCategory))
		}

		// The amount field and the per-category breakdown are edited
		// separately in the UI; re-check they agree before committing.
		var allocated float64
		for _, alloc := range allocations {
			allocated += alloc
		}
		if math.Abs(allocated-amount) > allocationTolerance {
			return apperrors.WithMessage(apperrors.ErrAllocationMismatch,
				fmt.Sprintf("Transfer amount is %.2f but allocations sum to %.2f", amount, allocated))
		}

		today := models.DateOf(s.now())
		timestamp := s.now()
		fromID := fromBudgetID
		entries := []models.Transaction{{
			ID:             ident.Next(),
			Amount:         -amount,
			Type:           models.TransactionTypeExpense,
			BudgetType:     models.BudgetTypeCustom,
			CustomBudgetID: &fromID,
			CustomCategory: fromCategory,
			Description:    fmt.Sprintf("Transfer to %s", to.Name),
			Date:           today,
			Timestamp:      timestamp,
			Tags:           []string{"transfer"},
		}}
		for category, alloc := range allocations {
			if alloc == 0 {
				continue
			}
			toID := toBudgetID
			entries = append(entries, models.Transaction{
				ID:             ident.Next(),
				Amount:         alloc,
				Type:           models.TransactionTypeIncome,
				BudgetType:     models.BudgetTypeCustom,
				CustomBudgetID: &toID,
				CustomCategory: category,
				Description:    fmt.Sprintf("Transfer from %s", from.Name),
				Date:           today,
				Timestamp:      timestamp,
				Tags:           []string{"transfer"},
			})
		}

		// The audit record is supplemental: reporting reads it, balance
		// math never does.
		event = models.TransferEvent{
			ID:                    ident.Next(),
			Date:                  today,
			Amount:                amount,
			FromBudgetID:          fromBudgetID,
			FromCategory:          fromCategory,
			ToBudgetID:            toBudgetID,
			ToCategoryAllocations: copyAllocations(allocations),
		}

		state.Transactions = append(state.Transactions, entries...)
		state.TransferLog = append(state.TransferLog, event)
		state.CustomBudgets = engine.Recalculate(state.Transactions, state.CustomBudgets, s.now())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// TransferLog returns a copy of the audit trail, newest first.
func (s *transferService) TransferLog() []models.TransferEvent {
	var out []models.TransferEvent
	s.store.View(func(state *models.AppState) {
		out = make([]models.TransferEvent, len(state.TransferLog))
		copy(out, state.TransferLog)
	})
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

func copyAllocations(src map[string]float64) map[string]float64 {
	dst := make(map[string]float64, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
