package services

import (
	"math"
	"strings"
	"time"

	"budgetwise/internal/engine"
	apperrors "budgetwise/internal/errors"
	"budgetwise/internal/ident"
	"budgetwise/internal/models"
	"budgetwise/internal/store"
)

// transactionService handles ledger mutations. Every mutation that can
// change budget totals ends with a recalculation pass committed in the
// same store update.
type transactionService struct {
	store     *store.Store
	confirmer Confirmer
	now       func() time.Time
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(st *store.Store, confirmer Confirmer) TransactionServicer {
	return &transactionService{store: st, confirmer: confirmer, now: time.Now}
}

// validateForm applies the field rules shared by add and update.
func validateForm(form *TransactionForm) error {
	if form.Amount <= 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be a positive number")
	}
	if form.Type != models.TransactionTypeIncome && form.Type != models.TransactionTypeExpense {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "type must be income or expense")
	}
	switch form.BudgetType {
	case models.BudgetTypeMonthly, "":
		if form.Category == "" {
			return apperrors.WithMessage(apperrors.ErrInvalidInput, "category is required for monthly transactions")
		}
	case models.BudgetTypeCustom:
		if form.CustomBudgetID == nil || form.CustomCategory == "" {
			return apperrors.WithMessage(apperrors.ErrInvalidInput, "custom budget and category are required for custom transactions")
		}
	default:
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "budget type must be monthly or custom")
	}
	if form.IsRecurring && form.RecurringFrequency == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "recurring transactions need a frequency")
	}
	return nil
}

// checkTargetBudget rejects writes against a locked or paused budget. A
// reference to a budget that no longer exists is not an error here; stale
// references degrade to the not-found path of the defensive taxonomy.
func checkTargetBudget(state *models.AppState, budgetID *int64) error {
	if budgetID == nil {
		return nil
	}
	budget := state.FindCustomBudget(*budgetID)
	if budget != nil && budget.IsFrozen() {
		return apperrors.WithMessage(apperrors.ErrBudgetFrozen,
			"Budget \""+budget.Name+"\" is "+string(budget.Status)+" and cannot accept transactions")
	}
	return nil
}

// buildTransaction assembles a ledger entry from the form. The signed
// amount is fixed here, once; afterwards the stored amount is the single
// source of truth.
func (s *transactionService) buildTransaction(form *TransactionForm) models.Transaction {
	sign := 1.0
	if form.Type == models.TransactionTypeExpense {
		sign = -1.0
	}

	budgetType := form.BudgetType
	if budgetType == "" {
		budgetType = models.BudgetTypeMonthly
	}

	tx := models.Transaction{
		Amount:      math.Abs(form.Amount) * sign,
		Type:        form.Type,
		BudgetType:  budgetType,
		Description: form.Description,
		Date:        form.Date,
		Tags:        NormalizeTags(form.Tags),
		IsRecurring: form.IsRecurring,
	}
	if form.IsRecurring {
		tx.RecurringFrequency = form.RecurringFrequency
	}

	if budgetType == models.BudgetTypeCustom {
		id := *form.CustomBudgetID
		tx.CustomBudgetID = &id
		tx.CustomCategory = form.CustomCategory
	} else {
		tx.Category = form.Category
	}

	if tx.Date.IsZero() {
		tx.Date = models.DateOf(s.now())
	}
	return tx
}

// AddTransaction validates the form, appends a new ledger entry and
// recalculates all custom budgets.
func (s *transactionService) AddTransaction(form TransactionForm) (*models.Transaction, error) {
	if err := validateForm(&form); err != nil {
		return nil, err
	}

	var created models.Transaction
	err := s.store.Update(func(state *models.AppState) error {
		if form.BudgetType == models.BudgetTypeCustom {
			if err := checkTargetBudget(state, form.CustomBudgetID); err != nil {
				return err
			}
		}

		created = s.buildTransaction(&form)
		created.ID = ident.Next()
		created.Timestamp = s.now()

		state.Transactions = append(state.Transactions, created)
		state.CustomBudgets = engine.Recalculate(state.Transactions, state.CustomBudgets, s.now())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateTransaction replaces a ledger entry wholesale with a new object
// built from the form. Both the destination budget named in the form and
// the original budget the entry belonged to must be writable: edits out of
// a frozen budget are blocked symmetrically with edits into one.
func (s *transactionService) UpdateTransaction(id int64, form TransactionForm) (*models.Transaction, error) {
	if err := validateForm(&form); err != nil {
		return nil, err
	}

	var updated models.Transaction
	err := s.store.Update(func(state *models.AppState) error {
		existing := state.FindTransaction(id)
		if existing == nil {
			return apperrors.ErrTransactionNotFound
		}

		if form.BudgetType == models.BudgetTypeCustom {
			if err := checkTargetBudget(state, form.CustomBudgetID); err != nil {
				return err
			}
		}
		if err := checkTargetBudget(state, existing.CustomBudgetID); err != nil {
			return err
		}

		updated = s.buildTransaction(&form)
		// Carried over, not patched: identity and history position stay.
		updated.ID = existing.ID
		updated.Timestamp = existing.Timestamp
		updated.LastProcessedDate = existing.LastProcessedDate
		*existing = updated

		state.CustomBudgets = engine.Recalculate(state.Transactions, state.CustomBudgets, s.now())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteTransaction removes a ledger entry after confirmation and
// recalculates. A missing id is a silent no-op, defending against stale
// references from the UI.
func (s *transactionService) DeleteTransaction(id int64) error {
	var found bool
	var frozenErr error
	s.store.View(func(state *models.AppState) {
		tx := state.FindTransaction(id)
		if tx == nil {
			return
		}
		found = true
		frozenErr = checkTargetBudget(state, tx.CustomBudgetID)
	})
	if !found {
		return nil
	}
	if frozenErr != nil {
		return frozenErr
	}

	return s.confirmer.Confirm(
		"Delete transaction",
		"This will permanently remove the transaction from the ledger.",
		func() error {
			return s.store.Update(func(state *models.AppState) error {
				for i := range state.Transactions {
					if state.Transactions[i].ID != id {
						continue
					}
					// Re-check under the write lock; status may have changed
					// between the prompt and the confirmation.
					if err := checkTargetBudget(state, state.Transactions[i].CustomBudgetID); err != nil {
						return err
					}
					state.Transactions = append(state.Transactions[:i], state.Transactions[i+1:]...)
					state.CustomBudgets = engine.Recalculate(state.Transactions, state.CustomBudgets, s.now())
					return nil
				}
				return nil
			})
		},
	)
}

// ListTransactions returns a copy of the ledger, newest record first.
func (s *transactionService) ListTransactions() []models.Transaction {
	var out []models.Transaction
	s.store.View(func(state *models.AppState) {
		out = make([]models.Transaction, len(state.Transactions))
		copy(out, state.Transactions)
	})
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// GetTransactionByID returns a copy of one ledger entry.
func (s *transactionService) GetTransactionByID(id int64) (*models.Transaction, error) {
	var found *models.Transaction
	s.store.View(func(state *models.AppState) {
		if tx := state.FindTransaction(id); tx != nil {
			cp := *tx
			found = &cp
		}
	})
	if found == nil {
		return nil, apperrors.ErrTransactionNotFound
	}
	return found, nil
}

// NormalizeTags splits a comma-separated tag string into a trimmed list.
// Empty input yields an empty list, never nil.
func NormalizeTags(raw string) []string {
	tags := []string{}
	for _, part := range strings.Split(raw, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
