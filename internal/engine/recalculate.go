// Package engine recomputes custom-budget derived fields from the
// transaction ledger. It is the consistency core of the application: every
// mutation that can change budget totals must be followed by a Recalculate
// pass, and nothing else may write SpentAmount, RemainingAmount or the
// automatic part of Status.
package engine

import (
	"math"
	"time"

	"budgetwise/internal/models"
)

// Recalculate returns a new budget list with SpentAmount, RemainingAmount
// and Status recomputed from the ledger. Pure function: inputs are not
// modified, and committing the result is the caller's job.
//
// Per budget: spent is the sum of absolute negative amounts across all its
// transactions, income the sum of positive ones (transfer and rollover
// credits included), and remaining = total - spent + income.
//
// Manual statuses (paused, locked, archived) survive recalculation
// untouched. Otherwise the budget is completed when spent >= total, active
// when not. The rule is applied literally, so a zero-amount budget with no
// transactions reports completed (0 >= 0); a known product quirk that is
// kept intact rather than special-cased.
func Recalculate(transactions []models.Transaction, budgets []models.CustomBudget, now time.Time) []models.CustomBudget {
	out := make([]models.CustomBudget, len(budgets))
	for i, b := range budgets {
		spent, income := Totals(transactions, b.ID)

		b.SpentAmount = spent
		b.RemainingAmount = b.TotalAmount - spent + income

		if !b.HasManualStatus() {
			if spent >= b.TotalAmount {
				b.Status = models.BudgetStatusCompleted
			} else {
				b.Status = models.BudgetStatusActive
			}
		}

		b.UpdatedAt = now
		out[i] = b
	}
	return out
}

// Totals sums a budget's ledger activity: spent as a positive magnitude,
// income as-is. Matches on CustomBudgetID regardless of budget type so
// rollover credits count.
func Totals(transactions []models.Transaction, budgetID int64) (spent, income float64) {
	for i := range transactions {
		t := &transactions[i]
		if !t.BelongsToBudget(budgetID) {
			continue
		}
		if t.Amount < 0 {
			spent += math.Abs(t.Amount)
		} else {
			income += t.Amount
		}
	}
	return spent, income
}

// SpentInCategory returns the spend magnitude recorded against one
// sub-category of a custom budget.
func SpentInCategory(transactions []models.Transaction, budgetID int64, category string) float64 {
	var spent float64
	for i := range transactions {
		t := &transactions[i]
		if t.BelongsToBudget(budgetID) && t.CustomCategory == category && t.Amount < 0 {
			spent += math.Abs(t.Amount)
		}
	}
	return spent
}

// MonthlySpent returns the spend magnitude for a monthly category within
// the calendar month containing ref. Only monthly-budget expenses count;
// custom-budget and transfer entries carry no monthly category.
func MonthlySpent(transactions []models.Transaction, category string, ref models.Date) float64 {
	var spent float64
	for i := range transactions {
		t := &transactions[i]
		if t.BudgetType == models.BudgetTypeCustom || t.BudgetType == models.BudgetTypeTransfer {
			continue
		}
		if t.Category != category || t.Amount >= 0 {
			continue
		}
		if t.Date.SameMonth(ref) {
			spent += math.Abs(t.Amount)
		}
	}
	return spent
}
