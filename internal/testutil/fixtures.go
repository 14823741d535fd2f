package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"budgetwise/internal/models"
	"budgetwise/internal/store"
)

// counter provides unique IDs across fixtures within a test run.
var counter atomic.Int64

// NextID returns a unique fixture ID.
func NextID() int64 {
	return counter.Add(1)
}

// NewTestStore creates an in-memory store with an empty state.
func NewTestStore() *store.Store {
	return store.New()
}

// Budget creates an active custom budget with one allocated category named
// like the budget.
func Budget(name string, total float64) models.CustomBudget {
	now := time.Now()
	return models.CustomBudget{
		ID:              NextID(),
		Name:            name,
		Priority:        models.PriorityMedium,
		TotalAmount:     total,
		CategoryBudgets: map[string]float64{name: total},
		Categories:      []string{name},
		RemainingAmount: total,
		Status:          models.BudgetStatusActive,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// Expense creates a monthly expense transaction. Amount is a magnitude; the
// stored amount is negative.
func Expense(category string, amount float64, date models.Date) models.Transaction {
	id := NextID()
	return models.Transaction{
		ID:          id,
		Amount:      -amount,
		Type:        models.TransactionTypeExpense,
		Category:    category,
		BudgetType:  models.BudgetTypeMonthly,
		Description: fmt.Sprintf("fixture expense %d", id),
		Date:        date,
		Timestamp:   time.Now(),
		Tags:        []string{},
	}
}

// Income creates a monthly income transaction.
func Income(category string, amount float64, date models.Date) models.Transaction {
	id := NextID()
	return models.Transaction{
		ID:          id,
		Amount:      amount,
		Type:        models.TransactionTypeIncome,
		Category:    category,
		BudgetType:  models.BudgetTypeMonthly,
		Description: fmt.Sprintf("fixture income %d", id),
		Date:        date,
		Timestamp:   time.Now(),
		Tags:        []string{},
	}
}

// BudgetExpense creates an expense against a custom budget category.
func BudgetExpense(budgetID int64, category string, amount float64, date models.Date) models.Transaction {
	tx := Expense(category, amount, date)
	tx.Category = ""
	tx.BudgetType = models.BudgetTypeCustom
	tx.CustomBudgetID = &budgetID
	tx.CustomCategory = category
	return tx
}

// BudgetIncome creates an income credit into a custom budget category.
func BudgetIncome(budgetID int64, category string, amount float64, date models.Date) models.Transaction {
	tx := Income(category, amount, date)
	tx.Category = ""
	tx.BudgetType = models.BudgetTypeCustom
	tx.CustomBudgetID = &budgetID
	tx.CustomCategory = category
	return tx
}
