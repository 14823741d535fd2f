package services

import (
	"testing"
	"time"

	"budgetwise/internal/models"
	"budgetwise/internal/store"
	"budgetwise/internal/testutil"
)

// fixedClock pins service time to a known instant for date-sensitive tests.
func fixedClock(year int, month time.Month, day int) func() time.Time {
	return func() time.Time {
		return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
	}
}

func newTxService(st *store.Store, now func() time.Time) *transactionService {
	return &transactionService{store: st, confirmer: AutoConfirmer{}, now: now}
}

func seedBudget(t *testing.T, st *store.Store, budget models.CustomBudget) {
	t.Helper()
	err := st.Update(func(state *models.AppState) error {
		state.CustomBudgets = append(state.CustomBudgets, budget)
		return nil
	})
	testutil.AssertNoError(t, err)
}

func TestAddTransaction(t *testing.T) {
	t.Run("expense_stores_negative_amount", func(t *testing.T) {
		st := testutil.NewTestStore()
		svc := newTxService(st, fixedClock(2024, 3, 10))

		tx, err := svc.AddTransaction(TransactionForm{
			Amount:   42.50,
			Type:     models.TransactionTypeExpense,
			Category: "Groceries",
			Tags:     " food , weekly ",
		})
		testutil.AssertNoError(t, err)

		if tx.ID == 0 {
			t.Fatal("expected non-zero transaction ID")
		}
		if tx.Amount != -42.50 {
			t.Errorf("expected amount -42.50, got %v", tx.Amount)
		}
		if tx.BudgetType != models.BudgetTypeMonthly {
			t.Errorf("expected monthly budget type default, got %q", tx.BudgetType)
		}
		if tx.Date.String() != "2024-03-10" {
			t.Errorf("expected date defaulted to today, got %s", tx.Date)
		}
		if len(tx.Tags) != 2 || tx.Tags[0] != "food" || tx.Tags[1] != "weekly" {
			t.Errorf("expected normalized tags, got %v", tx.Tags)
		}
	})

	t.Run("income_stores_positive_amount", func(t *testing.T) {
		st := testutil.NewTestStore()
		svc := newTxService(st, fixedClock(2024, 3, 10))

		tx, err := svc.AddTransaction(TransactionForm{
			Amount:   1000,
			Type:     models.TransactionTypeIncome,
			Category: "Salary",
		})
		testutil.AssertNoError(t, err)
		if tx.Amount != 1000 {
			t.Errorf("expected amount 1000, got %v", tx.Amount)
		}
	})

	t.Run("recalculates_target_budget", func(t *testing.T) {
		st := testutil.NewTestStore()
		svc := newTxService(st, fixedClock(2024, 3, 10))
		budget := testutil.Budget("Trip", 500)
		seedBudget(t, st, budget)

		_, err := svc.AddTransaction(TransactionForm{
			Amount:         125,
			Type:           models.TransactionTypeExpense,
			BudgetType:     models.BudgetTypeCustom,
			CustomBudgetID: &budget.ID,
			CustomCategory: "Trip",
		})
		testutil.AssertNoError(t, err)

		st.View(func(state *models.AppState) {
			b := state.FindCustomBudget(budget.ID)
			if b.SpentAmount != 125 {
				t.Errorf("expected spent 125, got %v", b.SpentAmount)
			}
			if b.RemainingAmount != 375 {
				t.Errorf("expected remaining 375, got %v", b.RemainingAmount)
			}
		})
	})

	t.Run("rejects_frozen_budget", func(t *testing.T) {
		for _, status := range []models.BudgetStatus{models.BudgetStatusLocked, models.BudgetStatusPaused} {
			st := testutil.NewTestStore()
			svc := newTxService(st, fixedClock(2024, 3, 10))
			budget := testutil.Budget("Frozen", 500)
			budget.Status = status
			seedBudget(t, st, budget)

			_, err := svc.AddTransaction(TransactionForm{
				Amount:         10,
				Type:           models.TransactionTypeExpense,
				BudgetType:     models.BudgetTypeCustom,
				CustomBudgetID: &budget.ID,
				CustomCategory: "Frozen",
			})
			testutil.AssertAppError(t, err, "BUDGET_FROZEN")

			st.View(func(state *models.AppState) {
				if len(state.Transactions) != 0 {
					t.Errorf("expected ledger untouched for %q budget", status)
				}
			})
		}
	})

	t.Run("missing_budget_reference_is_accepted", func(t *testing.T) {
		// Stale references degrade to the not-found path instead of
		// blocking the write.
		st := testutil.NewTestStore()
		svc := newTxService(st, fixedClock(2024, 3, 10))
		var ghost int64 = 999

		_, err := svc.AddTransaction(TransactionForm{
			Amount:         10,
			Type:           models.TransactionTypeExpense,
			BudgetType:     models.BudgetTypeCustom,
			CustomBudgetID: &ghost,
			CustomCategory: "Gone",
		})
		testutil.AssertNoError(t, err)
	})

	t.Run("validation_rejections", func(t *testing.T) {
		st := testutil.NewTestStore()
		svc := newTxService(st, fixedClock(2024, 3, 10))

		cases := []struct {
			name string
			form TransactionForm
		}{
			{"zero_amount", TransactionForm{Amount: 0, Type: models.TransactionTypeExpense, Category: "X"}},
			{"bad_type", TransactionForm{Amount: 10, Type: "refund", Category: "X"}},
			{"monthly_without_category", TransactionForm{Amount: 10, Type: models.TransactionTypeExpense}},
			{"custom_without_budget", TransactionForm{Amount: 10, Type: models.TransactionTypeExpense, BudgetType: models.BudgetTypeCustom}},
			{"transfer_budget_type", TransactionForm{Amount: 10, Type: models.TransactionTypeExpense, BudgetType: models.BudgetTypeTransfer, Category: "X"}},
			{"recurring_without_frequency", TransactionForm{Amount: 10, Type: models.TransactionTypeExpense, Category: "X", IsRecurring: true}},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := svc.AddTransaction(tc.form)
				testutil.AssertAppError(t, err, "INVALID_INPUT")
			})
		}
	})
}

func TestUpdateTransaction(t *testing.T) {
	t.Run("replaces_fields_and_keeps_identity", func(t *testing.T) {
		st := testutil.NewTestStore()
		svc := newTxService(st, fixedClock(2024, 3, 10))

		created, err := svc.AddTransaction(TransactionForm{
			Amount:   20,
			Type:     models.TransactionTypeExpense,
			Category: "Groceries",
		})
		testutil.AssertNoError(t, err)

		updated, err := svc.UpdateTransaction(created.ID, TransactionForm{
			Amount:   35,
			Type:     models.TransactionTypeIncome,
			Category: "Refunds",
		})
		testutil.AssertNoError(t, err)

		if updated.ID != created.ID {
			t.Errorf("expected ID carried over, got %d", updated.ID)
		}
		if !updated.Timestamp.Equal(created.Timestamp) {
			t.Error("expected timestamp carried over")
		}
		if updated.Amount != 35 || updated.Category != "Refunds" {
			t.Errorf("expected replaced fields, got %+v", updated)
		}
	})

	t.Run("missing_id", func(t *testing.T) {
		st := testutil.NewTestStore()
		svc := newTxService(st, fixedClock(2024, 3, 10))

		_, err := svc.UpdateTransaction(12345, TransactionForm{
			Amount:   10,
			Type:     models.TransactionTypeExpense,
			Category: "X",
		})
		testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")
	})

	t.Run("rejects_edit_out_of_frozen_budget", func(t *testing.T) {
		st := testutil.NewTestStore()
		svc := newTxService(st, fixedClock(2024, 3, 10))
		budget := testutil.Budget("Trip", 500)
		seedBudget(t, st, budget)

		created, err := svc.AddTransaction(TransactionForm{
			Amount:         10,
			Type:           models.TransactionTypeExpense,
			BudgetType:     models.BudgetTypeCustom,
			CustomBudgetID: &budget.ID,
			CustomCategory: "Trip",
		})
		testutil.AssertNoError(t, err)

		err = st.Update(func(state *models.AppState) error {
			state.FindCustomBudget(budget.ID).Status = models.BudgetStatusLocked
			return nil
		})
		testutil.AssertNoError(t, err)

		_, err = svc.UpdateTransaction(created.ID, TransactionForm{
			Amount:   99,
			Type:     models.TransactionTypeExpense,
			Category: "Groceries",
		})
		testutil.AssertAppError(t, err, "BUDGET_FROZEN")
	})
}

func TestDeleteTransaction(t *testing.T) {
	t.Run("removes_and_recalculates", func(t *testing.T) {
		st := testutil.NewTestStore()
		svc := newTxService(st, fixedClock(2024, 3, 10))
		budget := testutil.Budget("Trip", 500)
		seedBudget(t, st, budget)

		created, err := svc.AddTransaction(TransactionForm{
			Amount:         200,
			Type:           models.TransactionTypeExpense,
			BudgetType:     models.BudgetTypeCustom,
			CustomBudgetID: &budget.ID,
			CustomCategory: "Trip",
		})
		testutil.AssertNoError(t, err)

		testutil.AssertNoError(t, svc.DeleteTransaction(created.ID))

		st.View(func(state *models.AppState) {
			if len(state.Transactions) != 0 {
				t.Errorf("expected empty ledger, got %d entries", len(state.Transactions))
			}
			b := state.FindCustomBudget(budget.ID)
			if b.SpentAmount != 0 || b.RemainingAmount != 500 {
				t.Errorf("expected derived fields restored, got spent=%v remaining=%v",
					b.SpentAmount, b.RemainingAmount)
			}
		})
	})

	t.Run("missing_id_is_a_noop", func(t *testing.T) {
		st := testutil.NewTestStore()
		svc := newTxService(st, fixedClock(2024, 3, 10))
		testutil.AssertNoError(t, svc.DeleteTransaction(98765))
	})

	t.Run("rejects_frozen_budget", func(t *testing.T) {
		st := testutil.NewTestStore()
		svc := newTxService(st, fixedClock(2024, 3, 10))
		budget := testutil.Budget("Trip", 500)
		seedBudget(t, st, budget)

		created, err := svc.AddTransaction(TransactionForm{
			Amount:         10,
			Type:           models.TransactionTypeExpense,
			BudgetType:     models.BudgetTypeCustom,
			CustomBudgetID: &budget.ID,
			CustomCategory: "Trip",
		})
		testutil.AssertNoError(t, err)

		err = st.Update(func(state *models.AppState) error {
			state.FindCustomBudget(budget.ID).Status = models.BudgetStatusPaused
			return nil
		})
		testutil.AssertNoError(t, err)

		testutil.AssertAppError(t, svc.DeleteTransaction(created.ID), "BUDGET_FROZEN")
	})
}

func TestListTransactions(t *testing.T) {
	st := testutil.NewTestStore()
	svc := newTxService(st, fixedClock(2024, 3, 10))

	first, err := svc.AddTransaction(TransactionForm{Amount: 1, Type: models.TransactionTypeExpense, Category: "A"})
	testutil.AssertNoError(t, err)
	second, err := svc.AddTransaction(TransactionForm{Amount: 2, Type: models.TransactionTypeExpense, Category: "B"})
	testutil.AssertNoError(t, err)

	list := svc.ListTransactions()
	if len(list) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(list))
	}
	if list[0].ID != second.ID || list[1].ID != first.ID {
		t.Error("expected newest record first")
	}
}

func TestNormalizeTags(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"", []string{}},
		{" , ,", []string{}},
		{"food", []string{"food"}},
		{"food, weekly , trip", []string{"food", "weekly", "trip"}},
	}
	for _, tc := range cases {
		got := NormalizeTags(tc.in)
		if len(got) != len(tc.want) {
			t.Errorf("NormalizeTags(%q) = %v, want %v", tc.in, got, tc.want)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("NormalizeTags(%q) = %v, want %v", tc.in, got, tc.want)
				break
			}
		}
	}
}
