package services

import (
	"testing"
	"time"

	"budgetwise/internal/models"
	"budgetwise/internal/store"
	"budgetwise/internal/testutil"
)

func newBudgetSvc(st *store.Store, now func() time.Time) *budgetService {
	return &budgetService{store: st, confirmer: AutoConfirmer{}, now: now}
}

func TestCreateCustomBudget(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		st := testutil.NewTestStore()
		svc := newBudgetSvc(st, fixedClock(2024, 3, 10))

		budget, err := svc.CreateCustomBudget(CustomBudgetForm{
			Name:        "Trip to Japan",
			TotalAmount: 3000,
			Categories:  []string{"Flights", "Hotels"},
			CategoryBudgets: map[string]float64{
				"Flights": 1200,
				"Hotels":  1000,
			},
		})
		testutil.AssertNoError(t, err)

		if budget.ID == 0 {
			t.Fatal("expected non-zero budget ID")
		}
		if budget.Priority != models.PriorityMedium {
			t.Errorf("expected medium priority default, got %q", budget.Priority)
		}
		if budget.Status != models.BudgetStatusActive {
			t.Errorf("expected active status, got %q", budget.Status)
		}
		if budget.SpentAmount != 0 || budget.RemainingAmount != 3000 {
			t.Errorf("expected fresh derived fields, got spent=%v remaining=%v",
				budget.SpentAmount, budget.RemainingAmount)
		}
	})

	t.Run("lists_allocated_categories", func(t *testing.T) {
		st := testutil.NewTestStore()
		svc := newBudgetSvc(st, fixedClock(2024, 3, 10))

		budget, err := svc.CreateCustomBudget(CustomBudgetForm{
			Name:            "Trip",
			TotalAmount:     500,
			Categories:      []string{"Flights"},
			CategoryBudgets: map[string]float64{"Hotels": 200},
		})
		testutil.AssertNoError(t, err)

		found := false
		for _, c := range budget.Categories {
			if c == "Hotels" {
				found = true
			}
		}
		if !found {
			t.Errorf("expected allocated category listed, got %v", budget.Categories)
		}
	})

	t.Run("validation_rejections", func(t *testing.T) {
		st := testutil.NewTestStore()
		svc := newBudgetSvc(st, fixedClock(2024, 3, 10))

		_, err := svc.CreateCustomBudget(CustomBudgetForm{TotalAmount: 100})
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		_, err = svc.CreateCustomBudget(CustomBudgetForm{Name: "X", TotalAmount: -1})
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		_, err = svc.CreateCustomBudget(CustomBudgetForm{Name: "X", Priority: "urgent"})
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		_, err = svc.CreateCustomBudget(CustomBudgetForm{
			Name:            "X",
			CategoryBudgets: map[string]float64{"A": -5},
		})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestUpdateCustomBudget(t *testing.T) {
	t.Run("recalculates_after_total_change", func(t *testing.T) {
		st := testutil.NewTestStore()
		budgetSvc := newBudgetSvc(st, fixedClock(2024, 3, 10))
		txSvc := newTxService(st, fixedClock(2024, 3, 10))

		budget, err := budgetSvc.CreateCustomBudget(CustomBudgetForm{
			Name:            "Trip",
			TotalAmount:     500,
			CategoryBudgets: map[string]float64{"Trip": 500},
		})
		testutil.AssertNoError(t, err)

		_, err = txSvc.AddTransaction(TransactionForm{
			Amount:         400,
			Type:           models.TransactionTypeExpense,
			BudgetType:     models.BudgetTypeCustom,
			CustomBudgetID: &budget.ID,
			CustomCategory: "Trip",
		})
		testutil.AssertNoError(t, err)

		// Lowering the total below the spend flips the budget to completed.
		updated, err := budgetSvc.UpdateCustomBudget(budget.ID, CustomBudgetForm{
			Name:            "Trip",
			TotalAmount:     300,
			CategoryBudgets: map[string]float64{"Trip": 300},
		})
		testutil.AssertNoError(t, err)

		if updated.Status != models.BudgetStatusCompleted {
			t.Errorf("expected completed after total drop, got %q", updated.Status)
		}
		if updated.SpentAmount != 400 {
			t.Errorf("expected spent 400, got %v", updated.SpentAmount)
		}
	})

	t.Run("missing_id", func(t *testing.T) {
		st := testutil.NewTestStore()
		svc := newBudgetSvc(st, fixedClock(2024, 3, 10))

		_, err := svc.UpdateCustomBudget(424242, CustomBudgetForm{Name: "X"})
		testutil.AssertAppError(t, err, "BUDGET_NOT_FOUND")
	})
}

func TestDeleteCustomBudget(t *testing.T) {
	t.Run("cascades_to_transactions_and_relationships", func(t *testing.T) {
		st := testutil.NewTestStore()
		budgetSvc := newBudgetSvc(st, fixedClock(2024, 3, 10))
		txSvc := newTxService(st, fixedClock(2024, 3, 10))
		rolloverSvc := &rolloverService{store: st, confirmer: AutoConfirmer{}, now: fixedClock(2024, 3, 10)}

		doomed, err := budgetSvc.CreateCustomBudget(CustomBudgetForm{Name: "Doomed", TotalAmount: 100})
		testutil.AssertNoError(t, err)
		survivor, err := budgetSvc.CreateCustomBudget(CustomBudgetForm{Name: "Survivor", TotalAmount: 100})
		testutil.AssertNoError(t, err)

		_, err = txSvc.AddTransaction(TransactionForm{
			Amount:         10,
			Type:           models.TransactionTypeExpense,
			BudgetType:     models.BudgetTypeCustom,
			CustomBudgetID: &doomed.ID,
			CustomCategory: "Stuff",
		})
		testutil.AssertNoError(t, err)
		keeper, err := txSvc.AddTransaction(TransactionForm{
			Amount:   5,
			Type:     models.TransactionTypeExpense,
			Category: "Groceries",
		})
		testutil.AssertNoError(t, err)

		_, err = rolloverSvc.CreateRelationship("Groceries", doomed.ID)
		testutil.AssertNoError(t, err)
		_, err = rolloverSvc.CreateRelationship("Rent", survivor.ID)
		testutil.AssertNoError(t, err)

		testutil.AssertNoError(t, budgetSvc.DeleteCustomBudget(doomed.ID))

		st.View(func(state *models.AppState) {
			if state.FindCustomBudget(doomed.ID) != nil {
				t.Error("expected budget removed")
			}
			if state.FindCustomBudget(survivor.ID) == nil {
				t.Error("expected other budget kept")
			}
			if len(state.Transactions) != 1 || state.Transactions[0].ID != keeper.ID {
				t.Errorf("expected only the monthly transaction kept, got %d", len(state.Transactions))
			}
			if len(state.Relationships) != 1 || state.Relationships[0].DestinationBudgetID != survivor.ID {
				t.Errorf("expected only the surviving relationship kept, got %d", len(state.Relationships))
			}
		})
	})

	t.Run("missing_id", func(t *testing.T) {
		st := testutil.NewTestStore()
		svc := newBudgetSvc(st, fixedClock(2024, 3, 10))
		testutil.AssertAppError(t, svc.DeleteCustomBudget(424242), "BUDGET_NOT_FOUND")
	})
}

func TestSetStatus(t *testing.T) {
	t.Run("pause_and_resume", func(t *testing.T) {
		st := testutil.NewTestStore()
		svc := newBudgetSvc(st, fixedClock(2024, 3, 10))

		budget, err := svc.CreateCustomBudget(CustomBudgetForm{Name: "Trip", TotalAmount: 500})
		testutil.AssertNoError(t, err)

		paused, err := svc.SetStatus(budget.ID, models.BudgetStatusPaused)
		testutil.AssertNoError(t, err)
		if paused.Status != models.BudgetStatusPaused {
			t.Errorf("expected paused, got %q", paused.Status)
		}

		resumed, err := svc.SetStatus(budget.ID, models.BudgetStatusActive)
		testutil.AssertNoError(t, err)
		if resumed.Status != models.BudgetStatusActive {
			t.Errorf("expected active, got %q", resumed.Status)
		}
	})

	t.Run("unlock_reasserts_completed", func(t *testing.T) {
		st := testutil.NewTestStore()
		budgetSvc := newBudgetSvc(st, fixedClock(2024, 3, 10))
		txSvc := newTxService(st, fixedClock(2024, 3, 10))

		budget, err := budgetSvc.CreateCustomBudget(CustomBudgetForm{Name: "Trip", TotalAmount: 100})
		testutil.AssertNoError(t, err)

		_, err = txSvc.AddTransaction(TransactionForm{
			Amount:         100,
			Type:           models.TransactionTypeExpense,
			BudgetType:     models.BudgetTypeCustom,
			CustomBudgetID: &budget.ID,
			CustomCategory: "Trip",
		})
		testutil.AssertNoError(t, err)

		_, err = budgetSvc.SetStatus(budget.ID, models.BudgetStatusLocked)
		testutil.AssertNoError(t, err)

		// Unlocking hands the budget back to the automatic rules.
		unlocked, err := budgetSvc.SetStatus(budget.ID, models.BudgetStatusActive)
		testutil.AssertNoError(t, err)
		if unlocked.Status != models.BudgetStatusCompleted {
			t.Errorf("expected completed reasserted after unlock, got %q", unlocked.Status)
		}
	})

	t.Run("invalid_status", func(t *testing.T) {
		st := testutil.NewTestStore()
		svc := newBudgetSvc(st, fixedClock(2024, 3, 10))

		budget, err := svc.CreateCustomBudget(CustomBudgetForm{Name: "Trip", TotalAmount: 500})
		testutil.AssertNoError(t, err)

		_, err = svc.SetStatus(budget.ID, models.BudgetStatusCompleted)
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		_, err = svc.SetStatus(budget.ID, "frozen")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("missing_id", func(t *testing.T) {
		st := testutil.NewTestStore()
		svc := newBudgetSvc(st, fixedClock(2024, 3, 10))
		_, err := svc.SetStatus(424242, models.BudgetStatusPaused)
		testutil.AssertAppError(t, err, "BUDGET_NOT_FOUND")
	})
}

func TestCountCustomBudgets(t *testing.T) {
	st := testutil.NewTestStore()
	svc := newBudgetSvc(st, fixedClock(2024, 3, 10))

	if svc.CountCustomBudgets() != 0 {
		t.Error("expected zero budgets initially")
	}
	_, err := svc.CreateCustomBudget(CustomBudgetForm{Name: "A"})
	testutil.AssertNoError(t, err)
	_, err = svc.CreateCustomBudget(CustomBudgetForm{Name: "B"})
	testutil.AssertNoError(t, err)
	if got := svc.CountCustomBudgets(); got != 2 {
		t.Errorf("expected 2 budgets, got %d", got)
	}
}
