package store

import (
	"errors"
	"testing"

	"budgetwise/internal/models"
)

func TestUpdateAndView(t *testing.T) {
	st := New()

	err := st.Update(func(state *models.AppState) error {
		state.MonthlyBudgets["Groceries"] = 400
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	st.View(func(state *models.AppState) {
		if state.MonthlyBudgets["Groceries"] != 400 {
			t.Error("expected mutation visible")
		}
	})
}

func TestUpdateErrorAborts(t *testing.T) {
	st := New()
	boom := errors.New("boom")

	notified := false
	st.SetOnMutate(func() { notified = true })

	err := st.Update(func(state *models.AppState) error {
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected fn error surfaced, got %v", err)
	}
	if notified {
		t.Error("expected no mutation notification on error")
	}
}

func TestOnMutateFiresOnSuccess(t *testing.T) {
	st := New()
	calls := 0
	st.SetOnMutate(func() { calls++ })

	for i := 0; i < 3; i++ {
		if err := st.Update(func(state *models.AppState) error { return nil }); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if calls != 3 {
		t.Errorf("expected 3 notifications, got %d", calls)
	}
}

func TestReplace(t *testing.T) {
	st := New()

	fresh := models.NewAppState()
	fresh.MonthlyBudgets["Rent"] = 900
	st.Replace(fresh)

	st.View(func(state *models.AppState) {
		if state.MonthlyBudgets["Rent"] != 900 {
			t.Error("expected replaced state")
		}
	})
}

func TestStateReturnsDeepCopy(t *testing.T) {
	st := New()
	err := st.Update(func(state *models.AppState) error {
		state.MonthlyBudgets["Groceries"] = 400
		state.Transactions = append(state.Transactions, models.Transaction{
			ID:   1,
			Tags: []string{"food"},
		})
		state.CustomBudgets = append(state.CustomBudgets, models.CustomBudget{
			ID:              2,
			CategoryBudgets: map[string]float64{"Trip": 100},
		})
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	snapshot := st.State()
	snapshot.MonthlyBudgets["Groceries"] = 0
	snapshot.Transactions[0].Tags[0] = "mutated"
	snapshot.CustomBudgets[0].CategoryBudgets["Trip"] = 0

	st.View(func(state *models.AppState) {
		if state.MonthlyBudgets["Groceries"] != 400 {
			t.Error("expected monthly budgets isolated from the copy")
		}
		if state.Transactions[0].Tags[0] != "food" {
			t.Error("expected tags isolated from the copy")
		}
		if state.CustomBudgets[0].CategoryBudgets["Trip"] != 100 {
			t.Error("expected allocations isolated from the copy")
		}
	})
}
