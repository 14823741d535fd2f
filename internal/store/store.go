// Package store owns the in-memory application state. Services are the only
// callers; every read and mutation runs under the store's lock, so there is
// exactly one logical writer at a time and compound read-validate-mutate
// operations stay consistent.
package store

import (
	"sync"

	"budgetwise/internal/models"
)

// Store is the mutable state bag behind all ledger and budget operations.
type Store struct {
	mu       sync.Mutex
	state    models.AppState
	onMutate func()
}

// New creates a store with empty collections.
func New() *Store {
	return &Store{state: models.NewAppState()}
}

// SetOnMutate registers a callback invoked after every successful Update.
// Used to wake the snapshot writer; must not call back into the store.
func (s *Store) SetOnMutate(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onMutate = fn
}

// Replace swaps in a whole new state, e.g. after loading a snapshot.
func (s *Store) Replace(state models.AppState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
}

// Update runs fn against the state under the lock. If fn returns an error
// the mutation is considered not to have happened and the snapshot writer
// is not notified; fn must therefore validate before mutating.
func (s *Store) Update(fn func(state *models.AppState) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := fn(&s.state); err != nil {
		return err
	}
	if s.onMutate != nil {
		s.onMutate()
	}
	return nil
}

// View runs fn against the state under the lock, for read-only access.
// fn must not retain references to state internals past its return.
func (s *Store) View(fn func(state *models.AppState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.state)
}

// State returns a deep copy of the current state for serialization.
func (s *Store) State() models.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneState(&s.state)
}

func cloneState(src *models.AppState) models.AppState {
	dst := models.AppState{
		Transactions:   make([]models.Transaction, len(src.Transactions)),
		MonthlyBudgets: make(models.MonthlyBudgets, len(src.MonthlyBudgets)),
		CustomBudgets:  make([]models.CustomBudget, len(src.CustomBudgets)),
		Relationships:  append([]models.BudgetRelationship{}, src.Relationships...),
		TransferLog:    make([]models.TransferEvent, len(src.TransferLog)),
		BillReminders:  append([]models.BillReminder{}, src.BillReminders...),
	}
	for i, t := range src.Transactions {
		t.Tags = append([]string{}, t.Tags...)
		dst.Transactions[i] = t
	}
	for k, v := range src.MonthlyBudgets {
		dst.MonthlyBudgets[k] = v
	}
	for i, b := range src.CustomBudgets {
		cb := make(map[string]float64, len(b.CategoryBudgets))
		for k, v := range b.CategoryBudgets {
			cb[k] = v
		}
		b.CategoryBudgets = cb
		b.Categories = append([]string{}, b.Categories...)
		dst.CustomBudgets[i] = b
	}
	for i, ev := range src.TransferLog {
		alloc := make(map[string]float64, len(ev.ToCategoryAllocations))
		for k, v := range ev.ToCategoryAllocations {
			alloc[k] = v
		}
		ev.ToCategoryAllocations = alloc
		dst.TransferLog[i] = ev
	}
	return dst
}
