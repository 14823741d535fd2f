package services

import (
	"time"

	"budgetwise/internal/engine"
	"budgetwise/internal/ident"
	"budgetwise/internal/logger"
	"budgetwise/internal/models"
	"budgetwise/internal/store"
)

// recurringService expands recurring transactions into concrete ledger
// entries for every calendar step that has come due.
type recurringService struct {
	store *store.Store
	now   func() time.Time
}

// NewRecurringService creates a new RecurringServicer.
func NewRecurringService(st *store.Store) RecurringServicer {
	return &recurringService{store: st, now: time.Now}
}

// nextDue advances a date by one frequency step.
func nextDue(d models.Date, freq models.RecurringFrequency) models.Date {
	switch freq {
	case models.FrequencyDaily:
		return d.AddDays(1)
	case models.FrequencyWeekly:
		return d.AddDays(7)
	default:
		return d.AddMonths(1)
	}
}

// Process materializes one concrete, non-recurring transaction per due
// step of every recurring template, starting after its last processed date
// (or its own date when never processed). The template's LastProcessedDate
// moves to the last date materialized. Returns how many entries were
// created.
func (s *recurringService) Process() (int, error) {
	created := 0
	err := s.store.Update(func(state *models.AppState) error {
		today := models.DateOf(s.now())
		timestamp := s.now()

		var materialized []models.Transaction
		for i := range state.Transactions {
			template := &state.Transactions[i]
			if !template.IsRecurring || template.RecurringFrequency == "" {
				continue
			}

			start := template.Date
			if template.LastProcessedDate != nil {
				start = *template.LastProcessedDate
			}

			var lastDue *models.Date
			for due := nextDue(start, template.RecurringFrequency); !due.After(today.Time); due = nextDue(due, template.RecurringFrequency) {
				entry := *template
				entry.ID = ident.Next()
				entry.Date = due
				entry.Timestamp = timestamp
				entry.IsRecurring = false
				entry.RecurringFrequency = ""
				entry.LastProcessedDate = nil
				entry.Tags = append(append([]string{}, template.Tags...), "recurring")
				entry.Description = template.Description + " (recurring)"

				materialized = append(materialized, entry)
				d := due
				lastDue = &d
			}

			if lastDue != nil {
				template.LastProcessedDate = lastDue
			}
		}

		if len(materialized) == 0 {
			return nil
		}

		state.Transactions = append(state.Transactions, materialized...)
		state.CustomBudgets = engine.Recalculate(state.Transactions, state.CustomBudgets, s.now())
		created = len(materialized)

		logger.Get().Infow("materialized recurring transactions",
			"count", created,
			"as_of", today.String(),
		)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return created, nil
}
