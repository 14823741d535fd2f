// Package notify defines the notification collaborator boundary: bill
// reminders are scheduled and cancelled by reminder id. Delivery is
// platform-specific and outside the ledger core; the local implementation
// only records intent.
package notify

import (
	"budgetwise/internal/logger"
	"budgetwise/internal/models"
)

// Scheduler schedules and cancels local notifications for bill reminders.
type Scheduler interface {
	Schedule(reminder models.BillReminder) error
	Cancel(reminderID int64) error
}

// LogScheduler is the default Scheduler: it logs scheduling decisions so a
// platform shell can be attached later without touching the services.
type LogScheduler struct{}

// Schedule logs the reminder that would be scheduled.
func (LogScheduler) Schedule(reminder models.BillReminder) error {
	logger.Get().Infow("schedule bill reminder",
		"id", reminder.ID,
		"name", reminder.Name,
		"due", reminder.DueDate.String(),
	)
	return nil
}

// Cancel logs the reminder that would be cancelled.
func (LogScheduler) Cancel(reminderID int64) error {
	logger.Get().Infow("cancel bill reminder", "id", reminderID)
	return nil
}
