package services

import (
	apperrors "budgetwise/internal/errors"
	"budgetwise/internal/ident"
	"budgetwise/internal/models"
	"budgetwise/internal/notify"
	"budgetwise/internal/store"
)

// reminderService manages bill reminders and keeps the notification
// schedule in step with them.
type reminderService struct {
	store     *store.Store
	scheduler notify.Scheduler
}

// NewReminderService creates a new ReminderServicer.
func NewReminderService(st *store.Store, scheduler notify.Scheduler) ReminderServicer {
	return &reminderService{store: st, scheduler: scheduler}
}

// CreateReminder stores a reminder and schedules its notification.
func (s *reminderService) CreateReminder(name string, amount float64, dueDate models.Date) (*models.BillReminder, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "reminder name is required")
	}
	if amount < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount cannot be negative")
	}
	if dueDate.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "due date is required")
	}

	reminder := models.BillReminder{
		ID:      ident.Next(),
		Name:    name,
		Amount:  amount,
		DueDate: dueDate,
	}
	err := s.store.Update(func(state *models.AppState) error {
		state.BillReminders = append(state.BillReminders, reminder)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.scheduler.Schedule(reminder); err != nil {
		// The reminder itself is stored; scheduling can be retried by the
		// platform shell.
		return &reminder, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &reminder, nil
}

// ListReminders returns a copy of all reminders.
func (s *reminderService) ListReminders() []models.BillReminder {
	var out []models.BillReminder
	s.store.View(func(state *models.AppState) {
		out = append([]models.BillReminder{}, state.BillReminders...)
	})
	return out
}

// DeleteReminder removes a reminder and cancels its notification.
func (s *reminderService) DeleteReminder(id int64) error {
	err := s.store.Update(func(state *models.AppState) error {
		for i := range state.BillReminders {
			if state.BillReminders[i].ID == id {
				state.BillReminders = append(state.BillReminders[:i], state.BillReminders[i+1:]...)
				return nil
			}
		}
		return apperrors.ErrReminderNotFound
	})
	if err != nil {
		return err
	}
	return s.scheduler.Cancel(id)
}
