package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "budgetwise/internal/errors"
	"budgetwise/internal/services"
)

// ReminderHandler handles bill reminder requests.
type ReminderHandler struct {
	reminderService services.ReminderServicer
}

// NewReminderHandler creates a new ReminderHandler.
func NewReminderHandler(reminderService services.ReminderServicer) *ReminderHandler {
	return &ReminderHandler{reminderService: reminderService}
}

// ReminderRequest represents the payload for creating a bill reminder.
type ReminderRequest struct {
	Name    string  `json:"name" binding:"required,min=1,max=100"`
	Amount  float64 `json:"amount" binding:"required,gt=0"`
	DueDate string  `json:"dueDate" binding:"required,ledger_date"`
}

// CreateReminder handles creating a bill reminder.
// @Summary     Create a bill reminder
// @Tags        reminders
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body ReminderRequest true "Reminder details"
// @Success     201 {object} models.BillReminder "Reminder created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /reminders [post]
func (h *ReminderHandler) CreateReminder(c *gin.Context) {
	var req ReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	dueDate, err := parseOptionalDate(req.DueDate, "dueDate")
	if err != nil {
		respondWithError(c, err)
		return
	}

	reminder, err := h.reminderService.CreateReminder(req.Name, req.Amount, dueDate)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"reminder": reminder})
}

// GetReminders handles listing bill reminders.
// @Summary     List bill reminders
// @Tags        reminders
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string][]models.BillReminder "Reminders"
// @Router      /reminders [get]
func (h *ReminderHandler) GetReminders(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"reminders": h.reminderService.ListReminders()})
}

// DeleteReminder handles removing a bill reminder.
// @Summary     Delete a bill reminder
// @Tags        reminders
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Reminder ID"
// @Success     204 "Deleted"
// @Failure     404 {object} ErrorResponse "Reminder not found"
// @Router      /reminders/{id} [delete]
func (h *ReminderHandler) DeleteReminder(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.reminderService.DeleteReminder(id); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
