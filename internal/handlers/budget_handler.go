package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "budgetwise/internal/errors"
	"budgetwise/internal/middleware"
	"budgetwise/internal/models"
	"budgetwise/internal/services"
)

// BudgetHandler handles custom and monthly budget requests.
type BudgetHandler struct {
	budgetService  services.BudgetServicer
	monthlyService services.MonthlyServicer
	featureService services.FeatureServicer
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(
	budgetService services.BudgetServicer,
	monthlyService services.MonthlyServicer,
	featureService services.FeatureServicer,
) *BudgetHandler {
	return &BudgetHandler{
		budgetService:  budgetService,
		monthlyService: monthlyService,
		featureService: featureService,
	}
}

// CustomBudgetRequest represents the payload for creating or updating a
// custom budget.
type CustomBudgetRequest struct {
	Name            string             `json:"name" binding:"required,min=1,max=100"`
	Description     string             `json:"description" binding:"max=500"`
	Priority        string             `json:"priority" binding:"omitempty,budget_priority"`
	Deadline        string             `json:"deadline" binding:"omitempty,ledger_date"`
	TotalAmount     float64            `json:"totalAmount" binding:"gte=0"`
	Categories      []string           `json:"categories"`
	CategoryBudgets map[string]float64 `json:"categoryBudgets"`
}

func (r *CustomBudgetRequest) toForm() (services.CustomBudgetForm, error) {
	form := services.CustomBudgetForm{
		Name:            r.Name,
		Description:     r.Description,
		Priority:        models.BudgetPriority(r.Priority),
		TotalAmount:     r.TotalAmount,
		Categories:      r.Categories,
		CategoryBudgets: r.CategoryBudgets,
	}
	if r.Deadline != "" {
		deadline, err := parseOptionalDate(r.Deadline, "deadline")
		if err != nil {
			return form, err
		}
		form.Deadline = &deadline
	}
	return form, nil
}

// CreateCustomBudget handles creating an envelope.
// @Summary     Create a custom budget
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CustomBudgetRequest true "Budget details"
// @Success     201 {object} models.CustomBudget "Budget created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     403 {object} ErrorResponse "Plan limit reached"
// @Router      /budgets/custom [post]
func (h *BudgetHandler) CreateCustomBudget(c *gin.Context) {
	tier := middleware.TierFromContext(c)
	if h.featureService.IsLimitReached(tier, services.LimitCustomBudgets, h.budgetService.CountCustomBudgets()) {
		respondWithError(c, apperrors.ErrTierLimitReached)
		return
	}

	var req CustomBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	form, err := req.toForm()
	if err != nil {
		respondWithError(c, err)
		return
	}

	budget, err := h.budgetService.CreateCustomBudget(form)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"budget": budget})
}

// GetCustomBudgets handles listing envelopes.
// @Summary     List custom budgets
// @Tags        budgets
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string][]models.CustomBudget "Budgets"
// @Router      /budgets/custom [get]
func (h *BudgetHandler) GetCustomBudgets(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"budgets": h.budgetService.ListCustomBudgets()})
}

// GetCustomBudget handles retrieving one envelope.
// @Summary     Get custom budget by ID
// @Tags        budgets
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Budget ID"
// @Success     200 {object} models.CustomBudget "Budget"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Router      /budgets/custom/{id} [get]
func (h *BudgetHandler) GetCustomBudget(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	budget, err := h.budgetService.GetCustomBudgetByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"budget": budget})
}

// UpdateCustomBudget handles editing an envelope.
// @Summary     Update a custom budget
// @Description Replace the editable fields and recalculate derived amounts
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int                 true "Budget ID"
// @Param       request body CustomBudgetRequest true "Budget details"
// @Success     200 {object} models.CustomBudget "Budget updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Router      /budgets/custom/{id} [put]
func (h *BudgetHandler) UpdateCustomBudget(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CustomBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	form, err := req.toForm()
	if err != nil {
		respondWithError(c, err)
		return
	}

	budget, err := h.budgetService.UpdateCustomBudget(id, form)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"budget": budget})
}

// DeleteCustomBudget handles cascading removal of an envelope.
// @Summary     Delete a custom budget
// @Description Remove the budget, its transactions and linked rollover rules
// @Tags        budgets
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Budget ID"
// @Success     204 "Deleted"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Router      /budgets/custom/{id} [delete]
func (h *BudgetHandler) DeleteCustomBudget(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.budgetService.DeleteCustomBudget(id); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// setStatus is the shared body of the lifecycle action endpoints.
func (h *BudgetHandler) setStatus(c *gin.Context, status models.BudgetStatus) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	budget, err := h.budgetService.SetStatus(id, status)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"budget": budget})
}

// PauseBudget pauses an envelope.
// @Summary     Pause a custom budget
// @Tags        budgets
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Budget ID"
// @Success     200 {object} models.CustomBudget "Budget paused"
// @Router      /budgets/custom/{id}/pause [post]
func (h *BudgetHandler) PauseBudget(c *gin.Context) {
	h.setStatus(c, models.BudgetStatusPaused)
}

// ResumeBudget resumes a paused envelope; recalculation reasserts the
// automatic status.
// @Summary     Resume a custom budget
// @Tags        budgets
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Budget ID"
// @Success     200 {object} models.CustomBudget "Budget resumed"
// @Router      /budgets/custom/{id}/resume [post]
func (h *BudgetHandler) ResumeBudget(c *gin.Context) {
	h.setStatus(c, models.BudgetStatusActive)
}

// LockBudget locks an envelope against all transaction writes.
// @Summary     Lock a custom budget
// @Tags        budgets
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Budget ID"
// @Success     200 {object} models.CustomBudget "Budget locked"
// @Router      /budgets/custom/{id}/lock [post]
func (h *BudgetHandler) LockBudget(c *gin.Context) {
	h.setStatus(c, models.BudgetStatusLocked)
}

// UnlockBudget unlocks an envelope.
// @Summary     Unlock a custom budget
// @Tags        budgets
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Budget ID"
// @Success     200 {object} models.CustomBudget "Budget unlocked"
// @Router      /budgets/custom/{id}/unlock [post]
func (h *BudgetHandler) UnlockBudget(c *gin.Context) {
	h.setStatus(c, models.BudgetStatusActive)
}

// ArchiveBudget archives an envelope.
// @Summary     Archive a custom budget
// @Tags        budgets
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Budget ID"
// @Success     200 {object} models.CustomBudget "Budget archived"
// @Router      /budgets/custom/{id}/archive [post]
func (h *BudgetHandler) ArchiveBudget(c *gin.Context) {
	h.setStatus(c, models.BudgetStatusArchived)
}

// MonthlyLimitRequest represents the payload for setting a monthly limit.
type MonthlyLimitRequest struct {
	Category string  `json:"category" binding:"required,min=1,max=100"`
	Limit    float64 `json:"limit" binding:"gte=0"`
}

// SetMonthlyLimit handles setting a per-category monthly limit.
// @Summary     Set a monthly budget limit
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body MonthlyLimitRequest true "Category and limit"
// @Success     200 {object} models.MonthlyBudgets "All monthly limits"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /budgets/monthly [put]
func (h *BudgetHandler) SetMonthlyLimit(c *gin.Context) {
	var req MonthlyLimitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if err := h.monthlyService.SetLimit(req.Category, req.Limit); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"budgets": h.monthlyService.Limits()})
}

// GetMonthlyLimits handles listing monthly limits.
// @Summary     List monthly budget limits
// @Tags        budgets
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} models.MonthlyBudgets "Monthly limits"
// @Router      /budgets/monthly [get]
func (h *BudgetHandler) GetMonthlyLimits(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"budgets": h.monthlyService.Limits()})
}

// DeleteMonthlyLimit handles removing a category's monthly limit.
// @Summary     Remove a monthly budget limit
// @Tags        budgets
// @Produce     json
// @Security    BearerAuth
// @Param       category path string true "Category name"
// @Success     204 "Removed"
// @Router      /budgets/monthly/{category} [delete]
func (h *BudgetHandler) DeleteMonthlyLimit(c *gin.Context) {
	if err := h.monthlyService.RemoveLimit(c.Param("category")); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetMonthlySummary handles the current-month spend summary.
// @Summary     Current-month spend summary per category
// @Tags        budgets
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string][]services.MonthlySummaryEntry "Summary"
// @Router      /budgets/monthly/summary [get]
func (h *BudgetHandler) GetMonthlySummary(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"summary": h.monthlyService.Summary()})
}
