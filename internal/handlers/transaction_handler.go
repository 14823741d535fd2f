package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "budgetwise/internal/errors"
	"budgetwise/internal/middleware"
	"budgetwise/internal/models"
	"budgetwise/internal/pagination"
	"budgetwise/internal/services"
)

// TransactionHandler handles transaction-related requests.
type TransactionHandler struct {
	transactionService services.TransactionServicer
	recurringService   services.RecurringServicer
	featureService     services.FeatureServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(
	transactionService services.TransactionServicer,
	recurringService services.RecurringServicer,
	featureService services.FeatureServicer,
) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
		recurringService:   recurringService,
		featureService:     featureService,
	}
}

// TransactionRequest represents the request payload for creating or
// updating a transaction. Amount is the entered magnitude; the sign is
// derived from Type server-side.
type TransactionRequest struct {
	Amount             float64 `json:"amount" binding:"required,gt=0"`
	Type               string  `json:"type" binding:"required,transaction_type"`
	BudgetType         string  `json:"budgetType" binding:"omitempty,budget_type"`
	Category           string  `json:"category"`
	CustomBudgetID     *int64  `json:"customBudgetId"`
	CustomCategory     string  `json:"customCategory"`
	Description        string  `json:"description" binding:"max=500"`
	Date               string  `json:"date" binding:"omitempty,ledger_date"`
	Tags               string  `json:"tags"`
	IsRecurring        bool    `json:"isRecurring"`
	RecurringFrequency string  `json:"recurringFrequency" binding:"omitempty,recurring_frequency"`
}

func (r *TransactionRequest) toForm() (services.TransactionForm, error) {
	date, err := parseOptionalDate(r.Date, "date")
	if err != nil {
		return services.TransactionForm{}, err
	}
	return services.TransactionForm{
		Amount:             r.Amount,
		Type:               models.TransactionType(r.Type),
		BudgetType:         models.BudgetType(r.BudgetType),
		Category:           r.Category,
		CustomBudgetID:     r.CustomBudgetID,
		CustomCategory:     r.CustomCategory,
		Description:        r.Description,
		Date:               date,
		Tags:               r.Tags,
		IsRecurring:        r.IsRecurring,
		RecurringFrequency: models.RecurringFrequency(r.RecurringFrequency),
	}, nil
}

// CreateTransaction handles adding a ledger entry.
// @Summary     Create a transaction
// @Description Add a transaction to the ledger and recalculate budgets
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body TransactionRequest true "Transaction details"
// @Success     201 {object} models.Transaction "Transaction created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Feature not available"
// @Failure     409 {object} ErrorResponse "Budget frozen"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if req.IsRecurring {
		tier := middleware.TierFromContext(c)
		if !h.featureService.HasAccessTo(tier, services.FeatureRecurringTransactions) {
			respondWithError(c, apperrors.ErrFeatureNotAvailable)
			return
		}
	}

	form, err := req.toForm()
	if err != nil {
		respondWithError(c, err)
		return
	}

	tx, err := h.transactionService.AddTransaction(form)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transaction": tx})
}

// GetTransactions handles listing the ledger.
// @Summary     List transactions
// @Description Get a paginated list of ledger transactions, newest first
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Transaction] "Paginated transactions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /transactions [get]
func (h *TransactionHandler) GetTransactions(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	c.JSON(http.StatusOK, pagination.Paginate(h.transactionService.ListTransactions(), page))
}

// GetTransaction handles retrieving one ledger entry.
// @Summary     Get transaction by ID
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Transaction ID"
// @Success     200 {object} models.Transaction "Transaction"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Router      /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	tx, err := h.transactionService.GetTransactionByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transaction": tx})
}

// UpdateTransaction handles replacing a ledger entry wholesale.
// @Summary     Update a transaction
// @Description Replace a transaction with a new object built from the form and recalculate
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int                true "Transaction ID"
// @Param       request body TransactionRequest true "Replacement details"
// @Success     200 {object} models.Transaction "Transaction updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     409 {object} ErrorResponse "Budget frozen"
// @Router      /transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	form, err := req.toForm()
	if err != nil {
		respondWithError(c, err)
		return
	}

	tx, err := h.transactionService.UpdateTransaction(id, form)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transaction": tx})
}

// DeleteTransaction handles removing a ledger entry.
// @Summary     Delete a transaction
// @Description Remove a transaction and recalculate; unknown ids are a no-op
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Transaction ID"
// @Success     204 "Deleted"
// @Failure     409 {object} ErrorResponse "Budget frozen"
// @Router      /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.transactionService.DeleteTransaction(id); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ProcessRecurring handles expanding due recurring transactions.
// @Summary     Process recurring transactions
// @Description Materialize every due step of recurring templates into concrete entries
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]int "Count of created transactions"
// @Failure     403 {object} ErrorResponse "Feature not available"
// @Router      /transactions/recurring/process [post]
func (h *TransactionHandler) ProcessRecurring(c *gin.Context) {
	tier := middleware.TierFromContext(c)
	if !h.featureService.HasAccessTo(tier, services.FeatureRecurringTransactions) {
		respondWithError(c, apperrors.ErrFeatureNotAvailable)
		return
	}

	count, err := h.recurringService.Process()
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"created": count})
}
