package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "budgetwise/internal/errors"
	"budgetwise/internal/services"
)

// TransferHandler handles fund transfers between custom budgets.
type TransferHandler struct {
	transferService services.TransferServicer
}

// NewTransferHandler creates a new TransferHandler.
func NewTransferHandler(transferService services.TransferServicer) *TransferHandler {
	return &TransferHandler{transferService: transferService}
}

// TransferRequest represents the payload for a fund transfer. Allocations
// must sum to Amount within a cent.
type TransferRequest struct {
	FromBudgetID int64              `json:"fromBudgetId" binding:"required"`
	FromCategory string             `json:"fromCategory" binding:"required,min=1,max=100"`
	ToBudgetID   int64              `json:"toBudgetId" binding:"required"`
	Amount       float64            `json:"amount" binding:"required,gt=0"`
	Allocations  map[string]float64 `json:"allocations" binding:"required"`
}

// CreateTransfer handles moving allocated funds between budgets.
// @Summary     Transfer funds between custom budgets
// @Description Debit one category of the source budget and credit the listed
// @Description categories of the destination budget atomically
// @Tags        transfers
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body TransferRequest true "Transfer details"
// @Success     201 {object} models.TransferEvent "Transfer recorded"
// @Failure     400 {object} ErrorResponse "Invalid input or allocation mismatch"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Router      /transfers [post]
func (h *TransferHandler) CreateTransfer(c *gin.Context) {
	var req TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	event, err := h.transferService.TransferFunds(req.FromBudgetID, req.FromCategory, req.ToBudgetID, req.Amount, req.Allocations)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"transfer": event})
}

// GetTransfers handles listing the transfer audit log.
// @Summary     List recorded transfers
// @Tags        transfers
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string][]models.TransferEvent "Transfer log"
// @Router      /transfers [get]
func (h *TransferHandler) GetTransfers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"transfers": h.transferService.TransferLog()})
}
