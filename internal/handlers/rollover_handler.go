package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "budgetwise/internal/errors"
	"budgetwise/internal/middleware"
	"budgetwise/internal/services"
)

// RolloverHandler handles rollover relationship rules and end-of-month runs.
type RolloverHandler struct {
	rolloverService services.RolloverServicer
	featureService  services.FeatureServicer
}

// NewRolloverHandler creates a new RolloverHandler.
func NewRolloverHandler(rolloverService services.RolloverServicer, featureService services.FeatureServicer) *RolloverHandler {
	return &RolloverHandler{
		rolloverService: rolloverService,
		featureService:  featureService,
	}
}

// RelationshipRequest represents the payload for a rollover rule linking a
// monthly category to a destination custom budget.
type RelationshipRequest struct {
	SourceCategory      string `json:"sourceCategory" binding:"required,min=1,max=100"`
	DestinationBudgetID int64  `json:"destinationBudgetId" binding:"required"`
}

// CreateRelationship handles creating a rollover rule.
// @Summary     Create a rollover relationship
// @Tags        rollovers
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body RelationshipRequest true "Relationship details"
// @Success     201 {object} models.BudgetRelationship "Relationship created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     403 {object} ErrorResponse "Plan does not include rollover automation"
// @Failure     404 {object} ErrorResponse "Destination budget not found"
// @Router      /rollovers/relationships [post]
func (h *RolloverHandler) CreateRelationship(c *gin.Context) {
	if !h.featureService.HasAccessTo(middleware.TierFromContext(c), services.FeatureRolloverAutomation) {
		respondWithError(c, apperrors.ErrFeatureNotAvailable)
		return
	}

	var req RelationshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	rel, err := h.rolloverService.CreateRelationship(req.SourceCategory, req.DestinationBudgetID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"relationship": rel})
}

// GetRelationships handles listing rollover rules.
// @Summary     List rollover relationships
// @Tags        rollovers
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string][]models.BudgetRelationship "Relationships"
// @Router      /rollovers/relationships [get]
func (h *RolloverHandler) GetRelationships(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"relationships": h.rolloverService.ListRelationships()})
}

// DeleteRelationship handles removing a rollover rule.
// @Summary     Delete a rollover relationship
// @Tags        rollovers
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Relationship ID"
// @Success     204 "Deleted"
// @Failure     404 {object} ErrorResponse "Relationship not found"
// @Router      /rollovers/relationships/{id} [delete]
func (h *RolloverHandler) DeleteRelationship(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.rolloverService.DeleteRelationship(id); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ProcessRollovers handles an end-of-month rollover run.
// @Summary     Run end-of-month rollovers
// @Description Credit each destination budget with the unspent remainder of
// @Description its linked category; a month with no surplus is a no-op
// @Tags        rollovers
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.RolloverResult "Run outcome"
// @Failure     403 {object} ErrorResponse "Plan does not include rollover automation"
// @Router      /rollovers/process [post]
func (h *RolloverHandler) ProcessRollovers(c *gin.Context) {
	if !h.featureService.HasAccessTo(middleware.TierFromContext(c), services.FeatureRolloverAutomation) {
		respondWithError(c, apperrors.ErrFeatureNotAvailable)
		return
	}

	result, err := h.rolloverService.ProcessEndOfMonthRollovers()
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": result})
}
