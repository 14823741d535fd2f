package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"budgetwise/internal/config"
	apperrors "budgetwise/internal/errors"
	"budgetwise/internal/middleware"
	"budgetwise/internal/models"
)

// AuthHandler handles device login. BudgetWise installs are single-user:
// the passcode unlocks the device session and the issued token carries the
// configured subscription tier.
type AuthHandler struct{}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

// LoginRequest represents the request payload for logging in.
type LoginRequest struct {
	Passcode string `json:"passcode" binding:"required"`
}

// Login handles passcode login and issues a session token.
// @Summary     Log in
// @Description Exchange the device passcode for a session token carrying the subscription tier
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body LoginRequest true "Passcode"
// @Success     200 {object} map[string]string "Session token"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Invalid passcode"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	cfg := config.Get()
	if cfg.PasscodeHash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(cfg.PasscodeHash), []byte(req.Passcode)); err != nil {
			respondWithError(c, apperrors.ErrInvalidPasscode)
			return
		}
	}

	tier := models.Tier(cfg.SubscriptionTier)
	if !tier.Valid() {
		tier = models.TierFree
	}

	token, err := middleware.GenerateToken(tier)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "tier": tier})
}
