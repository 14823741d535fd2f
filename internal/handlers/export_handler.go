package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "budgetwise/internal/errors"
	"budgetwise/internal/export"
	"budgetwise/internal/middleware"
	"budgetwise/internal/services"
	"budgetwise/internal/store"
)

// ExportHandler renders ledger downloads.
type ExportHandler struct {
	store          *store.Store
	featureService services.FeatureServicer
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(st *store.Store, featureService services.FeatureServicer) *ExportHandler {
	return &ExportHandler{store: st, featureService: featureService}
}

// ExportQuery represents the export query parameters.
type ExportQuery struct {
	Format string `form:"format" binding:"omitempty,oneof=csv json"`
	Type   string `form:"type" binding:"omitempty,export_type"`
	From   string `form:"from" binding:"omitempty,ledger_date"`
	To     string `form:"to" binding:"omitempty,ledger_date"`
}

// Export handles downloading the ledger as CSV or JSON.
// @Summary     Export the ledger
// @Description Download filtered transactions as CSV (with budget snapshot
// @Description for JSON). Format defaults to csv, type to all.
// @Tags        export
// @Produce     plain
// @Security    BearerAuth
// @Param       format query string false "csv or json" default(csv)
// @Param       type   query string false "all, monthly or custom" default(all)
// @Param       from   query string false "Earliest date (YYYY-MM-DD)"
// @Param       to     query string false "Latest date (YYYY-MM-DD)"
// @Success     200 {string} string "Exported ledger"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     403 {object} ErrorResponse "Plan does not include export"
// @Router      /export [get]
func (h *ExportHandler) Export(c *gin.Context) {
	if !h.featureService.HasAccessTo(middleware.TierFromContext(c), services.FeatureExport) {
		respondWithError(c, apperrors.ErrFeatureNotAvailable)
		return
	}

	var query ExportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	req := export.Request{Type: export.FilterAll}
	if query.Type != "" {
		req.Type = export.TypeFilter(query.Type)
	}
	var err error
	if req.From, err = parseOptionalDate(query.From, "from"); err != nil {
		respondWithError(c, err)
		return
	}
	if req.To, err = parseOptionalDate(query.To, "to"); err != nil {
		respondWithError(c, err)
		return
	}

	state := h.store.State()
	stamp := time.Now().Format("2006-01-02")

	switch query.Format {
	case "json":
		body, err := export.JSON(&state, req)
		if err != nil {
			respondWithError(c, err)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=budgetwise_export_%s.json", stamp))
		c.Data(http.StatusOK, "application/json", []byte(body))
	default:
		body, err := export.CSV(&state, req)
		if err != nil {
			respondWithError(c, err)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=budgetwise_export_%s.csv", stamp))
		c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(body))
	}
}
