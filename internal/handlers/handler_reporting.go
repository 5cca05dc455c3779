package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mizanapp/mizan_backend/internal/core/domain"
	portssvc "github.com/mizanapp/mizan_backend/internal/core/ports/services"
	"github.com/mizanapp/mizan_backend/internal/dto"
	"github.com/mizanapp/mizan_backend/internal/middleware"
)

// reportingHandler handles HTTP requests for financial reports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers report routes inside an organization scope.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/trial-balance", h.trialBalance)
		reports.GET("/income-statement", h.incomeStatement)
		reports.GET("/dashboard", h.dashboardStats)
	}
}

// trialBalance godoc
// @Summary Generate a trial balance
// @Description Lists every account with its balance mapped onto debit/credit columns. mode=signed (default) maps positive balances to debit; mode=normal uses each class's normal column.
// @Tags reports
// @Produce  json
// @Param   orgId path string true "Organization ID"
// @Param   mode query string false "Column mapping mode" Enums(signed, normal)
// @Success 200 {object} dto.TrialBalanceResponse
// @Failure 400 {object} map[string]string "Unknown mode"
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /organizations/{orgId}/reports/trial-balance [get]
func (h *reportingHandler) trialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID := c.Param("orgId")

	mode := domain.TrialBalanceSigned
	switch c.Query("mode") {
	case "", string(domain.TrialBalanceSigned):
	case string(domain.TrialBalanceNormal):
		mode = domain.TrialBalanceNormal
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "mode must be 'signed' or 'normal'"})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	rows, err := h.reportingService.TrialBalance(c.Request.Context(), organizationID, mode, userID)
	if err != nil {
		logger.Warn("Failed to build trial balance", slog.String("organization_id", organizationID), slog.String("error", err.Error()))
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTrialBalanceResponse(mode, rows))
}

// incomeStatement godoc
// @Summary Generate an income statement
// @Tags reports
// @Produce  json
// @Param   orgId path string true "Organization ID"
// @Success 200 {object} dto.IncomeStatementResponse
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /organizations/{orgId}/reports/income-statement [get]
func (h *reportingHandler) incomeStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID := c.Param("orgId")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	statement, err := h.reportingService.IncomeStatement(c.Request.Context(), organizationID, userID)
	if err != nil {
		logger.Warn("Failed to build income statement", slog.String("organization_id", organizationID), slog.String("error", err.Error()))
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToIncomeStatementResponse(*statement))
}

// dashboardStats godoc
// @Summary Get dashboard statistics
// @Tags reports
// @Produce  json
// @Param   orgId path string true "Organization ID"
// @Success 200 {object} dto.DashboardStatsResponse
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /organizations/{orgId}/reports/dashboard [get]
func (h *reportingHandler) dashboardStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID := c.Param("orgId")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	stats, err := h.reportingService.DashboardStats(c.Request.Context(), organizationID, userID)
	if err != nil {
		logger.Warn("Failed to build dashboard stats", slog.String("organization_id", organizationID), slog.String("error", err.Error()))
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToDashboardStatsResponse(*stats))
}
