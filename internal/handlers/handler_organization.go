package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/mizanapp/mizan_backend/internal/core/ports/services"
	"github.com/mizanapp/mizan_backend/internal/dto"
	"github.com/mizanapp/mizan_backend/internal/middleware"
)

// organizationHandler handles HTTP requests related to organizations.
type organizationHandler struct {
	organizationService portssvc.OrganizationSvcFacade
}

func newOrganizationHandler(os portssvc.OrganizationSvcFacade) *organizationHandler {
	return &organizationHandler{organizationService: os}
}

// registerOrganizationRoutes registers organization routes and mounts the
// organization-scoped sub-resources (accounts, entries, reports, commands,
// contacts, invoices) under /organizations/:orgId.
func registerOrganizationRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newOrganizationHandler(services.OrganizationSvc)

	organizations := rg.Group("/organizations")
	{
		organizations.POST("", h.createOrganization)
		organizations.GET("", h.listOrganizations)
		organizations.GET("/:orgId", h.getOrganization)
		organizations.POST("/:orgId/members", h.addMember)
	}

	scoped := organizations.Group("/:orgId")
	registerAccountRoutes(scoped, services.AccountSvc)
	registerEntryRoutes(scoped, services.LedgerSvc)
	registerReportingRoutes(scoped, services.ReportingSvc)
	registerCommandRoutes(scoped, services.CommandSvc)
	registerContactRoutes(scoped, services.ContactSvc)
	registerInvoiceRoutes(scoped, services.InvoiceSvc)
}

// createOrganization godoc
// @Summary Create a new organization
// @Description Creates an organization, makes the caller its owner and seeds the default chart of accounts
// @Tags organizations
// @Accept  json
// @Produce  json
// @Param   organization body dto.CreateOrganizationRequest true "Organization details"
// @Success 201 {object} dto.OrganizationResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /organizations [post]
func (h *organizationHandler) createOrganization(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateOrganization", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	org, err := h.organizationService.CreateOrganization(c.Request.Context(), req, userID)
	if err != nil {
		logger.Error("Failed to create organization", slog.String("error", err.Error()))
		respondServiceError(c, err)
		return
	}

	logger.Info("Organization created", slog.String("organization_id", org.OrganizationID))
	c.JSON(http.StatusCreated, dto.ToOrganizationResponse(*org))
}

// listOrganizations godoc
// @Summary List the caller's organizations
// @Tags organizations
// @Produce  json
// @Success 200 {array} dto.OrganizationResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /organizations [get]
func (h *organizationHandler) listOrganizations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	orgs, err := h.organizationService.ListUserOrganizations(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to list organizations", slog.String("error", err.Error()))
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToOrganizationResponses(orgs))
}

// getOrganization godoc
// @Summary Get an organization by ID
// @Tags organizations
// @Produce  json
// @Param   orgId path string true "Organization ID"
// @Success 200 {object} dto.OrganizationResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Organization not found"
// @Security BearerAuth
// @Router /organizations/{orgId} [get]
func (h *organizationHandler) getOrganization(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID := c.Param("orgId")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	org, err := h.organizationService.GetOrganizationByID(c.Request.Context(), organizationID, userID)
	if err != nil {
		logger.Warn("Failed to get organization", slog.String("organization_id", organizationID), slog.String("error", err.Error()))
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToOrganizationResponse(*org))
}

// addMember godoc
// @Summary Add a member to an organization
// @Tags organizations
// @Accept  json
// @Produce  json
// @Param   orgId path string true "Organization ID"
// @Param   member body dto.AddMemberRequest true "Member details"
// @Success 204 "Member added"
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 409 {object} map[string]string "User is already a member"
// @Security BearerAuth
// @Router /organizations/{orgId}/members [post]
func (h *organizationHandler) addMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID := c.Param("orgId")

	var req dto.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddMember", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.organizationService.AddMember(c.Request.Context(), organizationID, req, userID); err != nil {
		logger.Warn("Failed to add member", slog.String("organization_id", organizationID), slog.String("error", err.Error()))
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
