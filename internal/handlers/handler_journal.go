package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/mizanapp/mizan_backend/internal/core/ports/services"
	"github.com/mizanapp/mizan_backend/internal/dto"
	"github.com/mizanapp/mizan_backend/internal/middleware"
)

// entryHandler handles HTTP requests related to journal entries.
type entryHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newEntryHandler(ls portssvc.LedgerSvcFacade) *entryHandler {
	return &entryHandler{ledgerService: ls}
}

// registerEntryRoutes registers journal entry routes inside an organization
// scope. There is deliberately no PUT or DELETE: committed entries are
// immutable.
func registerEntryRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newEntryHandler(ledgerService)

	entries := rg.Group("/entries")
	{
		entries.POST("", h.commitEntry)
		entries.GET("", h.listEntries)
		entries.GET("/:entryId", h.getEntry)
	}
}

// commitEntry godoc
// @Summary Commit a journal entry
// @Description Validates and atomically commits a balanced journal entry, updating the referenced account balances
// @Tags entries
// @Accept  json
// @Produce  json
// @Param   orgId path string true "Organization ID"
// @Param   entry body dto.CreateEntryRequest true "Entry details"
// @Success 201 {object} dto.EntryResponse
// @Failure 400 {object} map[string]string "Validation error or unbalanced entry"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Referenced account not found"
// @Security BearerAuth
// @Router /organizations/{orgId}/entries [post]
func (h *entryHandler) commitEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID := c.Param("orgId")

	var req dto.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CommitEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	entry, err := h.ledgerService.CommitEntry(c.Request.Context(), organizationID, req, userID)
	if err != nil {
		logger.Warn("Failed to commit entry", slog.String("organization_id", organizationID), slog.String("error", err.Error()))
		respondServiceError(c, err)
		return
	}

	logger.Info("Entry committed", slog.String("entry_id", entry.EntryID), slog.String("entry_number", entry.EntryNumber))
	c.JSON(http.StatusCreated, dto.ToEntryResponse(*entry))
}

// listEntries godoc
// @Summary List the organization's journal entries
// @Tags entries
// @Produce  json
// @Param   orgId path string true "Organization ID"
// @Success 200 {array} dto.EntryResponse
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /organizations/{orgId}/entries [get]
func (h *entryHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID := c.Param("orgId")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	entries, err := h.ledgerService.ListEntries(c.Request.Context(), organizationID, userID)
	if err != nil {
		logger.Warn("Failed to list entries", slog.String("organization_id", organizationID), slog.String("error", err.Error()))
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToEntryResponses(entries))
}

// getEntry godoc
// @Summary Get a journal entry by ID
// @Tags entries
// @Produce  json
// @Param   orgId path string true "Organization ID"
// @Param   entryId path string true "Entry ID"
// @Success 200 {object} dto.EntryResponse
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Entry not found"
// @Security BearerAuth
// @Router /organizations/{orgId}/entries/{entryId} [get]
func (h *entryHandler) getEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID := c.Param("orgId")
	entryID := c.Param("entryId")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	entry, err := h.ledgerService.GetEntryByID(c.Request.Context(), organizationID, entryID, userID)
	if err != nil {
		logger.Warn("Failed to get entry", slog.String("entry_id", entryID), slog.String("error", err.Error()))
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToEntryResponse(*entry))
}
