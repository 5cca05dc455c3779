package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/mizanapp/mizan_backend/internal/core/ports/services"
	"github.com/mizanapp/mizan_backend/internal/dto"
	"github.com/mizanapp/mizan_backend/internal/middleware"
)

// commandHandler handles free-text bookkeeping commands.
type commandHandler struct {
	commandService portssvc.CommandSvcFacade
}

func newCommandHandler(cs portssvc.CommandSvcFacade) *commandHandler {
	return &commandHandler{commandService: cs}
}

// registerCommandRoutes registers the command route inside an organization scope.
func registerCommandRoutes(rg *gin.RouterGroup, commandService portssvc.CommandSvcFacade) {
	h := newCommandHandler(commandService)
	rg.POST("/commands", h.processCommand)
}

// processCommand godoc
// @Summary Execute a free-text bookkeeping command
// @Description Interprets an Arabic or English command ("مبيعات 500", "expense 120") and executes it against the ledger
// @Tags commands
// @Accept  json
// @Produce  json
// @Param   orgId path string true "Organization ID"
// @Param   command body dto.CommandRequest true "Command text"
// @Success 200 {object} dto.CommandResponse
// @Failure 400 {object} map[string]string "Invalid input or unparseable amount"
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /organizations/{orgId}/commands [post]
func (h *commandHandler) processCommand(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID := c.Param("orgId")

	var req dto.CommandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ProcessCommand", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	result, err := h.commandService.Process(c.Request.Context(), organizationID, userID, req.Text)
	if err != nil {
		logger.Warn("Failed to process command", slog.String("organization_id", organizationID), slog.String("error", err.Error()))
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
