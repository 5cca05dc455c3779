package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/mizanapp/mizan_backend/internal/core/ports/services"
	"github.com/mizanapp/mizan_backend/internal/dto"
	"github.com/mizanapp/mizan_backend/internal/middleware"
)

// notificationHandler serves the authenticated user's notification inbox.
// Its routes are mounted under /users/me by registerUserRoutes.
type notificationHandler struct {
	notificationService portssvc.NotificationSvcFacade
}

func newNotificationHandler(ns portssvc.NotificationSvcFacade) *notificationHandler {
	return &notificationHandler{notificationService: ns}
}

// listNotifications godoc
// @Summary List the current user's notifications, newest first
// @Tags notifications
// @Produce  json
// @Success 200 {array} dto.NotificationResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /users/me/notifications [get]
func (h *notificationHandler) listNotifications(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	notifications, err := h.notificationService.ListNotifications(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to list notifications", slog.String("error", err.Error()))
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToNotificationResponses(notifications))
}

// markRead godoc
// @Summary Mark a notification as read
// @Tags notifications
// @Produce  json
// @Param   notificationId path string true "Notification ID"
// @Success 204 "Marked read"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Notification not found"
// @Security BearerAuth
// @Router /users/me/notifications/{notificationId}/read [patch]
func (h *notificationHandler) markRead(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	notificationID := c.Param("notificationId")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.notificationService.MarkRead(c.Request.Context(), notificationID, userID); err != nil {
		logger.Warn("Failed to mark notification read", slog.String("notification_id", notificationID), slog.String("error", err.Error()))
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
