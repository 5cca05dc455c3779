package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/mizanapp/mizan_backend/internal/core/ports/services"
	"github.com/mizanapp/mizan_backend/internal/dto"
	"github.com/mizanapp/mizan_backend/internal/middleware"
)

// userHandler handles requests about the authenticated user.
type userHandler struct {
	userService portssvc.UserSvcFacade
}

func newUserHandler(us portssvc.UserSvcFacade) *userHandler {
	return &userHandler{userService: us}
}

// registerUserRoutes registers routes related to the current user, including
// the notification inbox.
func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade, notificationService portssvc.NotificationSvcFacade) {
	h := newUserHandler(userService)
	n := newNotificationHandler(notificationService)

	users := rg.Group("/users")
	{
		users.GET("/me", h.getMe)
		users.POST("/me/telegram", h.linkTelegram)
		users.GET("/me/notifications", n.listNotifications)
		users.PATCH("/me/notifications/:notificationId/read", n.markRead)
	}
}

// getMe godoc
// @Summary Get the current user
// @Tags users
// @Produce  json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /users/me [get]
func (h *userHandler) getMe(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to load current user", slog.String("error", err.Error()))
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(*user))
}

type linkTelegramRequest struct {
	TelegramID string `json:"telegramId" binding:"required"`
}

// linkTelegram godoc
// @Summary Link a Telegram chat to the current user
// @Tags users
// @Accept  json
// @Produce  json
// @Param   link body linkTelegramRequest true "Telegram chat ID"
// @Success 204 "Linked"
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /users/me/telegram [post]
func (h *userHandler) linkTelegram(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req linkTelegramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.userService.LinkTelegram(c.Request.Context(), userID, req.TelegramID); err != nil {
		logger.Error("Failed to link telegram", slog.String("error", err.Error()))
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
