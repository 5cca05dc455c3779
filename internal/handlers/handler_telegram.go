package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	portssvc "github.com/mizanapp/mizan_backend/internal/core/ports/services"
	"github.com/mizanapp/mizan_backend/internal/dto"
	"github.com/mizanapp/mizan_backend/internal/middleware"
	"github.com/mizanapp/mizan_backend/internal/platform/config"
	"github.com/mizanapp/mizan_backend/internal/telegram"
	"github.com/ulule/limiter/v3"
)

// telegramHandler receives bot updates and answers them through the command
// service.
type telegramHandler struct {
	botToken            string
	client              *telegram.Client
	userService         portssvc.UserSvcFacade
	organizationService portssvc.OrganizationSvcFacade
	commandService      portssvc.CommandSvcFacade
}

// registerTelegramRoutes registers the webhook route. The bot token is part
// of the path so only Telegram (which knows the token) can reach it.
func registerTelegramRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer, client *telegram.Client, webhookLimiter *limiter.Limiter) {
	h := &telegramHandler{
		botToken:            cfg.TelegramBotToken,
		client:              client,
		userService:         services.UserSvc,
		organizationService: services.OrganizationSvc,
		commandService:      services.CommandSvc,
	}

	webhook := r.Group("/telegram")
	if webhookLimiter != nil {
		webhook.Use(middleware.RateLimit(webhookLimiter))
	}
	webhook.POST("/webhook/:token", h.handleUpdate)
}

// registerTelegramAdminRoutes registers the JWT-gated bot management routes.
func registerTelegramAdminRoutes(rg *gin.RouterGroup, client *telegram.Client) {
	h := &telegramAdminHandler{client: client}

	admin := rg.Group("/telegram")
	{
		admin.GET("/bot-info", h.botInfo)
		admin.POST("/set-webhook", h.setWebhook)
		admin.POST("/test-message", h.testMessage)
	}
}

// telegramAdminHandler exposes bot management operations to authenticated
// users: verifying the token, re-pointing the webhook and sending a test
// message.
type telegramAdminHandler struct {
	client *telegram.Client
}

// botInfo godoc
// @Summary Get the configured bot's identity
// @Tags telegram
// @Produce  json
// @Success 200 {object} telegram.BotInfo
// @Failure 502 {object} map[string]string "Bot API unreachable or token invalid"
// @Security BearerAuth
// @Router /telegram/bot-info [get]
func (h *telegramAdminHandler) botInfo(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	info, err := h.client.GetMe(c.Request.Context())
	if err != nil {
		logger.Error("Failed to fetch bot info", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to reach the Telegram Bot API"})
		return
	}
	c.JSON(http.StatusOK, info)
}

type setWebhookRequest struct {
	WebhookURL string `json:"webhookUrl" binding:"required,url"`
}

// setWebhook godoc
// @Summary Point the bot's webhook at a new URL
// @Tags telegram
// @Accept  json
// @Produce  json
// @Param   webhook body setWebhookRequest true "Webhook URL"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 502 {object} map[string]string "Bot API rejected the webhook"
// @Security BearerAuth
// @Router /telegram/set-webhook [post]
func (h *telegramAdminHandler) setWebhook(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req setWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.client.SetWebhook(c.Request.Context(), req.WebhookURL); err != nil {
		logger.Error("Failed to set webhook", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to register the webhook"})
		return
	}
	logger.Info("Telegram webhook updated", slog.String("webhook_url", req.WebhookURL))
	c.JSON(http.StatusOK, gin.H{"success": true})
}

type testMessageRequest struct {
	ChatID  int64  `json:"chatId" binding:"required"`
	Message string `json:"message,omitempty"`
}

// testMessage godoc
// @Summary Send a test message to a chat
// @Tags telegram
// @Accept  json
// @Produce  json
// @Param   message body testMessageRequest true "Chat ID and optional text"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 502 {object} map[string]string "Bot API send failed"
// @Security BearerAuth
// @Router /telegram/test-message [post]
func (h *telegramAdminHandler) testMessage(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req testMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	text := req.Message
	if text == "" {
		text = "مرحباً! هذه رسالة تجريبية من نظام المحاسبة."
	}
	if err := h.client.SendMessage(c.Request.Context(), req.ChatID, text); err != nil {
		logger.Error("Failed to send test message", slog.String("error", err.Error()), slog.Int64("chat_id", req.ChatID))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to send the message"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// handleUpdate godoc
// @Summary Telegram webhook
// @Description Receives bot updates and executes them as bookkeeping commands. Always answers 200 so Telegram does not retry.
// @Tags telegram
// @Accept  json
// @Produce  json
// @Param   token path string true "Bot token"
// @Param   update body dto.TelegramUpdate true "Telegram update"
// @Success 200 {object} map[string]string
// @Router /telegram/webhook/{token} [post]
func (h *telegramHandler) handleUpdate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if c.Param("token") != h.botToken {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	var update dto.TelegramUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		logger.Warn("Failed to parse telegram update", slog.String("error", err.Error()))
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}
	if update.Message == nil || strings.TrimSpace(update.Message.Text) == "" {
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	chatID := update.Message.Chat.ID
	reply := h.answer(c, strconv.FormatInt(chatID, 10), update.Message.Text)
	if err := h.client.SendMessage(c.Request.Context(), chatID, reply); err != nil {
		logger.Error("Failed to send telegram reply", slog.String("error", err.Error()), slog.Int64("chat_id", chatID))
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// answer resolves the sender and runs the command, returning the reply text.
// All failures collapse to user-facing Arabic messages; the webhook never
// propagates errors back to Telegram.
func (h *telegramHandler) answer(c *gin.Context, telegramID, text string) string {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := h.userService.GetUserByTelegramID(ctx, telegramID)
	if err != nil {
		return "مرحباً! يرجى ربط حسابك أولاً عبر الموقع الإلكتروني."
	}

	orgs, err := h.organizationService.ListUserOrganizations(ctx, user.UserID)
	if err != nil || len(orgs) == 0 {
		return "لا توجد شركات مرتبطة بحسابك."
	}

	// Commands run against the user's first organization.
	result, err := h.commandService.Process(ctx, orgs[0].OrganizationID, user.UserID, text)
	if err != nil {
		logger.Warn("Telegram command failed", slog.String("user_id", user.UserID), slog.String("error", err.Error()))
		return "حدث خطأ في معالجة الطلب. يرجى المحاولة مرة أخرى."
	}

	return formatCommandReply(result)
}

func formatCommandReply(result *dto.CommandResponse) string {
	var b strings.Builder
	b.WriteString(result.Message)
	if result.Entry != nil {
		b.WriteString(fmt.Sprintf("\n✅ %s | %s", result.Entry.EntryNumber, result.Entry.TotalAmount))
	}
	for _, balance := range result.Balances {
		b.WriteString(fmt.Sprintf("\n%s %s: %s", balance.Code, balance.Name, balance.Balance))
	}
	return b.String()
}
