package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/mizanapp/mizan_backend/internal/core/ports/services"
	"github.com/mizanapp/mizan_backend/internal/dto"
	"github.com/mizanapp/mizan_backend/internal/middleware"
)

// accountHandler handles HTTP requests related to accounts.
type accountHandler struct {
	accountService portssvc.AccountSvcFacade
}

func newAccountHandler(as portssvc.AccountSvcFacade) *accountHandler {
	return &accountHandler{accountService: as}
}

// registerAccountRoutes registers routes related to accounts inside an
// organization scope.
func registerAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade) {
	h := newAccountHandler(accountService)

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.GET("", h.listAccounts)
		accounts.GET("/:accountId", h.getAccount)
		accounts.PUT("/:accountId", h.updateAccount)
		accounts.DELETE("/:accountId", h.deactivateAccount)
	}
}

// createAccount godoc
// @Summary Create a new account
// @Description Adds an account to the organization's chart of accounts
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   orgId path string true "Organization ID"
// @Param   account body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 409 {object} map[string]string "Account code already in use"
// @Security BearerAuth
// @Router /organizations/{orgId}/accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID := c.Param("orgId")

	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	account, err := h.accountService.CreateAccount(c.Request.Context(), organizationID, req, userID)
	if err != nil {
		logger.Warn("Failed to create account", slog.String("code", req.Code), slog.String("error", err.Error()))
		respondServiceError(c, err)
		return
	}

	logger.Info("Account created", slog.String("account_id", account.AccountID), slog.String("code", account.Code))
	c.JSON(http.StatusCreated, dto.ToAccountResponse(*account))
}

// listAccounts godoc
// @Summary List the organization's accounts
// @Tags accounts
// @Produce  json
// @Param   orgId path string true "Organization ID"
// @Success 200 {array} dto.AccountResponse
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /organizations/{orgId}/accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID := c.Param("orgId")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	accounts, err := h.accountService.ListAccounts(c.Request.Context(), organizationID, userID)
	if err != nil {
		logger.Warn("Failed to list accounts", slog.String("organization_id", organizationID), slog.String("error", err.Error()))
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponses(accounts))
}

// getAccount godoc
// @Summary Get an account by ID
// @Tags accounts
// @Produce  json
// @Param   orgId path string true "Organization ID"
// @Param   accountId path string true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Account not found"
// @Security BearerAuth
// @Router /organizations/{orgId}/accounts/{accountId} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID := c.Param("orgId")
	accountID := c.Param("accountId")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	account, err := h.accountService.GetAccountByID(c.Request.Context(), organizationID, accountID, userID)
	if err != nil {
		logger.Warn("Failed to get account", slog.String("account_id", accountID), slog.String("error", err.Error()))
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(*account))
}

// updateAccount godoc
// @Summary Update an account's mutable attributes
// @Description Updates name and active flag. Code, class and balance are immutable.
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   orgId path string true "Organization ID"
// @Param   accountId path string true "Account ID"
// @Param   account body dto.UpdateAccountRequest true "Updated attributes"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Account not found"
// @Security BearerAuth
// @Router /organizations/{orgId}/accounts/{accountId} [put]
func (h *accountHandler) updateAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID := c.Param("orgId")
	accountID := c.Param("accountId")

	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	account, err := h.accountService.UpdateAccount(c.Request.Context(), organizationID, accountID, req, userID)
	if err != nil {
		logger.Warn("Failed to update account", slog.String("account_id", accountID), slog.String("error", err.Error()))
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(*account))
}

// deactivateAccount godoc
// @Summary Deactivate an account
// @Description Marks the account inactive; inactive accounts cannot appear on new entries. Accounts are never deleted.
// @Tags accounts
// @Produce  json
// @Param   orgId path string true "Organization ID"
// @Param   accountId path string true "Account ID"
// @Success 204 "Deactivated"
// @Failure 400 {object} map[string]string "Account already inactive"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Account not found"
// @Security BearerAuth
// @Router /organizations/{orgId}/accounts/{accountId} [delete]
func (h *accountHandler) deactivateAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID := c.Param("orgId")
	accountID := c.Param("accountId")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.accountService.DeactivateAccount(c.Request.Context(), organizationID, accountID, userID); err != nil {
		logger.Warn("Failed to deactivate account", slog.String("account_id", accountID), slog.String("error", err.Error()))
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
