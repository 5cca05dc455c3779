package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/mizanapp/mizan_backend/internal/core/ports/services"
	"github.com/mizanapp/mizan_backend/internal/dto"
	"github.com/mizanapp/mizan_backend/internal/middleware"
)

// invoiceHandler handles HTTP requests for an organization's invoices.
type invoiceHandler struct {
	invoiceService portssvc.InvoiceSvcFacade
}

func newInvoiceHandler(is portssvc.InvoiceSvcFacade) *invoiceHandler {
	return &invoiceHandler{invoiceService: is}
}

// registerInvoiceRoutes registers invoice routes inside an organization scope.
func registerInvoiceRoutes(rg *gin.RouterGroup, invoiceService portssvc.InvoiceSvcFacade) {
	h := newInvoiceHandler(invoiceService)

	invoices := rg.Group("/invoices")
	{
		invoices.POST("", h.createInvoice)
		invoices.GET("", h.listInvoices)
		invoices.GET("/:invoiceId", h.getInvoice)
		invoices.PATCH("/:invoiceId/status", h.updateStatus)
	}
}

// createInvoice godoc
// @Summary Issue a new invoice
// @Description Creates a draft invoice addressed to a contact of the organization. The invoice number is assigned by the system.
// @Tags invoices
// @Accept  json
// @Produce  json
// @Param   orgId path string true "Organization ID"
// @Param   invoice body dto.CreateInvoiceRequest true "Invoice details"
// @Success 201 {object} dto.InvoiceResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /organizations/{orgId}/invoices [post]
func (h *invoiceHandler) createInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID := c.Param("orgId")

	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateInvoice", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	invoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), organizationID, req, userID)
	if err != nil {
		logger.Error("Failed to create invoice", slog.String("error", err.Error()))
		respondServiceError(c, err)
		return
	}

	logger.Info("Invoice created", slog.String("invoice_number", invoice.InvoiceNumber))
	c.JSON(http.StatusCreated, dto.ToInvoiceResponse(*invoice))
}

// listInvoices godoc
// @Summary List an organization's invoices
// @Tags invoices
// @Produce  json
// @Param   orgId path string true "Organization ID"
// @Success 200 {array} dto.InvoiceResponse
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /organizations/{orgId}/invoices [get]
func (h *invoiceHandler) listInvoices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID := c.Param("orgId")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	invoices, err := h.invoiceService.ListInvoices(c.Request.Context(), organizationID, userID)
	if err != nil {
		logger.Error("Failed to list invoices", slog.String("error", err.Error()))
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceResponses(invoices))
}

// getInvoice godoc
// @Summary Get an invoice by ID
// @Tags invoices
// @Produce  json
// @Param   orgId path string true "Organization ID"
// @Param   invoiceId path string true "Invoice ID"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Invoice not found"
// @Security BearerAuth
// @Router /organizations/{orgId}/invoices/{invoiceId} [get]
func (h *invoiceHandler) getInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID := c.Param("orgId")
	invoiceID := c.Param("invoiceId")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	invoice, err := h.invoiceService.GetInvoiceByID(c.Request.Context(), organizationID, invoiceID, userID)
	if err != nil {
		logger.Warn("Failed to get invoice", slog.String("invoice_id", invoiceID), slog.String("error", err.Error()))
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(*invoice))
}

// updateStatus godoc
// @Summary Advance an invoice's lifecycle
// @Description Moves an invoice to sent, paid or cancelled. Illegal transitions are rejected.
// @Tags invoices
// @Accept  json
// @Produce  json
// @Param   orgId path string true "Organization ID"
// @Param   invoiceId path string true "Invoice ID"
// @Param   status body dto.UpdateInvoiceStatusRequest true "New status"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 400 {object} map[string]string "Invalid input format or illegal transition"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Invoice not found"
// @Security BearerAuth
// @Router /organizations/{orgId}/invoices/{invoiceId}/status [patch]
func (h *invoiceHandler) updateStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID := c.Param("orgId")
	invoiceID := c.Param("invoiceId")

	var req dto.UpdateInvoiceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateInvoiceStatus", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	invoice, err := h.invoiceService.UpdateInvoiceStatus(c.Request.Context(), organizationID, invoiceID, req, userID)
	if err != nil {
		logger.Warn("Failed to update invoice status", slog.String("invoice_id", invoiceID), slog.String("error", err.Error()))
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(*invoice))
}
