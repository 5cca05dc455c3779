package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/mizanapp/mizan_backend/internal/core/ports/services"
	"github.com/mizanapp/mizan_backend/internal/dto"
	"github.com/mizanapp/mizan_backend/internal/middleware"
)

// contactHandler handles HTTP requests for an organization's contacts.
type contactHandler struct {
	contactService portssvc.ContactSvcFacade
}

func newContactHandler(cs portssvc.ContactSvcFacade) *contactHandler {
	return &contactHandler{contactService: cs}
}

// registerContactRoutes registers contact routes inside an organization scope.
func registerContactRoutes(rg *gin.RouterGroup, contactService portssvc.ContactSvcFacade) {
	h := newContactHandler(contactService)

	contacts := rg.Group("/contacts")
	{
		contacts.POST("", h.createContact)
		contacts.GET("", h.listContacts)
		contacts.GET("/:contactId", h.getContact)
		contacts.PATCH("/:contactId", h.updateContact)
	}
}

// createContact godoc
// @Summary Create a contact
// @Tags contacts
// @Accept  json
// @Produce  json
// @Param   orgId path string true "Organization ID"
// @Param   contact body dto.CreateContactRequest true "Contact details"
// @Success 201 {object} dto.ContactResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /organizations/{orgId}/contacts [post]
func (h *contactHandler) createContact(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID := c.Param("orgId")

	var req dto.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateContact", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	contact, err := h.contactService.CreateContact(c.Request.Context(), organizationID, req, userID)
	if err != nil {
		logger.Error("Failed to create contact", slog.String("error", err.Error()))
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToContactResponse(*contact))
}

// listContacts godoc
// @Summary List an organization's contacts
// @Tags contacts
// @Produce  json
// @Param   orgId path string true "Organization ID"
// @Success 200 {array} dto.ContactResponse
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /organizations/{orgId}/contacts [get]
func (h *contactHandler) listContacts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID := c.Param("orgId")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	contacts, err := h.contactService.ListContacts(c.Request.Context(), organizationID, userID)
	if err != nil {
		logger.Error("Failed to list contacts", slog.String("error", err.Error()))
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToContactResponses(contacts))
}

// getContact godoc
// @Summary Get a contact by ID
// @Tags contacts
// @Produce  json
// @Param   orgId path string true "Organization ID"
// @Param   contactId path string true "Contact ID"
// @Success 200 {object} dto.ContactResponse
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Contact not found"
// @Security BearerAuth
// @Router /organizations/{orgId}/contacts/{contactId} [get]
func (h *contactHandler) getContact(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID := c.Param("orgId")
	contactID := c.Param("contactId")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	contact, err := h.contactService.GetContactByID(c.Request.Context(), organizationID, contactID, userID)
	if err != nil {
		logger.Warn("Failed to get contact", slog.String("contact_id", contactID), slog.String("error", err.Error()))
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToContactResponse(*contact))
}

// updateContact godoc
// @Summary Update a contact
// @Tags contacts
// @Accept  json
// @Produce  json
// @Param   orgId path string true "Organization ID"
// @Param   contactId path string true "Contact ID"
// @Param   contact body dto.UpdateContactRequest true "Fields to update"
// @Success 200 {object} dto.ContactResponse
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Contact not found"
// @Security BearerAuth
// @Router /organizations/{orgId}/contacts/{contactId} [patch]
func (h *contactHandler) updateContact(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID := c.Param("orgId")
	contactID := c.Param("contactId")

	var req dto.UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateContact", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	contact, err := h.contactService.UpdateContact(c.Request.Context(), organizationID, contactID, req, userID)
	if err != nil {
		logger.Warn("Failed to update contact", slog.String("contact_id", contactID), slog.String("error", err.Error()))
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToContactResponse(*contact))
}
