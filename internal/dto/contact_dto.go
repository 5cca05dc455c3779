package dto

import (
	"time"

	"github.com/mizanapp/mizan_backend/internal/core/domain"
)

// CreateContactRequest is the payload for adding a contact.
type CreateContactRequest struct {
	Name    string `json:"name" binding:"required,max=255"`
	Type    string `json:"type" binding:"required,oneof=customer supplier employee"`
	Email   string `json:"email,omitempty" binding:"omitempty,email,max=255"`
	Phone   string `json:"phone,omitempty" binding:"omitempty,max=64"`
	Address string `json:"address,omitempty" binding:"omitempty,max=500"`
}

// UpdateContactRequest carries the mutable contact attributes. Type is fixed
// at creation.
type UpdateContactRequest struct {
	Name     *string `json:"name,omitempty" binding:"omitempty,max=255"`
	Email    *string `json:"email,omitempty" binding:"omitempty,email,max=255"`
	Phone    *string `json:"phone,omitempty" binding:"omitempty,max=64"`
	Address  *string `json:"address,omitempty" binding:"omitempty,max=500"`
	IsActive *bool   `json:"isActive,omitempty"`
}

// ContactResponse is the API shape of a contact.
type ContactResponse struct {
	ContactID      string    `json:"contactId"`
	OrganizationID string    `json:"organizationId"`
	Name           string    `json:"name"`
	Type           string    `json:"type"`
	Email          string    `json:"email,omitempty"`
	Phone          string    `json:"phone,omitempty"`
	Address        string    `json:"address,omitempty"`
	IsActive       bool      `json:"isActive"`
	CreatedAt      time.Time `json:"createdAt"`
	LastUpdatedAt  time.Time `json:"lastUpdatedAt"`
}

func ToContactResponse(contact domain.Contact) ContactResponse {
	return ContactResponse{
		ContactID:      contact.ContactID,
		OrganizationID: contact.OrganizationID,
		Name:           contact.Name,
		Type:           string(contact.Type),
		Email:          contact.Email,
		Phone:          contact.Phone,
		Address:        contact.Address,
		IsActive:       contact.IsActive,
		CreatedAt:      contact.CreatedAt,
		LastUpdatedAt:  contact.LastUpdatedAt,
	}
}

func ToContactResponses(contacts []domain.Contact) []ContactResponse {
	responses := make([]ContactResponse, 0, len(contacts))
	for _, contact := range contacts {
		responses = append(responses, ToContactResponse(contact))
	}
	return responses
}
