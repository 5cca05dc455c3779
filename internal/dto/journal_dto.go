package dto

import (
	"time"

	"github.com/mizanapp/mizan_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateEntryLineRequest is one debit/credit leg of a journal entry.
// Exactly one of Debit and Credit must be positive; the other must be zero.
type CreateEntryLineRequest struct {
	AccountID   string          `json:"accountId" binding:"required"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Description string          `json:"description,omitempty"`
}

// CreateEntryRequest is the payload for committing a journal entry.
type CreateEntryRequest struct {
	Description string                   `json:"description" binding:"required,max=500"`
	EntryDate   *time.Time               `json:"entryDate,omitempty"`
	Reference   string                   `json:"reference,omitempty"`
	Lines       []CreateEntryLineRequest `json:"lines" binding:"required,min=2,dive"`
}

// EntryLineResponse is the API shape of a journal entry line.
type EntryLineResponse struct {
	LineID      string          `json:"lineId"`
	AccountID   string          `json:"accountId"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Description string          `json:"description,omitempty"`
}

// EntryResponse is the API shape of a committed journal entry.
type EntryResponse struct {
	EntryID        string              `json:"entryId"`
	OrganizationID string              `json:"organizationId"`
	EntryNumber    string              `json:"entryNumber"`
	Description    string              `json:"description"`
	EntryDate      time.Time           `json:"entryDate"`
	Reference      string              `json:"reference,omitempty"`
	TotalAmount    decimal.Decimal     `json:"totalAmount"`
	CreatedAt      time.Time           `json:"createdAt"`
	Lines          []EntryLineResponse `json:"lines,omitempty"`
}

func ToEntryLineResponse(line domain.EntryLine) EntryLineResponse {
	return EntryLineResponse{
		LineID:      line.LineID,
		AccountID:   line.AccountID,
		Debit:       line.Debit,
		Credit:      line.Credit,
		Description: line.Description,
	}
}

func ToEntryResponse(entry domain.JournalEntry) EntryResponse {
	resp := EntryResponse{
		EntryID:        entry.EntryID,
		OrganizationID: entry.OrganizationID,
		EntryNumber:    entry.EntryNumber,
		Description:    entry.Description,
		EntryDate:      entry.EntryDate,
		Reference:      entry.Reference,
		TotalAmount:    entry.TotalAmount,
		CreatedAt:      entry.CreatedAt,
	}
	for _, line := range entry.Lines {
		resp.Lines = append(resp.Lines, ToEntryLineResponse(line))
	}
	return resp
}

func ToEntryResponses(entries []domain.JournalEntry) []EntryResponse {
	responses := make([]EntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, ToEntryResponse(entry))
	}
	return responses
}
