package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry is a single balanced bookkeeping event. Once committed it is
// immutable: there are no edit or delete operations.
type JournalEntry struct {
	EntryID        string          `json:"entryID"`        // Primary key (UUID)
	OrganizationID string          `json:"organizationID"` // Owning organization (non-null)
	EntryNumber    string          `json:"entryNumber"`    // System-assigned, time-ordered, e.g. "JE-01H..."
	Description    string          `json:"description"`
	EntryDate      time.Time       `json:"entryDate"` // Caller-supplied event date, distinct from CreatedAt
	Reference      string          `json:"reference"` // Optional free-text reference
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	AuditFields
	// Lines are loaded separately by default; populated on demand.
	Lines []EntryLine `json:"lines,omitempty"`
}

// EntryLine is a single line item of a journal entry, affecting one account.
// A valid line carries a debit or a credit amount, never both nonzero.
type EntryLine struct {
	LineID      string          `json:"lineID"`  // Primary key (UUID)
	EntryID     string          `json:"entryID"` // Owning entry (non-null)
	AccountID   string          `json:"accountID"`
	Debit       decimal.Decimal `json:"debit"`  // >= 0
	Credit      decimal.Decimal `json:"credit"` // >= 0
	Description string          `json:"description"` // Optional line description
}
