package domain

import (
	"github.com/shopspring/decimal"
)

// AccountClass defines the fundamental accounting class of an account.
// The set is closed: no other values are permitted.
type AccountClass string

const (
	Asset     AccountClass = "asset"
	Liability AccountClass = "liability"
	Equity    AccountClass = "equity"
	Revenue   AccountClass = "revenue"
	Expense   AccountClass = "expense"
)

// IsValid reports whether the class is one of the five permitted values.
func (c AccountClass) IsValid() bool {
	switch c {
	case Asset, Liability, Equity, Revenue, Expense:
		return true
	}
	return false
}

// IsDebitNormal reports whether the class increases with debits.
// Asset and expense accounts are debit-normal; liability, equity and revenue
// accounts are credit-normal.
func (c AccountClass) IsDebitNormal() bool {
	return c == Asset || c == Expense
}

// Account is a ledger account within an organization's chart of accounts.
// Balance is never set directly: it is the accumulated signed effect of every
// committed journal-entry line referencing the account, on top of the opening
// balance provided at creation.
type Account struct {
	AccountID       string          `json:"accountID"`      // Primary key (UUID)
	OrganizationID  string          `json:"organizationID"` // Owning organization (non-null)
	Code            string          `json:"code"`           // Organization-scoped account code, e.g. "1111"
	Name            string          `json:"name"`
	Class           AccountClass    `json:"class"`
	ParentAccountID string          `json:"parentAccountID"` // Lookup reference into the same chart, empty if none
	IsActive        bool            `json:"isActive"`
	Balance         decimal.Decimal `json:"balance"`
	AuditFields
}
