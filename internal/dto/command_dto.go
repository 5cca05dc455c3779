package dto

import "github.com/shopspring/decimal"

// CommandRequest is a free-text bookkeeping command, e.g. "مبيعات 500" or
// "sales 500 cash".
type CommandRequest struct {
	Text string `json:"text" binding:"required,max=1000"`
}

// CommandResponse is the outcome of interpreting and executing a command.
// Entry or Balances is populated depending on the command kind; unrecognized
// commands carry only the message.
type CommandResponse struct {
	Kind     string                   `json:"kind"`
	Message  string                   `json:"message"`
	Entry    *EntryResponse           `json:"entry,omitempty"`
	Balances []CommandBalanceResponse `json:"balances,omitempty"`
	Stats    *DashboardStatsResponse  `json:"stats,omitempty"`
}

// CommandBalanceResponse is one account's balance in a balance-inquiry answer.
type CommandBalanceResponse struct {
	Code    string          `json:"code"`
	Name    string          `json:"name"`
	Balance decimal.Decimal `json:"balance"`
}
