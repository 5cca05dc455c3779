package domain

import (
	"github.com/shopspring/decimal"
)

// TrialBalanceMode selects how balances are mapped onto debit/credit columns.
type TrialBalanceMode string

const (
	// TrialBalanceSigned maps positive balances to the debit column and
	// negative balances to the credit column regardless of account class.
	// This reproduces the historical behavior; it conflates balance sign with
	// column and is only correct while no account carries an abnormal balance.
	TrialBalanceSigned TrialBalanceMode = "signed"
	// TrialBalanceNormal places each balance in its class's normal column,
	// flipping columns when the balance is abnormal (negative).
	TrialBalanceNormal TrialBalanceMode = "normal"
)

// TrialBalanceRow is a single account's row in a trial balance report.
type TrialBalanceRow struct {
	AccountID string          `json:"accountID"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Class     AccountClass    `json:"class"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
}

// AccountAmount is an account with its amount in a financial report.
type AccountAmount struct {
	AccountID string          `json:"accountID"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
}

// IncomeStatement partitions revenue and expense accounts with their totals.
type IncomeStatement struct {
	Revenues      []AccountAmount `json:"revenues"`
	Expenses      []AccountAmount `json:"expenses"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	NetIncome     decimal.Decimal `json:"netIncome"`
}

// DashboardStats is the summary block shown on the dashboard and sent by the bot.
type DashboardStats struct {
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	NetProfit     decimal.Decimal `json:"netProfit"`
	CashBalance   decimal.Decimal `json:"cashBalance"`
}
