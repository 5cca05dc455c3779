package dto

import (
	"github.com/mizanapp/mizan_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TrialBalanceRowResponse is one account row of a trial balance report.
type TrialBalanceRowResponse struct {
	AccountID string          `json:"accountId"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Class     string          `json:"class"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
}

// TrialBalanceResponse is the full trial balance with column totals.
type TrialBalanceResponse struct {
	Mode        string                    `json:"mode"`
	Rows        []TrialBalanceRowResponse `json:"rows"`
	TotalDebit  decimal.Decimal           `json:"totalDebit"`
	TotalCredit decimal.Decimal           `json:"totalCredit"`
}

// AccountAmountResponse is a (code, name, amount) triple used by the income
// statement sections.
type AccountAmountResponse struct {
	AccountID string          `json:"accountId"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
}

// IncomeStatementResponse is the API shape of an income statement.
type IncomeStatementResponse struct {
	Revenues      []AccountAmountResponse `json:"revenues"`
	Expenses      []AccountAmountResponse `json:"expenses"`
	TotalRevenue  decimal.Decimal         `json:"totalRevenue"`
	TotalExpenses decimal.Decimal         `json:"totalExpenses"`
	NetIncome     decimal.Decimal         `json:"netIncome"`
}

// DashboardStatsResponse is the headline numbers for the dashboard.
type DashboardStatsResponse struct {
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	NetProfit     decimal.Decimal `json:"netProfit"`
	CashBalance   decimal.Decimal `json:"cashBalance"`
}

func ToTrialBalanceResponse(mode domain.TrialBalanceMode, rows []domain.TrialBalanceRow) TrialBalanceResponse {
	resp := TrialBalanceResponse{
		Mode:        string(mode),
		Rows:        make([]TrialBalanceRowResponse, 0, len(rows)),
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
	}
	for _, row := range rows {
		resp.Rows = append(resp.Rows, TrialBalanceRowResponse{
			AccountID: row.AccountID,
			Code:      row.Code,
			Name:      row.Name,
			Class:     string(row.Class),
			Debit:     row.Debit,
			Credit:    row.Credit,
		})
		resp.TotalDebit = resp.TotalDebit.Add(row.Debit)
		resp.TotalCredit = resp.TotalCredit.Add(row.Credit)
	}
	return resp
}

func toAccountAmountResponses(amounts []domain.AccountAmount) []AccountAmountResponse {
	responses := make([]AccountAmountResponse, 0, len(amounts))
	for _, amount := range amounts {
		responses = append(responses, AccountAmountResponse{
			AccountID: amount.AccountID,
			Code:      amount.Code,
			Name:      amount.Name,
			Amount:    amount.Amount,
		})
	}
	return responses
}

func ToIncomeStatementResponse(statement domain.IncomeStatement) IncomeStatementResponse {
	return IncomeStatementResponse{
		Revenues:      toAccountAmountResponses(statement.Revenues),
		Expenses:      toAccountAmountResponses(statement.Expenses),
		TotalRevenue:  statement.TotalRevenue,
		TotalExpenses: statement.TotalExpenses,
		NetIncome:     statement.NetIncome,
	}
}

func ToDashboardStatsResponse(stats domain.DashboardStats) DashboardStatsResponse {
	return DashboardStatsResponse{
		TotalRevenue:  stats.TotalRevenue,
		TotalExpenses: stats.TotalExpenses,
		NetProfit:     stats.NetProfit,
		CashBalance:   stats.CashBalance,
	}
}
