package accounting

import (
	"fmt"

	"github.com/mizanapp/mizan_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// EntryEffect returns the signed change a line's debit/credit amounts apply to
// an account's running balance, per the normal-balance convention:
//
//	asset/expense (debit-normal):            balance += debit - credit
//	liability/equity/revenue (credit-normal): balance += credit - debit
//
// Getting this sign wrong silently corrupts every derived report, so all
// balance mutation funnels through this one function.
func EntryEffect(class domain.AccountClass, debit, credit decimal.Decimal) (decimal.Decimal, error) {
	switch class {
	case domain.Asset, domain.Expense:
		return debit.Sub(credit), nil
	case domain.Liability, domain.Equity, domain.Revenue:
		return credit.Sub(debit), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown account class %q", class)
	}
}

// SumLines returns the total debits and total credits across lines.
func SumLines(lines []domain.EntryLine) (debits, credits decimal.Decimal) {
	debits = decimal.Zero
	credits = decimal.Zero
	for _, line := range lines {
		debits = debits.Add(line.Debit)
		credits = credits.Add(line.Credit)
	}
	return debits, credits
}
