package accounting_test

import (
	"testing"

	"github.com/mizanapp/mizan_backend/internal/core/domain"
	"github.com/mizanapp/mizan_backend/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestEntryEffect_SignConvention(t *testing.T) {
	testCases := []struct {
		name   string
		class  domain.AccountClass
		debit  string
		credit string
		want   string
	}{
		{"asset increases on debit", domain.Asset, "100.00", "0", "100.00"},
		{"asset decreases on credit", domain.Asset, "0", "40.00", "-40.00"},
		{"expense increases on debit", domain.Expense, "25.50", "0", "25.50"},
		{"expense decreases on credit", domain.Expense, "0", "25.50", "-25.50"},
		{"liability increases on credit", domain.Liability, "0", "75.00", "75.00"},
		{"liability decreases on debit", domain.Liability, "75.00", "0", "-75.00"},
		{"equity increases on credit", domain.Equity, "0", "1000.00", "1000.00"},
		{"equity decreases on debit", domain.Equity, "300.00", "0", "-300.00"},
		{"revenue increases on credit", domain.Revenue, "0", "100.00", "100.00"},
		{"revenue decreases on debit", domain.Revenue, "10.00", "0", "-10.00"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			effect, err := accounting.EntryEffect(tc.class, dec(tc.debit), dec(tc.credit))
			require.NoError(t, err)
			assert.True(t, dec(tc.want).Equal(effect), "want %s, got %s", tc.want, effect)
		})
	}
}

func TestEntryEffect_UnknownClass(t *testing.T) {
	_, err := accounting.EntryEffect(domain.AccountClass("bogus"), dec("1"), dec("0"))
	assert.Error(t, err)
}

func TestSumLines(t *testing.T) {
	lines := []domain.EntryLine{
		{Debit: dec("60.00"), Credit: dec("0")},
		{Debit: dec("40.00"), Credit: dec("0")},
		{Debit: dec("0"), Credit: dec("100.00")},
	}

	debits, credits := accounting.SumLines(lines)
	assert.True(t, dec("100.00").Equal(debits))
	assert.True(t, dec("100.00").Equal(credits))
}

func TestSumLines_Empty(t *testing.T) {
	debits, credits := accounting.SumLines(nil)
	assert.True(t, debits.IsZero())
	assert.True(t, credits.IsZero())
}
