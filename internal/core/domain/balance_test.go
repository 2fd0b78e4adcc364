package domain_test

import (
	"testing"

	"github.com/SscSPs/journal_lifecycle_app/internal/apperrors"
	"github.com/SscSPs/journal_lifecycle_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCalculateBalance(t *testing.T) {
	tests := []struct {
		name        string
		lines       []domain.LedgerLine
		wantDebit   string
		wantCredit  string
		wantBalance bool
		wantInvalid []int
	}{
		{
			name:        "no lines",
			lines:       nil,
			wantDebit:   "0",
			wantCredit:  "0",
			wantBalance: true,
		},
		{
			name: "difference below tolerance",
			lines: []domain.LedgerLine{
				{Debit: "100.00", Credit: "0"},
				{Debit: "0", Credit: "99.995"},
			},
			wantDebit:   "100",
			wantCredit:  "99.995",
			wantBalance: true,
		},
		{
			name: "difference above tolerance",
			lines: []domain.LedgerLine{
				{Debit: "100.00"},
				{Credit: "99.98"},
			},
			wantDebit:   "100",
			wantCredit:  "99.98",
			wantBalance: false,
		},
		{
			name: "difference exactly at tolerance",
			lines: []domain.LedgerLine{
				{Debit: "10.00"},
				{Credit: "9.99"},
			},
			wantDebit:   "10",
			wantCredit:  "9.99",
			wantBalance: false,
		},
		{
			name: "blank amounts count as zero",
			lines: []domain.LedgerLine{
				{Debit: "", Credit: "  "},
				{Debit: "42.50", Credit: ""},
				{Debit: "", Credit: "42.50"},
			},
			wantDebit:   "42.5",
			wantCredit:  "42.5",
			wantBalance: true,
		},
		{
			name: "malformed debit never balances",
			lines: []domain.LedgerLine{
				{Debit: "abc", Credit: "0"},
				{Debit: "0", Credit: "0"},
			},
			wantDebit:   "0",
			wantCredit:  "0",
			wantBalance: false,
			wantInvalid: []int{0},
		},
		{
			name: "malformed credit with otherwise equal totals",
			lines: []domain.LedgerLine{
				{Debit: "50", Credit: "0"},
				{Debit: "0", Credit: "50"},
				{Debit: "0", Credit: "1,00"},
			},
			wantDebit:   "50",
			wantCredit:  "50",
			wantBalance: false,
			wantInvalid: []int{2},
		},
		{
			name: "exponent notation is rejected",
			lines: []domain.LedgerLine{
				{Debit: "1e5", Credit: "0"},
				{Debit: "1e20000000", Credit: "0.01"},
			},
			wantDebit:   "0",
			wantCredit:  "0.01",
			wantBalance: false,
			wantInvalid: []int{0, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.CalculateBalance(tt.lines)
			assert.True(t, decimal.RequireFromString(tt.wantDebit).Equal(got.Debit), "debit %s", got.Debit)
			assert.True(t, decimal.RequireFromString(tt.wantCredit).Equal(got.Credit), "credit %s", got.Credit)
			assert.Equal(t, tt.wantBalance, got.Balanced)
			assert.Equal(t, tt.wantInvalid, got.InvalidLines)
		})
	}
}

func TestEmptyBalance(t *testing.T) {
	b := domain.EmptyBalance()
	assert.True(t, b.Balanced)
	assert.True(t, b.Debit.IsZero())
	assert.True(t, b.Credit.IsZero())
}

func TestParseAmount(t *testing.T) {
	amount, err := domain.ParseAmount(" 250.00 ")
	assert.NoError(t, err)
	assert.Equal(t, "250.00", domain.FormatAmount(amount))

	amount, err = domain.ParseAmount("")
	assert.NoError(t, err)
	assert.True(t, amount.IsZero())

	amount, err = domain.ParseAmount("-.5")
	assert.NoError(t, err)
	assert.Equal(t, "-0.50", domain.FormatAmount(amount))

	for _, raw := range []string{"NaN", "1e5", "1E5", "1e20000000", "1e400000000", "1,00", "1234567890123456", "0.1234567", "--1"} {
		_, err = domain.ParseAmount(raw)
		assert.ErrorIs(t, err, apperrors.ErrInvalidAmount, raw)
	}
}
