package domain

import "github.com/shopspring/decimal"

// Balance is the derived debit/credit state of a set of ledger lines.
type Balance struct {
	Debit        decimal.Decimal `json:"debit"`
	Credit       decimal.Decimal `json:"credit"`
	Balanced     bool            `json:"balanced"`
	InvalidLines []int           `json:"invalidLines,omitempty"` // Indexes of lines with malformed amounts
}

// EmptyBalance is the result reported when there is no entry to balance.
func EmptyBalance() Balance {
	return Balance{Debit: decimal.Zero, Credit: decimal.Zero, Balanced: true}
}

// CalculateBalance sums debits and credits across lines.
// The lines balance when the totals differ by less than BalanceTolerance.
// A line with a malformed amount never balances: its index is reported in
// InvalidLines and Balanced is false regardless of the totals.
func CalculateBalance(lines []LedgerLine) Balance {
	result := EmptyBalance()

	for i, line := range lines {
		debit, debitErr := ParseAmount(line.Debit)
		credit, creditErr := ParseAmount(line.Credit)
		if debitErr != nil || creditErr != nil {
			result.InvalidLines = append(result.InvalidLines, i)
		}
		// A failed parse yields zero, so the valid side still counts toward the totals.
		result.Debit = result.Debit.Add(debit)
		result.Credit = result.Credit.Add(credit)
	}

	diff := result.Debit.Sub(result.Credit).Abs()
	result.Balanced = len(result.InvalidLines) == 0 && diff.LessThan(BalanceTolerance)
	return result
}
