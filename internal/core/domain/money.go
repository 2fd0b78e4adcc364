package domain

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/SscSPs/journal_lifecycle_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// BalanceTolerance is the largest debit/credit difference still treated as balanced.
var BalanceTolerance = decimal.New(1, -2)

// plainAmount matches a signed decimal with at most 15 integer and 6 fraction digits.
// Exponent notation is not accepted.
var plainAmount = regexp.MustCompile(`^[+-]?(\d{1,15}(\.\d{0,6})?|\.\d{1,6})$`)

// ParseAmount converts a user-typed debit or credit value into a decimal.
// Blank input counts as zero; anything else must be a plain decimal number.
func ParseAmount(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, nil
	}
	if !plainAmount.MatchString(s) {
		return decimal.Zero, fmt.Errorf("%w: %q", apperrors.ErrInvalidAmount, raw)
	}
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", apperrors.ErrInvalidAmount, raw)
	}
	return amount, nil
}

// FormatAmount renders an amount the way the editor shows it (two decimals).
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
