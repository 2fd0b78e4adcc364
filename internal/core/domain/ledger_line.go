package domain

import (
	"fmt"

	"github.com/SscSPs/journal_lifecycle_app/internal/apperrors"
)

// blankAmount is the placeholder a freshly added line carries on both sides.
const blankAmount = "0.00"

// LineField names an editable field of a LedgerLine.
type LineField string

const (
	FieldAccount     LineField = "account"
	FieldAccountCode LineField = "accountCode"
	FieldDebit       LineField = "debit"
	FieldCredit      LineField = "credit"
	FieldMemo        LineField = "memo"
)

// LedgerLine is a single debit/credit row of a journal entry.
// Amounts are kept as the text the user typed; they are parsed on demand.
// Nothing prevents both sides from being non-zero.
type LedgerLine struct {
	Account     string `json:"account"`     // Display name of the chart-of-accounts entry
	AccountCode string `json:"accountCode"` // Reference into the chart of accounts
	Debit       string `json:"debit"`
	Credit      string `json:"credit"`
	Memo        string `json:"memo,omitempty"`
}

// BlankLine returns a line with placeholder amounts and no account.
func BlankLine() LedgerLine {
	return LedgerLine{Debit: blankAmount, Credit: blankAmount}
}

// Set assigns value to the named field.
func (l *LedgerLine) Set(field LineField, value string) error {
	switch field {
	case FieldAccount:
		l.Account = value
	case FieldAccountCode:
		l.AccountCode = value
	case FieldDebit:
		l.Debit = value
	case FieldCredit:
		l.Credit = value
	case FieldMemo:
		l.Memo = value
	default:
		return fmt.Errorf("%w: unknown line field %q", apperrors.ErrValidation, field)
	}
	return nil
}

// HasAccount reports whether an account has been selected for the line.
func (l LedgerLine) HasAccount() bool {
	return l.AccountCode != ""
}
