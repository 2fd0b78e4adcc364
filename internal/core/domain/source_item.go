package domain

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// SourceType identifies the kind of item a suggestion was generated from.
type SourceType string

const (
	SourceBank            SourceType = "bank"
	SourceCreditCard      SourceType = "cc"
	SourceLedgerReversal  SourceType = "ledger-reversal"
	SourceVendor          SourceType = "vendor"
	SourceAccountsPayable SourceType = "ap"
)

// SourceSummary is the part of a source item every consumer needs.
type SourceSummary struct {
	ID          string
	Date        string
	Description string
	Amount      decimal.Decimal
}

// SourceItem is the closed set of items a suggestion can originate from:
// BankTransaction, CardTransaction, LedgerReversal, VendorBill, PayableItem.
type SourceItem interface {
	Type() SourceType
	Summary() SourceSummary
	isSourceItem()
}

// BankTransaction is an imported bank statement line.
type BankTransaction struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	BankAccount string          `json:"bank_account,omitempty"`
}

// CardTransaction is an imported credit-card statement line.
type CardTransaction struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Merchant    string          `json:"merchant"`
	Description string          `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	CardLast4   string          `json:"card_last4,omitempty"`
}

// LedgerReversal is an existing ledger entry proposed for reversal.
type LedgerReversal struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	AccountCode string          `json:"account_code,omitempty"`
}

// VendorBill is a bill received from a vendor.
type VendorBill struct {
	ID            string          `json:"id"`
	VendorName    string          `json:"vendor_name"`
	InvoiceNumber string          `json:"invoice_number,omitempty"`
	Date          string          `json:"date"`
	Amount        decimal.Decimal `json:"amount"`
}

// PayableItem is an open accounts-payable item.
type PayableItem struct {
	ID         string          `json:"id"`
	VendorName string          `json:"vendor_name"`
	DueDate    string          `json:"due_date"`
	Amount     decimal.Decimal `json:"amount"`
	Memo       string          `json:"memo,omitempty"`
}

func (BankTransaction) Type() SourceType { return SourceBank }
func (CardTransaction) Type() SourceType { return SourceCreditCard }
func (LedgerReversal) Type() SourceType  { return SourceLedgerReversal }
func (VendorBill) Type() SourceType      { return SourceVendor }
func (PayableItem) Type() SourceType     { return SourceAccountsPayable }

func (BankTransaction) isSourceItem() {}
func (CardTransaction) isSourceItem() {}
func (LedgerReversal) isSourceItem()  {}
func (VendorBill) isSourceItem()      {}
func (PayableItem) isSourceItem()     {}

func (t BankTransaction) Summary() SourceSummary {
	return SourceSummary{ID: t.ID, Date: t.Date, Description: t.Description, Amount: t.Amount}
}

func (t CardTransaction) Summary() SourceSummary {
	desc := t.Description
	if desc == "" {
		desc = t.Merchant
	}
	return SourceSummary{ID: t.ID, Date: t.Date, Description: desc, Amount: t.Amount}
}

func (r LedgerReversal) Summary() SourceSummary {
	return SourceSummary{ID: r.ID, Date: r.Date, Description: "Reversal: " + r.Description, Amount: r.Amount}
}

func (b VendorBill) Summary() SourceSummary {
	desc := b.VendorName
	if b.InvoiceNumber != "" {
		desc = fmt.Sprintf("%s (Invoice %s)", b.VendorName, b.InvoiceNumber)
	}
	return SourceSummary{ID: b.ID, Date: b.Date, Description: desc, Amount: b.Amount}
}

func (p PayableItem) Summary() SourceSummary {
	desc := p.VendorName
	if p.Memo != "" {
		desc = p.VendorName + ": " + p.Memo
	}
	return SourceSummary{ID: p.ID, Date: p.DueDate, Description: desc, Amount: p.Amount}
}

func decodeSourceItem(sourceType SourceType, raw json.RawMessage) (SourceItem, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("missing source item for source type %q", sourceType)
	}
	switch sourceType {
	case SourceBank:
		return decodeInto[BankTransaction](raw)
	case SourceCreditCard:
		return decodeInto[CardTransaction](raw)
	case SourceLedgerReversal:
		return decodeInto[LedgerReversal](raw)
	case SourceVendor:
		return decodeInto[VendorBill](raw)
	case SourceAccountsPayable:
		return decodeInto[PayableItem](raw)
	default:
		return nil, fmt.Errorf("unknown source type %q", sourceType)
	}
}

func decodeInto[T SourceItem](raw json.RawMessage) (SourceItem, error) {
	var item T
	if err := json.Unmarshal(raw, &item); err != nil {
		return nil, fmt.Errorf("decoding %T: %w", item, err)
	}
	return item, nil
}
