package dto

import (
	"github.com/SscSPs/journal_lifecycle_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpdateLineRequest sets one field of a ledger line.
type UpdateLineRequest struct {
	Field string `json:"field" binding:"required,oneof=account accountCode debit credit memo"`
	Value string `json:"value"`
}

// SelectAccountRequest picks an account from the chart of accounts for a line.
type SelectAccountRequest struct {
	CompanyID   string `json:"companyId" binding:"required"`
	AccountCode string `json:"accountCode" binding:"required"`
}

// AccountSearchRequest stores the search text typed into a line's account box.
type AccountSearchRequest struct {
	Text string `json:"text" binding:"max=200"`
}

// UpdateDraftRequest changes the header fields of the draft. Nil fields are left untouched.
type UpdateDraftRequest struct {
	Description *string `json:"description,omitempty" binding:"omitempty,max=500"`
	Date        *string `json:"date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	Reference   *string `json:"reference,omitempty" binding:"omitempty,max=100"`
}

// GenerateDraftRequest asks the AI to draft an entry from a prompt.
type GenerateDraftRequest struct {
	CompanyID string `json:"companyId" binding:"required"`
	Prompt    string `json:"prompt" binding:"required,min=3,max=2000"`
}

// PostEntryRequest posts the current draft to a company's books.
type PostEntryRequest struct {
	CompanyID string `json:"companyId" binding:"required"`
}

// BalanceResponse is the Balance Calculator output.
type BalanceResponse struct {
	Debit        decimal.Decimal `json:"debit"`
	Credit       decimal.Decimal `json:"credit"`
	Balanced     bool            `json:"balanced"`
	InvalidLines []int           `json:"invalidLines,omitempty"`
}

// DraftResponse is the editor state returned after every editor call.
// Entry is null when the user has no draft.
type DraftResponse struct {
	Entry         *domain.JournalEntry `json:"entry"`
	AccountSearch map[int]string       `json:"accountSearch,omitempty"`
	Balance       BalanceResponse      `json:"balance"`
}

// PostEntryResponse carries the posted history reloaded after a successful post.
type PostEntryResponse struct {
	PostedID string                `json:"postedId"`
	History  []domain.JournalEntry `json:"history"`
}

// ToBalanceResponse converts a domain.Balance to BalanceResponse DTO.
func ToBalanceResponse(b domain.Balance) BalanceResponse {
	return BalanceResponse{
		Debit:        b.Debit,
		Credit:       b.Credit,
		Balanced:     b.Balanced,
		InvalidLines: b.InvalidLines,
	}
}

// ToDraftResponse converts a draft session, possibly nil, to DraftResponse DTO.
func ToDraftResponse(s *domain.DraftSession) DraftResponse {
	if s == nil {
		return DraftResponse{Balance: ToBalanceResponse(domain.EmptyBalance())}
	}
	return DraftResponse{
		Entry:         s.Entry,
		AccountSearch: s.AccountSearch,
		Balance:       ToBalanceResponse(s.Balance()),
	}
}
