package dto

import (
	"time"

	"github.com/SscSPs/journal_lifecycle_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ScopeQuery selects the company and period a board call works on.
type ScopeQuery struct {
	CompanyID string `form:"companyId" binding:"required"`
	Period    string `form:"period" binding:"required,period"`
}

// ToScope converts the query to a domain.Scope.
func (q ScopeQuery) ToScope() domain.Scope {
	return domain.Scope{CompanyID: q.CompanyID, Period: domain.Period(q.Period)}
}

// BulkGenerateRequest optionally limits generation to some suggestions.
type BulkGenerateRequest struct {
	SuggestionIDs []string `json:"suggestionIds,omitempty"`
	Regenerate    bool     `json:"regenerate,omitempty"`
}

// SaveSuggestionRequest is the edited journal-entry proposal of a suggestion.
type SaveSuggestionRequest struct {
	DebitAccount  string          `json:"debit_account" binding:"required"`
	CreditAccount string          `json:"credit_account" binding:"required"`
	Amount        decimal.Decimal `json:"amount"`
	Memo          string          `json:"memo,omitempty" binding:"max=500"`
}

// ToSuggestedJE converts the request to a domain.SuggestedJE.
func (r SaveSuggestionRequest) ToSuggestedJE() domain.SuggestedJE {
	return domain.SuggestedJE{
		DebitAccount:  r.DebitAccount,
		CreditAccount: r.CreditAccount,
		Amount:        r.Amount,
		Memo:          r.Memo,
	}
}

// EditFormResponse seeds the edit form of a suggestion.
// SeededFrom is "suggested_je" when an AI proposal exists, otherwise "source".
type EditFormResponse struct {
	SuggestionID  string          `json:"suggestionId"`
	DebitAccount  string          `json:"debit_account"`
	CreditAccount string          `json:"credit_account"`
	Amount        decimal.Decimal `json:"amount"`
	Memo          string          `json:"memo"`
	SeededFrom    string          `json:"seededFrom"`
}

// BoardResponse is the state of the three lists of a scope.
type BoardResponse struct {
	Scope       domain.Scope        `json:"scope"`
	Suggestions []domain.Suggestion `json:"suggestions"`
	Ready       []domain.Suggestion `json:"ready"`
	Posted      []domain.Suggestion `json:"posted"`
	Stale       bool                `json:"stale"`
	LoadedAt    time.Time           `json:"loadedAt"`
	Pending     []string            `json:"pending,omitempty"` // "<action>:<id>" pairs currently in flight
}

// TransitionErrorResponse is returned when a transition fails after its board was reconciled.
type TransitionErrorResponse struct {
	Error string         `json:"error"`
	Board *BoardResponse `json:"board,omitempty"`
}

// ToBoardResponse converts a domain.Board to BoardResponse DTO.
func ToBoardResponse(b *domain.Board, pending []string) *BoardResponse {
	if b == nil {
		return nil
	}
	return &BoardResponse{
		Scope:       b.Scope,
		Suggestions: nonNil(b.Suggestions),
		Ready:       nonNil(b.Ready),
		Posted:      nonNil(b.Posted),
		Stale:       b.Stale,
		LoadedAt:    b.LoadedAt,
		Pending:     pending,
	}
}

func nonNil(list []domain.Suggestion) []domain.Suggestion {
	if list == nil {
		return []domain.Suggestion{}
	}
	return list
}
