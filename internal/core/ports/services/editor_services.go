package services

import (
	"context"

	"github.com/SscSPs/journal_lifecycle_app/internal/core/domain"
	"github.com/SscSPs/journal_lifecycle_app/internal/dto"
)

// EditorReaderSvc defines read operations on a user's draft
type EditorReaderSvc interface {
	// GetDraft returns the user's draft session, or nil when there is none.
	GetDraft(ctx context.Context, ownerID string) (*domain.DraftSession, error)

	// CalculateBalance runs the Balance Calculator over the draft. No draft yields {0, 0, true}.
	CalculateBalance(ctx context.Context, ownerID string) (domain.Balance, error)

	// SearchAccounts matches the company's chart of accounts against text.
	SearchAccounts(ctx context.Context, companyID string, text string) (domain.ChartOfAccounts, error)
}

// EditorWriterSvc defines the draft mutations.
// Every mutation returns the resulting session; mutations other than NewDraft,
// AddLine and GenerateDraft return nil without error when no draft exists.
type EditorWriterSvc interface {
	NewDraft(ctx context.Context, ownerID string) (*domain.DraftSession, error)
	DiscardDraft(ctx context.Context, ownerID string) error
	AddLine(ctx context.Context, ownerID string) (*domain.DraftSession, error)
	RemoveLine(ctx context.Context, ownerID string, index int) (*domain.DraftSession, error)
	UpdateLine(ctx context.Context, ownerID string, index int, req dto.UpdateLineRequest) (*domain.DraftSession, error)
	UpdateDraft(ctx context.Context, ownerID string, req dto.UpdateDraftRequest) (*domain.DraftSession, error)
	SelectAccount(ctx context.Context, ownerID string, index int, req dto.SelectAccountRequest) (*domain.DraftSession, error)
	SetAccountSearch(ctx context.Context, ownerID string, index int, text string) (*domain.DraftSession, error)
	GenerateDraft(ctx context.Context, ownerID string, req dto.GenerateDraftRequest) (*domain.DraftSession, error)
}

// PostingSvc defines posting of the draft and the posted history.
type PostingSvc interface {
	// PostEntry validates and posts the user's draft, then returns the reloaded history.
	PostEntry(ctx context.Context, ownerID string, companyID string) (*dto.PostEntryResponse, error)

	// History returns the posted entries of a company.
	History(ctx context.Context, companyID string) ([]domain.JournalEntry, error)
}

// EditorSvcFacade combines all editor-related service interfaces
// This is a facade for clients that need access to all operations
type EditorSvcFacade interface {
	EditorReaderSvc
	EditorWriterSvc
	PostingSvc
}
