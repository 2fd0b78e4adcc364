package gateway

import (
	"context"

	"github.com/SscSPs/journal_lifecycle_app/internal/core/domain"
)

// ChartOfAccountsReader reads a company's chart of accounts.
type ChartOfAccountsReader interface {
	// ListAccounts retrieves the chart of accounts of a company.
	ListAccounts(ctx context.Context, companyID string) (domain.ChartOfAccounts, error)
}

// JournalEntryGateway covers posting finalized entries and AI single-entry generation.
type JournalEntryGateway interface {
	// PostEntry sends one posted entry. idempotencyKey is sent so the backend can deduplicate retries.
	PostEntry(ctx context.Context, companyID string, entry domain.JournalEntry, idempotencyKey string) error

	// ListPostedEntries retrieves the posted history of a company.
	ListPostedEntries(ctx context.Context, companyID string) ([]domain.JournalEntry, error)

	// GenerateEntry asks the backend to draft an entry from a natural-language prompt.
	GenerateEntry(ctx context.Context, req GenerateEntryRequest) (*domain.JournalEntry, error)
}

// SuggestionReader reads the lists shown on a board.
type SuggestionReader interface {
	// ListSuggestions retrieves the suggestions in draft for a scope.
	ListSuggestions(ctx context.Context, scope domain.Scope) ([]domain.Suggestion, error)

	// ListEntrySets retrieves the ready and posted sets for a scope.
	ListEntrySets(ctx context.Context, scope domain.Scope) (*domain.EntrySets, error)
}

// SuggestionTransitions performs the lifecycle transitions on the backend.
type SuggestionTransitions interface {
	ReverseSuggestion(ctx context.Context, scope domain.Scope, suggestionID string) error
	BulkGenerate(ctx context.Context, req BulkGenerateRequest) ([]domain.Suggestion, error)
	UpdateSuggestion(ctx context.Context, scope domain.Scope, suggestionID string, je domain.SuggestedJE) error

	// Approve moves a suggestion to Ready. The result carries the Ready list when the backend returns one.
	Approve(ctx context.Context, scope domain.Scope, suggestionID string) (*ApproveResult, error)

	MarkPosted(ctx context.Context, scope domain.Scope, entryIDs []string) error
	MoveToDraft(ctx context.Context, scope domain.Scope, entryID string) error
}

// ExportGateway generates export files and records what was exported.
type ExportGateway interface {
	// ExportEntries returns the generated file for the given entry set.
	ExportEntries(ctx context.Context, req ExportRequest) ([]byte, error)

	// TrackExport records export metadata.
	TrackExport(ctx context.Context, req TrackExportRequest) error
}

// ReceiptGateway relays receipt operations.
type ReceiptGateway interface {
	UploadReceipt(ctx context.Context, companyID string, file domain.FileBlob) (*domain.Receipt, error)
	GetReceipt(ctx context.Context, receiptID string) (*domain.Receipt, error)
	UpdateReceipt(ctx context.Context, receiptID string, update domain.ReceiptUpdate) (*domain.Receipt, error)
	DeleteReceipt(ctx context.Context, receiptID string) error
	ExportReceiptsXLSX(ctx context.Context, companyID string, receiptIDs []string) ([]byte, error)
}

// SuggestionGateway combines suggestion reads and transitions.
type SuggestionGateway interface {
	SuggestionReader
	SuggestionTransitions
}

// BookkeepingGateway combines every backend operation.
// This is a facade for clients that need access to all operations
type BookkeepingGateway interface {
	ChartOfAccountsReader
	JournalEntryGateway
	SuggestionGateway
	ExportGateway
	ReceiptGateway
}
