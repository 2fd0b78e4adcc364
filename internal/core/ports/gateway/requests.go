package gateway

import "github.com/SscSPs/journal_lifecycle_app/internal/core/domain"

// GenerateEntryRequest is the input of AI single-entry generation.
type GenerateEntryRequest struct {
	CompanyID string                 `json:"companyId"`
	Prompt    string                 `json:"prompt"`
	Accounts  domain.ChartOfAccounts `json:"chartOfAccounts"`
}

// BulkGenerateRequest asks for suggestions over every unprocessed source item of a scope.
type BulkGenerateRequest struct {
	CompanyID     string   `json:"companyId"`
	Period        string   `json:"period"`
	SuggestionIDs []string `json:"suggestionIds,omitempty"`
	Regenerate    bool     `json:"regenerate,omitempty"`
}

// ApproveResult is the outcome of an approve call.
// Ready is nil unless the backend returned the updated Ready list.
type ApproveResult struct {
	Ready []domain.Suggestion
}

// ExportRequest selects the entries to render.
type ExportRequest struct {
	CompanyID string              `json:"companyId"`
	Period    string              `json:"period"`
	Format    domain.ExportFormat `json:"format"`
	Set       domain.ExportSet    `json:"set"`
	Entries   []domain.Suggestion `json:"entries"`
}

// TrackExportRequest records which entries were exported in which format.
type TrackExportRequest struct {
	CompanyID string              `json:"companyId"`
	Period    string              `json:"period"`
	Format    domain.ExportFormat `json:"format"`
	Set       domain.ExportSet    `json:"set"`
	EntryIDs  []string            `json:"entryIds"`
	Filename  string              `json:"filename"`
}
