package backend

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/SscSPs/journal_lifecycle_app/internal/core/domain"
	"github.com/SscSPs/journal_lifecycle_app/internal/core/ports/gateway"
	"github.com/SscSPs/journal_lifecycle_app/internal/middleware"
)

func scopeQuery(scope domain.Scope) url.Values {
	return url.Values{
		"companyId": []string{scope.CompanyID},
		"period":    []string{string(scope.Period)},
	}
}

// transitionBody is the body shared by every lifecycle transition.
type transitionBody struct {
	CompanyID    string              `json:"companyId"`
	Period       string              `json:"period"`
	SuggestionID string              `json:"suggestionId,omitempty"`
	EntryID      string              `json:"entryId,omitempty"`
	EntryIDs     []string            `json:"entryIds,omitempty"`
	SuggestedJE  *domain.SuggestedJE `json:"suggested_je,omitempty"`
}

func newTransitionBody(scope domain.Scope) transitionBody {
	return transitionBody{CompanyID: scope.CompanyID, Period: string(scope.Period)}
}

// ListAccounts retrieves the chart of accounts of a company.
func (c *Client) ListAccounts(ctx context.Context, companyID string) (domain.ChartOfAccounts, error) {
	data, err := c.do(ctx, request{
		endpoint: "list_accounts",
		method:   http.MethodGet,
		path:     fmt.Sprintf("/companies/%s/coa", url.PathEscape(companyID)),
	})
	if err != nil {
		return nil, err
	}
	accounts, err := decodeList[domain.ChartAccount](data, "accounts", "coa")
	if err != nil {
		return nil, decodeErr("list_accounts", err)
	}
	return domain.ChartOfAccounts(accounts), nil
}

// PostEntry posts a finalized entry. The idempotency key lets the backend drop retried duplicates.
func (c *Client) PostEntry(ctx context.Context, companyID string, entry domain.JournalEntry, idempotencyKey string) error {
	headers := map[string]string{}
	if idempotencyKey != "" {
		headers["Idempotency-Key"] = idempotencyKey
	}
	_, err := c.do(ctx, request{
		endpoint: "post_entry",
		method:   http.MethodPost,
		path:     fmt.Sprintf("/companies/%s/journal-entries", url.PathEscape(companyID)),
		body:     entry,
		headers:  headers,
	})
	return err
}

// ListPostedEntries retrieves the posted history of a company.
func (c *Client) ListPostedEntries(ctx context.Context, companyID string) ([]domain.JournalEntry, error) {
	data, err := c.do(ctx, request{
		endpoint: "list_posted_entries",
		method:   http.MethodGet,
		path:     fmt.Sprintf("/companies/%s/journal-entries", url.PathEscape(companyID)),
	})
	if err != nil {
		return nil, err
	}
	entries, err := decodeList[domain.JournalEntry](data, "entries", "journalEntries")
	if err != nil {
		return nil, decodeErr("list_posted_entries", err)
	}
	return entries, nil
}

// GenerateEntry asks the backend AI to draft one entry from a prompt.
func (c *Client) GenerateEntry(ctx context.Context, req gateway.GenerateEntryRequest) (*domain.JournalEntry, error) {
	data, err := c.do(ctx, request{
		endpoint: "generate_entry",
		method:   http.MethodPost,
		path:     "/journal-entries/generate",
		body:     req,
	})
	if err != nil {
		return nil, err
	}
	var entry domain.JournalEntry
	if err := decodeInto(data, &entry, "entry", "journalEntry"); err != nil {
		return nil, decodeErr("generate_entry", err)
	}
	return &entry, nil
}

// ListSuggestions retrieves the suggestions in draft for a scope.
func (c *Client) ListSuggestions(ctx context.Context, scope domain.Scope) ([]domain.Suggestion, error) {
	data, err := c.do(ctx, request{
		endpoint: "list_suggestions",
		method:   http.MethodGet,
		path:     "/journal-entries/suggestions",
		query:    scopeQuery(scope),
	})
	if err != nil {
		return nil, err
	}
	suggestions, err := decodeList[domain.Suggestion](data, "suggestions")
	if err != nil {
		return nil, decodeErr("list_suggestions", err)
	}
	return suggestions, nil
}

// ListEntrySets retrieves the ready and posted sets for a scope.
func (c *Client) ListEntrySets(ctx context.Context, scope domain.Scope) (*domain.EntrySets, error) {
	data, err := c.do(ctx, request{
		endpoint: "list_entry_sets",
		method:   http.MethodGet,
		path:     "/journal-entries",
		query:    scopeQuery(scope),
	})
	if err != nil {
		return nil, err
	}
	sets := &domain.EntrySets{}
	if err := decodeInto(data, sets); err != nil {
		return nil, decodeErr("list_entry_sets", err)
	}
	if sets.Ready == nil {
		sets.Ready = []domain.Suggestion{}
	}
	if sets.Posted == nil {
		sets.Posted = []domain.Suggestion{}
	}
	return sets, nil
}

// ReverseSuggestion deletes a suggestion by reversing it.
func (c *Client) ReverseSuggestion(ctx context.Context, scope domain.Scope, suggestionID string) error {
	body := newTransitionBody(scope)
	body.SuggestionID = suggestionID
	_, err := c.do(ctx, request{
		endpoint: "reverse_suggestion",
		method:   http.MethodPost,
		path:     "/journal-entries/reverse-suggestion",
		body:     body,
	})
	return err
}

// BulkGenerate asks the backend AI for suggestions over a whole period.
func (c *Client) BulkGenerate(ctx context.Context, req gateway.BulkGenerateRequest) ([]domain.Suggestion, error) {
	data, err := c.do(ctx, request{
		endpoint: "bulk_generate",
		method:   http.MethodPost,
		path:     "/journal-entries/bulk-generate",
		body:     req,
	})
	if err != nil {
		return nil, err
	}
	suggestions, err := decodeList[domain.Suggestion](data, "suggestions")
	if err != nil {
		return nil, decodeErr("bulk_generate", err)
	}
	return suggestions, nil
}

// UpdateSuggestion replaces the proposal of a suggestion.
func (c *Client) UpdateSuggestion(ctx context.Context, scope domain.Scope, suggestionID string, je domain.SuggestedJE) error {
	body := newTransitionBody(scope)
	body.SuggestionID = suggestionID
	body.SuggestedJE = &je
	_, err := c.do(ctx, request{
		endpoint: "update_suggestion",
		method:   http.MethodPost,
		path:     "/journal-entries/update-suggestion",
		body:     body,
	})
	return err
}

// Approve moves a suggestion to Ready. The Ready list is returned when the backend sends one.
func (c *Client) Approve(ctx context.Context, scope domain.Scope, suggestionID string) (*gateway.ApproveResult, error) {
	body := newTransitionBody(scope)
	body.SuggestionID = suggestionID
	data, err := c.do(ctx, request{
		endpoint: "approve",
		method:   http.MethodPost,
		path:     "/journal-entries/approve",
		body:     body,
	})
	if err != nil {
		return nil, err
	}
	var payload struct {
		Ready []domain.Suggestion `json:"ready"`
	}
	if err := decodeInto(data, &payload); err != nil {
		// The approval itself went through; the caller falls back to polling.
		middleware.GetLoggerFromCtx(ctx).Warn("Ignoring undecodable approve response",
			slog.String("suggestion_id", suggestionID), slog.String("error", err.Error()))
		return &gateway.ApproveResult{}, nil
	}
	return &gateway.ApproveResult{Ready: payload.Ready}, nil
}

// MarkPosted marks the given Ready entries as posted.
func (c *Client) MarkPosted(ctx context.Context, scope domain.Scope, entryIDs []string) error {
	body := newTransitionBody(scope)
	body.EntryIDs = entryIDs
	_, err := c.do(ctx, request{
		endpoint: "mark_posted",
		method:   http.MethodPost,
		path:     "/journal-entries/mark-posted",
		body:     body,
	})
	return err
}

// MoveToDraft reopens a Ready entry as a suggestion.
func (c *Client) MoveToDraft(ctx context.Context, scope domain.Scope, entryID string) error {
	body := newTransitionBody(scope)
	body.EntryID = entryID
	_, err := c.do(ctx, request{
		endpoint: "move_to_draft",
		method:   http.MethodPost,
		path:     "/journal-entries/move-to-draft",
		body:     body,
	})
	return err
}

// ExportEntries returns the file the backend generated for an entry set.
func (c *Client) ExportEntries(ctx context.Context, req gateway.ExportRequest) ([]byte, error) {
	return c.do(ctx, request{
		endpoint: "export_entries",
		method:   http.MethodPost,
		path:     "/journal-entries/export",
		body:     req,
	})
}

// TrackExport records export metadata.
func (c *Client) TrackExport(ctx context.Context, req gateway.TrackExportRequest) error {
	_, err := c.do(ctx, request{
		endpoint: "track_export",
		method:   http.MethodPost,
		path:     "/journal-entries/track-export",
		body:     req,
	})
	return err
}
