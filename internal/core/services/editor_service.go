package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/journal_lifecycle_app/internal/apperrors"
	"github.com/SscSPs/journal_lifecycle_app/internal/core/domain"
	"github.com/SscSPs/journal_lifecycle_app/internal/core/ports/gateway"
	portsrepo "github.com/SscSPs/journal_lifecycle_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/journal_lifecycle_app/internal/core/ports/services"
	"github.com/SscSPs/journal_lifecycle_app/internal/dto"
	"github.com/SscSPs/journal_lifecycle_app/internal/observability/metrics"
	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	defaultCOACacheSize = 256
	defaultCOACacheTTL  = 5 * time.Minute
)

var errNoDraftToPost = apperrors.NewAppError(http.StatusNotFound, "There is no journal entry to post.", apperrors.ErrNotFound)

// EditorGateway is the part of the backend the editor talks to.
type EditorGateway interface {
	gateway.ChartOfAccountsReader
	gateway.JournalEntryGateway
}

// editorService keeps one draft per user and posts it to the backend.
type editorService struct {
	BaseService
	drafts   portsrepo.DraftRepositoryFacade
	gateway  EditorGateway
	guard    *InFlightGuard
	coaTTL   time.Duration
	coaCache *expirable.LRU[string, domain.ChartOfAccounts]
	newKey   func() string
	locks    *ownerLocks
}

// EditorOption is a functional option for configuring the editor service
type EditorOption func(*editorService)

// WithEditorClock sets the clock used for draft ids and timestamps.
func WithEditorClock(now func() time.Time) EditorOption {
	return func(s *editorService) {
		s.now = now
	}
}

// WithCOACacheTTL sets how long a company's chart of accounts is cached.
func WithCOACacheTTL(ttl time.Duration) EditorOption {
	return func(s *editorService) {
		if ttl > 0 {
			s.coaTTL = ttl
		}
	}
}

// WithIdempotencyKeyFunc replaces the generator of per-draft idempotency keys.
func WithIdempotencyKeyFunc(fn func() string) EditorOption {
	return func(s *editorService) {
		s.newKey = fn
	}
}

// WithEditorGuard shares an in-flight guard with other services.
func WithEditorGuard(guard *InFlightGuard) EditorOption {
	return func(s *editorService) {
		s.guard = guard
	}
}

// NewEditorService creates a new editor service with the given options
func NewEditorService(drafts portsrepo.DraftRepositoryFacade, gw EditorGateway, options ...EditorOption) portssvc.EditorSvcFacade {
	svc := &editorService{
		drafts:  drafts,
		gateway: gw,
		guard:   NewInFlightGuard(),
		coaTTL:  defaultCOACacheTTL,
		newKey:  uuid.NewString,
		locks:   newOwnerLocks(),
	}
	for _, option := range options {
		option(svc)
	}
	svc.coaCache = expirable.NewLRU[string, domain.ChartOfAccounts](defaultCOACacheSize, nil, svc.coaTTL)
	return svc
}

// load returns the owner's draft, or nil when there is none.
func (s *editorService) load(ctx context.Context, ownerID string) (*domain.DraftSession, error) {
	session, err := s.drafts.FindDraftByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		s.LogError(ctx, err, "Failed to load draft", slog.String("owner_id", ownerID))
		return nil, fmt.Errorf("loading draft: %w", err)
	}
	return session, nil
}

func (s *editorService) newSession(ownerID string, entry *domain.JournalEntry) *domain.DraftSession {
	if entry.IdempotencyKey == "" {
		entry.IdempotencyKey = s.newKey()
	}
	return &domain.DraftSession{
		OwnerID:       ownerID,
		Entry:         entry,
		AccountSearch: map[int]string{},
		UpdatedAt:     s.Now(),
	}
}

// mutate applies fn to the owner's draft under the owner's lock and saves the
// result when fn reports a change. Without a draft, fn only runs if create is set.
func (s *editorService) mutate(ctx context.Context, ownerID string, create bool, fn func(*domain.DraftSession) (bool, error)) (*domain.DraftSession, error) {
	unlock := s.locks.lock(ownerID)
	defer unlock()

	session, err := s.load(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	changed := false
	if session == nil {
		if !create {
			return nil, nil
		}
		session = s.newSession(ownerID, domain.NewDraftEntry(s.Now(), domain.AuthorUser))
		changed = true
	}

	fnChanged, err := fn(session)
	if err != nil {
		return nil, err
	}
	if !changed && !fnChanged {
		return session, nil
	}

	session.Entry.Recalculate()
	session.UpdatedAt = s.Now()
	if err := s.drafts.SaveDraft(ctx, *session); err != nil {
		s.LogError(ctx, err, "Failed to save draft", slog.String("owner_id", ownerID))
		return nil, fmt.Errorf("saving draft: %w", err)
	}
	return session.Clone(), nil
}

func unchanged(*domain.DraftSession) (bool, error) { return false, nil }

// GetDraft returns the user's draft session, or nil when there is none.
func (s *editorService) GetDraft(ctx context.Context, ownerID string) (*domain.DraftSession, error) {
	return s.load(ctx, ownerID)
}

// NewDraft returns the user's draft, creating an empty one if needed.
func (s *editorService) NewDraft(ctx context.Context, ownerID string) (*domain.DraftSession, error) {
	return s.mutate(ctx, ownerID, true, unchanged)
}

// DiscardDraft throws the user's draft away.
func (s *editorService) DiscardDraft(ctx context.Context, ownerID string) error {
	unlock := s.locks.lock(ownerID)
	defer unlock()
	if err := s.drafts.DeleteDraft(ctx, ownerID); err != nil {
		return fmt.Errorf("discarding draft: %w", err)
	}
	return nil
}

// AddLine appends a blank line, creating the draft if there is none.
func (s *editorService) AddLine(ctx context.Context, ownerID string) (*domain.DraftSession, error) {
	return s.mutate(ctx, ownerID, true, func(session *domain.DraftSession) (bool, error) {
		session.Entry.Lines = append(session.Entry.Lines, domain.BlankLine())
		return true, nil
	})
}

// RemoveLine removes the line at index. An index outside the current lines is ignored.
func (s *editorService) RemoveLine(ctx context.Context, ownerID string, index int) (*domain.DraftSession, error) {
	return s.mutate(ctx, ownerID, false, func(session *domain.DraftSession) (bool, error) {
		entry := session.Entry
		if !entry.HasLine(index) {
			return false, nil
		}
		entry.Lines = append(entry.Lines[:index:index], entry.Lines[index+1:]...)
		session.ShiftSearchAfterRemoval(index)
		return true, nil
	})
}

// UpdateLine sets one field of the line at index. An index outside the current lines is ignored.
func (s *editorService) UpdateLine(ctx context.Context, ownerID string, index int, req dto.UpdateLineRequest) (*domain.DraftSession, error) {
	return s.mutate(ctx, ownerID, false, func(session *domain.DraftSession) (bool, error) {
		if !session.Entry.HasLine(index) {
			return false, nil
		}
		if err := session.Entry.Lines[index].Set(domain.LineField(req.Field), req.Value); err != nil {
			return false, err
		}
		return true, nil
	})
}

// UpdateDraft changes the header fields of the draft.
func (s *editorService) UpdateDraft(ctx context.Context, ownerID string, req dto.UpdateDraftRequest) (*domain.DraftSession, error) {
	return s.mutate(ctx, ownerID, false, func(session *domain.DraftSession) (bool, error) {
		changed := false
		if req.Description != nil {
			session.Entry.Description = *req.Description
			changed = true
		}
		if req.Date != nil {
			session.Entry.Date = *req.Date
			changed = true
		}
		if req.Reference != nil {
			session.Entry.Reference = *req.Reference
			changed = true
		}
		return changed, nil
	})
}

// SelectAccount copies a chart-of-accounts entry onto a line and clears the
// line's search text. An unknown account code is ignored. The chart is only
// fetched once the draft and the line are known to exist.
func (s *editorService) SelectAccount(ctx context.Context, ownerID string, index int, req dto.SelectAccountRequest) (*domain.DraftSession, error) {
	return s.mutate(ctx, ownerID, false, func(session *domain.DraftSession) (bool, error) {
		if !session.Entry.HasLine(index) {
			return false, nil
		}
		accounts, err := s.chartOfAccounts(ctx, req.CompanyID)
		if err != nil {
			return false, err
		}
		account, found := accounts.Find(req.AccountCode)
		if !found {
			return false, nil
		}
		line := &session.Entry.Lines[index]
		line.Account = account.Name
		line.AccountCode = account.Code
		delete(session.AccountSearch, index)
		return true, nil
	})
}

// SetAccountSearch stores the text typed into a line's account search box.
func (s *editorService) SetAccountSearch(ctx context.Context, ownerID string, index int, text string) (*domain.DraftSession, error) {
	return s.mutate(ctx, ownerID, false, func(session *domain.DraftSession) (bool, error) {
		if !session.Entry.HasLine(index) {
			return false, nil
		}
		if session.AccountSearch == nil {
			session.AccountSearch = map[int]string{}
		}
		if text == "" {
			delete(session.AccountSearch, index)
		} else {
			session.AccountSearch[index] = text
		}
		return true, nil
	})
}

// SearchAccounts matches the company's chart of accounts against text.
func (s *editorService) SearchAccounts(ctx context.Context, companyID string, text string) (domain.ChartOfAccounts, error) {
	accounts, err := s.chartOfAccounts(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return accounts.Search(text), nil
}

func (s *editorService) chartOfAccounts(ctx context.Context, companyID string) (domain.ChartOfAccounts, error) {
	if accounts, ok := s.coaCache.Get(companyID); ok {
		return accounts, nil
	}
	accounts, err := s.gateway.ListAccounts(ctx, companyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load chart of accounts", slog.String("company_id", companyID))
		return nil, fmt.Errorf("loading chart of accounts: %w", err)
	}
	s.coaCache.Add(companyID, accounts)
	return accounts, nil
}

// CalculateBalance runs the Balance Calculator over the user's draft.
func (s *editorService) CalculateBalance(ctx context.Context, ownerID string) (domain.Balance, error) {
	session, err := s.load(ctx, ownerID)
	if err != nil {
		return domain.Balance{}, err
	}
	return session.Balance(), nil
}

// GenerateDraft replaces the user's draft with an entry drafted by the AI from a prompt.
func (s *editorService) GenerateDraft(ctx context.Context, ownerID string, req dto.GenerateDraftRequest) (*domain.DraftSession, error) {
	accounts, err := s.chartOfAccounts(ctx, req.CompanyID)
	if err != nil {
		return nil, err
	}

	generated, err := s.gateway.GenerateEntry(ctx, gateway.GenerateEntryRequest{
		CompanyID: req.CompanyID,
		Prompt:    strings.TrimSpace(req.Prompt),
		Accounts:  accounts,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to generate journal entry", slog.String("company_id", req.CompanyID))
		return nil, apperrors.NewAppError(http.StatusBadGateway, "Failed to generate journal entry. Please try again.", err)
	}
	if generated == nil {
		return nil, apperrors.NewAppError(http.StatusBadGateway, "Failed to generate journal entry. Please try again.",
			fmt.Errorf("%w: empty generation result", apperrors.ErrRemoteUnavailable))
	}

	now := s.Now()
	entry := generated.Clone()
	entry.ID = domain.DraftEntryID(now)
	entry.Status = domain.StatusDraft
	entry.CreatedBy = domain.AuthorAI
	entry.CreatedAt = now
	entry.IdempotencyKey = ""
	if entry.Date == "" {
		entry.Date = domain.NewDraftEntry(now, domain.AuthorAI).Date
	}
	if entry.Lines == nil {
		entry.Lines = []domain.LedgerLine{}
	}
	entry.Recalculate()

	unlock := s.locks.lock(ownerID)
	defer unlock()
	session := s.newSession(ownerID, entry)
	if err := s.drafts.SaveDraft(ctx, *session); err != nil {
		return nil, fmt.Errorf("saving generated draft: %w", err)
	}
	s.LogInfo(ctx, "Generated draft journal entry", slog.String("entry_id", entry.ID), slog.Int("lines", len(entry.Lines)))
	return session.Clone(), nil
}

// PostEntry validates the user's draft and posts it. The draft is only
// deleted once the backend accepted it; a failed post leaves it intact for a
// retry, which reuses the draft's idempotency key.
func (s *editorService) PostEntry(ctx context.Context, ownerID string, companyID string) (*dto.PostEntryResponse, error) {
	release, err := s.guard.TryEnter(ownerID, ActionPostEntry, ownerID)
	if err != nil {
		return nil, err
	}
	defer release()

	unlock := s.locks.lock(ownerID)
	defer unlock()

	session, err := s.load(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if session == nil || session.Entry == nil {
		return nil, errNoDraftToPost
	}

	if err := session.Entry.ValidateForPosting(); err != nil {
		metrics.IncPost("rejected")
		s.LogWarn(ctx, "Journal entry failed posting preconditions",
			slog.String("entry_id", session.Entry.ID), slog.String("reason", apperrors.UserMessage(err, err.Error())))
		return nil, err
	}

	if session.Entry.IdempotencyKey == "" {
		session.Entry.IdempotencyKey = s.newKey()
		if err := s.drafts.SaveDraft(ctx, *session); err != nil {
			return nil, fmt.Errorf("saving idempotency key: %w", err)
		}
	}

	posted := session.Entry.ToPosted(s.Now())
	if err := s.gateway.PostEntry(ctx, companyID, posted, posted.IdempotencyKey); err != nil {
		metrics.IncPost(metrics.ResultError)
		s.LogError(ctx, err, "Failed to post journal entry",
			slog.String("entry_id", posted.ID), slog.String("company_id", companyID))
		return nil, apperrors.NewAppError(http.StatusBadGateway, "Failed to post journal entry. Please try again.", err)
	}
	metrics.IncPost(metrics.ResultSuccess)
	s.LogInfo(ctx, "Journal entry posted", slog.String("entry_id", posted.ID), slog.String("company_id", companyID))

	if err := s.drafts.DeleteDraft(ctx, ownerID); err != nil {
		s.LogError(ctx, err, "Failed to clear posted draft", slog.String("owner_id", ownerID))
	}

	resp := &dto.PostEntryResponse{PostedID: posted.ID}
	history, err := s.gateway.ListPostedEntries(ctx, companyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to reload posted history", slog.String("company_id", companyID))
		return resp, nil
	}
	resp.History = history
	return resp, nil
}

// History returns the posted entries of a company.
func (s *editorService) History(ctx context.Context, companyID string) ([]domain.JournalEntry, error) {
	history, err := s.gateway.ListPostedEntries(ctx, companyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load posted history", slog.String("company_id", companyID))
		return nil, fmt.Errorf("loading posted history: %w", err)
	}
	if history == nil {
		return []domain.JournalEntry{}, nil
	}
	return history, nil
}

// ownerLocks serializes editor calls per user.
type ownerLocks struct {
	mu    sync.Mutex
	locks map[string]*ownerLock
}

type ownerLock struct {
	mu   sync.Mutex
	refs int
}

func newOwnerLocks() *ownerLocks {
	return &ownerLocks{locks: make(map[string]*ownerLock)}
}

func (l *ownerLocks) lock(ownerID string) func() {
	l.mu.Lock()
	ol, ok := l.locks[ownerID]
	if !ok {
		ol = &ownerLock{}
		l.locks[ownerID] = ol
	}
	ol.refs++
	l.mu.Unlock()

	ol.mu.Lock()
	return func() {
		ol.mu.Unlock()
		l.mu.Lock()
		ol.refs--
		if ol.refs == 0 {
			delete(l.locks, ownerID)
		}
		l.mu.Unlock()
	}
}
