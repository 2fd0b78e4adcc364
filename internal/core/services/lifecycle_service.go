package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/SscSPs/journal_lifecycle_app/internal/apperrors"
	"github.com/SscSPs/journal_lifecycle_app/internal/core/domain"
	"github.com/SscSPs/journal_lifecycle_app/internal/core/ports/gateway"
	portssvc "github.com/SscSPs/journal_lifecycle_app/internal/core/ports/services"
	"github.com/SscSPs/journal_lifecycle_app/internal/dto"
	"github.com/SscSPs/journal_lifecycle_app/internal/observability/metrics"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	defaultSettleTimeout   = 2 * time.Second
	defaultSettleBaseDelay = 50 * time.Millisecond
	maxSettleDelay         = 500 * time.Millisecond

	defaultBoardCacheSize  = 1024
	defaultBoardCacheTTL   = 30 * time.Minute
	defaultBoardRefreshAge = 30 * time.Second
)

var (
	errNoReadyEntries = apperrors.NewValidationError("There are no entries ready to be marked as posted.")
	errNonPositiveAmt = apperrors.NewValidationError("Amount must be greater than zero.")
)

// boardState is the in-memory board of one scope.
// mu guards board and is never held across a backend call.
type boardState struct {
	mu     sync.Mutex
	board  *domain.Board
	loaded bool
}

// lifecycleService implements the suggestion lifecycle with optimistic local
// updates that are reconciled against the backend once each transition settles.
type lifecycleService struct {
	BaseService
	gateway         gateway.SuggestionGateway
	guard           *InFlightGuard
	settleTimeout   time.Duration
	settleBaseDelay time.Duration
	boardCacheSize  int
	boardCacheTTL   time.Duration
	refreshAge      time.Duration

	// mu serialises get-or-create on boards; only successfully loaded scopes are stored.
	mu     sync.Mutex
	boards *expirable.LRU[string, *boardState]
}

// LifecycleOption is a functional option for configuring the lifecycle service
type LifecycleOption func(*lifecycleService)

// WithApproveSettle bounds the wait for an approved suggestion to appear in the Ready list.
func WithApproveSettle(timeout, baseDelay time.Duration) LifecycleOption {
	return func(s *lifecycleService) {
		if timeout > 0 {
			s.settleTimeout = timeout
		}
		if baseDelay > 0 {
			s.settleBaseDelay = baseDelay
		}
	}
}

// WithBoardCache bounds how many scopes are kept in memory and for how long.
func WithBoardCache(size int, ttl time.Duration) LifecycleOption {
	return func(s *lifecycleService) {
		if size > 0 {
			s.boardCacheSize = size
		}
		if ttl > 0 {
			s.boardCacheTTL = ttl
		}
	}
}

// WithBoardRefresh sets the age after which GetBoard reloads a board from the backend.
func WithBoardRefresh(age time.Duration) LifecycleOption {
	return func(s *lifecycleService) {
		if age > 0 {
			s.refreshAge = age
		}
	}
}

// WithLifecycleClock sets the clock used for board timestamps.
func WithLifecycleClock(now func() time.Time) LifecycleOption {
	return func(s *lifecycleService) {
		s.now = now
	}
}

// WithInFlightGuard shares a guard with other services.
func WithInFlightGuard(guard *InFlightGuard) LifecycleOption {
	return func(s *lifecycleService) {
		s.guard = guard
	}
}

// NewLifecycleService creates a new lifecycle service with the given options
func NewLifecycleService(gw gateway.SuggestionGateway, options ...LifecycleOption) portssvc.LifecycleSvcFacade {
	svc := &lifecycleService{
		gateway:         gw,
		guard:           NewInFlightGuard(),
		settleTimeout:   defaultSettleTimeout,
		settleBaseDelay: defaultSettleBaseDelay,
		boardCacheSize:  defaultBoardCacheSize,
		boardCacheTTL:   defaultBoardCacheTTL,
		refreshAge:      defaultBoardRefreshAge,
	}
	for _, option := range options {
		option(svc)
	}
	svc.boards = expirable.NewLRU[string, *boardState](svc.boardCacheSize, nil, svc.boardCacheTTL)
	return svc
}

// lookup returns the stored board of a scope, if any.
func (s *lifecycleService) lookup(scope domain.Scope) (*boardState, bool) {
	return s.boards.Get(scope.Key())
}

// state returns the stored board of a scope, creating it when missing.
func (s *lifecycleService) state(scope domain.Scope) *boardState {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st, ok := s.boards.Get(scope.Key()); ok {
		return st
	}
	st := &boardState{board: &domain.Board{Scope: scope}}
	s.boards.Add(scope.Key(), st)
	return st
}

// CachedBoards reports how many scopes are held in memory.
func (s *lifecycleService) CachedBoards() int {
	return s.boards.Len()
}

func (s *lifecycleService) snapshot(st *boardState) *domain.Board {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.board.Clone()
}

// GetBoard returns the board of a scope. It is loaded on first use and
// reloaded once its last successful load is older than the refresh age.
func (s *lifecycleService) GetBoard(ctx context.Context, scope domain.Scope) (*domain.Board, error) {
	if st, ok := s.lookup(scope); ok {
		st.mu.Lock()
		fresh := st.loaded && s.Now().Sub(st.board.LoadedAt) < s.refreshAge
		st.mu.Unlock()
		if fresh {
			return s.snapshot(st), nil
		}
	}
	return s.ReloadBoard(ctx, scope)
}

func (s *lifecycleService) ensureLoaded(ctx context.Context, scope domain.Scope) (*boardState, error) {
	if _, err := s.GetBoard(ctx, scope); err != nil {
		return nil, err
	}
	return s.state(scope), nil
}

// ReloadBoard fetches the named lists from the backend and reconciles them
// into the board. With no lists named, every list is reloaded.
func (s *lifecycleService) ReloadBoard(ctx context.Context, scope domain.Scope, lists ...domain.BoardList) (*domain.Board, error) {
	if _, known := s.lookup(scope); len(lists) == 0 || !known {
		lists = []domain.BoardList{domain.ListSuggestions, domain.ListReady, domain.ListPosted}
	}
	want := make(map[domain.BoardList]bool, len(lists))
	for _, l := range lists {
		want[l] = true
	}

	var (
		suggestions []domain.Suggestion
		sets        *domain.EntrySets
		errs        []error
	)
	if want[domain.ListSuggestions] {
		list, err := s.gateway.ListSuggestions(ctx, scope)
		if err != nil {
			errs = append(errs, fmt.Errorf("loading suggestions: %w", err))
		} else {
			suggestions = list
		}
	}
	if want[domain.ListReady] || want[domain.ListPosted] {
		fetched, err := s.gateway.ListEntrySets(ctx, scope)
		if err != nil {
			errs = append(errs, fmt.Errorf("loading entries: %w", err))
		} else {
			sets = fetched
		}
	}

	st, known := s.lookup(scope)
	if !known {
		if len(errs) > 0 {
			s.LogError(ctx, errs[0], "Failed to load board",
				slog.String("company_id", scope.CompanyID), slog.String("period", string(scope.Period)))
			return nil, errs[0]
		}
		st = s.state(scope)
	}
	st.mu.Lock()
	if want[domain.ListSuggestions] {
		s.applyList(ctx, st.board, domain.ListSuggestions, suggestions, suggestions != nil)
	}
	if want[domain.ListReady] {
		s.applyList(ctx, st.board, domain.ListReady, readyOf(sets), sets != nil)
	}
	if want[domain.ListPosted] {
		s.applyList(ctx, st.board, domain.ListPosted, postedOf(sets), sets != nil)
	}
	st.board.Stale = len(errs) > 0
	if len(errs) == 0 {
		st.loaded = true
		st.board.LoadedAt = s.Now()
	}
	loaded := st.loaded
	board := st.board.Clone()
	st.mu.Unlock()

	if len(errs) > 0 {
		err := errs[0]
		s.LogError(ctx, err, "Failed to reload board",
			slog.String("company_id", scope.CompanyID), slog.String("period", string(scope.Period)))
		if !loaded {
			return nil, err
		}
		return board, err
	}
	return board, nil
}

// applyList replaces one list of the board with the remote list. Caller holds the board lock.
func (s *lifecycleService) applyList(ctx context.Context, board *domain.Board, list domain.BoardList, remote []domain.Suggestion, ok bool) {
	if !ok {
		metrics.IncReconciliation(string(list), metrics.ResultError)
		return
	}
	target := boardList(board, list)
	rec := domain.Reconcile(*target, remote)
	*target = rec.List
	metrics.IncReconciliation(string(list), metrics.ResultSuccess)
	if len(rec.Added) > 0 || len(rec.Removed) > 0 {
		s.LogDebug(ctx, "Board list reconciled",
			slog.String("list", string(list)),
			slog.Any("added", rec.Added),
			slog.Any("removed", rec.Removed))
	}
}

func boardList(board *domain.Board, list domain.BoardList) *[]domain.Suggestion {
	switch list {
	case domain.ListReady:
		return &board.Ready
	case domain.ListPosted:
		return &board.Posted
	default:
		return &board.Suggestions
	}
}

func readyOf(sets *domain.EntrySets) []domain.Suggestion {
	if sets == nil {
		return nil
	}
	if sets.Ready == nil {
		return []domain.Suggestion{}
	}
	return sets.Ready
}

func postedOf(sets *domain.EntrySets) []domain.Suggestion {
	if sets == nil {
		return nil
	}
	if sets.Posted == nil {
		return []domain.Suggestion{}
	}
	return sets.Posted
}

// settle reloads the given lists once after a transition finished, whatever its outcome.
// The reload runs even if the caller's context was cancelled.
func (s *lifecycleService) settle(ctx context.Context, scope domain.Scope, lists ...domain.BoardList) *domain.Board {
	board, err := s.ReloadBoard(context.WithoutCancel(ctx), scope, lists...)
	if err != nil && board == nil {
		return &domain.Board{Scope: scope, Stale: true}
	}
	return board
}

func (s *lifecycleService) finish(ctx context.Context, action ActionKind, scope domain.Scope, entityID string, err error) {
	metrics.IncTransition(string(action), metrics.Result(err))
	attrs := []any{
		slog.String("action", string(action)),
		slog.String("suggestion_id", entityID),
		slog.String("company_id", scope.CompanyID),
		slog.String("period", string(scope.Period)),
	}
	if err != nil {
		s.LogError(ctx, err, "Lifecycle transition failed", attrs...)
		return
	}
	s.LogInfo(ctx, "Lifecycle transition completed", attrs...)
}

func transitionError(action ActionKind, entityID string, err error) error {
	return apperrors.NewAppError(http.StatusBadGateway,
		fmt.Sprintf("Failed to %s. Please try again.", actionLabel(action)),
		fmt.Errorf("%s %s: %w", action, entityID, err))
}

func actionLabel(action ActionKind) string {
	switch action {
	case ActionDelete:
		return "delete suggestion"
	case ActionBulkGenerate:
		return "generate suggestions"
	case ActionSaveEdit:
		return "save changes"
	case ActionApprove:
		return "approve entry"
	case ActionMarkPosted:
		return "mark entries as posted"
	case ActionMoveToDraft:
		return "move entry back to draft"
	default:
		return string(action)
	}
}

func suggestionNotFound(id string) error {
	return apperrors.NewAppError(http.StatusNotFound, "Suggestion not found.", fmt.Errorf("%w: suggestion %s", apperrors.ErrNotFound, id))
}

// Delete removes a suggestion from the list at once, reverses it on the
// backend and reloads the suggestions.
func (s *lifecycleService) Delete(ctx context.Context, scope domain.Scope, suggestionID string) (*domain.Board, error) {
	release, err := s.guard.TryEnter(scope.Key(), ActionDelete, suggestionID)
	if err != nil {
		return nil, err
	}
	defer release()

	st, err := s.ensureLoaded(ctx, scope)
	if err != nil {
		return nil, err
	}

	st.mu.Lock()
	if domain.FindSuggestion(st.board.Suggestions, suggestionID) < 0 {
		st.mu.Unlock()
		return nil, suggestionNotFound(suggestionID)
	}
	st.board.Suggestions = domain.RemoveSuggestion(st.board.Suggestions, suggestionID)
	st.mu.Unlock()

	remoteErr := s.gateway.ReverseSuggestion(ctx, scope, suggestionID)
	board := s.settle(ctx, scope, domain.ListSuggestions)
	s.finish(ctx, ActionDelete, scope, suggestionID, remoteErr)
	if remoteErr != nil {
		return board, transitionError(ActionDelete, suggestionID, remoteErr)
	}
	return board, nil
}

// BulkGenerate asks the backend for AI suggestions. On success the response
// replaces the suggestions list; on failure the list is left as it was.
func (s *lifecycleService) BulkGenerate(ctx context.Context, scope domain.Scope, req dto.BulkGenerateRequest) (*domain.Board, error) {
	release, err := s.guard.TryEnter(scope.Key(), ActionBulkGenerate, scope.Key())
	if err != nil {
		return nil, err
	}
	defer release()

	st, err := s.ensureLoaded(ctx, scope)
	if err != nil {
		return nil, err
	}

	generated, remoteErr := s.gateway.BulkGenerate(ctx, gateway.BulkGenerateRequest{
		CompanyID:     scope.CompanyID,
		Period:        string(scope.Period),
		SuggestionIDs: req.SuggestionIDs,
		Regenerate:    req.Regenerate,
	})
	s.finish(ctx, ActionBulkGenerate, scope, scope.Key(), remoteErr)
	if remoteErr != nil {
		return s.snapshot(st), transitionError(ActionBulkGenerate, scope.Key(), remoteErr)
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	st.board.Suggestions = domain.Reconcile(st.board.Suggestions, generated).List
	return st.board.Clone(), nil
}

// BeginEdit returns the edit form of a suggestion, seeded from its proposal
// or, when it has none, from the source item.
func (s *lifecycleService) BeginEdit(ctx context.Context, scope domain.Scope, suggestionID string) (*dto.EditFormResponse, error) {
	st, err := s.ensureLoaded(ctx, scope)
	if err != nil {
		return nil, err
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	idx := domain.FindSuggestion(st.board.Suggestions, suggestionID)
	if idx < 0 {
		return nil, suggestionNotFound(suggestionID)
	}
	sug := st.board.Suggestions[idx]

	if sug.HasProposal() {
		return &dto.EditFormResponse{
			SuggestionID:  sug.ID,
			DebitAccount:  sug.SuggestedJE.DebitAccount,
			CreditAccount: sug.SuggestedJE.CreditAccount,
			Amount:        sug.SuggestedJE.Amount,
			Memo:          sug.SuggestedJE.Memo,
			SeededFrom:    "suggested_je",
		}, nil
	}
	summary := sug.Source.Summary()
	return &dto.EditFormResponse{
		SuggestionID: sug.ID,
		Amount:       summary.Amount.Abs(),
		Memo:         summary.Description,
		SeededFrom:   "source",
	}, nil
}

// SaveEdit stores an edited proposal. On success it is merged into the local
// suggestion; on failure the suggestions are reloaded.
func (s *lifecycleService) SaveEdit(ctx context.Context, scope domain.Scope, suggestionID string, req dto.SaveSuggestionRequest) (*domain.Board, error) {
	je := req.ToSuggestedJE()
	if !je.Amount.IsPositive() {
		return nil, errNonPositiveAmt
	}

	release, err := s.guard.TryEnter(scope.Key(), ActionSaveEdit, suggestionID)
	if err != nil {
		return nil, err
	}
	defer release()

	st, err := s.ensureLoaded(ctx, scope)
	if err != nil {
		return nil, err
	}
	st.mu.Lock()
	found := domain.FindSuggestion(st.board.Suggestions, suggestionID) >= 0
	st.mu.Unlock()
	if !found {
		return nil, suggestionNotFound(suggestionID)
	}

	remoteErr := s.gateway.UpdateSuggestion(ctx, scope, suggestionID, je)
	s.finish(ctx, ActionSaveEdit, scope, suggestionID, remoteErr)
	if remoteErr != nil {
		board := s.settle(ctx, scope, domain.ListSuggestions)
		return board, transitionError(ActionSaveEdit, suggestionID, remoteErr)
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	if idx := domain.FindSuggestion(st.board.Suggestions, suggestionID); idx >= 0 {
		st.board.Suggestions[idx] = st.board.Suggestions[idx].WithProposal(je)
	}
	return st.board.Clone(), nil
}

// Approve moves a suggestion to Ready. It leaves the suggestions list at once;
// on failure the suggestions are reloaded, on success the Ready list is.
func (s *lifecycleService) Approve(ctx context.Context, scope domain.Scope, suggestionID string) (*domain.Board, error) {
	release, err := s.guard.TryEnter(scope.Key(), ActionApprove, suggestionID)
	if err != nil {
		return nil, err
	}
	defer release()

	st, err := s.ensureLoaded(ctx, scope)
	if err != nil {
		return nil, err
	}

	st.mu.Lock()
	if domain.FindSuggestion(st.board.Suggestions, suggestionID) < 0 {
		st.mu.Unlock()
		return nil, suggestionNotFound(suggestionID)
	}
	st.board.Suggestions = domain.RemoveSuggestion(st.board.Suggestions, suggestionID)
	st.mu.Unlock()

	result, remoteErr := s.gateway.Approve(ctx, scope, suggestionID)
	s.finish(ctx, ActionApprove, scope, suggestionID, remoteErr)
	if remoteErr != nil {
		board := s.settle(ctx, scope, domain.ListSuggestions)
		return board, transitionError(ActionApprove, suggestionID, remoteErr)
	}

	if result != nil && result.Ready != nil {
		st.mu.Lock()
		defer st.mu.Unlock()
		s.applyList(ctx, st.board, domain.ListReady, result.Ready, true)
		return st.board.Clone(), nil
	}
	return s.awaitReady(context.WithoutCancel(ctx), scope, suggestionID), nil
}

// awaitReady polls the entry sets with exponential backoff until the approved
// suggestion shows up in Ready or the settle timeout passes, then reconciles
// the Ready list once with the last list fetched.
func (s *lifecycleService) awaitReady(ctx context.Context, scope domain.Scope, suggestionID string) *domain.Board {
	ctx, cancel := context.WithTimeout(ctx, s.settleTimeout)
	defer cancel()

	var (
		last    *domain.EntrySets
		lastErr error
		delay   = s.settleBaseDelay
		polls   int
	)
	for {
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
		case <-timer.C:
		}
		if ctx.Err() != nil {
			break
		}

		polls++
		sets, err := s.gateway.ListEntrySets(ctx, scope)
		if err != nil {
			lastErr = err
		} else {
			last, lastErr = sets, nil
			if domain.FindSuggestion(sets.Ready, suggestionID) >= 0 {
				break
			}
		}
		delay *= 2
		if delay > maxSettleDelay {
			delay = maxSettleDelay
		}
	}

	st := s.state(scope)
	st.mu.Lock()
	defer st.mu.Unlock()
	if last == nil {
		metrics.IncReconciliation(string(domain.ListReady), metrics.ResultError)
		st.board.Stale = true
		if lastErr == nil {
			lastErr = ctx.Err()
		}
		s.LogError(ctx, lastErr, "Ready list did not settle after approve",
			slog.String("suggestion_id", suggestionID), slog.Int("polls", polls))
		return st.board.Clone()
	}
	s.applyList(ctx, st.board, domain.ListReady, readyOf(last), true)
	if domain.FindSuggestion(st.board.Ready, suggestionID) < 0 {
		s.LogWarn(ctx, "Approved suggestion not yet visible in Ready list",
			slog.String("suggestion_id", suggestionID), slog.Int("polls", polls))
	}
	return st.board.Clone()
}

// MarkPosted marks every Ready entry as posted. Ready is cleared at once and
// both Ready and Posted are reloaded afterwards, whatever the outcome.
func (s *lifecycleService) MarkPosted(ctx context.Context, scope domain.Scope) (*domain.Board, error) {
	release, err := s.guard.TryEnter(scope.Key(), ActionMarkPosted, scope.Key())
	if err != nil {
		return nil, err
	}
	defer release()

	st, err := s.ensureLoaded(ctx, scope)
	if err != nil {
		return nil, err
	}

	st.mu.Lock()
	ids := make([]string, 0, len(st.board.Ready))
	for _, entry := range st.board.Ready {
		ids = append(ids, entry.ID)
	}
	if len(ids) == 0 {
		st.mu.Unlock()
		return nil, errNoReadyEntries
	}
	st.board.Ready = []domain.Suggestion{}
	st.mu.Unlock()

	remoteErr := s.gateway.MarkPosted(ctx, scope, ids)
	board := s.settle(ctx, scope, domain.ListReady, domain.ListPosted)
	s.finish(ctx, ActionMarkPosted, scope, scope.Key(), remoteErr)
	if remoteErr != nil {
		return board, transitionError(ActionMarkPosted, scope.Key(), remoteErr)
	}
	return board, nil
}

// MoveToDraft reopens a Ready entry as a suggestion. Both lists are updated at
// once and reloaded afterwards, whatever the outcome.
func (s *lifecycleService) MoveToDraft(ctx context.Context, scope domain.Scope, entryID string) (*domain.Board, error) {
	release, err := s.guard.TryEnter(scope.Key(), ActionMoveToDraft, entryID)
	if err != nil {
		return nil, err
	}
	defer release()

	st, err := s.ensureLoaded(ctx, scope)
	if err != nil {
		return nil, err
	}

	st.mu.Lock()
	idx := domain.FindSuggestion(st.board.Ready, entryID)
	if idx < 0 {
		st.mu.Unlock()
		return nil, apperrors.NewAppError(http.StatusNotFound, "Entry not found in Ready list.", fmt.Errorf("%w: ready entry %s", apperrors.ErrNotFound, entryID))
	}
	reopened := st.board.Ready[idx]
	reopened.Status = domain.SuggestionSuggested
	st.board.Ready = domain.RemoveSuggestion(st.board.Ready, entryID)
	if domain.FindSuggestion(st.board.Suggestions, entryID) < 0 {
		st.board.Suggestions = append(st.board.Suggestions, reopened)
	}
	st.mu.Unlock()

	remoteErr := s.gateway.MoveToDraft(ctx, scope, entryID)
	board := s.settle(ctx, scope, domain.ListSuggestions, domain.ListReady)
	s.finish(ctx, ActionMoveToDraft, scope, entryID, remoteErr)
	if remoteErr != nil {
		return board, transitionError(ActionMoveToDraft, entryID, remoteErr)
	}
	return board, nil
}

// PendingActions lists the "<action>:<id>" pairs in flight for the scope.
func (s *lifecycleService) PendingActions(scope domain.Scope) []string {
	return s.guard.Pending(scope.Key())
}

// IsBusy reports whether any action is in flight for the entity.
func (s *lifecycleService) IsBusy(entityID string) bool {
	return s.guard.IsBusy(entityID)
}
