package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/SscSPs/journal_lifecycle_app/internal/apperrors"
	"github.com/SscSPs/journal_lifecycle_app/internal/core/domain"
	portsrepo "github.com/SscSPs/journal_lifecycle_app/internal/core/ports/repositories"
)

// DraftRepository keeps editor drafts in process memory.
// Sessions are copied on the way in and out so callers never share state.
type DraftRepository struct {
	mu     sync.RWMutex
	drafts map[string]*domain.DraftSession
}

// NewDraftRepository creates an empty in-memory draft store.
func NewDraftRepository() *DraftRepository {
	return &DraftRepository{drafts: make(map[string]*domain.DraftSession)}
}

// Ensure DraftRepository implements portsrepo.DraftRepositoryFacade
var _ portsrepo.DraftRepositoryFacade = (*DraftRepository)(nil)

func (r *DraftRepository) FindDraftByOwner(ctx context.Context, ownerID string) (*domain.DraftSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	session, ok := r.drafts[ownerID]
	if !ok {
		return nil, fmt.Errorf("%w: draft of %s", apperrors.ErrNotFound, ownerID)
	}
	return session.Clone(), nil
}

func (r *DraftRepository) SaveDraft(ctx context.Context, session domain.DraftSession) error {
	if session.OwnerID == "" {
		return fmt.Errorf("%w: draft without owner", apperrors.ErrValidation)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.drafts[session.OwnerID] = session.Clone()
	return nil
}

func (r *DraftRepository) DeleteDraft(ctx context.Context, ownerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.drafts, ownerID)
	return nil
}
