package repositories

import (
	"context"

	"github.com/SscSPs/journal_lifecycle_app/internal/core/domain"
)

// DraftReader defines read operations for editor drafts
type DraftReader interface {
	// FindDraftByOwner retrieves the draft session of a user.
	// Returns apperrors.ErrNotFound when the user has no draft.
	FindDraftByOwner(ctx context.Context, ownerID string) (*domain.DraftSession, error)
}

// DraftWriter defines write operations for editor drafts
type DraftWriter interface {
	// SaveDraft creates or replaces the draft session of its owner.
	SaveDraft(ctx context.Context, session domain.DraftSession) error

	// DeleteDraft removes the draft session of a user. Deleting a missing draft is not an error.
	DeleteDraft(ctx context.Context, ownerID string) error
}

// DraftRepositoryFacade combines all draft-related repository interfaces
type DraftRepositoryFacade interface {
	DraftReader
	DraftWriter
}
