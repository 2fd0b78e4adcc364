package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/journal_lifecycle_app/internal/apperrors"
	"github.com/SscSPs/journal_lifecycle_app/internal/core/domain"
	portsrepo "github.com/SscSPs/journal_lifecycle_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DraftRepository stores editor drafts in PostgreSQL, one row per owner.
// The entry and search text are kept as JSONB documents.
type DraftRepository struct {
	db *pgxpool.Pool
}

// NewDraftRepository creates a new repository for editor drafts.
func NewDraftRepository(db *pgxpool.Pool) *DraftRepository {
	return &DraftRepository{db: db}
}

// Ensure DraftRepository implements portsrepo.DraftRepositoryFacade
var _ portsrepo.DraftRepositoryFacade = (*DraftRepository)(nil)

func (r *DraftRepository) FindDraftByOwner(ctx context.Context, ownerID string) (*domain.DraftSession, error) {
	query := `
        SELECT owner_id, entry, account_search, updated_at
        FROM journal_drafts
        WHERE owner_id = $1;
    `
	var (
		session     domain.DraftSession
		entryDoc    []byte
		searchDoc   []byte
		updatedAtTS time.Time
	)
	err := r.db.QueryRow(ctx, query, ownerID).Scan(&session.OwnerID, &entryDoc, &searchDoc, &updatedAtTS)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: draft of %s", apperrors.ErrNotFound, ownerID)
		}
		return nil, fmt.Errorf("failed to find draft of %s: %w", ownerID, err)
	}

	var entry domain.JournalEntry
	if err := json.Unmarshal(entryDoc, &entry); err != nil {
		return nil, fmt.Errorf("failed to decode draft entry of %s: %w", ownerID, err)
	}
	session.Entry = &entry
	if len(searchDoc) > 0 {
		if err := json.Unmarshal(searchDoc, &session.AccountSearch); err != nil {
			return nil, fmt.Errorf("failed to decode account search of %s: %w", ownerID, err)
		}
	}
	if session.AccountSearch == nil {
		session.AccountSearch = map[int]string{}
	}
	session.UpdatedAt = updatedAtTS
	return &session, nil
}

func (r *DraftRepository) SaveDraft(ctx context.Context, session domain.DraftSession) error {
	if session.OwnerID == "" || session.Entry == nil {
		return fmt.Errorf("%w: draft needs an owner and an entry", apperrors.ErrValidation)
	}
	entryDoc, err := json.Marshal(session.Entry)
	if err != nil {
		return fmt.Errorf("failed to encode draft entry: %w", err)
	}
	search := session.AccountSearch
	if search == nil {
		search = map[int]string{}
	}
	searchDoc, err := json.Marshal(search)
	if err != nil {
		return fmt.Errorf("failed to encode account search: %w", err)
	}
	updatedAt := session.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}

	query := `
        INSERT INTO journal_drafts (owner_id, entry_id, entry, account_search, idempotency_key, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (owner_id) DO UPDATE SET
            entry_id = EXCLUDED.entry_id,
            entry = EXCLUDED.entry,
            account_search = EXCLUDED.account_search,
            idempotency_key = EXCLUDED.idempotency_key,
            updated_at = EXCLUDED.updated_at;
    `
	_, err = r.db.Exec(ctx, query,
		session.OwnerID,
		session.Entry.ID,
		entryDoc,
		searchDoc,
		session.Entry.IdempotencyKey,
		updatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save draft of %s: %w", session.OwnerID, err)
	}
	return nil
}

func (r *DraftRepository) DeleteDraft(ctx context.Context, ownerID string) error {
	query := `DELETE FROM journal_drafts WHERE owner_id = $1;`
	if _, err := r.db.Exec(ctx, query, ownerID); err != nil {
		return fmt.Errorf("failed to delete draft of %s: %w", ownerID, err)
	}
	return nil
}
