package pgsql

import (
	portsrepo "github.com/SscSPs/journal_lifecycle_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the PostgreSQL repositories.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		DraftRepo: NewDraftRepository(dbPool),
	}
}
