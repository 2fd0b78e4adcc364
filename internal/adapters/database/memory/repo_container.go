package memory

import portsrepo "github.com/SscSPs/journal_lifecycle_app/internal/core/ports/repositories"

// NewRepositoryProvider wires the in-memory repositories, used when no database is configured.
func NewRepositoryProvider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		DraftRepo: NewDraftRepository(),
	}
}
