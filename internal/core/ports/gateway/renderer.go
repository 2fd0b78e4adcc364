package gateway

import "github.com/SscSPs/journal_lifecycle_app/internal/core/domain"

// ExportMeta describes the file being rendered.
type ExportMeta struct {
	CompanyName string
	Period      domain.Period
	Format      domain.ExportFormat
	Set         domain.ExportSet
}

// ExportRenderer renders export files in-process instead of asking the backend.
type ExportRenderer interface {
	Render(meta ExportMeta, entries []domain.Suggestion) ([]byte, error)
}
