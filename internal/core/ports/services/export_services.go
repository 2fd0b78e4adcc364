package services

import (
	"context"

	"github.com/SscSPs/journal_lifecycle_app/internal/core/domain"
	"github.com/SscSPs/journal_lifecycle_app/internal/dto"
)

// ExportSvc generates export files.
type ExportSvc interface {
	// Export renders the requested entry set and records the export in the background.
	Export(ctx context.Context, req dto.ExportRequest) (*domain.FileBlob, error)

	// Wait blocks until background export tracking has finished.
	Wait()
}
