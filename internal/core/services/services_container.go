package services

import (
	"github.com/SscSPs/journal_lifecycle_app/internal/core/ports/gateway"
	portsrepo "github.com/SscSPs/journal_lifecycle_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/journal_lifecycle_app/internal/core/ports/services"
	"github.com/SscSPs/journal_lifecycle_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, gw gateway.BookkeepingGateway, renderer gateway.ExportRenderer) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// One guard so that the same action on the same entity is refused across services
	guard := NewInFlightGuard()

	container.Editor = NewEditorService(
		repos.DraftRepo,
		gw,
		WithCOACacheTTL(cfg.COACacheTTL),
		WithEditorGuard(guard),
	)

	container.Lifecycle = NewLifecycleService(
		gw,
		WithApproveSettle(cfg.ApproveSettleTimeout, cfg.ApproveSettleBaseDelay),
		WithBoardRefresh(cfg.BoardRefreshAge),
		WithInFlightGuard(guard),
	)

	exportOptions := []ExportOption{WithTrackExportTimeout(cfg.TrackExportTimeout)}
	if cfg.ExportMode == config.ExportModeLocal {
		exportOptions = append(exportOptions, WithLocalRenderer(renderer))
	}
	container.Export = NewExportService(gw, container.Lifecycle, exportOptions...)

	container.Receipt = NewReceiptService(gw)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.EditorSvcFacade    = (*editorService)(nil)
	_ portssvc.LifecycleSvcFacade = (*lifecycleService)(nil)
	_ portssvc.ExportSvc          = (*exportService)(nil)
	_ portssvc.ReceiptSvcFacade   = (*receiptService)(nil)
)
