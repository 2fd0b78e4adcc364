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
	"github.com/SscSPs/journal_lifecycle_app/internal/platform/config"
)

const defaultTrackExportTimeout = 10 * time.Second

var errNothingToExport = apperrors.NewValidationError("There are no entries to export.")

var contentTypes = map[string]string{
	"csv":  "text/csv; charset=utf-8",
	"iif":  "text/plain; charset=utf-8",
	"xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}

// exportService renders export files and records each export in the background.
type exportService struct {
	BaseService
	gateway      gateway.ExportGateway
	boards       portssvc.BoardReaderSvc
	renderer     gateway.ExportRenderer
	mode         string
	trackTimeout time.Duration
	wg           sync.WaitGroup
}

// ExportOption is a functional option for configuring the export service
type ExportOption func(*exportService)

// WithLocalRenderer renders files in-process instead of asking the backend.
func WithLocalRenderer(renderer gateway.ExportRenderer) ExportOption {
	return func(s *exportService) {
		s.renderer = renderer
		s.mode = config.ExportModeLocal
	}
}

// WithTrackExportTimeout bounds the background track-export call and the reload after it.
func WithTrackExportTimeout(timeout time.Duration) ExportOption {
	return func(s *exportService) {
		if timeout > 0 {
			s.trackTimeout = timeout
		}
	}
}

// NewExportService creates a new export service with the given options
func NewExportService(gw gateway.ExportGateway, boards portssvc.BoardReaderSvc, options ...ExportOption) portssvc.ExportSvc {
	svc := &exportService{
		gateway:      gw,
		boards:       boards,
		mode:         config.ExportModeRemote,
		trackTimeout: defaultTrackExportTimeout,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Export renders the Ready or Posted entries of a scope and starts tracking the export.
func (s *exportService) Export(ctx context.Context, req dto.ExportRequest) (*domain.FileBlob, error) {
	scope := req.ToScope()
	set := req.ExportSet()
	format := domain.ExportFormat(req.Format)

	board, err := s.boards.GetBoard(ctx, scope)
	if err != nil {
		return nil, err
	}
	entries := board.Ready
	if set == domain.ExportPosted {
		entries = board.Posted
	}
	if len(entries) == 0 {
		return nil, errNothingToExport
	}

	filename := domain.ExportFilename(set, req.CompanyName, scope.Period, format)
	start := time.Now()
	data, err := s.render(ctx, scope, format, set, req.CompanyName, entries)
	metrics.ObserveExport(string(format), s.mode, metrics.Result(err), time.Since(start))
	if err != nil {
		s.LogError(ctx, err, "Failed to generate export",
			slog.String("format", string(format)), slog.String("company_id", scope.CompanyID), slog.String("mode", s.mode))
		return nil, apperrors.NewAppError(http.StatusBadGateway, "Failed to export journal entries. Please try again.", err)
	}
	s.LogInfo(ctx, "Export generated",
		slog.String("filename", filename), slog.Int("entries", len(entries)), slog.String("mode", s.mode))

	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}
	s.track(ctx, gateway.TrackExportRequest{
		CompanyID: scope.CompanyID,
		Period:    string(scope.Period),
		Format:    format,
		Set:       set,
		EntryIDs:  ids,
		Filename:  filename,
	}, scope)

	return &domain.FileBlob{
		Filename:    filename,
		ContentType: contentTypes[format.Extension()],
		Data:        data,
	}, nil
}

func (s *exportService) render(ctx context.Context, scope domain.Scope, format domain.ExportFormat, set domain.ExportSet, companyName string, entries []domain.Suggestion) ([]byte, error) {
	if s.mode == config.ExportModeLocal && s.renderer != nil {
		return s.renderer.Render(gateway.ExportMeta{
			CompanyName: companyName,
			Period:      scope.Period,
			Format:      format,
			Set:         set,
		}, entries)
	}
	data, err := s.gateway.ExportEntries(ctx, gateway.ExportRequest{
		CompanyID: scope.CompanyID,
		Period:    string(scope.Period),
		Format:    format,
		Set:       set,
		Entries:   entries,
	})
	if err != nil {
		return nil, fmt.Errorf("remote export: %w", err)
	}
	return data, nil
}

// track records the export without holding up the download, then reloads the board.
func (s *exportService) track(ctx context.Context, req gateway.TrackExportRequest, scope domain.Scope) {
	logger := s.GetLogger(ctx)
	bg, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.trackTimeout)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer cancel()

		if err := s.gateway.TrackExport(bg, req); err != nil {
			logger.Warn("Failed to track export", slog.String("filename", req.Filename), slog.String("error", err.Error()))
		}
		if _, err := s.boards.ReloadBoard(bg, scope); err != nil {
			logger.Warn("Failed to reload board after export", slog.String("error", err.Error()))
		}
	}()
}

// Wait blocks until background export tracking has finished.
func (s *exportService) Wait() {
	s.wg.Wait()
}
