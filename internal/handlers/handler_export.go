package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/SscSPs/journal_lifecycle_app/internal/core/domain"
	portssvc "github.com/SscSPs/journal_lifecycle_app/internal/core/ports/services"
	"github.com/SscSPs/journal_lifecycle_app/internal/dto"
	"github.com/SscSPs/journal_lifecycle_app/internal/middleware"
	"github.com/SscSPs/journal_lifecycle_app/internal/utils"
	"github.com/gin-gonic/gin"
)

// exportHandler handles export file downloads.
type exportHandler struct {
	exportService portssvc.ExportSvc
	posthogClient *utils.PosthogClientWrapper
}

// newExportHandler creates a new exportHandler.
func newExportHandler(exportService portssvc.ExportSvc, posthogClient *utils.PosthogClientWrapper) *exportHandler {
	return &exportHandler{
		exportService: exportService,
		posthogClient: posthogClient,
	}
}

// exportEntries godoc
// @Summary Export journal entries
// @Description Renders the ready (default) or posted entries of a company period in the requested accounting format.
// @Description Unknown formats are exported as csv under their own label.
// @Tags export
// @Accept json
// @Produce octet-stream
// @Param request body dto.ExportRequest true "Export request"
// @Success 200 {file} file "Export file"
// @Failure 400 {object} map[string]string "Invalid request format or nothing to export"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]string "Failed to export journal entries"
// @Security BearerAuth
// @Router /journal-entries/export [post]
func (h *exportHandler) exportEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Export", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	logger = logger.With(
		slog.String("company_id", req.CompanyID),
		slog.String("period", req.Period),
		slog.String("format", req.Format),
	)

	file, err := h.exportService.Export(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to export journal entries. Please try again.")
		return
	}

	middleware.PosthogEvent(c, h.posthogClient, "journal_entries_exported", map[string]any{
		"company_id": req.CompanyID,
		"period":     req.Period,
		"format":     req.Format,
		"set":        string(req.ExportSet()),
		"bytes":      len(file.Data),
	})
	logger.Info("Journal entries exported", slog.String("filename", file.Filename), slog.Int("bytes", len(file.Data)))
	sendFile(c, file)
}

// sendFile writes a file blob as an attachment download.
func sendFile(c *gin.Context, file *domain.FileBlob) {
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"; filename*=UTF-8''%s`,
		file.Filename, url.PathEscape(file.Filename)))
	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Data(http.StatusOK, contentType, file.Data)
}

// registerExportRoutes registers the export download route.
func registerExportRoutes(rg *gin.RouterGroup, exportService portssvc.ExportSvc, posthogClient *utils.PosthogClientWrapper) {
	h := newExportHandler(exportService, posthogClient)
	rg.POST("/journal-entries/export", h.exportEntries)
}
