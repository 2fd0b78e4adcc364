package handlers

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/SscSPs/journal_lifecycle_app/internal/core/domain"
	portssvc "github.com/SscSPs/journal_lifecycle_app/internal/core/ports/services"
	"github.com/SscSPs/journal_lifecycle_app/internal/dto"
	"github.com/SscSPs/journal_lifecycle_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// maxUploadBytes bounds how much of an uploaded file is read; the service rejects anything over its own limit.
const maxUploadBytes = 20<<20 + 1

// receiptHandler relays receipt requests to the receipt service.
type receiptHandler struct {
	receiptService portssvc.ReceiptSvcFacade
}

// newReceiptHandler creates a new receiptHandler.
func newReceiptHandler(receiptService portssvc.ReceiptSvcFacade) *receiptHandler {
	return &receiptHandler{
		receiptService: receiptService,
	}
}

// uploadReceipt godoc
// @Summary Upload a receipt
// @Tags receipts
// @Accept multipart/form-data
// @Produce json
// @Param companyId formData string true "Company ID"
// @Param file formData file true "Receipt image or PDF"
// @Success 201 {object} domain.Receipt
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]string "Failed to upload receipt"
// @Security BearerAuth
// @Router /receipts [post]
func (h *receiptHandler) uploadReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var form dto.UploadReceiptForm
	if err := c.ShouldBind(&form); err != nil {
		logger.Warn("Failed to bind form for UploadReceipt", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		logger.Warn("Receipt file missing", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "A receipt file is required"})
		return
	}
	f, err := header.Open()
	if err != nil {
		logger.Error("Failed to open uploaded receipt", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read the uploaded file"})
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxUploadBytes))
	if err != nil {
		logger.Error("Failed to read uploaded receipt", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read the uploaded file"})
		return
	}

	receipt, err := h.receiptService.UploadReceipt(c.Request.Context(), form.CompanyID, domain.FileBlob{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	})
	if err != nil {
		respondError(c, logger.With(slog.String("company_id", form.CompanyID)), err, "Failed to upload receipt")
		return
	}
	c.JSON(http.StatusCreated, receipt)
}

// getReceipt godoc
// @Summary Get a receipt
// @Tags receipts
// @Produce json
// @Param id path string true "Receipt ID"
// @Success 200 {object} domain.Receipt
// @Failure 404 {object} map[string]string "Receipt not found"
// @Security BearerAuth
// @Router /receipts/{id} [get]
func (h *receiptHandler) getReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	receiptID := c.Param("id")

	receipt, err := h.receiptService.GetReceipt(c.Request.Context(), receiptID)
	if err != nil {
		respondError(c, logger.With(slog.String("receipt_id", receiptID)), err, "Failed to load receipt")
		return
	}
	c.JSON(http.StatusOK, receipt)
}

// updateReceipt godoc
// @Summary Update reviewed receipt fields
// @Tags receipts
// @Accept json
// @Produce json
// @Param id path string true "Receipt ID"
// @Param receipt body dto.UpdateReceiptRequest true "Fields to change"
// @Success 200 {object} domain.Receipt
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 404 {object} map[string]string "Receipt not found"
// @Security BearerAuth
// @Router /receipts/{id} [patch]
func (h *receiptHandler) updateReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	receiptID := c.Param("id")

	var req dto.UpdateReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateReceipt", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	receipt, err := h.receiptService.UpdateReceipt(c.Request.Context(), receiptID, req)
	if err != nil {
		respondError(c, logger.With(slog.String("receipt_id", receiptID)), err, "Failed to update receipt")
		return
	}
	c.JSON(http.StatusOK, receipt)
}

// deleteReceipt godoc
// @Summary Delete a receipt
// @Tags receipts
// @Param id path string true "Receipt ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Receipt not found"
// @Security BearerAuth
// @Router /receipts/{id} [delete]
func (h *receiptHandler) deleteReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	receiptID := c.Param("id")

	if err := h.receiptService.DeleteReceipt(c.Request.Context(), receiptID); err != nil {
		respondError(c, logger.With(slog.String("receipt_id", receiptID)), err, "Failed to delete receipt")
		return
	}
	c.Status(http.StatusNoContent)
}

// exportReceipts godoc
// @Summary Export receipts to a spreadsheet
// @Tags receipts
// @Accept json
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param request body dto.ExportReceiptsRequest true "Receipts to export"
// @Success 200 {file} file "XLSX file"
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 502 {object} map[string]string "Failed to export receipts"
// @Security BearerAuth
// @Router /receipts/export/xlsx [post]
func (h *receiptHandler) exportReceipts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ExportReceiptsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ExportReceipts", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	file, err := h.receiptService.ExportReceipts(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger.With(slog.String("company_id", req.CompanyID)), err, "Failed to export receipts")
		return
	}
	sendFile(c, file)
}

// registerReceiptRoutes registers the receipt pass-through routes.
func registerReceiptRoutes(rg *gin.RouterGroup, receiptService portssvc.ReceiptSvcFacade) {
	h := newReceiptHandler(receiptService)

	receipts := rg.Group("/receipts")
	{
		receipts.POST("", h.uploadReceipt)
		receipts.POST("/export/xlsx", h.exportReceipts)
		receipts.GET("/:id", h.getReceipt)
		receipts.PATCH("/:id", h.updateReceipt)
		receipts.DELETE("/:id", h.deleteReceipt)
	}
}
