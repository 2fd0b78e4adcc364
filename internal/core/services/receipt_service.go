package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/journal_lifecycle_app/internal/apperrors"
	"github.com/SscSPs/journal_lifecycle_app/internal/core/domain"
	"github.com/SscSPs/journal_lifecycle_app/internal/core/ports/gateway"
	portssvc "github.com/SscSPs/journal_lifecycle_app/internal/core/ports/services"
	"github.com/SscSPs/journal_lifecycle_app/internal/dto"
)

const maxReceiptSize = 20 << 20

var (
	errEmptyReceipt   = apperrors.NewValidationError("The uploaded receipt is empty.")
	errReceiptTooBig  = apperrors.NewValidationError("Receipts must be smaller than 20 MB.")
	errNothingChanged = apperrors.NewValidationError("No receipt fields to update.")
)

// receiptService relays receipt operations to the backend.
type receiptService struct {
	BaseService
	gateway gateway.ReceiptGateway
}

// NewReceiptService creates a new receipt service
func NewReceiptService(gw gateway.ReceiptGateway) portssvc.ReceiptSvcFacade {
	return &receiptService{gateway: gw}
}

func (s *receiptService) UploadReceipt(ctx context.Context, companyID string, file domain.FileBlob) (*domain.Receipt, error) {
	if len(file.Data) == 0 {
		return nil, errEmptyReceipt
	}
	if len(file.Data) > maxReceiptSize {
		return nil, errReceiptTooBig
	}
	receipt, err := s.gateway.UploadReceipt(ctx, companyID, file)
	if err != nil {
		s.LogError(ctx, err, "Failed to upload receipt", slog.String("company_id", companyID), slog.String("file_name", file.Filename))
		return nil, apperrors.NewAppError(http.StatusBadGateway, "Failed to upload receipt. Please try again.", err)
	}
	s.LogInfo(ctx, "Receipt uploaded", slog.String("receipt_id", receipt.ID), slog.String("company_id", companyID))
	return receipt, nil
}

func (s *receiptService) GetReceipt(ctx context.Context, receiptID string) (*domain.Receipt, error) {
	receipt, err := s.gateway.GetReceipt(ctx, receiptID)
	if err != nil {
		return nil, fmt.Errorf("loading receipt %s: %w", receiptID, err)
	}
	return receipt, nil
}

func (s *receiptService) UpdateReceipt(ctx context.Context, receiptID string, req dto.UpdateReceiptRequest) (*domain.Receipt, error) {
	update := req.ToReceiptUpdate()
	if update.IsEmpty() {
		return nil, errNothingChanged
	}
	if update.Vendor != nil {
		trimmed := strings.TrimSpace(*update.Vendor)
		update.Vendor = &trimmed
	}
	receipt, err := s.gateway.UpdateReceipt(ctx, receiptID, update)
	if err != nil {
		s.LogError(ctx, err, "Failed to update receipt", slog.String("receipt_id", receiptID))
		return nil, fmt.Errorf("updating receipt %s: %w", receiptID, err)
	}
	return receipt, nil
}

func (s *receiptService) DeleteReceipt(ctx context.Context, receiptID string) error {
	if err := s.gateway.DeleteReceipt(ctx, receiptID); err != nil {
		s.LogError(ctx, err, "Failed to delete receipt", slog.String("receipt_id", receiptID))
		return fmt.Errorf("deleting receipt %s: %w", receiptID, err)
	}
	s.LogInfo(ctx, "Receipt deleted", slog.String("receipt_id", receiptID))
	return nil
}

// ExportReceipts returns a spreadsheet of the selected receipts.
func (s *receiptService) ExportReceipts(ctx context.Context, req dto.ExportReceiptsRequest) (*domain.FileBlob, error) {
	data, err := s.gateway.ExportReceiptsXLSX(ctx, req.CompanyID, req.ReceiptIDs)
	if err != nil {
		s.LogError(ctx, err, "Failed to export receipts", slog.String("company_id", req.CompanyID), slog.Int("count", len(req.ReceiptIDs)))
		return nil, apperrors.NewAppError(http.StatusBadGateway, "Failed to export receipts. Please try again.", err)
	}
	return &domain.FileBlob{
		Filename:    fmt.Sprintf("Receipts_%s_%s.xlsx", req.CompanyID, s.Now().Format("2006-01-02")),
		ContentType: contentTypes["xlsx"],
		Data:        data,
	}, nil
}
