package services

import (
	"context"

	"github.com/SscSPs/journal_lifecycle_app/internal/core/domain"
	"github.com/SscSPs/journal_lifecycle_app/internal/dto"
)

// ReceiptReaderSvc defines read operations for receipts
type ReceiptReaderSvc interface {
	GetReceipt(ctx context.Context, receiptID string) (*domain.Receipt, error)
	ExportReceipts(ctx context.Context, req dto.ExportReceiptsRequest) (*domain.FileBlob, error)
}

// ReceiptWriterSvc defines write operations for receipts
type ReceiptWriterSvc interface {
	UploadReceipt(ctx context.Context, companyID string, file domain.FileBlob) (*domain.Receipt, error)
	UpdateReceipt(ctx context.Context, receiptID string, req dto.UpdateReceiptRequest) (*domain.Receipt, error)
	DeleteReceipt(ctx context.Context, receiptID string) error
}

// ReceiptSvcFacade combines all receipt-related service interfaces
type ReceiptSvcFacade interface {
	ReceiptReaderSvc
	ReceiptWriterSvc
}
