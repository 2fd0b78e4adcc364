package services_test

import (
	"context"

	"github.com/SscSPs/journal_lifecycle_app/internal/core/domain"
	"github.com/SscSPs/journal_lifecycle_app/internal/core/ports/gateway"
	"github.com/stretchr/testify/mock"
)

// --- Mock BookkeepingGateway ---
type MockBookkeepingGateway struct {
	mock.Mock
}

// Ensure MockBookkeepingGateway implements gateway.BookkeepingGateway
var _ gateway.BookkeepingGateway = (*MockBookkeepingGateway)(nil)

func (m *MockBookkeepingGateway) ListAccounts(ctx context.Context, companyID string) (domain.ChartOfAccounts, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.ChartOfAccounts), args.Error(1)
}

func (m *MockBookkeepingGateway) PostEntry(ctx context.Context, companyID string, entry domain.JournalEntry, idempotencyKey string) error {
	args := m.Called(ctx, companyID, entry, idempotencyKey)
	return args.Error(0)
}

func (m *MockBookkeepingGateway) ListPostedEntries(ctx context.Context, companyID string) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

func (m *MockBookkeepingGateway) GenerateEntry(ctx context.Context, req gateway.GenerateEntryRequest) (*domain.JournalEntry, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockBookkeepingGateway) ListSuggestions(ctx context.Context, scope domain.Scope) ([]domain.Suggestion, error) {
	args := m.Called(ctx, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Suggestion), args.Error(1)
}

func (m *MockBookkeepingGateway) ListEntrySets(ctx context.Context, scope domain.Scope) (*domain.EntrySets, error) {
	args := m.Called(ctx, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EntrySets), args.Error(1)
}

func (m *MockBookkeepingGateway) ReverseSuggestion(ctx context.Context, scope domain.Scope, suggestionID string) error {
	args := m.Called(ctx, scope, suggestionID)
	return args.Error(0)
}

func (m *MockBookkeepingGateway) BulkGenerate(ctx context.Context, req gateway.BulkGenerateRequest) ([]domain.Suggestion, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Suggestion), args.Error(1)
}

func (m *MockBookkeepingGateway) UpdateSuggestion(ctx context.Context, scope domain.Scope, suggestionID string, je domain.SuggestedJE) error {
	args := m.Called(ctx, scope, suggestionID, je)
	return args.Error(0)
}

func (m *MockBookkeepingGateway) Approve(ctx context.Context, scope domain.Scope, suggestionID string) (*gateway.ApproveResult, error) {
	args := m.Called(ctx, scope, suggestionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gateway.ApproveResult), args.Error(1)
}

func (m *MockBookkeepingGateway) MarkPosted(ctx context.Context, scope domain.Scope, entryIDs []string) error {
	args := m.Called(ctx, scope, entryIDs)
	return args.Error(0)
}

func (m *MockBookkeepingGateway) MoveToDraft(ctx context.Context, scope domain.Scope, entryID string) error {
	args := m.Called(ctx, scope, entryID)
	return args.Error(0)
}

func (m *MockBookkeepingGateway) ExportEntries(ctx context.Context, req gateway.ExportRequest) ([]byte, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockBookkeepingGateway) TrackExport(ctx context.Context, req gateway.TrackExportRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockBookkeepingGateway) UploadReceipt(ctx context.Context, companyID string, file domain.FileBlob) (*domain.Receipt, error) {
	args := m.Called(ctx, companyID, file)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Receipt), args.Error(1)
}

func (m *MockBookkeepingGateway) GetReceipt(ctx context.Context, receiptID string) (*domain.Receipt, error) {
	args := m.Called(ctx, receiptID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Receipt), args.Error(1)
}

func (m *MockBookkeepingGateway) UpdateReceipt(ctx context.Context, receiptID string, update domain.ReceiptUpdate) (*domain.Receipt, error) {
	args := m.Called(ctx, receiptID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Receipt), args.Error(1)
}

func (m *MockBookkeepingGateway) DeleteReceipt(ctx context.Context, receiptID string) error {
	args := m.Called(ctx, receiptID)
	return args.Error(0)
}

func (m *MockBookkeepingGateway) ExportReceiptsXLSX(ctx context.Context, companyID string, receiptIDs []string) ([]byte, error) {
	args := m.Called(ctx, companyID, receiptIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// --- Mock ExportRenderer ---
type MockExportRenderer struct {
	mock.Mock
}

var _ gateway.ExportRenderer = (*MockExportRenderer)(nil)

func (m *MockExportRenderer) Render(meta gateway.ExportMeta, entries []domain.Suggestion) ([]byte, error) {
	args := m.Called(meta, entries)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
