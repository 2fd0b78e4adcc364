package handlers_test

import (
	"context"

	"github.com/SscSPs/journal_lifecycle_app/internal/core/domain"
	portssvc "github.com/SscSPs/journal_lifecycle_app/internal/core/ports/services"
	"github.com/SscSPs/journal_lifecycle_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock EditorService ---
type MockEditorService struct {
	mock.Mock
}

var _ portssvc.EditorSvcFacade = (*MockEditorService)(nil)

func (m *MockEditorService) session(args mock.Arguments) (*domain.DraftSession, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DraftSession), args.Error(1)
}

func (m *MockEditorService) GetDraft(ctx context.Context, ownerID string) (*domain.DraftSession, error) {
	return m.session(m.Called(ctx, ownerID))
}

func (m *MockEditorService) CalculateBalance(ctx context.Context, ownerID string) (domain.Balance, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(domain.Balance), args.Error(1)
}

func (m *MockEditorService) SearchAccounts(ctx context.Context, companyID string, text string) (domain.ChartOfAccounts, error) {
	args := m.Called(ctx, companyID, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.ChartOfAccounts), args.Error(1)
}

func (m *MockEditorService) NewDraft(ctx context.Context, ownerID string) (*domain.DraftSession, error) {
	return m.session(m.Called(ctx, ownerID))
}

func (m *MockEditorService) DiscardDraft(ctx context.Context, ownerID string) error {
	args := m.Called(ctx, ownerID)
	return args.Error(0)
}

func (m *MockEditorService) AddLine(ctx context.Context, ownerID string) (*domain.DraftSession, error) {
	return m.session(m.Called(ctx, ownerID))
}

func (m *MockEditorService) RemoveLine(ctx context.Context, ownerID string, index int) (*domain.DraftSession, error) {
	return m.session(m.Called(ctx, ownerID, index))
}

func (m *MockEditorService) UpdateLine(ctx context.Context, ownerID string, index int, req dto.UpdateLineRequest) (*domain.DraftSession, error) {
	return m.session(m.Called(ctx, ownerID, index, req))
}

func (m *MockEditorService) UpdateDraft(ctx context.Context, ownerID string, req dto.UpdateDraftRequest) (*domain.DraftSession, error) {
	return m.session(m.Called(ctx, ownerID, req))
}

func (m *MockEditorService) SelectAccount(ctx context.Context, ownerID string, index int, req dto.SelectAccountRequest) (*domain.DraftSession, error) {
	return m.session(m.Called(ctx, ownerID, index, req))
}

func (m *MockEditorService) SetAccountSearch(ctx context.Context, ownerID string, index int, text string) (*domain.DraftSession, error) {
	return m.session(m.Called(ctx, ownerID, index, text))
}

func (m *MockEditorService) GenerateDraft(ctx context.Context, ownerID string, req dto.GenerateDraftRequest) (*domain.DraftSession, error) {
	return m.session(m.Called(ctx, ownerID, req))
}

func (m *MockEditorService) PostEntry(ctx context.Context, ownerID string, companyID string) (*dto.PostEntryResponse, error) {
	args := m.Called(ctx, ownerID, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PostEntryResponse), args.Error(1)
}

func (m *MockEditorService) History(ctx context.Context, companyID string) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

// --- Mock LifecycleService ---
type MockLifecycleService struct {
	mock.Mock
}

var _ portssvc.LifecycleSvcFacade = (*MockLifecycleService)(nil)

func (m *MockLifecycleService) board(args mock.Arguments) (*domain.Board, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Board), args.Error(1)
}

func (m *MockLifecycleService) GetBoard(ctx context.Context, scope domain.Scope) (*domain.Board, error) {
	return m.board(m.Called(ctx, scope))
}

func (m *MockLifecycleService) ReloadBoard(ctx context.Context, scope domain.Scope, lists ...domain.BoardList) (*domain.Board, error) {
	return m.board(m.Called(ctx, scope, lists))
}

func (m *MockLifecycleService) PendingActions(scope domain.Scope) []string {
	args := m.Called(scope)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]string)
}

func (m *MockLifecycleService) IsBusy(entityID string) bool {
	args := m.Called(entityID)
	return args.Bool(0)
}

func (m *MockLifecycleService) Delete(ctx context.Context, scope domain.Scope, suggestionID string) (*domain.Board, error) {
	return m.board(m.Called(ctx, scope, suggestionID))
}

func (m *MockLifecycleService) BulkGenerate(ctx context.Context, scope domain.Scope, req dto.BulkGenerateRequest) (*domain.Board, error) {
	return m.board(m.Called(ctx, scope, req))
}

func (m *MockLifecycleService) BeginEdit(ctx context.Context, scope domain.Scope, suggestionID string) (*dto.EditFormResponse, error) {
	args := m.Called(ctx, scope, suggestionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.EditFormResponse), args.Error(1)
}

func (m *MockLifecycleService) SaveEdit(ctx context.Context, scope domain.Scope, suggestionID string, req dto.SaveSuggestionRequest) (*domain.Board, error) {
	return m.board(m.Called(ctx, scope, suggestionID, req))
}

func (m *MockLifecycleService) Approve(ctx context.Context, scope domain.Scope, suggestionID string) (*domain.Board, error) {
	return m.board(m.Called(ctx, scope, suggestionID))
}

func (m *MockLifecycleService) MarkPosted(ctx context.Context, scope domain.Scope) (*domain.Board, error) {
	return m.board(m.Called(ctx, scope))
}

func (m *MockLifecycleService) MoveToDraft(ctx context.Context, scope domain.Scope, entryID string) (*domain.Board, error) {
	return m.board(m.Called(ctx, scope, entryID))
}

// --- Mock ExportService ---
type MockExportService struct {
	mock.Mock
}

var _ portssvc.ExportSvc = (*MockExportService)(nil)

func (m *MockExportService) Export(ctx context.Context, req dto.ExportRequest) (*domain.FileBlob, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FileBlob), args.Error(1)
}

func (m *MockExportService) Wait() {}

// --- Mock ReceiptService ---
type MockReceiptService struct {
	mock.Mock
}

var _ portssvc.ReceiptSvcFacade = (*MockReceiptService)(nil)

func (m *MockReceiptService) receipt(args mock.Arguments) (*domain.Receipt, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Receipt), args.Error(1)
}

func (m *MockReceiptService) GetReceipt(ctx context.Context, receiptID string) (*domain.Receipt, error) {
	return m.receipt(m.Called(ctx, receiptID))
}

func (m *MockReceiptService) ExportReceipts(ctx context.Context, req dto.ExportReceiptsRequest) (*domain.FileBlob, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FileBlob), args.Error(1)
}

func (m *MockReceiptService) UploadReceipt(ctx context.Context, companyID string, file domain.FileBlob) (*domain.Receipt, error) {
	return m.receipt(m.Called(ctx, companyID, file))
}

func (m *MockReceiptService) UpdateReceipt(ctx context.Context, receiptID string, req dto.UpdateReceiptRequest) (*domain.Receipt, error) {
	return m.receipt(m.Called(ctx, receiptID, req))
}

func (m *MockReceiptService) DeleteReceipt(ctx context.Context, receiptID string) error {
	args := m.Called(ctx, receiptID)
	return args.Error(0)
}
