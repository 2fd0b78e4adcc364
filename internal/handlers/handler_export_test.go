package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/SscSPs/journal_lifecycle_app/internal/apperrors"
	"github.com/SscSPs/journal_lifecycle_app/internal/core/domain"
	"github.com/SscSPs/journal_lifecycle_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlerTestSuite) TestExport_Download() {
	req := dto.ExportRequest{CompanyID: "c1", CompanyName: "Acme GmbH", Period: "2024-03", Format: "qb-csv"}
	file := &domain.FileBlob{
		Filename:    "JournalEntries_Acme GmbH_2024-03_QuickBooks.csv",
		ContentType: "text/csv; charset=utf-8",
		Data:        []byte("Date,Account\n"),
	}
	suite.mockExport.On("Export", mock.Anything, req).Return(file, nil).Once()

	w := suite.serve(http.MethodPost, "/api/v1/journal-entries/export", req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	suite.Contains(w.Header().Get("Content-Disposition"), `attachment; filename="JournalEntries_Acme GmbH_2024-03_QuickBooks.csv"`)
	suite.Equal("Date,Account\n", w.Body.String())
}

func (suite *HandlerTestSuite) TestExport_NothingToExport() {
	req := dto.ExportRequest{CompanyID: "c1", CompanyName: "Acme GmbH", Period: "2024-03", Format: "xero", Set: "posted"}
	suite.mockExport.On("Export", mock.Anything, req).
		Return(nil, apperrors.NewValidationError("There are no entries to export.")).Once()

	w := suite.serve(http.MethodPost, "/api/v1/journal-entries/export", req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("There are no entries to export.", suite.errorMessage(w))
}

func (suite *HandlerTestSuite) TestExport_RejectsBadFormatToken() {
	req := dto.ExportRequest{CompanyID: "c1", CompanyName: "Acme GmbH", Period: "2024-03", Format: "../x"}

	w := suite.serve(http.MethodPost, "/api/v1/journal-entries/export", req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockExport.AssertNotCalled(suite.T(), "Export")
}

func (suite *HandlerTestSuite) TestExport_BackendRejected() {
	req := dto.ExportRequest{CompanyID: "c1", CompanyName: "Acme GmbH", Period: "2024-03", Format: "qb-iif"}
	err := apperrors.NewAppError(http.StatusBadGateway, "Failed to export journal entries. Please try again.",
		fmt.Errorf("export: %w", apperrors.ErrRemoteRejected))
	suite.mockExport.On("Export", mock.Anything, req).Return(nil, err).Once()

	w := suite.serve(http.MethodPost, "/api/v1/journal-entries/export", req)

	suite.Equal(http.StatusBadGateway, w.Code)
	suite.Equal("Failed to export journal entries. Please try again.", suite.errorMessage(w))
}

func (suite *HandlerTestSuite) TestUploadReceipt() {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	suite.Require().NoError(writer.WriteField("companyId", "c1"))
	part, err := writer.CreateFormFile("file", "coffee.jpg")
	suite.Require().NoError(err)
	_, err = part.Write([]byte("jpeg-bytes"))
	suite.Require().NoError(err)
	suite.Require().NoError(writer.Close())

	receipt := &domain.Receipt{ID: "r1", CompanyID: "c1", FileName: "coffee.jpg"}
	suite.mockReceipt.On("UploadReceipt", mock.Anything, "c1", mock.MatchedBy(func(f domain.FileBlob) bool {
		return f.Filename == "coffee.jpg" && string(f.Data) == "jpeg-bytes"
	})).Return(receipt, nil).Once()

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/receipts", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	w := suite.serveRequest(req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp domain.Receipt
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("r1", resp.ID)
}

func (suite *HandlerTestSuite) TestUploadReceipt_MissingFile() {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	suite.Require().NoError(writer.WriteField("companyId", "c1"))
	suite.Require().NoError(writer.Close())

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/receipts", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	w := suite.serveRequest(req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("A receipt file is required", suite.errorMessage(w))
}

func (suite *HandlerTestSuite) TestGetReceipt_NotFound() {
	err := fmt.Errorf("loading receipt r404: %w", apperrors.ErrNotFound)
	suite.mockReceipt.On("GetReceipt", mock.Anything, "r404").Return(nil, err).Once()

	w := suite.serve(http.MethodGet, "/api/v1/receipts/r404", nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("Failed to load receipt", suite.errorMessage(w))
}

func (suite *HandlerTestSuite) TestUpdateReceipt() {
	total := decimal.RequireFromString("18.40")
	suite.mockReceipt.On("UpdateReceipt", mock.Anything, "r1", mock.MatchedBy(func(r dto.UpdateReceiptRequest) bool {
		return r.Total != nil && r.Total.Equal(total) && r.Vendor == nil
	})).Return(&domain.Receipt{ID: "r1"}, nil).Once()

	w := suite.serve(http.MethodPatch, "/api/v1/receipts/r1", map[string]any{"total": "18.40"})

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlerTestSuite) TestDeleteReceipt() {
	suite.mockReceipt.On("DeleteReceipt", mock.Anything, "r1").Return(nil).Once()

	w := suite.serve(http.MethodDelete, "/api/v1/receipts/r1", nil)

	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *HandlerTestSuite) TestExportReceipts() {
	req := dto.ExportReceiptsRequest{CompanyID: "c1", ReceiptIDs: []string{"r1", "r2"}}
	file := &domain.FileBlob{
		Filename:    "Receipts_c1_2024-03-15.xlsx",
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Data:        []byte("PK"),
	}
	suite.mockReceipt.On("ExportReceipts", mock.Anything, req).Return(file, nil).Once()

	w := suite.serve(http.MethodPost, "/api/v1/receipts/export/xlsx", req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Header().Get("Content-Disposition"), "Receipts_c1_2024-03-15.xlsx")
	suite.Equal("PK", w.Body.String())
}

func (suite *HandlerTestSuite) TestExportReceipts_RequiresIDs() {
	w := suite.serve(http.MethodPost, "/api/v1/receipts/export/xlsx", dto.ExportReceiptsRequest{CompanyID: "c1"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockReceipt.AssertNotCalled(suite.T(), "ExportReceipts")
}
