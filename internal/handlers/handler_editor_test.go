package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/SscSPs/journal_lifecycle_app/internal/apperrors"
	"github.com/SscSPs/journal_lifecycle_app/internal/core/domain"
	"github.com/SscSPs/journal_lifecycle_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlerTestSuite) TestGetDraft_NoDraft() {
	suite.mockEditor.On("GetDraft", mock.Anything, testUserID).Return(nil, nil).Once()

	w := suite.serve(http.MethodGet, "/api/v1/editor/draft", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp struct {
		Entry   *domain.JournalEntry `json:"entry"`
		Balance dto.BalanceResponse  `json:"balance"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Nil(resp.Entry)
	suite.True(resp.Balance.Balanced)
	suite.True(resp.Balance.Debit.IsZero())
}

func (suite *HandlerTestSuite) TestNewDraft_Created() {
	suite.mockEditor.On("NewDraft", mock.Anything, testUserID).Return(draftWithID("je_draft_1"), nil).Once()

	w := suite.serve(http.MethodPost, "/api/v1/editor/draft", nil)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.DraftResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().NotNil(resp.Entry)
	suite.Equal("je_draft_1", resp.Entry.ID)
}

func (suite *HandlerTestSuite) TestDiscardDraft() {
	suite.mockEditor.On("DiscardDraft", mock.Anything, testUserID).Return(nil).Once()

	w := suite.serve(http.MethodDelete, "/api/v1/editor/draft", nil)

	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *HandlerTestSuite) TestUpdateLine_PassesIndexAndField() {
	req := dto.UpdateLineRequest{Field: "debit", Value: "42.50"}
	suite.mockEditor.On("UpdateLine", mock.Anything, testUserID, 1, req).Return(draftWithID("je_draft_1"), nil).Once()

	w := suite.serve(http.MethodPatch, "/api/v1/editor/draft/lines/1", req)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlerTestSuite) TestUpdateLine_BadIndex() {
	w := suite.serve(http.MethodPatch, "/api/v1/editor/draft/lines/first", dto.UpdateLineRequest{Field: "memo"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Invalid line index", suite.errorMessage(w))
	suite.mockEditor.AssertNotCalled(suite.T(), "UpdateLine")
}

func (suite *HandlerTestSuite) TestUpdateLine_UnknownField() {
	w := suite.serve(http.MethodPatch, "/api/v1/editor/draft/lines/0", dto.UpdateLineRequest{Field: "colour", Value: "red"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(suite.errorMessage(w), "Invalid request format")
}

func (suite *HandlerTestSuite) TestUpdateLine_MalformedAmountReportedInBalance() {
	req := dto.UpdateLineRequest{Field: "credit", Value: "12,5"}
	session := draftWithID("je_draft_1")
	session.Entry.Lines = []domain.LedgerLine{
		{AccountCode: "1000", Debit: "12.50"},
		{AccountCode: "4000", Credit: "12,5"},
	}
	suite.mockEditor.On("UpdateLine", mock.Anything, testUserID, 1, req).Return(session, nil).Once()

	w := suite.serve(http.MethodPatch, "/api/v1/editor/draft/lines/1", req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.DraftResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().NotNil(resp.Entry)
	suite.Equal("12,5", resp.Entry.Lines[1].Credit)
	suite.False(resp.Balance.Balanced)
	suite.Equal([]int{1}, resp.Balance.InvalidLines)
	suite.True(resp.Balance.Debit.Equal(decimal.RequireFromString("12.50")))
}

func (suite *HandlerTestSuite) TestRemoveLine_NoDraft() {
	suite.mockEditor.On("RemoveLine", mock.Anything, testUserID, 3).Return(nil, nil).Once()

	w := suite.serve(http.MethodDelete, "/api/v1/editor/draft/lines/3", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.DraftResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Nil(resp.Entry)
}

func (suite *HandlerTestSuite) TestSetAccountSearch() {
	suite.mockEditor.On("SetAccountSearch", mock.Anything, testUserID, 0, "cash").Return(draftWithID("je_draft_1"), nil).Once()

	w := suite.serve(http.MethodPut, "/api/v1/editor/draft/lines/0/search", dto.AccountSearchRequest{Text: "cash"})

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlerTestSuite) TestGetBalance() {
	balance := domain.Balance{Debit: decimal.NewFromInt(100), Credit: decimal.NewFromInt(60), Balanced: false}
	suite.mockEditor.On("CalculateBalance", mock.Anything, testUserID).Return(balance, nil).Once()

	w := suite.serve(http.MethodGet, "/api/v1/editor/draft/balance", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.BalanceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.False(resp.Balanced)
	suite.True(resp.Debit.Equal(decimal.NewFromInt(100)))
}

func (suite *HandlerTestSuite) TestPostEntry_Success() {
	resp := &dto.PostEntryResponse{
		PostedID: "je_1710498660000",
		History:  []domain.JournalEntry{{ID: "je_1710498660000", Status: domain.StatusPosted}},
	}
	suite.mockEditor.On("PostEntry", mock.Anything, testUserID, "c1").Return(resp, nil).Once()

	w := suite.serve(http.MethodPost, "/api/v1/editor/draft/post", dto.PostEntryRequest{CompanyID: "c1"})

	suite.Equal(http.StatusCreated, w.Code)
	var body dto.PostEntryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("je_1710498660000", body.PostedID)
	suite.Len(body.History, 1)
}

func (suite *HandlerTestSuite) TestPostEntry_PreconditionMessage() {
	err := apperrors.NewValidationError("Please enter a description for this journal entry.")
	suite.mockEditor.On("PostEntry", mock.Anything, testUserID, "c1").Return(nil, err).Once()

	w := suite.serve(http.MethodPost, "/api/v1/editor/draft/post", dto.PostEntryRequest{CompanyID: "c1"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Please enter a description for this journal entry.", suite.errorMessage(w))
}

func (suite *HandlerTestSuite) TestPostEntry_BackendDown() {
	err := apperrors.NewAppError(http.StatusBadGateway, "Failed to post journal entry. Please try again.",
		fmt.Errorf("posting: %w", apperrors.ErrRemoteUnavailable))
	suite.mockEditor.On("PostEntry", mock.Anything, testUserID, "c1").Return(nil, err).Once()

	w := suite.serve(http.MethodPost, "/api/v1/editor/draft/post", dto.PostEntryRequest{CompanyID: "c1"})

	suite.Equal(http.StatusServiceUnavailable, w.Code)
	suite.Equal("Failed to post journal entry. Please try again.", suite.errorMessage(w))
}

func (suite *HandlerTestSuite) TestPostEntry_AlreadyPosting() {
	suite.mockEditor.On("PostEntry", mock.Anything, testUserID, "c1").Return(nil, apperrors.ErrActionInProgress).Once()

	w := suite.serve(http.MethodPost, "/api/v1/editor/draft/post", dto.PostEntryRequest{CompanyID: "c1"})

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestSearchAccounts() {
	accounts := domain.ChartOfAccounts{{Code: "1000", Name: "Cash", Type: "asset"}}
	suite.mockEditor.On("SearchAccounts", mock.Anything, "c1", "cas").Return(accounts, nil).Once()

	w := suite.serve(http.MethodGet, "/api/v1/companies/c1/accounts?q=cas", nil)

	suite.Equal(http.StatusOK, w.Code)
	var body domain.ChartOfAccounts
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(accounts, body)
}

func (suite *HandlerTestSuite) TestListHistory_EmptyIsArray() {
	suite.mockEditor.On("History", mock.Anything, "c1").Return(nil, nil).Once()

	w := suite.serve(http.MethodGet, "/api/v1/companies/c1/journal-entries", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`[]`, w.Body.String())
}
