package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/SscSPs/journal_lifecycle_app/internal/apperrors"
	"github.com/SscSPs/journal_lifecycle_app/internal/core/domain"
	"github.com/SscSPs/journal_lifecycle_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

var testScope = domain.Scope{CompanyID: "c1", Period: "2024-03"}

const scopeQuery = "?companyId=c1&period=2024-03"

func bankSuggestion(id string, status domain.SuggestionStatus) domain.Suggestion {
	return domain.Suggestion{
		ID:     id,
		Status: status,
		Source: domain.BankTransaction{
			ID:          "b-" + id,
			Date:        "2024-03-05",
			Description: "Bank line " + id,
			Amount:      decimal.NewFromInt(120),
		},
	}
}

func testBoard(suggestions, ready []domain.Suggestion) *domain.Board {
	return &domain.Board{
		Scope:       testScope,
		Suggestions: suggestions,
		Ready:       ready,
		LoadedAt:    time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC),
	}
}

func (suite *HandlerTestSuite) decodeBoard(data []byte) dto.BoardResponse {
	var board dto.BoardResponse
	suite.Require().NoError(json.Unmarshal(data, &board))
	return board
}

func (suite *HandlerTestSuite) TestGetBoard() {
	board := testBoard([]domain.Suggestion{bankSuggestion("s1", domain.SuggestionSuggested)}, nil)
	suite.mockLifecycle.On("GetBoard", mock.Anything, testScope).Return(board, nil).Once()
	suite.mockLifecycle.On("PendingActions", testScope).Return([]string{"approve:s9"}).Once()

	w := suite.serve(http.MethodGet, "/api/v1/journal-entries/board"+scopeQuery, nil)

	suite.Equal(http.StatusOK, w.Code)
	resp := suite.decodeBoard(w.Body.Bytes())
	suite.Require().Len(resp.Suggestions, 1)
	suite.Equal("s1", resp.Suggestions[0].ID)
	suite.Empty(resp.Ready)
	suite.NotNil(resp.Posted)
	suite.Equal([]string{"approve:s9"}, resp.Pending)
}

func (suite *HandlerTestSuite) TestGetBoard_InvalidScope() {
	for _, query := range []string{"", "?companyId=c1", "?companyId=c1&period=2024-13", "?period=2024-03"} {
		w := suite.serve(http.MethodGet, "/api/v1/journal-entries/board"+query, nil)
		suite.Equal(http.StatusBadRequest, w.Code, query)
	}
	suite.mockLifecycle.AssertNotCalled(suite.T(), "GetBoard")
}

func (suite *HandlerTestSuite) TestReloadBoard() {
	board := testBoard(nil, nil)
	board.Stale = true
	suite.mockLifecycle.On("ReloadBoard", mock.Anything, testScope, mock.Anything).Return(board, nil).Once()
	suite.mockLifecycle.On("PendingActions", testScope).Return(nil).Once()

	w := suite.serve(http.MethodPost, "/api/v1/journal-entries/board/reload"+scopeQuery, nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.True(suite.decodeBoard(w.Body.Bytes()).Stale)
}

func (suite *HandlerTestSuite) TestBulkGenerate_EmptyBody() {
	board := testBoard([]domain.Suggestion{bankSuggestion("s1", domain.SuggestionSuggested)}, nil)
	suite.mockLifecycle.On("BulkGenerate", mock.Anything, testScope, dto.BulkGenerateRequest{}).Return(board, nil).Once()
	suite.mockLifecycle.On("PendingActions", testScope).Return(nil).Once()

	w := suite.serve(http.MethodPost, "/api/v1/journal-entries/bulk-generate"+scopeQuery, nil)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlerTestSuite) TestBulkGenerate_WithIDs() {
	req := dto.BulkGenerateRequest{SuggestionIDs: []string{"s1", "s2"}, Regenerate: true}
	suite.mockLifecycle.On("BulkGenerate", mock.Anything, testScope, req).Return(testBoard(nil, nil), nil).Once()
	suite.mockLifecycle.On("PendingActions", testScope).Return(nil).Once()

	w := suite.serve(http.MethodPost, "/api/v1/journal-entries/bulk-generate"+scopeQuery, req)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlerTestSuite) TestDelete_FailureReturnsReconciledBoard() {
	reconciled := testBoard([]domain.Suggestion{bankSuggestion("s1", domain.SuggestionSuggested)}, nil)
	err := apperrors.NewAppError(http.StatusBadGateway, "Failed to delete suggestion. Please try again.",
		fmt.Errorf("reverse s1: %w", apperrors.ErrRemoteUnavailable))
	suite.mockLifecycle.On("Delete", mock.Anything, testScope, "s1").Return(reconciled, err).Once()
	suite.mockLifecycle.On("PendingActions", testScope).Return(nil).Once()

	w := suite.serve(http.MethodDelete, "/api/v1/journal-entries/suggestions/s1"+scopeQuery, nil)

	suite.Equal(http.StatusServiceUnavailable, w.Code)
	var resp dto.TransitionErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Failed to delete suggestion. Please try again.", resp.Error)
	suite.Require().NotNil(resp.Board)
	suite.Require().Len(resp.Board.Suggestions, 1)
	suite.Equal("s1", resp.Board.Suggestions[0].ID)
}

func (suite *HandlerTestSuite) TestDelete_InProgress() {
	err := fmt.Errorf("delete s1: %w", apperrors.ErrActionInProgress)
	suite.mockLifecycle.On("Delete", mock.Anything, testScope, "s1").Return(nil, err).Once()

	w := suite.serve(http.MethodDelete, "/api/v1/journal-entries/suggestions/s1"+scopeQuery, nil)

	suite.Equal(http.StatusConflict, w.Code)
	suite.Equal("Failed to delete suggestion", suite.errorMessage(w))
}

func (suite *HandlerTestSuite) TestBeginEdit() {
	form := &dto.EditFormResponse{SuggestionID: "s1", Amount: decimal.NewFromInt(120), Memo: "Bank line s1", SeededFrom: "source"}
	suite.mockLifecycle.On("BeginEdit", mock.Anything, testScope, "s1").Return(form, nil).Once()

	w := suite.serve(http.MethodGet, "/api/v1/journal-entries/suggestions/s1/edit"+scopeQuery, nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.EditFormResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("source", resp.SeededFrom)
}

func (suite *HandlerTestSuite) TestSaveEdit_MissingAccounts() {
	w := suite.serve(http.MethodPut, "/api/v1/journal-entries/suggestions/s1"+scopeQuery, map[string]any{"amount": "10"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLifecycle.AssertNotCalled(suite.T(), "SaveEdit")
}

func (suite *HandlerTestSuite) TestSaveEdit() {
	req := dto.SaveSuggestionRequest{DebitAccount: "6000", CreditAccount: "1000", Amount: decimal.NewFromInt(120), Memo: "Fees"}
	suite.mockLifecycle.On("SaveEdit", mock.Anything, testScope, "s1", mock.MatchedBy(func(r dto.SaveSuggestionRequest) bool {
		return r.DebitAccount == "6000" && r.CreditAccount == "1000" && r.Amount.Equal(decimal.NewFromInt(120))
	})).Return(testBoard(nil, nil), nil).Once()
	suite.mockLifecycle.On("PendingActions", testScope).Return(nil).Once()

	w := suite.serve(http.MethodPut, "/api/v1/journal-entries/suggestions/s1"+scopeQuery, req)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlerTestSuite) TestApprove_MovesToReady() {
	board := testBoard(nil, []domain.Suggestion{bankSuggestion("s1", domain.SuggestionApproved)})
	suite.mockLifecycle.On("Approve", mock.Anything, testScope, "s1").Return(board, nil).Once()
	suite.mockLifecycle.On("PendingActions", testScope).Return(nil).Once()

	w := suite.serve(http.MethodPost, "/api/v1/journal-entries/suggestions/s1/approve"+scopeQuery, nil)

	suite.Equal(http.StatusOK, w.Code)
	resp := suite.decodeBoard(w.Body.Bytes())
	suite.Empty(resp.Suggestions)
	suite.Require().Len(resp.Ready, 1)
	suite.Equal(domain.SuggestionApproved, resp.Ready[0].Status)
}

func (suite *HandlerTestSuite) TestApprove_UnknownSuggestion() {
	err := apperrors.NewAppError(http.StatusNotFound, "Suggestion not found.", apperrors.ErrNotFound)
	suite.mockLifecycle.On("Approve", mock.Anything, testScope, "nope").Return(nil, err).Once()

	w := suite.serve(http.MethodPost, "/api/v1/journal-entries/suggestions/nope/approve"+scopeQuery, nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("Suggestion not found.", suite.errorMessage(w))
}

func (suite *HandlerTestSuite) TestMarkPosted_NothingReady() {
	suite.mockLifecycle.On("MarkPosted", mock.Anything, testScope).
		Return(nil, apperrors.NewValidationError("There are no ready entries to mark as posted.")).Once()

	w := suite.serve(http.MethodPost, "/api/v1/journal-entries/ready/mark-posted"+scopeQuery, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("There are no ready entries to mark as posted.", suite.errorMessage(w))
}

func (suite *HandlerTestSuite) TestMoveToDraft_Timeout() {
	board := testBoard(nil, []domain.Suggestion{bankSuggestion("s1", domain.SuggestionApproved)})
	err := fmt.Errorf("move s1: %w", apperrors.ErrTransient)
	suite.mockLifecycle.On("MoveToDraft", mock.Anything, testScope, "s1").Return(board, err).Once()
	suite.mockLifecycle.On("PendingActions", testScope).Return(nil).Once()

	w := suite.serve(http.MethodPost, "/api/v1/journal-entries/ready/s1/move-to-draft"+scopeQuery, nil)

	suite.Equal(http.StatusGatewayTimeout, w.Code)
	var resp dto.TransitionErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Failed to move entry to draft", resp.Error)
	suite.Require().NotNil(resp.Board)
	suite.Len(resp.Board.Ready, 1)
}
