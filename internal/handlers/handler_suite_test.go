package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/journal_lifecycle_app/internal/core/domain"
	portssvc "github.com/SscSPs/journal_lifecycle_app/internal/core/ports/services"
	"github.com/SscSPs/journal_lifecycle_app/internal/dto"
	"github.com/SscSPs/journal_lifecycle_app/internal/handlers"
	"github.com/SscSPs/journal_lifecycle_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/suite"
)

const testUserID = "user-7f3a"

// HandlerTestSuite drives the full /api/v1 router with mocked services.
type HandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockEditor    *MockEditorService
	mockLifecycle *MockLifecycleService
	mockExport    *MockExportService
	mockReceipt   *MockReceiptService
	jwtSecret     string
}

// generateTestToken creates a signed JWT for the given user.
func (suite *HandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "journal-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *HandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(dto.RegisterValidators())
}

func (suite *HandlerTestSuite) SetupTest() {
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.router = gin.New()

	suite.mockEditor = new(MockEditorService)
	suite.mockLifecycle = new(MockLifecycleService)
	suite.mockExport = new(MockExportService)
	suite.mockReceipt = new(MockReceiptService)

	cfg := &config.Config{JWTSecret: suite.jwtSecret, IsProduction: true}
	handlers.RegisterRoutes(suite.router, cfg, &portssvc.ServiceContainer{
		Editor:    suite.mockEditor,
		Lifecycle: suite.mockLifecycle,
		Export:    suite.mockExport,
		Receipt:   suite.mockReceipt,
	}, nil)
}

func (suite *HandlerTestSuite) TearDownTest() {
	suite.mockEditor.AssertExpectations(suite.T())
	suite.mockLifecycle.AssertExpectations(suite.T())
	suite.mockExport.AssertExpectations(suite.T())
	suite.mockReceipt.AssertExpectations(suite.T())
}

// serve sends an authenticated request; a non-nil body is encoded as JSON.
func (suite *HandlerTestSuite) serve(method, url string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(payload)
	}
	req, _ := http.NewRequest(method, url, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return suite.serveRequest(req)
}

func (suite *HandlerTestSuite) serveRequest(req *http.Request) *httptest.ResponseRecorder {
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(testUserID))
	req.Header.Set("Accept", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// errorMessage decodes {"error": "..."} from a response.
func (suite *HandlerTestSuite) errorMessage(w *httptest.ResponseRecorder) string {
	var body map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	msg, _ := body["error"].(string)
	return msg
}

func draftWithID(id string) *domain.DraftSession {
	return &domain.DraftSession{
		OwnerID: testUserID,
		Entry: &domain.JournalEntry{
			ID:     id,
			Date:   "2024-03-15",
			Lines:  []domain.LedgerLine{},
			Status: domain.StatusDraft,
		},
	}
}

func (suite *HandlerTestSuite) TestHealthIsPublic() {
	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *HandlerTestSuite) TestAPIRequiresToken() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/editor/draft", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockEditor.AssertNotCalled(suite.T(), "GetDraft")
}

// --- Run Test Suite ---
func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
