package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/journal_lifecycle_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/posthog/posthog-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePosthog records captured events. Methods not overridden are never called.
type fakePosthog struct {
	posthog.Client
	mu       sync.Mutex
	captured []posthog.Capture
}

func (f *fakePosthog) Enqueue(msg posthog.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if capture, ok := msg.(posthog.Capture); ok {
		f.captured = append(f.captured, capture)
	}
	return nil
}

func (f *fakePosthog) Close() error { return nil }

func (f *fakePosthog) events() []posthog.Capture {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]posthog.Capture(nil), f.captured...)
}

func newPosthogRouter(t *testing.T, fake *fakePosthog) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	wrapper := utils.NewPosthogClientWrapper(fake, slog.Default())

	r := gin.New()
	r.Use(PosthogMiddleware(wrapper))
	v1 := r.Group("/api/v1", AuthMiddleware(testSecret))
	v1.POST("/journal-entries/suggestions/:id/approve", func(c *gin.Context) {
		if c.Param("id") == "s-bad" {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to approve entry. Please try again."})
			return
		}
		c.JSON(http.StatusOK, gin.H{})
	})
	v1.GET("/journal-entries/board", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{})
	})
	v1.POST("/journal-entries/export", func(c *gin.Context) {
		PosthogEvent(c, wrapper, "journal_entries_exported", map[string]any{"format": "iif"})
		c.Status(http.StatusOK)
	})
	return r
}

func sendAs(t *testing.T, r *gin.Engine, method, target, userID string) int {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	if userID != "" {
		token, err := utils.GenerateJWT(userID, testSecret, time.Hour, "test")
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestPosthogMiddleware_TracksLifecycleTransitions(t *testing.T) {
	fake := &fakePosthog{}
	r := newPosthogRouter(t, fake)

	assert.Equal(t, http.StatusOK, sendAs(t, r, http.MethodPost, "/api/v1/journal-entries/suggestions/s-1/approve?companyId=co-1&period=2024-03", "user-1"))
	assert.Equal(t, http.StatusBadGateway, sendAs(t, r, http.MethodPost, "/api/v1/journal-entries/suggestions/s-bad/approve?companyId=co-1&period=2024-03", "user-1"))

	events := fake.events()
	require.Len(t, events, 2)

	assert.Equal(t, "user-1", events[0].DistinctId)
	assert.Equal(t, "suggestion_approved", events[0].Event)
	assert.Equal(t, "co-1", events[0].Properties["company_id"])
	assert.Equal(t, "2024-03", events[0].Properties["period"])
	assert.Equal(t, "s-1", events[0].Properties["entity_id"])
	assert.Equal(t, "success", events[0].Properties["outcome"])

	assert.Equal(t, "suggestion_approved", events[1].Event)
	assert.Equal(t, "s-bad", events[1].Properties["entity_id"])
	assert.Equal(t, "failure", events[1].Properties["outcome"])
	assert.Equal(t, http.StatusBadGateway, events[1].Properties["status_code"])
}

func TestPosthogMiddleware_SkipsReadsAndAnonymousCalls(t *testing.T) {
	fake := &fakePosthog{}
	r := newPosthogRouter(t, fake)

	assert.Equal(t, http.StatusOK, sendAs(t, r, http.MethodGet, "/api/v1/journal-entries/board?companyId=co-1&period=2024-03", "user-1"))
	assert.Equal(t, http.StatusUnauthorized, sendAs(t, r, http.MethodPost, "/api/v1/journal-entries/suggestions/s-1/approve", ""))
	assert.Equal(t, http.StatusNotFound, sendAs(t, r, http.MethodPost, "/api/v1/unknown", "user-1"))

	assert.Empty(t, fake.events())
}

func TestPosthogEvent_AddsScope(t *testing.T) {
	fake := &fakePosthog{}
	r := newPosthogRouter(t, fake)

	assert.Equal(t, http.StatusOK, sendAs(t, r, http.MethodPost, "/api/v1/journal-entries/export?companyId=co-9", "user-2"))

	events := fake.events()
	require.Len(t, events, 1)
	assert.Equal(t, "journal_entries_exported", events[0].Event)
	assert.Equal(t, "co-9", events[0].Properties["company_id"])
	assert.Equal(t, "iif", events[0].Properties["format"])
}

func TestPosthogMiddleware_DisabledClient(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(PosthogMiddleware(nil))
	r.POST("/api/v1/journal-entries/ready/mark-posted", func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, sendAs(t, r, http.MethodPost, "/api/v1/journal-entries/ready/mark-posted", ""))
}

func TestTrackedEvent(t *testing.T) {
	event, ok := TrackedEvent(http.MethodPost, "/api/v1/journal-entries/ready/mark-posted")
	assert.True(t, ok)
	assert.Equal(t, "entries_marked_posted", event)

	_, ok = TrackedEvent(http.MethodGet, "/api/v1/journal-entries/board")
	assert.False(t, ok)
}
