package middleware

import (
	"net/http"

	"github.com/SscSPs/journal_lifecycle_app/internal/utils"
	"github.com/gin-gonic/gin"
)

// trackedEvents maps "METHOD route" to the analytics event recorded for it.
// Reads are not tracked.
var trackedEvents = map[string]string{
	"POST /api/v1/editor/draft":                            "draft_created",
	"DELETE /api/v1/editor/draft":                          "draft_discarded",
	"POST /api/v1/editor/draft/generate":                   "draft_generated",
	"POST /api/v1/editor/draft/post":                       "journal_entry_posted",
	"POST /api/v1/journal-entries/board/reload":            "board_reloaded",
	"POST /api/v1/journal-entries/bulk-generate":           "suggestions_generated",
	"DELETE /api/v1/journal-entries/suggestions/:id":       "suggestion_deleted",
	"PUT /api/v1/journal-entries/suggestions/:id":          "suggestion_edited",
	"POST /api/v1/journal-entries/suggestions/:id/approve": "suggestion_approved",
	"POST /api/v1/journal-entries/ready/mark-posted":       "entries_marked_posted",
	"POST /api/v1/journal-entries/ready/:id/move-to-draft": "entry_moved_to_draft",
	"POST /api/v1/receipts":                                "receipt_uploaded",
	"DELETE /api/v1/receipts/:id":                          "receipt_deleted",
}

// TrackedEvent returns the event recorded for a method and route, if any.
func TrackedEvent(method, route string) (string, bool) {
	event, ok := trackedEvents[method+" "+route]
	return event, ok
}

// PosthogMiddleware records a lifecycle event for every tracked route once
// the handler has run. Failed transitions are recorded too, with outcome
// "failure", so rejected approvals and posts show up next to the successful ones.
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !posthogClient.IsInitialized() {
			c.Next()
			return
		}

		c.Next()

		event, ok := TrackedEvent(c.Request.Method, c.FullPath())
		if !ok {
			return
		}
		status := c.Writer.Status()
		if status == http.StatusUnauthorized {
			return
		}
		userID, exists := GetUserIDFromContext(c)
		if !exists {
			return
		}

		props := scopeProperties(c)
		props["status_code"] = status
		if status >= http.StatusBadRequest {
			props["outcome"] = "failure"
		} else {
			props["outcome"] = "success"
		}
		posthogClient.Enqueue(userID, event, props)
	}
}

// PosthogEvent sends a custom event from a handler, tagged with the request's scope.
func PosthogEvent(c *gin.Context, posthogClient *utils.PosthogClientWrapper, eventName string, properties map[string]any) {
	if !posthogClient.IsInitialized() {
		return
	}
	userID, exists := GetUserIDFromContext(c)
	if !exists {
		return
	}

	props := scopeProperties(c)
	for k, v := range properties {
		props[k] = v
	}
	posthogClient.Enqueue(userID, eventName, props)
}

// scopeProperties collects the company, period and entity a request worked on.
func scopeProperties(c *gin.Context) map[string]any {
	props := map[string]any{}
	if companyID := c.Query("companyId"); companyID != "" {
		props["company_id"] = companyID
	} else if companyID := c.Param("companyID"); companyID != "" {
		props["company_id"] = companyID
	}
	if period := c.Query("period"); period != "" {
		props["period"] = period
	}
	if id := c.Param("id"); id != "" {
		props["entity_id"] = id
	}
	return props
}
