package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/journal_lifecycle_app/internal/core/domain"
	portssvc "github.com/SscSPs/journal_lifecycle_app/internal/core/ports/services"
	"github.com/SscSPs/journal_lifecycle_app/internal/dto"
	"github.com/SscSPs/journal_lifecycle_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// lifecycleHandler handles HTTP requests that move suggestions across the board.
type lifecycleHandler struct {
	lifecycleService portssvc.LifecycleSvcFacade
}

// newLifecycleHandler creates a new lifecycleHandler.
func newLifecycleHandler(lifecycleService portssvc.LifecycleSvcFacade) *lifecycleHandler {
	return &lifecycleHandler{
		lifecycleService: lifecycleService,
	}
}

// scope binds the companyId and period query parameters.
func (h *lifecycleHandler) scope(c *gin.Context) (domain.Scope, *slog.Logger, bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var q dto.ScopeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		logger.Warn("Failed to bind scope query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return domain.Scope{}, logger, false
	}
	scope := q.ToScope()
	return scope, logger.With(slog.String("company_id", scope.CompanyID), slog.String("period", string(scope.Period))), true
}

// respondBoard writes the outcome of a transition. A failed transition that
// reconciled its board sends that board along with the error.
func (h *lifecycleHandler) respondBoard(c *gin.Context, logger *slog.Logger, scope domain.Scope, board *domain.Board, err error, fallback string) {
	if err != nil {
		if board != nil {
			respondTransitionError(c, logger, err, fallback, board, h.lifecycleService.PendingActions(scope))
			return
		}
		respondError(c, logger, err, fallback)
		return
	}
	c.JSON(http.StatusOK, dto.ToBoardResponse(board, h.lifecycleService.PendingActions(scope)))
}

// getBoard godoc
// @Summary Get the lifecycle board
// @Description Returns the suggestions, ready and posted lists of a company period. The board is loaded on first use
// @Description and reloaded from the backend once it is older than BOARD_REFRESH_AGE; use /journal-entries/board/reload to force it.
// @Tags lifecycle
// @Produce json
// @Param companyId query string true "Company ID"
// @Param period query string true "Period (YYYY-MM)"
// @Success 200 {object} dto.BoardResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]string "Backend error"
// @Security BearerAuth
// @Router /journal-entries/board [get]
func (h *lifecycleHandler) getBoard(c *gin.Context) {
	scope, logger, ok := h.scope(c)
	if !ok {
		return
	}

	board, err := h.lifecycleService.GetBoard(c.Request.Context(), scope)
	h.respondBoard(c, logger, scope, board, err, "Failed to load journal entries")
}

// reloadBoard godoc
// @Summary Reload the lifecycle board
// @Description Replaces all three lists with the backend's. Lists that fail to load keep their previous contents and mark the board stale.
// @Tags lifecycle
// @Produce json
// @Param companyId query string true "Company ID"
// @Param period query string true "Period (YYYY-MM)"
// @Success 200 {object} dto.BoardResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /journal-entries/board/reload [post]
func (h *lifecycleHandler) reloadBoard(c *gin.Context) {
	scope, logger, ok := h.scope(c)
	if !ok {
		return
	}

	board, err := h.lifecycleService.ReloadBoard(c.Request.Context(), scope)
	h.respondBoard(c, logger, scope, board, err, "Failed to reload journal entries")
}

// bulkGenerate godoc
// @Summary Generate AI suggestions
// @Description Asks the backend to propose journal entries. The response replaces the suggestions list.
// @Tags lifecycle
// @Accept json
// @Produce json
// @Param companyId query string true "Company ID"
// @Param period query string true "Period (YYYY-MM)"
// @Param request body dto.BulkGenerateRequest false "Limit generation to some suggestions"
// @Success 200 {object} dto.BoardResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Generation already in progress"
// @Failure 502 {object} dto.TransitionErrorResponse "Generation failed"
// @Security BearerAuth
// @Router /journal-entries/bulk-generate [post]
func (h *lifecycleHandler) bulkGenerate(c *gin.Context) {
	scope, logger, ok := h.scope(c)
	if !ok {
		return
	}

	var req dto.BulkGenerateRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Warn("Failed to bind JSON for BulkGenerate", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
			return
		}
	}

	board, err := h.lifecycleService.BulkGenerate(c.Request.Context(), scope, req)
	h.respondBoard(c, logger, scope, board, err, "Failed to generate suggestions")
}

// deleteSuggestion godoc
// @Summary Delete a suggestion
// @Description Removes the suggestion at once, reverses it on the backend and reloads the suggestions
// @Tags lifecycle
// @Produce json
// @Param id path string true "Suggestion ID"
// @Param companyId query string true "Company ID"
// @Param period query string true "Period (YYYY-MM)"
// @Success 200 {object} dto.BoardResponse
// @Failure 404 {object} map[string]string "Suggestion not found"
// @Failure 409 {object} map[string]string "Delete already in progress"
// @Failure 502 {object} dto.TransitionErrorResponse "Delete failed"
// @Security BearerAuth
// @Router /journal-entries/suggestions/{id} [delete]
func (h *lifecycleHandler) deleteSuggestion(c *gin.Context) {
	scope, logger, ok := h.scope(c)
	if !ok {
		return
	}
	suggestionID := c.Param("id")

	board, err := h.lifecycleService.Delete(c.Request.Context(), scope, suggestionID)
	h.respondBoard(c, logger.With(slog.String("suggestion_id", suggestionID)), scope, board, err, "Failed to delete suggestion")
}

// beginEdit godoc
// @Summary Get the edit form of a suggestion
// @Description Seeds the form from the AI proposal, or from the source item when there is none
// @Tags lifecycle
// @Produce json
// @Param id path string true "Suggestion ID"
// @Param companyId query string true "Company ID"
// @Param period query string true "Period (YYYY-MM)"
// @Success 200 {object} dto.EditFormResponse
// @Failure 404 {object} map[string]string "Suggestion not found"
// @Security BearerAuth
// @Router /journal-entries/suggestions/{id}/edit [get]
func (h *lifecycleHandler) beginEdit(c *gin.Context) {
	scope, logger, ok := h.scope(c)
	if !ok {
		return
	}
	suggestionID := c.Param("id")

	form, err := h.lifecycleService.BeginEdit(c.Request.Context(), scope, suggestionID)
	if err != nil {
		respondError(c, logger.With(slog.String("suggestion_id", suggestionID)), err, "Failed to load suggestion")
		return
	}
	c.JSON(http.StatusOK, form)
}

// saveEdit godoc
// @Summary Save an edited suggestion
// @Tags lifecycle
// @Accept json
// @Produce json
// @Param id path string true "Suggestion ID"
// @Param companyId query string true "Company ID"
// @Param period query string true "Period (YYYY-MM)"
// @Param suggestion body dto.SaveSuggestionRequest true "Edited journal entry"
// @Success 200 {object} dto.BoardResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 404 {object} map[string]string "Suggestion not found"
// @Failure 502 {object} dto.TransitionErrorResponse "Save failed"
// @Security BearerAuth
// @Router /journal-entries/suggestions/{id} [put]
func (h *lifecycleHandler) saveEdit(c *gin.Context) {
	scope, logger, ok := h.scope(c)
	if !ok {
		return
	}
	suggestionID := c.Param("id")
	logger = logger.With(slog.String("suggestion_id", suggestionID))

	var req dto.SaveSuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SaveEdit", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	board, err := h.lifecycleService.SaveEdit(c.Request.Context(), scope, suggestionID, req)
	h.respondBoard(c, logger, scope, board, err, "Failed to save suggestion")
}

// approveSuggestion godoc
// @Summary Approve a suggestion
// @Description Moves the suggestion to the ready list once the backend confirms it
// @Tags lifecycle
// @Produce json
// @Param id path string true "Suggestion ID"
// @Param companyId query string true "Company ID"
// @Param period query string true "Period (YYYY-MM)"
// @Success 200 {object} dto.BoardResponse
// @Failure 404 {object} map[string]string "Suggestion not found"
// @Failure 409 {object} map[string]string "Approve already in progress"
// @Failure 502 {object} dto.TransitionErrorResponse "Approve failed"
// @Security BearerAuth
// @Router /journal-entries/suggestions/{id}/approve [post]
func (h *lifecycleHandler) approveSuggestion(c *gin.Context) {
	scope, logger, ok := h.scope(c)
	if !ok {
		return
	}
	suggestionID := c.Param("id")

	board, err := h.lifecycleService.Approve(c.Request.Context(), scope, suggestionID)
	h.respondBoard(c, logger.With(slog.String("suggestion_id", suggestionID)), scope, board, err, "Failed to approve suggestion")
}

// markPosted godoc
// @Summary Mark every ready entry as posted
// @Tags lifecycle
// @Produce json
// @Param companyId query string true "Company ID"
// @Param period query string true "Period (YYYY-MM)"
// @Success 200 {object} dto.BoardResponse
// @Failure 400 {object} map[string]string "Nothing ready to post"
// @Failure 409 {object} map[string]string "Already in progress"
// @Failure 502 {object} dto.TransitionErrorResponse "Mark posted failed"
// @Security BearerAuth
// @Router /journal-entries/ready/mark-posted [post]
func (h *lifecycleHandler) markPosted(c *gin.Context) {
	scope, logger, ok := h.scope(c)
	if !ok {
		return
	}

	board, err := h.lifecycleService.MarkPosted(c.Request.Context(), scope)
	h.respondBoard(c, logger, scope, board, err, "Failed to mark entries as posted")
}

// moveToDraft godoc
// @Summary Move a ready entry back to the suggestions
// @Tags lifecycle
// @Produce json
// @Param id path string true "Entry ID"
// @Param companyId query string true "Company ID"
// @Param period query string true "Period (YYYY-MM)"
// @Success 200 {object} dto.BoardResponse
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 409 {object} map[string]string "Already in progress"
// @Failure 502 {object} dto.TransitionErrorResponse "Move failed"
// @Security BearerAuth
// @Router /journal-entries/ready/{id}/move-to-draft [post]
func (h *lifecycleHandler) moveToDraft(c *gin.Context) {
	scope, logger, ok := h.scope(c)
	if !ok {
		return
	}
	entryID := c.Param("id")

	board, err := h.lifecycleService.MoveToDraft(c.Request.Context(), scope, entryID)
	h.respondBoard(c, logger.With(slog.String("entry_id", entryID)), scope, board, err, "Failed to move entry to draft")
}

// registerLifecycleRoutes registers the board and transition routes.
func registerLifecycleRoutes(rg *gin.RouterGroup, lifecycleService portssvc.LifecycleSvcFacade) {
	h := newLifecycleHandler(lifecycleService)

	entries := rg.Group("/journal-entries")
	{
		entries.GET("/board", h.getBoard)
		entries.POST("/board/reload", h.reloadBoard)
		entries.POST("/bulk-generate", h.bulkGenerate)

		entries.DELETE("/suggestions/:id", h.deleteSuggestion)
		entries.GET("/suggestions/:id/edit", h.beginEdit)
		entries.PUT("/suggestions/:id", h.saveEdit)
		entries.POST("/suggestions/:id/approve", h.approveSuggestion)

		entries.POST("/ready/mark-posted", h.markPosted)
		entries.POST("/ready/:id/move-to-draft", h.moveToDraft)
	}
}
