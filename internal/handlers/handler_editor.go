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

// editorHandler handles HTTP requests on the authenticated user's draft entry.
type editorHandler struct {
	editorService portssvc.EditorSvcFacade
}

// newEditorHandler creates a new editorHandler.
func newEditorHandler(editorService portssvc.EditorSvcFacade) *editorHandler {
	return &editorHandler{
		editorService: editorService,
	}
}

// owner returns the id of the authenticated user, who owns the draft.
func (h *editorHandler) owner(c *gin.Context) (string, *slog.Logger, bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", logger, false
	}
	return userID, logger, true
}

// respondDraft writes the draft state, which may be empty.
func (h *editorHandler) respondDraft(c *gin.Context, status int, session *domain.DraftSession) {
	c.JSON(status, dto.ToDraftResponse(session))
}

// getDraft godoc
// @Summary Get the current draft entry
// @Description Returns the user's draft journal entry with its balance. Entry is null when there is no draft.
// @Tags editor
// @Produce json
// @Success 200 {object} dto.DraftResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to load draft"
// @Security BearerAuth
// @Router /editor/draft [get]
func (h *editorHandler) getDraft(c *gin.Context) {
	ownerID, logger, ok := h.owner(c)
	if !ok {
		return
	}

	session, err := h.editorService.GetDraft(c.Request.Context(), ownerID)
	if err != nil {
		respondError(c, logger, err, "Failed to load draft")
		return
	}
	h.respondDraft(c, http.StatusOK, session)
}

// newDraft godoc
// @Summary Start a new draft entry
// @Description Replaces the user's draft with a fresh entry holding two empty lines
// @Tags editor
// @Produce json
// @Success 201 {object} dto.DraftResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create draft"
// @Security BearerAuth
// @Router /editor/draft [post]
func (h *editorHandler) newDraft(c *gin.Context) {
	ownerID, logger, ok := h.owner(c)
	if !ok {
		return
	}

	session, err := h.editorService.NewDraft(c.Request.Context(), ownerID)
	if err != nil {
		respondError(c, logger, err, "Failed to create draft")
		return
	}
	logger.Info("Draft created", slog.String("entry_id", session.Entry.ID))
	h.respondDraft(c, http.StatusCreated, session)
}

// discardDraft godoc
// @Summary Discard the draft entry
// @Tags editor
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to discard draft"
// @Security BearerAuth
// @Router /editor/draft [delete]
func (h *editorHandler) discardDraft(c *gin.Context) {
	ownerID, logger, ok := h.owner(c)
	if !ok {
		return
	}

	if err := h.editorService.DiscardDraft(c.Request.Context(), ownerID); err != nil {
		respondError(c, logger, err, "Failed to discard draft")
		return
	}
	c.Status(http.StatusNoContent)
}

// updateDraft godoc
// @Summary Update the draft header
// @Description Sets the description, date or reference of the draft. Omitted fields are left untouched.
// @Tags editor
// @Accept json
// @Produce json
// @Param draft body dto.UpdateDraftRequest true "Header fields"
// @Success 200 {object} dto.DraftResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /editor/draft [patch]
func (h *editorHandler) updateDraft(c *gin.Context) {
	ownerID, logger, ok := h.owner(c)
	if !ok {
		return
	}

	var req dto.UpdateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateDraft", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	session, err := h.editorService.UpdateDraft(c.Request.Context(), ownerID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to update draft")
		return
	}
	h.respondDraft(c, http.StatusOK, session)
}

// addLine godoc
// @Summary Append an empty line to the draft
// @Tags editor
// @Produce json
// @Success 200 {object} dto.DraftResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /editor/draft/lines [post]
func (h *editorHandler) addLine(c *gin.Context) {
	ownerID, logger, ok := h.owner(c)
	if !ok {
		return
	}

	session, err := h.editorService.AddLine(c.Request.Context(), ownerID)
	if err != nil {
		respondError(c, logger, err, "Failed to add line")
		return
	}
	h.respondDraft(c, http.StatusOK, session)
}

// removeLine godoc
// @Summary Remove a line from the draft
// @Description Removing an index that does not exist leaves the draft unchanged
// @Tags editor
// @Produce json
// @Param index path int true "Line index"
// @Success 200 {object} dto.DraftResponse
// @Failure 400 {object} map[string]string "Invalid line index"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /editor/draft/lines/{index} [delete]
func (h *editorHandler) removeLine(c *gin.Context) {
	ownerID, logger, ok := h.owner(c)
	if !ok {
		return
	}
	index, ok := lineIndex(c)
	if !ok {
		return
	}

	session, err := h.editorService.RemoveLine(c.Request.Context(), ownerID, index)
	if err != nil {
		respondError(c, logger, err, "Failed to remove line")
		return
	}
	h.respondDraft(c, http.StatusOK, session)
}

// updateLine godoc
// @Summary Update one field of a draft line
// @Description Setting debit or credit to a non-zero value clears the opposite side
// @Tags editor
// @Accept json
// @Produce json
// @Param index path int true "Line index"
// @Param line body dto.UpdateLineRequest true "Field and value"
// @Success 200 {object} dto.DraftResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /editor/draft/lines/{index} [patch]
func (h *editorHandler) updateLine(c *gin.Context) {
	ownerID, logger, ok := h.owner(c)
	if !ok {
		return
	}
	index, ok := lineIndex(c)
	if !ok {
		return
	}

	var req dto.UpdateLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateLine", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	session, err := h.editorService.UpdateLine(c.Request.Context(), ownerID, index, req)
	if err != nil {
		respondError(c, logger, err, "Failed to update line")
		return
	}
	h.respondDraft(c, http.StatusOK, session)
}

// selectAccount godoc
// @Summary Pick an account for a draft line
// @Description Sets the line's account code and name from the company's chart of accounts and clears its search text
// @Tags editor
// @Accept json
// @Produce json
// @Param index path int true "Line index"
// @Param account body dto.SelectAccountRequest true "Account selection"
// @Success 200 {object} dto.DraftResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]string "Chart of accounts unavailable"
// @Security BearerAuth
// @Router /editor/draft/lines/{index}/account [put]
func (h *editorHandler) selectAccount(c *gin.Context) {
	ownerID, logger, ok := h.owner(c)
	if !ok {
		return
	}
	index, ok := lineIndex(c)
	if !ok {
		return
	}

	var req dto.SelectAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SelectAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	session, err := h.editorService.SelectAccount(c.Request.Context(), ownerID, index, req)
	if err != nil {
		respondError(c, logger, err, "Failed to select account")
		return
	}
	h.respondDraft(c, http.StatusOK, session)
}

// setAccountSearch godoc
// @Summary Store the account search text of a draft line
// @Tags editor
// @Accept json
// @Produce json
// @Param index path int true "Line index"
// @Param search body dto.AccountSearchRequest true "Search text"
// @Success 200 {object} dto.DraftResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /editor/draft/lines/{index}/search [put]
func (h *editorHandler) setAccountSearch(c *gin.Context) {
	ownerID, logger, ok := h.owner(c)
	if !ok {
		return
	}
	index, ok := lineIndex(c)
	if !ok {
		return
	}

	var req dto.AccountSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetAccountSearch", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	session, err := h.editorService.SetAccountSearch(c.Request.Context(), ownerID, index, req.Text)
	if err != nil {
		respondError(c, logger, err, "Failed to update account search")
		return
	}
	h.respondDraft(c, http.StatusOK, session)
}

// getBalance godoc
// @Summary Get the balance of the draft
// @Description Sums debits and credits. A draft without an entry is balanced at zero.
// @Tags editor
// @Produce json
// @Success 200 {object} dto.BalanceResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /editor/draft/balance [get]
func (h *editorHandler) getBalance(c *gin.Context) {
	ownerID, logger, ok := h.owner(c)
	if !ok {
		return
	}

	balance, err := h.editorService.CalculateBalance(c.Request.Context(), ownerID)
	if err != nil {
		respondError(c, logger, err, "Failed to calculate balance")
		return
	}
	c.JSON(http.StatusOK, dto.ToBalanceResponse(balance))
}

// generateDraft godoc
// @Summary Draft an entry from a prompt
// @Description Asks the AI to propose a journal entry and replaces the draft with it
// @Tags editor
// @Accept json
// @Produce json
// @Param prompt body dto.GenerateDraftRequest true "Prompt"
// @Success 200 {object} dto.DraftResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]string "Generation failed"
// @Security BearerAuth
// @Router /editor/draft/generate [post]
func (h *editorHandler) generateDraft(c *gin.Context) {
	ownerID, logger, ok := h.owner(c)
	if !ok {
		return
	}

	var req dto.GenerateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for GenerateDraft", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	session, err := h.editorService.GenerateDraft(c.Request.Context(), ownerID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to generate journal entry")
		return
	}
	h.respondDraft(c, http.StatusOK, session)
}

// postEntry godoc
// @Summary Post the draft entry
// @Description Validates the draft, posts it to the company's books and returns the reloaded history.
// @Description The draft is kept when posting fails so the call can be retried.
// @Tags editor
// @Accept json
// @Produce json
// @Param post body dto.PostEntryRequest true "Target company"
// @Success 201 {object} dto.PostEntryResponse
// @Failure 400 {object} map[string]string "Entry not postable"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Post already in progress"
// @Failure 502 {object} map[string]string "Failed to post"
// @Security BearerAuth
// @Router /editor/draft/post [post]
func (h *editorHandler) postEntry(c *gin.Context) {
	ownerID, logger, ok := h.owner(c)
	if !ok {
		return
	}

	var req dto.PostEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for PostEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	resp, err := h.editorService.PostEntry(c.Request.Context(), ownerID, req.CompanyID)
	if err != nil {
		respondError(c, logger, err, "Failed to post journal entry")
		return
	}
	logger.Info("Journal entry posted", slog.String("posted_id", resp.PostedID), slog.String("company_id", req.CompanyID))
	c.JSON(http.StatusCreated, resp)
}

// searchAccounts godoc
// @Summary Search a company's chart of accounts
// @Tags editor
// @Produce json
// @Param companyID path string true "Company ID"
// @Param q query string false "Text matched against code and name"
// @Success 200 {array} domain.ChartAccount
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]string "Chart of accounts unavailable"
// @Security BearerAuth
// @Router /companies/{companyID}/accounts [get]
func (h *editorHandler) searchAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")

	accounts, err := h.editorService.SearchAccounts(c.Request.Context(), companyID, c.Query("q"))
	if err != nil {
		respondError(c, logger.With(slog.String("company_id", companyID)), err, "Failed to load chart of accounts")
		return
	}
	if accounts == nil {
		accounts = domain.ChartOfAccounts{}
	}
	c.JSON(http.StatusOK, accounts)
}

// listHistory godoc
// @Summary List a company's posted journal entries
// @Tags editor
// @Produce json
// @Param companyID path string true "Company ID"
// @Success 200 {array} domain.JournalEntry
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]string "History unavailable"
// @Security BearerAuth
// @Router /companies/{companyID}/journal-entries [get]
func (h *editorHandler) listHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")

	entries, err := h.editorService.History(c.Request.Context(), companyID)
	if err != nil {
		respondError(c, logger.With(slog.String("company_id", companyID)), err, "Failed to load journal entries")
		return
	}
	if entries == nil {
		entries = []domain.JournalEntry{}
	}
	c.JSON(http.StatusOK, entries)
}

// registerEditorRoutes registers the draft editor and company lookup routes.
func registerEditorRoutes(rg *gin.RouterGroup, editorService portssvc.EditorSvcFacade) {
	h := newEditorHandler(editorService)

	draft := rg.Group("/editor/draft")
	{
		draft.GET("", h.getDraft)
		draft.POST("", h.newDraft)
		draft.DELETE("", h.discardDraft)
		draft.PATCH("", h.updateDraft)
		draft.GET("/balance", h.getBalance)
		draft.POST("/generate", h.generateDraft)
		draft.POST("/post", h.postEntry)
		draft.POST("/lines", h.addLine)
		draft.DELETE("/lines/:index", h.removeLine)
		draft.PATCH("/lines/:index", h.updateLine)
		draft.PUT("/lines/:index/account", h.selectAccount)
		draft.PUT("/lines/:index/search", h.setAccountSearch)
	}

	companies := rg.Group("/companies/:companyID")
	{
		companies.GET("/accounts", h.searchAccounts)
		companies.GET("/journal-entries", h.listHistory)
	}
}
