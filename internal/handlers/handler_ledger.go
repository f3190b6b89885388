package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/fincore/backoffice/internal/core/ports/services"
	"github.com/fincore/backoffice/internal/dto"
	"github.com/fincore/backoffice/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ledgerHandler handles HTTP requests for journals and their entries.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// newLedgerHandler creates a new ledgerHandler.
func newLedgerHandler(ledgerService portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{
		ledgerService: ledgerService,
	}
}

// createJournal godoc
// @Summary Create a new journal
// @Description Opens a new PENDING journal for the caller's bank
// @Tags journals
// @Accept  json
// @Produce  json
// @Param   journal body dto.CreateJournalRequest true "Journal details"
// @Success 201 {object} dto.JournalResponse "The created journal"
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create journal"
// @Router /journals [post]
func (h *ledgerHandler) createJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createJournal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	bankID, userID, ok := requestScope(c, logger)
	if !ok {
		return
	}

	journal, err := h.ledgerService.CreateJournal(c.Request.Context(), bankID, req, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create journal")
		return
	}

	c.JSON(http.StatusCreated, dto.ToJournalResponse(journal))
}

// getJournal godoc
// @Summary Get a journal
// @Description Retrieves a journal and its entries by journal ID
// @Tags journals
// @Produce  json
// @Param   journalID path string true "Journal ID"
// @Success 200 {object} dto.JournalResponse "The journal with its entries"
// @Failure 404 {object} map[string]string "Journal not found"
// @Failure 500 {object} map[string]string "Failed to retrieve journal"
// @Router /journals/{journalID} [get]
func (h *ledgerHandler) getJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	journalID := c.Param("journalID")

	bankID, userID, ok := requestScope(c, logger)
	if !ok {
		return
	}

	journal, err := h.ledgerService.GetJournal(c.Request.Context(), bankID, journalID, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve journal")
		return
	}

	c.JSON(http.StatusOK, dto.ToJournalResponse(journal))
}

// listJournals godoc
// @Summary List journals
// @Description Retrieves a page of the bank's journals, newest first
// @Tags journals
// @Produce  json
// @Param   limit query int false "Page size (default 20)"
// @Param   nextToken query string false "Cursor token from the previous page"
// @Param   status query string false "Filter by status (PENDING, POSTED, VOID)"
// @Success 200 {object} dto.ListJournalsResponse "A page of journals"
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list journals"
// @Router /journals [get]
func (h *ledgerHandler) listJournals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListJournalsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for listJournals", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	bankID, userID, ok := requestScope(c, logger)
	if !ok {
		return
	}

	resp, err := h.ledgerService.ListJournals(c.Request.Context(), bankID, params, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list journals")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// addEntry godoc
// @Summary Add a single entry to a journal
// @Description Appends one debit or credit line to a PENDING journal. Balance is not checked until posting.
// @Tags journals
// @Accept  json
// @Produce  json
// @Param   journalID path string true "Journal ID"
// @Param   entry body dto.AddEntryRequest true "Entry details"
// @Success 200 {object} dto.JournalResponse "The journal with its entries"
// @Failure 400 {object} map[string]string "Invalid request format or amount"
// @Failure 404 {object} map[string]string "Journal or account not found"
// @Failure 409 {object} map[string]string "Journal is not PENDING"
// @Router /journals/{journalID}/entries [post]
func (h *ledgerHandler) addEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	journalID := c.Param("journalID")

	var req dto.AddEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for addEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	bankID, userID, ok := requestScope(c, logger)
	if !ok {
		return
	}

	journal, err := h.ledgerService.AddEntry(c.Request.Context(), bankID, journalID, req, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to add entry")
		return
	}

	c.JSON(http.StatusOK, dto.ToJournalResponse(journal))
}

// addAllocationEntries godoc
// @Summary Add allocation entries to a journal
// @Description Fans a payment out across targets per the allocation rule; all entries are appended atomically
// @Tags journals
// @Accept  json
// @Produce  json
// @Param   journalID path string true "Journal ID"
// @Param   allocation body dto.AllocateEntriesRequest true "Allocation details"
// @Success 200 {object} dto.JournalResponse "The journal with its entries"
// @Failure 400 {object} map[string]string "Invalid request format, allocation type, or amount"
// @Failure 404 {object} map[string]string "Journal or rule account not found"
// @Failure 409 {object} map[string]string "Journal is not PENDING"
// @Router /journals/{journalID}/allocations [post]
func (h *ledgerHandler) addAllocationEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	journalID := c.Param("journalID")

	var req dto.AllocateEntriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for addAllocationEntries", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	bankID, userID, ok := requestScope(c, logger)
	if !ok {
		return
	}

	journal, err := h.ledgerService.AddAllocationEntries(c.Request.Context(), bankID, journalID, req, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to add allocation entries")
		return
	}

	c.JSON(http.StatusOK, dto.ToJournalResponse(journal))
}

// deleteEntry godoc
// @Summary Delete a journal entry
// @Description Removes a single entry from a PENDING journal
// @Tags journals
// @Produce  json
// @Param   entryID path string true "Entry ID"
// @Success 200 {object} dto.JournalResponse "The journal with its remaining entries"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 409 {object} map[string]string "Journal is not PENDING"
// @Router /entries/{entryID} [delete]
func (h *ledgerHandler) deleteEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("entryID")

	bankID, userID, ok := requestScope(c, logger)
	if !ok {
		return
	}

	journal, err := h.ledgerService.DeleteEntry(c.Request.Context(), bankID, entryID, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to delete entry")
		return
	}

	c.JSON(http.StatusOK, dto.ToJournalResponse(journal))
}

// postJournal godoc
// @Summary Post a journal
// @Description Validates double-entry balance and transitions the journal to POSTED, applying account balance changes
// @Tags journals
// @Produce  json
// @Param   journalID path string true "Journal ID"
// @Success 200 {object} dto.JournalResponse "The posted journal"
// @Failure 400 {object} map[string]string "Journal is unbalanced"
// @Failure 404 {object} map[string]string "Journal not found"
// @Failure 409 {object} map[string]string "Journal is not PENDING"
// @Router /journals/{journalID}/post [post]
func (h *ledgerHandler) postJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	journalID := c.Param("journalID")

	bankID, userID, ok := requestScope(c, logger)
	if !ok {
		return
	}

	journal, err := h.ledgerService.PostJournal(c.Request.Context(), bankID, journalID, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to post journal")
		return
	}

	logger.Info("Journal posted", slog.String("journal_id", journalID))
	c.JSON(http.StatusOK, dto.ToJournalResponse(journal))
}

// voidJournal godoc
// @Summary Void a journal
// @Description Transitions a PENDING journal to VOID without touching balances
// @Tags journals
// @Produce  json
// @Param   journalID path string true "Journal ID"
// @Success 200 {object} dto.JournalResponse "The voided journal"
// @Failure 404 {object} map[string]string "Journal not found"
// @Failure 409 {object} map[string]string "Journal is not PENDING"
// @Router /journals/{journalID}/void [post]
func (h *ledgerHandler) voidJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	journalID := c.Param("journalID")

	bankID, userID, ok := requestScope(c, logger)
	if !ok {
		return
	}

	journal, err := h.ledgerService.VoidJournal(c.Request.Context(), bankID, journalID, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to void journal")
		return
	}

	c.JSON(http.StatusOK, dto.ToJournalResponse(journal))
}

// registerLedgerRoutes registers journal and entry specific routes
func registerLedgerRoutes(group *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newLedgerHandler(ledgerService)

	journals := group.Group("/journals")
	{
		journals.POST("", h.createJournal)
		journals.GET("", h.listJournals)
		journals.GET("/:journalID", h.getJournal)
		journals.POST("/:journalID/entries", h.addEntry)
		journals.POST("/:journalID/allocations", h.addAllocationEntries)
		journals.POST("/:journalID/post", h.postJournal)
		journals.POST("/:journalID/void", h.voidJournal)
	}

	group.DELETE("/entries/:entryID", h.deleteEntry)
}
