package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/fincore/backoffice/internal/core/ports/services"
	"github.com/fincore/backoffice/internal/dto"
	"github.com/fincore/backoffice/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ledgerAccountHandler handles HTTP requests for the chart of accounts.
type ledgerAccountHandler struct {
	accountService portssvc.LedgerAccountSvcFacade
}

// newLedgerAccountHandler creates a new ledgerAccountHandler.
func newLedgerAccountHandler(accountService portssvc.LedgerAccountSvcFacade) *ledgerAccountHandler {
	return &ledgerAccountHandler{
		accountService: accountService,
	}
}

// createLedgerAccount godoc
// @Summary Create a ledger account
// @Description Adds a chart-of-accounts node for the caller's bank with a zero balance
// @Tags ledger-accounts
// @Accept  json
// @Produce  json
// @Param   account body dto.CreateLedgerAccountRequest true "Account details"
// @Success 201 {object} dto.LedgerAccountResponse "The created account"
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 409 {object} map[string]string "Chart code already exists"
// @Router /ledger-accounts [post]
func (h *ledgerAccountHandler) createLedgerAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateLedgerAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createLedgerAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	bankID, userID, ok := requestScope(c, logger)
	if !ok {
		return
	}

	account, err := h.accountService.CreateLedgerAccount(c.Request.Context(), bankID, req, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create ledger account")
		return
	}

	c.JSON(http.StatusCreated, dto.ToLedgerAccountResponse(account))
}

// getLedgerAccount godoc
// @Summary Get a ledger account
// @Description Retrieves a single account of the caller's bank
// @Tags ledger-accounts
// @Produce  json
// @Param   ledgerAccountID path string true "Ledger account ID"
// @Success 200 {object} dto.LedgerAccountResponse "The account"
// @Failure 404 {object} map[string]string "Account not found"
// @Router /ledger-accounts/{ledgerAccountID} [get]
func (h *ledgerAccountHandler) getLedgerAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ledgerAccountID := c.Param("ledgerAccountID")

	bankID, _, ok := requestScope(c, logger)
	if !ok {
		return
	}

	account, err := h.accountService.GetLedgerAccount(c.Request.Context(), bankID, ledgerAccountID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve ledger account")
		return
	}

	c.JSON(http.StatusOK, dto.ToLedgerAccountResponse(account))
}

// listLedgerAccounts godoc
// @Summary List ledger accounts
// @Description Retrieves all accounts of the caller's bank ordered by chart code
// @Tags ledger-accounts
// @Produce  json
// @Success 200 {array} dto.LedgerAccountResponse "The bank's chart of accounts"
// @Failure 500 {object} map[string]string "Failed to list accounts"
// @Router /ledger-accounts [get]
func (h *ledgerAccountHandler) listLedgerAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	bankID, _, ok := requestScope(c, logger)
	if !ok {
		return
	}

	accounts, err := h.accountService.ListLedgerAccounts(c.Request.Context(), bankID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list ledger accounts")
		return
	}

	c.JSON(http.StatusOK, dto.ToLedgerAccountResponses(accounts))
}

// deactivateLedgerAccount godoc
// @Summary Deactivate a ledger account
// @Description Marks an account inactive; it rejects new entries but keeps its posted history
// @Tags ledger-accounts
// @Produce  json
// @Param   ledgerAccountID path string true "Ledger account ID"
// @Success 204 "Account deactivated"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 409 {object} map[string]string "Account already inactive"
// @Router /ledger-accounts/{ledgerAccountID} [delete]
func (h *ledgerAccountHandler) deactivateLedgerAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ledgerAccountID := c.Param("ledgerAccountID")

	bankID, userID, ok := requestScope(c, logger)
	if !ok {
		return
	}

	if err := h.accountService.DeactivateLedgerAccount(c.Request.Context(), bankID, ledgerAccountID, userID); err != nil {
		respondWithError(c, logger, err, "Failed to deactivate ledger account")
		return
	}

	c.Status(http.StatusNoContent)
}

// registerLedgerAccountRoutes registers chart-of-accounts specific routes
func registerLedgerAccountRoutes(group *gin.RouterGroup, accountService portssvc.LedgerAccountSvcFacade) {
	h := newLedgerAccountHandler(accountService)

	accounts := group.Group("/ledger-accounts")
	{
		accounts.POST("", h.createLedgerAccount)
		accounts.GET("", h.listLedgerAccounts)
		accounts.GET("/:ledgerAccountID", h.getLedgerAccount)
		accounts.DELETE("/:ledgerAccountID", h.deactivateLedgerAccount)
	}
}
