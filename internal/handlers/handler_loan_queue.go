package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/fincore/backoffice/internal/core/ports/services"
	"github.com/fincore/backoffice/internal/dto"
	"github.com/fincore/backoffice/internal/middleware"
	"github.com/gin-gonic/gin"
)

// loanQueueHandler handles HTTP requests for the loan review queue.
type loanQueueHandler struct {
	queueService portssvc.LoanQueueSvcFacade
}

// newLoanQueueHandler creates a new loanQueueHandler.
func newLoanQueueHandler(queueService portssvc.LoanQueueSvcFacade) *loanQueueHandler {
	return &loanQueueHandler{
		queueService: queueService,
	}
}

// getQueue godoc
// @Summary Get the loan review queue
// @Description Retrieves all active queue items of the caller's bank ascending by rank
// @Tags loan-queue
// @Produce  json
// @Success 200 {array} dto.QueueItemResponse "The active queue"
// @Failure 500 {object} map[string]string "Failed to retrieve queue"
// @Router /loan-queue [get]
func (h *loanQueueHandler) getQueue(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	bankID, _, ok := requestScope(c, logger)
	if !ok {
		return
	}

	items, err := h.queueService.GetQueue(c.Request.Context(), bankID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve queue")
		return
	}

	c.JSON(http.StatusOK, dto.ToQueueItemResponses(items))
}

// getQueueItem godoc
// @Summary Get a queue item
// @Description Retrieves a single queue item, deleted or not
// @Tags loan-queue
// @Produce  json
// @Param   queueItemID path string true "Queue item ID"
// @Success 200 {object} dto.QueueItemResponse "The queue item"
// @Failure 404 {object} map[string]string "Queue item not found"
// @Router /loan-queue/{queueItemID} [get]
func (h *loanQueueHandler) getQueueItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	queueItemID := c.Param("queueItemID")

	bankID, _, ok := requestScope(c, logger)
	if !ok {
		return
	}

	item, err := h.queueService.GetQueueItem(c.Request.Context(), bankID, queueItemID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve queue item")
		return
	}

	c.JSON(http.StatusOK, dto.ToQueueItemResponse(item))
}

// addToQueue godoc
// @Summary Add a loan request to the queue
// @Description Inserts a loan request at the requested rank, shifting later items up. Out-of-range ranks append at the end.
// @Tags loan-queue
// @Accept  json
// @Produce  json
// @Param   item body dto.AddToQueueRequest true "Queue item details"
// @Success 201 {object} dto.QueueItemResponse "The created queue item"
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 409 {object} map[string]string "Loan request already queued"
// @Router /loan-queue [post]
func (h *loanQueueHandler) addToQueue(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.AddToQueueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for addToQueue", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	bankID, userID, ok := requestScope(c, logger)
	if !ok {
		return
	}

	item, err := h.queueService.AddToQueue(c.Request.Context(), bankID, req, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to add loan request to queue")
		return
	}

	c.JSON(http.StatusCreated, dto.ToQueueItemResponse(item))
}

// updateOrder godoc
// @Summary Move a queue item to a new rank
// @Description Moves the item and shifts the items between old and new rank by one. Out-of-range ranks are clamped.
// @Tags loan-queue
// @Accept  json
// @Produce  json
// @Param   queueItemID path string true "Queue item ID"
// @Param   order body dto.UpdateQueueOrderRequest true "The new rank"
// @Success 200 {object} dto.QueueItemResponse "The moved queue item"
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 404 {object} map[string]string "Queue item not found"
// @Router /loan-queue/{queueItemID}/order [patch]
func (h *loanQueueHandler) updateOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	queueItemID := c.Param("queueItemID")

	var req dto.UpdateQueueOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateOrder", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	bankID, userID, ok := requestScope(c, logger)
	if !ok {
		return
	}

	item, err := h.queueService.UpdateOrder(c.Request.Context(), bankID, queueItemID, req.QueueOrder, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to update queue order")
		return
	}

	c.JSON(http.StatusOK, dto.ToQueueItemResponse(item))
}

// removeFromQueue godoc
// @Summary Remove a loan request from the queue
// @Description Hard-deletes the active queue item of a loan request and closes the resulting gap
// @Tags loan-queue
// @Produce  json
// @Param   loanRequestID path string true "Loan request ID"
// @Success 204 "Item removed"
// @Failure 404 {object} map[string]string "Loan request not queued"
// @Router /loan-queue/requests/{loanRequestID} [delete]
func (h *loanQueueHandler) removeFromQueue(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	loanRequestID := c.Param("loanRequestID")

	bankID, userID, ok := requestScope(c, logger)
	if !ok {
		return
	}

	if err := h.queueService.RemoveFromQueue(c.Request.Context(), bankID, loanRequestID, userID); err != nil {
		respondWithError(c, logger, err, "Failed to remove loan request from queue")
		return
	}

	c.Status(http.StatusNoContent)
}

// softDeleteQueueItem godoc
// @Summary Soft delete a queue item
// @Description Flags the item deleted for audit purposes and closes the resulting gap
// @Tags loan-queue
// @Produce  json
// @Param   queueItemID path string true "Queue item ID"
// @Success 204 "Item soft deleted"
// @Failure 404 {object} map[string]string "Queue item not found"
// @Router /loan-queue/{queueItemID} [delete]
func (h *loanQueueHandler) softDeleteQueueItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	queueItemID := c.Param("queueItemID")

	bankID, userID, ok := requestScope(c, logger)
	if !ok {
		return
	}

	if err := h.queueService.SoftDelete(c.Request.Context(), bankID, queueItemID, userID); err != nil {
		respondWithError(c, logger, err, "Failed to soft delete queue item")
		return
	}

	c.Status(http.StatusNoContent)
}

// restoreQueueItem godoc
// @Summary Restore a soft-deleted queue item
// @Description Re-admits the item at the end of the queue
// @Tags loan-queue
// @Produce  json
// @Param   queueItemID path string true "Queue item ID"
// @Success 200 {object} dto.QueueItemResponse "The restored queue item"
// @Failure 404 {object} map[string]string "Queue item not found"
// @Failure 409 {object} map[string]string "Queue item is not deleted"
// @Router /loan-queue/{queueItemID}/restore [post]
func (h *loanQueueHandler) restoreQueueItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	queueItemID := c.Param("queueItemID")

	bankID, userID, ok := requestScope(c, logger)
	if !ok {
		return
	}

	item, err := h.queueService.Restore(c.Request.Context(), bankID, queueItemID, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to restore queue item")
		return
	}

	c.JSON(http.StatusOK, dto.ToQueueItemResponse(item))
}

// updateQueueItem godoc
// @Summary Update queue item notes
// @Description Updates admin notes without touching ordering
// @Tags loan-queue
// @Accept  json
// @Produce  json
// @Param   queueItemID path string true "Queue item ID"
// @Param   item body dto.UpdateQueueItemRequest true "Updated notes"
// @Success 200 {object} dto.QueueItemResponse "The updated queue item"
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 404 {object} map[string]string "Queue item not found"
// @Router /loan-queue/{queueItemID} [patch]
func (h *loanQueueHandler) updateQueueItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	queueItemID := c.Param("queueItemID")

	var req dto.UpdateQueueItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateQueueItem", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	bankID, userID, ok := requestScope(c, logger)
	if !ok {
		return
	}

	item, err := h.queueService.UpdateQueueItem(c.Request.Context(), bankID, queueItemID, req, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to update queue item")
		return
	}

	c.JSON(http.StatusOK, dto.ToQueueItemResponse(item))
}

// registerLoanQueueRoutes registers loan review queue specific routes
func registerLoanQueueRoutes(group *gin.RouterGroup, queueService portssvc.LoanQueueSvcFacade) {
	h := newLoanQueueHandler(queueService)

	queue := group.Group("/loan-queue")
	{
		queue.GET("", h.getQueue)
		queue.POST("", h.addToQueue)
		queue.GET("/:queueItemID", h.getQueueItem)
		queue.PATCH("/:queueItemID", h.updateQueueItem)
		queue.DELETE("/:queueItemID", h.softDeleteQueueItem)
		queue.PATCH("/:queueItemID/order", h.updateOrder)
		queue.POST("/:queueItemID/restore", h.restoreQueueItem)
		queue.DELETE("/requests/:loanRequestID", h.removeFromQueue)
	}
}
