package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/fincore/backoffice/internal/apperrors"
	"github.com/fincore/backoffice/internal/middleware"
	"github.com/gin-gonic/gin"
)

// respondWithError maps service errors onto the HTTP status taxonomy shared
// by every handler: validation problems are 400, missing or cross-tenant
// resources are 404, state conflicts are 409, and anything unexpected is a
// 500 with a generic message so internals stay hidden.
func respondWithError(c *gin.Context, logger *slog.Logger, err error, fallbackMsg string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrUnbalanced):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate),
		errors.Is(err, apperrors.ErrConflict),
		errors.Is(err, apperrors.ErrJournalNotPending),
		errors.Is(err, apperrors.ErrItemNotDeleted):
		logger.Warn("Conflicting state", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrForbidden):
		logger.Warn("Forbidden", slog.String("error", err.Error()))
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		logger.Error(fallbackMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallbackMsg})
	}
}

// requestScope extracts the authenticated user and bank from the request
// context, aborting with 401 when either is missing.
func requestScope(c *gin.Context, logger *slog.Logger) (bankID string, userID string, ok bool) {
	userID, ok = middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", "", false
	}
	bankID, ok = middleware.GetBankIDFromContext(c)
	if !ok {
		logger.Error("Bank ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", "", false
	}
	return bankID, userID, true
}
