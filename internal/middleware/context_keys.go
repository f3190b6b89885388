package middleware

import "github.com/gin-gonic/gin"

// contextKey is a private key type so context values cannot collide with
// other packages.
type contextKey string

const (
	loggerCtxKey = contextKey("logger")
	userIDKey    = contextKey("userID")
	bankIDKey    = contextKey("bankID")
)

// GetUserIDFromContext retrieves the authenticated admin user ID from the
// request context. It returns the ID and whether it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	val := c.Request.Context().Value(userIDKey)
	userID, ok := val.(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

// GetBankIDFromContext retrieves the caller's tenant (bank) ID from the
// request context. It returns the ID and whether it was found.
func GetBankIDFromContext(c *gin.Context) (string, bool) {
	val := c.Request.Context().Value(bankIDKey)
	bankID, ok := val.(string)
	if !ok || bankID == "" {
		return "", false
	}
	return bankID, true
}
