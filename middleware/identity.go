package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// UserIDKey is the gin context key the authenticated user ID is stored under
const UserIDKey = "userID"

// userIDHeader carries the caller identity resolved by the auth gateway.
// Authentication itself happens upstream; this service only requires the
// header to be present.
const userIDHeader = "X-User-ID"

// RequireIdentity rejects requests without a caller identity and stashes
// the user ID in the request context
func RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(userIDHeader)
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing user identity"})
			return
		}
		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// CurrentUser returns the caller's user ID from the request context
func CurrentUser(c *gin.Context) string {
	return c.GetString(UserIDKey)
}
