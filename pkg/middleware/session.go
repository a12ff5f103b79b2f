package middleware

import (
	"net/http"

	"homekeep/organizer-api/internal/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionHeader carries the opaque bearer token issued at login
const SessionHeader = "session_token"

// NewSessionMiddleware authenticates the session_token header against
// the injected store and sets userID for downstream handlers. Requests
// with an absent or expired token are rejected with 401.
func NewSessionMiddleware(store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.MustGet("requestID").(string)

		token := c.GetHeader(SessionHeader)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":     "No session token provided",
				"requestID": requestID,
			})
			return
		}

		userID, err := store.Resolve(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to resolve session token", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":     "Session invalid or expired",
				"requestID": requestID,
			})
			return
		}

		c.Set("userID", userID)
		c.Set("sessionToken", token)
		c.Next()
	}
}
