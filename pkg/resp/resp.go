// Package resp translates domain errors into transport responses. This
// is the only place where error kinds become HTTP statuses.
package resp

import (
	"net/http"

	"homekeep/organizer-api/internal/domain"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Error writes the response for err. Domain errors surface their own
// status and message; anything else is masked behind a generic 500.
func Error(c *gin.Context, err error) {
	requestID := c.GetString("requestID")

	if de, ok := domain.AsError(err); ok {
		c.AbortWithStatusJSON(de.Status, gin.H{
			"error":     de.Message,
			"requestID": requestID,
		})
		return
	}

	zap.L().Error("Unexpected error", zap.Error(err), zap.String("requestID", requestID))

	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
		"error":     "Internal server error",
		"requestID": requestID,
	})
}
