// Package root holds the endpoints that don't belong to a domain area
package root

import (
	"net/http"

	"homekeep/organizer-api/internal"

	"github.com/gin-gonic/gin"
)

// Heartbeat is used to check if the server is alive
func Heartbeat(c *gin.Context, _ *internal.Deps) {
	c.Status(http.StatusOK)
}
