package root

import (
	"net/http"

	"homekeep/organizer-api/internal"

	"github.com/gin-gonic/gin"
)

// Validate reports whether the presented session token is still live.
// The session middleware has already resolved it by the time this runs.
func Validate(c *gin.Context, _ *internal.Deps) {
	c.JSON(http.StatusOK, gin.H{
		"valid":  true,
		"userID": c.MustGet("userID").(string),
	})
}
