package user

import (
	"net/http"

	"homekeep/organizer-api/internal"
	"homekeep/organizer-api/pkg/resp"

	"github.com/gin-gonic/gin"
)

// Logout revokes the presented session token. Revoking an already
// absent token is not an error.
func Logout(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	sessionToken := c.MustGet("sessionToken").(string)

	if err := d.Sessions.Revoke(c.Request.Context(), sessionToken); err != nil {
		resp.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Logged out",
		"requestID": requestID,
	})
}
