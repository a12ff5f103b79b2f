package user

import (
	"net/http"

	"homekeep/organizer-api/internal"
	"homekeep/organizer-api/internal/domain"
	"homekeep/organizer-api/internal/model"
	"homekeep/organizer-api/pkg/resp"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Delete soft-deletes the authenticated account and kills its session.
// The row stays in place so the email can't be reclaimed.
func Delete(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)
	sessionToken := c.MustGet("sessionToken").(string)

	r := d.DB.Where("id = ?", userID).Delete(&model.User{})
	if r.Error != nil {
		resp.Error(c, r.Error)
		return
	}

	if r.RowsAffected == 0 {
		resp.Error(c, domain.NewOperationFailedError("Failed to delete account"))
		return
	}

	if err := d.Sessions.Revoke(c.Request.Context(), sessionToken); err != nil {
		zap.L().Error("Failed to revoke session", zap.Error(err), zap.String("requestID", requestID))
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Account deleted",
		"requestID": requestID,
	})
}
