package user

import (
	"net/http"

	"homekeep/organizer-api/internal"
	"homekeep/organizer-api/internal/domain"
	"homekeep/organizer-api/internal/model"
	"homekeep/organizer-api/pkg/resp"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Verify consumes a verification token exactly once, marks the account
// verified and logs the user straight in.
func Verify(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "No verification token provided",
			"requestID": requestID,
		})
		return
	}

	userID, err := d.VerifyTokens.Resolve(c.Request.Context(), token)
	if err != nil {
		resp.Error(c, err)
		return
	}

	if userID == "" {
		resp.Error(c, domain.NewInvalidTokenError())
		return
	}

	var user model.User
	if err := d.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			resp.Error(c, domain.NewNotFoundError("User not found"))
			return
		}

		resp.Error(c, err)
		return
	}

	if user.Verified {
		resp.Error(c, domain.NewAlreadyVerifiedError())
		return
	}

	r := d.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Update("verified", true)
	if r.Error != nil {
		resp.Error(c, r.Error)
		return
	}

	if r.RowsAffected == 0 {
		resp.Error(c, domain.NewOperationFailedError("Failed to verify account"))
		return
	}

	// Tokens are single use
	if err := d.VerifyTokens.Revoke(c.Request.Context(), token); err != nil {
		zap.L().Error("Failed to revoke verification token", zap.Error(err), zap.String("requestID", requestID))
	}

	sessionToken, err := d.Sessions.Create(c.Request.Context(), userID)
	if err != nil {
		resp.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"userID":       userID,
		"sessionToken": sessionToken,
		"requestID":    requestID,
	})
}
