package user

import (
	"net/http"

	"homekeep/organizer-api/internal"
	"homekeep/organizer-api/internal/domain"
	"homekeep/organizer-api/internal/model"
	"homekeep/organizer-api/pkg/resp"

	"github.com/gin-gonic/gin"
)

type changePasswordBody struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// ChangePassword swaps the stored hash after re-checking the current
// password. The new password goes through the full strength policy.
func ChangePassword(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	var data changePasswordBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})
		return
	}

	var user model.User
	if err := d.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		resp.Error(c, domain.NewNotFoundError("User not found"))
		return
	}

	current, err := domain.NewPasswordFromHash(user.PasswordHash)
	if err != nil {
		resp.Error(c, err)
		return
	}

	if !current.Check(data.OldPassword) {
		resp.Error(c, domain.NewInvalidCredentialsError())
		return
	}

	newPassword, err := domain.NewPassword(data.NewPassword)
	if err != nil {
		resp.Error(c, err)
		return
	}

	r := d.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Update("password_hash", newPassword.Hash())
	if r.Error != nil {
		resp.Error(c, r.Error)
		return
	}

	if r.RowsAffected == 0 {
		resp.Error(c, domain.NewOperationFailedError("Failed to change password"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Password changed",
		"requestID": requestID,
	})
}
