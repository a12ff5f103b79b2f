package user

import (
	"net/http"

	"homekeep/organizer-api/internal"
	"homekeep/organizer-api/internal/domain"
	"homekeep/organizer-api/internal/model"
	"homekeep/organizer-api/pkg/resp"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Fetch returns the authenticated user's own account data
func Fetch(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	var user model.User
	if err := d.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			resp.Error(c, domain.NewNotFoundError("User not found"))
			return
		}

		resp.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"userID":    user.ID,
		"email":     user.Email,
		"firstName": user.FirstName,
		"lastName":  user.LastName,
		"birthDate": user.BirthDate.Format(birthDateLayout),
		"phone":     user.Phone,
		"verified":  user.Verified,
		"createdAt": user.CreatedAt,
		"updatedAt": user.UpdatedAt,
		"requestID": requestID,
	})
}
