package user

import (
	"net/http"
	"time"

	"homekeep/organizer-api/internal"
	"homekeep/organizer-api/internal/domain"
	"homekeep/organizer-api/internal/model"
	"homekeep/organizer-api/pkg/resp"
	"homekeep/organizer-api/pkg/validators"

	"github.com/gin-gonic/gin"
)

type changeInfoBody struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	BirthDate string `json:"birth_date" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
}

// ChangeInfo replaces the personal information of the authenticated user
func ChangeInfo(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	var data changeInfoBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})
		return
	}

	fullName, err := domain.NewFullName(data.FirstName, data.LastName)
	if err != nil {
		resp.Error(c, err)
		return
	}

	phone, err := domain.NewPhone(data.Phone)
	if err != nil {
		resp.Error(c, err)
		return
	}

	birthDate, err := time.Parse(birthDateLayout, data.BirthDate)
	if err != nil {
		resp.Error(c, domain.NewValidationError("Birth date must use the YYYY-MM-DD format"))
		return
	}

	if err := validators.BirthDateValidator(birthDate, time.Now()); err != nil {
		resp.Error(c, err)
		return
	}

	r := d.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"first_name": fullName.FirstName(),
			"last_name":  fullName.LastName(),
			"birth_date": birthDate,
			"phone":      phone.String(),
		})
	if r.Error != nil {
		resp.Error(c, r.Error)
		return
	}

	if r.RowsAffected == 0 {
		resp.Error(c, domain.NewOperationFailedError("Failed to update personal information"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Personal information updated",
		"requestID": requestID,
	})
}
