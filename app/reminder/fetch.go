package reminder

import (
	"net/http"

	"homekeep/organizer-api/internal"
	"homekeep/organizer-api/internal/authz"
	"homekeep/organizer-api/internal/domain"
	"homekeep/organizer-api/internal/model"
	"homekeep/organizer-api/pkg/resp"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Fetch(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	reminder, err := findReminder(d.DB, c.Param("id"))
	if err != nil {
		resp.Error(c, err)
		return
	}

	if err := authz.RequireOwner(userID, reminder.UserID); err != nil {
		resp.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reminder":  reminder,
		"requestID": requestID,
	})
}

func findReminder(db *gorm.DB, id string) (*model.Reminder, error) {
	if id == "" {
		return nil, domain.NewValidationError("No reminder ID provided")
	}

	var reminder model.Reminder
	if err := db.Where("id = ?", id).First(&reminder).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.NewNotFoundError("Reminder not found")
		}

		return nil, err
	}

	return &reminder, nil
}
