package reminder

import (
	"net/http"
	"time"

	"homekeep/organizer-api/internal"
	"homekeep/organizer-api/internal/authz"
	"homekeep/organizer-api/internal/domain"
	"homekeep/organizer-api/internal/model"
	"homekeep/organizer-api/pkg/resp"
	"homekeep/organizer-api/pkg/validators"

	"github.com/gin-gonic/gin"
)

type editBody struct {
	Title      string    `json:"title" binding:"required"`
	Content    string    `json:"content"`
	RemindDate time.Time `json:"remind_date" binding:"required"`
}

func Edit(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	var data editBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})
		return
	}

	if err := validators.ReminderTitleValidator(data.Title); err != nil {
		resp.Error(c, err)
		return
	}

	if err := validators.RemindDateValidator(data.RemindDate, time.Now()); err != nil {
		resp.Error(c, err)
		return
	}

	reminder, err := findReminder(d.DB, c.Param("id"))
	if err != nil {
		resp.Error(c, err)
		return
	}

	if err := authz.RequireOwner(userID, reminder.UserID); err != nil {
		resp.Error(c, err)
		return
	}

	r := d.DB.Model(&model.Reminder{}).
		Where("id = ?", reminder.ID).
		Updates(map[string]any{
			"title":       data.Title,
			"content":     data.Content,
			"remind_date": data.RemindDate,
		})
	if r.Error != nil {
		resp.Error(c, r.Error)
		return
	}

	if r.RowsAffected == 0 {
		resp.Error(c, domain.NewOperationFailedError("Failed to update reminder"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Reminder updated",
		"requestID": requestID,
	})
}
