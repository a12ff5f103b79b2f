// Package reminder implements CRUD over a user's reminders. A remind
// date may never precede the moment it is set.
package reminder

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

type createBody struct {
	Title      string    `json:"title" binding:"required"`
	Content    string    `json:"content"`
	RemindDate time.Time `json:"remind_date" binding:"required"`
}

func Create(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	var data createBody
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

	reminder := model.Reminder{
		ID:         domain.GenerateUuid().String(),
		UserID:     userID,
		Title:      data.Title,
		Content:    data.Content,
		RemindDate: data.RemindDate,
	}

	if err := d.DB.Create(&reminder).Error; err != nil {
		resp.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"reminder":  reminder,
		"requestID": requestID,
	})
}
