package reminder

import (
	"net/http"

	"homekeep/organizer-api/internal"
	"homekeep/organizer-api/internal/model"
	"homekeep/organizer-api/pkg/resp"

	"github.com/gin-gonic/gin"
)

// FetchBulk returns all reminders owned by the requesting user, soonest
// remind date first
func FetchBulk(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	reminders := []model.Reminder{}

	err := d.DB.
		Where("user_id = ?", userID).
		Order("remind_date asc").
		Find(&reminders).
		Error
	if err != nil {
		resp.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reminders": reminders,
		"requestID": requestID,
	})
}
