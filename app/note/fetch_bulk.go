package note

import (
	"net/http"

	"homekeep/organizer-api/internal"
	"homekeep/organizer-api/internal/model"
	"homekeep/organizer-api/pkg/resp"

	"github.com/gin-gonic/gin"
)

// FetchBulk returns all notes owned by the requesting user
func FetchBulk(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	notes := []model.Note{}

	err := d.DB.
		Preload("Tags").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&notes).
		Error
	if err != nil {
		resp.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"notes":     notes,
		"requestID": requestID,
	})
}
