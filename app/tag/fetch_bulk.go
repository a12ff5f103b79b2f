package tag

import (
	"net/http"

	"homekeep/organizer-api/internal"
	"homekeep/organizer-api/internal/model"
	"homekeep/organizer-api/pkg/resp"

	"github.com/gin-gonic/gin"
)

// FetchBulk returns all tags owned by the requesting user
func FetchBulk(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	tags := []model.Tag{}

	err := d.DB.
		Where("user_id = ?", userID).
		Order("name asc").
		Find(&tags).
		Error
	if err != nil {
		resp.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tags":      tags,
		"requestID": requestID,
	})
}
