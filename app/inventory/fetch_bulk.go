package inventory

import (
	"net/http"

	"homekeep/organizer-api/internal"
	"homekeep/organizer-api/internal/model"
	"homekeep/organizer-api/pkg/resp"

	"github.com/gin-gonic/gin"
)

// FetchBulk returns all inventory items owned by the requesting user
func FetchBulk(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	// Initialized so an empty result serializes as [] instead of null
	items := []model.InventoryItem{}

	err := d.DB.
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&items).
		Error
	if err != nil {
		resp.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":     items,
		"requestID": requestID,
	})
}
