package inventory

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

	item, err := findItem(d.DB, c.Param("id"))
	if err != nil {
		resp.Error(c, err)
		return
	}

	if err := authz.RequireOwner(userID, item.UserID); err != nil {
		resp.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"item":      item,
		"requestID": requestID,
	})
}

// findItem loads an item through the default scope, so soft-deleted rows
// come back as not found
func findItem(db *gorm.DB, id string) (*model.InventoryItem, error) {
	if id == "" {
		return nil, domain.NewValidationError("No item ID provided")
	}

	var item model.InventoryItem
	if err := db.Where("id = ?", id).First(&item).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.NewNotFoundError("Item not found")
		}

		return nil, err
	}

	return &item, nil
}
