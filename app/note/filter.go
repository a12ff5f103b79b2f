package note

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

// FilterByTag returns the requester's notes linked to the given tag
func FilterByTag(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	tagID := c.Query("tag_id")
	if tagID == "" {
		resp.Error(c, domain.NewValidationError("No tag ID provided"))
		return
	}

	var tag model.Tag
	if err := d.DB.Where("id = ?", tagID).First(&tag).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			resp.Error(c, domain.NewNotFoundError("Tag not found"))
			return
		}

		resp.Error(c, err)
		return
	}

	if err := authz.RequireOwner(userID, tag.UserID); err != nil {
		resp.Error(c, err)
		return
	}

	notes := []model.Note{}

	err := d.DB.
		Preload("Tags").
		Joins("JOIN note_tags ON note_tags.note_id = notes.id").
		Where("note_tags.tag_id = ? AND notes.user_id = ?", tagID, userID).
		Order("notes.created_at desc").
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
