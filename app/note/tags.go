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

type addTagsBody struct {
	TagIDs []string `json:"tag_ids" binding:"required"`
}

// AddTags links existing tags to a note. The ownership of every tag is
// checked, and all links land in one transaction with the note's
// updated_at bump so a crash can't leave the note half-tagged.
func AddTags(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	var data addTagsBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})
		return
	}

	if len(data.TagIDs) == 0 {
		resp.Error(c, domain.NewValidationError("No tag IDs provided"))
		return
	}

	note, err := findNote(d.DB, c.Param("id"))
	if err != nil {
		resp.Error(c, err)
		return
	}

	if err := authz.RequireOwner(userID, note.UserID); err != nil {
		resp.Error(c, err)
		return
	}

	err = d.DB.Transaction(func(tx *gorm.DB) error {
		for _, tagID := range data.TagIDs {
			var tag model.Tag
			if err := tx.Where("id = ?", tagID).First(&tag).Error; err != nil {
				if err == gorm.ErrRecordNotFound {
					return domain.NewNotFoundError("Tag not found")
				}

				return err
			}

			if err := authz.RequireOwner(userID, tag.UserID); err != nil {
				return err
			}

			if err := tx.Model(note).Association("Tags").Append(&tag); err != nil {
				return err
			}
		}

		return tx.Model(&model.Note{}).
			Where("id = ?", note.ID).
			Update("updated_at", tx.NowFunc()).
			Error
	})
	if err != nil {
		resp.Error(c, err)
		return
	}

	updated, err := findNote(d.DB, note.ID)
	if err != nil {
		resp.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"note":      updated,
		"requestID": requestID,
	})
}

// RemoveTag unlinks a single tag from a note. Unlinking a tag that was
// never linked is a no-op.
func RemoveTag(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	note, err := findNote(d.DB, c.Param("id"))
	if err != nil {
		resp.Error(c, err)
		return
	}

	if err := authz.RequireOwner(userID, note.UserID); err != nil {
		resp.Error(c, err)
		return
	}

	tagID := c.Param("tagID")

	err = d.DB.Transaction(func(tx *gorm.DB) error {
		var tag model.Tag
		if err := tx.Where("id = ?", tagID).First(&tag).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return domain.NewNotFoundError("Tag not found")
			}

			return err
		}

		if err := authz.RequireOwner(userID, tag.UserID); err != nil {
			return err
		}

		if err := tx.Model(note).Association("Tags").Delete(&tag); err != nil {
			return err
		}

		return tx.Model(&model.Note{}).
			Where("id = ?", note.ID).
			Update("updated_at", tx.NowFunc()).
			Error
	})
	if err != nil {
		resp.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Tag removed",
		"requestID": requestID,
	})
}
