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

func Fetch(c *gin.Context, d *internal.Deps) {
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

	c.JSON(http.StatusOK, gin.H{
		"note":      note,
		"requestID": requestID,
	})
}

func findNote(db *gorm.DB, id string) (*model.Note, error) {
	if id == "" {
		return nil, domain.NewValidationError("No note ID provided")
	}

	var note model.Note
	if err := db.Preload("Tags").Where("id = ?", id).First(&note).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.NewNotFoundError("Note not found")
		}

		return nil, err
	}

	return &note, nil
}
