package note

import (
	"net/http"

	"homekeep/organizer-api/internal"
	"homekeep/organizer-api/internal/authz"
	"homekeep/organizer-api/internal/domain"
	"homekeep/organizer-api/internal/model"
	"homekeep/organizer-api/pkg/resp"
	"homekeep/organizer-api/pkg/validators"

	"github.com/gin-gonic/gin"
)

type editBody struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
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

	if err := validators.NoteTitleValidator(data.Title); err != nil {
		resp.Error(c, err)
		return
	}

	if err := validators.NoteContentValidator(data.Content); err != nil {
		resp.Error(c, err)
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

	if data.Title != note.Title {
		var found bool
		r := d.DB.Model(model.Note{}).
			Select("count(*) > 0").
			Where("user_id = ? AND title = ? AND id <> ?", userID, data.Title, note.ID).
			Find(&found)
		if r.Error != nil {
			resp.Error(c, r.Error)
			return
		}

		if found {
			resp.Error(c, domain.NewAlreadyExistsError("You already have a note with this title"))
			return
		}
	}

	r := d.DB.Model(&model.Note{}).
		Where("id = ?", note.ID).
		Updates(map[string]any{
			"title":   data.Title,
			"content": data.Content,
		})
	if r.Error != nil {
		resp.Error(c, r.Error)
		return
	}

	if r.RowsAffected == 0 {
		resp.Error(c, domain.NewOperationFailedError("Failed to update note"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Note updated",
		"requestID": requestID,
	})
}
