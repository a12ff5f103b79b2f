// Package note implements CRUD over notes plus their tag links.
// Note titles are unique per owner, and tag links are persisted in the
// same transaction as the note they belong to.
package note

import (
	"net/http"

	"homekeep/organizer-api/internal"
	"homekeep/organizer-api/internal/domain"
	"homekeep/organizer-api/internal/model"
	"homekeep/organizer-api/pkg/resp"
	"homekeep/organizer-api/pkg/validators"

	"github.com/gin-gonic/gin"
)

type createBody struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
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

	if err := validators.NoteTitleValidator(data.Title); err != nil {
		resp.Error(c, err)
		return
	}

	if err := validators.NoteContentValidator(data.Content); err != nil {
		resp.Error(c, err)
		return
	}

	var found bool
	r := d.DB.Model(model.Note{}).
		Select("count(*) > 0").
		Where("user_id = ? AND title = ?", userID, data.Title).
		Find(&found)
	if r.Error != nil {
		resp.Error(c, r.Error)
		return
	}

	if found {
		resp.Error(c, domain.NewAlreadyExistsError("You already have a note with this title"))
		return
	}

	note := model.Note{
		ID:      domain.GenerateUuid().String(),
		UserID:  userID,
		Title:   data.Title,
		Content: data.Content,
	}

	if err := d.DB.Create(&note).Error; err != nil {
		resp.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"note":      note,
		"requestID": requestID,
	})
}
