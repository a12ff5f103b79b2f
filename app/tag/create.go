// Package tag implements CRUD over a user's tags. Tag names are unique
// per owner; a tag may be referenced by many of the owner's notes.
package tag

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
	Name string `json:"name" binding:"required"`
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

	if err := validators.TagNameValidator(data.Name); err != nil {
		resp.Error(c, err)
		return
	}

	if err := nameTaken(d, userID, data.Name, ""); err != nil {
		resp.Error(c, err)
		return
	}

	tag := model.Tag{
		ID:     domain.GenerateUuid().String(),
		UserID: userID,
		Name:   data.Name,
	}

	if err := d.DB.Create(&tag).Error; err != nil {
		resp.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"tag":       tag,
		"requestID": requestID,
	})
}

// nameTaken fails with already-exists when another tag of the same user
// carries this name. excludeID skips the tag being renamed.
func nameTaken(d *internal.Deps, userID, name, excludeID string) error {
	q := d.DB.Model(model.Tag{}).
		Where("user_id = ? AND name = ?", userID, name)

	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}

	var found bool
	if err := q.Select("count(*) > 0").Find(&found).Error; err != nil {
		return err
	}

	if found {
		return domain.NewAlreadyExistsError("You already have a tag with this name")
	}

	return nil
}
