package tag

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
	Name string `json:"name" binding:"required"`
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

	if err := validators.TagNameValidator(data.Name); err != nil {
		resp.Error(c, err)
		return
	}

	tag, err := findTag(d.DB, c.Param("id"))
	if err != nil {
		resp.Error(c, err)
		return
	}

	if err := authz.RequireOwner(userID, tag.UserID); err != nil {
		resp.Error(c, err)
		return
	}

	if err := nameTaken(d, userID, data.Name, tag.ID); err != nil {
		resp.Error(c, err)
		return
	}

	r := d.DB.Model(&model.Tag{}).
		Where("id = ?", tag.ID).
		Update("name", data.Name)
	if r.Error != nil {
		resp.Error(c, r.Error)
		return
	}

	if r.RowsAffected == 0 {
		resp.Error(c, domain.NewOperationFailedError("Failed to update tag"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Tag updated",
		"requestID": requestID,
	})
}
