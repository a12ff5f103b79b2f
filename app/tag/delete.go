package tag

import (
	"net/http"

	"homekeep/organizer-api/internal"
	"homekeep/organizer-api/internal/authz"
	"homekeep/organizer-api/internal/domain"
	"homekeep/organizer-api/internal/model"
	"homekeep/organizer-api/pkg/resp"

	"github.com/gin-gonic/gin"
)

func Delete(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	tag, err := findTag(d.DB, c.Param("id"))
	if err != nil {
		resp.Error(c, err)
		return
	}

	if err := authz.RequireOwner(userID, tag.UserID); err != nil {
		resp.Error(c, err)
		return
	}

	r := d.DB.Delete(&model.Tag{}, "id = ?", tag.ID)
	if r.Error != nil {
		resp.Error(c, r.Error)
		return
	}

	if r.RowsAffected == 0 {
		resp.Error(c, domain.NewOperationFailedError("Failed to delete tag"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Tag deleted",
		"requestID": requestID,
	})
}
