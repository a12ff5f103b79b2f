package inventory

import (
	"net/http"
	"time"

	"homekeep/organizer-api/internal"
	"homekeep/organizer-api/internal/authz"
	"homekeep/organizer-api/internal/domain"
	"homekeep/organizer-api/pkg/resp"
	"homekeep/organizer-api/pkg/validators"

	"github.com/gin-gonic/gin"
)

type editBody struct {
	ProductName    string    `json:"product_name" binding:"required"`
	Amount         int       `json:"amount" binding:"required"`
	ExpirationDate time.Time `json:"expiration_date" binding:"required"`
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

	if err := validators.ProductNameValidator(data.ProductName); err != nil {
		resp.Error(c, err)
		return
	}

	if err := validators.AmountValidator(data.Amount); err != nil {
		resp.Error(c, err)
		return
	}

	item, err := findItem(d.DB, c.Param("id"))
	if err != nil {
		resp.Error(c, err)
		return
	}

	if err := authz.RequireOwner(userID, item.UserID); err != nil {
		resp.Error(c, err)
		return
	}

	r := d.DB.Model(item).Updates(map[string]any{
		"product_name":    data.ProductName,
		"amount":          data.Amount,
		"expiration_date": data.ExpirationDate,
	})
	if r.Error != nil {
		resp.Error(c, r.Error)
		return
	}

	if r.RowsAffected == 0 {
		resp.Error(c, domain.NewOperationFailedError("Failed to update item"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"item":      item,
		"requestID": requestID,
	})
}
