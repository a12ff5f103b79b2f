// Package inventory implements CRUD over a user's inventory items.
// Every operation past creation is owner-only.
package inventory

import (
	"net/http"
	"time"

	"homekeep/organizer-api/internal"
	"homekeep/organizer-api/internal/domain"
	"homekeep/organizer-api/internal/model"
	"homekeep/organizer-api/pkg/resp"
	"homekeep/organizer-api/pkg/validators"

	"github.com/gin-gonic/gin"
)

type createBody struct {
	ProductName    string    `json:"product_name" binding:"required"`
	Amount         int       `json:"amount" binding:"required"`
	ExpirationDate time.Time `json:"expiration_date" binding:"required"`
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

	if err := validators.ProductNameValidator(data.ProductName); err != nil {
		resp.Error(c, err)
		return
	}

	if err := validators.AmountValidator(data.Amount); err != nil {
		resp.Error(c, err)
		return
	}

	item := model.InventoryItem{
		ID:             domain.GenerateUuid().String(),
		UserID:         userID,
		ProductName:    data.ProductName,
		Amount:         data.Amount,
		ExpirationDate: data.ExpirationDate,
	}

	if err := d.DB.Create(&item).Error; err != nil {
		resp.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"item":      item,
		"requestID": requestID,
	})
}
