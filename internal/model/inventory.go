package model

import (
	"time"

	"gorm.io/gorm"
)

type InventoryItem struct {
	ID             string         `gorm:"primaryKey" json:"id"`
	UserID         string         `gorm:"index;not null" json:"-"`
	ProductName    string         `gorm:"not null" json:"product_name"`
	Amount         int            `gorm:"not null" json:"amount"`
	ExpirationDate time.Time      `json:"expiration_date"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}
