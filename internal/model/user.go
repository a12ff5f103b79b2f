// Package model defines database models
package model

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID           string `gorm:"primaryKey"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	FirstName    string
	LastName     string
	BirthDate    time.Time
	Phone        string
	Verified     bool `gorm:"default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`

	InventoryItems []InventoryItem `gorm:"foreignKey:UserID"`
	Notes          []Note          `gorm:"foreignKey:UserID"`
	Tags           []Tag           `gorm:"foreignKey:UserID"`
	Reminders      []Reminder      `gorm:"foreignKey:UserID"`
}
