package model

import (
	"time"

	"gorm.io/gorm"
)

// Per-user name uniqueness is enforced by the use cases against live
// rows only, so a soft-deleted tag's name can be reused.
type Tag struct {
	ID        string         `gorm:"primaryKey" json:"id"`
	UserID    string         `gorm:"index;not null" json:"-"`
	Name      string         `gorm:"not null" json:"name"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
