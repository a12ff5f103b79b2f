package model

import (
	"time"

	"gorm.io/gorm"
)

// Per-user title uniqueness is enforced by the use cases against live
// rows only, so a soft-deleted note's title can be reused.
type Note struct {
	ID        string         `gorm:"primaryKey" json:"id"`
	UserID    string         `gorm:"index;not null" json:"-"`
	Title     string         `gorm:"not null" json:"title"`
	Content   string         `gorm:"not null" json:"content"`
	Tags      []Tag          `gorm:"many2many:note_tags" json:"tags"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
