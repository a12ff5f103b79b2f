package model

import (
	"time"

	"gorm.io/gorm"
)

type Reminder struct {
	ID         string         `gorm:"primaryKey" json:"id"`
	UserID     string         `gorm:"index;not null" json:"-"`
	Title      string         `gorm:"not null" json:"title"`
	Content    string         `json:"content"`
	RemindDate time.Time      `json:"remind_date"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
