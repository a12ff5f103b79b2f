// Package db opens the relational store and keeps the schema current
package db

import (
	"fmt"

	"homekeep/organizer-api/internal/model"

	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// New opens the database selected by db.driver and migrates all tables
func New() (*gorm.DB, error) {
	dsn := viper.GetString("db.dsn")

	var dialector gorm.Dialector
	switch viper.GetString("db.driver") {
	case "postgres":
		dialector = postgres.Open(dsn)
	default:
		dialector = sqlite.Open(dsn)
	}

	db, err := gorm.Open(dialector)
	if err != nil {
		return nil, fmt.Errorf("failed to open database, %w", err)
	}

	err = db.AutoMigrate(
		model.User{},
		model.InventoryItem{},
		model.Note{},
		model.Tag{},
		model.Reminder{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to automigrate tables, %w", err)
	}

	return db, nil
}
