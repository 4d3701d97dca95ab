package database

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/dmaia/taskboard/internal/models"
)

// AutoMigrate applies the schema for every persistent entity. Ordering
// matters for foreign key creation: referenced tables first.
func AutoMigrate(db *gorm.DB) error {
	if db == nil {
		return errors.New("nil database handle")
	}

	return db.AutoMigrate(
		&models.User{},
		&models.Team{},
		&models.TeamMember{},
		&models.Project{},
		&models.Task{},
		&models.Comment{},
	)
}

// Migrate is the start-up convenience wrapper around AutoMigrate.
func Migrate(db *gorm.DB) error {
	if err := AutoMigrate(db); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
