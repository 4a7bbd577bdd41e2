package database

import (
	"fmt"

	"github.com/Arnobrizwan/intellinote-app/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates the users, notes and tags relations (plus the note_tags
// join table gorm derives from the many2many association).
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.User{}, &models.Note{}, &models.Tag{}); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}
