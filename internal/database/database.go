// Package database owns the gorm connection and the generic repository
// used by the vocabulary and users sub-packages.
package database

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/cnlearn/cnlearn/internal/entities"
)

type Database struct {
	DB *gorm.DB
}

func NewDatabase(dbPath string) (*Database, error) {
	return open(dbPath, logger.Default.LogMode(logger.Warn))
}

// NewSilentDatabase opens a database with the gorm logger silenced.
// Used by tests to keep output readable.
func NewSilentDatabase(dbPath string) (*Database, error) {
	return open(dbPath, logger.Default.LogMode(logger.Silent))
}

func open(dbPath string, gormLogger logger.Interface) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// The join table model must be registered before migration so the
	// word_characters table gets the bare composite primary key instead
	// of gorm's generated layout.
	if err := db.SetupJoinTable(&entities.Word{}, "Characters", &entities.WordCharacter{}); err != nil {
		return nil, fmt.Errorf("failed to set up join table: %w", err)
	}
	if err := db.SetupJoinTable(&entities.Character{}, "Words", &entities.WordCharacter{}); err != nil {
		return nil, fmt.Errorf("failed to set up join table: %w", err)
	}

	err = db.AutoMigrate(
		&entities.Word{},
		&entities.Character{},
		&entities.User{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Database{DB: db}, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
