package database

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"mba-copilot-backend/pkg/config"
)

// NewPostgresConnection opens a GORM connection using the configured DSN
func NewPostgresConnection(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return db, nil
}
