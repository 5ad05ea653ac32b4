package database

import (
	"fmt"

	"kitra-backend/pkg/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewPostgresConnection opens the shared GORM connection pool described by
// the config. Schemas are managed outside this service, so no migration
// runs here.
func NewPostgresConnection(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort, cfg.DBSSLMode)

	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}
