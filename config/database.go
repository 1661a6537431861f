package config

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ConnectDB opens the Postgres connection used by the database-backed
// catalog store. Only called when DB_URL is configured; the default
// deployment runs on the flat-file store with no database at all.
func ConnectDB(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}
