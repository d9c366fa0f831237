package config

import (
	"os"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitDB opens the sqlite database file. DB_PATH lets the same binary point
// at a different file; the default matches the restaurant.db the dashboard
// has always used.
func InitDB() (*gorm.DB, error) {
	path := os.Getenv("DB_PATH")
	if path == "" {
		path = "restaurant.db"
	}

	return gorm.Open(sqlite.Open(path), &gorm.Config{})
}
