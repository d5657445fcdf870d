package config

import (
	"fmt"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func buildDSN() string {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		return dsn
	}

	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=Asia/Kolkata",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		sslMode(),
	)
}

func sslMode() string {
	if os.Getenv("ENV") == "prod" {
		return "require"
	}
	return "disable"
}

// ConnectDB opens the Postgres pool. The returned handle is passed down to
// routes and controllers; nothing reads it from package state.
func ConnectDB() (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(buildDSN()), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}
	return db, nil
}
