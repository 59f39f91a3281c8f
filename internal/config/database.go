package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the process-wide database handle from environment
// variables. The handle is returned rather than stashed in a package
// variable so tests can run against their own database.
func Connect() (*gorm.DB, error) {
	// Load .env if present; plain env vars otherwise.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found - relying on env vars")
	}

	host := getEnv("DATABASE_HOST", "localhost")
	port := getEnv("DATABASE_PORT", "5432")
	user := getEnv("DATABASE_USERNAME", "postgres")
	password := getEnv("DATABASE_PASSWORD", "password")
	dbname := getEnv("DATABASE_NAME", "testdatabase")
	sslmode := getEnv("DB_SSLMODE", "disable")
	timezone := getEnv("DB_TIMEZONE", "UTC")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		host, user, password, dbname, port, sslmode, timezone,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// ServerAddr returns the listen address for the HTTP server.
func ServerAddr() string {
	return "0.0.0.0:" + getEnv("PORT", "4000")
}

// getEnv reads an environment variable or returns the provided default
func getEnv(key, defaultValue string) string {
	if v, exists := os.LookupEnv(key); exists {
		return v
	}
	return defaultValue
}
