package db

import (
	"fmt"
	"log"

	"github.com/pressly/goose/v3"
)

// migrationsDir is the directory holding goose migration files, relative to
// the working directory the server starts in.
const migrationsDir = "db/migrations"

// RunMigrations applies pending goose migrations against the open
// connection. InitDB must have been called first.
func RunMigrations() error {
	if DB == nil {
		return fmt.Errorf("database not initialized")
	}

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.Up(DB, migrationsDir); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	log.Printf("✓ Database migrations applied")
	return nil
}
