package config

import (
	"log"
	"os"
	"strings"
)

// Config holds process configuration read from the environment. Database
// connection settings live in the db package, which reads them itself.
type Config struct {
	Port          string
	BaseURL       string
	Env           string
	StaticDir     string
	DriveCredFile string
	DriveFolderID string
	RunMigrations bool
	RunSeed       bool
}

// Load reads configuration from the environment, applying defaults for
// anything unset.
func Load() Config {
	cfg := Config{
		Port:          getenv("PORT", "8080"),
		BaseURL:       strings.TrimSpace(os.Getenv("BASE_URL")),
		Env:           getenv("ENV", "development"),
		StaticDir:     getenv("STATIC_DIR", "static"),
		DriveCredFile: strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")),
		DriveFolderID: strings.TrimSpace(os.Getenv("GOOGLE_DRIVE_FOLDER_ID")),
		RunMigrations: getenvBool("RUN_MIGRATIONS", true),
		RunSeed:       getenvBool("RUN_SEED", true),
	}

	cfg.Port = strings.TrimPrefix(cfg.Port, ":")
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:" + cfg.Port
		log.Printf("BASE_URL is not set, defaulting to %s", cfg.BaseURL)
	}
	if cfg.DriveCredFile == "" {
		log.Printf("GOOGLE_APPLICATION_CREDENTIALS is not set, artwork sync from Drive is disabled")
	}

	return cfg
}

// IsDev reports whether the process runs outside production.
func (c Config) IsDev() bool {
	return c.Env != "production"
}

func getenv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func getenvBool(key string, fallback bool) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}
