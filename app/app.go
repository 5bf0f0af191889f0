package app

import (
	"fmt"
	"log"
	"net/http"

	"github.com/PGifts2025/Site2026-sub000/app/controller"
	"github.com/PGifts2025/Site2026-sub000/app/router"
	"github.com/PGifts2025/Site2026-sub000/config"
	"github.com/PGifts2025/Site2026-sub000/db"
	"github.com/PGifts2025/Site2026-sub000/repository"
	"github.com/PGifts2025/Site2026-sub000/service"
)

// Initialize wires the application together and returns the root handler
func Initialize(cfg config.Config) (http.Handler, error) {
	// Initialize database connection
	if err := db.InitDB(); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if cfg.RunMigrations {
		if err := db.RunMigrations(); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	if cfg.RunSeed {
		stats, err := db.RunSeed()
		if err != nil {
			return nil, fmt.Errorf("failed to seed catalog: %w", err)
		}
		if stats.Products > 0 {
			log.Printf("🌱 Seeded %d demo products (%d already present)", stats.Products, stats.Skipped)
		}
	}

	if err := service.EnsureCacheDir(); err != nil {
		return nil, fmt.Errorf("failed to prepare image cache: %w", err)
	}

	// Initialize repositories
	catalogRepo := repository.NewCatalogRepository()
	quoteRepo := repository.NewQuoteRepository()

	// Initialize services
	quoteService := service.NewQuoteService(catalogRepo, quoteRepo)
	exportService := service.NewExportService(quoteRepo, cfg.BaseURL)

	// Artwork sync needs Drive credentials. Without them the app still
	// runs; the sync endpoint reports the integration as unavailable.
	var syncService service.SyncServiceInterface
	if cfg.DriveCredFile != "" {
		driveService, err := service.NewDriveService(cfg.DriveCredFile)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Drive service: %w", err)
		}
		syncService = service.NewSyncService(driveService, catalogRepo, cfg.StaticDir)
	} else {
		log.Printf("⚠️  Artwork sync disabled: GOOGLE_APPLICATION_CREDENTIALS is not set")
	}

	// Create controllers
	controllers := &router.Controllers{
		Product:      controller.NewProductController(catalogRepo, cfg.StaticDir),
		Quote:        controller.NewQuoteController(quoteService, exportService, quoteRepo),
		AdminProduct: controller.NewAdminProductController(catalogRepo),
		Asset:        controller.NewAssetController(syncService, cfg.DriveFolderID),
	}

	return router.SetupRoutes(controllers, cfg.StaticDir), nil
}
