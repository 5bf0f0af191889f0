package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/PGifts2025/Site2026-sub000/models"
	"github.com/PGifts2025/Site2026-sub000/repository"
)

// SyncService synchronizes artwork from Google Drive into the local static
// directory and points catalog products at their images
// Implements SyncServiceInterface
type SyncService struct {
	driveService DriveServiceInterface
	catalogRepo  repository.CatalogRepositoryInterface
	staticDir    string
}

// NewSyncService creates a new SyncService
func NewSyncService(driveService DriveServiceInterface, catalogRepo repository.CatalogRepositoryInterface, staticDir string) *SyncService {
	return &SyncService{
		driveService: driveService,
		catalogRepo:  catalogRepo,
		staticDir:    staticDir,
	}
}

// Ensure SyncService implements SyncServiceInterface
var _ SyncServiceInterface = (*SyncService)(nil)

// SyncArtwork downloads artwork files from the Drive folder into
// <staticDir>/artwork and records each product's front image. Files
// already present locally are skipped, so re-running the sync is cheap.
func (s *SyncService) SyncArtwork(ctx context.Context, folderID string) (*models.ArtworkSyncResult, error) {
	log.Printf("🔄 Starting artwork sync for folder: %s", folderID)

	files, err := s.driveService.ListArtworkFiles(folderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list artwork files from Drive: %w", err)
	}

	result := &models.ArtworkSyncResult{Total: len(files)}
	log.Printf("📦 Processing %d artwork files from Google Drive", len(files))

	targetDir := filepath.Join(s.staticDir, "artwork")
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create artwork directory: %w", err)
	}

	for _, file := range files {
		localName := localArtworkName(file)
		localPath := filepath.Join(targetDir, localName)

		if _, err := os.Stat(localPath); err == nil {
			log.Printf("⏭️  Skipping %s (already downloaded)", file.FileName)
			result.Skipped++
			continue
		}

		log.Printf("🆕 New artwork detected: %s (drive_file_id: %s)", file.FileName, file.DriveFileID)
		if err := s.downloadTo(file.DriveFileID, localPath); err != nil {
			log.Printf("❌ Error downloading %s: %v", file.FileName, err)
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", file.FileName, err))
			continue
		}
		result.Downloaded++
		log.Printf("💾 Saved %s", localName)

		// The front image doubles as the product card image.
		if file.PositionToken == "front" {
			matched, err := s.catalogRepo.UpdateProductImage(ctx, file.ProductSKU, "artwork/"+localName)
			if err != nil {
				log.Printf("❌ Error updating product image for %s: %v", file.ProductSKU, err)
				result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", file.ProductSKU, err))
				continue
			}
			if matched {
				result.Matched++
				log.Printf("✅ Product %s now uses %s", file.ProductSKU, localName)
			} else {
				log.Printf("⚠️  No product found for SKU %s, artwork downloaded but unlinked", file.ProductSKU)
			}
		}
	}

	log.Printf("🎉 Artwork sync completed: %d downloaded, %d skipped, %d matched, %d errors (%d total)",
		result.Downloaded, result.Skipped, result.Matched, len(result.Errors), result.Total)
	return result, nil
}

// downloadTo streams one Drive file to disk.
func (s *SyncService) downloadTo(fileID, localPath string) error {
	reader, err := s.driveService.DownloadFile(fileID)
	if err != nil {
		return err
	}
	defer reader.Close()

	out, err := os.Create(localPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", localPath, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, reader); err != nil {
		return fmt.Errorf("failed to write %s: %w", localPath, err)
	}
	return nil
}

// localArtworkName builds the canonical on-disk name for an artwork file:
// SKU_position[_version] with the original extension lowercased.
func localArtworkName(file models.ArtworkFile) string {
	ext := strings.ToLower(filepath.Ext(file.FileName))
	switch ext {
	case ".jpeg":
		ext = ".jpg"
	case "":
		ext = ".png"
	}

	name := file.ProductSKU + "_" + file.PositionToken
	if file.Version != "" {
		name += "_" + file.Version
	}
	return name + ext
}
