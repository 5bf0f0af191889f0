package controller

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/PGifts2025/Site2026-sub000/service"
)

// AssetController handles artwork synchronization requests
type AssetController struct {
	syncService service.SyncServiceInterface
	folderID    string
}

// NewAssetController creates a new AssetController. The sync service is nil
// when Google Drive credentials are not configured.
func NewAssetController(syncService service.SyncServiceInterface, folderID string) *AssetController {
	return &AssetController{
		syncService: syncService,
		folderID:    folderID,
	}
}

// SyncArtwork handles POST /admin/assets/sync
// Pulls artwork files from the shared Google Drive folder, stores them under
// the static directory and attaches front artwork to matching products
func (c *AssetController) SyncArtwork(w http.ResponseWriter, r *http.Request) {
	if c.syncService == nil {
		log.Printf("⚠️  SyncArtwork: Google Drive is not configured")
		http.Error(w, "Google Drive is not configured. Set GOOGLE_APPLICATION_CREDENTIALS to enable artwork sync", http.StatusServiceUnavailable)
		return
	}

	if c.folderID == "" {
		http.Error(w, "GOOGLE_DRIVE_FOLDER_ID environment variable is not set", http.StatusInternalServerError)
		return
	}

	log.Printf("📥 Artwork sync requested for folder: %s", c.folderID)

	result, err := c.syncService.SyncArtwork(r.Context(), c.folderID)
	if err != nil {
		log.Printf("❌ Artwork sync failed: %v", err)
		http.Error(w, fmt.Sprintf("Failed to sync artwork: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		log.Printf("❌ SyncArtwork: Error encoding response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}

	log.Printf("✅ Artwork sync completed: %d/%d files downloaded", result.Downloaded, result.Total)
}
