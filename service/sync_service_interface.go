package service

import (
	"context"

	"github.com/PGifts2025/Site2026-sub000/models"
)

// SyncServiceInterface defines the contract for artwork synchronization
type SyncServiceInterface interface {
	// SyncArtwork downloads new artwork from the Drive folder and links
	// product front images by SKU. Returns counters for the run.
	SyncArtwork(ctx context.Context, folderID string) (*models.ArtworkSyncResult, error)
}
