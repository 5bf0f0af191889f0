package service

import (
	"io"

	"github.com/PGifts2025/Site2026-sub000/models"
)

// DriveServiceInterface defines the contract for Google Drive operations
type DriveServiceInterface interface {
	ListArtworkFiles(folderID string) ([]models.ArtworkFile, error)
	DownloadFile(fileID string) (io.ReadCloser, error)
}

// Ensure DriveService implements DriveServiceInterface
var _ DriveServiceInterface = (*DriveService)(nil)
