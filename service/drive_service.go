package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"github.com/PGifts2025/Site2026-sub000/models"
	"github.com/PGifts2025/Site2026-sub000/utils"
)

// DriveService handles Google Drive API operations
type DriveService struct {
	client *drive.Service
}

// NewDriveService creates a new DriveService instance
// credentialsPath should be the path to the Service Account JSON file
func NewDriveService(credentialsPath string) (*DriveService, error) {
	ctx := context.Background()

	// option.WithCredentialsFile handles Service Account authentication
	driveService, err := drive.NewService(ctx, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}

	return &DriveService{
		client: driveService,
	}, nil
}

// ListArtworkFiles lists all image files in a Google Drive folder and
// parses their names into product SKU and print position. Files that do
// not follow the SKU_position naming are skipped with a warning.
func (ds *DriveService) ListArtworkFiles(folderID string) ([]models.ArtworkFile, error) {
	query := fmt.Sprintf("'%s' in parents and trashed=false", folderID)

	var allFiles []*drive.File
	pageToken := ""
	for {
		call := ds.client.Files.List().
			Q(query).
			Fields("nextPageToken, files(id, name, mimeType)")

		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		r, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("failed to list files: %w", err)
		}

		allFiles = append(allFiles, r.Files...)
		pageToken = r.NextPageToken

		if pageToken == "" {
			break
		}
	}

	imageMimeTypes := map[string]bool{
		"image/png":  true,
		"image/jpeg": true,
		"image/jpg":  true,
		"image/webp": true,
	}

	var artworkFiles []models.ArtworkFile
	for _, file := range allFiles {
		if !imageMimeTypes[strings.ToLower(file.MimeType)] {
			continue
		}

		parsed, err := utils.ParseArtworkFileName(file.Name)
		if err != nil {
			log.Printf("warning: failed to parse artwork file name %s: %v", file.Name, err)
			continue // Skip files that don't match the pattern
		}

		artworkFiles = append(artworkFiles, models.ArtworkFile{
			DriveFileID:   file.Id,
			FileName:      file.Name,
			ProductSKU:    parsed.ProductSKU,
			PositionToken: parsed.PositionToken,
			Version:       parsed.Version,
			ImageURL:      fmt.Sprintf("https://drive.google.com/uc?id=%s", file.Id),
		})
	}

	return artworkFiles, nil
}

// DownloadFile streams the content of a Drive file. The caller must close
// the returned reader.
func (ds *DriveService) DownloadFile(fileID string) (io.ReadCloser, error) {
	resp, err := ds.client.Files.Get(fileID).Download()
	if err != nil {
		return nil, fmt.Errorf("failed to download file %s: %w", fileID, err)
	}
	return resp.Body, nil
}
