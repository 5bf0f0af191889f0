package models

// ArtworkFile represents one artwork image discovered in the Drive folder,
// named SKU_position.ext so it can be matched to a product
type ArtworkFile struct {
	DriveFileID   string `json:"driveFileId"`
	FileName      string `json:"fileName"`
	ProductSKU    string `json:"productSku"`
	PositionToken string `json:"positionToken"`
	Version       string `json:"version,omitempty"`
	ImageURL      string `json:"imageUrl"`
}

// ArtworkSyncResult summarises one sync run against the Drive folder
type ArtworkSyncResult struct {
	Total      int      `json:"total"`
	Matched    int      `json:"matched"`
	Downloaded int      `json:"downloaded"`
	Skipped    int      `json:"skipped"`
	Errors     []string `json:"errors,omitempty"`
}
