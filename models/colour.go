package models

// Colour represents one swatch a product can be ordered in
type Colour struct {
	ID         int    `json:"id"`
	ProductID  int    `json:"productId,omitempty"`
	ColourCode string `json:"colourCode"`
	ColourName string `json:"colourName"`
	HexValue   string `json:"hexValue,omitempty"`
	SortOrder  int    `json:"sortOrder"`
}
