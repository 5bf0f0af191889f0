package models

// Pricing models supported by the quote engine. The model stored on a
// product selects which calculation strategy prices it.
const (
	PricingModelFlat     = "flat"
	PricingModelClothing = "clothing"
	PricingModelCoverage = "coverage"
)

// Product represents a customisable product in the catalog
type Product struct {
	ID                int    `json:"id"`
	CategoryID        int    `json:"categoryId"`
	SKU               string `json:"sku"`
	Name              string `json:"name"`
	Slug              string `json:"slug"`
	Description       string `json:"description,omitempty"`
	PricingModel      string `json:"pricingModel"`
	MinOrderQuantity  int    `json:"minOrderQuantity"`
	MaxPrintPositions int    `json:"maxPrintPositions"`
	LeadTimeDays      int    `json:"leadTimeDays,omitempty"`
	ImagePath         string `json:"imagePath,omitempty"`
	IsActive          bool   `json:"isActive"`
	CreatedAt         string `json:"createdAt,omitempty"`
	UpdatedAt         string `json:"updatedAt,omitempty"`
}

// ProductDetail bundles a product with everything the configurator needs
// to render and price it
type ProductDetail struct {
	Product        Product           `json:"product"`
	Colours        []Colour          `json:"colours"`
	PricingTiers   []PricingTier     `json:"pricingTiers"`
	PrintPricing   []PrintPricingRow `json:"printPricing"`
	PrintPositions []string          `json:"printPositions"`
}

// CreateProductRequest represents the payload to create a product from the
// Product Manager
type CreateProductRequest struct {
	CategoryID        int    `json:"categoryId"`
	SKU               string `json:"sku"`
	Name              string `json:"name"`
	Slug              string `json:"slug,omitempty"`
	Description       string `json:"description"`
	PricingModel      string `json:"pricingModel"`
	MinOrderQuantity  int    `json:"minOrderQuantity"`
	MaxPrintPositions int    `json:"maxPrintPositions"`
	LeadTimeDays      int    `json:"leadTimeDays"`
}

// UpdateProductRequest represents the payload to update a product from the
// Product Manager. Nil fields are left untouched.
type UpdateProductRequest struct {
	CategoryID        *int    `json:"categoryId,omitempty"`
	Name              *string `json:"name,omitempty"`
	Description       *string `json:"description,omitempty"`
	PricingModel      *string `json:"pricingModel,omitempty"`
	MinOrderQuantity  *int    `json:"minOrderQuantity,omitempty"`
	MaxPrintPositions *int    `json:"maxPrintPositions,omitempty"`
	LeadTimeDays      *int    `json:"leadTimeDays,omitempty"`
	IsActive          *bool   `json:"isActive,omitempty"`
}
