package models

import "github.com/shopspring/decimal"

// Quote represents a saved quote header
type Quote struct {
	ID            string          `json:"id"`
	Reference     string          `json:"reference"`
	ProductID     int             `json:"productId"`
	ProductName   string          `json:"productName,omitempty"`
	ProductSKU    string          `json:"productSku,omitempty"`
	CustomerName  string          `json:"customerName,omitempty"`
	CustomerEmail string          `json:"customerEmail,omitempty"`
	PricingModel  string          `json:"pricingModel"`
	Quantity      int             `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	TotalPrice    decimal.Decimal `json:"totalPrice"`
	Currency      string          `json:"currency"`
	CoverageType  string          `json:"coverageType,omitempty"`
	BelowMinimum  bool            `json:"belowMinimumOrder"`
	CreatedAt     string          `json:"createdAt,omitempty"`
}

// QuoteLine is one colour's size breakdown persisted with a clothing quote
type QuoteLine struct {
	ID         int64  `json:"id,omitempty"`
	QuoteID    string `json:"quoteId,omitempty"`
	ColourCode string `json:"colourCode"`
	ColourName string `json:"colourName"`
	SizeS      int    `json:"sizeS"`
	SizeM      int    `json:"sizeM"`
	SizeL      int    `json:"sizeL"`
	SizeXL     int    `json:"sizeXL"`
	SizeXXL    int    `json:"sizeXXL"`
	Subtotal   int    `json:"subtotal"`
}

// QuoteDetail is a quote with its colour lines and print positions
type QuoteDetail struct {
	Quote
	Lines     []QuoteLine         `json:"lines,omitempty"`
	Positions []PositionSelection `json:"positions,omitempty"`
}

// QuoteRequest represents a configurator state submitted for pricing.
//
// Flat product example:
//
//	{
//	  "productSlug": "ceramic-mug-premium",
//	  "quantity": 75,
//	  "colourId": 3,
//	  "secondPosition": true
//	}
//
// Clothing product example:
//
//	{
//	  "productSlug": "classic-tee",
//	  "quantity": 50,
//	  "colourRows": [
//	    {"colourCode": "BLK", "colourName": "Black", "sizes": {"S": 5, "M": 10, "L": 5}},
//	    {"colourCode": "WHT", "colourName": "White", "sizes": {"M": 20, "XL": 10}}
//	  ],
//	  "positions": [
//	    {"position": "Front", "colourCount": "2 col"},
//	    {"position": "Back", "colourCount": "None"}
//	  ],
//	  "customerEmail": "buyer@example.com"
//	}
type QuoteRequest struct {
	ProductSlug    string              `json:"productSlug"`
	Quantity       int                 `json:"quantity"`
	ColourID       int                 `json:"colourId,omitempty"`
	ColourRows     []ColourOrderRow    `json:"colourRows,omitempty"`
	Positions      []PositionSelection `json:"positions,omitempty"`
	CoverageType   string              `json:"coverageType,omitempty"`
	SecondPosition bool                `json:"secondPosition,omitempty"`
	CustomerName   string              `json:"customerName,omitempty"`
	CustomerEmail  string              `json:"customerEmail,omitempty"`
}

// QuoteResponse represents the priced result returned to the configurator
type QuoteResponse struct {
	ProductID          int             `json:"productId"`
	ProductSlug        string          `json:"productSlug"`
	PricingModel       string          `json:"pricingModel"`
	Quantity           int             `json:"quantity"`
	UnitPrice          decimal.Decimal `json:"unitPrice"`
	TotalPrice         decimal.Decimal `json:"totalPrice"`
	Currency           string          `json:"currency"`
	FormattedUnitPrice string          `json:"formattedUnitPrice"`
	FormattedTotal     string          `json:"formattedTotal"`
	Tier               *PricingTier    `json:"tier,omitempty"`
	BelowMinimumOrder  bool            `json:"belowMinimumOrder"`
	MinOrderQuantity   int             `json:"minOrderQuantity,omitempty"`
}
