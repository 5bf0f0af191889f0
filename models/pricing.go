package models

import "github.com/shopspring/decimal"

// SizeLabels is the fixed size range a clothing product can be ordered in,
// in display order.
var SizeLabels = []string{"S", "M", "L", "XL", "XXL"}

// PricingTier is one quantity bracket of a product's volume-discount table.
// Tiers are stored sorted ascending by MinQuantity with non-overlapping
// brackets; a nil MaxQuantity marks the open-ended top bracket.
type PricingTier struct {
	ID           int             `json:"id,omitempty"`
	ProductID    int             `json:"productId,omitempty"`
	MinQuantity  int             `json:"minQuantity"`
	MaxQuantity  *int            `json:"maxQuantity"`
	PricePerUnit decimal.Decimal `json:"pricePerUnit"`
	IsPopular    bool            `json:"isPopular"`
}

// PrintPricingRow is one raw print-pricing record as stored. A single table
// holds garment-cost, print-cost, coverage and extra-position records; the
// combination of non-null columns tells them apart.
type PrintPricingRow struct {
	ID                   int              `json:"id,omitempty"`
	ProductID            int              `json:"productId,omitempty"`
	ColourVariant        string           `json:"colourVariant,omitempty"`
	ColourCount          *int             `json:"colourCount,omitempty"`
	PrintCostPerPosition *decimal.Decimal `json:"printCostPerPosition,omitempty"`
	GarmentCost          *decimal.Decimal `json:"garmentCost,omitempty"`
	MinQuantity          *int             `json:"minQuantity,omitempty"`
	MaxQuantity          *int             `json:"maxQuantity,omitempty"`
	ExtraPositionPrice   *decimal.Decimal `json:"extraPositionPrice,omitempty"`
	CoverageType         *string          `json:"coverageType,omitempty"`
	CoveragePricePerUnit *decimal.Decimal `json:"coveragePricePerUnit,omitempty"`
}

// ColourOrderRow is one colour's quantities across the size range in a
// clothing order. A mixed-colour order carries several rows.
type ColourOrderRow struct {
	ColourCode string         `json:"colourCode"`
	ColourName string         `json:"colourName"`
	Sizes      map[string]int `json:"sizes"`
}

// Subtotal returns the total units in the row across all sizes.
func (r ColourOrderRow) Subtotal() int {
	total := 0
	for _, qty := range r.Sizes {
		total += qty
	}
	return total
}

// PositionSelection maps a print position label to the colour-count choice
// made for it ("None", or "1 col" through "6 col").
type PositionSelection struct {
	Position    string `json:"position"`
	ColourCount string `json:"colourCount"`
}
