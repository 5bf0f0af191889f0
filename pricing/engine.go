package pricing

import (
	"log"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/PGifts2025/Site2026-sub000/models"
)

// printPositionLabels are the print positions in display order. A product
// exposes the first MaxPrintPositions of them.
var printPositionLabels = []string{"Front", "Back", "Left Breast", "Right Breast", "Right Arm"}

// NoColourSelection is the position choice meaning "do not print here".
const NoColourSelection = "None"

// PrintPositions returns the position labels available to a product with
// the given position limit.
func PrintPositions(maxPositions int) []string {
	if maxPositions <= 0 {
		return nil
	}
	if maxPositions > len(printPositionLabels) {
		maxPositions = len(printPositionLabels)
	}
	return printPositionLabels[:maxPositions]
}

// ColourCountLabels returns the colour-count choices offered per position:
// "None" followed by "1 col" through "6 col".
func ColourCountLabels() []string {
	labels := []string{NoColourSelection}
	for i := 1; i <= 6; i++ {
		labels = append(labels, strconv.Itoa(i)+" col")
	}
	return labels
}

// ColourCountFromLabel parses a position colour-count choice into its
// numeric count. "None", blanks and unparseable labels mean no print and
// return 0.
func ColourCountFromLabel(label string) int {
	label = strings.TrimSpace(label)
	if label == "" || strings.EqualFold(label, NoColourSelection) {
		return 0
	}
	count, err := strconv.Atoi(strings.Fields(label)[0])
	if err != nil || count < 0 {
		return 0
	}
	return count
}

// PricingContext carries one configurator state snapshot into a price
// calculation. The engine never mutates it, so callers can recompute on
// every input change without side effects.
type PricingContext struct {
	Quantity         int
	SelectedColour   models.Colour
	ColourRows       []models.ColourOrderRow
	Positions        []models.PositionSelection
	CoverageType     string
	SecondPositionOn bool
}

// EffectiveQuantity returns the quantity a configuration actually prices
// at: clothing configurations use the combined subtotals of their colour
// rows when any row qualifies, everything else uses the requested quantity.
func EffectiveQuantity(product models.Product, ctx PricingContext) int {
	if product.PricingModel == models.PricingModelClothing {
		if rowQty := qualifyingQuantity(ctx.ColourRows); rowQty > 0 {
			return rowQty
		}
	}
	return ctx.Quantity
}

// ComputeEffectiveUnitPrice computes the per-unit price for a product
// configuration. It is a pure function of its arguments and never fails:
// every lookup that finds nothing degrades to a documented fallback (first
// tier, zero cost, plain tier price) so base pricing survives a missing or
// partial print-pricing catalog.
//
// A quantity under the product's minimum order is logged and still priced.
// Whether such an order may proceed is the caller's concern.
func ComputeEffectiveUnitPrice(product models.Product, ctx PricingContext, tiers []models.PricingTier, rows RowSet) decimal.Decimal {
	positions := ctx.Positions
	if product.MaxPrintPositions > 0 && len(positions) > product.MaxPrintPositions {
		positions = positions[:product.MaxPrintPositions]
	}

	quantity := EffectiveQuantity(product, ctx)
	if product.MinOrderQuantity > 0 && quantity < product.MinOrderQuantity {
		log.Printf("⚠️  Quantity %d is below the minimum order of %d for %s, pricing anyway", quantity, product.MinOrderQuantity, product.SKU)
	}

	tierPrice := ResolveTier(tiers, quantity).PricePerUnit
	if rows.Empty() {
		// No print-pricing catalog for this product. Base pricing must
		// still work, whatever the model.
		return tierPrice
	}

	switch product.PricingModel {
	case models.PricingModelCoverage:
		if row, ok := FindCoverageRow(rows, ctx.CoverageType); ok {
			return row.PricePerUnit
		}
		return tierPrice

	case models.PricingModelClothing:
		if blended, ok := ComputeClothingBlendedPrice(ctx.ColourRows, positions, rows); ok {
			return blended
		}
		return singleColourClothingPrice(ctx.SelectedColour, positions, rows, quantity)

	default:
		// Flat products, and any unrecognised model, price off the tier
		// table plus the optional second-position surcharge.
		price := tierPrice
		if product.MaxPrintPositions >= 2 && ctx.SecondPositionOn {
			price = price.Add(rows.ExtraPositionPrice())
		}
		return price
	}
}

// ComputeClothingBlendedPrice computes the quantity-weighted average unit
// price across colour rows. Each row resolves its variant from its own
// colour, so a mixed white and coloured order blends both pricing tracks.
// Garment and print lookups run at the combined order quantity: the whole
// order sets the volume bracket, never a single row's subtotal.
//
// The second return is false when no row qualifies, in which case callers
// fall back to pricing from the selected swatch alone.
func ComputeClothingBlendedPrice(colourRows []models.ColourOrderRow, positions []models.PositionSelection, rows RowSet) (decimal.Decimal, bool) {
	var qualifying []models.ColourOrderRow
	totalQty := 0
	for _, row := range colourRows {
		if rowQualifies(row) {
			qualifying = append(qualifying, row)
			totalQty += row.Subtotal()
		}
	}
	if len(qualifying) == 0 || totalQty == 0 {
		return decimal.Zero, false
	}

	weightedSum := decimal.Zero
	for _, row := range qualifying {
		variant := ClassifyVariant(row.ColourName, row.ColourCode)

		rowPrice := decimal.Zero
		if garment, ok := FindGarmentRow(rows, totalQty, variant); ok {
			rowPrice = rowPrice.Add(garment.GarmentCost)
		}
		rowPrice = rowPrice.Add(positionsPrintCost(positions, rows, totalQty, variant))

		weightedSum = weightedSum.Add(rowPrice.Mul(decimal.NewFromInt(int64(row.Subtotal()))))
	}

	return weightedSum.Div(decimal.NewFromInt(int64(totalQty))), true
}

// singleColourClothingPrice prices a clothing configuration from the
// selected swatch alone: the garment cost for the swatch's variant plus
// the print cost of every active position. Missing rows contribute zero.
func singleColourClothingPrice(colour models.Colour, positions []models.PositionSelection, rows RowSet, quantity int) decimal.Decimal {
	variant := ClassifyVariant(colour.ColourName, colour.ColourCode)

	price := decimal.Zero
	if garment, ok := FindGarmentRow(rows, quantity, variant); ok {
		price = price.Add(garment.GarmentCost)
	}
	return price.Add(positionsPrintCost(positions, rows, quantity, variant))
}

// positionsPrintCost sums per-position print costs over every position
// with an active colour-count selection.
func positionsPrintCost(positions []models.PositionSelection, rows RowSet, quantity int, variant string) decimal.Decimal {
	total := decimal.Zero
	for _, selection := range positions {
		count := ColourCountFromLabel(selection.ColourCount)
		if count == 0 {
			continue
		}
		if row, ok := FindPrintRow(rows, count, quantity, variant); ok {
			total = total.Add(row.CostPerPosition)
		}
	}
	return total
}

// qualifyingQuantity sums subtotals over the colour rows that count toward
// a blended price.
func qualifyingQuantity(rows []models.ColourOrderRow) int {
	total := 0
	for _, row := range rows {
		if rowQualifies(row) {
			total += row.Subtotal()
		}
	}
	return total
}

// rowQualifies reports whether a colour row takes part in blending: it
// needs units in some size and a colour assigned to it.
func rowQualifies(row models.ColourOrderRow) bool {
	return row.Subtotal() > 0 && (strings.TrimSpace(row.ColourCode) != "" || strings.TrimSpace(row.ColourName) != "")
}
