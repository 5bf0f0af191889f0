package pricing

import (
	"log"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/PGifts2025/Site2026-sub000/models"
)

// Colour variants known to print pricing. Garments printed on white stock
// price differently from garments printed on coloured stock; there is no
// finer distinction.
const (
	VariantWhite    = "white"
	VariantColoured = "coloured"
)

// ClassifyVariant maps a colour to its pricing variant. A colour is "white"
// only when its name or code equals "white" ignoring case; everything else,
// naturals and heathers included, prices as "coloured".
func ClassifyVariant(colourName, colourCode string) string {
	if strings.EqualFold(strings.TrimSpace(colourName), VariantWhite) {
		return VariantWhite
	}
	if strings.EqualFold(strings.TrimSpace(colourCode), VariantWhite) {
		return VariantWhite
	}
	return VariantColoured
}

// GarmentCostRow is a garment base-cost record for one variant and
// quantity bracket.
type GarmentCostRow struct {
	Variant     string
	MinQuantity *int
	MaxQuantity *int
	GarmentCost decimal.Decimal
}

// PrintCostRow is a per-position print-cost record for one variant, colour
// count and quantity bracket.
type PrintCostRow struct {
	Variant         string
	ColourCount     int
	MinQuantity     *int
	MaxQuantity     *int
	CostPerPosition decimal.Decimal
}

// CoverageRow prices one coverage choice for a coverage-model product.
type CoverageRow struct {
	CoverageType string
	PricePerUnit decimal.Decimal
}

// ExtraPositionRow is the flat-model surcharge for printing a second
// position.
type ExtraPositionRow struct {
	Price decimal.Decimal
}

// RowSet holds a product's print-pricing records split by kind. Each slice
// keeps the order rows were ingested in, so lookups are first-match-wins
// even across duplicate brackets.
type RowSet struct {
	Garment  []GarmentCostRow
	Print    []PrintCostRow
	Coverage []CoverageRow
	Extra    []ExtraPositionRow
}

// Empty reports whether the product has no print-pricing data at all.
func (s RowSet) Empty() bool {
	return len(s.Garment) == 0 && len(s.Print) == 0 && len(s.Coverage) == 0 && len(s.Extra) == 0
}

// ExtraPositionPrice returns the second-position surcharge, or zero when
// the catalog carries none.
func (s RowSet) ExtraPositionPrice() decimal.Decimal {
	if len(s.Extra) == 0 {
		return decimal.Zero
	}
	return s.Extra[0].Price
}

// BuildRowSet classifies raw print-pricing rows by which columns they set:
// coverage rows first, then extra-position rows, then print-cost rows, then
// garment-cost rows. Rows matching no kind are dropped with a warning
// rather than failing the whole catalog.
func BuildRowSet(rows []models.PrintPricingRow) RowSet {
	var set RowSet
	for _, row := range rows {
		switch {
		case row.CoverageType != nil && row.CoveragePricePerUnit != nil:
			set.Coverage = append(set.Coverage, CoverageRow{
				CoverageType: strings.TrimSpace(*row.CoverageType),
				PricePerUnit: *row.CoveragePricePerUnit,
			})
		case row.ExtraPositionPrice != nil:
			set.Extra = append(set.Extra, ExtraPositionRow{Price: *row.ExtraPositionPrice})
		case row.ColourCount != nil && row.PrintCostPerPosition != nil:
			set.Print = append(set.Print, PrintCostRow{
				Variant:         normalizeVariant(row.ColourVariant),
				ColourCount:     *row.ColourCount,
				MinQuantity:     row.MinQuantity,
				MaxQuantity:     row.MaxQuantity,
				CostPerPosition: *row.PrintCostPerPosition,
			})
		case row.GarmentCost != nil && row.ColourCount == nil:
			set.Garment = append(set.Garment, GarmentCostRow{
				Variant:     normalizeVariant(row.ColourVariant),
				MinQuantity: row.MinQuantity,
				MaxQuantity: row.MaxQuantity,
				GarmentCost: *row.GarmentCost,
			})
		default:
			log.Printf("⚠️  Skipping print pricing row %d: column combination matches no known kind", row.ID)
		}
	}
	return set
}

// normalizeVariant folds a stored variant value onto the two known
// variants.
func normalizeVariant(variant string) string {
	if strings.EqualFold(strings.TrimSpace(variant), VariantWhite) {
		return VariantWhite
	}
	return VariantColoured
}

// FindGarmentRow returns the first garment-cost row for the variant whose
// bracket contains quantity. The second return is false when nothing
// matches; callers treat the garment cost as zero then.
func FindGarmentRow(set RowSet, quantity int, variant string) (GarmentCostRow, bool) {
	for _, row := range set.Garment {
		if row.Variant != variant {
			continue
		}
		if quantityInBracket(quantity, row.MinQuantity, row.MaxQuantity) {
			return row, true
		}
	}
	return GarmentCostRow{}, false
}

// FindPrintRow returns the first print-cost row for the variant and colour
// count whose bracket contains quantity.
func FindPrintRow(set RowSet, colourCount, quantity int, variant string) (PrintCostRow, bool) {
	for _, row := range set.Print {
		if row.Variant != variant || row.ColourCount != colourCount {
			continue
		}
		if quantityInBracket(quantity, row.MinQuantity, row.MaxQuantity) {
			return row, true
		}
	}
	return PrintCostRow{}, false
}

// FindCoverageRow returns the first coverage row for the selected coverage
// type. Quantity plays no part in the match.
func FindCoverageRow(set RowSet, coverageType string) (CoverageRow, bool) {
	for _, row := range set.Coverage {
		if row.CoverageType == coverageType {
			return row, true
		}
	}
	return CoverageRow{}, false
}

// quantityInBracket checks quantity against inclusive bracket bounds. A nil
// bound is unbounded on that side.
func quantityInBracket(quantity int, minQty, maxQty *int) bool {
	if minQty != nil && quantity < *minQty {
		return false
	}
	if maxQty != nil && quantity > *maxQty {
		return false
	}
	return true
}
