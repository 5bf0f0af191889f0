package pricing

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/PGifts2025/Site2026-sub000/models"
)

func decPtr(s string) *decimal.Decimal {
	v := dec(s)
	return &v
}

func strPtr(s string) *string {
	return &s
}

func TestClassifyVariant(t *testing.T) {
	cases := []struct {
		name       string
		colourName string
		colourCode string
		want       string
	}{
		{"lowercase name", "white", "WHT", VariantWhite},
		{"capitalised name", "White", "WHT", VariantWhite},
		{"uppercase name", "WHITE", "001", VariantWhite},
		{"code matches", "Arctic", "white", VariantWhite},
		{"padded name", "  white ", "", VariantWhite},
		{"natural is coloured", "Natural", "NAT", VariantColoured},
		{"off white is coloured", "Off White", "OWH", VariantColoured},
		{"black", "Black", "BLK", VariantColoured},
		{"both empty", "", "", VariantColoured},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClassifyVariant(tc.colourName, tc.colourCode); got != tc.want {
				t.Errorf("ClassifyVariant(%q, %q) = %q, want %q", tc.colourName, tc.colourCode, got, tc.want)
			}
		})
	}
}

func TestBuildRowSetClassifiesByColumns(t *testing.T) {
	raw := []models.PrintPricingRow{
		{ID: 1, CoverageType: strPtr("front_only"), CoveragePricePerUnit: decPtr("5.95")},
		{ID: 2, ExtraPositionPrice: decPtr("1.50")},
		{ID: 3, ColourVariant: "white", ColourCount: intPtr(1), PrintCostPerPosition: decPtr("1.10"), MinQuantity: intPtr(1), MaxQuantity: intPtr(49)},
		{ID: 4, ColourVariant: "coloured", GarmentCost: decPtr("4.20"), MinQuantity: intPtr(1)},
	}

	set := BuildRowSet(raw)

	if len(set.Coverage) != 1 || set.Coverage[0].CoverageType != "front_only" {
		t.Fatalf("coverage rows = %+v, want one front_only row", set.Coverage)
	}
	if len(set.Extra) != 1 || !set.Extra[0].Price.Equal(dec("1.50")) {
		t.Fatalf("extra rows = %+v, want one 1.50 row", set.Extra)
	}
	if len(set.Print) != 1 || set.Print[0].Variant != VariantWhite || set.Print[0].ColourCount != 1 {
		t.Fatalf("print rows = %+v, want one white 1-colour row", set.Print)
	}
	if len(set.Garment) != 1 || set.Garment[0].Variant != VariantColoured {
		t.Fatalf("garment rows = %+v, want one coloured row", set.Garment)
	}
}

func TestBuildRowSetDropsUnclassifiableRows(t *testing.T) {
	raw := []models.PrintPricingRow{
		{ID: 10, MinQuantity: intPtr(1), MaxQuantity: intPtr(49)},
		{ID: 11},
	}

	set := BuildRowSet(raw)
	if !set.Empty() {
		t.Errorf("rows with no recognisable columns should be dropped, got %+v", set)
	}
}

func TestBuildRowSetCoverageWinsOverOtherColumns(t *testing.T) {
	// A row carrying both coverage columns classifies as coverage even when
	// other columns happen to be populated too.
	raw := []models.PrintPricingRow{
		{
			ID:                   20,
			CoverageType:         strPtr("full_wrap"),
			CoveragePricePerUnit: decPtr("9.95"),
			GarmentCost:          decPtr("3.00"),
		},
	}

	set := BuildRowSet(raw)
	if len(set.Coverage) != 1 || len(set.Garment) != 0 {
		t.Errorf("coverage columns must win classification, got %+v", set)
	}
}

func TestFindPrintRowMatching(t *testing.T) {
	set := RowSet{Print: []PrintCostRow{
		{Variant: VariantWhite, ColourCount: 1, MinQuantity: intPtr(1), MaxQuantity: intPtr(49), CostPerPosition: dec("1.50")},
		{Variant: VariantWhite, ColourCount: 1, MinQuantity: intPtr(50), MaxQuantity: nil, CostPerPosition: dec("1.10")},
		{Variant: VariantColoured, ColourCount: 1, MinQuantity: nil, MaxQuantity: nil, CostPerPosition: dec("1.80")},
		{Variant: VariantWhite, ColourCount: 2, MinQuantity: intPtr(1), MaxQuantity: nil, CostPerPosition: dec("2.10")},
	}}

	row, ok := FindPrintRow(set, 1, 25, VariantWhite)
	if !ok || !row.CostPerPosition.Equal(dec("1.50")) {
		t.Errorf("white 1-col qty 25 = %+v %v, want 1.50", row, ok)
	}

	row, ok = FindPrintRow(set, 1, 50, VariantWhite)
	if !ok || !row.CostPerPosition.Equal(dec("1.10")) {
		t.Errorf("white 1-col qty 50 = %+v %v, want 1.10", row, ok)
	}

	// Unbounded brackets match any quantity.
	row, ok = FindPrintRow(set, 1, 100000, VariantColoured)
	if !ok || !row.CostPerPosition.Equal(dec("1.80")) {
		t.Errorf("coloured 1-col = %+v %v, want 1.80", row, ok)
	}

	if _, ok := FindPrintRow(set, 4, 25, VariantWhite); ok {
		t.Error("colour count with no rows should report no match")
	}
}

func TestFindPrintRowFirstMatchWins(t *testing.T) {
	set := RowSet{Print: []PrintCostRow{
		{Variant: VariantWhite, ColourCount: 1, MinQuantity: intPtr(1), MaxQuantity: intPtr(100), CostPerPosition: dec("1.50")},
		{Variant: VariantWhite, ColourCount: 1, MinQuantity: intPtr(1), MaxQuantity: intPtr(100), CostPerPosition: dec("9.99")},
	}}

	row, _ := FindPrintRow(set, 1, 50, VariantWhite)
	if !row.CostPerPosition.Equal(dec("1.50")) {
		t.Errorf("duplicate brackets must resolve to the first row, got %s", row.CostPerPosition)
	}
}

func TestFindGarmentRowMatching(t *testing.T) {
	set := RowSet{Garment: []GarmentCostRow{
		{Variant: VariantWhite, MinQuantity: intPtr(1), MaxQuantity: intPtr(49), GarmentCost: dec("4.00")},
		{Variant: VariantWhite, MinQuantity: intPtr(50), MaxQuantity: nil, GarmentCost: dec("3.60")},
		{Variant: VariantColoured, MinQuantity: nil, MaxQuantity: nil, GarmentCost: dec("4.40")},
	}}

	row, ok := FindGarmentRow(set, 48, VariantWhite)
	if !ok || !row.GarmentCost.Equal(dec("4.00")) {
		t.Errorf("white qty 48 = %+v %v, want 4.00", row, ok)
	}

	row, ok = FindGarmentRow(set, 500, VariantColoured)
	if !ok || !row.GarmentCost.Equal(dec("4.40")) {
		t.Errorf("coloured qty 500 = %+v %v, want 4.40", row, ok)
	}

	if _, ok := FindGarmentRow(RowSet{}, 10, VariantWhite); ok {
		t.Error("empty set should report no match")
	}
}

func TestFindCoverageRowMatchesTypeOnly(t *testing.T) {
	set := RowSet{Coverage: []CoverageRow{
		{CoverageType: "front_only", PricePerUnit: dec("5.95")},
		{CoverageType: "front_back", PricePerUnit: dec("7.95")},
		{CoverageType: "full_wrap", PricePerUnit: dec("9.95")},
	}}

	row, ok := FindCoverageRow(set, "front_back")
	if !ok || !row.PricePerUnit.Equal(dec("7.95")) {
		t.Errorf("front_back = %+v %v, want 7.95", row, ok)
	}

	if _, ok := FindCoverageRow(set, "sleeves_only"); ok {
		t.Error("unknown coverage type should report no match")
	}
}

func TestExtraPositionPrice(t *testing.T) {
	if !(RowSet{}).ExtraPositionPrice().IsZero() {
		t.Error("no extra rows should price the surcharge at zero")
	}

	set := RowSet{Extra: []ExtraPositionRow{{Price: dec("1.50")}, {Price: dec("2.00")}}}
	if got := set.ExtraPositionPrice(); !got.Equal(dec("1.50")) {
		t.Errorf("surcharge = %s, want the first row's 1.50", got)
	}
}
