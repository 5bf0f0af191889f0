package pricing

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/PGifts2025/Site2026-sub000/models"
)

func intPtr(v int) *int {
	return &v
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func standardTiers() []models.PricingTier {
	return []models.PricingTier{
		{MinQuantity: 1, MaxQuantity: intPtr(49), PricePerUnit: dec("10.00")},
		{MinQuantity: 50, MaxQuantity: intPtr(99), PricePerUnit: dec("8.00")},
		{MinQuantity: 100, MaxQuantity: nil, PricePerUnit: dec("6.00")},
	}
}

func TestResolveTierMatchesBracket(t *testing.T) {
	tiers := standardTiers()

	cases := []struct {
		quantity int
		want     string
	}{
		{1, "10.00"},
		{49, "10.00"},
		{50, "8.00"},
		{75, "8.00"},
		{99, "8.00"},
		{100, "6.00"},
		{5000, "6.00"},
	}

	for _, tc := range cases {
		got := ResolveTier(tiers, tc.quantity)
		if !got.PricePerUnit.Equal(dec(tc.want)) {
			t.Errorf("ResolveTier(%d) = %s, want %s", tc.quantity, got.PricePerUnit, tc.want)
		}
	}
}

func TestResolveTierFallsBackToFirstTier(t *testing.T) {
	// A gap between brackets and a quantity under the lowest bracket both
	// resolve to the first tier.
	gapped := []models.PricingTier{
		{MinQuantity: 10, MaxQuantity: intPtr(19), PricePerUnit: dec("9.00")},
		{MinQuantity: 30, MaxQuantity: nil, PricePerUnit: dec("7.00")},
	}

	if got := ResolveTier(gapped, 25); !got.PricePerUnit.Equal(dec("9.00")) {
		t.Errorf("gap quantity resolved to %s, want first tier 9.00", got.PricePerUnit)
	}
	if got := ResolveTier(gapped, 5); !got.PricePerUnit.Equal(dec("9.00")) {
		t.Errorf("below-range quantity resolved to %s, want first tier 9.00", got.PricePerUnit)
	}
}

func TestResolveTierEmptyTable(t *testing.T) {
	got := ResolveTier(nil, 100)
	if !got.PricePerUnit.IsZero() {
		t.Errorf("empty table resolved to %s, want zero", got.PricePerUnit)
	}
}

func TestTierContains(t *testing.T) {
	bounded := models.PricingTier{MinQuantity: 50, MaxQuantity: intPtr(99)}
	open := models.PricingTier{MinQuantity: 100, MaxQuantity: nil}

	cases := []struct {
		name     string
		tier     models.PricingTier
		quantity int
		want     bool
	}{
		{"below min", bounded, 49, false},
		{"at min", bounded, 50, true},
		{"inside", bounded, 75, true},
		{"at max", bounded, 99, true},
		{"above max", bounded, 100, false},
		{"open ended at min", open, 100, true},
		{"open ended far above", open, 100000, true},
		{"open ended below min", open, 99, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := TierContains(tc.tier, tc.quantity); got != tc.want {
				t.Errorf("TierContains(%+v, %d) = %v, want %v", tc.tier, tc.quantity, got, tc.want)
			}
		})
	}
}
