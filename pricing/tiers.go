package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/PGifts2025/Site2026-sub000/models"
)

// ResolveTier returns the volume-discount bracket covering quantity. Tiers
// must be sorted ascending by MinQuantity, which the catalog guarantees;
// the first bracket containing the quantity wins.
//
// When no bracket contains the quantity (a gap in the table, or a quantity
// under the lowest MinQuantity) the first bracket is returned. That is the
// storefront's historical behaviour and stays unchanged; callers that care
// about sub-minimum quantities check the product minimum separately.
// An empty table resolves to a zero-price tier.
func ResolveTier(tiers []models.PricingTier, quantity int) models.PricingTier {
	if len(tiers) == 0 {
		return models.PricingTier{PricePerUnit: decimal.Zero}
	}
	for _, tier := range tiers {
		if TierContains(tier, quantity) {
			return tier
		}
	}
	return tiers[0]
}

// TierContains reports whether quantity falls inside the tier's bracket,
// bounds inclusive. A nil MaxQuantity means the bracket has no upper bound.
func TierContains(tier models.PricingTier, quantity int) bool {
	if quantity < tier.MinQuantity {
		return false
	}
	return tier.MaxQuantity == nil || quantity <= *tier.MaxQuantity
}
