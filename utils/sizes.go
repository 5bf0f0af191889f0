package utils

import (
	"strings"
)

// Garment sizes supported by the storefront, in display order.
const (
	SizeS   = "S"
	SizeM   = "M"
	SizeL   = "L"
	SizeXL  = "XL"
	SizeXXL = "XXL"
)

// NormalizeSize maps free-form size input onto the canonical size labels.
// Returns the canonical label and true, or the cleaned input and false when
// the size is not one the storefront sells.
func NormalizeSize(size string) (string, bool) {
	sizeUpper := strings.ToUpper(strings.TrimSpace(size))

	sizeMap := map[string]string{
		"S":           SizeS,
		"SMALL":       SizeS,
		"M":           SizeM,
		"MEDIUM":      SizeM,
		"L":           SizeL,
		"LARGE":       SizeL,
		"XL":          SizeXL,
		"X-LARGE":     SizeXL,
		"EXTRA LARGE": SizeXL,
		"XXL":         SizeXXL,
		"2XL":         SizeXXL,
		"XX-LARGE":    SizeXXL,
	}

	if canonical, exists := sizeMap[sizeUpper]; exists {
		return canonical, true
	}

	return sizeUpper, false
}

// Slugify turns a product or category name into a URL slug: lowercase,
// alphanumerics kept, everything else collapsed to single hyphens.
func Slugify(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	lastHyphen := true
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}
