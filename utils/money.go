package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatGBP formats an amount as pounds sterling like "£1,234.50". Always
// two decimal places, comma as thousands separator.
func FormatGBP(amount decimal.Decimal) string {
	neg := amount.IsNegative()
	fixed := amount.Abs().StringFixed(2)

	whole := fixed
	frac := "00"
	if dot := strings.IndexByte(fixed, '.'); dot >= 0 {
		whole = fixed[:dot]
		frac = fixed[dot+1:]
	}

	var b strings.Builder
	// Pre-allocate: digits + separators + sign and symbol
	b.Grow(len(fixed) + len(whole)/3 + 4)
	if neg {
		b.WriteString("-£")
	} else {
		b.WriteString("£")
	}

	// Insert separators from the left.
	rem := len(whole) % 3
	if rem == 0 {
		rem = 3
	}
	b.WriteString(whole[:rem])
	for i := rem; i < len(whole); i += 3 {
		b.WriteByte(',')
		b.WriteString(whole[i : i+3])
	}

	b.WriteByte('.')
	b.WriteString(frac)

	return b.String()
}
