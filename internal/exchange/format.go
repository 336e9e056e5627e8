package exchange

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatFixed renders a derived result with exactly decimals fractional
// digits and thousands separators. Rounding is half away from zero
// (decimal.StringFixed). Zero, NaN, and infinity all render as the zero
// string, so a division by zero never leaks "∞" or "NaN" into the UI.
func FormatFixed(v float64, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}

	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return zeroFixed(decimals)
	}

	fixed := decimal.NewFromFloat(v).StringFixed(int32(decimals))

	negative := strings.HasPrefix(fixed, "-")
	if negative {
		fixed = fixed[1:]
	}

	grouped := GroupDigits(fixed)

	// Rounding a tiny value can still land on zero
	if grouped == zeroFixed(decimals) {
		return grouped
	}

	if negative {
		return "-" + grouped
	}
	return grouped
}

// zeroFixed returns "0" padded with the requested fractional zeros
func zeroFixed(decimals int) string {
	if decimals == 0 {
		return "0"
	}
	return "0." + strings.Repeat("0", decimals)
}

// GroupDigits inserts thousands separators into a plain, unsigned decimal
// string. The fractional part (if any) passes through untouched.
func GroupDigits(s string) string {
	intPart := s
	fracPart := ""
	if idx := strings.IndexByte(s, '.'); idx >= 0 {
		intPart = s[:idx]
		fracPart = s[idx:]
	}

	if len(intPart) <= 3 {
		return intPart + fracPart
	}

	var b strings.Builder
	b.Grow(len(intPart) + len(intPart)/3 + len(fracPart))

	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}

	b.WriteString(fracPart)
	return b.String()
}
