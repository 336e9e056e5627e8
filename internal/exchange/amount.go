package exchange

import (
	"math"
	"strconv"
	"strings"
)

// amountRunes is the only character set a raw amount may contain.
const amountRunes = "0123456789."

// Kind classifies a raw amount string.
type Kind int

const (
	// KindEmpty means the user has not entered anything.
	KindEmpty Kind = iota

	// KindInvalid means the raw text does not parse as a number.
	KindInvalid

	// KindValid means the raw text parses to a finite number.
	KindValid
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindInvalid:
		return "invalid"
	case KindValid:
		return "valid"
	default:
		return "unknown"
	}
}

// Amount is the parsed form of a raw amount string. It distinguishes
// "nothing entered" from "unparsable text" instead of using NaN sentinels.
type Amount struct {
	kind  Kind
	value float64
}

// ParseAmount classifies a raw amount string.
func ParseAmount(raw string) Amount {
	if raw == "" {
		return Amount{kind: KindEmpty}
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return Amount{kind: KindInvalid}
	}

	return Amount{kind: KindValid, value: v}
}

// Kind returns the classification of the amount
func (a Amount) Kind() Kind {
	return a.kind
}

// IsValid reports whether the amount holds a usable number
func (a Amount) IsValid() bool {
	return a.kind == KindValid
}

// IsEmpty reports whether nothing was entered
func (a Amount) IsEmpty() bool {
	return a.kind == KindEmpty
}

// Value returns the numeric value; zero unless the amount is valid
func (a Amount) Value() float64 {
	if a.kind != KindValid {
		return 0
	}
	return a.value
}

// Sanitize reduces arbitrary typed text to a canonical raw amount:
// every rune outside [0-9.] is dropped, and if more than one decimal
// point remains the first is kept while all later digit groups are
// joined into a single fractional part.
func Sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()

	if strings.Count(cleaned, ".") <= 1 {
		return cleaned
	}

	parts := strings.Split(cleaned, ".")
	return parts[0] + "." + strings.Join(parts[1:], "")
}

// Display derives the presentation text for a raw amount by grouping
// the raw text itself: integer digits get thousands separators while
// the fractional part, trailing decimal point included, passes through
// verbatim. Typed fractional zeros survive mid-entry; canonical
// re-formatting happens only on blur via Normalize. A leading decimal
// point gains a zero, and unparsable raw text is mirrored verbatim.
func Display(raw string) string {
	if raw == "" {
		return ""
	}

	if !ParseAmount(raw).IsValid() {
		return raw
	}

	if strings.HasPrefix(raw, ".") {
		raw = "0" + raw
	}
	return GroupDigits(raw)
}

// Normalize is the blur rule: a parsable raw keeps its value and gets the
// canonical grouped display (any uncommitted trailing decimal point is
// dropped from the display only); unparsable raw text resets both raw
// and display to empty.
func Normalize(raw string) (newRaw, display string) {
	if raw == "" {
		return "", ""
	}

	a := ParseAmount(raw)
	if !a.IsValid() {
		return "", ""
	}

	return raw, groupNumber(a.Value())
}

// StripDisplay removes grouping separators from presentation text,
// recovering input that can be sanitized back into a raw amount.
func StripDisplay(display string) string {
	return strings.ReplaceAll(display, ",", "")
}

// groupNumber renders a finite float in plain decimal notation with
// thousands separators. FormatFloat with 'f' never produces an exponent,
// and -1 precision keeps the shortest digits that round-trip.
func groupNumber(v float64) string {
	return GroupDigits(strconv.FormatFloat(v, 'f', -1, 64))
}
