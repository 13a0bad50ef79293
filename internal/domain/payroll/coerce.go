package payroll

import (
	"strconv"
	"strings"
)

// Number coerces a raw cell string into a float64. Source sheets are
// hand-maintained and Indonesian-formatted, so a cell may hold a clean
// number, currency-decorated text ("Rp 1.250.000"), or free text.
//
// Separator rule (picked once, documented here): after stripping
// everything but digits, separators and the minus sign, a dot is a
// thousands separator when the value also contains a comma, when there is
// more than one dot, or when a single dot is followed by exactly three
// trailing digits; a comma is always the decimal separator. Parenthesized
// values are accounting negatives. Anything that still fails to parse
// coerces to 0 rather than erroring: completing the import wins over
// halting on cosmetic data issues.
func Number(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}

	negative := strings.Contains(s, "(") && strings.Contains(s, ")")

	// Grouped values like "1.250" are valid floats, so the fast path is
	// only safe when the string carries no separator at all.
	if !strings.ContainsAny(s, ".,") {
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			if negative {
				return -v
			}
			return v
		}
	}

	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == ',' || r == '-' {
			b.WriteRune(r)
		}
	}
	clean := b.String()
	if clean == "" || clean == "-" {
		return 0
	}

	hasDot := strings.Contains(clean, ".")
	hasComma := strings.Contains(clean, ",")
	switch {
	case hasDot && hasComma:
		clean = strings.ReplaceAll(clean, ".", "")
		clean = strings.ReplaceAll(clean, ",", ".")
	case strings.Count(clean, ".") > 1:
		clean = strings.ReplaceAll(clean, ".", "")
	case hasDot && thousandsGrouped(clean, '.'):
		clean = strings.ReplaceAll(clean, ".", "")
	case strings.Count(clean, ",") > 1:
		clean = strings.ReplaceAll(clean, ",", "")
	case hasComma:
		clean = strings.ReplaceAll(clean, ",", ".")
	}

	v, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0
	}
	if negative && v > 0 {
		v = -v
	}
	return v
}

// thousandsGrouped reports whether the single occurrence of sep sits
// exactly three digits from the end, the Indonesian grouping pattern
// ("1.250" reads as 1250, "1.5" stays 1.5).
func thousandsGrouped(s string, sep byte) bool {
	idx := strings.IndexByte(s, sep)
	if idx <= 0 {
		return false
	}
	return len(s)-idx-1 == 3
}

// Int coerces a cell into a whole-day count.
func Int(raw string) int {
	return int(Number(raw))
}

// Text coerces a cell into trimmed text. Identity fields (names, account
// numbers) keep an empty cell as "", never a numeric zero.
func Text(raw string) string {
	return strings.TrimSpace(raw)
}

// textLike reports whether a cell value reads as text rather than a bare
// number. Rows whose name cell holds a number (a stray subtotal) are
// skipped by the extractor.
func textLike(s string) bool {
	if s == "" {
		return false
	}
	if _, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
		return false
	}
	return true
}
