// Package normalize cleans raw export cells into typed numeric values.
// Marketplace exports are inconsistent (currency symbols, thousands
// separators, N/A sentinels, range-valued cells), so every rule here falls
// back to zero instead of failing: an unparseable cell is ingestion noise,
// not an error.
package normalize

import (
	"strconv"
	"strings"
)

// currency symbols seen in marketplace exports
var currencySymbols = []string{"₹", "$", "€", "£"}

// isNA reports whether a trimmed cell is a known missing-value sentinel.
func isNA(s string) bool {
	switch strings.ToLower(s) {
	case "", "n/a", "na":
		return true
	}
	return false
}

// strip removes currency symbols, thousands separators, and inner spaces.
func strip(s string) string {
	for _, sym := range currencySymbols {
		s = strings.ReplaceAll(s, sym, "")
	}
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")
	return strings.TrimSpace(s)
}

// Numeric cleans one raw cell into a float64.
// Blank and N/A cells become 0; clean numeric text passes through unchanged;
// otherwise currency symbols, separators and whitespace are stripped before
// parsing. Parse failure returns 0, never an error.
func Numeric(raw string) float64 {
	s := strings.TrimSpace(raw)
	if isNA(s) {
		return 0
	}

	cleaned := strip(s)
	if isNA(cleaned) {
		return 0
	}

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return v
}

// Count cleans one raw cell into a non-negative integer count.
// Fractional text is truncated toward zero, matching integer export columns
// that occasionally arrive as decimals.
func Count(raw string) int {
	return int(Numeric(raw))
}

// SupplyRange cleans range-valued supply cells of the form ">20,000".
// The leading comparator and separators are stripped; negative or
// unparseable results clamp to 0, meaning "no reliable estimate" rather
// than a parse error.
func SupplyRange(raw string) int {
	s := strings.TrimSpace(raw)
	if isNA(s) {
		return 0
	}

	cleaned := strip(strings.ReplaceAll(s, ">", ""))
	if isNA(cleaned) {
		return 0
	}

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	if v < 0 {
		return 0
	}
	return int(v)
}

// IsFallback reports whether a cell would fall back to zero because its
// text is neither a missing-value sentinel nor parseable after cleaning.
// Callers use it to count genuinely malformed cells separately from
// legitimate blanks and zeros.
func IsFallback(raw string) bool {
	s := strings.TrimSpace(raw)
	if isNA(s) {
		return false
	}
	cleaned := strip(strings.ReplaceAll(strings.TrimPrefix(s, "+"), ">", ""))
	if isNA(cleaned) {
		return false
	}
	_, err := strconv.ParseFloat(cleaned, 64)
	return err != nil
}

// Trend cleans a signed percentage cell. Unlike Numeric it tolerates an
// explicit leading "+" which some exports emit for positive trends.
func Trend(raw string) float64 {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "+")
	return Numeric(s)
}
