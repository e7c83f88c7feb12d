package catalog

import (
	"fmt"

	"niche-lab/internal/domain"
)

// Quality thresholds for export validation. Values below the minimum row
// counts suggest a truncated export; the price bounds catch unit mistakes
// (paise vs rupees, bundle pricing) in the source data.
const (
	minListingRows = 10
	minKeywordRows = 50

	suspiciousMaxPrice = 50000
	suspiciousMinPrice = 50

	// Fraction of keywords allowed to miss competitor data before warning.
	maxZeroCompetitorShare = 0.3
)

// ValidateListings checks a built listing catalog and returns whether it is
// usable plus non-fatal quality warnings. Only an empty catalog is invalid.
func ValidateListings(c domain.ListingCatalog) (bool, []string) {
	if len(c) == 0 {
		return false, []string{"listing data is empty"}
	}

	var warnings []string

	if len(c) < minListingRows {
		warnings = append(warnings, fmt.Sprintf(
			"only %d listings found - export may be incomplete (expected %d+)", len(c), minListingRows))
	}

	maxPrice := 0.0
	minPositivePrice := 0.0
	for _, rec := range c {
		if rec.Price > maxPrice {
			maxPrice = rec.Price
		}
		if rec.Price > 0 && (minPositivePrice == 0 || rec.Price < minPositivePrice) {
			minPositivePrice = rec.Price
		}
	}

	if maxPrice > suspiciousMaxPrice {
		warnings = append(warnings, fmt.Sprintf(
			"some listings have very high prices (max: %.0f)", maxPrice))
	}
	if minPositivePrice > 0 && minPositivePrice < suspiciousMinPrice {
		warnings = append(warnings, fmt.Sprintf(
			"some listings have very low prices (min: %.0f)", minPositivePrice))
	}

	return true, warnings
}

// ValidateKeywords checks a built keyword catalog.
func ValidateKeywords(c domain.KeywordCatalog) (bool, []string) {
	if len(c) == 0 {
		return false, []string{"keyword data is empty"}
	}

	var warnings []string

	if len(c) < minKeywordRows {
		warnings = append(warnings, fmt.Sprintf(
			"only %d keywords found - export may be incomplete (expected %d+)", len(c), minKeywordRows))
	}

	zeroCompetitors := 0
	for _, rec := range c {
		if rec.CompetingListings == 0 {
			zeroCompetitors++
		}
	}
	if float64(zeroCompetitors) > float64(len(c))*maxZeroCompetitorShare {
		warnings = append(warnings, fmt.Sprintf(
			"%d keywords missing competitor data", zeroCompetitors))
	}

	return true, warnings
}
