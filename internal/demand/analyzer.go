// Package demand derives keyword demand statistics and the demand/supply
// balance model from a keyword catalog.
package demand

import (
	"strings"

	"niche-lab/internal/domain"
)

// maxRelatedKeywords bounds the related-keyword shortlist.
const maxRelatedKeywords = 5

// Analyze derives DemandMetrics from a keyword catalog. Returns nil when
// the catalog is empty.
//
// Seed resolution order: case-insensitive exact match on seedKeyword, then
// case-insensitive substring match (ties broken by catalog order, i.e.
// highest search volume), then the catalog's first record with its own
// phrase as the seed.
func Analyze(c domain.KeywordCatalog, seedKeyword string) *domain.DemandMetrics {
	if len(c) == 0 {
		return nil
	}

	seed, found := findSeed(c, seedKeyword)
	if !found {
		seed = c[0]
		seedKeyword = seed.Phrase
	}

	related := make([]domain.KeywordRecord, 0, maxRelatedKeywords)
	for _, rec := range c {
		if rec.PhraseEquals(seed.Phrase) {
			continue
		}
		related = append(related, rec)
		if len(related) == maxRelatedKeywords {
			break
		}
	}

	return &domain.DemandMetrics{
		SeedKeyword:        seed.Phrase,
		SearchVolume:       seed.SearchVolume,
		Trend:              seed.Trend,
		TrendSignal:        ClassifyTrend(seed.Trend),
		CompetingListings:  seed.CompetingListings,
		DemandQualityIndex: seed.DemandQualityIndex,
		RelatedKeywords:    related,
		TotalKeywords:      len(c),
	}
}

// findSeed locates the record for seedKeyword, exact match before
// substring match. The catalog is volume-sorted, so the first substring
// hit is the highest-volume one.
func findSeed(c domain.KeywordCatalog, seedKeyword string) (domain.KeywordRecord, bool) {
	needle := strings.ToLower(strings.TrimSpace(seedKeyword))
	if needle == "" {
		return domain.KeywordRecord{}, false
	}

	for _, rec := range c {
		if rec.PhraseEquals(needle) {
			return rec, true
		}
	}
	for _, rec := range c {
		if strings.Contains(strings.ToLower(rec.Phrase), needle) {
			return rec, true
		}
	}
	return domain.KeywordRecord{}, false
}

// ClassifyTrend buckets a signed trend percentage into a TrendSignal.
func ClassifyTrend(trend float64) domain.TrendSignal {
	switch {
	case trend > 30:
		return domain.TrendStrongGrowth
	case trend >= 10:
		return domain.TrendGrowth
	case trend >= -5:
		return domain.TrendStable
	case trend >= -15:
		return domain.TrendDeclining
	default:
		return domain.TrendCollapsing
	}
}
