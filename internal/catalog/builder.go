// Package catalog turns raw export tables into deduplicated, sorted record
// catalogs and validates their data quality.
package catalog

import (
	"fmt"
	"sort"
	"strings"

	"niche-lab/internal/domain"
	"niche-lab/internal/ingest"
	"niche-lab/internal/normalize"
)

// SchemaError reports required fields missing from an export header.
// It is fatal for the subcategory's ingestion; the batch continues.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Missing, ", "))
}

// requiredListingFields must all be present in a listing export.
var requiredListingFields = []string{
	ingest.FieldASIN,
	ingest.FieldBrand,
	ingest.FieldPrice,
	ingest.FieldRevenue,
	ingest.FieldUnitsSold,
	ingest.FieldReviewCount,
	ingest.FieldRating,
}

// requiredKeywordFields must all be present in a keyword export.
var requiredKeywordFields = []string{
	ingest.FieldPhrase,
	ingest.FieldSearchVolume,
	ingest.FieldTrend,
	ingest.FieldCompetingListings,
	ingest.FieldDemandQualityIndex,
}

// BuildStats summarizes what the builder dropped.
type BuildStats struct {
	InputRows      int
	NonPositive    int // rows dropped for revenue/volume <= 0
	Duplicates     int // rows dropped as duplicate identifiers
	ParseFallbacks int // malformed numeric cells that fell back to 0
}

// countFallbacks counts malformed numeric cells across the given fields.
func countFallbacks(row ingest.Row, fields []string) int {
	n := 0
	for _, f := range fields {
		if normalize.IsFallback(row[f]) {
			n++
		}
	}
	return n
}

var numericListingFields = []string{
	ingest.FieldPrice,
	ingest.FieldRevenue,
	ingest.FieldUnitsSold,
	ingest.FieldReviewCount,
	ingest.FieldRating,
}

var numericKeywordFields = []string{
	ingest.FieldSearchVolume,
	ingest.FieldTrend,
	ingest.FieldCompetingListings,
	ingest.FieldDemandQualityIndex,
}

func checkSchema(t ingest.Table, required []string) error {
	var missing []string
	for _, f := range required {
		if !t.HasColumn(f) {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		return &SchemaError{Missing: missing}
	}
	return nil
}

// BuildListings builds a ListingCatalog from a raw listing table.
// Rows with non-positive revenue are dropped, duplicates by ASIN keep the
// first occurrence, and the result is sorted by revenue descending.
func BuildListings(t ingest.Table) (domain.ListingCatalog, BuildStats, error) {
	stats := BuildStats{InputRows: len(t.Rows)}

	if err := checkSchema(t, requiredListingFields); err != nil {
		return nil, stats, err
	}

	seen := make(map[string]bool, len(t.Rows))
	records := make(domain.ListingCatalog, 0, len(t.Rows))

	for _, row := range t.Rows {
		stats.ParseFallbacks += countFallbacks(row, numericListingFields)
		rec := domain.ListingRecord{
			ASIN:        strings.TrimSpace(row[ingest.FieldASIN]),
			Brand:       strings.TrimSpace(row[ingest.FieldBrand]),
			Price:       normalize.Numeric(row[ingest.FieldPrice]),
			Revenue:     normalize.Numeric(row[ingest.FieldRevenue]),
			UnitsSold:   normalize.Numeric(row[ingest.FieldUnitsSold]),
			ReviewCount: normalize.Numeric(row[ingest.FieldReviewCount]),
			Rating:      normalize.Numeric(row[ingest.FieldRating]),
		}

		if rec.Revenue <= 0 {
			stats.NonPositive++
			continue
		}
		if seen[rec.ASIN] {
			stats.Duplicates++
			continue
		}
		seen[rec.ASIN] = true
		records = append(records, rec)
	}

	// Stable sort keeps input order for equal-revenue records.
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Revenue > records[j].Revenue
	})

	return records, stats, nil
}

// BuildKeywords builds a KeywordCatalog from a raw keyword table.
// Rows with non-positive search volume are dropped, duplicates by
// lowercased phrase keep the first occurrence, and the result is sorted
// by search volume descending.
func BuildKeywords(t ingest.Table) (domain.KeywordCatalog, BuildStats, error) {
	stats := BuildStats{InputRows: len(t.Rows)}

	if err := checkSchema(t, requiredKeywordFields); err != nil {
		return nil, stats, err
	}

	seen := make(map[string]bool, len(t.Rows))
	records := make(domain.KeywordCatalog, 0, len(t.Rows))

	for _, row := range t.Rows {
		stats.ParseFallbacks += countFallbacks(row, numericKeywordFields)
		rec := domain.KeywordRecord{
			Phrase:             strings.TrimSpace(row[ingest.FieldPhrase]),
			SearchVolume:       normalize.Count(row[ingest.FieldSearchVolume]),
			Trend:              normalize.Trend(row[ingest.FieldTrend]),
			CompetingListings:  normalize.SupplyRange(row[ingest.FieldCompetingListings]),
			DemandQualityIndex: normalize.Count(row[ingest.FieldDemandQualityIndex]),
		}

		if rec.SearchVolume <= 0 {
			stats.NonPositive++
			continue
		}
		key := strings.ToLower(rec.Phrase)
		if seen[key] {
			stats.Duplicates++
			continue
		}
		seen[key] = true
		records = append(records, rec)
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].SearchVolume > records[j].SearchVolume
	})

	return records, stats, nil
}
