// Package ingest reads marketplace CSV exports into canonical row tables.
// It owns all file I/O and column-name normalization; everything downstream
// is a pure function of the Table it produces.
package ingest

// Canonical field names for listing exports.
const (
	FieldASIN        = "asin"
	FieldBrand       = "brand"
	FieldPrice       = "price"
	FieldRevenue     = "revenue"
	FieldUnitsSold   = "units_sold"
	FieldReviewCount = "review_count"
	FieldRating      = "rating"
)

// Canonical field names for keyword exports.
const (
	FieldPhrase             = "phrase"
	FieldSearchVolume       = "search_volume"
	FieldTrend              = "trend"
	FieldCompetingListings  = "competing_listings"
	FieldDemandQualityIndex = "demand_quality_index"
)

// Row is one raw export row keyed by canonical field name.
// Values are untyped cell text; normalization happens at catalog build.
type Row map[string]string

// Table is one parsed export: the canonical columns that were recognized
// in the header plus every data row.
type Table struct {
	Columns []string
	Rows    []Row
}

// HasColumn reports whether the canonical column was present in the header.
func (t Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}
