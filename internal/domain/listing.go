package domain

// ListingRecord represents one product row from a marketplace export.
type ListingRecord struct {
	ASIN        string  // unique catalog key
	Brand       string
	Price       float64
	Revenue     float64 // monthly revenue, always > 0 inside a catalog
	UnitsSold   float64
	ReviewCount float64
	Rating      float64 // 0-5
}

// ListingCatalog is a deduplicated listing set sorted by revenue descending.
// An empty catalog is valid and yields degenerate downstream metrics.
type ListingCatalog []ListingRecord

// Top returns the first n records (all records when fewer exist).
func (c ListingCatalog) Top(n int) ListingCatalog {
	if n > len(c) {
		n = len(c)
	}
	return c[:n]
}
