package domain

// TopSellerSnapshot captures the #1 listing of a catalog.
// Brand is "N/A" with zero values when the catalog is empty.
type TopSellerSnapshot struct {
	Brand       string
	Price       float64
	Revenue     float64
	Units       float64
	ReviewCount float64
	Rating      float64
}

// PriceSegment aggregates one price band of the catalog.
type PriceSegment struct {
	Count    int
	Revenue  float64
	AvgPrice float64 // 0 for an empty segment
}

// PriceSegments partitions the catalog by fixed price breakpoints:
// budget < 400, mid-range 400-800, premium >= 800.
type PriceSegments struct {
	Budget   PriceSegment
	MidRange PriceSegment
	Premium  PriceSegment
}

// MarketMetrics holds aggregate market facts derived from one ListingCatalog.
// Immutable once computed.
type MarketMetrics struct {
	// Market size
	Top10Revenue         float64
	Top20Revenue         float64
	EstimatedTotalMarket float64 // top20 revenue x2 extrapolation

	// Concentration
	Top3Revenue float64
	Top3Share   float64 // top3/top10 x100, 0 when top10 revenue is 0

	TopSeller TopSellerSnapshot

	// Rating statistics over the first 20 records
	AvgRatingTop20 float64
	MinRating      float64
	MaxRating      float64

	Segments      PriceSegments
	MedianPrice   float64
	TotalProducts int // records actually ranking in the catalog
}
