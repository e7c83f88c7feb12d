package metrics

import (
	"fmt"
	"testing"

	"niche-lab/internal/domain"
)

func catalogOf(revenues ...float64) domain.ListingCatalog {
	c := make(domain.ListingCatalog, len(revenues))
	for i, rev := range revenues {
		c[i] = domain.ListingRecord{
			ASIN:    fmt.Sprintf("B%02d", i),
			Brand:   fmt.Sprintf("Brand%d", i),
			Price:   500,
			Revenue: rev,
			Rating:  4.0,
		}
	}
	return c
}

func TestCompute_MarketSizeExtrapolation(t *testing.T) {
	// 25 records at 50k each: top10 = 500k, top20 = 1M, total = 2M
	revenues := make([]float64, 25)
	for i := range revenues {
		revenues[i] = 50000
	}

	m := Compute(catalogOf(revenues...))

	if m.Top10Revenue != 500000 {
		t.Errorf("Top10Revenue = %v, want 500000", m.Top10Revenue)
	}
	if m.Top20Revenue != 1000000 {
		t.Errorf("Top20Revenue = %v, want 1000000", m.Top20Revenue)
	}
	if m.EstimatedTotalMarket != 2000000 {
		t.Errorf("EstimatedTotalMarket = %v, want 2000000", m.EstimatedTotalMarket)
	}
}

func TestCompute_Top3Share(t *testing.T) {
	// top3 = 450k, top10 = 1M -> 45%
	c := catalogOf(200000, 150000, 100000, 90000, 90000, 90000, 90000, 90000, 50000, 40000)

	m := Compute(c)

	if m.Top3Revenue != 450000 {
		t.Errorf("Top3Revenue = %v, want 450000", m.Top3Revenue)
	}
	if m.Top3Share != 45 {
		t.Errorf("Top3Share = %v, want 45", m.Top3Share)
	}
}

func TestCompute_Top3ShareZeroWhenNoRevenue(t *testing.T) {
	// Empty catalog: top10 revenue 0 must yield share 0, not NaN
	m := Compute(nil)

	if m.Top3Share != 0 {
		t.Errorf("Top3Share = %v, want 0", m.Top3Share)
	}
}

func TestCompute_EmptyCatalogPlaceholders(t *testing.T) {
	m := Compute(domain.ListingCatalog{})

	if m.TopSeller.Brand != "N/A" {
		t.Errorf("TopSeller.Brand = %q, want N/A", m.TopSeller.Brand)
	}
	if m.TotalProducts != 0 || m.EstimatedTotalMarket != 0 || m.MedianPrice != 0 {
		t.Errorf("expected zeroed metrics, got %+v", m)
	}
}

func TestCompute_TopSellerIsFirstRecord(t *testing.T) {
	c := catalogOf(90000, 50000)
	c[0].Brand = "Leader"
	c[0].UnitsSold = 420
	c[0].ReviewCount = 1234

	m := Compute(c)

	if m.TopSeller.Brand != "Leader" {
		t.Errorf("TopSeller.Brand = %q, want Leader", m.TopSeller.Brand)
	}
	if m.TopSeller.Units != 420 || m.TopSeller.ReviewCount != 1234 {
		t.Errorf("TopSeller snapshot mismatch: %+v", m.TopSeller)
	}
}

func TestCompute_RatingStatsOverFirst20Only(t *testing.T) {
	revenues := make([]float64, 25)
	for i := range revenues {
		revenues[i] = float64(25-i) * 1000
	}
	c := catalogOf(revenues...)
	for i := range c {
		c[i].Rating = 4.0
	}
	c[24].Rating = 1.0 // rank 25: outside the sample, must not affect stats

	m := Compute(c)

	if m.AvgRatingTop20 != 4.0 {
		t.Errorf("AvgRatingTop20 = %v, want 4.0", m.AvgRatingTop20)
	}
	if m.MinRating != 4.0 {
		t.Errorf("MinRating = %v, want 4.0", m.MinRating)
	}
}

func TestCompute_PriceSegments(t *testing.T) {
	c := catalogOf(1000, 2000, 3000, 4000)
	c[0].Price = 250  // budget
	c[1].Price = 400  // mid (boundary is inclusive on the mid side)
	c[2].Price = 799  // mid
	c[3].Price = 800  // premium (boundary inclusive on premium)

	m := Compute(c)

	if m.Segments.Budget.Count != 1 {
		t.Errorf("Budget.Count = %d, want 1", m.Segments.Budget.Count)
	}
	if m.Segments.MidRange.Count != 2 {
		t.Errorf("MidRange.Count = %d, want 2", m.Segments.MidRange.Count)
	}
	if m.Segments.Premium.Count != 1 {
		t.Errorf("Premium.Count = %d, want 1", m.Segments.Premium.Count)
	}
	if m.Segments.MidRange.AvgPrice != 599.5 {
		t.Errorf("MidRange.AvgPrice = %v, want 599.5", m.Segments.MidRange.AvgPrice)
	}
	if m.Segments.MidRange.Revenue != 5000 {
		t.Errorf("MidRange.Revenue = %v, want 5000", m.Segments.MidRange.Revenue)
	}
}

func TestCompute_MedianPrice(t *testing.T) {
	odd := catalogOf(1000, 2000, 3000)
	odd[0].Price = 100
	odd[1].Price = 300
	odd[2].Price = 900
	if m := Compute(odd); m.MedianPrice != 300 {
		t.Errorf("odd MedianPrice = %v, want 300", m.MedianPrice)
	}

	even := catalogOf(1000, 2000)
	even[0].Price = 200
	even[1].Price = 400
	if m := Compute(even); m.MedianPrice != 300 {
		t.Errorf("even MedianPrice = %v, want 300", m.MedianPrice)
	}
}
