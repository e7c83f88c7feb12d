// Package metrics derives aggregate market statistics from a listing catalog.
package metrics

import (
	"sort"

	"niche-lab/internal/domain"
)

// The top 20 records are assumed to represent half of total category
// revenue, so the market estimate doubles their sum.
const marketExtrapolationFactor = 2

// Price segment breakpoints.
const (
	budgetMaxPrice = 400
	midMaxPrice    = 800
)

// ratingSampleSize bounds rating statistics to the best-ranked records.
const ratingSampleSize = 20

// Compute calculates MarketMetrics from a catalog sorted by revenue
// descending. An empty catalog yields zeroed metrics with an "N/A"
// top-seller placeholder, never an error.
func Compute(c domain.ListingCatalog) domain.MarketMetrics {
	m := domain.MarketMetrics{
		TopSeller:     topSellerSnapshot(c),
		TotalProducts: len(c),
	}

	m.Top3Revenue = sumRevenue(c.Top(3))
	m.Top10Revenue = sumRevenue(c.Top(10))
	m.Top20Revenue = sumRevenue(c.Top(20))
	m.EstimatedTotalMarket = m.Top20Revenue * marketExtrapolationFactor

	// Share of the top 10 held by the top 3; stays 0 when top 10 revenue
	// is 0 so empty catalogs never produce NaN.
	if m.Top10Revenue > 0 {
		m.Top3Share = m.Top3Revenue / m.Top10Revenue * 100
	}

	m.AvgRatingTop20, m.MinRating, m.MaxRating = ratingStats(c.Top(ratingSampleSize))
	m.Segments = priceSegments(c)
	m.MedianPrice = medianPrice(c)

	return m
}

func sumRevenue(records domain.ListingCatalog) float64 {
	sum := 0.0
	for _, r := range records {
		sum += r.Revenue
	}
	return sum
}

// topSellerSnapshot captures the first record of the catalog, or a zeroed
// placeholder with brand "N/A" when the catalog is empty.
func topSellerSnapshot(c domain.ListingCatalog) domain.TopSellerSnapshot {
	if len(c) == 0 {
		return domain.TopSellerSnapshot{Brand: "N/A"}
	}
	top := c[0]
	return domain.TopSellerSnapshot{
		Brand:       top.Brand,
		Price:       top.Price,
		Revenue:     top.Revenue,
		Units:       top.UnitsSold,
		ReviewCount: top.ReviewCount,
		Rating:      top.Rating,
	}
}

func ratingStats(records domain.ListingCatalog) (mean, min, max float64) {
	if len(records) == 0 {
		return 0, 0, 0
	}

	sum := 0.0
	min = records[0].Rating
	max = records[0].Rating
	for _, r := range records {
		sum += r.Rating
		if r.Rating < min {
			min = r.Rating
		}
		if r.Rating > max {
			max = r.Rating
		}
	}
	return sum / float64(len(records)), min, max
}

func priceSegments(c domain.ListingCatalog) domain.PriceSegments {
	var budget, mid, premium []domain.ListingRecord
	for _, r := range c {
		switch {
		case r.Price < budgetMaxPrice:
			budget = append(budget, r)
		case r.Price < midMaxPrice:
			mid = append(mid, r)
		default:
			premium = append(premium, r)
		}
	}
	return domain.PriceSegments{
		Budget:   segmentStats(budget),
		MidRange: segmentStats(mid),
		Premium:  segmentStats(premium),
	}
}

// segmentStats aggregates one segment; zero-valued for an empty segment.
func segmentStats(records []domain.ListingRecord) domain.PriceSegment {
	seg := domain.PriceSegment{Count: len(records)}
	if len(records) == 0 {
		return seg
	}

	priceSum := 0.0
	for _, r := range records {
		seg.Revenue += r.Revenue
		priceSum += r.Price
	}
	seg.AvgPrice = priceSum / float64(len(records))
	return seg
}

// medianPrice uses the standard midpoint-of-two rule for even counts.
func medianPrice(c domain.ListingCatalog) float64 {
	n := len(c)
	if n == 0 {
		return 0
	}

	prices := make([]float64, n)
	for i, r := range c {
		prices[i] = r.Price
	}
	sort.Float64s(prices)

	if n%2 == 1 {
		return prices[n/2]
	}
	return (prices[n/2-1] + prices[n/2]) / 2
}
