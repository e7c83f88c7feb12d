// Package signal classifies metrics into red/yellow/green flags and
// reduces score plus flags to one recommended action.
package signal

import (
	"fmt"

	"niche-lab/internal/domain"
)

// Metric identifiers attached to flags.
const (
	MetricMarketSize       = "market_size"
	MetricConcentration    = "market_concentration"
	MetricTopSellerReviews = "top_seller_reviews"
	MetricMedianPrice      = "median_price"
	MetricAverageRating    = "average_rating"
	MetricSearchVolume     = "search_volume"
	MetricTrend            = "trend"
	MetricDemandSupply     = "demand_supply_ratio"
	MetricGoldmine         = "goldmine_combo"
)

// flagSetBuilder accumulates flags during generation.
type flagSetBuilder struct {
	set domain.FlagSet
}

func (b *flagSetBuilder) red(metric string, value float64, format string, args ...any) {
	b.set.Red = append(b.set.Red, domain.Flag{Message: fmt.Sprintf(format, args...), Metric: metric, Value: value})
}

func (b *flagSetBuilder) yellow(metric string, value float64, format string, args ...any) {
	b.set.Yellow = append(b.set.Yellow, domain.Flag{Message: fmt.Sprintf(format, args...), Metric: metric, Value: value})
}

func (b *flagSetBuilder) green(metric string, value float64, format string, args ...any) {
	b.set.Green = append(b.set.Green, domain.Flag{Message: fmt.Sprintf(format, args...), Metric: metric, Value: value})
}

// Flags evaluates each metric against its own threshold ladder. The
// ladders are deliberately not mutually exclusive across metrics: one
// subcategory can collect red flags on one metric and green signals on
// another at the same time. dm and ds may be nil.
func Flags(m *domain.MarketMetrics, dm *domain.DemandMetrics, ds *domain.DemandSupplyAnalysis) domain.FlagSet {
	b := &flagSetBuilder{}
	if m != nil {
		marketFlags(b, m)
	}
	if dm != nil {
		demandFlags(b, dm)
	}
	if ds != nil {
		ratioFlags(b, dm, ds)
	}
	return b.set
}

func marketFlags(b *flagSetBuilder, m *domain.MarketMetrics) {
	size := m.EstimatedTotalMarket
	switch {
	case size < 300000:
		b.red(MetricMarketSize, size, "Very small market size (%.0f)", size)
	case size < 500000:
		b.yellow(MetricMarketSize, size, "Small market size (%.0f)", size)
	case size > 2000000:
		b.green(MetricMarketSize, size, "Large market size (%.0f)", size)
	}

	share := m.Top3Share
	switch {
	case share > 75:
		b.red(MetricConcentration, share, "Highly concentrated market (top 3 control %.1f%%)", share)
	case share > 65:
		b.yellow(MetricConcentration, share, "Concentrated market (top 3 control %.1f%%)", share)
	case share < 40:
		b.green(MetricConcentration, share, "Fragmented market - easier entry (top 3 only %.1f%%)", share)
	}

	reviews := m.TopSeller.ReviewCount
	switch {
	case reviews > 5000:
		b.red(MetricTopSellerReviews, reviews, "Dominant top seller with %.0f reviews", reviews)
	case reviews > 3000:
		b.yellow(MetricTopSellerReviews, reviews, "Strong top seller with %.0f reviews", reviews)
	case reviews < 1000:
		b.green(MetricTopSellerReviews, reviews, "Weak top seller (only %.0f reviews)", reviews)
	}

	price := m.MedianPrice
	switch {
	case price < 250:
		b.red(MetricMedianPrice, price, "Low price point (%.0f) - thin margins", price)
	case price < 350:
		b.yellow(MetricMedianPrice, price, "Moderate price point (%.0f)", price)
	case price >= 500 && price <= 1500:
		b.green(MetricMedianPrice, price, "Good price point (%.0f) - healthy margins", price)
	}

	rating := m.AvgRatingTop20
	switch {
	case rating >= 3.8 && rating <= 4.2:
		b.green(MetricAverageRating, rating, "Quality gap opportunity (avg rating %.2f)", rating)
	case rating > 0 && rating < 3.5:
		b.yellow(MetricAverageRating, rating, "Category quality issues (avg rating %.2f)", rating)
	}
}

func demandFlags(b *flagSetBuilder, dm *domain.DemandMetrics) {
	volume := float64(dm.SearchVolume)
	switch {
	case dm.SearchVolume < 2000:
		b.red(MetricSearchVolume, volume, "Very low search volume (%d/month)", dm.SearchVolume)
	case dm.SearchVolume < 5000:
		b.yellow(MetricSearchVolume, volume, "Low search volume (%d/month)", dm.SearchVolume)
	case dm.SearchVolume > 50000:
		b.green(MetricSearchVolume, volume, "High search volume (%d/month)", dm.SearchVolume)
	}

	trend := dm.Trend
	switch {
	case trend < -15:
		b.red(MetricTrend, trend, "Market collapsing (%+.0f%% trend)", trend)
	case trend < -5:
		b.yellow(MetricTrend, trend, "Declining market (%+.0f%% trend)", trend)
	case trend > 10:
		b.green(MetricTrend, trend, "Growing market (%+.0f%% trend)", trend)
	}
}

func ratioFlags(b *flagSetBuilder, dm *domain.DemandMetrics, ds *domain.DemandSupplyAnalysis) {
	ratio := ds.Ratio
	switch {
	case ratio < 1:
		b.red(MetricDemandSupply, ratio, "Oversupplied market (ratio: %.1f)", ratio)
	case ratio < 2:
		b.yellow(MetricDemandSupply, ratio, "Low demand/supply ratio (%.1f)", ratio)
	case ratio > 4:
		b.green(MetricDemandSupply, ratio, "Excellent demand/supply ratio (%.1f)", ratio)
	}

	// The one rule that inspects two metrics jointly: high demand AND a
	// strong ratio at the same time.
	if dm != nil && dm.SearchVolume > 50000 && ratio > 3 {
		b.green(MetricGoldmine, ratio, "GOLDMINE: high demand (%d) + good ratio (%.1f)", dm.SearchVolume, ratio)
	}
}
