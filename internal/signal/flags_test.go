package signal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"niche-lab/internal/domain"
)

// neutralMetrics triggers no market flag on any ladder.
func neutralMetrics() *domain.MarketMetrics {
	return &domain.MarketMetrics{
		EstimatedTotalMarket: 1000000,
		Top3Share:            50,
		TopSeller:            domain.TopSellerSnapshot{Brand: "Acme", ReviewCount: 2000},
		MedianPrice:          400,
		AvgRatingTop20:       4.5,
		TotalProducts:        40,
	}
}

func flagMetrics(flags []domain.Flag) []string {
	out := make([]string, 0, len(flags))
	for _, f := range flags {
		out = append(out, f.Metric)
	}
	return out
}

func TestFlags_NeutralMarketProducesNone(t *testing.T) {
	set := Flags(neutralMetrics(), nil, nil)
	assert.Empty(t, set.Red)
	assert.Empty(t, set.Yellow)
	assert.Empty(t, set.Green)
}

func TestFlags_MarketSizeLadder(t *testing.T) {
	cases := []struct {
		size  float64
		color string
	}{
		{250000, "red"},
		{300000, "yellow"},
		{450000, "yellow"},
		{500000, "none"},
		{2000000, "none"},
		{2500000, "green"},
	}
	for _, tc := range cases {
		m := neutralMetrics()
		m.EstimatedTotalMarket = tc.size
		set := Flags(m, nil, nil)
		switch tc.color {
		case "red":
			assert.Contains(t, flagMetrics(set.Red), MetricMarketSize, "size=%v", tc.size)
		case "yellow":
			assert.Contains(t, flagMetrics(set.Yellow), MetricMarketSize, "size=%v", tc.size)
		case "green":
			assert.Contains(t, flagMetrics(set.Green), MetricMarketSize, "size=%v", tc.size)
		default:
			assert.NotContains(t, flagMetrics(set.Red), MetricMarketSize, "size=%v", tc.size)
			assert.NotContains(t, flagMetrics(set.Yellow), MetricMarketSize, "size=%v", tc.size)
			assert.NotContains(t, flagMetrics(set.Green), MetricMarketSize, "size=%v", tc.size)
		}
	}
}

func TestFlags_ConcentrationLadder(t *testing.T) {
	m := neutralMetrics()
	m.Top3Share = 80
	assert.Contains(t, flagMetrics(Flags(m, nil, nil).Red), MetricConcentration)

	m.Top3Share = 70
	assert.Contains(t, flagMetrics(Flags(m, nil, nil).Yellow), MetricConcentration)

	m.Top3Share = 35
	assert.Contains(t, flagMetrics(Flags(m, nil, nil).Green), MetricConcentration)
}

func TestFlags_TopSellerReviewsLadder(t *testing.T) {
	m := neutralMetrics()
	m.TopSeller.ReviewCount = 6000
	assert.Contains(t, flagMetrics(Flags(m, nil, nil).Red), MetricTopSellerReviews)

	m.TopSeller.ReviewCount = 4000
	assert.Contains(t, flagMetrics(Flags(m, nil, nil).Yellow), MetricTopSellerReviews)

	m.TopSeller.ReviewCount = 500
	assert.Contains(t, flagMetrics(Flags(m, nil, nil).Green), MetricTopSellerReviews)
}

func TestFlags_MedianPriceLadder(t *testing.T) {
	m := neutralMetrics()
	m.MedianPrice = 200
	assert.Contains(t, flagMetrics(Flags(m, nil, nil).Red), MetricMedianPrice)

	m.MedianPrice = 300
	assert.Contains(t, flagMetrics(Flags(m, nil, nil).Yellow), MetricMedianPrice)

	m.MedianPrice = 800
	assert.Contains(t, flagMetrics(Flags(m, nil, nil).Green), MetricMedianPrice)

	// Above the green band: no flag at all.
	m.MedianPrice = 2000
	set := Flags(m, nil, nil)
	assert.NotContains(t, flagMetrics(set.Green), MetricMedianPrice)
	assert.NotContains(t, flagMetrics(set.Yellow), MetricMedianPrice)
	assert.NotContains(t, flagMetrics(set.Red), MetricMedianPrice)
}

func TestFlags_RatingQualityGap(t *testing.T) {
	m := neutralMetrics()
	m.AvgRatingTop20 = 4.0
	assert.Contains(t, flagMetrics(Flags(m, nil, nil).Green), MetricAverageRating)

	m.AvgRatingTop20 = 3.2
	assert.Contains(t, flagMetrics(Flags(m, nil, nil).Yellow), MetricAverageRating)

	// Zero rating means no review data, not a quality problem.
	m.AvgRatingTop20 = 0
	set := Flags(m, nil, nil)
	assert.NotContains(t, flagMetrics(set.Yellow), MetricAverageRating)
}

func TestFlags_DemandLadders(t *testing.T) {
	dm := &domain.DemandMetrics{SearchVolume: 1500, Trend: -20}
	set := Flags(neutralMetrics(), dm, nil)
	assert.Contains(t, flagMetrics(set.Red), MetricSearchVolume)
	assert.Contains(t, flagMetrics(set.Red), MetricTrend)

	dm = &domain.DemandMetrics{SearchVolume: 3000, Trend: -10}
	set = Flags(neutralMetrics(), dm, nil)
	assert.Contains(t, flagMetrics(set.Yellow), MetricSearchVolume)
	assert.Contains(t, flagMetrics(set.Yellow), MetricTrend)

	dm = &domain.DemandMetrics{SearchVolume: 60000, Trend: 25}
	set = Flags(neutralMetrics(), dm, nil)
	assert.Contains(t, flagMetrics(set.Green), MetricSearchVolume)
	assert.Contains(t, flagMetrics(set.Green), MetricTrend)
}

func TestFlags_RatioLadder(t *testing.T) {
	ds := &domain.DemandSupplyAnalysis{Ratio: 0.5}
	assert.Contains(t, flagMetrics(Flags(neutralMetrics(), nil, ds).Red), MetricDemandSupply)

	ds.Ratio = 1.5
	assert.Contains(t, flagMetrics(Flags(neutralMetrics(), nil, ds).Yellow), MetricDemandSupply)

	ds.Ratio = 5
	assert.Contains(t, flagMetrics(Flags(neutralMetrics(), nil, ds).Green), MetricDemandSupply)
}

func TestFlags_GoldmineRequiresBoth(t *testing.T) {
	dm := &domain.DemandMetrics{SearchVolume: 60000, Trend: 0}
	ds := &domain.DemandSupplyAnalysis{Ratio: 3.5}
	set := Flags(neutralMetrics(), dm, ds)
	require.Contains(t, flagMetrics(set.Green), MetricGoldmine)

	// High volume alone is not enough.
	ds.Ratio = 2.5
	set = Flags(neutralMetrics(), dm, ds)
	assert.NotContains(t, flagMetrics(set.Green), MetricGoldmine)

	// Good ratio alone is not enough either.
	dm.SearchVolume = 40000
	ds.Ratio = 3.5
	set = Flags(neutralMetrics(), dm, ds)
	assert.NotContains(t, flagMetrics(set.Green), MetricGoldmine)
}

func TestFlags_NilInputs(t *testing.T) {
	set := Flags(nil, nil, nil)
	red, yellow, green := set.Counts()
	assert.Zero(t, red)
	assert.Zero(t, yellow)
	assert.Zero(t, green)
}
