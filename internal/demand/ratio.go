package demand

import (
	"fmt"
	"strings"

	"niche-lab/internal/domain"
)

// Demand score tiers on monthly search volume.
var demandTiers = []struct {
	minVolume int
	score     int
	tier      string
}{
	{150000, 25, "Excellent"},
	{100000, 22, "Very High"},
	{50000, 20, "High"},
	{30000, 17, "Moderate-High"},
	{15000, 14, "Moderate"},
	{5000, 10, "Low-Moderate"},
	{0, 5, "Low"},
}

// Supply score tiers on the broad competing-listing count. Fewer
// competitors scores higher.
var supplyTiers = []struct {
	maxListings int
	score       int
	tier        string
}{
	{5000, 25, "Undersupplied"},
	{10000, 20, "Low Competition"},
	{15000, 17, "Moderate Competition"},
	{20000, 14, "Moderate-High Competition"},
	{30000, 10, "High Competition"},
	{-1, 7, "Saturated"}, // catch-all
}

// Verdict thresholds on the demand/supply ratio.
var verdictTiers = []struct {
	minRatio float64
	verdict  domain.Verdict
}{
	{8, domain.VerdictExcellent},
	{4, domain.VerdictGood},
	{2, domain.VerdictModerate},
	{1, domain.VerdictPoor},
}

// Ratio combines keyword demand with the count of listings actually
// ranking in the market catalog. rankingListings must be
// MarketMetrics.TotalProducts — NOT the broad competing-listing estimate
// from the keyword export, which counts every listing ever associated
// with the keyword and so wildly understates opportunity. A denominator
// of zero is treated as one. Returns nil when metrics is nil.
func Ratio(metrics *domain.DemandMetrics, rankingListings int) *domain.DemandSupplyAnalysis {
	if metrics == nil {
		return nil
	}

	denominator := rankingListings
	if denominator < 1 {
		denominator = 1
	}
	ratio := float64(metrics.SearchVolume) / float64(denominator)

	demandScore, demandTier := scoreDemand(metrics.SearchVolume)
	supplyScore, supplyTier := scoreSupply(metrics.CompetingListings)

	verdict := domain.VerdictAvoid
	for _, t := range verdictTiers {
		if ratio >= t.minRatio {
			verdict = t.verdict
			break
		}
	}

	// Fraction of all associated listings that actually rank.
	successRate := 0.0
	if metrics.CompetingListings > 0 {
		successRate = float64(rankingListings) / float64(metrics.CompetingListings) * 100
	}

	reasoning := fmt.Sprintf(
		"With %d monthly searches and %d competing listings, this keyword shows %s demand in a %s market. "+
			"The ratio of %.1f searches per ranking listing indicates a %s opportunity.",
		metrics.SearchVolume, metrics.CompetingListings,
		strings.ToLower(demandTier), strings.ToLower(supplyTier),
		ratio, strings.ToLower(string(verdict)))

	return &domain.DemandSupplyAnalysis{
		SearchVolume:    metrics.SearchVolume,
		RankingListings: rankingListings,
		BroadListings:   metrics.CompetingListings,
		Ratio:           ratio,
		DemandScore:     demandScore,
		SupplyScore:     supplyScore,
		BalanceScore:    demandScore + supplyScore,
		DemandTier:      demandTier,
		SupplyTier:      supplyTier,
		Verdict:         verdict,
		SuccessRate:     successRate,
		Reasoning:       reasoning,
	}
}

func scoreDemand(volume int) (int, string) {
	for _, t := range demandTiers {
		if volume >= t.minVolume {
			return t.score, t.tier
		}
	}
	// volume is never negative; the 0-floor tier always matches
	last := demandTiers[len(demandTiers)-1]
	return last.score, last.tier
}

func scoreSupply(listings int) (int, string) {
	for _, t := range supplyTiers {
		if t.maxListings < 0 || listings < t.maxListings {
			return t.score, t.tier
		}
	}
	last := supplyTiers[len(supplyTiers)-1]
	return last.score, last.tier
}
