// Package score computes the weighted multi-criteria viability score.
package score

import (
	"fmt"

	"niche-lab/internal/domain"
)

// Criterion maximums. The five base criteria total 100; demand and supply
// add 25 each on the extended scale.
const (
	maxMarketSize    = 20
	maxFragmentation = 20
	maxCompetition   = 15
	maxSatisfaction  = 15
	maxPrice         = 10
	maxDemand        = 25
	maxSupply        = 25
)

// Viability scores market metrics on the base 100-point scale, or on the
// extended 150-point scale when a demand/supply analysis is supplied.
// A nil or empty MarketMetrics yields a degenerate zero score with grade F
// rather than failing.
func Viability(m *domain.MarketMetrics, ds *domain.DemandSupplyAnalysis) domain.ViabilityScore {
	if m == nil || m.TotalProducts == 0 {
		return domain.ViabilityScore{
			Scale:          domain.ScaleBase,
			Grade:          "F",
			Recommendation: "Invalid data",
		}
	}

	sizeScore, sizeReason := scoreMarketSize(m.EstimatedTotalMarket)
	fragScore, fragReason := scoreFragmentation(m.Top3Share)
	compScore, compReason := scoreCompetition(m.TopSeller.ReviewCount)
	ratingScore, ratingReason := scoreSatisfaction(m.AvgRatingTop20)
	priceScore, priceReason := scorePrice(m.MedianPrice)

	breakdown := []domain.CriterionScore{
		{Name: "Market size", Score: sizeScore, Max: maxMarketSize, Reason: sizeReason},
		{Name: "Market fragmentation", Score: fragScore, Max: maxFragmentation, Reason: fragReason},
		{Name: "Competition", Score: compScore, Max: maxCompetition, Reason: compReason},
		{Name: "Customer satisfaction", Score: ratingScore, Max: maxSatisfaction, Reason: ratingReason},
		{Name: "Price viability", Score: priceScore, Max: maxPrice, Reason: priceReason},
	}

	scale := domain.ScaleBase
	if ds != nil {
		scale = domain.ScaleExtended
		breakdown = append(breakdown,
			domain.CriterionScore{
				Name:   "Demand",
				Score:  ds.DemandScore,
				Max:    maxDemand,
				Reason: fmt.Sprintf("%s demand (%d searches/month)", ds.DemandTier, ds.SearchVolume),
			},
			domain.CriterionScore{
				Name:   "Supply balance",
				Score:  ds.SupplyScore,
				Max:    maxSupply,
				Reason: fmt.Sprintf("%s (%d competing listings)", ds.SupplyTier, ds.BroadListings),
			},
		)
	}

	total := 0
	for _, c := range breakdown {
		total += c.Score
	}

	// Percentage is against the active max, keeping base-only and
	// extended scores comparable.
	percentage := float64(total) / float64(scale.Max()) * 100
	grade, recommendation := gradeFor(percentage)

	return domain.ViabilityScore{
		Scale:          scale,
		Breakdown:      breakdown,
		TotalScore:     total,
		Percentage:     percentage,
		Grade:          grade,
		Recommendation: recommendation,
	}
}

func scoreMarketSize(estimatedTotal float64) (int, string) {
	switch {
	case estimatedTotal > 2000000:
		return 20, "Excellent market size (>2M)"
	case estimatedTotal >= 1000000:
		return 15, "Good market size (1M-2M)"
	case estimatedTotal >= 500000:
		return 10, "Moderate market size (500K-1M)"
	default:
		return 5, "Small market size (<500K)"
	}
}

// Lower top-3 concentration means more room to enter.
func scoreFragmentation(top3Share float64) (int, string) {
	switch {
	case top3Share < 30:
		return 20, "Highly fragmented market (top 3 <30%)"
	case top3Share < 50:
		return 15, "Moderately fragmented (top 3 30-50%)"
	case top3Share < 70:
		return 10, "Somewhat concentrated (top 3 50-70%)"
	default:
		return 5, "Highly concentrated market (top 3 >70%)"
	}
}

// Fewer top-seller reviews means the incumbent is easier to displace.
func scoreCompetition(reviewCount float64) (int, string) {
	switch {
	case reviewCount < 500:
		return 15, "Low competition (top seller <500 reviews)"
	case reviewCount < 1000:
		return 12, "Moderate competition (500-1K reviews)"
	case reviewCount < 3000:
		return 8, "High competition (1K-3K reviews)"
	default:
		return 3, "Very high competition (>3K reviews)"
	}
}

// Non-monotonic: the 3.8-4.1 quality-gap band scores highest because
// merely-decent incumbents leave room for a better product, while a
// category that already satisfies customers leaves little.
func scoreSatisfaction(avgRating float64) (int, string) {
	switch {
	case avgRating >= 3.8 && avgRating < 4.1:
		return 15, "Quality gap (3.8-4.1 rating - room for improvement)"
	case avgRating >= 4.1 && avgRating < 4.3:
		return 10, "Good opportunity (4.1-4.3 rating)"
	case avgRating >= 4.3:
		return 5, "Satisfied customers (>4.3 rating - less opportunity)"
	default:
		return 10, "Category issues (<3.8 rating - risky)"
	}
}

func scorePrice(medianPrice float64) (int, string) {
	switch {
	case medianPrice > 500:
		return 10, "Good margins (median >500)"
	case medianPrice >= 300:
		return 7, "Moderate margins (median 300-500)"
	default:
		return 4, "Low margins (median <300)"
	}
}

func gradeFor(percentage float64) (string, string) {
	switch {
	case percentage >= 85:
		return "A+", "Excellent opportunity"
	case percentage >= 70:
		return "A", "Good opportunity"
	case percentage >= 60:
		return "B", "Risky - proceed with caution"
	default:
		return "C", "Skip - poor opportunity"
	}
}
