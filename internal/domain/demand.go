package domain

// TrendSignal classifies the seed keyword's search-volume trend.
type TrendSignal string

const (
	TrendStrongGrowth TrendSignal = "STRONG_GROWTH" // > +30%
	TrendGrowth       TrendSignal = "GROWTH"        // +10..+30%
	TrendStable       TrendSignal = "STABLE"        // -5..+10%
	TrendDeclining    TrendSignal = "DECLINING"     // -15..-5%
	TrendCollapsing   TrendSignal = "COLLAPSING"    // < -15%
)

// DemandMetrics holds seed-keyword demand statistics derived from one
// KeywordCatalog. Nil when the catalog is empty.
type DemandMetrics struct {
	SeedKeyword        string
	SearchVolume       int
	Trend              float64
	TrendSignal        TrendSignal
	CompetingListings  int // broad estimate from the keyword export
	DemandQualityIndex int

	// Up to 5 highest-volume keywords excluding the seed.
	RelatedKeywords []KeywordRecord
	TotalKeywords   int // size of the source catalog
}

// Verdict is the qualitative demand/supply outcome, ordered best to worst.
type Verdict string

const (
	VerdictExcellent Verdict = "EXCELLENT" // ratio >= 8
	VerdictGood      Verdict = "GOOD"      // ratio >= 4
	VerdictModerate  Verdict = "MODERATE"  // ratio >= 2
	VerdictPoor      Verdict = "POOR"      // ratio >= 1
	VerdictAvoid     Verdict = "AVOID"     // ratio < 1
)

// DemandSupplyAnalysis combines keyword demand with the count of listings
// actually ranking in the market catalog. Derived fresh, never mutated.
type DemandSupplyAnalysis struct {
	// Inputs echoed for interpretability.
	SearchVolume    int
	RankingListings int // listings actually ranking in the market catalog
	BroadListings   int // broad competing-listing estimate from the export

	// Searches per ranking listing. The denominator is
	// MarketMetrics.TotalProducts, not the broad competing-listing
	// estimate: most listings associated with a keyword never rank.
	Ratio float64

	DemandScore  int // 0-25 from search-volume tiers
	SupplyScore  int // 0-25 from broad competing-listing tiers
	BalanceScore int // demand + supply

	DemandTier string
	SupplyTier string

	Verdict Verdict

	// Fraction of all associated listings that actually rank, percent.
	SuccessRate float64

	Reasoning string
}
