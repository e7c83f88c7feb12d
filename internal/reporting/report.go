// Package reporting assembles batch results into a Report and renders it
// as CSV, Markdown or Excel. All formatting lives here; engine packages
// emit plain structs only.
package reporting

import (
	"time"

	"niche-lab/internal/domain"
)

// Report is the presentation-ready view of one batch run.
// Results are expected ranked best-first.
type Report struct {
	GeneratedAt time.Time
	Results     []*domain.ResultBundle
	Errors      []string // subcategories that failed ingestion
}

// NewReport builds a Report stamped with the current UTC time.
func NewReport(results []*domain.ResultBundle, errors []string) *Report {
	return &Report{
		GeneratedAt: time.Now().UTC(),
		Results:     results,
		Errors:      errors,
	}
}

// WithClock overrides the timestamp for deterministic output.
func (r *Report) WithClock(now func() time.Time) *Report {
	r.GeneratedAt = now()
	return r
}

// RankingRow is one line of the ranking table.
type RankingRow struct {
	Rank        int
	Subcategory string
	Grade       string
	ScorePct    float64
	TotalScore  int
	MaxScore    int
	Action      domain.Action
	RiskLevel   domain.RiskLevel

	MarketSize   float64
	SearchVolume int     // 0 when no keyword data
	Ratio        float64 // 0 when no keyword data

	Red    int
	Yellow int
	Green  int
}

// Rankings flattens the ranked results into table rows.
func (r *Report) Rankings() []RankingRow {
	rows := make([]RankingRow, len(r.Results))
	for i, b := range r.Results {
		row := RankingRow{
			Rank:        i + 1,
			Subcategory: b.Subcategory,
			Grade:       b.Score.Grade,
			ScorePct:    b.Score.Percentage,
			TotalScore:  b.Score.TotalScore,
			MaxScore:    b.Score.MaxScore(),
			Action:      b.Recommendation.Action,
			RiskLevel:   b.Recommendation.RiskLevel,
			MarketSize:  b.Market.EstimatedTotalMarket,
			Red:         b.Recommendation.RedCount,
			Yellow:      b.Recommendation.YellowCount,
			Green:       b.Recommendation.GreenCount,
		}
		if b.Demand != nil {
			row.SearchVolume = b.Demand.SearchVolume
		}
		if b.DemandSupply != nil {
			row.Ratio = b.DemandSupply.Ratio
		}
		rows[i] = row
	}
	return rows
}
