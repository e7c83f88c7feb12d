package reporting

import (
	"fmt"
	"strings"
	"time"

	"niche-lab/internal/domain"
)

// RenderMarkdown renders the full report as a Markdown string: ranking
// table first, then one detail section per subcategory.
func RenderMarkdown(r *Report) string {
	var sb strings.Builder

	sb.WriteString("# Niche Opportunity Report\n\n")
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", r.GeneratedAt.Format(time.RFC3339)))
	sb.WriteString(fmt.Sprintf("Subcategories analyzed: %d | Failed: %d\n\n", len(r.Results), len(r.Errors)))

	sb.WriteString("## Rankings\n\n")
	if rows := r.Rankings(); len(rows) > 0 {
		sb.WriteString("| # | Subcategory | Grade | Score | Action | Risk | Market Size | Volume | D/S | Flags (R/Y/G) |\n")
		sb.WriteString("|---|-------------|-------|-------|--------|------|-------------|--------|-----|---------------|\n")
		for _, row := range rows {
			sb.WriteString(fmt.Sprintf("| %d | %s | %s | %.0f%% (%d/%d) | %s | %s | %.0f | %d | %.1f | %d/%d/%d |\n",
				row.Rank, row.Subcategory, row.Grade,
				row.ScorePct, row.TotalScore, row.MaxScore,
				row.Action, row.RiskLevel,
				row.MarketSize, row.SearchVolume, row.Ratio,
				row.Red, row.Yellow, row.Green))
		}
		sb.WriteString("\n")
	} else {
		sb.WriteString("No subcategories analyzed.\n\n")
	}

	if len(r.Errors) > 0 {
		sb.WriteString("## Failed Subcategories\n\n")
		for _, e := range r.Errors {
			sb.WriteString(fmt.Sprintf("- %s\n", e))
		}
		sb.WriteString("\n")
	}

	for _, b := range r.Results {
		renderDetail(&sb, b)
	}

	return sb.String()
}

// renderDetail writes the per-subcategory section: market facts, demand
// facts, score breakdown, flags and the recommendation.
func renderDetail(sb *strings.Builder, b *domain.ResultBundle) {
	sb.WriteString(fmt.Sprintf("## %s\n\n", b.Subcategory))
	sb.WriteString(fmt.Sprintf("**%s** (risk: %s) — %s\n\n", b.Recommendation.Action, b.Recommendation.RiskLevel, b.Recommendation.Reasoning))

	sb.WriteString("### Market\n\n")
	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("|--------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Products Ranking | %d |\n", b.Market.TotalProducts))
	sb.WriteString(fmt.Sprintf("| Estimated Market Size | %.0f |\n", b.Market.EstimatedTotalMarket))
	sb.WriteString(fmt.Sprintf("| Top 3 Share | %.1f%% |\n", b.Market.Top3Share))
	sb.WriteString(fmt.Sprintf("| Top Seller | %s (%.0f reviews) |\n", b.Market.TopSeller.Brand, b.Market.TopSeller.ReviewCount))
	sb.WriteString(fmt.Sprintf("| Median Price | %.0f |\n", b.Market.MedianPrice))
	sb.WriteString(fmt.Sprintf("| Avg Rating (top 20) | %.2f |\n", b.Market.AvgRatingTop20))
	sb.WriteString("\n")

	if b.Demand != nil {
		sb.WriteString("### Demand\n\n")
		sb.WriteString("| Metric | Value |\n")
		sb.WriteString("|--------|-------|\n")
		sb.WriteString(fmt.Sprintf("| Seed Keyword | %s |\n", b.Demand.SeedKeyword))
		sb.WriteString(fmt.Sprintf("| Search Volume | %d/month |\n", b.Demand.SearchVolume))
		sb.WriteString(fmt.Sprintf("| Trend | %+.0f%% (%s) |\n", b.Demand.Trend, b.Demand.TrendSignal))
		sb.WriteString(fmt.Sprintf("| Competing Listings | %d |\n", b.Demand.CompetingListings))
		if b.DemandSupply != nil {
			sb.WriteString(fmt.Sprintf("| Demand/Supply Ratio | %.2f (%s) |\n", b.DemandSupply.Ratio, b.DemandSupply.Verdict))
			sb.WriteString(fmt.Sprintf("| Success Rate | %.2f%% |\n", b.DemandSupply.SuccessRate))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("### Score: %d/%d (%.0f%%, grade %s)\n\n", b.Score.TotalScore, b.Score.MaxScore(), b.Score.Percentage, b.Score.Grade))
	if len(b.Score.Breakdown) > 0 {
		sb.WriteString("| Criterion | Score | Reason |\n")
		sb.WriteString("|-----------|-------|--------|\n")
		for _, c := range b.Score.Breakdown {
			sb.WriteString(fmt.Sprintf("| %s | %d/%d | %s |\n", c.Name, c.Score, c.Max, c.Reason))
		}
		sb.WriteString("\n")
	}

	writeFlagList(sb, "Red Flags", b.Flags.Red)
	writeFlagList(sb, "Yellow Flags", b.Flags.Yellow)
	writeFlagList(sb, "Green Signals", b.Flags.Green)

	if len(b.Warnings) > 0 {
		sb.WriteString("### Data Warnings\n\n")
		for _, w := range b.Warnings {
			sb.WriteString(fmt.Sprintf("- %s\n", w))
		}
		sb.WriteString("\n")
	}
}

func writeFlagList(sb *strings.Builder, title string, flags []domain.Flag) {
	if len(flags) == 0 {
		return
	}
	sb.WriteString(fmt.Sprintf("### %s\n\n", title))
	for _, f := range flags {
		sb.WriteString(fmt.Sprintf("- %s\n", f.Message))
	}
	sb.WriteString("\n")
}
