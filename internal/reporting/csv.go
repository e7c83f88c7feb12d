package reporting

import (
	"fmt"
	"strings"
)

// RenderCSV renders the ranking table as a CSV string. Subcategory names
// are quoted because exports commonly contain spaces and commas.
func RenderCSV(rows []RankingRow) string {
	var sb strings.Builder

	sb.WriteString("rank,subcategory,grade,score_pct,total_score,max_score,action,risk_level,")
	sb.WriteString("market_size,search_volume,demand_supply_ratio,")
	sb.WriteString("red_flags,yellow_flags,green_flags\n")

	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("%d,%q,%s,%.2f,%d,%d,%s,%q,%.2f,%d,%.2f,%d,%d,%d\n",
			r.Rank,
			r.Subcategory,
			r.Grade,
			r.ScorePct,
			r.TotalScore,
			r.MaxScore,
			r.Action,
			r.RiskLevel,
			r.MarketSize,
			r.SearchVolume,
			r.Ratio,
			r.Red,
			r.Yellow,
			r.Green,
		))
	}

	return sb.String()
}
