package reporting

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"niche-lab/internal/domain"
)

// Sheet names in the workbook, in tab order.
const (
	sheetRankings = "Rankings"
	sheetMetrics  = "Detailed Metrics"
	sheetKeywords = "Keyword Analysis"
	sheetActions  = "Action Plan"
)

// WriteExcel writes the report as a four-sheet workbook at path.
func WriteExcel(r *Report, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetRankings); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	for _, name := range []string{sheetMetrics, sheetKeywords, sheetActions} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("create sheet %s: %w", name, err)
		}
	}

	if err := writeRankingsSheet(f, r); err != nil {
		return err
	}
	if err := writeMetricsSheet(f, r); err != nil {
		return err
	}
	if err := writeKeywordsSheet(f, r); err != nil {
		return err
	}
	if err := writeActionsSheet(f, r); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

// setRow writes values left to right starting at column 1 of row.
func setRow(f *excelize.File, sheet string, row int, values []any) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("set %s!%s: %w", sheet, cell, err)
		}
	}
	return nil
}

func writeRankingsSheet(f *excelize.File, r *Report) error {
	header := []any{"Rank", "Subcategory", "Grade", "Score %", "Total", "Max", "Action", "Risk", "Market Size", "Search Volume", "D/S Ratio", "Red", "Yellow", "Green"}
	if err := setRow(f, sheetRankings, 1, header); err != nil {
		return err
	}
	for i, row := range r.Rankings() {
		values := []any{
			row.Rank, row.Subcategory, row.Grade, row.ScorePct, row.TotalScore, row.MaxScore,
			string(row.Action), string(row.RiskLevel),
			row.MarketSize, row.SearchVolume, row.Ratio,
			row.Red, row.Yellow, row.Green,
		}
		if err := setRow(f, sheetRankings, i+2, values); err != nil {
			return err
		}
	}
	return nil
}

func writeMetricsSheet(f *excelize.File, r *Report) error {
	header := []any{"Subcategory", "Products", "Top 10 Revenue", "Top 20 Revenue", "Est. Market", "Top 3 Share %", "Top Seller", "Top Seller Reviews", "Avg Rating", "Median Price", "Budget Count", "Mid Count", "Premium Count"}
	if err := setRow(f, sheetMetrics, 1, header); err != nil {
		return err
	}
	for i, b := range r.Results {
		m := b.Market
		values := []any{
			b.Subcategory, m.TotalProducts, m.Top10Revenue, m.Top20Revenue, m.EstimatedTotalMarket,
			m.Top3Share, m.TopSeller.Brand, m.TopSeller.ReviewCount,
			m.AvgRatingTop20, m.MedianPrice,
			m.Segments.Budget.Count, m.Segments.MidRange.Count, m.Segments.Premium.Count,
		}
		if err := setRow(f, sheetMetrics, i+2, values); err != nil {
			return err
		}
	}
	return nil
}

func writeKeywordsSheet(f *excelize.File, r *Report) error {
	header := []any{"Subcategory", "Seed Keyword", "Search Volume", "Trend %", "Trend Signal", "Competing Listings", "Quality Index", "D/S Ratio", "Verdict", "Success Rate %"}
	if err := setRow(f, sheetKeywords, 1, header); err != nil {
		return err
	}
	row := 2
	for _, b := range r.Results {
		if b.Demand == nil {
			continue
		}
		values := []any{
			b.Subcategory, b.Demand.SeedKeyword, b.Demand.SearchVolume, b.Demand.Trend,
			string(b.Demand.TrendSignal), b.Demand.CompetingListings, b.Demand.DemandQualityIndex,
		}
		if b.DemandSupply != nil {
			values = append(values, b.DemandSupply.Ratio, string(b.DemandSupply.Verdict), b.DemandSupply.SuccessRate)
		}
		if err := setRow(f, sheetKeywords, row, values); err != nil {
			return err
		}
		row++
	}
	return nil
}

func writeActionsSheet(f *excelize.File, r *Report) error {
	header := []any{"Subcategory", "Action", "Risk", "Reasoning", "Top Red Flag", "Top Green Signal"}
	if err := setRow(f, sheetActions, 1, header); err != nil {
		return err
	}
	for i, b := range r.Results {
		values := []any{
			b.Subcategory,
			string(b.Recommendation.Action),
			string(b.Recommendation.RiskLevel),
			b.Recommendation.Reasoning,
			firstFlag(b.Flags.Red),
			firstFlag(b.Flags.Green),
		}
		if err := setRow(f, sheetActions, i+2, values); err != nil {
			return err
		}
	}
	return nil
}

func firstFlag(flags []domain.Flag) string {
	if len(flags) == 0 {
		return ""
	}
	return flags[0].Message
}
