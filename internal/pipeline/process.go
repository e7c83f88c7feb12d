// Package pipeline wires ingestion, metrics, demand analysis, scoring and
// signal generation into a per-subcategory Process step and a parallel
// batch runner. Flow: ingest → catalog → metrics → demand → score → signals.
package pipeline

import (
	"fmt"

	"niche-lab/internal/catalog"
	"niche-lab/internal/demand"
	"niche-lab/internal/domain"
	"niche-lab/internal/ingest"
	"niche-lab/internal/metrics"
	"niche-lab/internal/score"
	"niche-lab/internal/signal"
)

// Process analyzes one subcategory end to end. A missing or unreadable
// listing export fails the subcategory; keyword problems only degrade the
// result to market-only scoring, with a warning. An empty catalog still
// produces a bundle (grade F, SKIP) rather than an error.
func Process(input ingest.SubcategoryInput) (*domain.ResultBundle, error) {
	table, err := ingest.ReadListingsFile(input.ListingPath)
	if err != nil {
		return nil, fmt.Errorf("read listings for %s: %w", input.Name, err)
	}

	listings, stats, err := catalog.BuildListings(table)
	if err != nil {
		return nil, fmt.Errorf("build listing catalog for %s: %w", input.Name, err)
	}

	bundle := &domain.ResultBundle{Subcategory: input.Name}
	bundle.Warnings = append(bundle.Warnings, buildWarnings("listing", stats)...)
	if _, warnings := catalog.ValidateListings(listings); len(warnings) > 0 {
		bundle.Warnings = append(bundle.Warnings, warnings...)
	}

	bundle.Market = metrics.Compute(listings)

	dm, ds := analyzeDemand(input, bundle)

	bundle.Score = score.Viability(&bundle.Market, ds)
	bundle.Flags = signal.Flags(&bundle.Market, dm, ds)
	bundle.Recommendation = signal.Recommend(bundle.Score, bundle.Flags, ds)
	return bundle, nil
}

// analyzeDemand runs the keyword side when a keyword export was paired.
// Failures here never abort the subcategory.
func analyzeDemand(input ingest.SubcategoryInput, bundle *domain.ResultBundle) (*domain.DemandMetrics, *domain.DemandSupplyAnalysis) {
	if input.KeywordPath == "" {
		return nil, nil
	}

	table, err := ingest.ReadKeywordsFile(input.KeywordPath)
	if err != nil {
		bundle.Warnings = append(bundle.Warnings, fmt.Sprintf("keyword export unreadable, market-only scoring: %v", err))
		return nil, nil
	}

	keywords, stats, err := catalog.BuildKeywords(table)
	if err != nil {
		bundle.Warnings = append(bundle.Warnings, fmt.Sprintf("keyword export rejected, market-only scoring: %v", err))
		return nil, nil
	}
	bundle.Warnings = append(bundle.Warnings, buildWarnings("keyword", stats)...)
	if _, warnings := catalog.ValidateKeywords(keywords); len(warnings) > 0 {
		bundle.Warnings = append(bundle.Warnings, warnings...)
	}

	dm := demand.Analyze(keywords, input.SeedKeyword)
	if dm == nil {
		return nil, nil
	}
	ds := demand.Ratio(dm, bundle.Market.TotalProducts)

	bundle.Demand = dm
	bundle.DemandSupply = ds
	return dm, ds
}

func buildWarnings(kind string, stats catalog.BuildStats) []string {
	var out []string
	if stats.NonPositive > 0 {
		out = append(out, fmt.Sprintf("%s rows dropped for non-positive primary metric: %d", kind, stats.NonPositive))
	}
	if stats.Duplicates > 0 {
		out = append(out, fmt.Sprintf("duplicate %s rows dropped: %d", kind, stats.Duplicates))
	}
	if stats.ParseFallbacks > 0 {
		out = append(out, fmt.Sprintf("malformed %s cells defaulted to 0: %d", kind, stats.ParseFallbacks))
	}
	return out
}
