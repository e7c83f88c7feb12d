package domain

// ResultBundle is everything the engine produces for one subcategory.
// All fields are immutable after Process returns; presentation and export
// collaborators read them without modification.
type ResultBundle struct {
	Subcategory string

	Market MarketMetrics

	// Nil when no keyword export was supplied for the subcategory.
	Demand       *DemandMetrics
	DemandSupply *DemandSupplyAnalysis

	Score          ViabilityScore
	Flags          FlagSet
	Recommendation Recommendation

	// Non-fatal data-quality warnings collected during ingestion and
	// catalog build. Never blocks scoring.
	Warnings []string
}
