package domain

// ScoreScale tags which scoring scale a ViabilityScore was computed on.
// The base scale covers the five market criteria; the extended scale adds
// the demand and supply scores when keyword data is available.
type ScoreScale string

const (
	ScaleBase     ScoreScale = "BASE"     // max 100
	ScaleExtended ScoreScale = "EXTENDED" // max 150
)

// Max returns the maximum total score for the scale.
func (s ScoreScale) Max() int {
	if s == ScaleExtended {
		return 150
	}
	return 100
}

// CriterionScore is one row of the viability breakdown.
type CriterionScore struct {
	Name   string
	Score  int
	Max    int
	Reason string
}

// ViabilityScore is the weighted multi-criteria opportunity score.
// Percentage is always computed against the active scale's max, so base
// and extended scores are comparable on percentage.
type ViabilityScore struct {
	Scale          ScoreScale
	Breakdown      []CriterionScore
	TotalScore     int
	Percentage     float64
	Grade          string // A+, A, B, C, or F for degenerate input
	Recommendation string // fixed phrase paired with the grade
}

// MaxScore returns the active scale's maximum.
func (v ViabilityScore) MaxScore() int {
	return v.Scale.Max()
}
