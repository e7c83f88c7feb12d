package signal

import (
	"fmt"
	"strings"

	"niche-lab/internal/domain"
)

// Recommendation decision table, first match wins.
const (
	strongGoMinPct = 85.0
	proceedMinPct  = 70.0
	riskyMinPct    = 60.0
	proceedMaxRed  = 1
	riskyRedCount  = 2
)

// Recommend reconciles the viability percentage with the flag counts.
// Percentage (not raw total) keeps the rule identical across score
// scales. ds may be nil.
func Recommend(score domain.ViabilityScore, flags domain.FlagSet, ds *domain.DemandSupplyAnalysis) domain.Recommendation {
	red, yellow, green := flags.Counts()

	var action domain.Action
	var risk domain.RiskLevel
	switch {
	case score.Percentage >= strongGoMinPct && red == 0:
		action, risk = domain.ActionStrongGo, domain.RiskLow
	case score.Percentage >= proceedMinPct && red <= proceedMaxRed:
		action, risk = domain.ActionProceed, domain.RiskMedium
	case score.Percentage >= riskyMinPct || red == riskyRedCount:
		action, risk = domain.ActionRisky, domain.RiskHigh
	default:
		action, risk = domain.ActionSkip, domain.RiskVeryHigh
	}

	return domain.Recommendation{
		Action:      action,
		RiskLevel:   risk,
		Reasoning:   reasoning(action, score, red, yellow, green, ds),
		RedCount:    red,
		YellowCount: yellow,
		GreenCount:  green,
	}
}

func reasoning(action domain.Action, score domain.ViabilityScore, red, yellow, green int, ds *domain.DemandSupplyAnalysis) string {
	var sb strings.Builder

	switch action {
	case domain.ActionStrongGo:
		fmt.Fprintf(&sb, "Excellent opportunity scoring %.0f%%.", score.Percentage)
	case domain.ActionProceed:
		fmt.Fprintf(&sb, "Good opportunity scoring %.0f%%.", score.Percentage)
	case domain.ActionRisky:
		fmt.Fprintf(&sb, "Marginal opportunity scoring %.0f%%.", score.Percentage)
	default:
		fmt.Fprintf(&sb, "Weak opportunity scoring %.0f%%.", score.Percentage)
	}

	if green > 0 {
		fmt.Fprintf(&sb, " %d positive signal(s) identified.", green)
	}
	if yellow > 0 {
		fmt.Fprintf(&sb, " %d caution flag(s) to monitor.", yellow)
	}
	if red > 0 {
		fmt.Fprintf(&sb, " %d critical issue(s) found.", red)
	}

	if ds != nil {
		switch ds.Verdict {
		case domain.VerdictExcellent:
			sb.WriteString(" Demand strongly outpaces supply.")
		case domain.VerdictGood:
			sb.WriteString(" Healthy demand/supply balance.")
		case domain.VerdictAvoid:
			sb.WriteString(" Supply overwhelms demand.")
		}
	}

	return sb.String()
}
