package domain

// Flag is a threshold-triggered signal attached to one metric.
type Flag struct {
	Message string
	Metric  string  // metric identifier, e.g. "market_size"
	Value   float64 // raw value that triggered the rule
}

// FlagSet holds the three disjoint signal sequences. Metrics are evaluated
// independently, so one subcategory can populate all three at once.
type FlagSet struct {
	Red    []Flag
	Yellow []Flag
	Green  []Flag
}

// Counts returns (red, yellow, green) flag counts.
func (f FlagSet) Counts() (int, int, int) {
	return len(f.Red), len(f.Yellow), len(f.Green)
}

// Action is the final recommended action, ordered best to worst.
type Action string

const (
	ActionStrongGo Action = "STRONG_GO"
	ActionProceed  Action = "PROCEED"
	ActionRisky    Action = "RISKY"
	ActionSkip     Action = "SKIP"
)

// RiskLevel accompanies an Action.
type RiskLevel string

const (
	RiskLow      RiskLevel = "LOW"
	RiskMedium   RiskLevel = "MEDIUM"
	RiskHigh     RiskLevel = "HIGH"
	RiskVeryHigh RiskLevel = "VERY HIGH"
)

// Recommendation reconciles score and flag counts into one action.
type Recommendation struct {
	Action    Action
	RiskLevel RiskLevel
	Reasoning string

	RedCount    int
	YellowCount int
	GreenCount  int
}
