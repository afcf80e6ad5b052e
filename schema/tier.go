package schema

// Tier is one of three ordered severity classifications derived from a
// risk score.
type Tier string

const (
	TierLow      Tier = "Low"
	TierModerate Tier = "Moderate"
	TierHigh     Tier = "High"
)

// Tier lower bounds. A score below ModerateTierScore is Low, a score of
// HighTierScore or above is High.
const (
	ModerateTierScore = 20.0
	HighTierScore     = 50.0
)

var TierLabels = map[Tier]string{
	TierLow:      "Low risk - Standard monitoring recommended",
	TierModerate: "Moderate risk - Enhanced monitoring advised",
	TierHigh:     "High risk - Immediate clinical attention required",
}
