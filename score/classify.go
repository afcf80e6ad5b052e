package score

import (
	"github.com/parascreen/parascreen-api/schema"
)

// Classify maps a score to its severity tier and display label.
// Currently,
// Low:       0 ~ <20
// Moderate: 20 ~ <50
// High:     50 ~ 100
func Classify(score float64) (schema.Tier, string) {
	switch {
	case score < schema.ModerateTierScore:
		return schema.TierLow, schema.TierLabels[schema.TierLow]
	case score < schema.HighTierScore:
		return schema.TierModerate, schema.TierLabels[schema.TierModerate]
	default:
		return schema.TierHigh, schema.TierLabels[schema.TierHigh]
	}
}
