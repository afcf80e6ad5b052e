package score

import (
	"math"

	"github.com/parascreen/parascreen-api/schema"
)

const (
	ChildAgeRisk   = 20.0 // flat, under 5
	ElderlyAgeRisk = 15.0 // flat, over 65
	AgeRiskRate    = 0.3  // per year, ages 5 through 65

	AnaemiaRisk = 25.0

	HaemoglobinRiskThreshold = 150.0 // g/L, no contribution at or above
	HaemoglobinRiskRate      = 0.2   // per g/L below the threshold

	ParasiteRiskRate = 5.0 // per counted parasite
)

// RiskScore maps a validated patient input to a score in [0, 100],
// rounded to one decimal place. Rounding is half away from zero, which
// over this non-negative domain behaves as round-half-up.
func RiskScore(in schema.PatientInput) float64 {
	var total float64

	switch {
	case in.Age < 5:
		total += ChildAgeRisk
	case in.Age > 65:
		total += ElderlyAgeRisk
	default:
		total += float64(in.Age) * AgeRiskRate
	}

	if in.AnaemiaStatus == schema.AnaemiaYes {
		total += AnaemiaRisk
	}

	total += math.Max(0, (HaemoglobinRiskThreshold-in.Haemoglobin)*HaemoglobinRiskRate)

	if in.ParasiteCount.Known {
		total += float64(in.ParasiteCount.Count) * ParasiteRiskRate
	}

	return Round1(Clamp(total, 0, 100))
}
