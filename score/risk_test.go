package score

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/parascreen/parascreen-api/schema"
)

func TestRiskScoreElderlyHealthy(t *testing.T) {
	s := RiskScore(schema.PatientInput{
		Age:           70,
		AnaemiaStatus: schema.AnaemiaNo,
		Haemoglobin:   150,
		ParasiteCount: schema.ParasiteCount{},
	})
	assert.Equal(t, 15.0, s)
}

func TestRiskScoreAnaemicChild(t *testing.T) {
	// 20 (age) + 25 (anaemia) + 10 (haemoglobin) + 20 (parasites)
	s := RiskScore(schema.PatientInput{
		Age:           3,
		AnaemiaStatus: schema.AnaemiaYes,
		Haemoglobin:   100,
		ParasiteCount: schema.ParasiteCount{Known: true, Count: 4},
	})
	assert.Equal(t, 75.0, s)
}

func TestRiskScoreAdultHighHaemoglobin(t *testing.T) {
	s := RiskScore(schema.PatientInput{
		Age:           40,
		AnaemiaStatus: schema.AnaemiaNo,
		Haemoglobin:   160,
		ParasiteCount: schema.ParasiteCount{Known: true, Count: 0},
	})
	assert.Equal(t, 12.0, s)
}

func TestRiskScoreAgeBoundariesUseLinearBranch(t *testing.T) {
	in := schema.PatientInput{
		AnaemiaStatus: schema.AnaemiaNo,
		Haemoglobin:   150,
		ParasiteCount: schema.ParasiteCount{},
	}

	in.Age = 4
	assert.Equal(t, 20.0, RiskScore(in))
	in.Age = 5
	assert.Equal(t, 1.5, RiskScore(in))

	in.Age = 65
	assert.Equal(t, 19.5, RiskScore(in))
	in.Age = 66
	assert.Equal(t, 15.0, RiskScore(in))
}

func TestRiskScoreHaemoglobinThreshold(t *testing.T) {
	in := schema.PatientInput{
		Age:           70,
		AnaemiaStatus: schema.AnaemiaNo,
		ParasiteCount: schema.ParasiteCount{},
	}

	// no contribution at or above 150 g/L
	in.Haemoglobin = 150
	assert.Equal(t, 15.0, RiskScore(in))
	in.Haemoglobin = 180
	assert.Equal(t, 15.0, RiskScore(in))

	in.Haemoglobin = 149
	assert.Equal(t, 15.2, RiskScore(in))
}

func TestRiskScoreClampedAt100(t *testing.T) {
	// 20 + 25 + 26 + 50 = 121 before clamping
	s := RiskScore(schema.PatientInput{
		Age:           3,
		AnaemiaStatus: schema.AnaemiaYes,
		Haemoglobin:   20,
		ParasiteCount: schema.ParasiteCount{Known: true, Count: 10},
	})
	assert.Equal(t, 100.0, s)
}

func TestRiskScoreRoundsToOneDecimal(t *testing.T) {
	in := schema.PatientInput{
		Age:           70,
		AnaemiaStatus: schema.AnaemiaNo,
		ParasiteCount: schema.ParasiteCount{},
	}

	// 15 + 0.35*0.2 = 15.07 rounds up
	in.Haemoglobin = 149.65
	assert.Equal(t, 15.1, RiskScore(in))

	// 15 + 0.15*0.2 = 15.03 rounds down
	in.Haemoglobin = 149.85
	assert.Equal(t, 15.0, RiskScore(in))
}

func TestRiskScoreBoundedOverValidAges(t *testing.T) {
	for age := 0; age <= 120; age++ {
		s := RiskScore(schema.PatientInput{
			Age:           age,
			AnaemiaStatus: schema.AnaemiaYes,
			Haemoglobin:   20,
			ParasiteCount: schema.ParasiteCount{Known: true, Count: 50},
		})
		assert.False(t, math.IsNaN(s) || math.IsInf(s, 0))
		assert.True(t, s >= 0 && s <= 100, "age %d produced %f", age, s)
	}
}

func TestRiskScoreMonotonicInParasiteCount(t *testing.T) {
	prev := -1.0
	for count := 0; count <= 20; count++ {
		s := RiskScore(schema.PatientInput{
			Age:           30,
			AnaemiaStatus: schema.AnaemiaNo,
			Haemoglobin:   130,
			ParasiteCount: schema.ParasiteCount{Known: true, Count: count},
		})
		assert.True(t, s >= prev, "score dropped at count %d", count)
		prev = s
	}
}

func TestRiskScoreMonotonicInHaemoglobin(t *testing.T) {
	prev := 101.0
	for hb := 20.0; hb <= 150.0; hb += 0.5 {
		s := RiskScore(schema.PatientInput{
			Age:           30,
			AnaemiaStatus: schema.AnaemiaNo,
			Haemoglobin:   hb,
			ParasiteCount: schema.ParasiteCount{},
		})
		assert.True(t, s <= prev, "score rose at haemoglobin %f", hb)
		prev = s
	}
}
