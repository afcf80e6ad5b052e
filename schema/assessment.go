package schema

import "time"

type AnaemiaStatus string

const (
	AnaemiaYes AnaemiaStatus = "yes"
	AnaemiaNo  AnaemiaStatus = "no"
)

const (
	// haemoglobin bounds in g/L
	HaemoglobinMin = 20.0
	HaemoglobinMax = 180.0

	// oldest accepted age in whole years
	MaxAge = 120
)

// RawSubmission carries the form field values exactly as entered, before
// any validation. Every field is text so that empty controls and
// unparseable values can be reported back per field.
type RawSubmission struct {
	DateOfBirth   string `json:"date_of_birth"`
	AnaemiaStatus string `json:"anaemia_status"`
	Haemoglobin   string `json:"haemoglobin"`
	ParasiteCount string `json:"parasite_count"`
}

// PatientInput is a validated submission. Age is derived from DateOfBirth
// against the reference time the validator was given.
type PatientInput struct {
	DateOfBirth   time.Time
	Age           int
	AnaemiaStatus AnaemiaStatus
	Haemoglobin   float64 // g/L
	ParasiteCount ParasiteCount
}

// RiskAssessment is the outcome of scoring one submission.
type RiskAssessment struct {
	ID    string  `json:"id"`
	Age   int     `json:"age"`
	Score float64 `json:"score"`
	Tier  Tier    `json:"tier"`
	Label string  `json:"label"`
}
